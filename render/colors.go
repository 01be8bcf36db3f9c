package render

// DefaultLineColor is used for operators without a dedicated color.
const DefaultLineColor = "#3388ff"

// operatorColors is the fixed operator -> line color lookup.
var operatorColors = map[string]string{
	"Deutsche Bahn": "#ec0016",
	"SNCF":          "#0088ce",
	"Trenitalia":    "#00a651",
	"International": "#ff9900",
}

// OperatorColor returns the line color for an operator. Unknown operators
// fall back to DefaultLineColor.
func OperatorColor(operator string) string {
	if c, ok := operatorColors[operator]; ok {
		return c
	}
	return DefaultLineColor
}

// OperatorColors returns a copy of the full lookup, merged with any
// overrides. Used to hand the palette to the web page.
func OperatorColors(overrides map[string]string) map[string]string {
	out := make(map[string]string, len(operatorColors)+len(overrides))
	for k, v := range operatorColors {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}
