package render

import "eurorail/trainmap/station"

// Sidebar is the headless state of the sidebar region: the suggestion
// panel and the connection list. It implements SuggestionView and
// ConnectionListView.
type Sidebar struct {
	suggestions        []station.Station
	suggestionsVisible bool

	selectedName  string
	connections   []station.Connection
	noConnections bool
}

// NewSidebar creates an empty sidebar.
func NewSidebar() *Sidebar { return &Sidebar{} }

// ShowSuggestions displays the suggestion panel with the given stations.
func (sb *Sidebar) ShowSuggestions(stations []station.Station) {
	sb.suggestions = stations
	sb.suggestionsVisible = true
}

// Hide hides the suggestion panel.
func (sb *Sidebar) Hide() {
	sb.suggestions = nil
	sb.suggestionsVisible = false
}

// Suggestions returns the currently displayed suggestions and whether the
// panel is visible.
func (sb *Sidebar) Suggestions() ([]station.Station, bool) {
	return sb.suggestions, sb.suggestionsVisible
}

// ShowSelected displays the selected station's name.
func (sb *Sidebar) ShowSelected(name string) {
	sb.selectedName = name
	sb.connections = nil
	sb.noConnections = false
}

// ShowConnections renders the connection list entries.
func (sb *Sidebar) ShowConnections(conns []station.Connection) {
	sb.connections = conns
	sb.noConnections = false
}

// ShowNoConnections renders the explanatory no-direct-connections message.
func (sb *Sidebar) ShowNoConnections() {
	sb.connections = nil
	sb.noConnections = true
}

// SelectedName returns the displayed station name.
func (sb *Sidebar) SelectedName() string { return sb.selectedName }

// Connections returns the rendered connection list entries.
func (sb *Sidebar) Connections() []station.Connection { return sb.connections }

// NoConnectionsShown reports whether the no-connections message is shown.
func (sb *Sidebar) NoConnectionsShown() bool { return sb.noConnections }
