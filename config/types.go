package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port      int    `yaml:"port" validate:"gt=0"`
	StaticDir string `yaml:"staticDir"`
}

// DataConfig describes where the station/connection dataset comes from
// and where the pipeline writes its files.
type DataConfig struct {
	URL         string `yaml:"url" validate:"omitempty,url"`
	RoutesFile  string `yaml:"routesFile"`
	WebDataFile string `yaml:"webDataFile"`
	CacheFile   string `yaml:"cacheFile"`
	TimeoutMS   int    `yaml:"timeoutMS" validate:"gte=0"`
}

// MapConfig contains the fixed viewport parameters used by the renderer
type MapConfig struct {
	CenterLatitude  float64 `yaml:"centerLatitude" validate:"gte=-90,lte=90"`
	CenterLongitude float64 `yaml:"centerLongitude" validate:"gte=-180,lte=180"`
	DefaultZoom     int     `yaml:"defaultZoom" validate:"gte=0"`
	FocusZoom       int     `yaml:"focusZoom" validate:"gte=0"`
	FitPaddingPx    int     `yaml:"fitPaddingPx" validate:"gte=0"`
}

// ColorConfig maps operators to line colors, with a default for
// operators not present in the map.
type ColorConfig struct {
	Operators map[string]string `yaml:"operators"`
	Default   string            `yaml:"default"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server ServerConfig `yaml:"server" validate:"required"`
	Data   DataConfig   `yaml:"data"`
	Map    MapConfig    `yaml:"map"`
	Colors ColorConfig  `yaml:"colors"`
}
