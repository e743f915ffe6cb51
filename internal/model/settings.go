package model

// Settings is the singleton presentation configuration.
type Settings struct {
	AppName   string `json:"app_name"`
	Motto     string `json:"motto"`
	Theme     string `json:"theme"`
	Font      string `json:"font"`
	BgPattern string `json:"bg_pattern"`
}

// Fixed enumerations for the theme and font fields. Writes outside these
// sets are rejected at the settings boundary.
var (
	Themes = []string{"gold", "night", "oasis", "crimson"}
	Fonts  = []string{"serif", "sans", "classic"}
)

// ValidTheme reports whether theme is one of the fixed theme names.
func ValidTheme(theme string) bool {
	for _, t := range Themes {
		if t == theme {
			return true
		}
	}
	return false
}

// ValidFont reports whether font is one of the fixed font names.
func ValidFont(font string) bool {
	for _, f := range Fonts {
		if f == font {
			return true
		}
	}
	return false
}
