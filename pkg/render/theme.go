package render

import "html/template"

// Theme is the color palette injected into the report stylesheet.
// Values are template.CSS because they are trusted constants defined
// here, never user input.
type Theme struct {
	Name string

	// Page chrome
	Background template.CSS // page background
	Surface    template.CSS // cards, table
	SurfaceAlt template.CSS // result headers, hover rows
	Text       template.CSS
	Heading    template.CSS
	Muted      template.CSS
	Border     template.CSS
	BorderHard template.CSS

	// Accents
	Accent    template.CSS // default card border, links, file names
	AccentAlt template.CSS // header gradient end
	Error     template.CSS
	Warning   template.CSS
	Note      template.CSS

	// Severity badges
	ErrorBadgeBg   template.CSS
	ErrorBadgeFg   template.CSS
	WarningBadgeBg template.CSS
	WarningBadgeFg template.CSS
	NoteBadgeBg    template.CSS
	NoteBadgeFg    template.CSS

	// Blocks
	NotifyBg template.CSS
	NotifyFg template.CSS
	CodeBg   template.CSS
	CodeFg   template.CSS
}

// LightTheme returns the default light palette.
func LightTheme() Theme {
	return Theme{
		Name:       "light",
		Background: "#f5f7fa",
		Surface:    "white",
		SurfaceAlt: "#f9f9f9",
		Text:       "#333",
		Heading:    "#2c3e50",
		Muted:      "#7f8c8d",
		Border:     "#ecf0f1",
		BorderHard: "#bdc3c7",

		Accent:    "#667eea",
		AccentAlt: "#764ba2",
		Error:     "#e74c3c",
		Warning:   "#f39c12",
		Note:      "#3498db",

		ErrorBadgeBg:   "#fadbd8",
		ErrorBadgeFg:   "#c0392b",
		WarningBadgeBg: "#fdebd0",
		WarningBadgeFg: "#b8860b",
		NoteBadgeBg:    "#d6eaf8",
		NoteBadgeFg:    "#1f618d",

		NotifyBg: "#fef5e7",
		NotifyFg: "#7d6608",
		CodeBg:   "#2c3e50",
		CodeFg:   "#ecf0f1",
	}
}

// DarkTheme returns a dark palette with the same accent hues.
func DarkTheme() Theme {
	return Theme{
		Name:       "dark",
		Background: "#14181f",
		Surface:    "#1d232d",
		SurfaceAlt: "#232a36",
		Text:       "#c9d1d9",
		Heading:    "#e6edf3",
		Muted:      "#8b949e",
		Border:     "#2d333b",
		BorderHard: "#444c56",

		Accent:    "#7c8cf8",
		AccentAlt: "#9d6fd8",
		Error:     "#f85149",
		Warning:   "#e3b341",
		Note:      "#58a6ff",

		ErrorBadgeBg:   "#4a1d1a",
		ErrorBadgeFg:   "#ff938a",
		WarningBadgeBg: "#42351a",
		WarningBadgeFg: "#e9c878",
		NoteBadgeBg:    "#122f4c",
		NoteBadgeFg:    "#89c2ff",

		NotifyBg: "#3a3020",
		NotifyFg: "#e3c878",
		CodeBg:   "#0d1117",
		CodeFg:   "#c9d1d9",
	}
}

// ThemeByName returns a theme by name, defaulting to LightTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "dark":
		return DarkTheme()
	default:
		return LightTheme()
	}
}
