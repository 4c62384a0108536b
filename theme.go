package pamflet

import (
	"sort"
	"strings"
)

const ansiReset = "\x1b[0m"

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

func (s Style) render(text string) string {
	if s.Prefix == "" || text == "" {
		return text
	}
	return s.Prefix + text + ansiReset
}

// Styles groups the semantic styles used by Fprint.
type Styles struct {
	Label     Style
	Attribute Style
	Body      Style
	Marker    Style
	Correct   Style
	LinkText  Style
	LinkURL   Style
}

// Theme provides named styles for element listings.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

const (
	sgrBold      = "\x1b[1m"
	sgrDim       = "\x1b[2m"
	sgrUnderline = "\x1b[4m"
)

func fg(code string) string { return "\x1b[38;5;" + code + "m" }

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: Styles{
		Label:     style(sgrBold, fg("75")),
		Attribute: style(sgrDim),
		Body:      style(),
		Marker:    style(fg("244")),
		Correct:   style(sgrBold, fg("114")),
		LinkText:  style(sgrUnderline, fg("117")),
		LinkURL:   style(fg("244")),
	}},
	"gruvbox": theme{name: "gruvbox", styles: Styles{
		Label:     style(sgrBold, fg("214")),
		Attribute: style(fg("245")),
		Body:      style(fg("223")),
		Marker:    style(fg("208")),
		Correct:   style(sgrBold, fg("142")),
		LinkText:  style(sgrUnderline, fg("109")),
		LinkURL:   style(fg("245")),
	}},
	"boring": theme{name: "boring"},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// BoringTheme returns a theme without any ANSI styling.
func BoringTheme() Theme {
	return builtinThemes["boring"]
}
