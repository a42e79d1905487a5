package web

import (
	"fmt"
	"html/template"
	"regexp"

	"hospital-emr-backend/internal/models"
)

const (
	DefaultPrimaryColor   = "#2563eb"
	DefaultSecondaryColor = "#64748b"
	onColor               = "#ffffff"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// StylePair is a ready-to-use text/background color combination.
type StylePair struct {
	Color           string `json:"color"`
	BackgroundColor string `json:"backgroundColor"`
}

// Style renders the pair as an inline style attribute value.
func (p StylePair) Style() template.CSS {
	switch {
	case p.Color != "" && p.BackgroundColor != "":
		return template.CSS(fmt.Sprintf("color: %s; background-color: %s", p.Color, p.BackgroundColor))
	case p.BackgroundColor != "":
		return template.CSS("background-color: " + p.BackgroundColor)
	default:
		return template.CSS("color: " + p.Color)
	}
}

// Palette is the tenant's colors projected into style pairs.
type Palette struct {
	Primary     StylePair `json:"primary"`
	PrimaryBg   StylePair `json:"primaryBg"`
	Secondary   StylePair `json:"secondary"`
	SecondaryBg StylePair `json:"secondaryBg"`
}

// ThemeColors projects a hospital theme into style pairs. Missing or
// malformed colors fall back to the defaults. The result is cheap and is
// computed on every render.
func ThemeColors(theme models.HospitalTheme) Palette {
	primary := colorOr(theme.PrimaryColor, DefaultPrimaryColor)
	secondary := colorOr(theme.SecondaryColor, DefaultSecondaryColor)

	return Palette{
		Primary:     StylePair{Color: primary},
		PrimaryBg:   StylePair{Color: onColor, BackgroundColor: primary},
		Secondary:   StylePair{Color: secondary},
		SecondaryBg: StylePair{Color: onColor, BackgroundColor: secondary},
	}
}

// Variables exposes the palette as CSS custom properties for a :root rule.
func (p Palette) Variables() template.CSS {
	return template.CSS(fmt.Sprintf("--color-primary: %s; --color-secondary: %s",
		p.PrimaryBg.BackgroundColor, p.SecondaryBg.BackgroundColor))
}

func colorOr(value, fallback string) string {
	if hexColor.MatchString(value) {
		return value
	}
	return fallback
}
