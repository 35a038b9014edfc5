// Package theme holds the styling parameters shared by all renderers:
// the brand palette, the base font, and the cover-letter footer links.
// Defaults match the web design's CSS custom properties; a YAML file can
// override any subset of them.
package theme

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/spf13/viper"
)

// FooterLink is one labeled link in the cover-letter footer line.
type FooterLink struct {
	Label string `mapstructure:"label"`
	URL   string `mapstructure:"url"`
}

// Theme is the full set of styling parameters. Colors are six-digit
// RRGGBB hex strings without a leading '#'.
type Theme struct {
	Primary   string `mapstructure:"primary"`
	Secondary string `mapstructure:"secondary"`
	Accent    string `mapstructure:"accent"`
	Dark      string `mapstructure:"dark"`
	Gray      string `mapstructure:"gray"`
	White     string `mapstructure:"white"`
	LightBG   string `mapstructure:"light_bg"`

	Font string `mapstructure:"font"`

	FooterLinks []FooterLink `mapstructure:"footer_links"`
}

// Default returns the built-in teal palette.
func Default() Theme {
	return Theme{
		Primary:   "0D6E6E",
		Secondary: "14919B",
		Accent:    "1A3A3A",
		Dark:      "2C3E50",
		Gray:      "666666",
		White:     "FFFFFF",
		LightBG:   "E8F4F4",
		Font:      "Calibri",
		FooterLinks: []FooterLink{
			{Label: "View Resume", URL: "mattbfit.net/resume.html"},
			{Label: "Training Videos", URL: "mattbfit.net/#showcase"},
		},
	}
}

// Load reads a YAML theme file and merges it over the defaults.
// An unreadable file or an invalid color value is an input fault.
func Load(path string) (Theme, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return Theme{}, fmt.Errorf("reading theme %s: %w", path, err)
	}

	t := Default()
	if err := v.Unmarshal(&t); err != nil {
		return Theme{}, fmt.Errorf("parsing theme %s: %w", path, err)
	}
	if err := t.validate(); err != nil {
		return Theme{}, fmt.Errorf("theme %s: %w", path, err)
	}
	return t, nil
}

var hexColor = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

func (t Theme) validate() error {
	colors := map[string]string{
		"primary":   t.Primary,
		"secondary": t.Secondary,
		"accent":    t.Accent,
		"dark":      t.Dark,
		"gray":      t.Gray,
		"white":     t.White,
		"light_bg":  t.LightBG,
	}
	for name, value := range colors {
		if !hexColor.MatchString(value) {
			return fmt.Errorf("invalid %s color %q (want RRGGBB hex)", name, value)
		}
	}
	if t.Font == "" {
		return fmt.Errorf("font must not be empty")
	}
	return nil
}

// RGB splits a palette hex string into its 0-255 components, for
// renderers that take separate channel values.
func RGB(hex string) (r, g, b int) {
	if !hexColor.MatchString(hex) {
		return 0, 0, 0
	}
	rv, _ := strconv.ParseUint(hex[0:2], 16, 8)
	gv, _ := strconv.ParseUint(hex[2:4], 16, 8)
	bv, _ := strconv.ParseUint(hex[4:6], 16, 8)
	return int(rv), int(gv), int(bv)
}
