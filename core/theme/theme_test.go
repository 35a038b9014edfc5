package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	th := Default()
	assert.Equal(t, "0D6E6E", th.Primary)
	assert.Equal(t, "2C3E50", th.Dark)
	assert.Equal(t, "Calibri", th.Font)
	require.Len(t, th.FooterLinks, 2)
	assert.Equal(t, "View Resume", th.FooterLinks[0].Label)
	require.NoError(t, th.validate())
}

func writeTheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverrides(t *testing.T) {
	path := writeTheme(t, `
primary: "336699"
font: Georgia
footer_links:
  - label: Portfolio
    url: example.com/portfolio
`)

	th, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "336699", th.Primary)
	assert.Equal(t, "Georgia", th.Font)
	// Unset keys keep their defaults.
	assert.Equal(t, "14919B", th.Secondary)
	assert.Equal(t, "E8F4F4", th.LightBG)
	require.Len(t, th.FooterLinks, 1)
	assert.Equal(t, "Portfolio", th.FooterLinks[0].Label)
}

func TestLoadFaults(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad hex color", "primary: teal\n"},
		{"short hex color", "accent: \"123\"\n"},
		{"empty font", "font: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeTheme(t, tt.content))
			require.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}

func TestRGB(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b int
	}{
		{"0D6E6E", 0x0D, 0x6E, 0x6E},
		{"FFFFFF", 255, 255, 255},
		{"000000", 0, 0, 0},
		{"nothex", 0, 0, 0},
	}
	for _, tt := range tests {
		r, g, b := RGB(tt.hex)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("RGB(%q) = %d,%d,%d, want %d,%d,%d", tt.hex, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}
