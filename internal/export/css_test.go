package export

import (
	"testing"

	"sitegen/internal/site"

	"github.com/stretchr/testify/assert"
)

func TestBuildCSS_InterpolatesSettings(t *testing.T) {
	css := buildCSS(site.Settings{
		PrimaryColor:    "#ff0000",
		SecondaryColor:  "#00ff00",
		AccentColor:     "#0000ff",
		BackgroundColor: "#ffffff",
		TextColor:       "#111111",
		HeadingFont:     "Playfair Display",
		BodyFont:        "Open Sans",
	})

	assert.Contains(t, css, "--primary-color: #ff0000;")
	assert.Contains(t, css, "--heading-font: 'Playfair Display', serif;")
	assert.Contains(t, css, "--body-font: 'Open Sans', sans-serif;")
}

func TestFontQuery_ReplacesSpaces(t *testing.T) {
	assert.Equal(t, "Playfair+Display", fontQuery("Playfair Display"))
	assert.Equal(t, "Inter", fontQuery("Inter"))
}

func TestFontLinks_DeduplicatesSharedFamily(t *testing.T) {
	s := site.Settings{HeadingFont: "Work Sans", BodyFont: "Work Sans"}
	links := fontLinks(s)
	assert.Len(t, links, 1)
	assert.Contains(t, links[0], "family=Work+Sans")
}

func TestFontLinks_SkipsEmptyFamilies(t *testing.T) {
	assert.Empty(t, fontLinks(site.Settings{}))
}
