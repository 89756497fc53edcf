package export

import (
	"context"
	"strings"
	"testing"

	"sitegen/internal/assembler"
	"sitegen/internal/content"
	"sitegen/internal/site"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleWebsite() site.Website {
	a := assembler.New(nil)
	return a.AssembleWebsite(context.Background(), content.Request{
		Industry:    "restaurant",
		Style:       "classic",
		WebsiteName: "Gourmet Haven",
		Description: "fine dining",
	})
}

func TestExport_Idempotent(t *testing.T) {
	w := sampleWebsite()

	first := Export(w, w.Settings)
	second := Export(w, w.Settings)

	assert.Equal(t, first.HTML, second.HTML)
	assert.Equal(t, first.CSS, second.CSS)
	assert.Equal(t, first.Assets, second.Assets)
}

func TestExport_SectionsSortedByOrderField(t *testing.T) {
	w := site.Website{
		Metadata: site.Metadata{Title: "Out of Order"},
		Sections: []site.Section{
			{Type: "AboutSection", Order: 2, Props: map[string]any{"title": "Second"}},
			{Type: "HeroSection", Order: 1, Props: map[string]any{"title": "First"}},
		},
	}

	result := Export(w, site.DefaultSettings())

	firstIdx := strings.Index(result.HTML, "First")
	secondIdx := strings.Index(result.HTML, "Second")
	require.Positive(t, firstIdx)
	require.Positive(t, secondIdx)
	assert.Less(t, firstIdx, secondIdx)
}

func TestExport_StableSortPreservesTieOrder(t *testing.T) {
	w := site.Website{
		Sections: []site.Section{
			{Type: "AboutSection", Order: 1, Props: map[string]any{"title": "AAA"}},
			{Type: "AboutSection", Order: 1, Props: map[string]any{"title": "BBB"}},
		},
	}

	result := Export(w, site.DefaultSettings())
	assert.Less(t, strings.Index(result.HTML, "AAA"), strings.Index(result.HTML, "BBB"))
}

func TestExport_UnknownSectionTypeRendersVisibleFallback(t *testing.T) {
	w := site.Website{
		Sections: []site.Section{
			{Type: "HolographicSection", Order: 1, Props: map[string]any{}},
		},
	}

	result := Export(w, site.DefaultSettings())
	assert.Contains(t, result.HTML, "Unknown section type: HolographicSection")
}

func TestExport_NilPropsDoNotPanic(t *testing.T) {
	w := site.Website{
		Sections: []site.Section{
			{Type: "HeroSection", Order: 1, Props: nil},
		},
	}

	assert.NotPanics(t, func() { Export(w, site.DefaultSettings()) })
}

func TestExport_EmbedsStyleAndFontLinks(t *testing.T) {
	w := sampleWebsite()
	result := Export(w, w.Settings)

	assert.Contains(t, result.HTML, "<style>")
	assert.Contains(t, result.HTML, result.CSS)
	assert.Contains(t, result.HTML, "fonts.googleapis.com/css2?family=Playfair+Display")
	assert.Contains(t, result.HTML, "family=Lora")
}

func TestExport_EscapesContent(t *testing.T) {
	w := site.Website{
		Metadata: site.Metadata{Title: `<script>alert("x")</script>`},
		Sections: []site.Section{
			{Type: "HeroSection", Order: 1, Props: map[string]any{"title": "<b>bold</b>"}},
		},
	}

	result := Export(w, site.DefaultSettings())
	assert.NotContains(t, result.HTML, "<script>alert")
	assert.NotContains(t, result.HTML, "<b>bold</b>")
	assert.Contains(t, result.HTML, "&lt;b&gt;bold&lt;/b&gt;")
}

func TestExport_ThemeColorsRenderOnEverySectionKind(t *testing.T) {
	// Distinctive colors so the assertion cannot match the embedded CSS.
	props := map[string]any{
		"backgroundColor": "#abc123",
		"textColor":       "#def456",
	}

	tests := []struct {
		sectionType string
		wantOpen    string
	}{
		{"HeaderSection", `<header class="site-header" style="background:#abc123;color:#def456">`},
		{"HeroSection", `<section class="hero" style="background:#abc123;color:#def456">`},
		{"ContactSection", `<section id="contact" style="background:#abc123;color:#def456">`},
		{"FooterSection", `<footer class="site-footer" style="background:#abc123;color:#def456">`},
	}
	for _, tt := range tests {
		w := site.Website{
			Sections: []site.Section{
				{Type: tt.sectionType, Order: 1, Props: props},
			},
		}

		result := Export(w, site.DefaultSettings())
		assert.Contains(t, result.HTML, tt.wantOpen, "section %s", tt.sectionType)
	}
}

func TestExport_FooterRendersDarkAnchorColors(t *testing.T) {
	w := sampleWebsite()
	result := Export(w, w.Settings)

	assert.Contains(t, result.HTML,
		`<footer class="site-footer" style="background:#111827;color:#f9fafb">`)
}

func TestExport_HeroCTALinksContactOnlyWhenPresent(t *testing.T) {
	hero := site.Section{Type: "HeroSection", Order: 1, Props: map[string]any{"ctaText": "Book now"}}

	withContact := site.Website{Sections: []site.Section{
		hero,
		{Type: "ContactSection", Order: 2, Props: map[string]any{"title": "Contact"}},
	}}
	result := Export(withContact, site.DefaultSettings())
	assert.Contains(t, result.HTML, `<a class="cta" href="#contact">Book now</a>`)

	heroOnly := site.Website{Sections: []site.Section{hero}}
	result = Export(heroOnly, site.DefaultSettings())
	assert.NotContains(t, result.HTML, `href="#contact"`)
	assert.Contains(t, result.HTML, `<span class="cta">Book now</span>`)
}

func TestExport_FullFallbackSiteRendersEverySection(t *testing.T) {
	w := sampleWebsite()
	result := Export(w, w.Settings)

	for _, fragment := range []string{
		"site-header", "<h1>", "Our Menu", "Gallery", "What People Say",
		"id=\"contact\"", "site-footer",
	} {
		assert.Contains(t, result.HTML, fragment)
	}
	assert.NotContains(t, result.HTML, "Unknown section type")
}
