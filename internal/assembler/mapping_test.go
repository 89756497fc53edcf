package assembler

import (
	"encoding/json"
	"testing"

	"sitegen/internal/content"
	"sitegen/internal/planner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allMappedTypes = []planner.SectionType{
	planner.Header, planner.Hero, planner.About, planner.Menu, planner.Gallery,
	planner.Testimonials, planner.Services, planner.Features, planner.CaseStudies,
	planner.Team, planner.Pricing, planner.Search, planner.FeaturedListings,
	planner.Neighborhoods, planner.Agents, planner.Contact, planner.Footer,
}

// Every mapping rule must accept both a fallback payload and an
// LLM-shaped payload without assuming provider-specific keys.
func TestMapSection_FallbackShapeParity(t *testing.T) {
	req := content.Request{Industry: "restaurant", WebsiteName: "Gourmet Haven"}
	for _, st := range allMappedTypes {
		fromFallback := content.FallbackPayload(st, req)
		component, props := mapSection(st, fromFallback, req)

		assert.NotEqual(t, GenericComponent, component, "section %q must have a dedicated rule", st)
		require.NotNil(t, props, "section %q", st)

		_, err := json.Marshal(props)
		require.NoError(t, err, "section %q props must be JSON-serializable", st)
	}
}

// Simulate an LLM payload that round-tripped through JSON, so list values
// arrive as []any rather than typed slices.
func TestMapSection_AcceptsJSONRoundTrippedPayload(t *testing.T) {
	raw := `{"title":"Chef's Picks","categories":[{"name":"Mains","items":[{"name":"Fish","price":"$20"}]}]}`
	payload, err := content.ExtractJSON(raw)
	require.NoError(t, err)

	component, props := mapSection(planner.Menu, payload, content.Request{})

	assert.Equal(t, "MenuSection", component)
	assert.Equal(t, "Chef's Picks", props["title"])
	categories, ok := props["categories"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, categories, 1)
	assert.Equal(t, "Mains", categories[0]["name"])
}

func TestMapSection_MissingKeysBecomeLiteralDefaults(t *testing.T) {
	req := content.Request{WebsiteName: "Foo"}

	_, hero := mapSection(planner.Hero, content.Payload{}, req)
	assert.Equal(t, "Welcome to Foo", hero["title"])
	assert.Equal(t, "Get Started", hero["ctaText"])

	_, features := mapSection(planner.Features, content.Payload{}, req)
	assert.NotNil(t, features["items"])
	assert.Empty(t, features["items"])

	_, footer := mapSection(planner.Footer, content.Payload{}, req)
	assert.Equal(t, "© Foo", footer["text"])
}

func TestMapSection_UnknownTypeIsGenericPassthrough(t *testing.T) {
	component, props := mapSection(planner.SectionType("booking"), content.Payload{}, content.Request{})

	assert.Equal(t, GenericComponent, component)
	assert.Equal(t, "booking", props["title"])
	assert.Equal(t, "", props["description"])
}

func TestMapSection_UnknownTypeKeepsProvidedContent(t *testing.T) {
	p := content.Payload{"title": "Book a Table", "description": "Reserve online"}
	component, props := mapSection(planner.SectionType("booking"), p, content.Request{})

	assert.Equal(t, GenericComponent, component)
	assert.Equal(t, "Book a Table", props["title"])
	assert.Equal(t, "Reserve online", props["description"])
}
