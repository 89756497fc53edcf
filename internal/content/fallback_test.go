package content

import (
	"encoding/json"
	"testing"

	"sitegen/internal/planner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var knownSectionTypes = []planner.SectionType{
	planner.Header, planner.Hero, planner.About, planner.Menu, planner.Gallery,
	planner.Testimonials, planner.Services, planner.Features, planner.CaseStudies,
	planner.Team, planner.Pricing, planner.Search, planner.FeaturedListings,
	planner.Neighborhoods, planner.Agents, planner.Contact, planner.Footer,
}

func TestFallbackPayload_NeverNilAndJSONSerializable(t *testing.T) {
	req := Request{Industry: "restaurant", WebsiteName: "Gourmet Haven"}
	for _, st := range knownSectionTypes {
		p := FallbackPayload(st, req)
		require.NotNil(t, p, "section %q", st)

		_, err := json.Marshal(p)
		require.NoError(t, err, "section %q", st)
	}
}

func TestFallbackPayload_Deterministic(t *testing.T) {
	req := Request{WebsiteName: "Foo"}
	for _, st := range knownSectionTypes {
		assert.Equal(t, FallbackPayload(st, req), FallbackPayload(st, req), "section %q", st)
	}
}

func TestFallbackPayload_HeroReusesRequestFields(t *testing.T) {
	p := FallbackPayload(planner.Hero, Request{
		WebsiteName:         "Gourmet Haven",
		Description:         "fine dining",
		UniqueSellingPoints: "michelin chef",
	})

	assert.Equal(t, "Welcome to Gourmet Haven", p.Text("title"))
	assert.Equal(t, "michelin chef", p.Text("subtitle"))
	assert.Equal(t, "fine dining", p.Text("description"))
}

func TestFallbackPayload_MenuHasNonEmptyCategories(t *testing.T) {
	p := FallbackPayload(planner.Menu, Request{Industry: "restaurant"})
	categories := p.List("categories")
	require.NotEmpty(t, categories)
	for _, cat := range categories {
		assert.NotEmpty(t, cat["name"])
	}
}

func TestFallbackPayload_TestimonialsHasTwoEntries(t *testing.T) {
	p := FallbackPayload(planner.Testimonials, Request{WebsiteName: "Foo"})
	assert.Len(t, p.List("testimonials"), 2)
}

func TestFallbackPayload_FeaturesHasThreeItems(t *testing.T) {
	p := FallbackPayload(planner.Features, Request{})
	assert.Len(t, p.List("items"), 3)
}

func TestFallbackPayload_UnknownSectionReturnsEmptyPayload(t *testing.T) {
	p := FallbackPayload(planner.SectionType("booking-widget"), Request{})
	require.NotNil(t, p)
	assert.Empty(t, p)
}

func TestFallbackPayload_BlankNameGetsPlaceholder(t *testing.T) {
	p := FallbackPayload(planner.Hero, Request{})
	assert.Equal(t, "Welcome to Your Business", p.Text("title"))
}
