package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePlan_RestaurantOrder(t *testing.T) {
	want := []SectionType{Header, Hero, About, Menu, Gallery, Testimonials, Contact, Footer}
	assert.Equal(t, want, ResolvePlan("restaurant"))
}

func TestResolvePlan_UnknownIndustryGetsDefaultPlan(t *testing.T) {
	want := []SectionType{Header, Hero, About, Features, Contact, Footer}
	assert.Equal(t, want, ResolvePlan("not-a-real-industry"))
	assert.Equal(t, want, ResolvePlan(""))
}

func TestResolvePlan_Deterministic(t *testing.T) {
	for _, key := range []string{"restaurant", "technology", "realestate", "unknown"} {
		assert.Equal(t, ResolvePlan(key), ResolvePlan(key), "plan for %q must be stable", key)
	}
}

func TestResolvePlan_NormalizesKey(t *testing.T) {
	assert.Equal(t, ResolvePlan("realestate"), ResolvePlan(" RealEstate "))
}

func TestResolvePlan_ReturnsCopy(t *testing.T) {
	plan := ResolvePlan("restaurant")
	plan[0] = Footer
	assert.Equal(t, Header, ResolvePlan("restaurant")[0])
}

func TestResolvePlan_EveryPlanStartsWithHeaderEndsWithFooter(t *testing.T) {
	for key := range industryPlans {
		plan := ResolvePlan(key)
		assert.Equal(t, Header, plan[0], "industry %q", key)
		assert.Equal(t, Footer, plan[len(plan)-1], "industry %q", key)
	}
}
