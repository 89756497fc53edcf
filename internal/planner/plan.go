package planner

import "strings"

// SectionType tags one block of the page plan. The set is open: industries
// can introduce their own types, and unknown types degrade to a generic
// section downstream.
type SectionType string

const (
	Header           SectionType = "header"
	Hero             SectionType = "hero"
	About            SectionType = "about"
	Menu             SectionType = "menu"
	Gallery          SectionType = "gallery"
	Testimonials     SectionType = "testimonials"
	Services         SectionType = "services"
	Features         SectionType = "features"
	CaseStudies      SectionType = "casestudies"
	Team             SectionType = "team"
	Pricing          SectionType = "pricing"
	Search           SectionType = "search"
	FeaturedListings SectionType = "featuredlistings"
	Neighborhoods    SectionType = "neighborhoods"
	Agents           SectionType = "agents"
	Contact          SectionType = "contact"
	Footer           SectionType = "footer"
)

// industryPlans maps an industry key to its ordered section plan. Order is
// significant: it is the render order of the finished page and is preserved
// end-to-end through assembly and export.
var industryPlans = map[string][]SectionType{
	"restaurant": {Header, Hero, About, Menu, Gallery, Testimonials, Contact, Footer},
	"technology": {Header, Hero, Features, Services, CaseStudies, Team, Pricing, Contact, Footer},
	"ecommerce":  {Header, Hero, Features, Gallery, Testimonials, Pricing, Contact, Footer},
	"realestate": {Header, Hero, Search, FeaturedListings, Neighborhoods, Agents, Testimonials, Contact, Footer},
	"healthcare": {Header, Hero, About, Services, Team, Testimonials, Contact, Footer},
	"fitness":    {Header, Hero, About, Services, Pricing, Gallery, Contact, Footer},
	"portfolio":  {Header, Hero, About, Gallery, Services, Contact, Footer},
}

// DefaultPlan is used for industries without a dedicated plan.
func DefaultPlan() []SectionType {
	return []SectionType{Header, Hero, About, Features, Contact, Footer}
}

// ResolvePlan returns the ordered section plan for an industry. Unknown
// industries get the default plan; the same key always yields the same
// order. The returned slice is a copy and safe to mutate.
func ResolvePlan(industryKey string) []SectionType {
	key := strings.ToLower(strings.TrimSpace(industryKey))
	plan, ok := industryPlans[key]
	if !ok {
		return DefaultPlan()
	}
	return append([]SectionType(nil), plan...)
}
