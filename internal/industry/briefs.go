package industry

import "strings"

// briefs primes content generation with a short description of what a
// website in each industry should talk about. Loaded once, never mutated.
var briefs = map[string]string{
	"restaurant": "A restaurant website that highlights the dining experience, signature dishes, " +
		"the story behind the kitchen, and makes it easy to find opening hours and book a table.",
	"technology": "A technology company website that communicates the product value proposition, " +
		"core features, customer success stories, and builds trust with enterprise buyers.",
	"ecommerce": "An online store website that showcases featured products, seasonal collections, " +
		"customer reviews, and drives visitors toward the catalog and checkout.",
	"realestate": "A real estate agency website that lets visitors search listings, browse featured " +
		"properties and neighborhoods, and get in touch with local agents.",
	"healthcare": "A healthcare practice website that presents services, introduces the care team, " +
		"reassures patients with testimonials, and makes appointment booking simple.",
	"fitness": "A fitness studio website that promotes classes and training programs, membership " +
		"plans, coach profiles, and motivates visitors to start a trial.",
	"portfolio": "A personal portfolio website that presents selected work, skills, and a short " +
		"biography, and invites collaboration inquiries.",
}

// Brief returns the content brief for an industry key, or an empty string
// for unknown industries. Unknown keys are not an error; generation simply
// proceeds without industry priming.
func Brief(industryKey string) string {
	return briefs[normalize(industryKey)]
}

// Known reports whether an industry has a dedicated brief.
func Known(industryKey string) bool {
	_, ok := briefs[normalize(industryKey)]
	return ok
}

func normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
