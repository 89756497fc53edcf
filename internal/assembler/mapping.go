package assembler

import (
	"sitegen/internal/content"
	"sitegen/internal/planner"
)

// mappingRule shapes one section type's payload into component props.
// Every rule must tolerate missing payload keys: absent values become
// literal defaults, never nil.
type mappingRule struct {
	Component string
	Shape     func(p content.Payload, req content.Request) map[string]any
}

// GenericComponent renders any section type without a dedicated rule.
const GenericComponent = "GenericSection"

var mappingRules = map[planner.SectionType]mappingRule{
	planner.Header: {
		Component: "HeaderSection",
		Shape: func(p content.Payload, req content.Request) map[string]any {
			return map[string]any{
				"title":     p.TextOr("title", req.Name()),
				"menuItems": p.Strings("menuItems"),
			}
		},
	},
	planner.Hero: {
		Component: "HeroSection",
		Shape: func(p content.Payload, req content.Request) map[string]any {
			return map[string]any{
				"title":       p.TextOr("title", "Welcome to "+req.Name()),
				"subtitle":    p.Text("subtitle"),
				"description": p.Text("description"),
				"ctaText":     p.TextOr("ctaText", "Get Started"),
			}
		},
	},
	planner.About: {
		Component: "AboutSection",
		Shape: func(p content.Payload, req content.Request) map[string]any {
			props := map[string]any{
				"title":       p.TextOr("title", "About "+req.Name()),
				"description": p.Text("description"),
			}
			if url := p.Text("imageUrl"); url != "" {
				props["imageUrl"] = url
			}
			return props
		},
	},
	planner.Menu: {
		Component: "MenuSection",
		Shape: func(p content.Payload, req content.Request) map[string]any {
			return map[string]any{
				"title":      p.TextOr("title", "Our Menu"),
				"categories": p.List("categories"),
			}
		},
	},
	planner.Gallery: {
		Component: "GallerySection",
		Shape: func(p content.Payload, req content.Request) map[string]any {
			return map[string]any{
				"title":  p.TextOr("title", "Gallery"),
				"images": p.List("images"),
			}
		},
	},
	planner.Testimonials: {
		Component: "TestimonialsSection",
		Shape: func(p content.Payload, req content.Request) map[string]any {
			return map[string]any{
				"title":        p.TextOr("title", "What People Say"),
				"testimonials": p.List("testimonials"),
			}
		},
	},
	planner.Services: {
		Component: "ServicesSection",
		Shape: func(p content.Payload, req content.Request) map[string]any {
			return map[string]any{
				"title":    p.TextOr("title", "Our Services"),
				"services": p.List("services"),
			}
		},
	},
	planner.Features: {
		Component: "FeaturesSection",
		Shape: func(p content.Payload, req content.Request) map[string]any {
			return map[string]any{
				"title": p.TextOr("title", "Why Choose Us"),
				"items": p.List("items"),
			}
		},
	},
	planner.CaseStudies: {
		Component: "CaseStudiesSection",
		Shape: func(p content.Payload, req content.Request) map[string]any {
			return map[string]any{
				"title": p.TextOr("title", "Case Studies"),
				"cases": p.List("cases"),
			}
		},
	},
	planner.Team: {
		Component: "TeamSection",
		Shape: func(p content.Payload, req content.Request) map[string]any {
			return map[string]any{
				"title":   p.TextOr("title", "Meet the Team"),
				"members": p.List("members"),
			}
		},
	},
	planner.Pricing: {
		Component: "PricingSection",
		Shape: func(p content.Payload, req content.Request) map[string]any {
			return map[string]any{
				"title": p.TextOr("title", "Pricing"),
				"plans": p.List("plans"),
			}
		},
	},
	planner.Search: {
		Component: "SearchSection",
		Shape: func(p content.Payload, req content.Request) map[string]any {
			return map[string]any{
				"title":       p.TextOr("title", "Search"),
				"placeholder": p.TextOr("placeholder", "Search..."),
			}
		},
	},
	planner.FeaturedListings: {
		Component: "FeaturedListingsSection",
		Shape: func(p content.Payload, req content.Request) map[string]any {
			return map[string]any{
				"title":    p.TextOr("title", "Featured Listings"),
				"listings": p.List("listings"),
			}
		},
	},
	planner.Neighborhoods: {
		Component: "NeighborhoodsSection",
		Shape: func(p content.Payload, req content.Request) map[string]any {
			return map[string]any{
				"title":         p.TextOr("title", "Neighborhoods"),
				"neighborhoods": p.List("neighborhoods"),
			}
		},
	},
	planner.Agents: {
		Component: "AgentsSection",
		Shape: func(p content.Payload, req content.Request) map[string]any {
			return map[string]any{
				"title":  p.TextOr("title", "Our Agents"),
				"agents": p.List("agents"),
			}
		},
	},
	planner.Contact: {
		Component: "ContactSection",
		Shape: func(p content.Payload, req content.Request) map[string]any {
			return map[string]any{
				"title":   p.TextOr("title", "Get in Touch"),
				"email":   p.Text("email"),
				"phone":   p.Text("phone"),
				"address": p.Text("address"),
			}
		},
	},
	planner.Footer: {
		Component: "FooterSection",
		Shape: func(p content.Payload, req content.Request) map[string]any {
			return map[string]any{
				"text":  p.TextOr("text", "© "+req.Name()),
				"links": p.Strings("links"),
			}
		},
	},
}

// mapSection resolves the mapping rule for a section type and shapes the
// payload into props. Unknown types pass through as a generic section.
func mapSection(sectionType planner.SectionType, p content.Payload, req content.Request) (string, map[string]any) {
	rule, ok := mappingRules[sectionType]
	if !ok {
		return GenericComponent, map[string]any{
			"title":       p.TextOr("title", string(sectionType)),
			"description": p.Text("description"),
		}
	}
	return rule.Component, rule.Shape(p, req)
}
