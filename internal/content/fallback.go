package content

import (
	"fmt"

	"sitegen/internal/planner"
)

// FallbackPayload synthesizes deterministic placeholder content for a
// section when the model is unavailable or returned malformed output. It
// is total: every call returns a payload of the same shape a well-formed
// model response would have, and unknown section types return the empty
// payload rather than an error.
func FallbackPayload(sectionType planner.SectionType, req Request) Payload {
	name := req.Name()

	switch sectionType {
	case planner.Header:
		return Payload{
			"title":     name,
			"menuItems": []any{"Home", "About", "Services", "Contact"},
		}
	case planner.Hero:
		subtitle := req.UniqueSellingPoints
		if subtitle == "" {
			subtitle = "Quality you can count on"
		}
		description := req.Description
		if description == "" {
			description = fmt.Sprintf("%s brings you an experience worth coming back for.", name)
		}
		return Payload{
			"title":       "Welcome to " + name,
			"subtitle":    subtitle,
			"description": description,
			"ctaText":     "Get Started",
		}
	case planner.About:
		audience := req.TargetAudience
		if audience == "" {
			audience = "our customers"
		}
		return Payload{
			"title": "About " + name,
			"description": fmt.Sprintf("%s was founded with a simple idea: give %s something genuinely better. "+
				"Every day we work to keep that promise.", name, audience),
		}
	case planner.Menu:
		return Payload{
			"title": "Our Menu",
			"categories": []any{
				map[string]any{
					"name": "Starters",
					"items": []any{
						map[string]any{"name": "Seasonal Soup", "description": "Made fresh every morning", "price": "$8"},
						map[string]any{"name": "House Salad", "description": "Garden greens with citrus dressing", "price": "$9"},
					},
				},
				map[string]any{
					"name": "Mains",
					"items": []any{
						map[string]any{"name": "Chef's Signature", "description": "Ask your server about today's creation", "price": "$24"},
						map[string]any{"name": "Market Fish", "description": "Sustainably sourced, simply prepared", "price": "$26"},
					},
				},
				map[string]any{
					"name": "Desserts",
					"items": []any{
						map[string]any{"name": "Classic Tiramisu", "description": "A house favorite", "price": "$10"},
					},
				},
			},
		}
	case planner.Gallery:
		return Payload{
			"title": "Gallery",
			"images": []any{
				map[string]any{"imageUrl": "https://images.example.com/gallery-1.jpg", "caption": "A look inside " + name},
				map[string]any{"imageUrl": "https://images.example.com/gallery-2.jpg", "caption": "Crafted with care"},
				map[string]any{"imageUrl": "https://images.example.com/gallery-3.jpg", "caption": "Moments worth sharing"},
			},
		}
	case planner.Testimonials:
		return Payload{
			"title": "What People Say",
			"testimonials": []any{
				map[string]any{
					"quote":  fmt.Sprintf("%s exceeded every expectation. I recommend them to everyone I know.", name),
					"author": "Jamie R.",
					"role":   "Longtime customer",
				},
				map[string]any{
					"quote":  "Professional, friendly, and genuinely great at what they do.",
					"author": "Alex M.",
					"role":   "First-time visitor",
				},
			},
		}
	case planner.Services:
		return Payload{
			"title": "Our Services",
			"services": []any{
				map[string]any{"name": "Consultation", "description": "A conversation about what you need and how we can help."},
				map[string]any{"name": "Core Service", "description": fmt.Sprintf("The heart of what %s does, delivered with care.", name)},
				map[string]any{"name": "Ongoing Support", "description": "We stay available long after the first visit."},
			},
		}
	case planner.Features:
		return Payload{
			"title": "Why Choose Us",
			"items": []any{
				map[string]any{"title": "Built on Experience", "description": "Years of practice distilled into everything we deliver."},
				map[string]any{"title": "Customer First", "description": "Responsive, honest, and easy to work with."},
				map[string]any{"title": "Fair Pricing", "description": "Transparent rates with no surprises."},
			},
		}
	case planner.CaseStudies:
		return Payload{
			"title": "Case Studies",
			"cases": []any{
				map[string]any{"client": "Acme Logistics", "summary": "Streamlined their daily operations.", "result": "32% faster turnaround"},
				map[string]any{"client": "Northwind Retail", "summary": "Modernized their customer experience.", "result": "2x repeat visits"},
			},
		}
	case planner.Team:
		return Payload{
			"title": "Meet the Team",
			"members": []any{
				map[string]any{"name": "Sam Carter", "role": "Founder", "bio": fmt.Sprintf("Started %s to do things differently.", name)},
				map[string]any{"name": "Riley Chen", "role": "Operations", "bio": "Keeps everything running on time."},
				map[string]any{"name": "Morgan Diaz", "role": "Customer Success", "bio": "Your first call and your biggest advocate."},
			},
		}
	case planner.Pricing:
		return Payload{
			"title": "Pricing",
			"plans": []any{
				map[string]any{"name": "Starter", "price": "$19/mo", "features": []any{"Core features", "Email support"}},
				map[string]any{"name": "Professional", "price": "$49/mo", "features": []any{"Everything in Starter", "Priority support", "Advanced options"}},
				map[string]any{"name": "Enterprise", "price": "Contact us", "features": []any{"Custom terms", "Dedicated manager"}},
			},
		}
	case planner.Search:
		return Payload{
			"title":       "Find Your Next Home",
			"placeholder": "City, neighborhood, or ZIP",
		}
	case planner.FeaturedListings:
		return Payload{
			"title": "Featured Listings",
			"listings": []any{
				map[string]any{"address": "14 Maple Court", "price": "$425,000", "beds": 3, "baths": 2, "imageUrl": "https://images.example.com/listing-1.jpg"},
				map[string]any{"address": "782 Harbor View", "price": "$610,000", "beds": 4, "baths": 3, "imageUrl": "https://images.example.com/listing-2.jpg"},
			},
		}
	case planner.Neighborhoods:
		return Payload{
			"title": "Neighborhoods We Know",
			"neighborhoods": []any{
				map[string]any{"name": "Old Town", "description": "Historic streets, walkable cafes, strong community."},
				map[string]any{"name": "Riverside", "description": "Parks, trails, and quick access downtown."},
			},
		}
	case planner.Agents:
		return Payload{
			"title": "Our Agents",
			"agents": []any{
				map[string]any{"name": "Taylor Brooks", "phone": "(555) 010-2200", "email": "taylor@example.com"},
				map[string]any{"name": "Jordan Lee", "phone": "(555) 010-2201", "email": "jordan@example.com"},
			},
		}
	case planner.Contact:
		return Payload{
			"title":   "Get in Touch",
			"email":   "hello@example.com",
			"phone":   "(555) 010-1000",
			"address": "123 Main Street",
		}
	case planner.Footer:
		return Payload{
			"text":  fmt.Sprintf("© %s. All rights reserved.", name),
			"links": []any{"Privacy", "Terms", "Contact"},
		}
	default:
		return Payload{}
	}
}
