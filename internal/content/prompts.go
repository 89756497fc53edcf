package content

import (
	"fmt"
	"strings"

	"sitegen/internal/planner"
)

// PromptBuilder constructs the generation prompt for one section.
type PromptBuilder struct{}

const jsonOnlyInstruction = "\nRespond with a single JSON object and nothing else. " +
	"Do not wrap the JSON in markdown fences and do not add commentary.\n"

// sectionKeyHints tells the model which keys the mapping layer recognizes
// for each section type. Types without a hint get the generic title /
// description shape.
var sectionKeyHints = map[planner.SectionType]string{
	planner.Header:           `{"title": string, "menuItems": [string]}`,
	planner.Hero:             `{"title": string, "subtitle": string, "description": string, "ctaText": string}`,
	planner.About:            `{"title": string, "description": string, "imageUrl": string}`,
	planner.Menu:             `{"title": string, "categories": [{"name": string, "items": [{"name": string, "description": string, "price": string}]}]}`,
	planner.Gallery:          `{"title": string, "images": [{"imageUrl": string, "caption": string}]}`,
	planner.Testimonials:     `{"title": string, "testimonials": [{"quote": string, "author": string, "role": string}]}`,
	planner.Services:         `{"title": string, "services": [{"name": string, "description": string}]}`,
	planner.Features:         `{"title": string, "items": [{"title": string, "description": string}]}`,
	planner.CaseStudies:      `{"title": string, "cases": [{"client": string, "summary": string, "result": string}]}`,
	planner.Team:             `{"title": string, "members": [{"name": string, "role": string, "bio": string}]}`,
	planner.Pricing:          `{"title": string, "plans": [{"name": string, "price": string, "features": [string]}]}`,
	planner.Search:           `{"title": string, "placeholder": string}`,
	planner.FeaturedListings: `{"title": string, "listings": [{"address": string, "price": string, "beds": number, "baths": number, "imageUrl": string}]}`,
	planner.Neighborhoods:    `{"title": string, "neighborhoods": [{"name": string, "description": string}]}`,
	planner.Agents:           `{"title": string, "agents": [{"name": string, "phone": string, "email": string}]}`,
	planner.Contact:          `{"title": string, "email": string, "phone": string, "address": string}`,
	planner.Footer:           `{"text": string, "links": [string]}`,
}

// BuildSectionPrompt combines the industry brief, the section type and the
// request fields into a single generation prompt.
func (pb *PromptBuilder) BuildSectionPrompt(brief string, sectionType planner.SectionType, req Request) string {
	var sb strings.Builder
	sb.WriteString("Role: Copywriter for small-business landing pages. ")
	fmt.Fprintf(&sb, "Task: Write the content for the %q section of a website.\n", sectionType)

	if brief != "" {
		sb.WriteString("\nIndustry context: " + brief + "\n")
	}

	fmt.Fprintf(&sb, "\nBusiness name: %s\n", req.Name())
	if req.Description != "" {
		fmt.Fprintf(&sb, "Business description: %s\n", req.Description)
	}
	if req.TargetAudience != "" {
		fmt.Fprintf(&sb, "Target audience: %s\n", req.TargetAudience)
	}
	if req.UniqueSellingPoints != "" {
		fmt.Fprintf(&sb, "Unique selling points: %s\n", req.UniqueSellingPoints)
	}
	for _, msg := range req.History {
		fmt.Fprintf(&sb, "Earlier %s note: %s\n", msg.Role, msg.Content)
	}

	shape, ok := sectionKeyHints[sectionType]
	if !ok {
		shape = `{"title": string, "description": string}`
	}
	sb.WriteString("\nExpected JSON shape: " + shape + "\n")
	sb.WriteString(jsonOnlyInstruction)
	return sb.String()
}
