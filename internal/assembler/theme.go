package assembler

import "sitegen/internal/planner"

// Anchor sections get the inverted pairing; everything else stays light.
const (
	darkBackground  = "#111827"
	lightText       = "#f9fafb"
	lightBackground = "#ffffff"
	darkText        = "#111827"
)

// applyTheme attaches the derived cosmetic defaults for a section. Hero
// and Footer act as strong visual anchors and default to dark-on-light
// inversion. Existing values from content or request are never overridden.
func applyTheme(sectionType planner.SectionType, props map[string]any) {
	bg, fg := lightBackground, darkText
	if sectionType == planner.Hero || sectionType == planner.Footer {
		bg, fg = darkBackground, lightText
	}
	if _, ok := props["backgroundColor"]; !ok {
		props["backgroundColor"] = bg
	}
	if _, ok := props["textColor"]; !ok {
		props["textColor"] = fg
	}
}
