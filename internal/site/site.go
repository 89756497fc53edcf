package site

import (
	"strings"

	"github.com/google/uuid"
)

// Section is one assembled block of the page: a component identifier plus
// its fully-resolved props. Immutable once built.
type Section struct {
	Type  string         `json:"type"`
	Order int            `json:"order"`
	Props map[string]any `json:"props"`
}

// Metadata describes the website as a whole.
type Metadata struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Settings holds the color and typography values injected into the
// exported stylesheet.
type Settings struct {
	PrimaryColor    string `json:"primaryColor" yaml:"primary_color"`
	SecondaryColor  string `json:"secondaryColor" yaml:"secondary_color"`
	AccentColor     string `json:"accentColor" yaml:"accent_color"`
	BackgroundColor string `json:"backgroundColor" yaml:"background_color"`
	TextColor       string `json:"textColor" yaml:"text_color"`
	HeadingFont     string `json:"headingFont" yaml:"heading_font"`
	BodyFont        string `json:"bodyFont" yaml:"body_font"`
}

// Website is the aggregate document handed to rendering or export.
type Website struct {
	Metadata Metadata  `json:"metadata"`
	Settings Settings  `json:"settings"`
	Sections []Section `json:"sections"`
}

func NewMetadata(title, description string) Metadata {
	return Metadata{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
	}
}

// WithSectionProps returns a copy of the website with one section's props
// replaced. The receiver is left untouched; the customize flow always
// produces a new value.
func (w Website) WithSectionProps(index int, props map[string]any) Website {
	out := w
	out.Sections = append([]Section(nil), w.Sections...)
	if index >= 0 && index < len(out.Sections) {
		sec := out.Sections[index]
		sec.Props = props
		out.Sections[index] = sec
	}
	return out
}

// DefaultSettings is the neutral palette used when no style is requested.
func DefaultSettings() Settings {
	return Settings{
		PrimaryColor:    "#2563eb",
		SecondaryColor:  "#1e40af",
		AccentColor:     "#f59e0b",
		BackgroundColor: "#ffffff",
		TextColor:       "#111827",
		HeadingFont:     "Playfair Display",
		BodyFont:        "Open Sans",
	}
}

// SettingsForStyle maps a style key from the generation request to a
// palette. Unknown keys fall back to the default settings.
func SettingsForStyle(style string) Settings {
	switch strings.ToLower(strings.TrimSpace(style)) {
	case "modern":
		return Settings{
			PrimaryColor:    "#0ea5e9",
			SecondaryColor:  "#0369a1",
			AccentColor:     "#22d3ee",
			BackgroundColor: "#ffffff",
			TextColor:       "#0f172a",
			HeadingFont:     "Montserrat",
			BodyFont:        "Inter",
		}
	case "classic":
		return Settings{
			PrimaryColor:    "#92400e",
			SecondaryColor:  "#78350f",
			AccentColor:     "#d97706",
			BackgroundColor: "#fffbeb",
			TextColor:       "#1c1917",
			HeadingFont:     "Playfair Display",
			BodyFont:        "Lora",
		}
	case "bold":
		return Settings{
			PrimaryColor:    "#dc2626",
			SecondaryColor:  "#991b1b",
			AccentColor:     "#facc15",
			BackgroundColor: "#ffffff",
			TextColor:       "#18181b",
			HeadingFont:     "Oswald",
			BodyFont:        "Roboto",
		}
	case "minimal":
		return Settings{
			PrimaryColor:    "#334155",
			SecondaryColor:  "#1e293b",
			AccentColor:     "#94a3b8",
			BackgroundColor: "#f8fafc",
			TextColor:       "#0f172a",
			HeadingFont:     "Work Sans",
			BodyFont:        "Work Sans",
		}
	default:
		return DefaultSettings()
	}
}
