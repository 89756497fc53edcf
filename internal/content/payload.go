package content

import (
	"context"

	"sitegen/internal/planner"
)

// Payload is the loosely-typed content for one section, produced either by
// an LLM provider or by the fallback generator. The recognized keys depend
// on the section type; consumers must treat missing keys as absent, never
// as an error. A Payload is never nil at the boundary: the empty map is the
// minimum valid value.
type Payload map[string]any

// Generator produces content for one section. Implementations own their
// own timeout; a single attempt per call, the caller supplies the fallback.
type Generator interface {
	Generate(ctx context.Context, sectionType planner.SectionType, req Request) (Payload, error)
}

// Text returns the string under key, or "" when absent or not a string.
func (p Payload) Text(key string) string {
	s, _ := p[key].(string)
	return s
}

// TextOr returns the string under key, or def when absent or empty.
func (p Payload) TextOr(key, def string) string {
	if s := p.Text(key); s != "" {
		return s
	}
	return def
}

// List returns the slice of objects under key. JSON unmarshalling yields
// []any of map[string]any; anything else in the slice is skipped. Absent
// keys yield an empty slice, never nil semantics for callers.
func (p Payload) List(key string) []map[string]any {
	raw, ok := p[key].([]any)
	if !ok {
		return []map[string]any{}
	}
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// Strings returns the slice of strings under key, skipping non-strings.
func (p Payload) Strings(key string) []string {
	raw, ok := p[key].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
