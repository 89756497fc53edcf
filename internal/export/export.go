package export

import (
	"sort"
	"strings"

	"sitegen/internal/site"
)

// Asset is one external file referenced by the exported document.
type Asset struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// Result is a self-contained export: one HTML document with the style
// sheet embedded, the same CSS standalone, and the referenced assets.
type Result struct {
	HTML   string  `json:"html"`
	CSS    string  `json:"css"`
	Assets []Asset `json:"assets"`
}

// Export serializes a website into HTML and CSS. It is total over
// well-formed input and deterministic: the same website and settings
// always produce byte-identical output.
func Export(w site.Website, settings site.Settings) Result {
	sections := sortedSections(w.Sections)
	css := buildCSS(settings)

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	sb.WriteString("<meta charset=\"utf-8\">\n")
	sb.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	sb.WriteString("<title>" + escape(w.Metadata.Title) + "</title>\n")
	if w.Metadata.Description != "" {
		sb.WriteString("<meta name=\"description\" content=\"" + escape(w.Metadata.Description) + "\">\n")
	}
	for _, link := range fontLinks(settings) {
		sb.WriteString(link + "\n")
	}
	sb.WriteString("<style>\n" + css + "</style>\n")
	sb.WriteString("</head>\n<body>\n")
	hasContact := false
	for _, sec := range sections {
		if sec.Type == "ContactSection" {
			hasContact = true
			break
		}
	}
	for _, sec := range sections {
		sb.WriteString(renderSection(sec, hasContact))
	}
	sb.WriteString("</body>\n</html>\n")

	return Result{
		HTML:   sb.String(),
		CSS:    css,
		Assets: CollectAssets(sections),
	}
}

// sortedSections orders sections by their numeric order field. The sort is
// stable: ties keep their original relative order.
func sortedSections(sections []site.Section) []site.Section {
	out := append([]site.Section(nil), sections...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}
