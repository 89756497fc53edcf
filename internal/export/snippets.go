package export

import (
	"fmt"
	"html"
	"strings"

	"sitegen/internal/site"
)

func escape(s string) string {
	return html.EscapeString(s)
}

// propText reads a string prop, tolerating absence and wrong types.
func propText(props map[string]any, key string) string {
	s, _ := props[key].(string)
	return s
}

// propItems reads a list-of-objects prop. Mapped sections carry typed
// slices; sections decoded from JSON carry []any. Both are accepted.
func propItems(props map[string]any, key string) []map[string]any {
	switch v := props[key].(type) {
	case []map[string]any:
		return v
	case []any:
		out := make([]map[string]any, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}

func propStrings(props map[string]any, key string) []string {
	switch v := props[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// styleAttr builds the inline style attribute for a section's theme
// colors. Empty when the props carry neither color.
func styleAttr(props map[string]any) string {
	bg := propText(props, "backgroundColor")
	fg := propText(props, "textColor")
	if bg == "" && fg == "" {
		return ""
	}
	var parts []string
	if bg != "" {
		parts = append(parts, "background:"+bg)
	}
	if fg != "" {
		parts = append(parts, "color:"+fg)
	}
	return ` style="` + escape(strings.Join(parts, ";")) + `"`
}

func sectionOpen(sb *strings.Builder, class string, props map[string]any) {
	fmt.Fprintf(sb, `<section class="%s"%s><div class="section-inner">`, class, styleAttr(props))
	sb.WriteString("\n")
}

func sectionClose(sb *strings.Builder) {
	sb.WriteString("</div></section>\n")
}

func writeHeading(sb *strings.Builder, props map[string]any) {
	if title := propText(props, "title"); title != "" {
		sb.WriteString("<h2>" + escape(title) + "</h2>\n")
	}
}

// renderSection maps a section's component type to its HTML snippet.
// Unrecognized types render a visible fallback paragraph; rendering never
// fails on missing props. linkContact reports whether the document has a
// contact section for in-page anchors to point at.
func renderSection(sec site.Section, linkContact bool) string {
	var sb strings.Builder
	props := sec.Props
	if props == nil {
		props = map[string]any{}
	}

	switch sec.Type {
	case "HeaderSection":
		sb.WriteString(`<header class="site-header"` + styleAttr(props) + `>`)
		sb.WriteString("<strong>" + escape(propText(props, "title")) + "</strong><nav>")
		for _, item := range propStrings(props, "menuItems") {
			sb.WriteString(`<a href="#">` + escape(item) + "</a>")
		}
		sb.WriteString("</nav></header>\n")

	case "HeroSection":
		sectionOpen(&sb, "hero", props)
		sb.WriteString("<h1>" + escape(propText(props, "title")) + "</h1>\n")
		if subtitle := propText(props, "subtitle"); subtitle != "" {
			sb.WriteString("<h3>" + escape(subtitle) + "</h3>\n")
		}
		if desc := propText(props, "description"); desc != "" {
			sb.WriteString("<p>" + escape(desc) + "</p>\n")
		}
		if cta := propText(props, "ctaText"); cta != "" {
			if linkContact {
				sb.WriteString(`<a class="cta" href="#contact">` + escape(cta) + "</a>\n")
			} else {
				sb.WriteString(`<span class="cta">` + escape(cta) + "</span>\n")
			}
		}
		sectionClose(&sb)

	case "AboutSection":
		sectionOpen(&sb, "about", props)
		writeHeading(&sb, props)
		sb.WriteString("<p>" + escape(propText(props, "description")) + "</p>\n")
		if url := propText(props, "imageUrl"); url != "" {
			sb.WriteString(`<img src="` + escape(url) + `" alt="">` + "\n")
		}
		sectionClose(&sb)

	case "MenuSection":
		sectionOpen(&sb, "menu", props)
		writeHeading(&sb, props)
		for _, cat := range propItems(props, "categories") {
			sb.WriteString("<h3>" + escape(propText(cat, "name")) + "</h3>\n<ul>\n")
			for _, item := range propItems(cat, "items") {
				fmt.Fprintf(&sb, "<li><strong>%s</strong> %s <em>%s</em></li>\n",
					escape(propText(item, "name")),
					escape(propText(item, "description")),
					escape(propText(item, "price")))
			}
			sb.WriteString("</ul>\n")
		}
		sectionClose(&sb)

	case "GallerySection":
		sectionOpen(&sb, "gallery", props)
		writeHeading(&sb, props)
		sb.WriteString(`<div class="card-grid">` + "\n")
		for _, img := range propItems(props, "images") {
			fmt.Fprintf(&sb, `<figure><img src="%s" alt="%s"><figcaption>%s</figcaption></figure>`+"\n",
				escape(propText(img, "imageUrl")),
				escape(propText(img, "caption")),
				escape(propText(img, "caption")))
		}
		sb.WriteString("</div>\n")
		sectionClose(&sb)

	case "TestimonialsSection":
		sectionOpen(&sb, "testimonials", props)
		writeHeading(&sb, props)
		for _, tsm := range propItems(props, "testimonials") {
			fmt.Fprintf(&sb, "<blockquote>%s<footer>%s, %s</footer></blockquote>\n",
				escape(propText(tsm, "quote")),
				escape(propText(tsm, "author")),
				escape(propText(tsm, "role")))
		}
		sectionClose(&sb)

	case "ServicesSection":
		sectionOpen(&sb, "services", props)
		writeHeading(&sb, props)
		renderCardGrid(&sb, propItems(props, "services"), "name", "description")
		sectionClose(&sb)

	case "FeaturesSection":
		sectionOpen(&sb, "features", props)
		writeHeading(&sb, props)
		renderCardGrid(&sb, propItems(props, "items"), "title", "description")
		sectionClose(&sb)

	case "CaseStudiesSection":
		sectionOpen(&sb, "case-studies", props)
		writeHeading(&sb, props)
		for _, cs := range propItems(props, "cases") {
			fmt.Fprintf(&sb, `<div class="card"><h3>%s</h3><p>%s</p><p><strong>%s</strong></p></div>`+"\n",
				escape(propText(cs, "client")),
				escape(propText(cs, "summary")),
				escape(propText(cs, "result")))
		}
		sectionClose(&sb)

	case "TeamSection":
		sectionOpen(&sb, "team", props)
		writeHeading(&sb, props)
		sb.WriteString(`<div class="card-grid">` + "\n")
		for _, member := range propItems(props, "members") {
			fmt.Fprintf(&sb, `<div class="card"><h3>%s</h3><p><em>%s</em></p><p>%s</p></div>`+"\n",
				escape(propText(member, "name")),
				escape(propText(member, "role")),
				escape(propText(member, "bio")))
		}
		sb.WriteString("</div>\n")
		sectionClose(&sb)

	case "PricingSection":
		sectionOpen(&sb, "pricing", props)
		writeHeading(&sb, props)
		sb.WriteString(`<div class="card-grid">` + "\n")
		for _, plan := range propItems(props, "plans") {
			fmt.Fprintf(&sb, `<div class="card"><h3>%s</h3><p><strong>%s</strong></p><ul>`,
				escape(propText(plan, "name")),
				escape(propText(plan, "price")))
			for _, feature := range propStrings(plan, "features") {
				sb.WriteString("<li>" + escape(feature) + "</li>")
			}
			sb.WriteString("</ul></div>\n")
		}
		sb.WriteString("</div>\n")
		sectionClose(&sb)

	case "SearchSection":
		sectionOpen(&sb, "search", props)
		writeHeading(&sb, props)
		fmt.Fprintf(&sb, `<input type="search" placeholder="%s">`+"\n", escape(propText(props, "placeholder")))
		sectionClose(&sb)

	case "FeaturedListingsSection":
		sectionOpen(&sb, "listings", props)
		writeHeading(&sb, props)
		sb.WriteString(`<div class="card-grid">` + "\n")
		for _, listing := range propItems(props, "listings") {
			sb.WriteString(`<div class="card">`)
			if url := propText(listing, "imageUrl"); url != "" {
				sb.WriteString(`<img src="` + escape(url) + `" alt="">`)
			}
			fmt.Fprintf(&sb, "<h3>%s</h3><p>%s</p></div>\n",
				escape(propText(listing, "address")),
				escape(propText(listing, "price")))
		}
		sb.WriteString("</div>\n")
		sectionClose(&sb)

	case "NeighborhoodsSection":
		sectionOpen(&sb, "neighborhoods", props)
		writeHeading(&sb, props)
		renderCardGrid(&sb, propItems(props, "neighborhoods"), "name", "description")
		sectionClose(&sb)

	case "AgentsSection":
		sectionOpen(&sb, "agents", props)
		writeHeading(&sb, props)
		for _, agent := range propItems(props, "agents") {
			fmt.Fprintf(&sb, `<div class="card"><h3>%s</h3><p>%s · %s</p></div>`+"\n",
				escape(propText(agent, "name")),
				escape(propText(agent, "phone")),
				escape(propText(agent, "email")))
		}
		sectionClose(&sb)

	case "ContactSection":
		sb.WriteString(`<section id="contact"` + styleAttr(props) + `><div class="section-inner">` + "\n")
		writeHeading(&sb, props)
		for _, key := range []string{"email", "phone", "address"} {
			if v := propText(props, key); v != "" {
				sb.WriteString("<p>" + escape(v) + "</p>\n")
			}
		}
		sectionClose(&sb)

	case "FooterSection":
		sb.WriteString(`<footer class="site-footer"` + styleAttr(props) + `>`)
		sb.WriteString("<p>" + escape(propText(props, "text")) + "</p>")
		for _, link := range propStrings(props, "links") {
			sb.WriteString(`<a href="#">` + escape(link) + "</a>")
		}
		sb.WriteString("</footer>\n")

	case "GenericSection":
		sectionOpen(&sb, "generic", props)
		writeHeading(&sb, props)
		if desc := propText(props, "description"); desc != "" {
			sb.WriteString("<p>" + escape(desc) + "</p>\n")
		}
		sectionClose(&sb)

	default:
		fmt.Fprintf(&sb, `<section class="unknown-section"><p>Unknown section type: %s</p></section>`+"\n",
			escape(sec.Type))
	}
	return sb.String()
}

func renderCardGrid(sb *strings.Builder, items []map[string]any, titleKey, bodyKey string) {
	sb.WriteString(`<div class="card-grid">` + "\n")
	for _, item := range items {
		fmt.Fprintf(sb, `<div class="card"><h3>%s</h3><p>%s</p></div>`+"\n",
			escape(propText(item, titleKey)),
			escape(propText(item, bodyKey)))
	}
	sb.WriteString("</div>\n")
}
