package export

import (
	"fmt"
	"strings"

	"sitegen/internal/site"
)

// cssTemplate is the fixed stylesheet; settings values are interpolated
// into the CSS variables at the top.
const cssTemplate = `:root {
  --primary-color: %s;
  --secondary-color: %s;
  --accent-color: %s;
  --background-color: %s;
  --text-color: %s;
  --heading-font: '%s', serif;
  --body-font: '%s', sans-serif;
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body {
  font-family: var(--body-font);
  color: var(--text-color);
  background: var(--background-color);
  line-height: 1.6;
}
h1, h2, h3 { font-family: var(--heading-font); }
section { padding: 4rem 1.5rem; }
.section-inner { max-width: 960px; margin: 0 auto; }
.hero { text-align: center; padding: 6rem 1.5rem; }
.hero .cta {
  display: inline-block;
  margin-top: 1.5rem;
  padding: 0.75rem 2rem;
  background: var(--primary-color);
  color: #fff;
  border-radius: 4px;
  text-decoration: none;
}
.card-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); gap: 1.5rem; margin-top: 2rem; }
.card { border: 1px solid rgba(0,0,0,0.08); border-radius: 8px; padding: 1.5rem; }
.site-header { display: flex; justify-content: space-between; align-items: center; padding: 1rem 1.5rem; }
.site-header nav a { margin-left: 1.25rem; color: inherit; text-decoration: none; }
.site-footer { text-align: center; padding: 2rem 1.5rem; }
.site-footer a { color: inherit; margin: 0 0.5rem; }
blockquote { font-style: italic; }
.unknown-section { padding: 2rem; text-align: center; opacity: 0.6; }
`

func buildCSS(s site.Settings) string {
	return fmt.Sprintf(cssTemplate,
		s.PrimaryColor,
		s.SecondaryColor,
		s.AccentColor,
		s.BackgroundColor,
		s.TextColor,
		s.HeadingFont,
		s.BodyFont,
	)
}

// fontQuery converts a font family name into its query-string form, with
// spaces replaced by '+'.
func fontQuery(family string) string {
	return strings.ReplaceAll(family, " ", "+")
}

// fontLinks builds the Google-Fonts link tags for the two configured
// families. Families are inserted verbatim apart from space substitution.
func fontLinks(s site.Settings) []string {
	families := []string{s.HeadingFont}
	if s.BodyFont != s.HeadingFont {
		families = append(families, s.BodyFont)
	}
	links := make([]string, 0, len(families))
	for _, family := range families {
		if family == "" {
			continue
		}
		links = append(links, fmt.Sprintf(
			`<link href="https://fonts.googleapis.com/css2?family=%s:wght@400;700&display=swap" rel="stylesheet">`,
			fontQuery(family),
		))
	}
	return links
}
