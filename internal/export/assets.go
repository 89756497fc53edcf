package export

import (
	"path"
	"sort"
	"strings"

	"sitegen/internal/site"
)

// assetKeys are the prop names that reference external images.
var assetKeys = map[string]bool{
	"imageUrl":        true,
	"backgroundImage": true,
}

// CollectAssets scans every section's final mapped props for image
// references, at any nesting depth, and returns one asset record per
// discovered URL. Duplicate URLs are collapsed; sections without image
// fields contribute nothing.
func CollectAssets(sections []site.Section) []Asset {
	assets := make([]Asset, 0)
	seen := make(map[string]bool)

	for _, sec := range sections {
		scanValue(sec.Props, &assets, seen)
	}
	return assets
}

func scanValue(v any, assets *[]Asset, seen map[string]bool) {
	switch val := v.(type) {
	case map[string]any:
		// Sorted key order keeps the manifest deterministic.
		keys := make([]string, 0, len(val))
		for key := range val {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			inner := val[key]
			if assetKeys[key] {
				if url, ok := inner.(string); ok && strings.TrimSpace(url) != "" && !seen[url] {
					seen[url] = true
					*assets = append(*assets, Asset{
						Name: path.Base(url),
						URL:  url,
						Type: "image",
					})
				}
				continue
			}
			scanValue(inner, assets, seen)
		}
	case []map[string]any:
		for _, item := range val {
			scanValue(item, assets, seen)
		}
	case []any:
		for _, item := range val {
			scanValue(item, assets, seen)
		}
	}
}
