// Package services maps streaming service names to presentation hints
// (icon URL and theme color) with a deterministic fallback for unknown
// services.
package services

import (
	"hash/fnv"
	"sort"
	"strings"
)

const iconCDN = "https://cdn.jsdelivr.net/npm/simple-icons@v9/icons/"

// Style holds the presentation hints for one streaming service.
type Style struct {
	Icon  string
	Theme string
}

// Known services keyed by normalized name. Normalization strips everything
// that is not a lowercase letter or digit, so "Disney+" and "disney plus"
// both hit the same entry.
var catalog = map[string]Style{
	"netflix":          {Icon: iconCDN + "netflix.svg", Theme: "red"},
	"disneyplus":       {Icon: iconCDN + "disneyplus.svg", Theme: "blue"},
	"disney":           {Icon: iconCDN + "disneyplus.svg", Theme: "blue"},
	"amazonprimevideo": {Icon: iconCDN + "amazonprimevideo.svg", Theme: "cyan"},
	"primevideo":       {Icon: iconCDN + "amazonprimevideo.svg", Theme: "cyan"},
	"prime":            {Icon: iconCDN + "amazonprimevideo.svg", Theme: "cyan"},
	"hbomax":           {Icon: iconCDN + "hbomax.svg", Theme: "purple"},
	"hbo":              {Icon: iconCDN + "hbo.svg", Theme: "purple"},
	"max":              {Icon: iconCDN + "hbomax.svg", Theme: "purple"},
	"appletv":          {Icon: iconCDN + "appletv.svg", Theme: "gray"},
	"apple":            {Icon: iconCDN + "appletv.svg", Theme: "gray"},
	"paramountplus":    {Icon: iconCDN + "paramountplus.svg", Theme: "indigo"},
	"paramount":        {Icon: iconCDN + "paramountplus.svg", Theme: "indigo"},
	"hulu":             {Icon: iconCDN + "hulu.svg", Theme: "emerald"},
	"peacock":          {Icon: iconCDN + "peacock.svg", Theme: "teal"},
	"starz":            {Icon: iconCDN + "starz.svg", Theme: "pink"},
	"showtime":         {Icon: iconCDN + "showtime.svg", Theme: "orange"},
	"crunchyroll":      {Icon: iconCDN + "crunchyroll.svg", Theme: "amber"},
	"youtube":          {Icon: iconCDN + "youtube.svg", Theme: "red"},
	"youtubepremium":   {Icon: iconCDN + "youtubepremium.svg", Theme: "red"},
	"globoplay":        {Icon: iconCDN + "globoplay.svg", Theme: "lime"},
	"star":             {Icon: iconCDN + "star.svg", Theme: "blue"},
}

// fallbackThemes is the palette used for services not in the catalog.
// The pick is a stable hash of the normalized name, so the same service
// always gets the same color.
var fallbackThemes = []string{"green", "violet", "rose", "sky", "fuchsia"}

// Lookup resolves presentation hints for a service name. Exact normalized
// matches win; otherwise the longest catalog key contained in the name (or
// containing it) is used. Unknown services get no icon and a hash-picked
// theme.
func Lookup(name string) Style {
	norm := normalize(name)
	if norm == "" {
		return Style{Theme: fallbackThemes[0]}
	}

	if s, ok := catalog[norm]; ok {
		return s
	}

	// Partial match, most specific key first.
	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		if strings.Contains(norm, k) || strings.Contains(k, norm) {
			return catalog[k]
		}
	}

	return Style{Theme: fallbackTheme(norm)}
}

func normalize(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func fallbackTheme(norm string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(norm))
	return fallbackThemes[int(h.Sum32())%len(fallbackThemes)]
}
