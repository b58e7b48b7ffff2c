package tarifs

import (
	"regexp"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// BrandOrder is the order brands appear on the price grid.
var BrandOrder = []string{"Samsung", "Google", "Xiaomi", "Huawei", "Motorola"}

var brandPrefix = regexp.MustCompile(`(?i)^(samsung|google|xiaomi|huawei|motorola|honor)\s+`)

type ModelRow struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"display_name"`
	Pricing     ModelPricing `json:"pricing"`
	ScreenMin   *float64     `json:"screen_min"`
	ScreenMax   *float64     `json:"screen_max"`
}

type BrandSection struct {
	Brand  string     `json:"brand"`
	Models []ModelRow `json:"models"`
}

// DisplayName drops a leading brand word from a model name.
func DisplayName(model string) string {
	return brandPrefix.ReplaceAllString(model, "")
}

// Present orders the catalog for display: brands from order first, any
// other brand after them alphabetically, models by name under a French
// collator.
func Present(c Catalog, order []string) []BrandSection {
	col := collate.New(language.French)

	brands := make([]string, 0, len(c))
	known := map[string]bool{}
	for _, b := range order {
		known[b] = true
		if len(c[b]) > 0 {
			brands = append(brands, b)
		}
	}
	var extra []string
	for b, models := range c {
		if !known[b] && len(models) > 0 {
			extra = append(extra, b)
		}
	}
	col.SortStrings(extra)
	brands = append(brands, extra...)

	out := make([]BrandSection, 0, len(brands))
	for _, b := range brands {
		names := make([]string, 0, len(c[b]))
		for name := range c[b] {
			names = append(names, name)
		}
		sort.SliceStable(names, func(i, j int) bool {
			return col.CompareString(names[i], names[j]) < 0
		})

		section := BrandSection{Brand: b, Models: make([]ModelRow, 0, len(names))}
		for _, name := range names {
			p := c[b][name]
			row := ModelRow{Name: name, DisplayName: DisplayName(name), Pricing: p}
			if n := len(p.Screens); n > 0 {
				row.ScreenMin = p.Screens[0].ClientPrice
				row.ScreenMax = p.Screens[n-1].ClientPrice
			}
			section.Models = append(section.Models, row)
		}
		out = append(out, section)
	}
	return out
}
