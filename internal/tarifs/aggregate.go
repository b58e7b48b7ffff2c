package tarifs

import "sort"

// ModelPricing is the repair price summary of one device model. Single
// instance parts hold the cheapest offer; screens hold every quality tier.
type ModelPricing struct {
	Screens    []PriceRecord `json:"ecrans"`
	Battery    *PriceRecord  `json:"batterie"`
	ChargePort *PriceRecord  `json:"connecteur"`
	RearCamera *PriceRecord  `json:"camera"`
}

func (m ModelPricing) empty() bool {
	return len(m.Screens) == 0 && m.Battery == nil && m.ChargePort == nil && m.RearCamera == nil
}

// Catalog maps brand → model → pricing.
type Catalog map[string]map[string]ModelPricing

// Aggregate groups records by brand and model and applies the per-category
// selection rules. Records without a client price or with an unknown
// category take no slot; models left with no slot are omitted.
func Aggregate(records []PriceRecord) Catalog {
	out := Catalog{}
	for _, rec := range records {
		if !rec.HasPrice() {
			continue
		}
		var slot **PriceRecord
		cat := rec.NormalizedCategory()

		models := out[rec.Brand]
		pricing := models[rec.Model]
		switch cat {
		case CategoryScreen:
			pricing.Screens = append(pricing.Screens, rec)
		case CategoryBattery:
			slot = &pricing.Battery
		case CategoryChargePort:
			slot = &pricing.ChargePort
		case CategoryRearCamera:
			slot = &pricing.RearCamera
		default:
			continue
		}
		if slot != nil && (*slot == nil || *rec.ClientPrice < *(*slot).ClientPrice) {
			r := rec
			*slot = &r
		}

		if models == nil {
			models = map[string]ModelPricing{}
			out[rec.Brand] = models
		}
		models[rec.Model] = pricing
	}

	for _, models := range out {
		for name, pricing := range models {
			if pricing.empty() {
				delete(models, name)
				continue
			}
			sort.SliceStable(pricing.Screens, func(i, j int) bool {
				return *pricing.Screens[i].ClientPrice < *pricing.Screens[j].ClientPrice
			})
		}
	}
	for brand, models := range out {
		if len(models) == 0 {
			delete(out, brand)
		}
	}
	return out
}

// ModelCount is the number of models present in the catalog.
func (c Catalog) ModelCount() int {
	n := 0
	for _, models := range c {
		n += len(models)
	}
	return n
}

type Stats struct {
	Total    int            `json:"total"`
	Models   int            `json:"models"`
	Brands   int            `json:"brands"`
	MinPrice *float64       `json:"min_price"`
	MaxPrice *float64       `json:"max_price"`
	PerBrand map[string]int `json:"per_brand"`
}

// ComputeStats summarizes the raw record list, unknown categories and
// unpriced records included in the counts. Min and max only look at priced
// records.
func ComputeStats(records []PriceRecord) Stats {
	type modelKey struct{ brand, model string }
	st := Stats{PerBrand: map[string]int{}}
	seen := map[modelKey]struct{}{}
	for _, rec := range records {
		st.Total++
		st.PerBrand[rec.Brand]++
		seen[modelKey{rec.Brand, rec.Model}] = struct{}{}
		if rec.ClientPrice == nil {
			continue
		}
		p := *rec.ClientPrice
		if st.MinPrice == nil || p < *st.MinPrice {
			st.MinPrice = &p
		}
		if st.MaxPrice == nil || p > *st.MaxPrice {
			v := p
			st.MaxPrice = &v
		}
	}
	st.Models = len(seen)
	st.Brands = len(st.PerBrand)
	return st
}
