// Package tarifs turns the backend's flat price list into the per-model
// repair price grid shown to staff.
package tarifs

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Recognized part categories, compared lower-cased.
const (
	CategoryScreen     = "ecran"
	CategoryBattery    = "batterie"
	CategoryChargePort = "connecteur de charge"
	CategoryRearCamera = "camera arriere"
)

// RawRow is one untyped price-list row as decoded from JSON.
type RawRow = map[string]any

type PriceRecord struct {
	ID                   int64    `json:"id,omitempty"`
	Brand                string   `json:"marque"`
	Model                string   `json:"modele"`
	PartCategory         string   `json:"type_piece"`
	Quality              *string  `json:"qualite"`
	SupplierName         string   `json:"nom_fournisseur,omitempty"`
	SupplierPriceExclTax *float64 `json:"prix_fournisseur_ht"`
	ClientPrice          *float64 `json:"prix_client"`
	Tier                 string   `json:"categorie,omitempty"`
	Source               string   `json:"source,omitempty"`
	UpdatedAt            string   `json:"updated_at,omitempty"`
}

// NormalizedCategory is the trimmed, lower-cased part category.
func (r PriceRecord) NormalizedCategory() string {
	return strings.ToLower(strings.TrimSpace(r.PartCategory))
}

func (r PriceRecord) HasPrice() bool {
	return r.ClientPrice != nil
}

var (
	brandKeys    = []string{"marque", "brand"}
	modelKeys    = []string{"modele", "model"}
	categoryKeys = []string{"type_piece", "part_category", "category"}
	qualityKeys  = []string{"qualite", "quality"}
	supplierKeys = []string{"nom_fournisseur", "supplier_name"}
	htKeys       = []string{"prix_fournisseur_ht", "supplier_price_excl_tax"}
	priceKeys    = []string{"prix_client", "client_price"}
	tierKeys     = []string{"categorie", "tier"}
)

// Normalize converts every row it can and counts the ones it cannot. It
// never fails on a single bad row.
func Normalize(rows []RawRow) ([]PriceRecord, int) {
	out := make([]PriceRecord, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		rec, ok := NormalizeRow(row)
		if !ok {
			skipped++
			continue
		}
		out = append(out, rec)
	}
	return out, skipped
}

// NormalizeRow rejects rows without a brand or model. Missing or invalid
// prices are kept as nil.
func NormalizeRow(row RawRow) (PriceRecord, bool) {
	if row == nil {
		return PriceRecord{}, false
	}
	rec := PriceRecord{
		Brand:        stringField(row, brandKeys...),
		Model:        stringField(row, modelKeys...),
		PartCategory: stringField(row, categoryKeys...),
		SupplierName: stringField(row, supplierKeys...),
		Tier:         stringField(row, tierKeys...),
		Source:       stringField(row, "source"),
		UpdatedAt:    stringField(row, "updated_at"),
	}
	if rec.Brand == "" || rec.Model == "" {
		return PriceRecord{}, false
	}
	if q := stringField(row, qualityKeys...); q != "" {
		rec.Quality = &q
	}
	if id, ok := numberField(row, "id"); ok {
		rec.ID = int64(id)
	}
	if v, ok := numberField(row, htKeys...); ok && v >= 0 {
		rec.SupplierPriceExclTax = &v
	}
	if v, ok := numberField(row, priceKeys...); ok && v >= 0 {
		rec.ClientPrice = &v
	}
	return rec, true
}

func lookup(row RawRow, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := row[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func stringField(row RawRow, keys ...string) string {
	v, ok := lookup(row, keys...)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}

// numberField returns the first alias holding a usable number; an
// unparsable value under one alias falls through to the next.
func numberField(row RawRow, keys ...string) (float64, bool) {
	for _, k := range keys {
		if v, ok := row[k]; ok && v != nil {
			if f, ok := toNumber(v); ok {
				return f, true
			}
		}
	}
	return 0, false
}

func toNumber(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, ok := ParseAmount(t)
		if !ok {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParseAmount reads "12.5", "12,5" or " 12 € ".
func ParseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "€"))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
