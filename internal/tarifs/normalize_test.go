package tarifs

import (
	"encoding/json"
	"testing"
)

func TestNormalizeRowCoercion(t *testing.T) {
	cases := []struct {
		name      string
		row       RawRow
		ok        bool
		price     *float64
		ht        *float64
		quality   string
		wantModel string
	}{
		{"json number", RawRow{"marque": "Samsung", "modele": "Galaxy S23", "type_piece": "Ecran", "prix_client": json.Number("149"), "prix_fournisseur_ht": json.Number("74.5")}, true, price(149), price(74.5), "", "Galaxy S23"},
		{"float", RawRow{"marque": "Google", "modele": "Pixel 7", "type_piece": "Batterie", "prix_client": 79.0}, true, price(79), nil, "", "Pixel 7"},
		{"string comma", RawRow{"brand": "Xiaomi", "model": "Redmi 12", "part_category": "ecran", "client_price": "89,90", "quality": "Incell"}, true, price(89.9), nil, "Incell", "Redmi 12"},
		{"missing price", RawRow{"marque": "Huawei", "modele": "P30", "type_piece": "Ecran"}, true, nil, nil, "", "P30"},
		{"negative price", RawRow{"marque": "Huawei", "modele": "P30", "type_piece": "Ecran", "prix_client": -5.0}, true, nil, nil, "", "P30"},
		{"garbage price", RawRow{"marque": "Huawei", "modele": "P30", "type_piece": "Ecran", "prix_client": "abc"}, true, nil, nil, "", "P30"},
		{"garbage alias falls through", RawRow{"marque": "Huawei", "modele": "P30", "type_piece": "Ecran", "prix_client": "n/a", "client_price": 50.0}, true, price(50), nil, "", "P30"},
		{"wrong type price", RawRow{"marque": "Huawei", "modele": "P30", "type_piece": "Ecran", "prix_client": true}, true, nil, nil, "", "P30"},
		{"no brand", RawRow{"modele": "P30", "prix_client": 10.0}, false, nil, nil, "", ""},
		{"blank model", RawRow{"marque": "Huawei", "modele": "   "}, false, nil, nil, "", ""},
		{"nil row", nil, false, nil, nil, "", ""},
	}
	for _, tc := range cases {
		got, ok := NormalizeRow(tc.row)
		if ok != tc.ok {
			t.Fatalf("%s: ok=%v, want %v", tc.name, ok, tc.ok)
		}
		if !ok {
			continue
		}
		if got.Model != tc.wantModel {
			t.Fatalf("%s: model %q, want %q", tc.name, got.Model, tc.wantModel)
		}
		if !samePrice(got.ClientPrice, tc.price) {
			t.Fatalf("%s: client price %v, want %v", tc.name, got.ClientPrice, tc.price)
		}
		if !samePrice(got.SupplierPriceExclTax, tc.ht) {
			t.Fatalf("%s: supplier price %v, want %v", tc.name, got.SupplierPriceExclTax, tc.ht)
		}
		if tc.quality == "" && got.Quality != nil {
			t.Fatalf("%s: expected nil quality", tc.name)
		}
		if tc.quality != "" && (got.Quality == nil || *got.Quality != tc.quality) {
			t.Fatalf("%s: quality %v, want %s", tc.name, got.Quality, tc.quality)
		}
	}
}

func TestNormalizeCountsSkipped(t *testing.T) {
	rows := []RawRow{
		{"marque": "Samsung", "modele": "Galaxy S24", "type_piece": "Ecran", "prix_client": 129.0},
		{"modele": "orphan"},
		nil,
		{"marque": "Samsung", "modele": "Galaxy S24", "type_piece": "Coque", "prix_client": 19.0},
	}
	recs, skipped := Normalize(rows)
	if skipped != 2 || len(recs) != 2 {
		t.Fatalf("expected 2 kept / 2 skipped, got %d / %d", len(recs), skipped)
	}
	if recs[1].PartCategory != "Coque" {
		t.Fatalf("unknown category must be preserved in the raw list")
	}
}

func TestNormalizedCategory(t *testing.T) {
	r := PriceRecord{PartCategory: "  Connecteur de Charge "}
	if r.NormalizedCategory() != CategoryChargePort {
		t.Fatalf("unexpected category %q", r.NormalizedCategory())
	}
}

func samePrice(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
