package tarifs

import (
	"testing"
)

func price(v float64) *float64 { return &v }

func rec(brand, model, cat string, p float64, supplier string) PriceRecord {
	return PriceRecord{Brand: brand, Model: model, PartCategory: cat, ClientPrice: price(p), SupplierName: supplier}
}

func TestAggregateGalaxyS24(t *testing.T) {
	records := []PriceRecord{
		rec("Samsung", "Galaxy S24", "Ecran", 120, "oled"),
		rec("Samsung", "Galaxy S24", "Ecran", 90, "incell"),
		rec("Samsung", "Galaxy S24", "Batterie", 40, "bat"),
	}
	got := Aggregate(records)
	p, ok := got["Samsung"]["Galaxy S24"]
	if !ok {
		t.Fatalf("expected Galaxy S24 pricing, got %+v", got)
	}
	if len(p.Screens) != 2 || *p.Screens[0].ClientPrice != 90 || *p.Screens[1].ClientPrice != 120 {
		t.Fatalf("expected screens [90 120], got %+v", p.Screens)
	}
	if p.Battery == nil || *p.Battery.ClientPrice != 40 {
		t.Fatalf("expected battery at 40, got %+v", p.Battery)
	}
	if p.ChargePort != nil || p.RearCamera != nil {
		t.Fatalf("expected no charge port or camera")
	}
}

func TestAggregateScreensSortedAndStable(t *testing.T) {
	records := []PriceRecord{
		rec("Google", "Pixel 8", "ecran", 150, "a"),
		rec("Google", "Pixel 8", "ECRAN", 99, "b"),
		rec("Google", "Pixel 8", "Ecran", 150, "c"),
		rec("Google", "Pixel 8", "ecran", 99, "d"),
		rec("Google", "Pixel 8", "ecran", 120, "e"),
	}
	screens := Aggregate(records)["Google"]["Pixel 8"].Screens
	want := []string{"b", "d", "e", "a", "c"}
	if len(screens) != len(want) {
		t.Fatalf("expected %d screens, got %d", len(want), len(screens))
	}
	for i, s := range screens {
		if s.SupplierName != want[i] {
			t.Fatalf("position %d: want %s, got %s", i, want[i], s.SupplierName)
		}
		if i > 0 && *screens[i-1].ClientPrice > *s.ClientPrice {
			t.Fatalf("screens not ascending at %d", i)
		}
	}
}

func TestAggregateSingleInstanceMinimumFirstWins(t *testing.T) {
	records := []PriceRecord{
		rec("Xiaomi", "Redmi Note 13", "Batterie", 59, "first59"),
		rec("Xiaomi", "Redmi Note 13", "batterie", 49, "first49"),
		rec("Xiaomi", "Redmi Note 13", "BATTERIE", 49, "second49"),
		rec("Xiaomi", "Redmi Note 13", "batterie", 69, "expensive"),
		rec("Xiaomi", "Redmi Note 13", "Connecteur de charge", 39, "c1"),
		rec("Xiaomi", "Redmi Note 13", "connecteur de charge", 39, "c2"),
		rec("Xiaomi", "Redmi Note 13", "Camera arriere", 79, "cam"),
	}
	p := Aggregate(records)["Xiaomi"]["Redmi Note 13"]
	if p.Battery == nil || p.Battery.SupplierName != "first49" {
		t.Fatalf("expected first 49 battery, got %+v", p.Battery)
	}
	for _, r := range records {
		if r.NormalizedCategory() == CategoryBattery && *r.ClientPrice < *p.Battery.ClientPrice {
			t.Fatalf("battery %v is cheaper than selected", *r.ClientPrice)
		}
	}
	if p.ChargePort == nil || p.ChargePort.SupplierName != "c1" {
		t.Fatalf("expected first charge port, got %+v", p.ChargePort)
	}
	if p.RearCamera == nil || *p.RearCamera.ClientPrice != 79 {
		t.Fatalf("expected camera, got %+v", p.RearCamera)
	}
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil)
	if len(got) != 0 {
		t.Fatalf("expected empty catalog, got %v", got)
	}
	st := ComputeStats(nil)
	if st.Total != 0 || st.Models != 0 || st.Brands != 0 || len(st.PerBrand) != 0 {
		t.Fatalf("expected zero stats, got %+v", st)
	}
	if st.MinPrice != nil || st.MaxPrice != nil {
		t.Fatalf("expected nil min/max, got %v %v", st.MinPrice, st.MaxPrice)
	}
}

func TestAggregateDropsUnknownAndUnpriced(t *testing.T) {
	records := []PriceRecord{
		rec("Huawei", "P30", "Vitre arriere", 49, "glass"),
		{Brand: "Huawei", Model: "P30", PartCategory: "Batterie"},
		rec("Huawei", "P40", "Vitre arriere", 49, "glass"),
		rec("Huawei", "P40", "Batterie", 45, "bat"),
	}
	got := Aggregate(records)
	if _, ok := got["Huawei"]["P30"]; ok {
		t.Fatalf("model without recognized priced record must be omitted")
	}
	p40, ok := got["Huawei"]["P40"]
	if !ok || p40.Battery == nil || *p40.Battery.ClientPrice != 45 {
		t.Fatalf("expected P40 battery, got %+v", p40)
	}

	st := ComputeStats(records)
	if st.Total != 4 || st.Models != 2 || st.Brands != 1 || st.PerBrand["Huawei"] != 4 {
		t.Fatalf("stats must count the raw list, got %+v", st)
	}
	if *st.MinPrice != 45 || *st.MaxPrice != 49 {
		t.Fatalf("unexpected range %v-%v", *st.MinPrice, *st.MaxPrice)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	a := []PriceRecord{
		rec("Motorola", "Edge 40", "Batterie", 55, "x"),
		rec("Samsung", "Galaxy A54", "Ecran", 110, "y"),
		rec("Motorola", "Edge 40", "Ecran", 130, "z"),
	}
	b := []PriceRecord{a[2], a[1], a[0]}
	ga, gb := Aggregate(a), Aggregate(b)
	if ga.ModelCount() != 2 || gb.ModelCount() != 2 {
		t.Fatalf("expected two models each")
	}
	if *ga["Motorola"]["Edge 40"].Battery.ClientPrice != *gb["Motorola"]["Edge 40"].Battery.ClientPrice {
		t.Fatalf("grouping depends on input order")
	}
}
