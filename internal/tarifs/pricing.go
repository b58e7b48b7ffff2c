package tarifs

import (
	"math"
	"strings"
)

const (
	TierStandard = "standard"
	TierPremium  = "haut_de_gamme"
	TierFolding  = "pliant"

	vatFactor = 1.2
)

// RoundTo9 moves a price to the closest value ending in 9: a last digit of
// 0 or 1 goes down, 2 to 8 goes up. Half-way cents round to even first.
// Anything below 9 gives 9.
func RoundTo9(price float64) int {
	p := int(math.RoundToEven(price))
	if p < 9 {
		return 9
	}
	switch last := p % 10; {
	case last == 9:
		return p
	case last <= 1:
		return p - last - 1
	default:
		return p + (9 - last)
	}
}

// Margin is the shop's fixed labour margin for a part category and tier.
func Margin(partCategory, tier string) float64 {
	cat := strings.ToLower(strings.TrimSpace(partCategory))
	if cat != CategoryScreen && cat != "écran" {
		return 60
	}
	switch tier {
	case TierFolding:
		return 100
	case TierPremium:
		return 70
	}
	return 60
}

// ClientPrice applies VAT and margin to a supplier price excluding tax.
func ClientPrice(supplierExclTax float64, partCategory, tier string) int {
	return RoundTo9(supplierExclTax*vatFactor + Margin(partCategory, tier))
}
