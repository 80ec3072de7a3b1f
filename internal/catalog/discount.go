package catalog

import (
	"math"
	"strconv"
	"strings"
)

// ResolveDiscounts validates the raw quantity-discount map from the settings
// document into a table keyed by pack size. Keys must parse as positive
// integers and values must be finite; survivors are clamped into
// [0, MaxDiscountFraction]. When nothing survives the hard-coded defaults are
// returned in their entirety. A partially valid map is used as-is and never
// backfilled, so a missing pack size prices at zero discount downstream.
func ResolveDiscounts(raw map[string]float64) DiscountTable {
	table := DiscountTable{}
	for key, value := range raw {
		size, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil || size <= 0 {
			continue
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}
		table[size] = clampFraction(value)
	}
	if len(table) == 0 {
		return DefaultDiscounts()
	}
	return table
}

func clampFraction(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > MaxDiscountFraction {
		return MaxDiscountFraction
	}
	return v
}
