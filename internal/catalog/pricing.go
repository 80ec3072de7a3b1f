package catalog

import (
	"encoding/json"
	"math"
	"regexp"

	"github.com/shopspring/decimal"
)

// priceCleaner strips currency symbols, grouping commas, and whitespace from
// loosely formatted price strings ("$1,200.50").
var priceCleaner = regexp.MustCompile(`[^0-9.\-]`)

// ParsePrice coerces a loosely typed base price into a decimal amount.
// Numbers pass through, numeric-looking strings are cleaned and parsed, and
// anything else (nil, "N/A", NaN) yields nil; the product then renders with
// no purchase options rather than failing the page.
func ParsePrice(v any) *decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return nil
		}
		d := decimal.NewFromFloat(n)
		return &d
	case float32:
		return ParsePrice(float64(n))
	case int:
		d := decimal.NewFromInt(int64(n))
		return &d
	case int64:
		d := decimal.NewFromInt(n)
		return &d
	case json.Number:
		return parsePriceString(n.String())
	case string:
		return parsePriceString(n)
	default:
		return nil
	}
}

func parsePriceString(s string) *decimal.Decimal {
	cleaned := priceCleaner.ReplaceAllString(s, "")
	if cleaned == "" {
		return nil
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}
	return &d
}

type packTier struct {
	id    string
	qty   int
	label string
	badge string
}

// Fixed display order; the UI treats index 0 as the featured tier.
var packTiers = []packTier{
	{id: "o1", qty: 3, label: "3 Pack", badge: "BEST VALUE"},
	{id: "o2", qty: 2, label: "2 Pack", badge: "MOST POPULAR"},
	{id: "o3", qty: 1, label: "1 Pack"},
}

// BuildOptions derives the ordered pack tiers for a product. For each tier,
// compareAt is the undiscounted base price times the pack quantity and price
// applies the tier's discount fraction; both sides round with the same
// currency rule so the displayed percent-off matches the configured fraction.
// A nil or negative base price yields no options.
func BuildOptions(basePrice *decimal.Decimal, table DiscountTable) []PurchaseOption {
	opts := []PurchaseOption{}
	if basePrice == nil || basePrice.IsNegative() {
		return opts
	}
	one := decimal.NewFromInt(1)
	for _, tier := range packTiers {
		compareAt := roundMoney(basePrice.Mul(decimal.NewFromInt(int64(tier.qty))))
		discount := decimal.NewFromFloat(table[tier.qty])
		price := roundMoney(compareAt.Mul(one.Sub(discount)))
		opts = append(opts, PurchaseOption{
			ID:        tier.id,
			Label:     tier.label,
			Qty:       tier.qty,
			Price:     price.InexactFloat64(),
			CompareAt: compareAt.InexactFloat64(),
			Badge:     tier.badge,
		})
	}
	return opts
}

// roundMoney rounds to cents, half away from zero. One rounding policy for
// every money value in the catalog.
func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
