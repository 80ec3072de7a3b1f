package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// savingsFloor is the threshold below which savings copy is suppressed; a
// "You save $0.00" line is worse than none.
var savingsFloor = decimal.NewFromFloat(0.01)

// ApplyPromotion computes what the active promotion adds to one purchase
// option. The option's price is never touched; a promotion only changes the
// unit count received and the copy shown next to the tier. Returns nil when
// the promotion grants nothing for this option, so the promo key is simply
// absent from the rendered JSON.
//
// unitPrice is the single-unit baseline used for the savings line; callers
// pass the 1-pack option price, falling back to the raw base price.
func ApplyPromotion(opt PurchaseOption, unitPrice *decimal.Decimal, promo PromoConfig) *Promotion {
	qty := optionQty(opt)
	bonus := bonusUnits(qty, promo)
	if bonus == 0 {
		return nil
	}

	total := qty + bonus
	p := &Promotion{
		BonusUnits: bonus,
		TotalUnits: total,
		DealText:   fmt.Sprintf("Pay for %d • Get %d", qty, total),
	}
	if opt.Badge == "" {
		p.Badge = promoBadge(promo.Type)
	}
	if unitPrice != nil {
		value := unitPrice.Mul(decimal.NewFromInt(int64(total)))
		savings := roundMoney(value.Sub(decimal.NewFromFloat(opt.Price)))
		if savings.GreaterThan(savingsFloor) {
			p.SavingsText = fmt.Sprintf("You save $%s", savings.StringFixed(2))
		}
	}
	return p
}

// bonusUnits returns the free units the promotion grants on a pack of qty.
func bonusUnits(qty int, promo PromoConfig) int {
	if !promo.Enabled || qty < 1 {
		return 0
	}
	switch promo.Type {
	case PromoB2G1:
		if qty >= 2 {
			return 1
		}
		return 0
	case PromoBOGO:
		return qty
	default:
		return 0
	}
}

// optionQty prefers the structured quantity and falls back to the leading
// integer of the label ("3 Pack") for options built elsewhere.
func optionQty(opt PurchaseOption) int {
	if opt.Qty > 0 {
		return opt.Qty
	}
	return leadingInt(opt.Label)
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	n := 0
	seen := false
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		seen = true
	}
	if !seen {
		return 0
	}
	return n
}

func promoBadge(t PromoType) string {
	switch t {
	case PromoB2G1:
		return "B2G1 FREE"
	case PromoBOGO:
		return "BOGO"
	default:
		return ""
	}
}
