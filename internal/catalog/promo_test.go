package catalog

import (
	"testing"
)

func TestApplyPromotionB2G1(t *testing.T) {
	t.Parallel()

	promo := PromoConfig{Enabled: true, Type: PromoB2G1}
	opts := BuildOptions(decPtr(45), DefaultDiscounts())
	unit := decPtr(opts[2].Price) // 1-pack at 45.00

	three := ApplyPromotion(opts[0], unit, promo)
	if three == nil {
		t.Fatal("3-pack should earn a bonus unit")
	}
	if three.BonusUnits != 1 || three.TotalUnits != 4 {
		t.Fatalf("3-pack promo: %+v", three)
	}
	if three.DealText != "Pay for 3 • Get 4" {
		t.Fatalf("deal text: %q", three.DealText)
	}
	if three.Badge != "" {
		t.Fatalf("tier badge BEST VALUE must win over the promo badge, got %q", three.Badge)
	}
	// 4 units at 45 = 180, minus the 101.25 paid.
	if three.SavingsText != "You save $78.75" {
		t.Fatalf("savings text: %q", three.SavingsText)
	}

	two := ApplyPromotion(opts[1], unit, promo)
	if two == nil || two.BonusUnits != 1 || two.TotalUnits != 3 {
		t.Fatalf("2-pack promo: %+v", two)
	}
	if two.SavingsText != "You save $58.50" {
		t.Fatalf("2-pack savings: %q", two.SavingsText)
	}

	if one := ApplyPromotion(opts[2], unit, promo); one != nil {
		t.Fatalf("1-pack earns nothing under B2G1, got %+v", one)
	}
}

func TestApplyPromotionBOGODoublesEveryPack(t *testing.T) {
	t.Parallel()

	promo := PromoConfig{Enabled: true, Type: PromoBOGO}
	opts := BuildOptions(decPtr(45), DefaultDiscounts())
	unit := decPtr(opts[2].Price)

	for i, wantBonus := range map[int]int{0: 3, 1: 2, 2: 1} {
		p := ApplyPromotion(opts[i], unit, promo)
		if p == nil {
			t.Fatalf("option %d: expected a promo", i)
		}
		if p.BonusUnits != wantBonus || p.TotalUnits != opts[i].Qty*2 {
			t.Fatalf("option %d: %+v", i, p)
		}
	}

	// 1-pack has no tier badge, so the promo badge shows.
	if p := ApplyPromotion(opts[2], unit, promo); p.Badge != "BOGO" {
		t.Fatalf("1-pack BOGO badge: %q", p.Badge)
	}
}

func TestApplyPromotionDisabledOrUnknown(t *testing.T) {
	t.Parallel()

	opt := PurchaseOption{ID: "o2", Label: "2 Pack", Qty: 2, Price: 76.50}

	if p := ApplyPromotion(opt, decPtr(45), PromoConfig{Enabled: false, Type: PromoB2G1}); p != nil {
		t.Fatalf("disabled promo must grant nothing, got %+v", p)
	}
	if p := ApplyPromotion(opt, decPtr(45), PromoConfig{Enabled: true, Type: "HALFOFF"}); p != nil {
		t.Fatalf("unknown promo type must grant nothing, got %+v", p)
	}
}

func TestApplyPromotionNeverChangesPrice(t *testing.T) {
	t.Parallel()

	opts := BuildOptions(decPtr(45), DefaultDiscounts())
	before := make([]float64, len(opts))
	for i, opt := range opts {
		before[i] = opt.Price
	}

	unit := decPtr(opts[2].Price)
	for i := range opts {
		opts[i].Promo = ApplyPromotion(opts[i], unit, PromoConfig{Enabled: true, Type: PromoBOGO})
	}
	for i, opt := range opts {
		if opt.Price != before[i] {
			t.Fatalf("option %s price changed: %v -> %v", opt.ID, before[i], opt.Price)
		}
	}
}

func TestApplyPromotionSavingsSuppressedNearZero(t *testing.T) {
	t.Parallel()

	// Zero-priced catalog: savings would be exactly 0.
	opt := PurchaseOption{ID: "o2", Label: "2 Pack", Qty: 2, Price: 0}
	p := ApplyPromotion(opt, decPtr(0), PromoConfig{Enabled: true, Type: PromoB2G1})
	if p == nil {
		t.Fatal("bonus still applies to a zero-priced pack")
	}
	if p.SavingsText != "" {
		t.Fatalf("savings copy should be suppressed, got %q", p.SavingsText)
	}

	// No unit baseline at all: skip the savings line, keep the rest.
	p = ApplyPromotion(opt, nil, PromoConfig{Enabled: true, Type: PromoB2G1})
	if p == nil || p.SavingsText != "" {
		t.Fatalf("nil unit price: %+v", p)
	}
}

func TestApplyPromotionQtyFromLabel(t *testing.T) {
	t.Parallel()

	opt := PurchaseOption{ID: "x", Label: "2 Pack", Price: 50}
	p := ApplyPromotion(opt, decPtr(30), PromoConfig{Enabled: true, Type: PromoB2G1})
	if p == nil || p.TotalUnits != 3 {
		t.Fatalf("label-derived qty: %+v", p)
	}
}

func TestLeadingInt(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"3 Pack":  3,
		" 12x":    12,
		"Pack of": 0,
		"":        0,
	}
	for in, want := range cases {
		if got := leadingInt(in); got != want {
			t.Fatalf("leadingInt(%q) = %d, want %d", in, got, want)
		}
	}
}
