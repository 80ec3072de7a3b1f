// Package catalog derives the client-facing product catalog from raw product
// records and the admin-configured settings: quantity-discount pricing per
// pack tier, promotional bonus units, and the static purchase boilerplate.
// Everything in this package is pure; callers inject the settings values.
package catalog

import "fmt"

// MaxDiscountFraction caps every quantity discount. A fraction above this
// would let an admin typo give product away for (nearly) free.
const MaxDiscountFraction = 0.95

// DiscountTable maps a pack size to its discount fraction in
// [0, MaxDiscountFraction]. Pack sizes missing from the table price at a
// zero discount.
type DiscountTable map[int]float64

// DefaultDiscounts is the table used when the configured one yields no valid
// entries at all.
func DefaultDiscounts() DiscountTable {
	return DiscountTable{1: 0, 2: 0.15, 3: 0.25}
}

// PromoType identifies a storefront-wide promotion.
type PromoType string

const (
	// PromoB2G1 is "buy 2 get 1 free": one bonus unit on packs of 2+.
	PromoB2G1 PromoType = "B2G1"
	// PromoBOGO is "buy 1 get 1 free": the pack doubles at any quantity.
	PromoBOGO PromoType = "BOGO"
)

var validPromoTypes = []PromoType{PromoB2G1, PromoBOGO}

// String implements fmt.Stringer.
func (p PromoType) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PromoType.
func (p PromoType) IsValid() bool {
	for _, candidate := range validPromoTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePromoType converts raw input into a PromoType.
func ParsePromoType(value string) (PromoType, error) {
	for _, candidate := range validPromoTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid promo type %q", value)
}

// PromoConfig is the active promotion as configured by the admin.
type PromoConfig struct {
	Enabled bool
	Type    PromoType
}

// PurchaseOption is one selectable pack tier of a product. It is derived on
// every catalog read and never persisted.
type PurchaseOption struct {
	ID        string     `json:"id"`
	Label     string     `json:"label"`
	Qty       int        `json:"qty"`
	Price     float64    `json:"price"`
	CompareAt float64    `json:"compareAt"`
	Badge     string     `json:"badge,omitempty"`
	Promo     *Promotion `json:"promo,omitempty"`
}

// Promotion describes what the active promo adds to one purchase option.
// The option's price is never changed; only the unit count received and the
// informational copy differ.
type Promotion struct {
	BonusUnits  int    `json:"bonusUnits"`
	TotalUnits  int    `json:"totalUnits"`
	Badge       string `json:"badge,omitempty"`
	DealText    string `json:"dealText,omitempty"`
	SavingsText string `json:"savingsText,omitempty"`
}
