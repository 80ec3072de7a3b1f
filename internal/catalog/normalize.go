package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/gurneepeptides/storefront-backend/internal/products"
	"github.com/gurneepeptides/storefront-backend/pkg/config"
)

// ClientProduct is a product as the storefront renders it: price coerced to a
// number, purchase options derived from the discount table, promo applied,
// and the purchase/FAQ boilerplate attached. Raw per-product option data is
// always ignored; options are rebuilt from the base price on every read.
type ClientProduct struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Dosage        *string                `json:"dosage"`
	Volume        *string                `json:"volume"`
	Category      *string                `json:"category"`
	Price         *float64               `json:"price"`
	Image         *string                `json:"image"`
	Images        []string               `json:"images"`
	Tags          []string               `json:"tags"`
	ResearchGoals []string               `json:"researchGoals,omitempty"`
	SynergiesWith []string               `json:"synergiesWith,omitempty"`
	Options       []PurchaseOption       `json:"options"`
	Purchase      products.PurchaseBlock `json:"purchase"`
	FAQ           []products.FAQEntry    `json:"faq"`
	Description   string                 `json:"description,omitempty"`
}

// Boilerplate is the storefront-wide copy attached to every normalized
// product unless the raw record carries its own.
type Boilerplate struct {
	Purchase products.PurchaseBlock
	FAQ      []products.FAQEntry
}

// BoilerplateFromConfig builds the shared purchase block from config and
// pairs it with the stock FAQ.
func BoilerplateFromConfig(cfg config.PurchaseConfig) Boilerplate {
	return Boilerplate{
		Purchase: products.PurchaseBlock{
			Headline: cfg.Headline,
			Facebook: cfg.Facebook,
			Email:    cfg.Email,
			Note:     cfg.Note,
		},
		FAQ: DefaultFAQ(),
	}
}

// DefaultFAQ returns the stock question/answer block shown on every product
// page that has no FAQ of its own.
func DefaultFAQ() []products.FAQEntry {
	return []products.FAQEntry{
		{
			Q: "Is this product ready to ship?",
			A: "Most items are in stock; message us to secure yours.",
		},
		{
			Q: "Do you offer bulk pricing?",
			A: "Yes—include expected quantities in your message/email for a quote.",
		},
		{
			Q: "How does the purchase process work?",
			A: "Customers can message us on Facebook (preferred) or email us with the items they’d like to purchase. We will then send an invoice by email, and payment can be made securely using their preferred method. Orders placed before 3 PM ship the same day, with exceptions on weekends.",
		},
	}
}

// Normalize derives the client-facing catalog from raw product records and
// the admin-configured settings values. Pure and deterministic: the same
// inputs always produce the same output, so responses are safely cacheable.
func Normalize(items []products.Product, discounts map[string]float64, promo PromoConfig, bp Boilerplate) []ClientProduct {
	table := ResolveDiscounts(discounts)
	out := make([]ClientProduct, 0, len(items))
	for _, item := range items {
		out = append(out, normalizeItem(item, table, promo, bp))
	}
	return out
}

func normalizeItem(item products.Product, table DiscountTable, promo PromoConfig, bp Boilerplate) ClientProduct {
	base := ParsePrice(item.Price)

	var price *float64
	if base != nil {
		v := base.InexactFloat64()
		price = &v
	}

	options := BuildOptions(base, table)
	if promo.Enabled {
		unit := unitPriceBaseline(options, base)
		for i := range options {
			options[i].Promo = ApplyPromotion(options[i], unit, promo)
		}
	}

	cp := ClientProduct{
		ID:            item.ID,
		Name:          item.Name,
		Dosage:        item.Dosage,
		Volume:        item.Volume,
		Category:      item.Category,
		Price:         price,
		Image:         item.Image,
		Images:        orEmpty(item.Images),
		Tags:          orEmpty(item.Tags),
		ResearchGoals: item.ResearchGoals,
		SynergiesWith: item.SynergiesWith,
		Options:       options,
		Purchase:      bp.Purchase,
		FAQ:           bp.FAQ,
		Description:   item.Description,
	}
	if item.Purchase != nil {
		cp.Purchase = *item.Purchase
	}
	if len(item.FAQ) > 0 {
		cp.FAQ = item.FAQ
	}
	return cp
}

// unitPriceBaseline picks the single-unit price the savings copy is computed
// against: the 1-pack option's discounted price when present, otherwise the
// raw base price.
func unitPriceBaseline(options []PurchaseOption, base *decimal.Decimal) *decimal.Decimal {
	for _, opt := range options {
		if opt.Qty == 1 {
			d := decimal.NewFromFloat(opt.Price)
			return &d
		}
	}
	return base
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
