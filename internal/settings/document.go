// Package settings owns the storefront settings document: site copy, the
// active promotion, and the quantity-discount table. The admin mutator here
// is the only writer; everything else reads through the service.
package settings

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/gurneepeptides/storefront-backend/internal/catalog"
)

// packSizeKeys are the pack sizes the storefront sells; the discount merge
// only ever touches these.
var packSizeKeys = []string{"1", "2", "3"}

// Document is the persisted settings blob. QuantityDiscounts stays
// string-keyed on disk; catalog.ResolveDiscounts turns it into integer pack
// sizes at read time.
type Document struct {
	SiteName          string             `json:"siteName,omitempty"`
	TopBarMessage     string             `json:"topBarMessage,omitempty"`
	MessengerLink     string             `json:"messengerLink,omitempty"`
	Promo             PromoSettings      `json:"promo"`
	QuantityDiscounts map[string]float64 `json:"quantityDiscounts"`
}

// PromoSettings is the persisted shape of the storefront-wide promotion.
type PromoSettings struct {
	Enabled bool   `json:"enabled"`
	Type    string `json:"type"`
}

// PromoConfig converts the persisted promo into the catalog's config type.
// An unknown persisted type behaves as disabled.
func (p PromoSettings) PromoConfig() catalog.PromoConfig {
	t, err := catalog.ParsePromoType(p.Type)
	if err != nil {
		return catalog.PromoConfig{}
	}
	return catalog.PromoConfig{Enabled: p.Enabled, Type: t}
}

// DefaultDocument is what a fresh install starts from and what readers get
// when the blob is absent or unreadable.
func DefaultDocument() Document {
	return Document{
		Promo: PromoSettings{Enabled: false, Type: catalog.PromoB2G1.String()},
		QuantityDiscounts: map[string]float64{
			"1": 0,
			"2": 0.15,
			"3": 0.25,
		},
	}
}

// Patch is an admin settings update. Pointer fields distinguish "not sent"
// from zero values; only fields present in the request body are merged.
type Patch struct {
	SiteName          *string                    `json:"siteName"`
	TopBarMessage     *string                    `json:"topBarMessage"`
	MessengerLink     *string                    `json:"messengerLink"`
	Promo             *PromoPatch                `json:"promo"`
	QuantityDiscounts map[string]json.RawMessage `json:"quantityDiscounts"`
}

// PromoPatch updates the promotion; either field may be sent alone.
type PromoPatch struct {
	Enabled *bool   `json:"enabled"`
	Type    *string `json:"type"`
}

// MergePatch folds a patch into the current document and returns the result.
// Pure: neither input is mutated.
//
// Discount values arrive from the admin UI as either fractions or percents;
// anything > 1 is treated as a percent and divided by 100, then clamped to
// [0, 0.95] and rounded to 4 decimals. An unparseable value leaves the
// previous one in place, and sending quantityDiscounts at all rebuilds the
// table over the fixed pack sizes, seeding missing previous entries with 0.
func MergePatch(current Document, patch Patch) Document {
	next := current
	next.QuantityDiscounts = cloneDiscounts(current.QuantityDiscounts)

	if patch.SiteName != nil {
		next.SiteName = *patch.SiteName
	}
	if patch.TopBarMessage != nil {
		next.TopBarMessage = *patch.TopBarMessage
	}
	if patch.MessengerLink != nil {
		next.MessengerLink = *patch.MessengerLink
	}

	if patch.Promo != nil {
		promo := current.Promo
		if promo.Type == "" {
			promo.Type = catalog.PromoB2G1.String()
		}
		if patch.Promo.Enabled != nil {
			promo.Enabled = *patch.Promo.Enabled
		}
		if patch.Promo.Type != nil {
			if t, err := catalog.ParsePromoType(*patch.Promo.Type); err == nil {
				promo.Type = t.String()
			}
		}
		next.Promo = promo
	}

	if patch.QuantityDiscounts != nil {
		qd := make(map[string]float64, len(packSizeKeys))
		for _, key := range packSizeKeys {
			qd[key] = current.QuantityDiscounts[key]
		}
		for _, key := range packSizeKeys {
			raw, ok := patch.QuantityDiscounts[key]
			if !ok {
				continue
			}
			if fraction, ok := toFraction(raw); ok {
				qd[key] = fraction
			}
		}
		next.QuantityDiscounts = qd
	}

	return next
}

// toFraction coerces a raw JSON discount value into a fraction. Accepts
// numbers and numeric strings ("25", "0.25").
func toFraction(raw json.RawMessage) (float64, bool) {
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	if n > 1 {
		n = n / 100
	}
	n = math.Max(0, math.Min(catalog.MaxDiscountFraction, n))
	return math.Round(n*10000) / 10000, true
}

func cloneDiscounts(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
