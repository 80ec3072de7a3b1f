package products

// Product is one sellable research-compound SKU as persisted in the product
// document. The id is the merge key everywhere and never changes; every other
// field is admin-mutable through the bulk patch operation.
type Product struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Dosage        *string        `json:"dosage,omitempty"`
	Volume        *string        `json:"volume,omitempty"`
	Category      *string        `json:"category,omitempty"`
	Price         any            `json:"price,omitempty"`
	Image         *string        `json:"image,omitempty"`
	Images        []string       `json:"images,omitempty"`
	Tags          []string       `json:"tags,omitempty"`
	ResearchGoals []string       `json:"researchGoals,omitempty"`
	SynergiesWith []string       `json:"synergiesWith,omitempty"`
	Purchase      *PurchaseBlock `json:"purchase,omitempty"`
	FAQ           []FAQEntry     `json:"faq,omitempty"`
	Description   string         `json:"description,omitempty"`
}

// PurchaseBlock is the off-platform purchase instruction copy. Seed data may
// carry a per-product block; otherwise the storefront-wide one is attached
// during normalization.
type PurchaseBlock struct {
	Headline string `json:"headline"`
	Facebook string `json:"facebook,omitempty"`
	Email    string `json:"email,omitempty"`
	Note     string `json:"note,omitempty"`
}

// FAQEntry is one question/answer pair shown on the product page.
type FAQEntry struct {
	Q string `json:"q"`
	A string `json:"a"`
}
