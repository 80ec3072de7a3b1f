package products

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"math"
	"strconv"

	"github.com/gurneepeptides/storefront-backend/pkg/blob"
	"github.com/gurneepeptides/storefront-backend/pkg/errors"
	"github.com/gurneepeptides/storefront-backend/pkg/logger"
)

// Service reads and mutates the product collection blob. Historical deploys
// left the document in two shapes: a bare array and a {"items": [...]}
// wrapper (sometimes with sibling keys). Reads tolerate both; writes preserve
// whichever shape was found, including the wrapper's extra keys.
type Service struct {
	store blob.Store
	key   string
	log   *logger.Logger
}

func NewService(store blob.Store, key string, log *logger.Logger) *Service {
	return &Service{store: store, key: key, log: log}
}

// collection is the decoded document plus enough bookkeeping to write it back
// in the shape it arrived in.
type collection struct {
	items   []Product
	wrapped bool
	extra   map[string]json.RawMessage
}

// Patch is one entry of a bulk product update. Only the listed fields are
// admin-mutable; pointer/raw fields distinguish "not sent" from zero values.
type Patch struct {
	ID            string          `json:"id"`
	Price         json.RawMessage `json:"price,omitempty"`
	Name          *string         `json:"name"`
	Description   *string         `json:"description"`
	Tags          *[]string       `json:"tags"`
	ResearchGoals *[]string       `json:"researchGoals"`
	SynergiesWith *[]string       `json:"synergiesWith"`
}

// ShapeInfo describes how the persisted document is laid out. Diagnostic
// only; surfaced on an admin endpoint.
type ShapeInfo struct {
	IsArray       bool `json:"isArray"`
	HasItemsArray bool `json:"hasItemsArray"`
	SampleLength  *int `json:"sampleLength"`
}

// GetAll returns every product in the collection. An absent document is an
// empty catalog, not an error.
func (s *Service) GetAll(ctx context.Context) ([]Product, error) {
	coll, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return coll.items, nil
}

// GetByID returns the product with the given id or a NOT_FOUND error.
func (s *Service) GetByID(ctx context.Context, id string) (*Product, error) {
	coll, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range coll.items {
		if coll.items[i].ID == id {
			return &coll.items[i], nil
		}
	}
	return nil, errors.New(errors.CodeNotFound, "product not found")
}

// ApplyPatches merges field-level updates into matching products and writes
// the collection back. Patches whose id matches no product are skipped
// without error and not counted; the returned count is the number of patches
// that matched.
func (s *Service) ApplyPatches(ctx context.Context, updates []Patch) (int, error) {
	coll, err := s.load(ctx)
	if err != nil {
		return 0, err
	}

	byID := make(map[string]*Product, len(coll.items))
	for i := range coll.items {
		byID[coll.items[i].ID] = &coll.items[i]
	}

	applied := 0
	for _, patch := range updates {
		target, ok := byID[patch.ID]
		if !ok {
			continue
		}
		applyPatch(target, patch)
		applied++
	}

	if err := s.write(ctx, coll); err != nil {
		return 0, err
	}
	s.log.Info(ctx, "bulk product update applied")
	return applied, nil
}

func applyPatch(p *Product, patch Patch) {
	if patch.Price != nil {
		if n, ok := rawNumber(patch.Price); ok {
			p.Price = n
		}
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Tags != nil {
		p.Tags = *patch.Tags
	}
	if patch.ResearchGoals != nil {
		p.ResearchGoals = *patch.ResearchGoals
	}
	if patch.SynergiesWith != nil {
		p.SynergiesWith = *patch.SynergiesWith
	}
}

// UpdatePrices sets new base prices by product id. Only entries that parse to
// a finite number and actually differ from the stored price count as changes,
// and the document is rewritten only when at least one price changed.
func (s *Service) UpdatePrices(ctx context.Context, prices map[string]json.RawMessage) (int, error) {
	coll, err := s.load(ctx)
	if err != nil {
		return 0, err
	}

	changed := 0
	for i := range coll.items {
		raw, ok := prices[coll.items[i].ID]
		if !ok {
			continue
		}
		n, ok := rawNumber(raw)
		if !ok {
			continue
		}
		if current, ok := numericPrice(coll.items[i].Price); ok && current == n {
			continue
		}
		coll.items[i].Price = n
		changed++
	}

	if changed > 0 {
		if err := s.write(ctx, coll); err != nil {
			return 0, err
		}
		s.log.Info(ctx, "product prices updated")
	}
	return changed, nil
}

// Shape reports the persisted document's layout for admin diagnostics.
func (s *Service) Shape(ctx context.Context) (ShapeInfo, error) {
	data, err := s.store.Get(ctx, s.key)
	if stdErrors.Is(err, blob.ErrNotFound) {
		return ShapeInfo{}, nil
	}
	if err != nil {
		return ShapeInfo{}, errors.Wrap(errors.CodeDependency, err, "reading product document")
	}

	var info ShapeInfo
	var asArray []json.RawMessage
	if err := json.Unmarshal(data, &asArray); err == nil {
		info.IsArray = true
		length := len(asArray)
		info.SampleLength = &length
		return info, nil
	}

	var asObject map[string]json.RawMessage
	if err := json.Unmarshal(data, &asObject); err == nil {
		var items []json.RawMessage
		if raw, ok := asObject["items"]; ok && json.Unmarshal(raw, &items) == nil {
			info.HasItemsArray = true
			length := len(items)
			info.SampleLength = &length
		}
	}
	return info, nil
}

// load decodes the blob into a collection, remembering the wrapper shape.
// A document in neither known shape decodes as empty rather than erroring;
// the admin shape endpoint exists to diagnose exactly that case.
func (s *Service) load(ctx context.Context) (collection, error) {
	data, err := s.store.Get(ctx, s.key)
	if stdErrors.Is(err, blob.ErrNotFound) {
		return collection{items: []Product{}}, nil
	}
	if err != nil {
		return collection{}, errors.Wrap(errors.CodeDependency, err, "reading product document")
	}
	return decodeCollection(data), nil
}

func decodeCollection(data []byte) collection {
	var items []Product
	if err := json.Unmarshal(data, &items); err == nil {
		if items == nil {
			items = []Product{}
		}
		return collection{items: items}
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapper); err == nil {
		if rawItems, ok := wrapper["items"]; ok {
			if err := json.Unmarshal(rawItems, &items); err == nil {
				delete(wrapper, "items")
				if items == nil {
					items = []Product{}
				}
				return collection{items: items, wrapped: true, extra: wrapper}
			}
		}
	}
	return collection{items: []Product{}}
}

func (s *Service) write(ctx context.Context, coll collection) error {
	payload, err := encodeCollection(coll)
	if err != nil {
		return errors.Wrap(errors.CodeInternal, err, "encoding product document")
	}
	if err := s.store.Put(ctx, s.key, payload); err != nil {
		return errors.Wrap(errors.CodeDependency, err, "writing product document")
	}
	return nil
}

func encodeCollection(coll collection) ([]byte, error) {
	if !coll.wrapped {
		return json.MarshalIndent(coll.items, "", "  ")
	}
	doc := make(map[string]any, len(coll.extra)+1)
	for k, v := range coll.extra {
		doc[k] = v
	}
	doc["items"] = coll.items
	return json.MarshalIndent(doc, "", "  ")
}

// rawNumber coerces a raw JSON value into a finite float. Numbers and
// numeric strings are accepted; anything else is rejected.
func rawNumber(raw json.RawMessage) (float64, bool) {
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
	return n, true
}

// numericPrice interprets the stored price for change detection.
func numericPrice(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
