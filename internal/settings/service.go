package settings

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"sync"
	"time"

	"github.com/gurneepeptides/storefront-backend/pkg/blob"
	"github.com/gurneepeptides/storefront-backend/pkg/errors"
	"github.com/gurneepeptides/storefront-backend/pkg/logger"
)

// Service reads and writes the settings document. Reads are served from a
// short-lived cache: settings change rarely and the public endpoint is hit on
// every page load, so a slightly stale read is fine. Writes go through
// MergePatch and invalidate the cache.
type Service struct {
	store    blob.Store
	key      string
	log      *logger.Logger
	cacheTTL time.Duration
	now      func() time.Time

	mu       sync.Mutex
	cached   *Document
	cachedAt time.Time
}

func NewService(store blob.Store, key string, cacheTTL time.Duration, log *logger.Logger) *Service {
	return &Service{
		store:    store,
		key:      key,
		log:      log,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// Get returns the current settings document. An absent or unreadable blob
// yields the defaults rather than an error; the storefront must render even
// before the first admin save.
func (s *Service) Get(ctx context.Context) (Document, error) {
	s.mu.Lock()
	if s.cached != nil && s.now().Sub(s.cachedAt) < s.cacheTTL {
		doc := cloneDocument(*s.cached)
		s.mu.Unlock()
		return doc, nil
	}
	s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return Document{}, err
	}

	s.mu.Lock()
	cached := cloneDocument(doc)
	s.cached = &cached
	s.cachedAt = s.now()
	s.mu.Unlock()

	return doc, nil
}

// Update merges the patch into the freshly read document, persists it, and
// refreshes the cache. Returns the document as written.
func (s *Service) Update(ctx context.Context, patch Patch) (Document, error) {
	current, err := s.load(ctx)
	if err != nil {
		return Document{}, err
	}

	next := MergePatch(current, patch)

	data, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return Document{}, errors.Wrap(errors.CodeInternal, err, "encoding settings document")
	}
	if err := s.store.Put(ctx, s.key, data); err != nil {
		return Document{}, errors.Wrap(errors.CodeDependency, err, "writing settings document")
	}

	s.mu.Lock()
	cached := cloneDocument(next)
	s.cached = &cached
	s.cachedAt = s.now()
	s.mu.Unlock()

	s.log.Info(ctx, "settings updated")
	return next, nil
}

// load reads the document from the store, bypassing the cache.
func (s *Service) load(ctx context.Context) (Document, error) {
	data, err := s.store.Get(ctx, s.key)
	if stdErrors.Is(err, blob.ErrNotFound) {
		return DefaultDocument(), nil
	}
	if err != nil {
		return Document{}, errors.Wrap(errors.CodeDependency, err, "reading settings document")
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Warn(ctx, "settings document is not valid JSON, serving defaults")
		return DefaultDocument(), nil
	}
	return withDefaults(doc), nil
}

// withDefaults fills the holes an older or hand-edited document may have.
func withDefaults(doc Document) Document {
	if doc.Promo.Type == "" {
		doc.Promo.Type = DefaultDocument().Promo.Type
	}
	if doc.QuantityDiscounts == nil {
		doc.QuantityDiscounts = DefaultDocument().QuantityDiscounts
	}
	return doc
}

func cloneDocument(doc Document) Document {
	doc.QuantityDiscounts = cloneDiscounts(doc.QuantityDiscounts)
	return doc
}
