package application

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/abdidvp/prodcat/internal/domain"
)

// CatalogService owns the in-memory product collection and is its only mutator.
// Every successful mutation is written through the ProductStore before the
// in-memory collection changes, so a failed write leaves the last good state.
//
// Operations apply immediately, in call order, and resolve their Pending
// handle after the configured latency.
type CatalogService struct {
	mu       sync.Mutex
	store    domain.ProductStore
	products []domain.Product
	latency  domain.LatencyConfig
	logger   *zap.Logger
}

// CatalogOption configures a CatalogService.
type CatalogOption func(*CatalogService)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) CatalogOption {
	return func(s *CatalogService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLatency sets the simulated delay of each operation.
func WithLatency(latency domain.LatencyConfig) CatalogOption {
	return func(s *CatalogService) {
		s.latency = latency
	}
}

// OpenCatalog loads the collection from store. When nothing is stored yet the
// collection is seeded with SeedProducts and saved before OpenCatalog returns.
func OpenCatalog(ctx context.Context, store domain.ProductStore, opts ...CatalogOption) (*CatalogService, error) {
	s := &CatalogService{
		store:   store,
		latency: domain.DefaultLatency(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	products, found, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	if !found {
		products = domain.SeedProducts()
		if err := store.Save(ctx, products); err != nil {
			return nil, fmt.Errorf("seeding catalog: %w", err)
		}
		s.logger.Info("catalog seeded", zap.Int("products", len(products)))
	}

	s.checkLoaded(products)
	s.products = products
	s.logger.Debug("catalog loaded", zap.Int("products", len(products)))
	return s, nil
}

// checkLoaded warns about stored records that break the collection invariants.
// They are kept as-is so a load/save cycle never drops data.
func (s *CatalogService) checkLoaded(products []domain.Product) {
	seen := make(map[string]bool, len(products))
	for i, p := range products {
		if seen[p.Code] {
			s.logger.Warn("stored catalog has a duplicate code", zap.String("code", p.Code), zap.Int("index", i))
		}
		seen[p.Code] = true
		if errs := domain.Validate(p); !errs.Valid() {
			s.logger.Warn("stored product fails validation",
				zap.String("code", p.Code), zap.Int("index", i), zap.String("errors", errs.String()))
		}
	}
}

// List resolves to a copy of the collection in its current order. It never fails.
func (s *CatalogService) List(_ context.Context) *Pending[[]domain.Product] {
	s.mu.Lock()
	snapshot := domain.CloneProducts(s.products)
	s.mu.Unlock()

	if snapshot == nil {
		snapshot = []domain.Product{}
	}
	return resolveAfter(s.latency.List, snapshot, nil)
}

// Get resolves to a copy of the product with the given code, or ErrNotFound.
func (s *CatalogService) Get(_ context.Context, code string) *Pending[domain.Product] {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := domain.IndexOf(s.products, code)
	if idx < 0 {
		return resolveAfter(s.latency.List, domain.Product{}, notFound(code))
	}
	return resolveAfter(s.latency.List, s.products[idx], nil)
}

// Add appends p to the collection and persists it. An empty code is replaced
// by "P" plus the zero-padded position the product will take; a generated code
// that collides is rejected like any other duplicate.
func (s *CatalogService) Add(ctx context.Context, p domain.Product) *Pending[domain.Product] {
	ctx = context.WithoutCancel(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if p.Code == "" {
		p.Code = nextCode(len(s.products))
	}

	if errs := domain.Validate(p); !errs.Valid() {
		s.logger.Debug("add rejected", zap.String("code", p.Code), zap.String("errors", errs.String()))
		return resolveAfter(s.latency.Add, domain.Product{}, &domain.ValidationError{Errors: errs})
	}

	if domain.IndexOf(s.products, p.Code) >= 0 {
		s.logger.Debug("add rejected", zap.String("code", p.Code), zap.String("reason", "duplicate code"))
		return resolveAfter(s.latency.Add, domain.Product{}, fmt.Errorf("product %q: %w", p.Code, domain.ErrDuplicateCode))
	}

	next := append(domain.CloneProducts(s.products), p)
	if err := s.commit(ctx, next); err != nil {
		return resolveAfter(s.latency.Add, domain.Product{}, fmt.Errorf("adding product %q: %w", p.Code, err))
	}

	s.logger.Info("product added", zap.String("code", p.Code), zap.Int("products", len(next)))
	return resolveAfter(s.latency.Add, p, nil)
}

// Update replaces the product with the same code, keeping its position.
func (s *CatalogService) Update(ctx context.Context, p domain.Product) *Pending[domain.Product] {
	ctx = context.WithoutCancel(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if errs := domain.Validate(p); !errs.Valid() {
		s.logger.Debug("update rejected", zap.String("code", p.Code), zap.String("errors", errs.String()))
		return resolveAfter(s.latency.Update, domain.Product{}, &domain.ValidationError{Errors: errs})
	}

	idx := domain.IndexOf(s.products, p.Code)
	if idx < 0 {
		return resolveAfter(s.latency.Update, domain.Product{}, notFound(p.Code))
	}

	next := domain.CloneProducts(s.products)
	next[idx] = p
	if err := s.commit(ctx, next); err != nil {
		return resolveAfter(s.latency.Update, domain.Product{}, fmt.Errorf("updating product %q: %w", p.Code, err))
	}

	s.logger.Info("product updated", zap.String("code", p.Code), zap.Int("index", idx))
	return resolveAfter(s.latency.Update, p, nil)
}

// Delete removes the product with the given code and resolves to true.
// Nothing matching resolves to false with ErrNotFound and writes nothing.
func (s *CatalogService) Delete(ctx context.Context, code string) *Pending[bool] {
	ctx = context.WithoutCancel(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.Code != code {
			next = append(next, p)
		}
	}
	if len(next) == len(s.products) {
		return resolveAfter(s.latency.Delete, false, notFound(code))
	}

	if err := s.commit(ctx, next); err != nil {
		return resolveAfter(s.latency.Delete, false, fmt.Errorf("deleting product %q: %w", code, err))
	}

	s.logger.Info("product deleted", zap.String("code", code), zap.Int("products", len(next)))
	return resolveAfter(s.latency.Delete, true, nil)
}

// commit saves next and swaps it in. Callers hold s.mu.
func (s *CatalogService) commit(ctx context.Context, next []domain.Product) error {
	if err := s.store.Save(ctx, next); err != nil {
		s.logger.Error("saving catalog failed", zap.Error(err))
		return err
	}
	s.products = next
	return nil
}

func nextCode(size int) string {
	return fmt.Sprintf("P%03d", size+1)
}

func notFound(code string) error {
	return fmt.Errorf("product %q: %w", code, domain.ErrNotFound)
}
