package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"printverse/domain"
	"printverse/storage"
)

// the five top-level fields every valid aggregate must carry
var requiredFields = []string{"products", "cart", "orders", "admin", "socialMedia"}

// Export returns the whole aggregate, pretty-printed, for backup.
func (s *Store) Export(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// Import replaces the whole aggregate with the given payload. The
// payload must be valid JSON carrying all five top-level fields;
// otherwise the current aggregate is left untouched and an ImportError
// is returned. The replacement is all-or-nothing.
func (s *Store) Import(ctx context.Context, payload []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return domain.NewImportError("payload is not a JSON object")
	}
	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			return domain.NewImportError("missing required field: " + field)
		}
	}
	var data domain.StoreData
	if err := json.Unmarshal(payload, &data); err != nil {
		return domain.NewImportError("payload does not match the store layout")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, data)
}

// ClearAll deletes the stored blob entirely. The next access reseeds.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log.Info("clearing all stored data")
	return s.backend.Delete(ctx)
}

// RestoreDefaults reseeds the aggregate, but only when the current
// product list is empty (or no readable data exists). It reports
// whether it acted.
func (s *Store) RestoreDefaults(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.backend.Load(ctx)
	if err != nil && !errors.Is(err, storage.ErrNotExist) {
		return false, err
	}
	if err == nil {
		var data domain.StoreData
		if json.Unmarshal(raw, &data) == nil && len(data.Products) > 0 {
			return false, nil
		}
	}
	if _, err := s.reseed(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// EnsureExists seeds the store only when no blob is present at all. It
// is idempotent: a store that already holds data is left alone.
func (s *Store) EnsureExists(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok, err := s.backend.Exists(ctx)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	_, err = s.reseed(ctx)
	return err
}

// Stats folds over the aggregate and returns the dashboard counters.
// Nothing is cached; every call recomputes from current data.
func (s *Store) Stats(ctx context.Context) (domain.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	stats := domain.Stats{
		TotalOrders:   len(data.Orders),
		TotalProducts: len(data.Products),
	}
	for _, o := range data.Orders {
		stats.TotalRevenue += o.Total
		if o.Status == domain.StatusPending {
			stats.PendingOrders++
		}
	}
	return stats, nil
}

// Info returns per-collection counts for the data-management screen.
func (s *Store) Info(ctx context.Context) (domain.Info, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load(ctx)
	if err != nil {
		return domain.Info{}, err
	}
	return domain.Info{
		ProductsCount:    len(data.Products),
		OrdersCount:      len(data.Orders),
		CartItemsCount:   len(data.Cart),
		SocialMediaCount: len(data.SocialMedia),
		LastModified:     time.Now().Format(time.RFC3339),
	}, nil
}
