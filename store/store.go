// Package store implements the storefront persistence façade.
//
// All shop state lives in one aggregate (domain.StoreData) kept as a
// single blob in a storage.Backend. Every operation is one synchronous
// read-modify-write of the whole aggregate: load the blob, mutate the
// relevant collection, write the blob back. There is no cache between
// the façade and the backend, so a second Store over the same backend
// observes every committed write. A mutex serializes operations within
// the process; writers in other processes remain last-writer-wins.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"printverse/auth"
	"printverse/domain"
	"printverse/seed"
	"printverse/storage"
)

// Store is the single mediator between callers and the stored
// aggregate. It guarantees the aggregate always contains at least the
// seed catalog: a missing, empty or unparsable blob is reseeded on the
// next access.
type Store struct {
	mu       sync.Mutex
	backend  storage.Backend
	verifier auth.CredentialVerifier
	log      *slog.Logger
}

// New constructs a Store over the given backend. A nil verifier
// defaults to bcrypt; a nil logger defaults to slog.Default().
func New(backend storage.Backend, verifier auth.CredentialVerifier, logger *slog.Logger) *Store {
	if verifier == nil {
		verifier = auth.NewBcryptVerifier(0)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{backend: backend, verifier: verifier, log: logger}
}

// load fetches and deserializes the aggregate, reseeding when the blob
// is absent, corrupted, or holds no products. Callers must hold s.mu.
func (s *Store) load(ctx context.Context) (domain.StoreData, error) {
	raw, err := s.backend.Load(ctx)
	if errors.Is(err, storage.ErrNotExist) {
		return s.reseed(ctx)
	}
	if err != nil {
		return domain.StoreData{}, err
	}

	var data domain.StoreData
	if err := json.Unmarshal(raw, &data); err != nil {
		// corrupted blob: treated the same as no data at all
		s.log.Warn("stored data is unreadable, reseeding", "error", err)
		return s.reseed(ctx)
	}
	if len(data.Products) == 0 {
		return s.reseed(ctx)
	}
	return data, nil
}

// reseed replaces the blob with the default aggregate.
func (s *Store) reseed(ctx context.Context) (domain.StoreData, error) {
	data, err := seed.Data()
	if err != nil {
		return domain.StoreData{}, err
	}
	if err := s.save(ctx, data); err != nil {
		return domain.StoreData{}, err
	}
	s.log.Info("store initialized with default data",
		"products", len(data.Products),
		"social_links", len(data.SocialMedia))
	return data, nil
}

// save serializes the full aggregate and overwrites the blob.
func (s *Store) save(ctx context.Context, data domain.StoreData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return s.backend.Save(ctx, raw)
}
