// Package storage provides blob backends for the storefront aggregate.
//
// A Backend holds exactly one opaque blob under one key, mirroring the
// single browser-storage slot the shop's data lives in. Backends know
// nothing about the blob's contents; serialization and seeding belong
// to the store layer.
package storage

import (
	"context"
	"errors"
)

// ErrNotExist is returned by Load when no blob has been saved yet.
var ErrNotExist = errors.New("storage: blob does not exist")

// Backend is a single-slot blob store.
//
// Writes are whole-blob and last-writer-wins: two processes sharing the
// same file or key will silently overwrite each other. Callers that
// need stronger guarantees must serialize access themselves.
type Backend interface {
	// Load returns the stored blob, or ErrNotExist when nothing has
	// been saved.
	Load(ctx context.Context) ([]byte, error)
	// Save overwrites the blob.
	Save(ctx context.Context, data []byte) error
	// Delete removes the blob entirely. Deleting an absent blob is
	// not an error.
	Delete(ctx context.Context) error
	// Exists reports whether a blob is present.
	Exists(ctx context.Context) (bool, error)
}
