package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abdidvp/prodcat/internal/domain"
)

// JSONStore implements domain.ProductStore by keeping the whole collection
// as one JSON array in a single durable slot.
type JSONStore struct {
	slot domain.BlobSlot
	key  string
}

// New creates a store that reads and writes slot under key.
func New(slot domain.BlobSlot, key string) *JSONStore {
	if key == "" {
		key = domain.DefaultSlotKey
	}
	return &JSONStore{slot: slot, key: key}
}

// Key returns the slot key the collection is stored under.
func (s *JSONStore) Key() string { return s.key }

// Load returns the stored collection and whether the slot existed.
// A slot that exists but does not decode is a persistence error, never an empty catalog.
func (s *JSONStore) Load(ctx context.Context) ([]domain.Product, bool, error) {
	data, err := s.slot.Read(ctx, s.key)
	if err != nil {
		return nil, false, &domain.PersistenceError{Op: "read", Key: s.key, Err: err}
	}
	if data == nil {
		return nil, false, nil
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, true, &domain.PersistenceError{Op: "decode", Key: s.key, Err: err}
	}
	if products == nil {
		products = []domain.Product{} // stored "null"
	}
	return products, true, nil
}

// Save writes the whole collection, in order, replacing whatever was stored.
func (s *JSONStore) Save(ctx context.Context, products []domain.Product) error {
	if products == nil {
		products = []domain.Product{}
	}
	data, err := json.Marshal(products)
	if err != nil {
		return &domain.PersistenceError{Op: "encode", Key: s.key, Err: err}
	}
	if err := s.slot.Write(ctx, s.key, data); err != nil {
		return &domain.PersistenceError{Op: "write", Key: s.key, Err: fmt.Errorf("%d products: %w", len(products), err)}
	}
	return nil
}

// Clear removes the stored collection, so the next Load reports nothing stored.
func (s *JSONStore) Clear(ctx context.Context) error {
	if err := s.slot.Remove(ctx, s.key); err != nil {
		return &domain.PersistenceError{Op: "remove", Key: s.key, Err: err}
	}
	return nil
}
