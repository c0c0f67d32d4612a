package domain

import "context"

// BlobSlot is a durable key/value location holding one opaque blob per key.
type BlobSlot interface {
	// Read returns the blob stored under key, or (nil, nil) if the key is absent.
	Read(ctx context.Context, key string) ([]byte, error)
	// Write replaces the blob stored under key. It never writes partially.
	Write(ctx context.Context, key string, data []byte) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// ProductStore loads and saves the entire product collection.
type ProductStore interface {
	// Load returns the stored collection and whether anything was stored.
	Load(ctx context.Context) ([]Product, bool, error)
	Save(ctx context.Context, products []Product) error
}

// ConfigLoader loads configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}
