package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

// Collection persists an ordered list of records of type T as a single JSON
// blob. Every mutation is whole-document: load, transform in memory, write
// back. That bounds collections to the low-volume administrative edits this
// portal makes, and keeps the storage primitive to one blob per collection.
type Collection[T any] struct {
	store BlobStore
	path  string
	name  string
}

func NewCollection[T any](store BlobStore, path, name string) *Collection[T] {
	return &Collection[T]{
		store: store,
		path:  path,
		name:  name,
	}
}

// LoadAll returns every record in the collection. A missing blob is an empty
// collection; a corrupt blob degrades to empty rather than failing the read
// path. Transport errors propagate.
func (c *Collection[T]) LoadAll(ctx context.Context) ([]T, error) {
	data, err := c.store.Fetch(ctx, c.path)
	if errors.Is(err, ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", c.name, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("Collection %s: corrupt document at %s, treating as empty: %v", c.name, c.path, err)
		return []T{}, nil
	}
	return records, nil
}

// Mutate is the single write primitive: load, apply transform, write the
// whole collection back. No lock spans the two network calls; a concurrent
// writer landing in between surfaces as ConflictError from Put. No retry.
func (c *Collection[T]) Mutate(ctx context.Context, message string, transform func([]T) []T) error {
	records, err := c.LoadAll(ctx)
	if err != nil {
		return err
	}

	records = transform(records)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", c.name, err)
	}

	if _, err := c.store.Put(ctx, c.path, data, message); err != nil {
		return fmt.Errorf("failed to save %s: %w", c.name, err)
	}
	return nil
}
