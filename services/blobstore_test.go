package services

import (
	"context"
	"fmt"
	"sync"
)

// fakeBlobStore is an in-memory BlobStore with the remote host's optimistic
// concurrency semantics: a write to an existing blob succeeds only when the
// writer has fetched the blob's current version, otherwise it fails with
// ConflictError. Creates always succeed.
type fakeBlobStore struct {
	mu          sync.Mutex
	blobs       map[string][]byte
	versions    map[string]int
	lastFetched map[string]int
	putErr      error
	deleteErr   error
	deleted     []string
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{
		blobs:       make(map[string][]byte),
		versions:    make(map[string]int),
		lastFetched: make(map[string]int),
	}
}

func (f *fakeBlobStore) Fetch(_ context.Context, path string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, ok := f.blobs[path]
	if !ok {
		return nil, ErrNotFound
	}
	f.lastFetched[path] = f.versions[path]

	copied := make([]byte, len(data))
	copy(copied, data)
	return copied, nil
}

func (f *fakeBlobStore) Put(_ context.Context, path string, data []byte, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.putErr != nil {
		return "", f.putErr
	}
	if _, exists := f.blobs[path]; exists && f.lastFetched[path] != f.versions[path] {
		return "", &ConflictError{Path: path}
	}

	copied := make([]byte, len(data))
	copy(copied, data)
	f.blobs[path] = copied
	f.versions[path]++
	return fmt.Sprintf("sha-%d", f.versions[path]), nil
}

func (f *fakeBlobStore) Delete(_ context.Context, path, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deleted = append(f.deleted, path)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.blobs, path)
	return nil
}

func (f *fakeBlobStore) RawURL(path string) string {
	return "https://raw.example.test/" + path
}
