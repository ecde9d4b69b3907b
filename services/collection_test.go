package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestCollectionLoadAllBootstrap(t *testing.T) {
	store := newFakeBlobStore()
	col := NewCollection[testRecord](store, "data/test.json", "test records")

	records, err := col.LoadAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestCollectionLoadAllCorruptDocument(t *testing.T) {
	store := newFakeBlobStore()
	store.blobs["data/test.json"] = []byte("{not json[")
	store.versions["data/test.json"] = 1
	col := NewCollection[testRecord](store, "data/test.json", "test records")

	records, err := col.LoadAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestCollectionMutateRoundTrip(t *testing.T) {
	store := newFakeBlobStore()
	col := NewCollection[testRecord](store, "data/test.json", "test records")
	ctx := context.Background()

	err := col.Mutate(ctx, "add one", func(records []testRecord) []testRecord {
		return append(records, testRecord{ID: "1", Name: "first"})
	})
	require.NoError(t, err)

	err = col.Mutate(ctx, "add another", func(records []testRecord) []testRecord {
		return append(records, testRecord{ID: "2", Name: "second"})
	})
	require.NoError(t, err)

	records, err := col.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	// Insertion order is preserved
	require.Equal(t, "first", records[0].Name)
	require.Equal(t, "second", records[1].Name)
}

func TestCollectionMutateSurfacesConflict(t *testing.T) {
	store := newFakeBlobStore()
	colA := NewCollection[testRecord](store, "data/test.json", "test records")
	colB := NewCollection[testRecord](store, "data/test.json", "test records")
	ctx := context.Background()

	err := colA.Mutate(ctx, "seed", func(records []testRecord) []testRecord {
		return append(records, testRecord{ID: "1", Name: "seed"})
	})
	require.NoError(t, err)

	// B loads the collection at its current version
	recordsB, err := colB.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, recordsB, 1)

	// A writes first; B's next write still carries the old version
	err = colA.Mutate(ctx, "a wins", func(records []testRecord) []testRecord {
		return append(records, testRecord{ID: "2", Name: "from A"})
	})
	require.NoError(t, err)

	_, err = store.Put(ctx, "data/test.json", []byte("[]"), "b loses")
	require.Error(t, err)
	require.True(t, IsConflict(err))

	// The winning write is untouched
	records, err := colA.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestCollectionMutatePropagatesTransportError(t *testing.T) {
	store := newFakeBlobStore()
	store.putErr = &TransportError{Op: "put", Path: "data/test.json", Status: 500}
	col := NewCollection[testRecord](store, "data/test.json", "test records")

	err := col.Mutate(context.Background(), "add", func(records []testRecord) []testRecord {
		return append(records, testRecord{ID: "1"})
	})
	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
}
