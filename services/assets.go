package services

import (
	"context"
	"fmt"
	"strings"
)

// AssetStore stores large uploaded files as independent blobs. Records in
// the materials collection reference assets by path; the two are written as
// separate operations and are not transactional.
type AssetStore interface {
	Upload(ctx context.Context, path string, data []byte, contentType, message string) (string, error)
	Delete(ctx context.Context, path string) error
}

// MaterialAssetPath builds the storage path for an uploaded material file.
func MaterialAssetPath(classID, courseCode, filename string) string {
	return fmt.Sprintf("teacher_materials/%s/%s/%s", classID, courseCode, filename)
}

// GitHubAssetService keeps assets in the same repository as the collection
// documents; files are publicly served via their raw URL.
type GitHubAssetService struct {
	store BlobStore
}

func NewGitHubAssetService(store BlobStore) *GitHubAssetService {
	return &GitHubAssetService{store: store}
}

func (s *GitHubAssetService) Upload(ctx context.Context, path string, data []byte, contentType, message string) (string, error) {
	if _, err := s.store.Put(ctx, path, data, message); err != nil {
		return "", fmt.Errorf("failed to upload asset %s: %w", path, err)
	}
	return s.store.RawURL(path), nil
}

func (s *GitHubAssetService) Delete(ctx context.Context, path string) error {
	return s.store.Delete(ctx, path, "Delete "+extractFileName(path))
}

func extractFileName(path string) string {
	parts := strings.Split(path, "/")
	return parts[len(parts)-1]
}
