package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"portal-api/config"
)

// BlobStore is the primitive storage layer: versioned byte objects at
// logical paths. Writes and deletes are conditioned on the blob's current
// content identifier so concurrent changes are never silently clobbered.
type BlobStore interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
	Put(ctx context.Context, path string, data []byte, message string) (string, error)
	Delete(ctx context.Context, path, message string) error
	RawURL(path string) string
}

// GitHubService stores blobs as files in a GitHub repository via the
// contents API, one commit per write.
type GitHubService struct {
	client  *http.Client
	apiBase string
	repo    string
	branch  string
	token   string
}

func NewGitHubService(cfg *config.Config) (*GitHubService, error) {
	if cfg.GitHubToken == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN is not set")
	}
	if cfg.GitHubRepo == "" {
		return nil, fmt.Errorf("GITHUB_REPO is not set")
	}

	return &GitHubService{
		client:  &http.Client{Timeout: cfg.HTTPTimeout},
		apiBase: cfg.GitHubAPIBase,
		repo:    cfg.GitHubRepo,
		branch:  cfg.GitHubBranch,
		token:   cfg.GitHubToken,
	}, nil
}

type contentsResponse struct {
	SHA     string `json:"sha"`
	Content string `json:"content"`
}

// Fetch returns the blob bytes at path, or ErrNotFound if no blob exists.
func (s *GitHubService) Fetch(ctx context.Context, path string) ([]byte, error) {
	data, _, err := s.fetchWithSHA(ctx, path)
	return data, err
}

// Put writes the blob at path, creating or replacing it. The current sha is
// looked up first and sent as precondition so the remote host rejects writes
// that would discard a concurrent change. Returns the new sha.
func (s *GitHubService) Put(ctx context.Context, path string, data []byte, message string) (string, error) {
	sha, err := s.currentSHA(ctx, path)
	if err != nil {
		return "", err
	}

	payload := map[string]string{
		"message": message,
		"content": base64.StdEncoding.EncodeToString(data),
		"branch":  s.branch,
	}
	if sha != "" {
		payload["sha"] = sha
	}

	body, resp, err := s.do(ctx, http.MethodPut, path, payload)
	if err != nil {
		return "", err
	}
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusConflict, http.StatusUnprocessableEntity:
		return "", &ConflictError{Path: path}
	default:
		return "", &TransportError{Op: "put", Path: path, Status: resp.StatusCode}
	}

	var result struct {
		Content contentsResponse `json:"content"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode put response for %s: %w", path, err)
	}
	return result.Content.SHA, nil
}

// Delete removes the blob at path. A missing blob is a no-op, not an error.
func (s *GitHubService) Delete(ctx context.Context, path, message string) error {
	sha, err := s.currentSHA(ctx, path)
	if err != nil {
		return err
	}
	if sha == "" {
		// Already gone
		return nil
	}

	payload := map[string]string{
		"message": message,
		"sha":     sha,
		"branch":  s.branch,
	}

	_, resp, err := s.do(ctx, http.MethodDelete, path, payload)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusConflict, http.StatusUnprocessableEntity:
		return &ConflictError{Path: path}
	default:
		return &TransportError{Op: "delete", Path: path, Status: resp.StatusCode}
	}
}

// RawURL returns the public URL under which the blob is served.
func (s *GitHubService) RawURL(path string) string {
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s", s.repo, s.branch, path)
}

func (s *GitHubService) fetchWithSHA(ctx context.Context, path string) ([]byte, string, error) {
	body, resp, err := s.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, "", ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", &TransportError{Op: "fetch", Path: path, Status: resp.StatusCode}
	}

	var file contentsResponse
	if err := json.Unmarshal(body, &file); err != nil {
		return nil, "", fmt.Errorf("failed to decode contents response for %s: %w", path, err)
	}
	// The API wraps base64 bodies with newlines
	data, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(file.Content, "\n", ""))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode content of %s: %w", path, err)
	}
	return data, file.SHA, nil
}

// currentSHA returns the blob's content identifier, or "" when absent.
func (s *GitHubService) currentSHA(ctx context.Context, path string) (string, error) {
	_, sha, err := s.fetchWithSHA(ctx, path)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return sha, nil
}

func (s *GitHubService) do(ctx context.Context, method, path string, payload interface{}) ([]byte, *http.Response, error) {
	url := fmt.Sprintf("%s/repos/%s/contents/%s", s.apiBase, s.repo, path)

	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode request for %s: %w", path, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Authorization", "token "+s.token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, nil, &TransportError{Op: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &TransportError{Op: method, Path: path, Err: err}
	}
	return body, resp, nil
}
