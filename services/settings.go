package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"portal-api/models"
)

const settingsPath = "data/semester_settings.json"

// SettingsService manages the singleton semester-settings document.
type SettingsService struct {
	store BlobStore
}

func NewSettingsService(store BlobStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get returns the current settings. Any fetch or parse failure degrades to
// the unset state so downstream features can show "not configured" instead
// of an error.
func (s *SettingsService) Get(ctx context.Context) models.SemesterSettings {
	data, err := s.store.Fetch(ctx, settingsPath)
	if err != nil {
		return models.SemesterSettings{}
	}

	var settings models.SemesterSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("SettingsService - Get: corrupt settings document, treating as unset: %v", err)
		return models.SemesterSettings{}
	}
	return settings
}

// Save overwrites the settings document unconditionally.
func (s *SettingsService) Save(ctx context.Context, settings models.SemesterSettings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize semester settings: %w", err)
	}
	if _, err := s.store.Put(ctx, settingsPath, data, "Update semester settings"); err != nil {
		return fmt.Errorf("failed to save semester settings: %w", err)
	}
	return nil
}
