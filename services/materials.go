package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"portal-api/models"
)

const materialsPath = "data/teacher_materials.json"

// MaterialService manages the shared class-materials collection. Uploaded
// files go to the asset store first; the index record is appended after, so
// a failed upload never leaves a dangling record.
type MaterialService struct {
	collection *Collection[models.Material]
	assets     AssetStore
}

func NewMaterialService(store BlobStore, assets AssetStore) *MaterialService {
	return &MaterialService{
		collection: NewCollection[models.Material](store, materialsPath, "teacher materials"),
		assets:     assets,
	}
}

type MaterialUpload struct {
	ClassID     string
	Section     string
	CourseCode  string
	CourseTitle string
	Filename    string
	ContentType string
	UploadedBy  string
	Data        []byte
}

// Upload stores the file and appends its index record. The generated id is
// count-plus-timestamp; not collision-proof under racing uploads, but the
// losing writer gets a conflict from the collection write.
func (s *MaterialService) Upload(ctx context.Context, upload MaterialUpload) (*models.Material, error) {
	storagePath := MaterialAssetPath(upload.ClassID, upload.CourseCode, upload.Filename)

	message := fmt.Sprintf("Upload %s: %s", upload.CourseCode, upload.Filename)
	fileURL, err := s.assets.Upload(ctx, storagePath, upload.Data, upload.ContentType, message)
	if err != nil {
		return nil, err
	}

	var material models.Material
	err = s.collection.Mutate(ctx, "Update teacher materials", func(materials []models.Material) []models.Material {
		material = models.Material{
			ID:          fmt.Sprintf("mat_%d_%d", len(materials)+1, time.Now().UTC().Unix()),
			ClassID:     upload.ClassID,
			Section:     upload.Section,
			CourseCode:  upload.CourseCode,
			CourseTitle: upload.CourseTitle,
			Filename:    upload.Filename,
			StoragePath: storagePath,
			FileURL:     fileURL,
			ContentType: upload.ContentType,
			Size:        int64(len(upload.Data)),
			UploadedBy:  upload.UploadedBy,
			UploadedAt:  time.Now().UTC().Format(time.RFC3339),
		}
		return append(materials, material)
	})
	if err != nil {
		return nil, err
	}
	return &material, nil
}

// List returns every material in the collection.
func (s *MaterialService) List(ctx context.Context) ([]models.Material, error) {
	return s.collection.LoadAll(ctx)
}

// BySection returns materials visible to one section. Filtering happens in
// memory; the collection stays small enough that no index is kept.
func (s *MaterialService) BySection(ctx context.Context, classID, section string) ([]models.Material, error) {
	materials, err := s.collection.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Material, 0)
	for _, m := range materials {
		if m.ClassID == classID && m.Section == section {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

// ByClass returns all materials for a class regardless of section.
func (s *MaterialService) ByClass(ctx context.Context, classID string) ([]models.Material, error) {
	materials, err := s.collection.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Material, 0)
	for _, m := range materials {
		if m.ClassID == classID {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

// Delete removes a material record. The asset blob is cleaned up best-effort
// first: the index is the source of truth, so a failed blob delete is logged
// and the record removed anyway.
func (s *MaterialService) Delete(ctx context.Context, id string) (*models.Material, error) {
	materials, err := s.collection.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	var material *models.Material
	for i := range materials {
		if materials[i].ID == id {
			material = &materials[i]
			break
		}
	}
	if material == nil {
		return nil, fmt.Errorf("material %s: %w", id, ErrNotFound)
	}

	if material.StoragePath != "" {
		if err := s.assets.Delete(ctx, material.StoragePath); err != nil {
			log.Printf("MaterialService - Delete: asset cleanup failed for %s: %v", material.StoragePath, err)
		}
	}

	err = s.collection.Mutate(ctx, "Update teacher materials", func(materials []models.Material) []models.Material {
		remaining := make([]models.Material, 0, len(materials))
		for _, m := range materials {
			if m.ID != id {
				remaining = append(remaining, m)
			}
		}
		return remaining
	})
	if err != nil {
		return nil, err
	}
	return material, nil
}
