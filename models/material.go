package models

// Material is one uploaded class material. The record references the asset
// blob through StoragePath; FileURL is the public link served to students.
type Material struct {
	ID          string `json:"id"`
	ClassID     string `json:"class_id"`
	Section     string `json:"section"`
	CourseCode  string `json:"course_code"`
	CourseTitle string `json:"course_title"`
	Filename    string `json:"filename"`
	StoragePath string `json:"storage_path"`
	FileURL     string `json:"file_url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	UploadedBy  string `json:"uploaded_by"`
	UploadedAt  string `json:"uploaded_at"`
}
