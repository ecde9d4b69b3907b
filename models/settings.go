package models

// SemesterSettings is the singleton semester configuration document.
// A nil SemesterEndDate means "not configured yet".
type SemesterSettings struct {
	SemesterEndDate *string `json:"semester_end_date"`
}
