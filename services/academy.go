package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"portal-api/config"
	"portal-api/models"
)

// AcademyClient is the read-only view of the academic-records service. The
// portal treats it as opaque: queries in, typed results out, no writes.
type AcademyClient interface {
	Courses(ctx context.Context, session string) ([]models.Course, error)
	Attendance(ctx context.Context, session string) ([]models.AttendanceRecord, error)
	Timetable(ctx context.Context, session string) ([]models.TimetableDay, error)
	ExamSeating(ctx context.Context, session string) ([]models.ExamSeat, error)
	Results(ctx context.Context, session string) ([]models.SubjectResult, error)
}

// AcademyService is the HTTP implementation against the academy API gateway.
// The caller's session token is forwarded on every request.
type AcademyService struct {
	client  *http.Client
	apiBase string
}

func NewAcademyService(cfg *config.Config) *AcademyService {
	return &AcademyService{
		client:  &http.Client{Timeout: cfg.HTTPTimeout},
		apiBase: cfg.AcademyAPIBase,
	}
}

func (s *AcademyService) Courses(ctx context.Context, session string) ([]models.Course, error) {
	var courses []models.Course
	if err := s.get(ctx, "/courses", session, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *AcademyService) Attendance(ctx context.Context, session string) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	if err := s.get(ctx, "/attendance", session, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *AcademyService) Timetable(ctx context.Context, session string) ([]models.TimetableDay, error) {
	var days []models.TimetableDay
	if err := s.get(ctx, "/timetable", session, &days); err != nil {
		return nil, err
	}
	return days, nil
}

func (s *AcademyService) ExamSeating(ctx context.Context, session string) ([]models.ExamSeat, error) {
	var seats []models.ExamSeat
	if err := s.get(ctx, "/exam-seating", session, &seats); err != nil {
		return nil, err
	}
	return seats, nil
}

func (s *AcademyService) Results(ctx context.Context, session string) ([]models.SubjectResult, error) {
	var results []models.SubjectResult
	if err := s.get(ctx, "/results", session, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *AcademyService) get(ctx context.Context, path, session string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiBase+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build academy request for %s: %w", path, err)
	}
	req.Header.Set("Authorization", "Bearer "+session)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return &TransportError{Op: "academy get", Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &TransportError{Op: "academy get", Path: path, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: "academy get", Path: path, Err: err}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode academy response for %s: %w", path, err)
	}
	return nil
}
