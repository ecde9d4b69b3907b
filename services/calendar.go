package services

import (
	"context"
	"fmt"
	"time"

	"portal-api/models"
)

const calendarPath = "data/calendar_events.json"

// CalendarService manages the shared academic calendar collection.
type CalendarService struct {
	collection *Collection[models.CalendarEvent]
}

func NewCalendarService(store BlobStore) *CalendarService {
	return &CalendarService{
		collection: NewCollection[models.CalendarEvent](store, calendarPath, "calendar events"),
	}
}

// List returns every calendar event in insertion order.
func (s *CalendarService) List(ctx context.Context) ([]models.CalendarEvent, error) {
	return s.collection.LoadAll(ctx)
}

// Add appends a new event and returns its generated id. Dates are stored as
// given (YYYY-MM-DD); start/end ordering is not validated here.
func (s *CalendarService) Add(ctx context.Context, title, eventType, startDate string, endDate *string, description string) (*models.CalendarEvent, error) {
	var event models.CalendarEvent
	err := s.collection.Mutate(ctx, "Update calendar events", func(events []models.CalendarEvent) []models.CalendarEvent {
		event = models.CalendarEvent{
			ID:          fmt.Sprintf("evt_%d_%d", len(events)+1, time.Now().UTC().Unix()),
			Title:       title,
			Type:        eventType,
			StartDate:   startDate,
			EndDate:     endDate,
			Description: description,
		}
		return append(events, event)
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Update replaces the fields of an existing event in place. An unknown id is
// a no-op: the collection is written back unchanged.
func (s *CalendarService) Update(ctx context.Context, id, title, eventType, startDate string, endDate *string, description string) error {
	return s.collection.Mutate(ctx, "Update calendar events", func(events []models.CalendarEvent) []models.CalendarEvent {
		for i := range events {
			if events[i].ID == id {
				events[i].Title = title
				events[i].Type = eventType
				events[i].StartDate = startDate
				events[i].EndDate = endDate
				events[i].Description = description
				break
			}
		}
		return events
	})
}

// Delete removes the event with the given id, if present.
func (s *CalendarService) Delete(ctx context.Context, id string) error {
	return s.collection.Mutate(ctx, "Update calendar events", func(events []models.CalendarEvent) []models.CalendarEvent {
		remaining := make([]models.CalendarEvent, 0, len(events))
		for _, e := range events {
			if e.ID != id {
				remaining = append(remaining, e)
			}
		}
		return remaining
	})
}
