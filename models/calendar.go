package models

// Event types shown in the academic calendar.
const (
	EventTypeHoliday    = "holiday"
	EventTypeAssessment = "assessment"
	EventTypeMeeting    = "meeting"
	EventTypeMilestone  = "milestone"
)

// CalendarEvent is one academic calendar entry. Dates are calendar dates
// (YYYY-MM-DD); EndDate is nil for point-in-time events.
type CalendarEvent struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Type        string  `json:"type"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Description string  `json:"description"`
}

func ValidEventType(eventType string) bool {
	switch eventType {
	case EventTypeHoliday, EventTypeAssessment, EventTypeMeeting, EventTypeMilestone:
		return true
	}
	return false
}
