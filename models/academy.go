package models

// Read models for the academic-records service. The portal never writes
// these; they are returned as-is from the upstream API.

type Course struct {
	Code    string `json:"code"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Credits int    `json:"credits"`
}

type AttendanceRecord struct {
	CourseCode      string  `json:"course_code"`
	CourseTitle     string  `json:"course_title"`
	AttendedClasses int     `json:"attended_classes"`
	TotalClasses    int     `json:"total_classes"`
	Percentage      float64 `json:"percentage"`
}

type TimetableSlot struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Faculty string `json:"faculty"`
}

type TimetableDay struct {
	Day   string          `json:"day"`
	Slots []TimetableSlot `json:"slots"`
}

type ExamSeat struct {
	CourseCode string `json:"course_code"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Room       string `json:"room"`
	SeatNumber string `json:"seat_number"`
}

type SubjectResult struct {
	CourseCode  string  `json:"course_code"`
	CourseTitle string  `json:"course_title"`
	Marks       float64 `json:"marks"`
	MaxMarks    float64 `json:"max_marks"`
}
