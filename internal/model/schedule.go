package model

import "time"

// EventType distinguishes regular classes from exams
type EventType string

const (
	EventClass EventType = "Class"
	EventExam  EventType = "Exam"
)

// ScheduleEvent is a scheduled Class or Exam for a course. StartTime must
// be strictly before EndTime.
type ScheduleEvent struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Type         EventType `json:"type"`
	CourseID     int       `json:"courseId"`
	InstructorID int       `json:"instructorId"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Description  string    `json:"description"`
}
