package dto

import (
	"time"

	"app/internal/model"
)

// SaveScheduleEventDTO creates or, when the URL carries an id, fully
// overwrites a schedule event. Times are RFC 3339.
type SaveScheduleEventDTO struct {
	Title        string    `json:"title" validate:"required"`
	Type         string    `json:"type" validate:"required,oneof=Class Exam"`
	CourseID     int       `json:"courseId" validate:"required"`
	InstructorID int       `json:"instructorId"`
	StartTime    time.Time `json:"startTime" validate:"required"`
	EndTime      time.Time `json:"endTime" validate:"required"`
	Description  string    `json:"description"`
}

type ScheduleEventResponseDTO struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Type         string    `json:"type"`
	CourseID     int       `json:"courseId"`
	InstructorID int       `json:"instructorId"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Description  string    `json:"description"`
}

// SaveScheduleResponseDTO carries the saved event and, on creation, the
// companion announcement generated with it.
type SaveScheduleResponseDTO struct {
	Event        ScheduleEventResponseDTO `json:"event"`
	Announcement *AnnouncementResponseDTO `json:"announcement,omitempty"`
}

func NewScheduleEventResponse(e *model.ScheduleEvent) ScheduleEventResponseDTO {
	return ScheduleEventResponseDTO{
		ID:           e.ID,
		Title:        e.Title,
		Type:         string(e.Type),
		CourseID:     e.CourseID,
		InstructorID: e.InstructorID,
		StartTime:    e.StartTime,
		EndTime:      e.EndTime,
		Description:  e.Description,
	}
}
