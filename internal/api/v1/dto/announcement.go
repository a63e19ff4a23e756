package dto

import "app/internal/model"

// SaveAnnouncementDTO creates or, when the URL carries an id, fully
// overwrites an announcement. A zero courseId means system-wide.
type SaveAnnouncementDTO struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	CourseID int    `json:"courseId"`
}

type AnnouncementResponseDTO struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID int    `json:"authorId"`
	Date     string `json:"date"`
	CourseID int    `json:"courseId,omitempty"`
}

func NewAnnouncementResponse(a *model.Announcement) AnnouncementResponseDTO {
	return AnnouncementResponseDTO{
		ID:       a.ID,
		Title:    a.Title,
		Content:  a.Content,
		AuthorID: a.AuthorID,
		Date:     a.Date,
		CourseID: a.CourseID,
	}
}
