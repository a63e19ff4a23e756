package dto

import (
	"time"

	"app/internal/model"
)

// SubmitQuizDTO records a graded quiz attempt. The student is the
// authenticated caller.
type SubmitQuizDTO struct {
	CourseID       int `json:"courseId" validate:"required"`
	ModuleID       int `json:"moduleId" validate:"required"`
	Score          int `json:"score" validate:"min=0"`
	TotalQuestions int `json:"totalQuestions" validate:"required,min=1"`
}

type SubmissionResponseDTO struct {
	ID             int       `json:"id"`
	CourseID       int       `json:"courseId"`
	ModuleID       int       `json:"moduleId"`
	StudentID      int       `json:"studentId"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	Timestamp      time.Time `json:"timestamp"`
}

func NewSubmissionResponse(s *model.QuizSubmission) SubmissionResponseDTO {
	return SubmissionResponseDTO{
		ID:             s.ID,
		CourseID:       s.CourseID,
		ModuleID:       s.ModuleID,
		StudentID:      s.StudentID,
		Score:          s.Score,
		TotalQuestions: s.TotalQuestions,
		Timestamp:      s.Timestamp,
	}
}
