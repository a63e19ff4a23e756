package dto

import "app/internal/model"

// QuestionDTO includes the correct answer index because the client
// grades quiz attempts locally and submits the computed score.
type QuestionDTO struct {
	ID                 int      `json:"id"`
	Text               string   `json:"text"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
}

type ModuleDTO struct {
	ID        int           `json:"id"`
	Title     string        `json:"title"`
	Type      string        `json:"type"`
	Completed bool          `json:"completed"`
	Duration  int           `json:"duration"`
	Questions []QuestionDTO `json:"questions,omitempty"`
}

type CourseResponseDTO struct {
	ID           int         `json:"id"`
	Title        string      `json:"title"`
	Subject      string      `json:"subject"`
	Instructor   string      `json:"instructor"`
	InstructorID int         `json:"instructorId"`
	Progress     int         `json:"progress"`
	Modules      []ModuleDTO `json:"modules"`
}

// NewCourseResponse maps a course for API consumers.
func NewCourseResponse(c *model.Course) CourseResponseDTO {
	out := CourseResponseDTO{
		ID:           c.ID,
		Title:        c.Title,
		Subject:      c.Subject,
		Instructor:   c.Instructor,
		InstructorID: c.InstructorID,
		Progress:     c.Progress,
	}
	for _, m := range c.Modules {
		md := ModuleDTO{
			ID:        m.ID,
			Title:     m.Title,
			Type:      string(m.Type),
			Completed: m.Completed,
			Duration:  m.Duration,
		}
		for _, q := range m.Questions {
			md.Questions = append(md.Questions, QuestionDTO{
				ID:                 q.ID,
				Text:               q.Text,
				Options:            q.Options,
				CorrectAnswerIndex: q.CorrectAnswerIndex,
			})
		}
		out.Modules = append(out.Modules, md)
	}
	return out
}
