package model

import "time"

// QuizSubmission records a learner's attempt at a Quiz module. At most
// one submission exists per (studentID, courseID, moduleID); resubmitting
// overwrites the previous attempt in place.
type QuizSubmission struct {
	ID             int       `json:"id"`
	CourseID       int       `json:"courseId"`
	ModuleID       int       `json:"moduleId"`
	StudentID      int       `json:"studentId"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	Timestamp      time.Time `json:"timestamp"`
}
