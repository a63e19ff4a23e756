package service

import (
	"testing"

	"app/internal/model"
	"app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// testHash is a bcrypt hash of "password123" at MinCost, shared by all
// fixture users.
func testHash(t *testing.T) []byte {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing fixture password: %v", err)
	}
	return hash
}

// newTestDB builds a fresh store with a minimal dataset: one learner,
// one instructor, one admin, one course with a two-question quiz, an
// announcement, and one unpaid plus one paid transaction.
func newTestDB(t *testing.T) *repository.DB {
	t.Helper()
	hash := testHash(t)

	db := repository.NewDB()
	db.Load(
		[]model.User{
			{ID: 1, Name: "JOY", Email: "joy@edupro.com", Role: model.RoleLearner, Theme: "light", PasswordHash: hash},
			{ID: 2, Name: "Mrs. Lopez", Email: "lopez@edupro.com", Role: model.RoleInstructor, Theme: "light", PasswordHash: hash},
			{ID: 3, Name: "Sam Chen", Email: "sam@edupro.com", Role: model.RoleAdmin, Theme: "light", PasswordHash: hash},
		},
		[]model.Course{
			{
				ID: 1, Title: "CPA Review: Financial Accounting", Subject: "Accounting",
				Instructor: "Mrs. Lopez", InstructorID: 2, Progress: 75,
				Modules: []model.Module{
					{ID: 1, Title: "The Conceptual Framework", Type: model.ModuleVideo, Duration: 45},
					{
						ID: 4, Title: "Diagnostic Exam 1", Type: model.ModuleQuiz, Duration: 20,
						Questions: []model.Question{
							{ID: 1, Text: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswerIndex: 1},
							{ID: 2, Text: "Q2", Options: []string{"a", "b", "c", "d"}, CorrectAnswerIndex: 3},
						},
					},
				},
			},
		},
		[]model.Announcement{
			{ID: 1, Title: "System Maintenance", Content: "Down on Sunday at 2 AM.", AuthorID: 3, Date: "2024-07-20"},
		},
		nil,
		nil,
		nil,
		[]model.Transaction{
			{ID: 1, Description: "Review Package", Amount: 15500.75, Date: "2024-08-01", Status: model.StatusUnpaid},
			{ID: 2, Description: "Reservation Fee", Amount: 500.00, Date: "2024-06-15", Status: model.StatusPaid},
		},
		nil,
	)
	return db
}
