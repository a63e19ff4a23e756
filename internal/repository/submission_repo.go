package repository

import (
	"context"
	"time"

	"app/internal/model"
)

type SubmissionRepository interface {
	// UpsertSubmission records a quiz attempt. If a submission already
	// exists for the same (studentID, courseID, moduleID) its score,
	// total and timestamp are overwritten in place under the same id;
	// otherwise a new record is appended with a fresh id. The
	// find-or-overwrite runs under a single write lock so concurrent
	// resubmission cannot produce duplicates.
	UpsertSubmission(ctx context.Context, s *model.QuizSubmission) (*model.QuizSubmission, error)
	ListSubmissionsByModule(ctx context.Context, courseID, moduleID int) ([]model.QuizSubmission, error)
	ListSubmissionsByStudent(ctx context.Context, studentID int) ([]model.QuizSubmission, error)
	CountSubmissions(ctx context.Context) (int, error)
}

type submissionRepo struct {
	db *DB
}

func NewSubmissionRepo(db *DB) SubmissionRepository {
	return &submissionRepo{db: db}
}

func (r *submissionRepo) UpsertSubmission(ctx context.Context, s *model.QuizSubmission) (*model.QuizSubmission, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	s.Timestamp = time.Now().UTC()

	for i := range r.db.submissions {
		existing := &r.db.submissions[i]
		if existing.StudentID == s.StudentID && existing.CourseID == s.CourseID && existing.ModuleID == s.ModuleID {
			// Last attempt wins; the original id is kept.
			existing.Score = s.Score
			existing.TotalQuestions = s.TotalQuestions
			existing.Timestamp = s.Timestamp
			updated := *existing
			return &updated, nil
		}
	}

	s.ID = r.db.nextSubmissionID
	r.db.nextSubmissionID++
	r.db.submissions = append(r.db.submissions, *s)
	created := *s
	return &created, nil
}

func (r *submissionRepo) ListSubmissionsByModule(ctx context.Context, courseID, moduleID int) ([]model.QuizSubmission, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var out []model.QuizSubmission
	for i := range r.db.submissions {
		if r.db.submissions[i].CourseID == courseID && r.db.submissions[i].ModuleID == moduleID {
			out = append(out, r.db.submissions[i])
		}
	}
	return out, nil
}

func (r *submissionRepo) ListSubmissionsByStudent(ctx context.Context, studentID int) ([]model.QuizSubmission, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var out []model.QuizSubmission
	for i := range r.db.submissions {
		if r.db.submissions[i].StudentID == studentID {
			out = append(out, r.db.submissions[i])
		}
	}
	return out, nil
}

func (r *submissionRepo) CountSubmissions(ctx context.Context) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return len(r.db.submissions), nil
}
