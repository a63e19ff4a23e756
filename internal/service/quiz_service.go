package service

import (
	"context"
	"errors"
	"fmt"

	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrModuleNotFound = errors.New("module not found")
	ErrNotAQuiz       = errors.New("module is not a quiz")
	ErrInvalidScore   = errors.New("score must be between 0 and the question count")
)

type QuizService interface {
	// Submit records a quiz attempt. Resubmitting for the same module
	// overwrites the previous attempt, so at most one submission exists
	// per student and module.
	Submit(ctx context.Context, studentID, courseID, moduleID, score, totalQuestions int) (*model.QuizSubmission, error)
	ListByModule(ctx context.Context, courseID, moduleID int) ([]model.QuizSubmission, error)
	ListByStudent(ctx context.Context, studentID int) ([]model.QuizSubmission, error)
}

type quizService struct {
	submissionRepo repository.SubmissionRepository
	courseRepo     repository.CourseRepository
	userRepo       repository.UserRepository
	logger         zerolog.Logger
}

func NewQuizService(submissionRepo repository.SubmissionRepository, courseRepo repository.CourseRepository,
	userRepo repository.UserRepository, logger zerolog.Logger) QuizService {
	return &quizService{
		submissionRepo: submissionRepo,
		courseRepo:     courseRepo,
		userRepo:       userRepo,
		logger:         logger.With().Str("service", "QuizService").Logger(),
	}
}

func (s *quizService) Submit(ctx context.Context, studentID, courseID, moduleID, score, totalQuestions int) (*model.QuizSubmission, error) {
	student, err := s.userRepo.GetUserByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("looking up student: %w", err)
	}
	if student == nil {
		return nil, ErrUserNotFound
	}

	course, err := s.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("looking up course: %w", err)
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	mod, ok := course.ModuleByID(moduleID)
	if !ok {
		return nil, ErrModuleNotFound
	}
	if mod.Type != model.ModuleQuiz {
		return nil, ErrNotAQuiz
	}
	if score < 0 || score > totalQuestions || totalQuestions != len(mod.Questions) {
		return nil, ErrInvalidScore
	}

	sub, err := s.submissionRepo.UpsertSubmission(ctx, &model.QuizSubmission{
		CourseID:       courseID,
		ModuleID:       moduleID,
		StudentID:      studentID,
		Score:          score,
		TotalQuestions: totalQuestions,
	})
	if err != nil {
		s.logger.Error().Err(err).Int("student_id", studentID).Int("module_id", moduleID).Msg("Failed to record submission")
		return nil, fmt.Errorf("recording submission: %w", err)
	}
	return sub, nil
}

func (s *quizService) ListByModule(ctx context.Context, courseID, moduleID int) ([]model.QuizSubmission, error) {
	return s.submissionRepo.ListSubmissionsByModule(ctx, courseID, moduleID)
}

func (s *quizService) ListByStudent(ctx context.Context, studentID int) ([]model.QuizSubmission, error) {
	return s.submissionRepo.ListSubmissionsByStudent(ctx, studentID)
}
