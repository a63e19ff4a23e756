package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
)

var (
	ErrEventNotFound    = errors.New("schedule event not found")
	ErrInvalidTimeRange = errors.New("event start time must be before end time")
)

type ScheduleService interface {
	// Save creates the event when it has no id and overwrites the
	// existing record otherwise. Creation also appends a companion
	// announcement for the event's course, atomically with the event;
	// updates never do. A non-positive time range fails with
	// ErrInvalidTimeRange and mutates nothing.
	Save(ctx context.Context, e *model.ScheduleEvent) (*model.ScheduleEvent, *model.Announcement, error)
	List(ctx context.Context) ([]model.ScheduleEvent, error)
}

type scheduleService struct {
	scheduleRepo repository.ScheduleRepository
	courseRepo   repository.CourseRepository
	logger       zerolog.Logger
}

func NewScheduleService(scheduleRepo repository.ScheduleRepository, courseRepo repository.CourseRepository, logger zerolog.Logger) ScheduleService {
	return &scheduleService{
		scheduleRepo: scheduleRepo,
		courseRepo:   courseRepo,
		logger:       logger.With().Str("service", "ScheduleService").Logger(),
	}
}

func (s *scheduleService) Save(ctx context.Context, e *model.ScheduleEvent) (*model.ScheduleEvent, *model.Announcement, error) {
	if !e.StartTime.Before(e.EndTime) {
		return nil, nil, ErrInvalidTimeRange
	}

	if e.ID != 0 {
		updated, err := s.scheduleRepo.UpdateEvent(ctx, e)
		if err != nil {
			return nil, nil, fmt.Errorf("updating event: %w", err)
		}
		if updated == nil {
			return nil, nil, ErrEventNotFound
		}
		return updated, nil, nil
	}

	course, err := s.courseRepo.GetCourseByID(ctx, e.CourseID)
	if err != nil {
		return nil, nil, fmt.Errorf("looking up course: %w", err)
	}
	if course == nil {
		return nil, nil, ErrCourseNotFound
	}

	companion := companionAnnouncement(e, course)
	created, ann, err := s.scheduleRepo.CreateEventWithAnnouncement(ctx, e, companion)
	if err != nil {
		s.logger.Error().Err(err).Int("course_id", e.CourseID).Msg("Failed to create schedule event")
		return nil, nil, fmt.Errorf("creating event: %w", err)
	}
	return created, ann, nil
}

// companionAnnouncement derives the announcement that accompanies every
// newly scheduled Class or Exam.
func companionAnnouncement(e *model.ScheduleEvent, course *model.Course) *model.Announcement {
	return &model.Announcement{
		Title: fmt.Sprintf("New Schedule: %s for %s", e.Type, course.Title),
		Content: fmt.Sprintf(
			"A new event, %q, has been scheduled for %s at %s. Please check your schedule for details. You will also receive an email notification.",
			e.Title,
			e.StartTime.Format("Monday, January 2, 2006"),
			e.StartTime.Format("3:04 PM"),
		),
		AuthorID: e.InstructorID,
		Date:     time.Now().UTC().Format("2006-01-02"),
		CourseID: e.CourseID,
	}
}

func (s *scheduleService) List(ctx context.Context) ([]model.ScheduleEvent, error) {
	return s.scheduleRepo.ListEvents(ctx)
}
