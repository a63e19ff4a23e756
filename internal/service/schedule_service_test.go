package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
)

func newScheduleFixture(t *testing.T) (*repository.DB, ScheduleService, AnnouncementService) {
	t.Helper()
	db := newTestDB(t)
	scheduleSvc := NewScheduleService(repository.NewScheduleRepo(db), repository.NewCourseRepo(db), zerolog.Nop())
	announcementSvc := NewAnnouncementService(repository.NewAnnouncementRepo(db))
	return db, scheduleSvc, announcementSvc
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parsing time %q: %v", s, err)
	}
	return ts
}

func TestSaveNewEventCreatesCompanionAnnouncement(t *testing.T) {
	_, scheduleSvc, announcementSvc := newScheduleFixture(t)
	ctx := context.Background()

	before, _ := announcementSvc.List(ctx)

	event, ann, err := scheduleSvc.Save(ctx, &model.ScheduleEvent{
		Title:        "Midterm",
		Type:         model.EventExam,
		CourseID:     1,
		InstructorID: 2,
		StartTime:    mustTime(t, "2025-01-10T10:00:00Z"),
		EndTime:      mustTime(t, "2025-01-10T12:00:00Z"),
		Description:  "Ch.1-3",
	})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if event.ID == 0 {
		t.Fatal("expected a fresh event id")
	}
	if ann == nil {
		t.Fatal("expected a companion announcement on creation")
	}

	if ann.CourseID != 1 {
		t.Fatalf("expected companion courseId 1, got %d", ann.CourseID)
	}
	if ann.AuthorID != 2 {
		t.Fatalf("expected companion authorId 2, got %d", ann.AuthorID)
	}
	if !strings.Contains(ann.Title, "Exam") {
		t.Fatalf("expected companion title to mention the event type, got %q", ann.Title)
	}
	if !strings.Contains(ann.Title, "CPA Review: Financial Accounting") {
		t.Fatalf("expected companion title to mention the course title, got %q", ann.Title)
	}
	if !strings.Contains(ann.Content, `"Midterm"`) {
		t.Fatalf("expected companion content to quote the event title, got %q", ann.Content)
	}

	after, _ := announcementSvc.List(ctx)
	if len(after) != len(before)+1 {
		t.Fatalf("expected exactly one new announcement, got %d -> %d", len(before), len(after))
	}

	events, _ := scheduleSvc.List(ctx)
	if len(events) != 1 {
		t.Fatalf("expected exactly one event, got %d", len(events))
	}
}

func TestSaveExistingEventSkipsCompanion(t *testing.T) {
	_, scheduleSvc, announcementSvc := newScheduleFixture(t)
	ctx := context.Background()

	created, _, err := scheduleSvc.Save(ctx, &model.ScheduleEvent{
		Title:        "Weekly Lecture",
		Type:         model.EventClass,
		CourseID:     1,
		InstructorID: 2,
		StartTime:    mustTime(t, "2025-01-10T10:00:00Z"),
		EndTime:      mustTime(t, "2025-01-10T11:00:00Z"),
	})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	before, _ := announcementSvc.List(ctx)

	created.Title = "Weekly Lecture (moved)"
	updated, ann, err := scheduleSvc.Save(ctx, created)
	if err != nil {
		t.Fatalf("update Save returned error: %v", err)
	}
	if ann != nil {
		t.Fatal("expected no companion announcement on update")
	}
	if updated.Title != "Weekly Lecture (moved)" {
		t.Fatalf("expected the update to apply, got %q", updated.Title)
	}

	after, _ := announcementSvc.List(ctx)
	if len(after) != len(before) {
		t.Fatalf("expected announcement count unchanged on update, got %d -> %d", len(before), len(after))
	}

	events, _ := scheduleSvc.List(ctx)
	if len(events) != 1 {
		t.Fatalf("expected event count unchanged on update, got %d", len(events))
	}
}

func TestSaveRejectsInvalidTimeRange(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"equal start and end", "2025-01-10T10:00:00Z", "2025-01-10T10:00:00Z"},
		{"end before start", "2025-01-10T12:00:00Z", "2025-01-10T10:00:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, scheduleSvc, announcementSvc := newScheduleFixture(t)
			ctx := context.Background()
			annsBefore, _ := announcementSvc.List(ctx)

			_, _, err := scheduleSvc.Save(ctx, &model.ScheduleEvent{
				Title:        "Broken",
				Type:         model.EventClass,
				CourseID:     1,
				InstructorID: 2,
				StartTime:    mustTime(t, tt.start),
				EndTime:      mustTime(t, tt.end),
			})
			if !errors.Is(err, ErrInvalidTimeRange) {
				t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
			}

			events, _ := scheduleSvc.List(ctx)
			if len(events) != 0 {
				t.Fatalf("expected no events after rejected save, got %d", len(events))
			}
			annsAfter, _ := announcementSvc.List(ctx)
			if len(annsAfter) != len(annsBefore) {
				t.Fatal("expected no announcements after rejected save")
			}
		})
	}
}

func TestSaveUnknownEventOrCourse(t *testing.T) {
	_, scheduleSvc, _ := newScheduleFixture(t)
	ctx := context.Background()

	_, _, err := scheduleSvc.Save(ctx, &model.ScheduleEvent{
		ID:        99,
		Title:     "Ghost",
		Type:      model.EventClass,
		CourseID:  1,
		StartTime: mustTime(t, "2025-01-10T10:00:00Z"),
		EndTime:   mustTime(t, "2025-01-10T11:00:00Z"),
	})
	if !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}

	_, _, err = scheduleSvc.Save(ctx, &model.ScheduleEvent{
		Title:     "No course",
		Type:      model.EventClass,
		CourseID:  99,
		StartTime: mustTime(t, "2025-01-10T10:00:00Z"),
		EndTime:   mustTime(t, "2025-01-10T11:00:00Z"),
	})
	if !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}
