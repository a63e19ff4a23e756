package service

import (
	"context"
	"errors"
	"testing"

	"app/internal/model"
	"app/internal/repository"
)

func newAnnouncementService(db *repository.DB) AnnouncementService {
	return NewAnnouncementService(repository.NewAnnouncementRepo(db))
}

func TestSaveAnnouncementCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newAnnouncementService(db)
	ctx := context.Background()

	created, err := svc.Save(ctx, &model.Announcement{Title: "Exam Reminder", Content: "This Friday.", AuthorID: 2, CourseID: 1})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected a fresh id")
	}
	if created.Date == "" {
		t.Fatal("expected the date to default to today")
	}
}

func TestSaveAnnouncementUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := newAnnouncementService(db)
	ctx := context.Background()

	updated, err := svc.Save(ctx, &model.Announcement{ID: 1, Title: "Maintenance Rescheduled", Content: "Now Monday.", AuthorID: 3, Date: "2024-07-21"})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if updated.Title != "Maintenance Rescheduled" {
		t.Fatalf("expected full overwrite, got %q", updated.Title)
	}

	anns, _ := svc.List(ctx)
	if len(anns) != 1 {
		t.Fatalf("expected update to replace in place, got %d records", len(anns))
	}
}

func TestSaveAnnouncementUnknownID(t *testing.T) {
	db := newTestDB(t)
	svc := newAnnouncementService(db)

	_, err := svc.Save(context.Background(), &model.Announcement{ID: 99, Title: "Ghost", Content: "Boo", AuthorID: 3})
	if !errors.Is(err, ErrAnnouncementNotFound) {
		t.Fatalf("expected ErrAnnouncementNotFound, got %v", err)
	}
}

func TestSaveAnnouncementRejectsEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := newAnnouncementService(db)
	ctx := context.Background()

	if _, err := svc.Save(ctx, &model.Announcement{Title: "", Content: "body"}); !errors.Is(err, ErrEmptyAnnouncement) {
		t.Fatalf("expected ErrEmptyAnnouncement for empty title, got %v", err)
	}
	if _, err := svc.Save(ctx, &model.Announcement{Title: "head", Content: ""}); !errors.Is(err, ErrEmptyAnnouncement) {
		t.Fatalf("expected ErrEmptyAnnouncement for empty content, got %v", err)
	}
}

func TestDeleteAnnouncement(t *testing.T) {
	db := newTestDB(t)
	svc := newAnnouncementService(db)
	ctx := context.Background()

	if err := svc.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	anns, _ := svc.List(ctx)
	if len(anns) != 0 {
		t.Fatalf("expected no announcements after delete, got %d", len(anns))
	}

	// Deleting again reports not found rather than silently succeeding.
	if err := svc.Delete(ctx, 1); !errors.Is(err, ErrAnnouncementNotFound) {
		t.Fatalf("expected ErrAnnouncementNotFound, got %v", err)
	}
}
