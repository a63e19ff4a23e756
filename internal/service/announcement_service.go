package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"app/internal/model"
	"app/internal/repository"
)

var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrEmptyAnnouncement    = errors.New("announcement title and content are required")
)

type AnnouncementService interface {
	// Save creates the announcement when it has no id and fully
	// overwrites the existing record otherwise. Saving with an unknown
	// id fails with ErrAnnouncementNotFound rather than silently
	// creating or dropping the record.
	Save(ctx context.Context, a *model.Announcement) (*model.Announcement, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]model.Announcement, error)
}

type announcementService struct {
	announcementRepo repository.AnnouncementRepository
}

func NewAnnouncementService(announcementRepo repository.AnnouncementRepository) AnnouncementService {
	return &announcementService{announcementRepo: announcementRepo}
}

func (s *announcementService) Save(ctx context.Context, a *model.Announcement) (*model.Announcement, error) {
	if a.Title == "" || a.Content == "" {
		return nil, ErrEmptyAnnouncement
	}
	if a.Date == "" {
		a.Date = time.Now().UTC().Format("2006-01-02")
	}

	if a.ID != 0 {
		updated, err := s.announcementRepo.UpdateAnnouncement(ctx, a)
		if err != nil {
			return nil, fmt.Errorf("updating announcement: %w", err)
		}
		if updated == nil {
			return nil, ErrAnnouncementNotFound
		}
		return updated, nil
	}

	created, err := s.announcementRepo.CreateAnnouncement(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("creating announcement: %w", err)
	}
	return created, nil
}

func (s *announcementService) Delete(ctx context.Context, id int) error {
	found, err := s.announcementRepo.DeleteAnnouncement(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting announcement: %w", err)
	}
	if !found {
		return ErrAnnouncementNotFound
	}
	return nil
}

func (s *announcementService) List(ctx context.Context) ([]model.Announcement, error) {
	return s.announcementRepo.ListAnnouncements(ctx)
}
