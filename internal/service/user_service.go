package service

import (
	"context"
	"errors"
	"fmt"

	"app/internal/model"
	"app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("current password is incorrect")
	ErrInvalidTheme  = errors.New("theme must be light or dark")
)

// ProfileUpdate carries the mutable profile fields. Empty strings leave
// the stored value unchanged. A password change is requested by setting
// NewPassword and must carry the matching CurrentPassword.
type ProfileUpdate struct {
	Name            string
	Email           string
	Avatar          string
	CurrentPassword string
	NewPassword     string
}

// AdminStats summarizes platform-wide totals for the admin dashboard.
type AdminStats struct {
	UsersByRole   map[model.Role]int `json:"usersByRole"`
	Courses       int                `json:"courses"`
	Submissions   int                `json:"submissions"`
	Announcements int                `json:"announcements"`
}

type UserService interface {
	Get(ctx context.Context, id int) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	// UpdateProfile merges the given fields into the user record in
	// place. If a password change is requested and the current password
	// does not verify, nothing is mutated. Email uniqueness is not
	// rechecked here; it is enforced at registration only.
	UpdateProfile(ctx context.Context, userID int, upd ProfileUpdate) (*model.User, error)
	SetTheme(ctx context.Context, userID int, theme string) (*model.User, error)
	Stats(ctx context.Context) (*AdminStats, error)
	Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error)
}

type userService struct {
	userRepo         repository.UserRepository
	courseRepo       repository.CourseRepository
	submissionRepo   repository.SubmissionRepository
	announcementRepo repository.AnnouncementRepository
	leaderboardRepo  repository.LeaderboardRepository
}

func NewUserService(userRepo repository.UserRepository, courseRepo repository.CourseRepository,
	submissionRepo repository.SubmissionRepository, announcementRepo repository.AnnouncementRepository,
	leaderboardRepo repository.LeaderboardRepository) UserService {
	return &userService{
		userRepo:         userRepo,
		courseRepo:       courseRepo,
		submissionRepo:   submissionRepo,
		announcementRepo: announcementRepo,
		leaderboardRepo:  leaderboardRepo,
	}
}

func (s *userService) Get(ctx context.Context, id int) (*model.User, error) {
	u, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.userRepo.ListUsers(ctx)
}

func (s *userService) UpdateProfile(ctx context.Context, userID int, upd ProfileUpdate) (*model.User, error) {
	// The whole read-verify-write runs under one store lock, so two
	// concurrent updates cannot drop one another's fields.
	updated, err := s.userRepo.UpdateUserWith(ctx, userID, func(u *model.User) error {
		// Verify the password gate before touching any field.
		if upd.NewPassword != "" {
			if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(upd.CurrentPassword)); err != nil {
				return ErrWrongPassword
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(upd.NewPassword), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hashing password: %w", err)
			}
			u.PasswordHash = hash
		}

		if upd.Name != "" {
			u.Name = upd.Name
		}
		if upd.Email != "" {
			u.Email = upd.Email
		}
		if upd.Avatar != "" {
			u.Avatar = upd.Avatar
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrWrongPassword) {
			return nil, err
		}
		return nil, fmt.Errorf("updating user: %w", err)
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}
	return updated, nil
}

func (s *userService) SetTheme(ctx context.Context, userID int, theme string) (*model.User, error) {
	if theme != "light" && theme != "dark" {
		return nil, ErrInvalidTheme
	}
	updated, err := s.userRepo.UpdateUserWith(ctx, userID, func(u *model.User) error {
		u.Theme = theme
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("updating theme: %w", err)
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}
	return updated, nil
}

func (s *userService) Stats(ctx context.Context) (*AdminStats, error) {
	byRole, err := s.userRepo.CountUsersByRole(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := s.courseRepo.CountCourses(ctx)
	if err != nil {
		return nil, err
	}
	submissions, err := s.submissionRepo.CountSubmissions(ctx)
	if err != nil {
		return nil, err
	}
	announcements, err := s.announcementRepo.CountAnnouncements(ctx)
	if err != nil {
		return nil, err
	}
	return &AdminStats{
		UsersByRole:   byRole,
		Courses:       courses,
		Submissions:   submissions,
		Announcements: announcements,
	}, nil
}

func (s *userService) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	return s.leaderboardRepo.ListLeaderboard(ctx)
}
