package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"app/internal/model"
	"app/internal/repository"
	"app/internal/util"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrRoleNotAllowed     = errors.New("role not allowed at registration")
)

type AuthService interface {
	// Login matches a user by case-insensitive email, exact role and
	// password, and returns the user together with a signed token.
	Login(ctx context.Context, email, password string, role model.Role) (*model.User, string, error)
	// Register creates a Learner or Instructor account. Admin accounts
	// cannot self-register. The new id is strictly greater than every
	// existing id and the avatar is derived from it.
	Register(ctx context.Context, name, email, password string, role model.Role) (*model.User, string, error)
}

type authService struct {
	userRepo  repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
	logger    zerolog.Logger
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret string, jwtExpiry time.Duration, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		logger:    logger.With().Str("service", "AuthService").Logger(),
	}
}

func (s *authService) Login(ctx context.Context, email, password string, role model.Role) (*model.User, string, error) {
	// The legacy client shipped a hardcoded master credential that
	// skipped the password check entirely. That backdoor is deliberately
	// not honored here.
	u, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("looking up user: %w", err)
	}
	if u == nil || u.Role != role {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := util.SignJWT(u, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		s.logger.Error().Err(err).Int("user_id", u.ID).Msg("Failed to sign token")
		return nil, "", fmt.Errorf("signing token: %w", err)
	}
	return u, token, nil
}

func (s *authService) Register(ctx context.Context, name, email, password string, role model.Role) (*model.User, string, error) {
	if role != model.RoleLearner && role != model.RoleInstructor {
		return nil, "", ErrRoleNotAllowed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}

	// The repository enforces email uniqueness under its write lock, so
	// concurrent registrations of the same email cannot both succeed. It
	// also derives the avatar from the id it assigns.
	u, err := s.userRepo.CreateUser(ctx, &model.User{
		Name:         name,
		Email:        email,
		Role:         role,
		Theme:        "light",
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", fmt.Errorf("creating user: %w", err)
	}

	token, err := util.SignJWT(u, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		s.logger.Error().Err(err).Int("user_id", u.ID).Msg("Failed to sign token")
		return nil, "", fmt.Errorf("signing token: %w", err)
	}
	return u, token, nil
}
