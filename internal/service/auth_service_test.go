package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
)

func newAuthService(db *repository.DB) AuthService {
	return NewAuthService(repository.NewUserRepo(db), "test-secret", time.Hour, zerolog.Nop())
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		role     model.Role
		wantErr  error
	}{
		{"valid credentials", "joy@edupro.com", "password123", model.RoleLearner, nil},
		{"email is case-insensitive", "JOY@EDUPRO.COM", "password123", model.RoleLearner, nil},
		{"wrong password", "joy@edupro.com", "nope", model.RoleLearner, ErrInvalidCredentials},
		{"wrong role", "joy@edupro.com", "password123", model.RoleInstructor, ErrInvalidCredentials},
		{"unknown email", "ghost@edupro.com", "password123", model.RoleLearner, ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, token, err := svc.Login(ctx, tt.email, tt.password, tt.role)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil {
				if user == nil || token == "" {
					t.Fatal("expected a user and a token on success")
				}
			}
		})
	}
}

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "New Learner", "new@edupro.com", "secret123", model.RoleLearner)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	// Seeded ids go up to 3; new ids must be strictly greater.
	if user.ID <= 3 {
		t.Fatalf("expected a fresh id greater than every seeded id, got %d", user.ID)
	}
	if !strings.Contains(user.Avatar, "/seed/") || !strings.Contains(user.Avatar, "100/100") {
		t.Fatalf("expected a placeholder avatar derived from the id, got %q", user.Avatar)
	}

	// New account can log in with its password.
	if _, _, err := svc.Login(ctx, "new@edupro.com", "secret123", model.RoleLearner); err != nil {
		t.Fatalf("login as new account failed: %v", err)
	}
}

func TestRegisterDuplicateEmailIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "Imposter", "JOY@edupro.com", "secret123", model.RoleLearner); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterConcurrentSameEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = svc.Register(ctx, "Racer", "race@edupro.com", "secret123", model.RoleLearner)
		}(i)
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrEmailTaken):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("expected exactly one successful registration, got %d", succeeded)
	}

	users, _ := repository.NewUserRepo(db).ListUsers(ctx)
	var matches int
	for _, u := range users {
		if strings.EqualFold(u.Email, "race@edupro.com") {
			matches++
		}
	}
	if matches != 1 {
		t.Fatalf("expected exactly one account for race@edupro.com, got %d", matches)
	}
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, _, err := svc.Register(context.Background(), "Eve", "eve@edupro.com", "secret123", model.RoleAdmin)
	if !errors.Is(err, ErrRoleNotAllowed) {
		t.Fatalf("expected ErrRoleNotAllowed, got %v", err)
	}
}
