package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"app/internal/api/v1/dto"
	"app/internal/model"
	"app/internal/repository"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func newAuthTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing fixture password: %v", err)
	}

	db := repository.NewDB()
	db.Load(
		[]model.User{{ID: 1, Name: "JOY", Email: "joy@edupro.com", Role: model.RoleLearner, PasswordHash: hash}},
		nil, nil, nil, nil, nil, nil, nil,
	)

	authService := service.NewAuthService(repository.NewUserRepo(db), "test-secret", time.Hour, zerolog.Nop())
	h := NewAuthHandler(authService, validator.New(validator.WithRequiredStructEnabled()), zerolog.Nop())

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return mux
}

func TestLoginEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid credentials",
			body:       `{"email":"JOY@edupro.com","password":"password123","role":"Learner"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong password",
			body:       `{"email":"joy@edupro.com","password":"nope12","role":"Learner"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong role",
			body:       `{"email":"joy@edupro.com","password":"password123","role":"Admin"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing fields",
			body:       `{"email":"joy@edupro.com"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newAuthTestMux(t)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body %q", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp dto.AuthResponseDTO
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if resp.Token == "" {
				t.Error("expected a signed token in the response")
			}
			if resp.User.Email != "joy@edupro.com" {
				t.Errorf("user email = %q, want the stored record", resp.User.Email)
			}
		})
	}
}

func TestRegisterEndpoint(t *testing.T) {
	mux := newAuthTestMux(t)

	body := `{"name":"New Learner","email":"new@edupro.com","password":"secret99","role":"Learner"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body %q", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp dto.AuthResponseDTO
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.User.ID <= 1 {
		t.Errorf("new user id = %d, want one strictly greater than the seeded ids", resp.User.ID)
	}

	// Duplicate registration, differing only in case, must conflict.
	req = httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(
		`{"name":"Dup","email":"NEW@edupro.com","password":"secret99","role":"Learner"}`))
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate email status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestRegisterEndpointRejectsAdmin(t *testing.T) {
	mux := newAuthTestMux(t)

	body := `{"name":"Sneaky","email":"admin2@edupro.com","password":"secret99","role":"Admin"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	// The DTO whitelist rejects the role before the service sees it.
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
