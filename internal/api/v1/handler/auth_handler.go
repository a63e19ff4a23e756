package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"app/internal/api/v1/dto"
	"app/internal/model"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// AuthHandler handles login and registration. Its routes are the only
// ones mounted without the auth middleware.
type AuthHandler struct {
	authService service.AuthService
	validate    *validator.Validate
	logger      zerolog.Logger
}

func NewAuthHandler(authService service.AuthService, v *validator.Validate, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, validate: v, logger: logger}
}

// RegisterRoutes mounts v1 auth routes
func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/auth/login", http.HandlerFunc(h.login))
	mux.Handle("/auth/register", http.HandlerFunc(h.register))
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	// 1. Decode request body into DTO
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	// 2. Validate DTO
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	// 3. Authenticate
	user, token, err := h.authService.Login(r.Context(), req.Email, req.Password, model.Role(req.Role))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, "Invalid credentials or role", http.StatusUnauthorized)
			return
		}
		h.logger.Error().Err(err).Msg("Login failed")
		http.Error(w, "Login failed", http.StatusInternalServerError)
		return
	}

	// 4. Return token + user
	writeJSON(w, http.StatusOK, dto.AuthResponseDTO{Token: token, User: dto.NewUserResponse(user)})
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, token, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password, model.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			http.Error(w, "An account with this email already exists", http.StatusConflict)
		case errors.Is(err, service.ErrRoleNotAllowed):
			http.Error(w, "Admin accounts cannot be created here", http.StatusForbidden)
		default:
			h.logger.Error().Err(err).Msg("Registration failed")
			http.Error(w, "Registration failed", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, dto.AuthResponseDTO{Token: token, User: dto.NewUserResponse(user)})
}
