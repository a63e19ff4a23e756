package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"app/internal/api/v1/dto"
	"app/internal/middleware"
	"app/internal/model"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	userService service.UserService
	validate    *validator.Validate
}

func NewUserHandler(userService service.UserService, v *validator.Validate) *UserHandler {
	return &UserHandler{userService: userService, validate: v}
}

// RegisterRoutes mounts v1 user routes
func (h *UserHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	adminOnly := middleware.RequireRole(model.RoleAdmin)
	mux.Handle("/users", authMw(http.HandlerFunc(h.listUsers)))
	mux.Handle("/users/me", authMw(http.HandlerFunc(h.handleMe)))
	mux.Handle("/users/me/theme", authMw(http.HandlerFunc(h.setTheme)))
	mux.Handle("/leaderboard", authMw(http.HandlerFunc(h.leaderboard)))
	mux.Handle("/admin/stats", authMw(adminOnly(http.HandlerFunc(h.stats))))
}

func (h *UserHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.getMe(w, r)
	case http.MethodPut:
		h.updateProfile(w, r)
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

func (h *UserHandler) getMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: user ID not found in context", http.StatusUnauthorized)
		return
	}

	user, err := h.userService.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewUserResponse(user))
}

func (h *UserHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	// 1. Extract user id from context
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: user ID not found in context", http.StatusUnauthorized)
		return
	}

	// 2. Decode and validate DTO
	var req dto.UpdateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	// 3. Apply the update
	user, err := h.userService.UpdateProfile(r.Context(), userID, service.ProfileUpdate{
		Name:            req.Name,
		Email:           req.Email,
		Avatar:          req.Avatar,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			http.Error(w, "Incorrect current password", http.StatusForbidden)
		case errors.Is(err, service.ErrUserNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, "Failed to update profile: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.NewUserResponse(user))
}

func (h *UserHandler) setTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: user ID not found in context", http.StatusUnauthorized)
		return
	}

	var req dto.ThemeDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.userService.SetTheme(r.Context(), userID, req.Theme)
	if err != nil {
		http.Error(w, "Failed to set theme: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewUserResponse(user))
}

// listUsers returns every account; the client uses it to populate the
// messaging contact list.
func (h *UserHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	users, err := h.userService.List(r.Context())
	if err != nil {
		http.Error(w, "Failed to retrieve users: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var out []dto.UserResponseDTO
	for i := range users {
		out = append(out, dto.NewUserResponse(&users[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *UserHandler) leaderboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	entries, err := h.userService.Leaderboard(r.Context())
	if err != nil {
		http.Error(w, "Failed to retrieve leaderboard: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var out []dto.LeaderboardEntryDTO
	for _, e := range entries {
		out = append(out, dto.LeaderboardEntryDTO{ID: e.ID, Name: e.Name, Avatar: e.Avatar, Points: e.Points})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *UserHandler) stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	stats, err := h.userService.Stats(r.Context())
	if err != nil {
		http.Error(w, "Failed to retrieve stats: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
