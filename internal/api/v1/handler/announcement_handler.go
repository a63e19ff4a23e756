package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"app/internal/api/v1/dto"
	"app/internal/middleware"
	"app/internal/model"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
)

type AnnouncementHandler struct {
	announcementService service.AnnouncementService
	validate            *validator.Validate
}

func NewAnnouncementHandler(announcementService service.AnnouncementService, v *validator.Validate) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService, validate: v}
}

// RegisterRoutes mounts v1 announcement routes. Mutations are gated to
// instructors and admins.
func (h *AnnouncementHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	staffOnly := middleware.RequireRole(model.RoleInstructor, model.RoleAdmin)
	mux.Handle("/announcements", authMw(http.HandlerFunc(h.handleCollection(staffOnly))))
	mux.Handle("/announcements/", authMw(staffOnly(http.HandlerFunc(h.handleItem))))
}

func (h *AnnouncementHandler) handleCollection(staffOnly func(http.Handler) http.Handler) http.HandlerFunc {
	create := staffOnly(http.HandlerFunc(h.create))
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			create.ServeHTTP(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	}
}

func (h *AnnouncementHandler) list(w http.ResponseWriter, r *http.Request) {
	anns, err := h.announcementService.List(r.Context())
	if err != nil {
		http.Error(w, "Failed to retrieve announcements: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var out []dto.AnnouncementResponseDTO
	for i := range anns {
		out = append(out, dto.NewAnnouncementResponse(&anns[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *AnnouncementHandler) create(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, 0)
}

// handleItem dispatches PUT/DELETE /announcements/{id}.
func (h *AnnouncementHandler) handleItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/announcements/"))
	if err != nil {
		http.Error(w, "Invalid announcement id", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodPut:
		h.save(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

// save creates when id is zero and fully overwrites otherwise.
func (h *AnnouncementHandler) save(w http.ResponseWriter, r *http.Request, id int) {
	authorID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: user ID not found in context", http.StatusUnauthorized)
		return
	}

	var req dto.SaveAnnouncementDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	saved, err := h.announcementService.Save(r.Context(), &model.Announcement{
		ID:       id,
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: authorID,
		CourseID: req.CourseID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAnnouncementNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, service.ErrEmptyAnnouncement):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Failed to save announcement: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}

	status := http.StatusOK
	if id == 0 {
		status = http.StatusCreated
	}
	writeJSON(w, status, dto.NewAnnouncementResponse(saved))
}

func (h *AnnouncementHandler) delete(w http.ResponseWriter, r *http.Request, id int) {
	if err := h.announcementService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrAnnouncementNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete announcement: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
