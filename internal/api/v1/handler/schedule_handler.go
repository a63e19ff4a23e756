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

type ScheduleHandler struct {
	scheduleService service.ScheduleService
	validate        *validator.Validate
}

func NewScheduleHandler(scheduleService service.ScheduleService, v *validator.Validate) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService, validate: v}
}

// RegisterRoutes mounts v1 schedule routes. Mutations are gated to
// instructors and admins.
func (h *ScheduleHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	staffOnly := middleware.RequireRole(model.RoleInstructor, model.RoleAdmin)
	create := staffOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { h.save(w, r, 0) }))
	mux.Handle("/schedule", authMw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			create.ServeHTTP(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})))
	mux.Handle("/schedule/", authMw(staffOnly(http.HandlerFunc(h.update))))
}

func (h *ScheduleHandler) list(w http.ResponseWriter, r *http.Request) {
	events, err := h.scheduleService.List(r.Context())
	if err != nil {
		http.Error(w, "Failed to retrieve schedule: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var out []dto.ScheduleEventResponseDTO
	for i := range events {
		out = append(out, dto.NewScheduleEventResponse(&events[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ScheduleHandler) update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/schedule/"))
	if err != nil {
		http.Error(w, "Invalid event id", http.StatusBadRequest)
		return
	}
	h.save(w, r, id)
}

// save creates when id is zero and fully overwrites otherwise. Creation
// also returns the companion announcement generated with the event.
func (h *ScheduleHandler) save(w http.ResponseWriter, r *http.Request, id int) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: user ID not found in context", http.StatusUnauthorized)
		return
	}

	var req dto.SaveScheduleEventDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	// The scheduling instructor defaults to the caller.
	instructorID := req.InstructorID
	if instructorID == 0 {
		instructorID = userID
	}

	event, ann, err := h.scheduleService.Save(r.Context(), &model.ScheduleEvent{
		ID:           id,
		Title:        req.Title,
		Type:         model.EventType(req.Type),
		CourseID:     req.CourseID,
		InstructorID: instructorID,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Description:  req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTimeRange):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrEventNotFound), errors.Is(err, service.ErrCourseNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, "Failed to save event: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}

	resp := dto.SaveScheduleResponseDTO{Event: dto.NewScheduleEventResponse(event)}
	status := http.StatusOK
	if ann != nil {
		companion := dto.NewAnnouncementResponse(ann)
		resp.Announcement = &companion
		status = http.StatusCreated
	}
	writeJSON(w, status, resp)
}
