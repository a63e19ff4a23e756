package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"app/internal/api/v1/dto"
	"app/internal/middleware"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
)

// SubmissionHandler records quiz attempts for the authenticated learner.
type SubmissionHandler struct {
	quizService service.QuizService
	validate    *validator.Validate
}

func NewSubmissionHandler(quizService service.QuizService, v *validator.Validate) *SubmissionHandler {
	return &SubmissionHandler{quizService: quizService, validate: v}
}

// RegisterRoutes mounts v1 submission routes
func (h *SubmissionHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/submissions", authMw(http.HandlerFunc(h.handleSubmissions)))
}

func (h *SubmissionHandler) handleSubmissions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.submit(w, r)
	case http.MethodGet:
		h.listMine(w, r)
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

func (h *SubmissionHandler) submit(w http.ResponseWriter, r *http.Request) {
	// 1. Extract the student from context
	studentID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: user ID not found in context", http.StatusUnauthorized)
		return
	}

	// 2. Decode and validate DTO
	var req dto.SubmitQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	// 3. Record the attempt (resubmission overwrites the previous one)
	sub, err := h.quizService.Submit(r.Context(), studentID, req.CourseID, req.ModuleID, req.Score, req.TotalQuestions)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCourseNotFound), errors.Is(err, service.ErrModuleNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, service.ErrNotAQuiz), errors.Is(err, service.ErrInvalidScore):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Failed to record submission: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, dto.NewSubmissionResponse(sub))
}

func (h *SubmissionHandler) listMine(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: user ID not found in context", http.StatusUnauthorized)
		return
	}

	subs, err := h.quizService.ListByStudent(r.Context(), studentID)
	if err != nil {
		http.Error(w, "Failed to retrieve submissions: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var out []dto.SubmissionResponseDTO
	for i := range subs {
		out = append(out, dto.NewSubmissionResponse(&subs[i]))
	}
	writeJSON(w, http.StatusOK, out)
}
