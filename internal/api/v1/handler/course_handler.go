package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"app/internal/api/v1/dto"
	"app/internal/service"
)

// CourseHandler serves the course catalog and per-module submission
// listings for instructors.
type CourseHandler struct {
	courseService service.CourseService
	quizService   service.QuizService
}

func NewCourseHandler(courseService service.CourseService, quizService service.QuizService) *CourseHandler {
	return &CourseHandler{courseService: courseService, quizService: quizService}
}

// RegisterRoutes mounts v1 course routes
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/courses", authMw(http.HandlerFunc(h.listCourses)))
	mux.Handle("/courses/", authMw(http.HandlerFunc(h.handleCourse)))
}

func (h *CourseHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	courses, err := h.courseService.List(r.Context())
	if err != nil {
		http.Error(w, "Failed to retrieve courses: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var out []dto.CourseResponseDTO
	for i := range courses {
		out = append(out, dto.NewCourseResponse(&courses[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// handleCourse dispatches /courses/{id} and
// /courses/{id}/modules/{id}/submissions.
func (h *CourseHandler) handleCourse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/courses/"), "/")
	courseID, err := strconv.Atoi(parts[0])
	if err != nil {
		http.Error(w, "Invalid course id", http.StatusBadRequest)
		return
	}

	switch {
	case len(parts) == 1:
		h.getCourse(w, r, courseID)
	case len(parts) == 4 && parts[1] == "modules" && parts[3] == "submissions":
		moduleID, err := strconv.Atoi(parts[2])
		if err != nil {
			http.Error(w, "Invalid module id", http.StatusBadRequest)
			return
		}
		h.listModuleSubmissions(w, r, courseID, moduleID)
	default:
		http.NotFound(w, r)
	}
}

func (h *CourseHandler) getCourse(w http.ResponseWriter, r *http.Request, courseID int) {
	course, err := h.courseService.Get(r.Context(), courseID)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to retrieve course: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewCourseResponse(course))
}

func (h *CourseHandler) listModuleSubmissions(w http.ResponseWriter, r *http.Request, courseID, moduleID int) {
	subs, err := h.quizService.ListByModule(r.Context(), courseID, moduleID)
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
