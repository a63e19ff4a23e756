package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"app/internal/api/v1/dto"
	"app/internal/middleware"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
)

type MessageHandler struct {
	messageService service.MessageService
	validate       *validator.Validate
}

func NewMessageHandler(messageService service.MessageService, v *validator.Validate) *MessageHandler {
	return &MessageHandler{messageService: messageService, validate: v}
}

// RegisterRoutes mounts v1 message routes
func (h *MessageHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/messages", authMw(http.HandlerFunc(h.handleMessages)))
}

func (h *MessageHandler) handleMessages(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.send(w, r)
	case http.MethodGet:
		h.conversation(w, r)
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

func (h *MessageHandler) send(w http.ResponseWriter, r *http.Request) {
	senderID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: user ID not found in context", http.StatusUnauthorized)
		return
	}

	var req dto.SendMessageDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	msg, err := h.messageService.Send(r.Context(), senderID, req.ReceiverID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			http.Error(w, "Receiver not found", http.StatusNotFound)
		case errors.Is(err, service.ErrEmptyMessage):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Failed to send message: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, dto.NewMessageResponse(msg))
}

// conversation returns the caller's messages with the user given by the
// "with" query parameter, oldest first.
func (h *MessageHandler) conversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: user ID not found in context", http.StatusUnauthorized)
		return
	}

	otherID, err := strconv.Atoi(r.URL.Query().Get("with"))
	if err != nil {
		http.Error(w, "Invalid or missing 'with' query parameter", http.StatusBadRequest)
		return
	}

	msgs, err := h.messageService.Conversation(r.Context(), userID, otherID)
	if err != nil {
		http.Error(w, "Failed to retrieve conversation: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var out []dto.MessageResponseDTO
	for i := range msgs {
		out = append(out, dto.NewMessageResponse(&msgs[i]))
	}
	writeJSON(w, http.StatusOK, out)
}
