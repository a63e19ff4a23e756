package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"app/internal/api/v1/dto"
	"app/internal/service"
)

// BillingHandler serves transactions and the settlement callback. No
// payment verification happens here; settlement models the gateway
// confirming a payment out of band.
type BillingHandler struct {
	billingService service.BillingService
}

func NewBillingHandler(billingService service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// RegisterRoutes mounts v1 billing routes
func (h *BillingHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/transactions", authMw(http.HandlerFunc(h.list)))
	mux.Handle("/transactions/", authMw(http.HandlerFunc(h.settle)))
}

func (h *BillingHandler) list(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	txns, err := h.billingService.List(r.Context())
	if err != nil {
		http.Error(w, "Failed to retrieve transactions: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var out []dto.TransactionResponseDTO
	for i := range txns {
		out = append(out, dto.NewTransactionResponse(&txns[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// settle handles POST /transactions/{id}/settle.
func (h *BillingHandler) settle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	idStr, ok := strings.CutSuffix(strings.TrimPrefix(r.URL.Path, "/transactions/"), "/settle")
	if !ok {
		http.NotFound(w, r)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid transaction id", http.StatusBadRequest)
		return
	}

	t, err := h.billingService.Settle(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTransactionNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, service.ErrAlreadyPaid):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "Failed to settle transaction: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.NewTransactionResponse(t))
}
