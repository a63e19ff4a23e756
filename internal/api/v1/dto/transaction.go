package dto

import "app/internal/model"

type TransactionResponseDTO struct {
	ID          int     `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Status      string  `json:"status"`
}

func NewTransactionResponse(t *model.Transaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:          t.ID,
		Description: t.Description,
		Amount:      t.Amount,
		Date:        t.Date,
		Status:      string(t.Status),
	}
}
