package model

// TransactionStatus transitions Unpaid -> Paid only; there is no reverse
// transition.
type TransactionStatus string

const (
	StatusUnpaid TransactionStatus = "Unpaid"
	StatusPaid   TransactionStatus = "Paid"
)

// Transaction is a billing line item. Amount is in currency units with
// two decimal places.
type Transaction struct {
	ID          int               `json:"id"`
	Description string            `json:"description"`
	Amount      float64           `json:"amount"`
	Date        string            `json:"date"`
	Status      TransactionStatus `json:"status"`
}
