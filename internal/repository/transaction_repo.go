package repository

import (
	"context"

	"app/internal/model"
)

type TransactionRepository interface {
	// SettleTransaction marks the transaction Paid. The returned
	// transaction is nil when the id does not exist; alreadyPaid reports
	// that the record was Paid before the call, in which case it is left
	// untouched.
	SettleTransaction(ctx context.Context, id int) (t *model.Transaction, alreadyPaid bool, err error)
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
}

type transactionRepo struct {
	db *DB
}

func NewTransactionRepo(db *DB) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) SettleTransaction(ctx context.Context, id int) (*model.Transaction, bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.transactions {
		if r.db.transactions[i].ID == id {
			if r.db.transactions[i].Status == model.StatusPaid {
				t := r.db.transactions[i]
				return &t, true, nil
			}
			r.db.transactions[i].Status = model.StatusPaid
			t := r.db.transactions[i]
			return &t, false, nil
		}
	}
	return nil, false, nil
}

func (r *transactionRepo) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]model.Transaction, len(r.db.transactions))
	copy(out, r.db.transactions)
	return out, nil
}
