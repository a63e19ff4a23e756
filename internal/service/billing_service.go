package service

import (
	"context"
	"errors"
	"fmt"

	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAlreadyPaid         = errors.New("transaction already paid")
)

type BillingService interface {
	// Settle marks an Unpaid transaction Paid. Settling a transaction
	// that is already Paid fails with ErrAlreadyPaid and leaves the
	// record untouched; a missing id fails with ErrTransactionNotFound.
	// No payment verification takes place; any caller may settle any
	// transaction, standing in for an out-of-band gateway callback.
	Settle(ctx context.Context, transactionID int) (*model.Transaction, error)
	List(ctx context.Context) ([]model.Transaction, error)
}

type billingService struct {
	transactionRepo repository.TransactionRepository
	logger          zerolog.Logger
}

func NewBillingService(transactionRepo repository.TransactionRepository, logger zerolog.Logger) BillingService {
	return &billingService{
		transactionRepo: transactionRepo,
		logger:          logger.With().Str("service", "BillingService").Logger(),
	}
}

func (s *billingService) Settle(ctx context.Context, transactionID int) (*model.Transaction, error) {
	t, alreadyPaid, err := s.transactionRepo.SettleTransaction(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("settling transaction: %w", err)
	}
	if t == nil {
		return nil, ErrTransactionNotFound
	}
	if alreadyPaid {
		return nil, ErrAlreadyPaid
	}
	s.logger.Info().Int("transaction_id", t.ID).Float64("amount", t.Amount).Msg("Transaction settled")
	return t, nil
}

func (s *billingService) List(ctx context.Context) ([]model.Transaction, error) {
	return s.transactionRepo.ListTransactions(ctx)
}
