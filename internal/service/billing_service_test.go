package service

import (
	"context"
	"errors"
	"testing"

	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
)

func TestSettleUnpaidTransaction(t *testing.T) {
	db := newTestDB(t)
	svc := NewBillingService(repository.NewTransactionRepo(db), zerolog.Nop())
	ctx := context.Background()

	tx, err := svc.Settle(ctx, 1)
	if err != nil {
		t.Fatalf("Settle returned error: %v", err)
	}
	if tx.Status != model.StatusPaid {
		t.Fatalf("expected status Paid, got %s", tx.Status)
	}
}

func TestSettleAlreadyPaidIsRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewBillingService(repository.NewTransactionRepo(db), zerolog.Nop())
	ctx := context.Background()

	// Transaction 2 is seeded Paid.
	if _, err := svc.Settle(ctx, 2); !errors.Is(err, ErrAlreadyPaid) {
		t.Fatalf("expected ErrAlreadyPaid, got %v", err)
	}

	// Settling twice behaves the same way.
	if _, err := svc.Settle(ctx, 1); err != nil {
		t.Fatalf("first Settle returned error: %v", err)
	}
	if _, err := svc.Settle(ctx, 1); !errors.Is(err, ErrAlreadyPaid) {
		t.Fatalf("expected ErrAlreadyPaid on second settle, got %v", err)
	}

	txns, _ := svc.List(ctx)
	for _, tx := range txns {
		if tx.ID == 1 && tx.Status != model.StatusPaid {
			t.Fatalf("expected transaction 1 to stay Paid, got %s", tx.Status)
		}
	}
}

func TestSettleUnknownTransaction(t *testing.T) {
	db := newTestDB(t)
	svc := NewBillingService(repository.NewTransactionRepo(db), zerolog.Nop())

	if _, err := svc.Settle(context.Background(), 99); !errors.Is(err, ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}
