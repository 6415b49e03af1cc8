package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopstream/billing-service/internal/domain"
	"github.com/shopstream/billing-service/internal/infrastructure/metrics"
)

const defaultRecentLimit = 5

type TransactionUsecase interface {
	FetchRecent(ctx context.Context, limit int) []*domain.Transaction
	VoidTransaction(ctx context.Context, txnID string) error
}

type DefaultTransactionUsecase struct {
	TransactionRepo domain.TransactionRepository
	Publisher       domain.TransactionEventPublisher
	Metrics         *metrics.BillingMetrics
}

func NewDefaultTransactionUsecase(
	transactionRepo domain.TransactionRepository,
	publisher domain.TransactionEventPublisher,
	billingMetrics *metrics.BillingMetrics,
) *DefaultTransactionUsecase {
	return &DefaultTransactionUsecase{
		TransactionRepo: transactionRepo,
		Publisher:       publisher,
		Metrics:         billingMetrics,
	}
}

// FetchRecent returns up to limit transactions, newest first. A store
// failure is logged and yields an empty list, never an error.
func (uc *DefaultTransactionUsecase) FetchRecent(ctx context.Context, limit int) []*domain.Transaction {
	if limit < 1 {
		limit = defaultRecentLimit
	}

	txns, err := uc.TransactionRepo.GetRecentTransactions(ctx, limit)
	if err != nil {
		slog.Error("failed to fetch transactions", "error", err.Error())
		return []*domain.Transaction{}
	}

	return txns
}

// VoidTransaction forces the status to VOIDED regardless of the current one.
// Voiding an already-VOIDED record, or an id the store never saw, succeeds.
func (uc *DefaultTransactionUsecase) VoidTransaction(ctx context.Context, txnID string) error {
	if err := uc.TransactionRepo.UpdateTransactionStatus(ctx, txnID, domain.StatusVoided); err != nil {
		return fmt.Errorf("failed to void transaction %s: %w", txnID, err)
	}

	slog.Info("transaction voided", "transaction_id", txnID)

	txn, err := uc.TransactionRepo.GetTransactionByID(ctx, txnID)
	if err != nil {
		// nothing to report downstream for an id the store never saw
		return nil
	}

	uc.Metrics.RecordManualVoid(txn.EntityID, txn.ProductKey)

	go func(event domain.Transaction) {
		if err := uc.Publisher.PublishTransaction(&event); err != nil {
			slog.Error("failed to publish void event", "transaction_id", event.ID, "error", err.Error())
		}
	}(*txn)

	return nil
}
