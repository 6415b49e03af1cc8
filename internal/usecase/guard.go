package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopstream/billing-service/internal/domain"
	"github.com/shopstream/billing-service/internal/infrastructure/metrics"
	"github.com/shopstream/billing-service/internal/infrastructure/notifier"
)

// MonitorGuard bounds the lifetime of one billable operation. Every Run
// writes exactly one transaction record: PROVISIONAL when the body returned
// nil, VOIDED otherwise. The guard never swallows the body's error and a
// store failure on the write path never surfaces past the guard.
type MonitorGuard struct {
	TransactionID    string
	EntityID         string
	ProductKey       string
	RevenuePotential decimal.Decimal

	TransactionRepo domain.TransactionRepository
	Publisher       domain.TransactionEventPublisher
	Metrics         *metrics.BillingMetrics

	// AlertWebhook, when set, receives an operator alert for every
	// transaction the store refused to record.
	AlertWebhook string
}

// NewMonitorGuard assigns the transaction id up front. No I/O happens until Run.
func NewMonitorGuard(
	transactionRepo domain.TransactionRepository,
	publisher domain.TransactionEventPublisher,
	billingMetrics *metrics.BillingMetrics,
	entityID, productKey string,
	revenuePotential decimal.Decimal,
) *MonitorGuard {
	return &MonitorGuard{
		TransactionID:    uuid.New().String(),
		EntityID:         entityID,
		ProductKey:       productKey,
		RevenuePotential: revenuePotential,
		TransactionRepo:  transactionRepo,
		Publisher:        publisher,
		Metrics:          billingMetrics,
	}
}

// Run executes body under the guard. A panic inside body still produces a
// VOIDED record before propagating.
func (g *MonitorGuard) Run(ctx context.Context, body func(ctx context.Context) error) error {
	slog.Info("tracking started",
		"transaction_id", g.TransactionID,
		"product_key", g.ProductKey,
		"revenue_potential", g.RevenuePotential.StringFixed(2),
	)

	start := time.Now()
	finalized := false
	defer func() {
		if !finalized {
			g.finalize(ctx, domain.StatusVoided, time.Since(start))
		}
	}()

	err := body(ctx)

	status := domain.StatusProvisional
	if err != nil {
		status = domain.StatusVoided
		slog.Error("operation voided",
			"transaction_id", g.TransactionID,
			"entity_id", g.EntityID,
			"product_key", g.ProductKey,
			"error", err.Error(),
		)
	}

	finalized = true
	g.finalize(ctx, status, time.Since(start))

	return err
}

func (g *MonitorGuard) finalize(ctx context.Context, status domain.TransactionStatus, elapsed time.Duration) {
	txn := &domain.Transaction{
		ID:         g.TransactionID,
		EntityID:   g.EntityID,
		ProductKey: g.ProductKey,
		Status:     status,
		Revenue:    g.RevenuePotential,
		CreatedAt:  time.Now().UTC(),
	}

	// The record must land even when the request context is already done.
	if err := g.TransactionRepo.CreateTransaction(context.WithoutCancel(ctx), txn); err != nil {
		slog.Error("failed to log transaction",
			"transaction_id", g.TransactionID,
			"product_key", g.ProductKey,
			"error", err.Error(),
		)
		g.Metrics.RecordLogFailure(g.ProductKey)
		if g.AlertWebhook != "" {
			notifier.SendAlert(g.AlertWebhook, notifier.AlertPayload{
				TransactionID: g.TransactionID,
				EntityID:      g.EntityID,
				ProductKey:    g.ProductKey,
				Reason:        err.Error(),
				Timestamp:     time.Now().UTC(),
			})
		}
		return
	}

	revenue, _ := g.RevenuePotential.Float64()
	g.Metrics.RecordFinalized(g.EntityID, g.ProductKey, string(status), revenue)
	g.Metrics.RecordOperationDuration(g.ProductKey, string(status), elapsed.Seconds())

	go func(event domain.Transaction) {
		if err := g.Publisher.PublishTransaction(&event); err != nil {
			slog.Error("failed to publish transaction event", "transaction_id", event.ID, "error", err.Error())
		}
	}(*txn)
}
