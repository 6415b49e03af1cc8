package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopstream/billing-service/internal/domain"
	"github.com/shopstream/billing-service/internal/infrastructure/ai"
	"github.com/shopstream/billing-service/internal/infrastructure/metrics"
	billingdto "github.com/shopstream/billing-service/internal/usecase/dto/billing"
)

type BillingUsecase interface {
	RunOperation(ctx context.Context, input *billingdto.OperationInput) (*billingdto.OperationOutput, error)
	RunBatch(ctx context.Context, input *billingdto.BatchInput) (*billingdto.BatchOutput, error)
}

type DefaultBillingUsecase struct {
	TransactionRepo domain.TransactionRepository
	Publisher       domain.TransactionEventPublisher
	Metrics         *metrics.BillingMetrics
	Providers       map[string]ai.Provider // keyed by product key
	AlertWebhook    string
}

func NewDefaultBillingUsecase(
	transactionRepo domain.TransactionRepository,
	publisher domain.TransactionEventPublisher,
	billingMetrics *metrics.BillingMetrics,
	providers map[string]ai.Provider,
) *DefaultBillingUsecase {
	return &DefaultBillingUsecase{
		TransactionRepo: transactionRepo,
		Publisher:       publisher,
		Metrics:         billingMetrics,
		Providers:       providers,
	}
}

// RunOperation executes one guarded billable operation. The returned output
// carries the transaction id even when the operation itself failed, so the
// caller can point the operator at the VOIDED record.
func (uc *DefaultBillingUsecase) RunOperation(ctx context.Context, input *billingdto.OperationInput) (*billingdto.OperationOutput, error) {
	if input.EntityID == "" {
		return nil, domain.ErrEmptyEntityID
	}

	product, err := domain.ProductByKey(input.ProductKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, input.ProductKey)
	}

	provider, ok := uc.Providers[product.Key]
	if !ok {
		return nil, fmt.Errorf("no backend wired for product %s", product.Key)
	}

	guard := NewMonitorGuard(
		uc.TransactionRepo,
		uc.Publisher,
		uc.Metrics,
		input.EntityID,
		product.Key,
		product.Price,
	)
	guard.AlertWebhook = uc.AlertWebhook

	output := &billingdto.OperationOutput{
		TransactionID: guard.TransactionID,
		EntityID:      input.EntityID,
		ProductKey:    product.Key,
		Revenue:       product.Price,
	}

	err = guard.Run(ctx, func(ctx context.Context) error {
		detail, err := provider.Generate(ctx, product.Label)
		if err != nil {
			return err
		}

		if input.ForceFailure {
			return fmt.Errorf("%w during %s", domain.ErrForcedFailure, product.Label)
		}

		output.Detail = detail
		slog.Info("operation completed",
			"entity_id", input.EntityID,
			"product_key", product.Key,
			"backend", provider.Name(),
		)
		return nil
	})
	if err != nil {
		output.Status = string(domain.StatusVoided)
		return output, err
	}

	output.Status = string(domain.StatusProvisional)
	return output, nil
}
