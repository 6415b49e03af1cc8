package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jaevor/go-nanoid"
	"github.com/shopstream/billing-service/internal/domain"
	billingdto "github.com/shopstream/billing-service/internal/usecase/dto/billing"
)

// RunBatch executes the same guarded operation Count times sequentially for
// one tenant. An iteration that fails is tallied and does not halt the run,
// so Succeeded+Failed always equals Requested.
func (uc *DefaultBillingUsecase) RunBatch(ctx context.Context, input *billingdto.BatchInput) (*billingdto.BatchOutput, error) {
	if input.EntityID == "" {
		return nil, domain.ErrEmptyEntityID
	}
	if input.Count < 1 {
		return nil, domain.ErrInvalidBatchCount
	}
	if _, err := domain.ProductByKey(input.ProductKey); err != nil {
		return nil, fmt.Errorf("%w: %s", err, input.ProductKey)
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	runID := idGenerator()

	slog.Info("batch run started",
		"run_id", runID,
		"entity_id", input.EntityID,
		"product_key", input.ProductKey,
		"count", input.Count,
	)

	succeeded, failed := 0, 0
	for i := 0; i < input.Count; i++ {
		_, err := uc.RunOperation(ctx, &billingdto.OperationInput{
			EntityID:     input.EntityID,
			ProductKey:   input.ProductKey,
			ForceFailure: input.ForceFailure,
		})
		if err != nil {
			failed++
			slog.Warn("batch iteration failed",
				"run_id", runID,
				"iteration", i+1,
				"error", err.Error(),
			)
		} else {
			succeeded++
		}

		slog.Info("batch progress", "run_id", runID, "processed", i+1, "total", input.Count)
	}

	uc.Metrics.RecordBatchRun(input.EntityID, input.ProductKey, succeeded, failed)
	slog.Info("batch run complete", "run_id", runID, "succeeded", succeeded, "failed", failed)

	return &billingdto.BatchOutput{
		RunID:     runID,
		Requested: input.Count,
		Succeeded: succeeded,
		Failed:    failed,
	}, nil
}
