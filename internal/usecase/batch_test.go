package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopstream/billing-service/internal/domain"
	"github.com/shopstream/billing-service/internal/infrastructure/ai"
	billingdto "github.com/shopstream/billing-service/internal/usecase/dto/billing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBatch_AllForcedFailures(t *testing.T) {
	repo := &fakeTransactionRepo{}
	uc := newTestBillingUsecase(repo, newFakePublisher())

	output, err := uc.RunBatch(context.Background(), &billingdto.BatchInput{
		EntityID:     "ShopA",
		ProductKey:   "listing",
		Count:        5,
		ForceFailure: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, output.Requested)
	assert.Equal(t, 0, output.Succeeded)
	assert.Equal(t, 5, output.Failed)
	assert.NotEmpty(t, output.RunID)

	records := repo.all()
	require.Len(t, records, 5)
	for _, txn := range records {
		assert.Equal(t, domain.StatusVoided, txn.Status)
		assert.Equal(t, "ShopA", txn.EntityID)
	}
}

func TestRunBatch_AllSucceed(t *testing.T) {
	repo := &fakeTransactionRepo{}
	uc := newTestBillingUsecase(repo, newFakePublisher())

	output, err := uc.RunBatch(context.Background(), &billingdto.BatchInput{
		EntityID:   "ShopB",
		ProductKey: "smart_copy",
		Count:      3,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, output.Succeeded)
	assert.Equal(t, 0, output.Failed)

	records := repo.all()
	require.Len(t, records, 3)
	for _, txn := range records {
		assert.Equal(t, domain.StatusProvisional, txn.Status)
	}
}

func TestRunBatch_TallyAlwaysSumsToCount(t *testing.T) {
	repo := &fakeTransactionRepo{}
	uc := NewDefaultBillingUsecase(repo, newFakePublisher(), newTestMetrics(), map[string]ai.Provider{
		domain.ProductListing: &flakyProvider{err: errors.New("intermittent backend")},
	})

	output, err := uc.RunBatch(context.Background(), &billingdto.BatchInput{
		EntityID:   "ShopA",
		ProductKey: "listing",
		Count:      6,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, output.Succeeded+output.Failed)
	assert.Equal(t, 3, output.Failed)
	assert.Len(t, repo.all(), 6)
}

func TestRunBatch_InvalidCount(t *testing.T) {
	uc := newTestBillingUsecase(&fakeTransactionRepo{}, newFakePublisher())

	_, err := uc.RunBatch(context.Background(), &billingdto.BatchInput{
		EntityID:   "ShopA",
		ProductKey: "listing",
		Count:      0,
	})
	require.ErrorIs(t, err, domain.ErrInvalidBatchCount)
}

func TestRunBatch_UnknownProduct(t *testing.T) {
	repo := &fakeTransactionRepo{}
	uc := newTestBillingUsecase(repo, newFakePublisher())

	_, err := uc.RunBatch(context.Background(), &billingdto.BatchInput{
		EntityID:   "ShopA",
		ProductKey: "nope",
		Count:      2,
	})
	require.ErrorIs(t, err, domain.ErrUnknownProduct)
	assert.Empty(t, repo.all())
}
