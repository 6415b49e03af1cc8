package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopstream/billing-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGuard(repo *fakeTransactionRepo, pub *fakePublisher, entityID, productKey string, price string) *MonitorGuard {
	return NewMonitorGuard(repo, pub, newTestMetrics(), entityID, productKey, decimal.RequireFromString(price))
}

func TestMonitorGuard_AssignsIDBeforeRun(t *testing.T) {
	guard := newTestGuard(&fakeTransactionRepo{}, newFakePublisher(), "ShopA", "listing", "0.10")

	require.NotEmpty(t, guard.TransactionID)
	_, err := uuid.Parse(guard.TransactionID)
	require.NoError(t, err)

	idBefore := guard.TransactionID
	_ = guard.Run(context.Background(), func(ctx context.Context) error { return nil })
	assert.Equal(t, idBefore, guard.TransactionID)
}

func TestMonitorGuard_SuccessWritesProvisional(t *testing.T) {
	repo := &fakeTransactionRepo{}
	guard := newTestGuard(repo, newFakePublisher(), "ShopA", "listing", "0.10")

	err := guard.Run(context.Background(), func(ctx context.Context) error { return nil })
	require.NoError(t, err)

	records := repo.all()
	require.Len(t, records, 1)
	assert.Equal(t, guard.TransactionID, records[0].ID)
	assert.Equal(t, "ShopA", records[0].EntityID)
	assert.Equal(t, "listing", records[0].ProductKey)
	assert.Equal(t, domain.StatusProvisional, records[0].Status)
	assert.True(t, records[0].Revenue.Equal(decimal.RequireFromString("0.10")))
	assert.False(t, records[0].CreatedAt.IsZero())
	assert.Equal(t, time.UTC, records[0].CreatedAt.Location())
}

func TestMonitorGuard_BodyErrorWritesVoidedAndPropagates(t *testing.T) {
	repo := &fakeTransactionRepo{}
	guard := newTestGuard(repo, newFakePublisher(), "ShopA", "smart_copy", "1.00")

	bodyErr := errors.New("llama backend unavailable")
	err := guard.Run(context.Background(), func(ctx context.Context) error { return bodyErr })
	require.ErrorIs(t, err, bodyErr)

	records := repo.all()
	require.Len(t, records, 1)
	assert.Equal(t, domain.StatusVoided, records[0].Status)
	assert.True(t, records[0].Revenue.Equal(decimal.RequireFromString("1.00")))
}

func TestMonitorGuard_PersistenceFailureDoesNotMaskOutcome(t *testing.T) {
	repo := &fakeTransactionRepo{failCreate: errors.New("store unreachable")}
	guard := newTestGuard(repo, newFakePublisher(), "ShopA", "listing", "0.10")

	err := guard.Run(context.Background(), func(ctx context.Context) error { return nil })
	require.NoError(t, err)
	assert.Empty(t, repo.all())

	bodyErr := errors.New("body failed")
	guard = newTestGuard(repo, newFakePublisher(), "ShopA", "listing", "0.10")
	err = guard.Run(context.Background(), func(ctx context.Context) error { return bodyErr })
	require.ErrorIs(t, err, bodyErr)
}

func TestMonitorGuard_PanicStillWritesVoided(t *testing.T) {
	repo := &fakeTransactionRepo{}
	guard := newTestGuard(repo, newFakePublisher(), "ShopA", "brand_guard", "5.00")

	require.Panics(t, func() {
		_ = guard.Run(context.Background(), func(ctx context.Context) error {
			panic("boom")
		})
	})

	records := repo.all()
	require.Len(t, records, 1)
	assert.Equal(t, domain.StatusVoided, records[0].Status)
	assert.Equal(t, guard.TransactionID, records[0].ID)
}

func TestMonitorGuard_CanceledContextStillWritesRecord(t *testing.T) {
	repo := &fakeTransactionRepo{}
	guard := newTestGuard(repo, newFakePublisher(), "ShopA", "listing", "0.10")

	ctx, cancel := context.WithCancel(context.Background())
	err := guard.Run(ctx, func(ctx context.Context) error {
		cancel()
		return ctx.Err()
	})
	require.Error(t, err)

	records := repo.all()
	require.Len(t, records, 1)
	assert.Equal(t, domain.StatusVoided, records[0].Status)
}

func TestMonitorGuard_PublishesFinalizedEvent(t *testing.T) {
	repo := &fakeTransactionRepo{}
	pub := newFakePublisher()
	guard := newTestGuard(repo, pub, "ShopB", "smart_copy", "1.00")

	err := guard.Run(context.Background(), func(ctx context.Context) error { return nil })
	require.NoError(t, err)

	select {
	case <-pub.published:
	case <-time.After(2 * time.Second):
		t.Fatal("transaction event was not published")
	}

	events := pub.all()
	require.Len(t, events, 1)
	assert.Equal(t, guard.TransactionID, events[0].ID)
	assert.Equal(t, domain.StatusProvisional, events[0].Status)
}
