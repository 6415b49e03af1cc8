package usecase

import (
	"context"
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopstream/billing-service/internal/domain"
	"github.com/shopstream/billing-service/internal/infrastructure/metrics"
	"gorm.io/gorm"
)

type fakeTransactionRepo struct {
	mu         sync.Mutex
	records    []*domain.Transaction
	failCreate error
	failUpdate error
	failQuery  error
}

func (r *fakeTransactionRepo) CreateTransaction(ctx context.Context, txn *domain.Transaction) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *txn
	r.records = append(r.records, &copied)
	return nil
}

func (r *fakeTransactionRepo) UpdateTransactionStatus(ctx context.Context, txnID string, newStatus domain.TransactionStatus) error {
	if r.failUpdate != nil {
		return r.failUpdate
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, txn := range r.records {
		if txn.ID == txnID {
			txn.Status = newStatus
		}
	}
	return nil
}

func (r *fakeTransactionRepo) GetRecentTransactions(ctx context.Context, limit int) ([]*domain.Transaction, error) {
	if r.failQuery != nil {
		return nil, r.failQuery
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	sorted := make([]*domain.Transaction, len(r.records))
	copy(sorted, r.records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (r *fakeTransactionRepo) GetTransactionByID(ctx context.Context, txnID string) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, txn := range r.records {
		if txn.ID == txnID {
			copied := *txn
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTransactionRepo) all() []*domain.Transaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Transaction, len(r.records))
	copy(out, r.records)
	return out
}

type fakePublisher struct {
	mu        sync.Mutex
	events    []domain.Transaction
	fail      error
	published chan struct{}
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{published: make(chan struct{}, 64)}
}

func (p *fakePublisher) PublishTransaction(txn *domain.Transaction) error {
	if p.fail != nil {
		return p.fail
	}
	p.mu.Lock()
	p.events = append(p.events, *txn)
	p.mu.Unlock()
	p.published <- struct{}{}
	return nil
}

func (p *fakePublisher) all() []domain.Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.Transaction, len(p.events))
	copy(out, p.events)
	return out
}

type fakeProvider struct {
	name   string
	output string
	err    error
}

func (p *fakeProvider) Name() string {
	return p.name
}

func (p *fakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.output, nil
}

// flakyProvider fails every other call, starting with a failure.
type flakyProvider struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (p *flakyProvider) Name() string {
	return "flaky"
}

func (p *flakyProvider) Generate(ctx context.Context, prompt string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.calls%2 == 1 {
		return "", p.err
	}
	return "ok", nil
}

func newTestMetrics() *metrics.BillingMetrics {
	return metrics.NewBillingMetrics(prometheus.NewRegistry())
}
