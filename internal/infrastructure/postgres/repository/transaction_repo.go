package repository

import (
	"context"
	"fmt"

	"github.com/shopstream/billing-service/internal/domain"
	"github.com/shopstream/billing-service/internal/infrastructure/postgres/mappers"
	"github.com/shopstream/billing-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

func (r *DefaultTransactionRepository) CreateTransaction(ctx context.Context, txn *domain.Transaction) error {
	txnModel := mappers.ToGORMTransaction(txn)
	if err := r.DB.WithContext(ctx).Create(txnModel).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// UpdateTransactionStatus issues the update without checking the record
// exists first. Zero matched rows is not an error.
func (r *DefaultTransactionRepository) UpdateTransactionStatus(ctx context.Context, txnID string, newStatus domain.TransactionStatus) error {
	if err := r.DB.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Where("id = ?", txnID).
		Update("status", newStatus).Error; err != nil {
		return fmt.Errorf("failed to update transaction status: %w", err)
	}
	return nil
}

func (r *DefaultTransactionRepository) GetRecentTransactions(ctx context.Context, limit int) ([]*domain.Transaction, error) {
	var txnModels []models.TransactionModel
	if err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&txnModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find transactions: %w", err)
	}

	txns := make([]*domain.Transaction, len(txnModels))
	for i, txnModel := range txnModels {
		txns[i] = mappers.ToDomainTransaction(&txnModel)
	}

	return txns, nil
}

func (r *DefaultTransactionRepository) GetTransactionByID(ctx context.Context, txnID string) (*domain.Transaction, error) {
	var txnModel models.TransactionModel
	if err := r.DB.WithContext(ctx).First(&txnModel, "id = ?", txnID).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainTransaction(&txnModel), nil
}
