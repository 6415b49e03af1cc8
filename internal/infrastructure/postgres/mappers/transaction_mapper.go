package mappers

import (
	"github.com/shopstream/billing-service/internal/domain"
	"github.com/shopstream/billing-service/internal/infrastructure/postgres/models"
)

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	return &domain.Transaction{
		ID:         model.ID,
		EntityID:   model.EntityID,
		ProductKey: model.ProductKey,
		Status:     model.Status,
		Revenue:    model.Revenue,
		CreatedAt:  model.CreatedAt,
	}
}

func ToGORMTransaction(txn *domain.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID:         txn.ID,
		EntityID:   txn.EntityID,
		ProductKey: txn.ProductKey,
		Status:     txn.Status,
		Revenue:    txn.Revenue,
		CreatedAt:  txn.CreatedAt,
	}
}
