package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/shopstream/billing-service/internal/domain"
)

type TransactionModel struct {
	ID         string                   `gorm:"primaryKey;type:uuid"`
	EntityID   string                   `gorm:"index:idx_entity_id"`
	ProductKey string                   `gorm:"index:idx_product_key"`
	Status     domain.TransactionStatus `gorm:"index:idx_status"`
	Revenue    decimal.Decimal          `gorm:"type:numeric(12,2)"`
	CreatedAt  time.Time                `gorm:"index:idx_created_at"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}
