package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	StatusProvisional TransactionStatus = "PROVISIONAL"
	StatusVoided      TransactionStatus = "VOIDED"
)

// Transaction is a single billable charge. Status is decided once when the
// guarded operation finishes and can only move PROVISIONAL -> VOIDED after
// that, by a manual void.
type Transaction struct {
	ID         string
	EntityID   string
	ProductKey string
	Status     TransactionStatus
	Revenue    decimal.Decimal
	CreatedAt  time.Time
}
