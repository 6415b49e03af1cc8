package domain

import "context"

type TransactionRepository interface {
	CreateTransaction(ctx context.Context, txn *Transaction) error
	UpdateTransactionStatus(ctx context.Context, txnID string, newStatus TransactionStatus) error
	GetRecentTransactions(ctx context.Context, limit int) ([]*Transaction, error)
	GetTransactionByID(ctx context.Context, txnID string) (*Transaction, error)
}
