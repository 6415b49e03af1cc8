package domain

// TransactionEventPublisher pushes finalized and voided transactions to the
// message bus. Publishing is non-critical: callers log failures and move on.
type TransactionEventPublisher interface {
	PublishTransaction(txn *Transaction) error
}
