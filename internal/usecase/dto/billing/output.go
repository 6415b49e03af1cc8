package billing

import "github.com/shopspring/decimal"

type OperationOutput struct {
	TransactionID string
	EntityID      string
	ProductKey    string
	Status        string
	Revenue       decimal.Decimal
	Detail        string
}

type BatchOutput struct {
	RunID     string
	Requested int
	Succeeded int
	Failed    int
}
