package kafka

import "time"

type TransactionEvent struct {
	TransactionID string    `json:"transaction_id"`
	EntityID      string    `json:"entity_id"`
	ProductKey    string    `json:"product_key"`
	Status        string    `json:"status"`
	Revenue       string    `json:"revenue"`
	CreatedAt     time.Time `json:"created_at"`
}
