package notifier

import "time"

type AlertPayload struct {
	TransactionID string    `json:"transaction_id"`
	EntityID      string    `json:"entity_id"`
	ProductKey    string    `json:"product_key"`
	Reason        string    `json:"reason"`
	Timestamp     time.Time `json:"timestamp"`
}
