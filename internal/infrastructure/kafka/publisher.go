package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopstream/billing-service/internal/domain"
)

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// PublishTransaction emits a finalized or voided transaction, keyed by
// entity so one tenant's events stay ordered.
func (k *KafkaPublisher) PublishTransaction(txn *domain.Transaction) error {
	event := TransactionEvent{
		TransactionID: txn.ID,
		EntityID:      txn.EntityID,
		ProductKey:    txn.ProductKey,
		Status:        string(txn.Status),
		Revenue:       txn.Revenue.StringFixed(2),
		CreatedAt:     txn.CreatedAt,
	}

	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(txn.EntityID),
		Value: msg,
		Time:  time.Now(),
	})
}

func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}
