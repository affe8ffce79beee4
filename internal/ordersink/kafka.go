package ordersink

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaSink publishes completed orders as JSON messages keyed by user id,
// for downstream consumers (CRM, analytics). It is fan-out, not the
// durability sink.
type KafkaSink struct {
	writer *kafka.Writer
}

func NewKafkaSink(brokers []string, topic string) *KafkaSink {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}
	return &KafkaSink{writer: writer}
}

func (s *KafkaSink) Append(ctx context.Context, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(rec.UserID, 10)),
		Value: data,
		Time:  rec.PlacedAt,
	})
}

func (s *KafkaSink) Close() error {
	return s.writer.Close()
}
