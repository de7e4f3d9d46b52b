package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type KafkaProducer struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewKafkaProducer(brokers string, topic string, logger *zap.Logger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}

	return &KafkaProducer{
		writer: writer,
		logger: logger,
	}
}

func (p *KafkaProducer) PublishSaleRecorded(ctx context.Context, event SaleRecordedEvent) error {
	return p.publish(ctx, TypeSaleRecorded, event.EventID, event)
}

func (p *KafkaProducer) PublishStockLow(ctx context.Context, event StockLowEvent) error {
	return p.publish(ctx, TypeStockLow, event.EventID, event)
}

func (p *KafkaProducer) publish(ctx context.Context, eventType, eventID string, payload any) error {
	eventBytes, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("Failed to marshal event", zap.Error(err))
		return err
	}

	msg := kafka.Message{
		Key:   []byte(eventID),
		Value: eventBytes,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish message",
			zap.String("event_id", eventID),
			zap.String("event_type", eventType),
			zap.Error(err))
		return err
	}

	p.logger.Info("Event published successfully",
		zap.String("event_id", eventID),
		zap.String("event_type", eventType))

	return nil
}

func (p *KafkaProducer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
