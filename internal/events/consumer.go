package events

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/fortix/inventory-service/internal/domain"
)

// SaleRequestedEvent lets upstream services (a POS terminal gateway, an order
// service) record sales through the broker instead of the REST endpoint.
type SaleRequestedEvent struct {
	EventID      string    `json:"event_id"`
	SaleID       string    `json:"sale_id"`
	InventoryID  string    `json:"inventory_id"`
	QuantitySold int       `json:"quantity_sold"`
	Timestamp    time.Time `json:"timestamp"`
}

type SaleRecorder interface {
	RecordSale(ctx context.Context, req domain.RecordSaleRequest) (*domain.RecordSaleResponse, error)
}

type KafkaConsumer struct {
	reader      *kafka.Reader
	saleService SaleRecorder
	logger      *zap.Logger
	ctx         context.Context
	cancel      context.CancelFunc
	done        chan struct{}
}

func NewKafkaConsumer(brokers, topic, groupID string, saleService SaleRecorder, logger *zap.Logger) *KafkaConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  strings.Split(brokers, ","),
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})

	ctx, cancel := context.WithCancel(context.Background())

	return &KafkaConsumer{
		reader:      reader,
		saleService: saleService,
		logger:      logger,
		ctx:         ctx,
		cancel:      cancel,
		done:        make(chan struct{}),
	}
}

func (kc *KafkaConsumer) Start() {
	kc.logger.Info("Kafka consumer started", zap.String("topic", kc.reader.Config().Topic))
	go kc.consume()
}

func (kc *KafkaConsumer) consume() {
	defer close(kc.done)

	for {
		msg, err := kc.reader.FetchMessage(kc.ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				kc.logger.Info("Kafka consumer stopped")
				return
			}
			kc.logger.Error("Error reading message", zap.Error(err))
			continue
		}

		if err := kc.processMessage(msg); err != nil {
			kc.logger.Error("Error processing message",
				zap.Error(err),
				zap.String("topic", msg.Topic),
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset))
		}

		// Commit either way; a sale request that failed its business rules
		// must not be redelivered forever.
		if err := kc.reader.CommitMessages(kc.ctx, msg); err != nil {
			kc.logger.Error("Failed to commit offset", zap.Error(err))
		}
	}
}

func (kc *KafkaConsumer) processMessage(msg kafka.Message) error {
	var event SaleRequestedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return err
	}

	result, err := kc.saleService.RecordSale(kc.ctx, domain.RecordSaleRequest{
		InventoryID:  event.InventoryID,
		QuantitySold: event.QuantitySold,
		SaleID:       event.SaleID,
	})
	if err != nil {
		kc.logger.Warn("Sale request rejected",
			zap.String("event_id", event.EventID),
			zap.String("inventory_id", event.InventoryID),
			zap.Error(err))
		return nil
	}

	kc.logger.Info("Sale recorded from event",
		zap.String("event_id", event.EventID),
		zap.String("sale_id", result.Sale.SaleID),
		zap.Int("remaining_quantity", result.UpdatedInventory.Quantity))
	return nil
}

func (kc *KafkaConsumer) Stop() {
	kc.cancel()
	<-kc.done
	if err := kc.reader.Close(); err != nil {
		kc.logger.Error("Failed to close Kafka reader", zap.Error(err))
	}
}
