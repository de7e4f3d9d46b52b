package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	pkgtls "github.com/fortix/inventory-service/pkg/tls"
)

type Config struct {
	Port            string `envconfig:"PORT" default:"8080"`
	AWSRegion       string `envconfig:"AWS_REGION" default:"ap-northeast-2"`
	ItemTableName   string `envconfig:"ITEM_TABLE_NAME" default:"inventory-items"`
	SaleTableName   string `envconfig:"SALE_TABLE_NAME" default:"sales"`
	VendorTableName string `envconfig:"VENDOR_TABLE_NAME" default:"vendors"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	LocalMode       bool   `envconfig:"LOCAL_MODE" default:"true"` // run against local DynamoDB without AWS
	DynamoEndpoint  string `envconfig:"DYNAMO_ENDPOINT" default:"http://localhost:8000"`

	KafkaBrokers         string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	KafkaTopic           string `envconfig:"KAFKA_TOPIC" default:"inventory-events"`
	KafkaDisabled        bool   `envconfig:"KAFKA_DISABLED" default:"false"`
	KafkaConsumerEnabled bool   `envconfig:"KAFKA_CONSUMER_ENABLED" default:"false"`
	KafkaSaleTopic       string `envconfig:"KAFKA_SALE_TOPIC" default:"sale-requests"`
	KafkaGroupID         string `envconfig:"KAFKA_GROUP_ID" default:"inventory-service"`

	RedisAddr      string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	IdempotencyTTL time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"24h"`

	TLS pkgtls.TLSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
