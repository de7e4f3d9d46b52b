package repository

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	pkgconfig "github.com/fortix/inventory-service/pkg/config"
)

var (
	ErrItemNotFound      = errors.New("inventory item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrDuplicateSale     = errors.New("duplicate sale")
	ErrVendorNotFound    = errors.New("vendor not found")
)

func NewDynamoDBClient(cfg *pkgconfig.Config) (*dynamodb.Client, error) {
	if cfg.LocalMode {
		// DynamoDB Local accepts any static credentials.
		awsCfg, err := config.LoadDefaultConfig(context.TODO(),
			config.WithRegion(cfg.AWSRegion),
			config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider("local", "local", ""),
			),
		)
		if err != nil {
			return nil, err
		}
		return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.DynamoEndpoint)
		}), nil
	}

	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, err
	}

	return dynamodb.NewFromConfig(awsCfg), nil
}
