package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/fortix/inventory-service/internal/domain"
)

type VendorRepository struct {
	client    *dynamodb.Client
	tableName string
}

func NewVendorRepository(client *dynamodb.Client, tableName string) *VendorRepository {
	return &VendorRepository{
		client:    client,
		tableName: tableName,
	}
}

func (r *VendorRepository) CreateVendor(ctx context.Context, vendor *domain.Vendor) error {
	av, err := attributevalue.MarshalMap(vendor)
	if err != nil {
		return fmt.Errorf("failed to marshal vendor: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(vendor_id)"),
	})

	if err != nil {
		return fmt.Errorf("failed to put vendor: %w", err)
	}

	return nil
}

func (r *VendorRepository) GetVendor(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"vendor_id": &types.AttributeValueMemberS{Value: vendorID},
		},
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}

	if result.Item == nil {
		return nil, ErrVendorNotFound
	}

	var vendor domain.Vendor
	if err := attributevalue.UnmarshalMap(result.Item, &vendor); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vendor: %w", err)
	}

	return &vendor, nil
}

func (r *VendorRepository) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	var vendors []domain.Vendor

	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendors: %w", err)
		}

		var pageVendors []domain.Vendor
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageVendors); err != nil {
			return nil, fmt.Errorf("failed to unmarshal vendors: %w", err)
		}
		vendors = append(vendors, pageVendors...)
	}

	return vendors, nil
}

func (r *VendorRepository) UpdateVendor(ctx context.Context, vendor *domain.Vendor) error {
	av, err := attributevalue.MarshalMap(vendor)
	if err != nil {
		return fmt.Errorf("failed to marshal vendor: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(vendor_id)"),
	})

	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrVendorNotFound
		}
		return fmt.Errorf("failed to update vendor: %w", err)
	}

	return nil
}

func (r *VendorRepository) DeleteVendor(ctx context.Context, vendorID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"vendor_id": &types.AttributeValueMemberS{Value: vendorID},
		},
		ConditionExpression: aws.String("attribute_exists(vendor_id)"),
	})

	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrVendorNotFound
		}
		return fmt.Errorf("failed to delete vendor: %w", err)
	}

	return nil
}
