package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/fortix/inventory-service/internal/domain"
)

type ItemRepository struct {
	client    *dynamodb.Client
	tableName string
}

func NewItemRepository(client *dynamodb.Client, tableName string) *ItemRepository {
	return &ItemRepository{
		client:    client,
		tableName: tableName,
	}
}

func (r *ItemRepository) CreateItem(ctx context.Context, item *domain.InventoryItem) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(item_id)"),
	})

	if err != nil {
		return fmt.Errorf("failed to put item: %w", err)
	}

	return nil
}

func (r *ItemRepository) GetItem(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"item_id": &types.AttributeValueMemberS{Value: itemID},
		},
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	if result.Item == nil {
		return nil, ErrItemNotFound
	}

	var item domain.InventoryItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}

	return &item, nil
}

func (r *ItemRepository) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	var items []domain.InventoryItem

	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan items: %w", err)
		}

		var pageItems []domain.InventoryItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageItems); err != nil {
			return nil, fmt.Errorf("failed to unmarshal items: %w", err)
		}
		items = append(items, pageItems...)
	}

	return items, nil
}

// UpdateItem replaces every mutable field of an existing item.
func (r *ItemRepository) UpdateItem(ctx context.Context, item *domain.InventoryItem) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(item_id)"),
	})

	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to update item: %w", err)
	}

	return nil
}

func (r *ItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"item_id": &types.AttributeValueMemberS{Value: itemID},
		},
		ConditionExpression: aws.String("attribute_exists(item_id)"),
	})

	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to delete item: %w", err)
	}

	return nil
}

// AdjustQuantity applies a direct quantity delta outside the sale path (restock,
// manual correction). The condition keeps the resulting quantity non-negative.
func (r *ItemRepository) AdjustQuantity(ctx context.Context, itemID string, delta int) (*domain.InventoryItem, error) {
	update := expression.Set(
		expression.Name("quantity"),
		expression.Plus(
			expression.Name("quantity"),
			expression.Value(delta),
		),
	)

	cond := expression.AttributeExists(expression.Name("item_id"))
	if delta < 0 {
		cond = cond.And(expression.GreaterThanEqual(
			expression.Name("quantity"),
			expression.Value(-delta),
		))
	}

	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(cond).
		Build()
	if err != nil {
		return nil, err
	}

	result, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"item_id": &types.AttributeValueMemberS{Value: itemID},
		},
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			if delta < 0 {
				return nil, ErrInsufficientStock
			}
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to adjust quantity: %w", err)
	}

	var updated domain.InventoryItem
	if err := attributevalue.UnmarshalMap(result.Attributes, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}

	return &updated, nil
}
