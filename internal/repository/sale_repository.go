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

type SaleRepository struct {
	client        *dynamodb.Client
	saleTableName string
	itemTableName string
}

func NewSaleRepository(client *dynamodb.Client, saleTableName, itemTableName string) *SaleRepository {
	return &SaleRepository{
		client:        client,
		saleTableName: saleTableName,
		itemTableName: itemTableName,
	}
}

// RecordSale commits the stock decrement and the sale record as one transaction.
// The decrement only applies while quantity >= quantitySold, so stock can never
// go negative even under concurrent sales, and a failed sale insert cancels the
// decrement with it.
func (r *SaleRepository) RecordSale(ctx context.Context, sale *domain.Sale) error {
	saleAV, err := attributevalue.MarshalMap(sale)
	if err != nil {
		return fmt.Errorf("failed to marshal sale: %w", err)
	}

	update := expression.Set(
		expression.Name("quantity"),
		expression.Minus(
			expression.Name("quantity"),
			expression.Value(sale.QuantitySold),
		),
	).Set(
		expression.Name("updated_at"),
		expression.Value(sale.SaleDate),
	)

	cond := expression.AttributeExists(expression.Name("item_id")).
		And(expression.GreaterThanEqual(
			expression.Name("quantity"),
			expression.Value(sale.QuantitySold),
		))

	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(cond).
		Build()
	if err != nil {
		return err
	}

	_, err = r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.itemTableName),
					Key: map[string]types.AttributeValue{
						"item_id": &types.AttributeValueMemberS{Value: sale.ItemID},
					},
					ExpressionAttributeNames:  expr.Names(),
					ExpressionAttributeValues: expr.Values(),
					UpdateExpression:          expr.Update(),
					ConditionExpression:       expr.Condition(),
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.saleTableName),
					Item:                saleAV,
					ConditionExpression: aws.String("attribute_not_exists(sale_id)"),
				},
			},
		},
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			// Reason order follows TransactItems order: [0] decrement, [1] sale put.
			if len(canceled.CancellationReasons) == 2 {
				if isConditionFailure(canceled.CancellationReasons[0]) {
					return ErrInsufficientStock
				}
				if isConditionFailure(canceled.CancellationReasons[1]) {
					return ErrDuplicateSale
				}
			}
		}
		return fmt.Errorf("failed to record sale: %w", err)
	}

	return nil
}

func isConditionFailure(reason types.CancellationReason) bool {
	return reason.Code != nil && *reason.Code == "ConditionalCheckFailed"
}

func (r *SaleRepository) ListSales(ctx context.Context) ([]domain.Sale, error) {
	var sales []domain.Sale

	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.saleTableName),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sales: %w", err)
		}

		var pageSales []domain.Sale
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageSales); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sales: %w", err)
		}
		sales = append(sales, pageSales...)
	}

	return sales, nil
}
