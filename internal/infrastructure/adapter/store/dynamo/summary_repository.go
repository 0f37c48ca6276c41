package dynamo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/adelahmadi/fintrack/internal/domain/entity"
	errs "github.com/adelahmadi/fintrack/internal/domain/error"
	coreport "github.com/adelahmadi/fintrack/internal/domain/port/core"
	"github.com/adelahmadi/fintrack/internal/domain/port/persistence"
)

// summaryItem is the persisted shape of a summary row
type summaryItem struct {
	UserID      string    `dynamodbav:"userId"`
	TotalCredit float64   `dynamodbav:"totalCredit"`
	TotalDebit  float64   `dynamodbav:"totalDebit"`
	CreatedAt   time.Time `dynamodbav:"createdAt"`
	UpdatedAt   time.Time `dynamodbav:"updatedAt"`
}

// SummaryRepository implements the SummaryRepository port on DynamoDB
type SummaryRepository struct {
	client *dynamodb.Client
	table  string
	logger coreport.Logger
}

// NewSummaryRepository creates a new DynamoDB summary repository
func NewSummaryRepository(client *dynamodb.Client, table string, logger coreport.Logger) persistence.SummaryRepository {
	return &SummaryRepository{
		client: client,
		table:  table,
		logger: logger,
	}
}

// Create stores a fresh summary row
func (r *SummaryRepository) Create(ctx context.Context, summary *entity.Summary) error {
	item, err := attributevalue.MarshalMap(summaryItem{
		UserID:      summary.UserID,
		TotalCredit: summary.TotalCredit,
		TotalDebit:  summary.TotalDebit,
		CreatedAt:   summary.CreatedAt,
		UpdatedAt:   summary.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("%w: marshal summary: %s", errs.ErrStoreUnavailable, err.Error())
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		r.logger.Error("Failed to put summary item", map[string]any{
			"userId": summary.UserID,
			"table":  r.table,
			"error":  err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
	}
	return nil
}

// GetByUserID retrieves the summary row for a user
func (r *SummaryRepository) GetByUserID(ctx context.Context, userID string) (*entity.Summary, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"userId": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		r.logger.Error("Failed to get summary item", map[string]any{
			"userId": userID,
			"table":  r.table,
			"error":  err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
	}
	if len(out.Item) == 0 {
		return nil, errs.ErrSummaryNotFound
	}

	var item summaryItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("%w: unmarshal summary: %s", errs.ErrStoreUnavailable, err.Error())
	}

	return &entity.Summary{
		UserID:      item.UserID,
		TotalCredit: item.TotalCredit,
		TotalDebit:  item.TotalDebit,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}, nil
}

// AddTotals advances the stored totals with a single atomic ADD
// expression. The attribute_exists guard makes a missing summary fail
// instead of silently materializing a row, and the add-delta shape
// means two concurrent updates for the same user both land.
func (r *SummaryRepository) AddTotals(ctx context.Context, userID string, creditDelta, debitDelta float64, updatedAt time.Time) error {
	updatedAtAttr, err := attributevalue.Marshal(updatedAt)
	if err != nil {
		return fmt.Errorf("%w: marshal updatedAt: %s", errs.ErrStoreUnavailable, err.Error())
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"userId": &types.AttributeValueMemberS{Value: userID},
		},
		UpdateExpression:    aws.String("SET updatedAt = :updatedAt ADD totalCredit :credit, totalDebit :debit"),
		ConditionExpression: aws.String("attribute_exists(userId)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":updatedAt": updatedAtAttr,
			":credit":    &types.AttributeValueMemberN{Value: formatFloat(creditDelta)},
			":debit":     &types.AttributeValueMemberN{Value: formatFloat(debitDelta)},
		},
	})
	if err != nil {
		var condFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condFailed) {
			return errs.ErrSummaryNotFound
		}
		r.logger.Error("Failed to update summary totals", map[string]any{
			"userId": userID,
			"table":  r.table,
			"error":  err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
	}
	return nil
}

// formatFloat renders a float the way DynamoDB number attributes
// expect, without exponent notation for typical amounts.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
