package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/adelahmadi/fintrack/internal/domain/entity"
	errs "github.com/adelahmadi/fintrack/internal/domain/error"
	coreport "github.com/adelahmadi/fintrack/internal/domain/port/core"
	"github.com/adelahmadi/fintrack/internal/domain/port/persistence"
)

// TransactionRepository implements the TransactionRepository port on
// DynamoDB. Records carry arbitrary caller-supplied fields, so they
// are marshalled from the flattened item map rather than a fixed
// struct.
type TransactionRepository struct {
	client *dynamodb.Client
	table  string
	logger coreport.Logger
}

// NewTransactionRepository creates a new DynamoDB transaction repository
func NewTransactionRepository(client *dynamodb.Client, table string, logger coreport.Logger) persistence.TransactionRepository {
	return &TransactionRepository{
		client: client,
		table:  table,
		logger: logger,
	}
}

// Create stores one transaction record
func (r *TransactionRepository) Create(ctx context.Context, record *entity.TransactionRecord) error {
	item, err := attributevalue.MarshalMap(record.ToItem())
	if err != nil {
		return fmt.Errorf("%w: marshal transaction: %s", errs.ErrStoreUnavailable, err.Error())
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		r.logger.Error("Failed to put transaction item", map[string]any{
			"transactionId": record.TransactionID,
			"userId":        record.UserID,
			"table":         r.table,
			"error":         err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
	}
	return nil
}
