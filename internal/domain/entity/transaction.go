package entity

import (
	"encoding/json"
	"time"

	errs "github.com/adelahmadi/fintrack/internal/domain/error"
	coreport "github.com/adelahmadi/fintrack/internal/domain/port/core"
)

// CategoryCredit marks transactions that increase the user's total
// credit. Any other category value is treated as a debit.
const CategoryCredit = "credit"

// TransactionRecord is one immutable credit or debit event for a user.
// Caller-supplied fields beyond category and amount are carried
// verbatim in Extra and flattened into the persisted item and the API
// response.
type TransactionRecord struct {
	TransactionID string
	UserID        string
	Category      string
	Amount        float64
	CreatedAt     time.Time
	Extra         map[string]any
}

// NewTransactionRecord materializes a transaction record from a parsed
// request payload. The identifier comes from the injected generator so
// rapid creation for the same owner cannot collide.
func NewTransactionRecord(
	ownerID string,
	category string,
	amount float64,
	extra map[string]any,
	idGen coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
) (*TransactionRecord, error) {
	if ownerID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if category == "" {
		return nil, errs.ErrMissingCategory
	}
	if amount < 0 {
		return nil, errs.ErrInvalidAmount
	}

	return &TransactionRecord{
		TransactionID: idGen.NewID(),
		UserID:        ownerID,
		Category:      category,
		Amount:        amount,
		CreatedAt:     timeProvider.Now(),
		Extra:         extra,
	}, nil
}

// IsCredit reports whether this record increases total credit.
func (t *TransactionRecord) IsCredit() bool {
	return t.Category == CategoryCredit
}

// ToItem flattens the record into a single attribute map, extras
// first so the generated fields always win on key collisions.
func (t *TransactionRecord) ToItem() map[string]any {
	item := make(map[string]any, len(t.Extra)+5)
	for k, v := range t.Extra {
		item[k] = v
	}
	item["transactionId"] = t.TransactionID
	item["userId"] = t.UserID
	item["category"] = t.Category
	item["amount"] = t.Amount
	item["createdAt"] = t.CreatedAt.UTC().Format(time.RFC3339)
	return item
}

// MarshalJSON renders the record with extra fields inlined at the top
// level, matching the persisted item layout.
func (t *TransactionRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.ToItem())
}
