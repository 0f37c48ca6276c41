package usecase

import (
	"context"
	"encoding/json"

	"github.com/adelahmadi/fintrack/internal/domain/entity"
)

// TransactionPayload is the parsed body of a create-transaction
// request: a required category and amount plus arbitrary extra fields
// carried through verbatim.
type TransactionPayload struct {
	Category string
	Amount   float64
	Extra    map[string]any
}

// ParsePayload splits a raw JSON body into the known fields and the
// verbatim remainder. Amount must be a JSON number when present;
// validation of its sign and the category's presence is left to the
// recorder.
func ParsePayload(body []byte) (TransactionPayload, error) {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return TransactionPayload{}, err
	}

	// A missing or non-numeric amount stays negative and fails the
	// recorder's non-negative check.
	payload := TransactionPayload{Amount: -1, Extra: make(map[string]any, len(raw))}
	for k, v := range raw {
		switch k {
		case "category":
			if s, ok := v.(string); ok {
				payload.Category = s
			}
		case "amount":
			if n, ok := v.(float64); ok {
				payload.Amount = n
			}
		default:
			payload.Extra[k] = v
		}
	}
	return payload, nil
}

// TransactionUseCase records transactions and keeps the summary in
// step with them.
type TransactionUseCase interface {
	// RecordTransaction materializes and persists one immutable
	// transaction record for the owner, then applies it to the owner's
	// summary. Returns the fully materialized record on success.
	RecordTransaction(ctx context.Context, payload TransactionPayload, ownerID string) (*entity.TransactionRecord, error)
}
