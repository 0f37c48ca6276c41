package apigw

import (
	"context"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	domainerr "github.com/adelahmadi/fintrack/internal/domain/error"
	coreport "github.com/adelahmadi/fintrack/internal/domain/port/core"
	"github.com/adelahmadi/fintrack/internal/domain/port/usecase"
)

// TransactionHandler adapts API Gateway proxy events to the
// transaction recorder. The gateway authorizer has already
// authenticated the caller; the identity is read from the authorizer
// claims, never from the body.
type TransactionHandler struct {
	transactionUseCase usecase.TransactionUseCase
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction lambda handler
func NewTransactionHandler(transactionUseCase usecase.TransactionUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactionUseCase: transactionUseCase,
		logger:             logger,
	}
}

// CallerIdentity extracts the authenticated email from the request
// context authorizer claims.
func CallerIdentity(event events.APIGatewayProxyRequest) (string, bool) {
	claims, ok := event.RequestContext.Authorizer["claims"].(map[string]any)
	if !ok {
		return "", false
	}
	email, ok := claims["email"].(string)
	return email, ok && email != ""
}

// Handle processes one create-transaction invocation
func (h *TransactionHandler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	ownerID, ok := CallerIdentity(event)
	if !ok {
		return unauthorized(), nil
	}

	payload, err := usecase.ParsePayload([]byte(event.Body))
	if err != nil {
		return respond(http.StatusBadRequest, errorBody{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format",
		}), nil
	}

	record, err := h.transactionUseCase.RecordTransaction(ctx, payload, ownerID)
	if err != nil {
		if errors.Is(err, domainerr.ErrInvalidAmount) || errors.Is(err, domainerr.ErrMissingCategory) {
			return respond(http.StatusBadRequest, errorBody{
				Code:    domainerr.ErrorCode(err),
				Message: err.Error(),
			}), nil
		}

		h.logger.Error("Failed to record transaction", map[string]any{
			"userId": ownerID,
			"error":  err.Error(),
		})
		return internalError(err), nil
	}

	return respond(http.StatusCreated, map[string]any{
		"item": record,
	}), nil
}
