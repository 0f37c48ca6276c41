package apigw

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	domainerr "github.com/adelahmadi/fintrack/internal/domain/error"
	coreport "github.com/adelahmadi/fintrack/internal/domain/port/core"
	"github.com/adelahmadi/fintrack/internal/domain/port/usecase"
)

// SignupHandler adapts API Gateway proxy events to the signup usecase
type SignupHandler struct {
	accountUseCase usecase.AccountUseCase
	logger         coreport.Logger
}

// NewSignupHandler creates a new signup lambda handler
func NewSignupHandler(accountUseCase usecase.AccountUseCase, logger coreport.Logger) *SignupHandler {
	return &SignupHandler{
		accountUseCase: accountUseCase,
		logger:         logger,
	}
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Handle processes one signup invocation
func (h *SignupHandler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req signupRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		return respond(http.StatusBadRequest, errorBody{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format",
		}), nil
	}

	if err := h.accountUseCase.Signup(ctx, req.Email, req.Password); err != nil {
		h.logger.Error("Signup failed", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		return internalError(err), nil
	}

	return respond(http.StatusCreated, map[string]string{
		"message": fmt.Sprintf("User %s was successfully registered", req.Email),
	}), nil
}
