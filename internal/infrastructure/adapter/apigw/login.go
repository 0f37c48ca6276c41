package apigw

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	coreport "github.com/adelahmadi/fintrack/internal/domain/port/core"
	"github.com/adelahmadi/fintrack/internal/domain/port/usecase"
)

// LoginHandler adapts API Gateway proxy events to the login usecase
type LoginHandler struct {
	accountUseCase usecase.AccountUseCase
	logger         coreport.Logger
}

// NewLoginHandler creates a new login lambda handler
func NewLoginHandler(accountUseCase usecase.AccountUseCase, logger coreport.Logger) *LoginHandler {
	return &LoginHandler{
		accountUseCase: accountUseCase,
		logger:         logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Handle processes one login invocation. Malformed bodies, wrong
// credentials, and directory failures all collapse into the same 401.
func (h *LoginHandler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req loginRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		return unauthorized(), nil
	}

	token, err := h.accountUseCase.Login(ctx, req.Email, req.Password)
	if err != nil {
		return unauthorized(), nil
	}

	return respond(http.StatusOK, map[string]string{
		"message": "User was logged in successfully",
		"token":   token,
	}), nil
}
