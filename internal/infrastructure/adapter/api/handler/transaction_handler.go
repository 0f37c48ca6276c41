package handler

import (
	"errors"
	"io"
	"net/http"

	domainerr "github.com/adelahmadi/fintrack/internal/domain/error"
	coreport "github.com/adelahmadi/fintrack/internal/domain/port/core"
	"github.com/adelahmadi/fintrack/internal/domain/port/usecase"
	"github.com/adelahmadi/fintrack/internal/infrastructure/adapter/api/dto"
	"github.com/adelahmadi/fintrack/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionUseCase usecase.TransactionUseCase
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(transactionUseCase usecase.TransactionUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactionUseCase: transactionUseCase,
		logger:             logger,
	}
}

// CreateTransaction handles the POST /transactions endpoint. The
// caller identity comes from the pre-authenticated request context,
// never from the body.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	ownerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
			Message: "Unauthorized access",
		})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request body",
		})
		return
	}

	payload, err := usecase.ParsePayload(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	record, err := h.transactionUseCase.RecordTransaction(c.Request.Context(), payload, ownerID)
	if err != nil {
		status := http.StatusInternalServerError
		message := "Internal server error"
		if errors.Is(err, domainerr.ErrInvalidAmount) || errors.Is(err, domainerr.ErrMissingCategory) {
			status = http.StatusBadRequest
			message = err.Error()
		}

		h.logger.Error("Failed to record transaction", map[string]any{
			"userId": ownerID,
			"error":  err.Error(),
		})
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusCreated, dto.TransactionResponse{Item: record})
}
