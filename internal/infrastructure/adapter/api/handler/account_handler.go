package handler

import (
	"fmt"
	"net/http"

	domainerr "github.com/adelahmadi/fintrack/internal/domain/error"
	coreport "github.com/adelahmadi/fintrack/internal/domain/port/core"
	"github.com/adelahmadi/fintrack/internal/domain/port/usecase"
	"github.com/adelahmadi/fintrack/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles signup and login HTTP requests
type AccountHandler struct {
	accountUseCase usecase.AccountUseCase
	logger         coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accountUseCase usecase.AccountUseCase, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
		logger:         logger,
	}
}

// Signup handles the POST /signup endpoint
func (h *AccountHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	if err := h.accountUseCase.Signup(c.Request.Context(), req.Email, req.Password); err != nil {
		h.logger.Error("Signup failed", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{
		Message: fmt.Sprintf("User %s was successfully registered", req.Email),
	})
}

// Login handles the POST /login endpoint. The only two outcomes are
// 200 with a token or the generic 401.
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{
			Message: "Unauthorized access",
		})
		return
	}

	token, err := h.accountUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{
			Message: "Unauthorized access",
		})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "User was logged in successfully",
		Token:   token,
	})
}
