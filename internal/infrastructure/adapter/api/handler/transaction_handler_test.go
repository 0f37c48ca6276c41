package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adelahmadi/fintrack/internal/domain/entity"
	errs "github.com/adelahmadi/fintrack/internal/domain/error"
	"github.com/adelahmadi/fintrack/internal/domain/port/usecase"
	"github.com/adelahmadi/fintrack/internal/infrastructure/adapter/api/middleware"
	coremocks "github.com/adelahmadi/fintrack/mocks/port/core"
	usecasemocks "github.com/adelahmadi/fintrack/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTransactionRouter(h *TransactionHandler, callerID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/transactions", func(c *gin.Context) {
		if callerID != "" {
			c.Set(middleware.CallerIDKey, callerID)
		}
		c.Next()
	}, h.CreateTransaction)
	return router
}

func TestCreateTransaction(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	ownerID := "a@x.com"

	t.Run("Recorded transaction is returned under item", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockTransactionUseCase(t)
		mockLogger := coremocks.NewMockLogger(t)

		record := &entity.TransactionRecord{
			TransactionID: "tx-1",
			UserID:        ownerID,
			Category:      "credit",
			Amount:        100,
			CreatedAt:     fixedTime,
			Extra:         map[string]any{"note": "salary"},
		}
		mockUseCase.On("RecordTransaction", mock.Anything, mock.MatchedBy(func(p usecase.TransactionPayload) bool {
			return p.Category == "credit" && p.Amount == 100 && p.Extra["note"] == "salary"
		}), ownerID).Return(record, nil).Once()

		router := setupTransactionRouter(NewTransactionHandler(mockUseCase, mockLogger), ownerID)

		body := `{"category":"credit","amount":100,"note":"salary"}`
		req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		item := resp["item"]
		assert.Equal(t, "tx-1", item["transactionId"])
		assert.Equal(t, ownerID, item["userId"])
		assert.Equal(t, "salary", item["note"])
	})

	t.Run("Missing caller identity is unauthorized", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockTransactionUseCase(t)
		mockLogger := coremocks.NewMockLogger(t)

		router := setupTransactionRouter(NewTransactionHandler(mockUseCase, mockLogger), "")

		body := `{"category":"credit","amount":100}`
		req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUseCase.AssertNotCalled(t, "RecordTransaction", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Malformed JSON body is a bad request", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockTransactionUseCase(t)
		mockLogger := coremocks.NewMockLogger(t)

		router := setupTransactionRouter(NewTransactionHandler(mockUseCase, mockLogger), ownerID)

		req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewBufferString(`{"category":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Domain validation failures map to bad request", func(t *testing.T) {
		tests := []struct {
			name string
			body string
			err  error
		}{
			{name: "Negative amount", body: `{"category":"debit","amount":-5}`, err: errs.ErrInvalidAmount},
			{name: "Missing category", body: `{"amount":10}`, err: errs.ErrMissingCategory},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mockUseCase := usecasemocks.NewMockTransactionUseCase(t)
				mockLogger := coremocks.NewMockLogger(t)

				mockUseCase.On("RecordTransaction", mock.Anything, mock.Anything, ownerID).
					Return(nil, tt.err).Once()
				mockLogger.On("Error", mock.Anything, mock.Anything).Once()

				router := setupTransactionRouter(NewTransactionHandler(mockUseCase, mockLogger), ownerID)

				req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewBufferString(tt.body))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)

				assert.Equal(t, http.StatusBadRequest, w.Code)
			})
		}
	})

	t.Run("Storage failure is an opaque server error", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockTransactionUseCase(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUseCase.On("RecordTransaction", mock.Anything, mock.Anything, ownerID).
			Return(nil, errs.ErrStoreUnavailable).Once()
		mockLogger.On("Error", mock.Anything, mock.Anything).Once()

		router := setupTransactionRouter(NewTransactionHandler(mockUseCase, mockLogger), ownerID)

		body := `{"category":"credit","amount":100}`
		req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Internal server error", resp["message"])
	})
}
