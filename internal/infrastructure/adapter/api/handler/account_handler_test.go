package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	errs "github.com/adelahmadi/fintrack/internal/domain/error"
	coremocks "github.com/adelahmadi/fintrack/mocks/port/core"
	usecasemocks "github.com/adelahmadi/fintrack/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAccountRouter(h *AccountHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/signup", h.Signup)
	router.POST("/login", h.Login)
	return router
}

func TestAccountHandlerSignup(t *testing.T) {
	t.Run("Registered user gets a confirmation message", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockAccountUseCase(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUseCase.On("Signup", mock.Anything, "a@x.com", "s3cret!").Return(nil).Once()

		router := setupAccountRouter(NewAccountHandler(mockUseCase, mockLogger))

		body := `{"email":"a@x.com","password":"s3cret!"}`
		req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "User a@x.com was successfully registered", resp["message"])
	})

	t.Run("Malformed body is a bad request", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockAccountUseCase(t)
		mockLogger := coremocks.NewMockLogger(t)

		router := setupAccountRouter(NewAccountHandler(mockUseCase, mockLogger))

		req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewBufferString(`{"email":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUseCase.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Invalid email is a bad request", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockAccountUseCase(t)
		mockLogger := coremocks.NewMockLogger(t)

		router := setupAccountRouter(NewAccountHandler(mockUseCase, mockLogger))

		body := `{"email":"not-an-email","password":"s3cret!"}`
		req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Usecase failure is an opaque server error", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockAccountUseCase(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUseCase.On("Signup", mock.Anything, "a@x.com", "s3cret!").
			Return(errs.ErrDirectoryUnavailable).Once()
		mockLogger.On("Error", mock.Anything, mock.Anything).Once()

		router := setupAccountRouter(NewAccountHandler(mockUseCase, mockLogger))

		body := `{"email":"a@x.com","password":"s3cret!"}`
		req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Internal server error", resp["message"])
	})
}

func TestAccountHandlerLogin(t *testing.T) {
	t.Run("Valid credentials return the token", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockAccountUseCase(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUseCase.On("Login", mock.Anything, "a@x.com", "s3cret!").Return("id-token", nil).Once()

		router := setupAccountRouter(NewAccountHandler(mockUseCase, mockLogger))

		body := `{"email":"a@x.com","password":"s3cret!"}`
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "User was logged in successfully", resp["message"])
		assert.Equal(t, "id-token", resp["token"])
	})

	t.Run("Rejected credentials and malformed bodies look identical", func(t *testing.T) {
		tests := []struct {
			name      string
			body      string
			expectUse bool
		}{
			{name: "Wrong credentials", body: `{"email":"a@x.com","password":"wrong"}`, expectUse: true},
			{name: "Malformed body", body: `{"email":`, expectUse: false},
			{name: "Missing password", body: `{"email":"a@x.com"}`, expectUse: false},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mockUseCase := usecasemocks.NewMockAccountUseCase(t)
				mockLogger := coremocks.NewMockLogger(t)

				if tt.expectUse {
					mockUseCase.On("Login", mock.Anything, "a@x.com", "wrong").
						Return("", errs.ErrUnauthorized).Once()
				}

				router := setupAccountRouter(NewAccountHandler(mockUseCase, mockLogger))

				req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(tt.body))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)

				assert.Equal(t, http.StatusUnauthorized, w.Code)

				var resp map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "Unauthorized access", resp["message"])
			})
		}
	})
}
