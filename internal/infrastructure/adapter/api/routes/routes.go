package routes

import (
	coreport "github.com/adelahmadi/fintrack/internal/domain/port/core"
	"github.com/adelahmadi/fintrack/internal/infrastructure/adapter/api/handler"
	"github.com/adelahmadi/fintrack/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	accountHandler *handler.AccountHandler,
	transactionHandler *handler.TransactionHandler,
	logger coreport.Logger,
) {
	router.POST("/signup", accountHandler.Signup)
	router.POST("/login", accountHandler.Login)

	// Transactions require an authenticated caller identity
	authed := router.Group("/", middleware.Identity(logger))
	authed.POST("/transactions", transactionHandler.CreateTransaction)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
