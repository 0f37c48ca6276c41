package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"

	coreport "github.com/adelahmadi/fintrack/internal/domain/port/core"
	"github.com/adelahmadi/fintrack/internal/domain/port/persistence"
	"github.com/adelahmadi/fintrack/internal/domain/usecase/account"
	"github.com/adelahmadi/fintrack/internal/domain/usecase/ledger"
	"github.com/adelahmadi/fintrack/internal/domain/usecase/transaction"
	"github.com/adelahmadi/fintrack/internal/infrastructure/adapter/api/handler"
	"github.com/adelahmadi/fintrack/internal/infrastructure/adapter/api/routes"
	"github.com/adelahmadi/fintrack/internal/infrastructure/adapter/identity/cognito"
	"github.com/adelahmadi/fintrack/internal/infrastructure/adapter/idgen"
	"github.com/adelahmadi/fintrack/internal/infrastructure/adapter/logger"
	"github.com/adelahmadi/fintrack/internal/infrastructure/adapter/store/docstore"
	"github.com/adelahmadi/fintrack/internal/infrastructure/adapter/store/dynamo"
	timeProvider "github.com/adelahmadi/fintrack/internal/infrastructure/adapter/time"
	"github.com/adelahmadi/fintrack/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	summaryRepo, transactionRepo, err := buildRepositories(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize record store", map[string]any{
			"driver": cfg.Store.Driver,
			"error":  err.Error(),
		})
		os.Exit(1)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		appLogger.Error("Failed to load AWS configuration", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	directory := cognito.NewDirectory(awsCfg, cfg.AWS.UserPoolID, cfg.AWS.ClientID, appLogger)

	accountService := account.NewService(directory, summaryRepo, tp, appLogger)
	ledgerUpdater := ledger.NewUpdater(summaryRepo, tp, appLogger)
	recorder := transaction.NewRecorder(transactionRepo, ledgerUpdater, idgen.NewXIDGenerator(), tp, appLogger)

	accountHandler := handler.NewAccountHandler(accountService, appLogger)
	transactionHandler := handler.NewTransactionHandler(recorder, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, accountHandler, transactionHandler, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port":  cfg.Server.Port,
			"env":   cfg.Environment,
			"store": cfg.Store.Driver,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// buildRepositories wires the record store selected by configuration:
// the managed DynamoDB tables or a self-hosted postgres database.
func buildRepositories(cfg *config.Config, appLogger coreport.Logger) (persistence.SummaryRepository, persistence.TransactionRepository, error) {
	switch cfg.Store.Driver {
	case "postgres":
		db, err := docstore.Connect(&cfg.Store.Postgres, appLogger)
		if err != nil {
			return nil, nil, err
		}
		return docstore.NewSummaryRepository(db, appLogger), docstore.NewTransactionRepository(db, appLogger), nil

	default:
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.AWS.Region))
		if err != nil {
			return nil, nil, err
		}
		client := dynamodb.NewFromConfig(awsCfg)
		return dynamo.NewSummaryRepository(client, cfg.Store.SummaryTable, appLogger),
			dynamo.NewTransactionRepository(client, cfg.Store.TransactionTable, appLogger), nil
	}
}
