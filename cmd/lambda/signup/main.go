package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/adelahmadi/fintrack/internal/domain/usecase/account"
	"github.com/adelahmadi/fintrack/internal/infrastructure/adapter/apigw"
	"github.com/adelahmadi/fintrack/internal/infrastructure/adapter/identity/cognito"
	"github.com/adelahmadi/fintrack/internal/infrastructure/adapter/logger"
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

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		log.Fatalf("Failed to load AWS configuration: %v", err)
	}

	tp := timeProvider.NewRealTimeProvider()
	directory := cognito.NewDirectory(awsCfg, cfg.AWS.UserPoolID, cfg.AWS.ClientID, appLogger)
	summaryRepo := dynamo.NewSummaryRepository(dynamodb.NewFromConfig(awsCfg), cfg.Store.SummaryTable, appLogger)

	accountService := account.NewService(directory, summaryRepo, tp, appLogger)
	handler := apigw.NewSignupHandler(accountService, appLogger)

	lambda.Start(handler.Handle)
}
