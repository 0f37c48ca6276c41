package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/adelahmadi/fintrack/internal/domain/usecase/account"
	"github.com/adelahmadi/fintrack/internal/infrastructure/adapter/apigw"
	"github.com/adelahmadi/fintrack/internal/infrastructure/adapter/identity/cognito"
	"github.com/adelahmadi/fintrack/internal/infrastructure/adapter/logger"
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

	// Login never touches the record store; the directory is the only
	// collaborator.
	directory := cognito.NewDirectory(awsCfg, cfg.AWS.UserPoolID, cfg.AWS.ClientID, appLogger)
	accountService := account.NewService(directory, nil, timeProvider.NewRealTimeProvider(), appLogger)
	handler := apigw.NewLoginHandler(accountService, appLogger)

	lambda.Start(handler.Handle)
}
