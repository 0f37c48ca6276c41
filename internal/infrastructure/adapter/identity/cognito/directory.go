package cognito

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	errs "github.com/adelahmadi/fintrack/internal/domain/error"
	coreport "github.com/adelahmadi/fintrack/internal/domain/port/core"
	"github.com/adelahmadi/fintrack/internal/domain/port/identity"
)

// Directory implements the UserDirectory port on top of the Cognito
// admin APIs. The pool and app client references come from process
// configuration; they are fixed for the lifetime of the adapter.
type Directory struct {
	client     *cognitoidentityprovider.Client
	userPoolID string
	clientID   string
	logger     coreport.Logger
}

// NewDirectory creates a new Cognito-backed user directory
func NewDirectory(awsCfg aws.Config, userPoolID, clientID string, logger coreport.Logger) identity.UserDirectory {
	return &Directory{
		client:     cognitoidentityprovider.NewFromConfig(awsCfg),
		userPoolID: userPoolID,
		clientID:   clientID,
		logger:     logger,
	}
}

// CreateUser registers the email in the user pool with the email
// attribute pre-verified and the welcome message suppressed.
func (d *Directory) CreateUser(ctx context.Context, email string) error {
	out, err := d.client.AdminCreateUser(ctx, &cognitoidentityprovider.AdminCreateUserInput{
		UserPoolId:    aws.String(d.userPoolID),
		Username:      aws.String(email),
		MessageAction: types.MessageActionTypeSuppress,
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(email)},
			{Name: aws.String("email_verified"), Value: aws.String("true")},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrDirectoryUnavailable, err.Error())
	}

	// The password step depends on the directory having reported the
	// created user; treat a silent response as a failure.
	if out.User == nil {
		return fmt.Errorf("%w: directory did not report created user", errs.ErrDirectoryUnavailable)
	}
	return nil
}

// SetPermanentPassword assigns a permanent password to the user
func (d *Directory) SetPermanentPassword(ctx context.Context, email, password string) error {
	_, err := d.client.AdminSetUserPassword(ctx, &cognitoidentityprovider.AdminSetUserPasswordInput{
		UserPoolId: aws.String(d.userPoolID),
		Username:   aws.String(email),
		Password:   aws.String(password),
		Permanent:  true,
	})
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrDirectoryUnavailable, err.Error())
	}
	return nil
}

// Authenticate performs the admin no-SRP auth flow and returns the ID
// token. Any failure, including a response without a token, yields
// ErrUnauthorized; the caller logs and discards the detail.
func (d *Directory) Authenticate(ctx context.Context, email, password string) (string, error) {
	out, err := d.client.AdminInitiateAuth(ctx, &cognitoidentityprovider.AdminInitiateAuthInput{
		UserPoolId: aws.String(d.userPoolID),
		ClientId:   aws.String(d.clientID),
		AuthFlow:   types.AuthFlowTypeAdminNoSrpAuth,
		AuthParameters: map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s", errs.ErrUnauthorized, err.Error())
	}

	if out.AuthenticationResult == nil || out.AuthenticationResult.IdToken == nil {
		return "", fmt.Errorf("%w: no token in directory response", errs.ErrUnauthorized)
	}
	return *out.AuthenticationResult.IdToken, nil
}
