package apigw

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	domainerr "github.com/adelahmadi/fintrack/internal/domain/error"
)

// corsHeaders are attached to every response: any origin, credentialed
// requests allowed.
func corsHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":      "*",
		"Access-Control-Allow-Credentials": "true",
		"Content-Type":                     "application/json",
	}
}

// respond serializes a body into an API Gateway proxy response
func respond(status int, body any) events.APIGatewayProxyResponse {
	payload, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    corsHeaders(),
			Body:       `{"code":5000,"message":"Internal server error"}`,
		}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    corsHeaders(),
		Body:       string(payload),
	}
}

// errorBody is the standardized error response shape
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// internalError maps an unhandled failure to the 500 JSON shape
func internalError(err error) events.APIGatewayProxyResponse {
	return respond(http.StatusInternalServerError, errorBody{
		Code:    domainerr.ErrorCode(err),
		Message: "Internal server error",
	})
}

// unauthorized is the single response for every login failure
func unauthorized() events.APIGatewayProxyResponse {
	return respond(http.StatusUnauthorized, map[string]string{
		"message": "Unauthorized access",
	})
}
