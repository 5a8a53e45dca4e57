// Package lambda serves the router for API Gateway REST proxy events.
package lambda

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Handler converts API Gateway events to requests against a gin engine.
type Handler struct {
	adapter *ginadapter.GinLambda
}

// NewHandler creates a new Handler for the engine.
func NewHandler(r *gin.Engine) *Handler {
	return &Handler{
		adapter: ginadapter.New(r),
	}
}

// Handle processes a single API Gateway event.
//
// Errors during the conversion of the event are answered with a
// 500 response instead of failing the invocation.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger := log.With().Str("correlation-id", req.RequestContext.RequestID).Logger()
	logger.Debug().Str("method", req.HTTPMethod).Str("path", req.Path).Msg("event received")

	ctx = logger.WithContext(ctx)

	resp, err := h.adapter.ProxyWithContext(ctx, req)
	if err != nil {
		logger.Error().Msgf("%T: %v", err, err.Error())
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"message":"Internal server error"}`,
		}, nil
	}

	return resp, nil
}

// Start runs the Lambda runtime loop. It does not return.
func (h *Handler) Start() {
	lambda.Start(h.Handle)
}

// IsLambda reports whether the process runs inside AWS Lambda.
func IsLambda(lookupEnv func(string) (string, bool)) bool {
	_, ok := lookupEnv("AWS_LAMBDA_FUNCTION_NAME")
	return ok
}
