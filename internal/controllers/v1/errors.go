package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/kakeibo-cloud/backend/internal/httputil"
	"github.com/kakeibo-cloud/backend/internal/models"
	"github.com/rs/zerolog/log"
)

var (
	errDatabase = errors.New("Database error")
	errInternal = errors.New("Internal server error")

	errItemNotFound     = notFoundError{"No item matching your query"}
	errCategoryNotFound = notFoundError{"No category matching your query"}
)

// notFoundError replaces the message of models.ErrResourceNotFound
// with one for the client.
type notFoundError struct {
	message string
}

func (e notFoundError) Error() string {
	return e.message
}

func (e notFoundError) Unwrap() error {
	return models.ErrResourceNotFound
}

func errBudgetNotFound(customerID string) error {
	return notFoundError{fmt.Sprintf("No budget registered for customer: %s", customerID)}
}

// status returns the HTTP status for an error.
func status(err error) int {
	var validationError httputil.ValidationError
	if errors.As(err, &validationError) {
		return http.StatusBadRequest
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrDatabase) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

// writeError sends the error response for err.
//
// Store and unexpected errors are logged, the client only
// receives a generic message for them.
func writeError(c *gin.Context, err error) {
	code := status(err)

	switch code {
	case http.StatusBadRequest:
		log.Warn().Str("request-id", requestid.Get(c)).Str("path", c.Request.URL.Path).Msg(err.Error())
	case http.StatusNotFound:
		log.Info().Str("request-id", requestid.Get(c)).Msg(err.Error())
	case http.StatusBadGateway:
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		err = errDatabase
	default:
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		err = errInternal
	}

	httputil.NewError(c, code, err)
}
