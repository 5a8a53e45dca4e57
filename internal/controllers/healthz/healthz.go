package healthz

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/kakeibo-cloud/backend/internal/httputil"
	"github.com/rs/zerolog/log"
)

var errUnhealthy = errors.New("Database error")

// Pinger is implemented by all stores.
type Pinger interface {
	Ping(ctx context.Context) error
}

func RegisterRoutes(r *gin.RouterGroup, store Pinger) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", Get(store))
}

// Get returns a handler reporting the application health
//
//	@Summary		Get health
//	@Description	Returns the application health and, if not healthy, an error
//	@Tags			General
//	@Produce		json
//	@Success		204
//	@Failure		502	{object}	httputil.HTTPError
//	@Router			/healthz [get]
func Get(store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Ping(c.Request.Context()); err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
			httputil.NewError(c, http.StatusBadGateway, errUnhealthy)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
