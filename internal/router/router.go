package router

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	docs "github.com/kakeibo-cloud/backend/api"
	"github.com/kakeibo-cloud/backend/internal/controllers/healthz"
	v1 "github.com/kakeibo-cloud/backend/internal/controllers/v1"
	"github.com/kakeibo-cloud/backend/internal/httputil"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time with -ldflags "-X github.com/kakeibo-cloud/backend/internal/router.version=...".
var version = "0.0.0"

var (
	errNotFound         = errors.New("Not found")
	errMethodNotAllowed = errors.New("Method not allowed")
	errInternal         = errors.New("Internal server error")
)

// Options configures the router.
type Options struct {
	// URL the API is reachable at. Used for the API documentation.
	URL *url.URL

	// Origins allowed for CORS requests, as glob patterns.
	// All origins are allowed if empty.
	AllowOrigins []string

	// Register pprof handlers at /debug/pprof
	EnablePprof bool
}

// Config creates a new gin engine with all middlewares.
//
// The returned teardown function unregisters the Prometheus metrics
// and must be called before Config is called again.
func Config(opts Options) (*gin.Engine, func(), error) {
	teardown := func() {
		if !unregisterPrometheusMetrics() {
			log.Error().Msg("Prometheus metrics could not be unregistered")
		}
	}

	if err := registerPrometheusMetrics(); err != nil {
		unregisterPrometheusMetrics()
		return nil, func() {}, err
	}

	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("panic: %v", recovered)
		httputil.NewError(c, http.StatusInternalServerError, errInternal)
	}))
	r.Use(requestid.New())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))
	r.Use(cors.New(corsConfig(opts.AllowOrigins)))
	r.Use(MetricsMiddleware())

	r.NoRoute(func(c *gin.Context) {
		httputil.NewError(c, http.StatusNotFound, errNotFound)
	})
	r.NoMethod(func(c *gin.Context) {
		httputil.NewError(c, http.StatusMethodNotAllowed, errMethodNotAllowed)
	})

	// Validation errors name the fields like the client sends them
	httputil.RegisterFieldNames()

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	if opts.EnablePprof {
		pprof.Register(r)
	}

	if opts.URL != nil {
		log.Debug().Str("API URL", opts.URL.String()).Msg("Router")
		docs.SwaggerInfo.Host = opts.URL.Host
		if opts.URL.Path != "" {
			docs.SwaggerInfo.BasePath = opts.URL.Path
		}
	}
	docs.SwaggerInfo.Version = version
	log.Info().Str("version", version).Msg("Router")

	return r, teardown, nil
}

// corsConfig allows all origins unless patterns are given.
// A single "*" pattern also allows all origins.
func corsConfig(allowOrigins []string) cors.Config {
	config := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       300 * time.Second,
	}

	if len(allowOrigins) == 0 || slices.Contains(allowOrigins, "*") {
		config.AllowAllOrigins = true
		return config
	}

	log.Debug().Strs("CORS Allowed Origins", allowOrigins).Msg("Router")
	config.AllowOriginFunc = func(origin string) bool {
		return slices.ContainsFunc(allowOrigins, func(pattern string) bool {
			return glob.Glob(pattern, origin)
		})
	}

	return config
}

// AttachRoutes attaches the API routes to the router group that is passed in.
func AttachRoutes(co v1.Controller, group *gin.RouterGroup) {
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", httputil.OptionsGet)
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	healthz.RegisterRoutes(group.Group("/healthz"), co.Store)

	api := group.Group("/api")
	api.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := api.Group("/v1")
	co.RegisterItemRoutes(apiV1.Group("/item"))
	co.RegisterCategoryRoutes(apiV1.Group("/category"))
	co.RegisterCustomerRoutes(apiV1.Group("/customer"))
}

type VersionResponse struct {
	Result VersionObject `json:"result"` // Data object for the version endpoint
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the backend
}

// GetVersion returns the API version object
//
//	@Summary		API version
//	@Description	Returns the software version of the API
//	@Tags			General
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Result: VersionObject{
			Version: version,
		},
	})
}
