package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kakeibo-cloud/backend/internal/config"
	v1 "github.com/kakeibo-cloud/backend/internal/controllers/v1"
	"github.com/kakeibo-cloud/backend/internal/database/dynamo"
	"github.com/kakeibo-cloud/backend/internal/database/sqlite"
	"github.com/kakeibo-cloud/backend/internal/lambda"
	"github.com/kakeibo-cloud/backend/internal/models"
	"github.com/kakeibo-cloud/backend/internal/router"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

//	@title			Kakeibo
//	@description	Backend for the kakeibo household ledger. Manages items, categories and the monthly budget of customers.
//	@license.name	MIT
//	@BasePath		/

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(ginMode)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer closeStore()

	url, err := cfg.URL()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config(router.Options{
		URL:          url,
		AllowOrigins: cfg.AllowOrigins(),
		EnablePprof:  cfg.EnablePprof,
	})
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(v1.New(store), r.Group("/"))

	if lambda.IsLambda(os.LookupEnv) {
		log.Info().Str("driver", cfg.StorageDriver).Msg("Starting Lambda handler")
		lambda.NewHandler(r).Start()
		return
	}

	if err := serve(ctx, cfg.Addr(), r); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

// openStore connects to the configured store.
//
// The returned function releases the store.
func openStore(ctx context.Context, cfg *config.Config) (models.Store, func(), error) {
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), os.ModePerm)
		if err != nil {
			return nil, nil, err
		}

		store, err := sqlite.Connect(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}

		return store, func() {
			if err := store.Close(); err != nil {
				log.Error().Msgf("%T: %v", err, err.Error())
			}
		}, nil

	case config.DriverDynamoDB:
		client, err := dynamo.NewClient(ctx, cfg.AWSRegion, cfg.DynamoDBEndpoint)
		if err != nil {
			return nil, nil, err
		}

		return dynamo.NewStore(client, dynamo.Tables{
			Items:      cfg.TableName,
			Categories: cfg.CategoryTableName,
			Customers:  cfg.CustomerTableName,
		}), func() {}, nil
	}

	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

// serve runs the HTTP server until ctx is cancelled.
func serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info().Str("address", addr).Msg("Starting HTTP server")
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
