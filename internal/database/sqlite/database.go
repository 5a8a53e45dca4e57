// Package sqlite implements the ledger store on a local SQLite database.
//
// It is used for local development and for tests. Production deployments
// use the dynamo package.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/kakeibo-cloud/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Store implements models.Store with gorm.
type Store struct {
	db *gorm.DB
}

var _ models.Store = (*Store)(nil)

// Connect opens the SQLite database at dsn and migrates the schema.
func Connect(dsn string) (*Store, error) {
	config := &gorm.Config{
		Logger: newLogger(log.Logger),
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(models.Item{}, models.Category{}, models.CustomerBudget{})
	if err != nil {
		return nil, fmt.Errorf("error during DB migration: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// SQLite only supports one writer, a single connection
	// prevents SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.Callback().Query().After("*").Register("ledger:after_query", queryCallback)
	if err != nil {
		return nil, err
	}

	err = db.Callback().Query().After("*").Register("ledger:after_query_general", generalCallback)
	if err != nil {
		return nil, err
	}

	err = db.Callback().Create().After("*").Register("ledger:after_create_general", generalCallback)
	if err != nil {
		return nil, err
	}

	err = db.Callback().Update().After("*").Register("ledger:after_update_general", generalCallback)
	if err != nil {
		return nil, err
	}

	err = db.Callback().Delete().After("*").Register("ledger:after_delete_general", generalCallback)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// Ping verifies the database connection.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrDatabase, err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", models.ErrDatabase, err)
	}

	return nil
}

// queryCallback marks missing records with models.ErrResourceNotFound.
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		db.Error = fmt.Errorf("%w record matching your query in %s", models.ErrResourceNotFound, db.Statement.Table)
	}
}

// generalCallback marks every other error as a database error.
//
// The original error is logged, callers only need to know that the
// store failed.
func generalCallback(db *gorm.DB) {
	if db.Error == nil || errors.Is(db.Error, gorm.ErrRecordNotFound) || errors.Is(db.Error, models.ErrResourceNotFound) || errors.Is(db.Error, models.ErrDatabase) {
		return
	}

	event := log.Error().Str("table", db.Statement.Table)

	var sqliteErr *go_sqlite.Error
	if errors.As(db.Error, &sqliteErr) {
		event = event.Int("code", sqliteErr.Code())
	}

	event.Msgf("%T: %v", db.Error, db.Error.Error())
	db.Error = fmt.Errorf("%w: %w", models.ErrDatabase, db.Error)
}
