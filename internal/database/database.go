package database

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	apperrors "spendly/internal/errors"
	"spendly/internal/logger"
	"spendly/migrations"
)

// Provider hands out a context-bound database handle. Services depend on
// this instead of a *gorm.DB so the connection can be opened lazily.
type Provider interface {
	DB(ctx context.Context) (*gorm.DB, error)
}

// Manager handles database operations. The connection is opened on the
// first call to DB, so a missing DATABASE_URL surfaces as a configuration
// error on first use rather than at process start.
type Manager struct {
	config *Config

	mu sync.Mutex
	db *gorm.DB
}

// NewManager creates a new database manager without connecting.
func NewManager(config *Config) *Manager {
	return &Manager{config: config}
}

// DB returns the GORM handle bound to ctx, connecting on first use.
// A failed connection attempt is not cached; the next call retries.
func (m *Manager) DB(ctx context.Context) (*gorm.DB, error) {
	if !m.config.Configured() {
		return nil, apperrors.ErrDatabaseNotConfigured
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		db, err := m.open()
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		m.db = db
	}
	return m.db.WithContext(ctx), nil
}

func (m *Manager) open() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  m.config.URL,
		PreferSimpleProtocol: true, // Required for pooled serverless endpoints; harmless for direct connections
	}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)

	logger.Get().Info("Connected to database")
	return db, nil
}

// RunMigrations applies pending SQL migrations embedded in the migrations package.
func (m *Manager) RunMigrations() error {
	if !m.config.Configured() {
		return apperrors.ErrDatabaseNotConfigured
	}

	logger.Get().Info("Running database migrations...")

	mig, err := NewMigrator(m.config.URL)
	if err != nil {
		return err
	}
	defer closeMigrator(mig)

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// NewMigrator builds a migrate instance reading the embedded SQL files.
func NewMigrator(databaseURL string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	mig, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return mig, nil
}

func closeMigrator(mig *migrate.Migrate) {
	srcErr, dbErr := mig.Close()
	if srcErr != nil {
		logger.Get().Warnf("migrate source close error: %v", srcErr)
	}
	if dbErr != nil {
		logger.Get().Warnf("migrate database close error: %v", dbErr)
	}
}

// Close releases the underlying connection pool, if one was opened.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		return nil
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	m.db = nil
	return sqlDB.Close()
}

// static is a Provider over an already-open handle.
type static struct {
	db *gorm.DB
}

// NewStatic wraps an open handle (for example an in-memory SQLite
// database in tests) as a Provider.
func NewStatic(db *gorm.DB) Provider {
	return &static{db: db}
}

func (s *static) DB(ctx context.Context) (*gorm.DB, error) {
	return s.db.WithContext(ctx), nil
}
