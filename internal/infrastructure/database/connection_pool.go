package database

import (
	"context"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"society-service/internal/infrastructure/config"
	Logger "society-service/pkg/logger"
)

// ConnectionPool manages the database connection pool
type ConnectionPool struct {
	DB              *gorm.DB
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// NewConnectionPool opens the database and configures the pool
func NewConnectionPool(cfg *config.Config) (*ConnectionPool, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	pool := &ConnectionPool{
		DB:              db,
		MaxIdleConns:    10,
		MaxOpenConns:    100,
		ConnMaxLifetime: 1 * time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}

	if err := pool.ConfigurePool(); err != nil {
		return nil, err
	}

	return pool, nil
}

// ConfigurePool applies the pool parameters and verifies connectivity
func (p *ConnectionPool) ConfigurePool() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(p.MaxIdleConns)
	sqlDB.SetMaxOpenConns(p.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(p.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(p.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return err
	}

	Logger.Info("database pool configured: max idle=%d, max open=%d", p.MaxIdleConns, p.MaxOpenConns)
	return nil
}

// Stats returns connection pool statistics
func (p *ConnectionPool) Stats() (map[string]interface{}, error) {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return nil, err
	}

	stats := sqlDB.Stats()
	return map[string]interface{}{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration":        stats.WaitDuration.String(),
		"max_idle_closed":      stats.MaxIdleClosed,
		"max_lifetime_closed":  stats.MaxLifetimeClosed,
	}, nil
}

// Close closes the underlying connection pool
func (p *ConnectionPool) Close() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// WithTransaction runs fn inside a single transaction; the writes commit or
// roll back as a unit
func (p *ConnectionPool) WithTransaction(fn func(tx *gorm.DB) error) error {
	return p.DB.Transaction(fn)
}

// HealthCheck pings the database
func (p *ConnectionPool) HealthCheck() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// GetDB returns the GORM database handle
func (p *ConnectionPool) GetDB() *gorm.DB {
	return p.DB
}
