package database

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"society-service/internal/domain/models"
	"society-service/internal/infrastructure/config"
)

func newTestPool(t *testing.T) *ConnectionPool {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "pool.db")), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return &ConnectionPool{DB: db}
}

func TestWithTransactionCommits(t *testing.T) {
	pool := newTestPool(t)

	err := pool.WithTransaction(func(tx *gorm.DB) error {
		return tx.Create(&models.Announcement{Message: "water outage on Sunday"}).Error
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, pool.GetDB().Model(&models.Announcement{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestWithTransactionRollsBack(t *testing.T) {
	pool := newTestPool(t)
	sentinel := errors.New("abort seeding")

	err := pool.WithTransaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Announcement{Message: "half-done"}).Error; err != nil {
			return err
		}
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	var count int64
	require.NoError(t, pool.GetDB().Model(&models.Announcement{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSeedAdminInsideTransaction(t *testing.T) {
	pool := newTestPool(t)
	cfg := &config.Config{DefaultAdminPassword: "admin123"}

	require.NoError(t, pool.WithTransaction(func(tx *gorm.DB) error {
		return SeedAdmin(tx, cfg)
	}))

	var admin models.Admin
	require.NoError(t, pool.GetDB().Where("username = ?", "admin").First(&admin).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))
}

func TestHealthCheckAndStats(t *testing.T) {
	pool := newTestPool(t)

	assert.NoError(t, pool.HealthCheck())

	stats, err := pool.Stats()
	require.NoError(t, err)
	assert.Contains(t, stats, "open_connections")
	assert.Contains(t, stats, "idle")
}
