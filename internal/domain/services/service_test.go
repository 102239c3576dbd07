package services

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"society-service/internal/infrastructure/config"
	"society-service/internal/infrastructure/database"
)

// newTestDB opens a throwaway sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "society.db")), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{DefaultAdminPassword: "admin123"}
}

// newApprovedResident registers and approves a resident, returning the
// logged-in session.
func newApprovedResident(t *testing.T, db *gorm.DB, flatNo string) *Session {
	t.Helper()

	auth := NewAuthService(db, testConfig())
	resident, err := auth.RegisterResident(RegisterResidentInput{
		Name:            "Resident " + flatNo,
		FlatNo:          flatNo,
		Phone:           "555-" + flatNo,
		Age:             35,
		NumberOfMembers: 3,
		Gender:          "F",
		Designation:     "Owner",
	})
	require.NoError(t, err)

	require.NoError(t, NewResidentService(db, testConfig()).ApproveByResidentID(resident.ResidentID))

	session, err := auth.LoginResident(flatNo, resident.ResidentID)
	require.NoError(t, err)
	return session
}
