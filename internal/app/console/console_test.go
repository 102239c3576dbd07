package console

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"society-service/internal/domain/models"
	"society-service/internal/domain/services/container"
	"society-service/internal/infrastructure/config"
	"society-service/internal/infrastructure/database"
)

func newTestConsole(t *testing.T, input string) (*Console, *bytes.Buffer, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "console.db")), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	services := container.NewServiceContainer(db, &config.Config{})
	out := &bytes.Buffer{}
	return New(services, strings.NewReader(input), out), out, db
}

func TestRunExit(t *testing.T) {
	console, out, _ := newTestConsole(t, "6\n")
	console.Run()
	assert.Contains(t, out.String(), "Exiting the system.")
}

func TestRegisterResidentFlow(t *testing.T) {
	input := strings.Join([]string{
		"1",     // Resident Register
		"Asha",  // Name
		"A-101", // Flat Number
		"98765", // Phone
		"34",    // Age
		"4",     // Members
		"F",     // Gender
		"Owner", // Designation
		"6",     // Exit
	}, "\n") + "\n"

	console, out, db := newTestConsole(t, input)
	console.Run()

	assert.Contains(t, out.String(), "Registered successfully!")
	assert.Contains(t, out.String(), "wait for admin approval")

	var resident models.Resident
	require.NoError(t, db.Where("flat_no = ?", "A-101").First(&resident).Error)
	assert.False(t, resident.Approved)
}

func TestRunExitsWhenInputEnds(t *testing.T) {
	console, out, _ := newTestConsole(t, "")
	console.Run()
	assert.Contains(t, out.String(), "Exiting the system.")
	assert.NotContains(t, out.String(), "Invalid option")
}

func TestRunExitsMidFormWhenInputEnds(t *testing.T) {
	// Registration form abandoned after the first field; the remaining
	// prompts must not re-ask forever.
	console, out, _ := newTestConsole(t, "1\nAsha\n")
	console.Run()
	assert.Contains(t, out.String(), "this field is required")
	assert.Contains(t, out.String(), "Exiting the system.")
}

func TestPromptUintRejectsNegative(t *testing.T) {
	console, out, _ := newTestConsole(t, "-5\n7\n")
	assert.Equal(t, uint(7), console.promptUint("Enter id: "))
	assert.Contains(t, out.String(), "non-negative")
}

func TestPromptUintZeroWhenInputEnds(t *testing.T) {
	console, _, _ := newTestConsole(t, "")
	assert.Equal(t, uint(0), console.promptUint("Enter id: "))
}

func TestResidentLoginInvalidCredentials(t *testing.T) {
	input := "2\nA-101\nbogus-token\n6\n"
	console, out, _ := newTestConsole(t, input)
	console.Run()
	assert.Contains(t, out.String(), "[authorization] invalid credentials")
}
