package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"society-service/internal/error/code"
)

// dateOnly strips the time-of-day component so stored dates compare by civil
// day regardless of driver timestamp precision.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// today returns the current civil date.
func today() time.Time {
	return dateOnly(time.Now())
}

// storageError wraps a driver failure; only the generic message reaches the
// operator.
func storageError(err error) error {
	return code.Wrap(code.ErrDatabase, err)
}

// isDuplicate reports whether err is a unique-constraint violation.
func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// isNotFound reports whether err is gorm's missing-record error.
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
