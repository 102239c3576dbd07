package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"society-service/internal/domain/models"
	"society-service/internal/error/code"
)

func TestBookRejectsPastDate(t *testing.T) {
	db := newTestDB(t)
	session := newApprovedResident(t, db, "A-101")
	bookings := NewBookingService(db, testConfig())

	_, err := bookings.Book(session, "Gym", time.Now().AddDate(0, 0, -1), "18:00")
	assert.True(t, code.HasCode(err, code.ErrBookingDateInPast))
	assert.Equal(t, code.KindValidation, code.KindOf(err))

	var count int64
	require.NoError(t, db.Model(&models.AmenityBooking{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestBookTodayAndFuture(t *testing.T) {
	db := newTestDB(t)
	session := newApprovedResident(t, db, "A-101")
	bookings := NewBookingService(db, testConfig())

	// Today is allowed for bookings, unlike delivery skips
	todayBooking, err := bookings.Book(session, "Clubhouse", time.Now(), "10:00")
	require.NoError(t, err)
	assert.NotZero(t, todayBooking.ID)
	assert.Equal(t, models.BookingStatusPending, todayBooking.Status)

	_, err = bookings.Book(session, "Tennis Court", time.Now().AddDate(0, 0, 7), "07:00")
	require.NoError(t, err)

	mine, err := bookings.ListByResident(session.ResidentID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestBookUnknownAmenity(t *testing.T) {
	db := newTestDB(t)
	session := newApprovedResident(t, db, "A-101")
	bookings := NewBookingService(db, testConfig())

	_, err := bookings.Book(session, "Helipad", time.Now(), "12:00")
	assert.True(t, code.HasCode(err, code.ErrUnknownAmenity))
}

func TestDecideBookingIsOneShot(t *testing.T) {
	db := newTestDB(t)
	session := newApprovedResident(t, db, "A-101")
	bookings := NewBookingService(db, testConfig())

	booking, err := bookings.Book(session, "Gym", time.Now().AddDate(0, 0, 2), "18:00")
	require.NoError(t, err)

	require.NoError(t, bookings.Decide(booking.ID, true))

	var decided models.AmenityBooking
	require.NoError(t, db.First(&decided, booking.ID).Error)
	assert.Equal(t, models.BookingStatusApproved, decided.Status)

	// Re-deciding is a conflict and leaves the status untouched
	err = bookings.Decide(booking.ID, false)
	assert.True(t, code.HasCode(err, code.ErrBookingAlreadyDecided))
	assert.Equal(t, code.KindConflict, code.KindOf(err))

	require.NoError(t, db.First(&decided, booking.ID).Error)
	assert.Equal(t, models.BookingStatusApproved, decided.Status)

	assert.True(t, code.HasCode(bookings.Decide(999, true), code.ErrBookingNotFound))
}

func TestPendingListShrinksAfterDecision(t *testing.T) {
	db := newTestDB(t)
	session := newApprovedResident(t, db, "A-101")
	bookings := NewBookingService(db, testConfig())

	first, err := bookings.Book(session, "Gym", time.Now().AddDate(0, 0, 1), "08:00")
	require.NoError(t, err)
	_, err = bookings.Book(session, "Clubhouse", time.Now().AddDate(0, 0, 1), "19:00")
	require.NoError(t, err)

	pending, err := bookings.ListPending()
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	require.NoError(t, bookings.Decide(first.ID, false))

	pending, err = bookings.ListPending()
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}
