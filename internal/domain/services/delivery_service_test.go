package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"society-service/internal/domain/models"
	"society-service/internal/error/code"
)

func TestSkipDeliveryRejectsTodayBoundary(t *testing.T) {
	db := newTestDB(t)
	session := newApprovedResident(t, db, "A-101")
	deliveries := NewDeliveryService(db, testConfig())

	// Exactly today is not future
	_, err := deliveries.SkipDelivery(session, "A-101", "milk", time.Now())
	assert.True(t, code.HasCode(err, code.ErrSkipDateNotFuture))
	assert.Equal(t, code.KindValidation, code.KindOf(err))

	_, err = deliveries.SkipDelivery(session, "A-101", "milk", time.Now().AddDate(0, 0, -1))
	assert.True(t, code.HasCode(err, code.ErrSkipDateNotFuture))

	var count int64
	require.NoError(t, db.Model(&models.SkipDelivery{}).Count(&count).Error)
	assert.Zero(t, count)

	_, err = deliveries.SkipDelivery(session, "A-101", "milk", time.Now().AddDate(0, 0, 1))
	require.NoError(t, err)
}

func TestSkipDeliveryFlatMismatch(t *testing.T) {
	db := newTestDB(t)
	session := newApprovedResident(t, db, "A-101")
	deliveries := NewDeliveryService(db, testConfig())

	_, err := deliveries.SkipDelivery(session, "B-202", "milk", time.Now().AddDate(0, 0, 1))
	assert.True(t, code.HasCode(err, code.ErrFlatMismatch))
	assert.Equal(t, code.KindAuthorization, code.KindOf(err))
}

func TestDeliveryRosterExcludesSkippedFlats(t *testing.T) {
	db := newTestDB(t)
	first := newApprovedResident(t, db, "A-101")
	_ = newApprovedResident(t, db, "B-202")
	deliveries := NewDeliveryService(db, testConfig())

	tomorrow := time.Now().AddDate(0, 0, 1)
	_, err := deliveries.SkipDelivery(first, "A-101", "milk", tomorrow)
	require.NoError(t, err)

	flats, err := deliveries.SkipsOn(tomorrow, "milk")
	require.NoError(t, err)
	assert.Equal(t, []string{"A-101"}, flats)

	roster, err := deliveries.DeliveryRoster(tomorrow, "milk")
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "B-202", roster[0].FlatNo)

	// The skip is item-scoped: newspaper deliveries still include the flat
	roster, err = deliveries.DeliveryRoster(tomorrow, "newspaper")
	require.NoError(t, err)
	assert.Len(t, roster, 2)
}

func TestRosterOnlyIncludesApprovedResidents(t *testing.T) {
	db := newTestDB(t)
	_ = newApprovedResident(t, db, "A-101")

	auth := NewAuthService(db, testConfig())
	_, err := auth.RegisterResident(RegisterResidentInput{
		Name: "Pending", FlatNo: "C-303", Phone: "555-0000",
	})
	require.NoError(t, err)

	deliveries := NewDeliveryService(db, testConfig())
	roster, err := deliveries.DeliveryRoster(time.Now(), "milk")
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "A-101", roster[0].FlatNo)
}
