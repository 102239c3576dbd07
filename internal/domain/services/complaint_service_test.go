package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"society-service/internal/domain/models"
	"society-service/internal/error/code"
)

func TestRaiseComplaintTodayStoredPending(t *testing.T) {
	db := newTestDB(t)
	session := newApprovedResident(t, db, "A-101")
	complaints := NewComplaintService(db, testConfig())

	complaint, err := complaints.Raise(session, "A-101", "plumbing", "leaking tap", time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintStatusPending, complaint.Status)

	listed, err := complaints.ListByFlat("A-101")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "plumbing", listed[0].Category)
}

func TestRaiseComplaintRejectsNonTodayDate(t *testing.T) {
	db := newTestDB(t)
	session := newApprovedResident(t, db, "A-101")
	complaints := NewComplaintService(db, testConfig())

	for _, date := range []time.Time{
		time.Now().AddDate(0, 0, -1),
		time.Now().AddDate(0, 0, 1),
	} {
		_, err := complaints.Raise(session, "A-101", "noise", "loud music", date)
		assert.True(t, code.HasCode(err, code.ErrComplaintDateNotToday))
		assert.Equal(t, code.KindValidation, code.KindOf(err))
	}

	var count int64
	require.NoError(t, db.Model(&models.Complaint{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRaiseComplaintFlatMismatch(t *testing.T) {
	db := newTestDB(t)
	session := newApprovedResident(t, db, "A-101")
	complaints := NewComplaintService(db, testConfig())

	_, err := complaints.Raise(session, "B-202", "noise", "loud music", time.Now())
	assert.True(t, code.HasCode(err, code.ErrFlatMismatch))
	assert.Equal(t, code.KindAuthorization, code.KindOf(err))

	var count int64
	require.NoError(t, db.Model(&models.Complaint{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAssignComplaintCreatesTaskAndFlipsStatus(t *testing.T) {
	db := newTestDB(t)
	session := newApprovedResident(t, db, "A-101")
	complaints := NewComplaintService(db, testConfig())

	complaint, err := complaints.Raise(session, "A-101", "electrical", "broken light", time.Now())
	require.NoError(t, err)

	due := time.Now().AddDate(0, 0, 3)
	task, err := complaints.Assign(complaint.ID, "maintenance1", due)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusPending, task.Status)
	assert.Equal(t, "A-101", task.FlatNo)
	assert.Equal(t, "broken light", task.Issue)
	require.NotNil(t, task.SourceComplaintID)
	assert.Equal(t, complaint.ID, *task.SourceComplaintID)

	var updated models.Complaint
	require.NoError(t, db.First(&updated, complaint.ID).Error)
	assert.Equal(t, models.ComplaintStatusAssigned, updated.Status)

	// Re-assigning a non-pending complaint is a conflict and creates no task
	_, err = complaints.Assign(complaint.ID, "maintenance2", due)
	assert.True(t, code.HasCode(err, code.ErrComplaintNotPending))

	var taskCount int64
	require.NoError(t, db.Model(&models.MaintenanceTask{}).Count(&taskCount).Error)
	assert.EqualValues(t, 1, taskCount)
}

func TestAssignComplaintRollsBackOnFailure(t *testing.T) {
	db := newTestDB(t)
	session := newApprovedResident(t, db, "A-101")
	complaints := NewComplaintService(db, testConfig())

	complaint, err := complaints.Raise(session, "A-101", "plumbing", "no water", time.Now())
	require.NoError(t, err)

	// Force the task insert to fail mid-transaction
	require.NoError(t, db.Migrator().DropTable(&models.MaintenanceTask{}))

	_, err = complaints.Assign(complaint.ID, "maintenance1", time.Now().AddDate(0, 0, 1))
	require.Error(t, err)

	// The status flip rolled back with the failed insert
	var after models.Complaint
	require.NoError(t, db.First(&after, complaint.ID).Error)
	assert.Equal(t, models.ComplaintStatusPending, after.Status)
}

func TestAssignUnknownComplaint(t *testing.T) {
	db := newTestDB(t)
	complaints := NewComplaintService(db, testConfig())

	_, err := complaints.Assign(999, "maintenance1", time.Now())
	assert.True(t, code.HasCode(err, code.ErrComplaintNotFound))
	assert.Equal(t, code.KindNotFound, code.KindOf(err))
}

func TestUpdateComplaintStatus(t *testing.T) {
	db := newTestDB(t)
	session := newApprovedResident(t, db, "A-101")
	complaints := NewComplaintService(db, testConfig())

	complaint, err := complaints.Raise(session, "A-101", "noise", "construction", time.Now())
	require.NoError(t, err)

	assert.True(t, code.HasCode(complaints.UpdateStatus(complaint.ID, "Done"), code.ErrInvalidComplaintStatus))
	require.NoError(t, complaints.UpdateStatus(complaint.ID, models.ComplaintStatusResolved))

	updated, err := complaints.UpdateStatusByFlatAndDate("A-101", time.Now(), models.ComplaintStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintStatusInProgress, updated.Status)

	_, err = complaints.UpdateStatusByFlatAndDate("Z-9", time.Now(), models.ComplaintStatusResolved)
	assert.True(t, code.HasCode(err, code.ErrComplaintNotFound))
}
