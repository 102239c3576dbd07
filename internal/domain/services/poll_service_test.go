package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"society-service/internal/domain/models"
	"society-service/internal/error/code"
)

func TestCreatePollNeedsTwoOptions(t *testing.T) {
	db := newTestDB(t)
	polls := NewPollService(db, testConfig())

	_, err := polls.Create("Paint the lobby?", []string{"Yes", "  ", ""})
	assert.True(t, code.HasCode(err, code.ErrTooFewOptions))

	poll, err := polls.Create("Paint the lobby?", []string{"Yes", "No"})
	require.NoError(t, err)
	assert.Equal(t, models.PollStatusOpen, poll.Status)
	require.Len(t, poll.Options, 2)
	assert.Equal(t, 1, poll.Options[0].OptionIndex)
}

func TestVoteTallyMatchesVoteCount(t *testing.T) {
	db := newTestDB(t)
	polls := NewPollService(db, testConfig())

	poll, err := polls.Create("New gym equipment?", []string{"Treadmill", "Weights", "Neither"})
	require.NoError(t, err)

	const voters = 5
	for i := 0; i < voters; i++ {
		flat := fmt.Sprintf("A-%d", 100+i)
		require.NoError(t, polls.Vote(flat, poll.ID, i%3+1))
	}

	var voteRows int64
	require.NoError(t, db.Model(&models.Vote{}).Where("poll_id = ?", poll.ID).Count(&voteRows).Error)
	assert.EqualValues(t, voters, voteRows)

	summaries, err := polls.Summaries()
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.EqualValues(t, voters, summaries[0].TotalVotes)
}

func TestDuplicateVoteRejectedWithoutDrift(t *testing.T) {
	db := newTestDB(t)
	polls := NewPollService(db, testConfig())

	poll, err := polls.Create("Close the pool in winter?", []string{"Yes", "No"})
	require.NoError(t, err)

	require.NoError(t, polls.Vote("A-101", poll.ID, 1))

	// Second vote from the same flat hits the unique index, even with a
	// different choice
	err = polls.Vote("A-101", poll.ID, 2)
	assert.True(t, code.HasCode(err, code.ErrAlreadyVoted))
	assert.Equal(t, code.KindConflict, code.KindOf(err))

	var voteRows int64
	require.NoError(t, db.Model(&models.Vote{}).Where("poll_id = ?", poll.ID).Count(&voteRows).Error)
	assert.EqualValues(t, 1, voteRows)

	summaries, err := polls.Summaries()
	require.NoError(t, err)
	assert.EqualValues(t, 1, summaries[0].TotalVotes)

	voted, err := polls.HasVoted("A-101", poll.ID)
	require.NoError(t, err)
	assert.True(t, voted)
}

func TestVoteChoiceOutOfRangeRollsBack(t *testing.T) {
	db := newTestDB(t)
	polls := NewPollService(db, testConfig())

	poll, err := polls.Create("Repaint the gate?", []string{"Yes", "No"})
	require.NoError(t, err)

	for _, choice := range []int{0, 3, -1} {
		err := polls.Vote("B-202", poll.ID, choice)
		assert.True(t, code.HasCode(err, code.ErrChoiceOutOfRange))
	}

	// The vote row inserted before the failed tally update must not survive
	var voteRows int64
	require.NoError(t, db.Model(&models.Vote{}).Count(&voteRows).Error)
	assert.Zero(t, voteRows)

	// A valid retry from the same flat still works
	require.NoError(t, polls.Vote("B-202", poll.ID, 2))
}

func TestVoteClosedOrMissingPoll(t *testing.T) {
	db := newTestDB(t)
	polls := NewPollService(db, testConfig())

	poll, err := polls.Create("Hire a second guard?", []string{"Yes", "No"})
	require.NoError(t, err)
	require.NoError(t, polls.Close(poll.ID))

	assert.True(t, code.HasCode(polls.Vote("A-101", poll.ID, 1), code.ErrPollClosed))
	assert.True(t, code.HasCode(polls.Vote("A-101", 999, 1), code.ErrPollNotFound))

	// Closing twice is a conflict; closing an unknown poll is not found
	assert.True(t, code.HasCode(polls.Close(poll.ID), code.ErrPollClosed))
	assert.True(t, code.HasCode(polls.Close(999), code.ErrPollNotFound))

	_, err = polls.GetOpen(poll.ID)
	assert.True(t, code.HasCode(err, code.ErrPollClosed))
}

func TestListOpenAndDeleteAll(t *testing.T) {
	db := newTestDB(t)
	polls := NewPollService(db, testConfig())

	first, err := polls.Create("Poll one?", []string{"A", "B"})
	require.NoError(t, err)
	_, err = polls.Create("Poll two?", []string{"C", "D"})
	require.NoError(t, err)

	open, err := polls.ListOpen()
	require.NoError(t, err)
	assert.Len(t, open, 2)

	require.NoError(t, polls.Vote("A-101", first.ID, 1))
	require.NoError(t, polls.DeleteAll())

	for _, model := range []interface{}{&models.Poll{}, &models.PollOption{}, &models.Vote{}} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count)
	}
}
