package services

import (
	"strings"

	"gorm.io/gorm"

	"society-service/internal/domain/models"
	"society-service/internal/error/code"
	"society-service/internal/infrastructure/config"
)

// PollSummary is the admin-facing tally view of one poll.
type PollSummary struct {
	PollID     uint
	Question   string
	Status     string
	Options    []string
	Tally      map[string]int64
	TotalVotes int64
}

// InterfacePollService defines the poll service interface
type InterfacePollService interface {
	Create(question string, options []string) (*models.Poll, error)
	ListOpen() ([]models.Poll, error)
	GetOpen(pollID uint) (*models.Poll, error)
	HasVoted(flatNo string, pollID uint) (bool, error)
	Vote(flatNo string, pollID uint, choice int) error
	Close(pollID uint) error
	Summaries() ([]PollSummary, error)
	DeleteAll() error
}

// PollService implements poll management and the voting engine. The vote row
// and the tally counter always move together in one transaction, and the
// (flat_no, poll_id) unique index enforces single-vote at the storage layer.
type PollService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPollService creates a new poll service
func NewPollService(db *gorm.DB, cfg *config.Config) InterfacePollService {
	return &PollService{
		DB:     db,
		Config: cfg,
	}
}

// Create opens a poll with at least two non-empty options
func (s *PollService) Create(question string, options []string) (*models.Poll, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, code.New(code.ErrEmptyField)
	}

	var cleaned []string
	for _, o := range options {
		if o = strings.TrimSpace(o); o != "" {
			cleaned = append(cleaned, o)
		}
	}
	if len(cleaned) < 2 {
		return nil, code.New(code.ErrTooFewOptions)
	}

	poll := &models.Poll{
		Question: question,
		Status:   models.PollStatusOpen,
	}
	for i, label := range cleaned {
		poll.Options = append(poll.Options, models.PollOption{
			OptionIndex: i + 1,
			Label:       label,
		})
	}
	if err := s.DB.Create(poll).Error; err != nil {
		return nil, storageError(err)
	}
	return poll, nil
}

// ListOpen returns all open polls with their options
func (s *PollService) ListOpen() ([]models.Poll, error) {
	var polls []models.Poll
	err := s.DB.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("option_index")
	}).Where("status = ?", models.PollStatusOpen).Find(&polls).Error
	if err != nil {
		return nil, storageError(err)
	}
	return polls, nil
}

// GetOpen fetches one open poll by id
func (s *PollService) GetOpen(pollID uint) (*models.Poll, error) {
	var poll models.Poll
	err := s.DB.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("option_index")
	}).First(&poll, pollID).Error
	if err != nil {
		if isNotFound(err) {
			return nil, code.New(code.ErrPollNotFound)
		}
		return nil, storageError(err)
	}
	if poll.Status != models.PollStatusOpen {
		return nil, code.New(code.ErrPollClosed)
	}
	return &poll, nil
}

// HasVoted reports whether a flat already voted in a poll
func (s *PollService) HasVoted(flatNo string, pollID uint) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Vote{}).
		Where("flat_no = ? AND poll_id = ?", flatNo, pollID).
		Count(&count).Error
	if err != nil {
		return false, storageError(err)
	}
	return count > 0, nil
}

// Vote records a flat's choice. The vote row insert and the counter bump
// share one transaction: a duplicate vote aborts before the tally moves, and
// a failed tally update rolls the vote row back. choice is 1-based.
func (s *PollService) Vote(flatNo string, pollID uint, choice int) error {
	if strings.TrimSpace(flatNo) == "" {
		return code.New(code.ErrEmptyField)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var poll models.Poll
		if err := tx.First(&poll, pollID).Error; err != nil {
			if isNotFound(err) {
				return code.New(code.ErrPollNotFound)
			}
			return storageError(err)
		}
		if poll.Status != models.PollStatusOpen {
			return code.New(code.ErrPollClosed)
		}

		// The unique index is the real guard: two concurrent votes from the
		// same flat cannot both insert.
		vote := &models.Vote{FlatNo: flatNo, PollID: pollID}
		if err := tx.Create(vote).Error; err != nil {
			if isDuplicate(err) {
				return code.Wrap(code.ErrAlreadyVoted, err)
			}
			return storageError(err)
		}

		result := tx.Model(&models.PollOption{}).
			Where("poll_id = ? AND option_index = ?", pollID, choice).
			Update("votes", gorm.Expr("votes + ?", 1))
		if result.Error != nil {
			return storageError(result.Error)
		}
		if result.RowsAffected == 0 {
			return code.New(code.ErrChoiceOutOfRange)
		}
		return nil
	})
}

// Close transitions a poll from open to closed
func (s *PollService) Close(pollID uint) error {
	result := s.DB.Model(&models.Poll{}).
		Where("id = ? AND status = ?", pollID, models.PollStatusOpen).
		Update("status", models.PollStatusClosed)
	if result.Error != nil {
		return storageError(result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := s.DB.Model(&models.Poll{}).Where("id = ?", pollID).Count(&count).Error; err != nil {
			return storageError(err)
		}
		if count == 0 {
			return code.New(code.ErrPollNotFound)
		}
		return code.New(code.ErrPollClosed)
	}
	return nil
}

// Summaries returns the tally view of every poll
func (s *PollService) Summaries() ([]PollSummary, error) {
	var polls []models.Poll
	err := s.DB.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("option_index")
	}).Find(&polls).Error
	if err != nil {
		return nil, storageError(err)
	}

	summaries := make([]PollSummary, 0, len(polls))
	for _, poll := range polls {
		summary := PollSummary{
			PollID:   poll.ID,
			Question: poll.Question,
			Status:   poll.Status,
			Tally:    make(map[string]int64, len(poll.Options)),
		}
		for _, opt := range poll.Options {
			summary.Options = append(summary.Options, opt.Label)
			summary.Tally[opt.Label] = opt.Votes
			summary.TotalVotes += opt.Votes
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// DeleteAll removes every poll with its options and votes
func (s *PollService) DeleteAll() error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&models.Vote{}, &models.PollOption{}, &models.Poll{}} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return storageError(err)
			}
		}
		return nil
	})
}
