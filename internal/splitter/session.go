// Package splitter holds the working state of one bill-splitting session.
//
// A Session replaces the separate form fields of a single-screen app with one
// struct. Each method corresponds to one user input event: the text fields
// are parsed here, so invalid input surfaces as an error instead of reaching
// the participant list.
package splitter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/storage"
)

// ErrNothingToFinalize is returned by Finalize before a split has been created.
var ErrNothingToFinalize = errors.New("no participants to finalize")

// Session is one user's working bill plus the history of finalized bills.
// It is safe for concurrent use.
type Session struct {
	id      string
	policy  calculator.Policy
	history storage.HistoryStore

	mu    sync.Mutex
	draft models.Draft
}

// New creates an empty session whose finalized bills are appended to history.
func New(id string, history storage.HistoryStore, policy calculator.Policy) *Session {
	return &Session{
		id:      id,
		policy:  policy,
		history: history,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Draft returns a copy of the working state.
func (s *Session) Draft() models.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Clone()
}

// SetAccountName sets the name the bill will be finalized under.
func (s *Session) SetAccountName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.AccountName = name
}

// SetTotal parses and stores the bill total. On error the previous total is kept.
func (s *Session) SetTotal(text string) error {
	v, err := calculator.ParseAmount(text)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.TotalValue = v
	return nil
}

// SetNumPeople parses and stores the participant count. On error the
// previous count is kept.
func (s *Session) SetNumPeople(text string) error {
	n, err := calculator.ParseCount(text)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.NumPeople = n
	return nil
}

// CreateSplit replaces the participant list with an even split of the
// current total among the current count.
func (s *Session) CreateSplit() ([]models.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	participants, err := calculator.CreateEvenSplit(s.draft.TotalValue, s.draft.NumPeople)
	if err != nil {
		return nil, err
	}
	s.draft.Participants = participants

	slog.Debug("Split created",
		"session_id", s.id,
		"total_value", s.draft.TotalValue,
		"num_people", s.draft.NumPeople,
	)
	return models.CloneParticipants(participants), nil
}

// Split sets the bill name, total and count from one form submission and
// splits the total evenly. The working state is left untouched unless both
// values parse and the split succeeds.
func (s *Session) Split(name, totalText, countText string) ([]models.Participant, error) {
	total, err := calculator.ParseAmount(totalText)
	if err != nil {
		return nil, err
	}
	n, err := calculator.ParseCount(countText)
	if err != nil {
		return nil, err
	}
	participants, err := calculator.CreateEvenSplit(total, n)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.AccountName = name
	s.draft.TotalValue = total
	s.draft.NumPeople = n
	s.draft.Participants = participants

	slog.Debug("Split created",
		"session_id", s.id,
		"total_value", total,
		"num_people", n,
	)
	return models.CloneParticipants(participants), nil
}

// FixValue parses text and fixes participant id to that value, redistributing
// the remainder among the participants that are not fixed.
func (s *Session) FixValue(id int, text string) ([]models.Participant, error) {
	v, err := calculator.ParseAmount(text)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := calculator.FixParticipantValue(s.draft.Participants, s.draft.TotalValue, id, v, s.policy)
	if err != nil {
		return nil, err
	}
	s.draft.Participants = updated

	slog.Debug("Participant value fixed",
		"session_id", s.id,
		"participant_id", id,
		"value", v,
		"policy", s.policy.String(),
	)
	return models.CloneParticipants(updated), nil
}

// Finalize appends the working bill to history and resets the working state.
// The working state is kept if the bill cannot be stored.
func (s *Session) Finalize(ctx context.Context) (*models.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.draft.Participants) == 0 {
		return nil, ErrNothingToFinalize
	}

	bill := calculator.FinalizeBill(s.draft.AccountName, s.draft.TotalValue, s.draft.Participants)
	bill.SessionID = s.id
	if err := s.history.AppendBill(ctx, &bill); err != nil {
		return nil, fmt.Errorf("failed to append bill: %w", err)
	}

	s.draft = models.Draft{}

	slog.Info("Bill finalized",
		"session_id", s.id,
		"bill_id", bill.ID,
		"total_value", bill.TotalValue,
		"participants", len(bill.Participants),
	)
	return &bill, nil
}

// History returns the session's finalized bills, oldest first.
func (s *Session) History(ctx context.Context) ([]*models.Bill, error) {
	return s.history.ListBills(ctx, s.id)
}
