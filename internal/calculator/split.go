package calculator

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/mmynk/billsplit/internal/models"
)

var (
	ErrNoParticipants      = errors.New("must have at least one participant")
	ErrParticipantNotFound = errors.New("participant not found")
)

// Policy selects how the remainder is computed when a participant's value is fixed.
type Policy int

const (
	// PolicyRemainder subtracts every fixed value from the bill total before
	// dividing among the non-fixed participants. Correct for any number of fixes.
	PolicyRemainder Policy = iota

	// PolicyOriginalTotal subtracts only the newly fixed value from the bill
	// total. This is the legacy behavior and is only correct when exactly one
	// participant is fixed per bill.
	PolicyOriginalTotal
)

func (p Policy) String() string {
	switch p {
	case PolicyRemainder:
		return "remainder"
	case PolicyOriginalTotal:
		return "original-total"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps a config value to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "remainder":
		return PolicyRemainder, nil
	case "original-total", "original":
		return PolicyOriginalTotal, nil
	default:
		return 0, fmt.Errorf("unknown redistribution policy %q", s)
	}
}

// DefaultName returns the display name for the participant at index i.
func DefaultName(i int) string {
	return fmt.Sprintf("Person %d", i+1)
}

// CreateEvenSplit divides totalValue evenly among numPeople new participants.
// Negative and zero totals are allowed.
func CreateEvenSplit(totalValue float64, numPeople int) ([]models.Participant, error) {
	if numPeople < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, numPeople)
	}
	if numPeople == 0 {
		return nil, ErrNoParticipants
	}

	share := totalValue / float64(numPeople)
	participants := make([]models.Participant, numPeople)
	for i := range participants {
		participants[i] = models.Participant{
			ID:    i,
			Name:  DefaultName(i),
			Value: share,
		}
	}
	return participants, nil
}

// FixParticipantValue sets participant id to newValue, marks it fixed, and
// divides the remainder evenly among the participants that are not fixed.
// The input slice is not modified.
//
// When every participant is fixed there is no one left to redistribute to
// and the other values are returned unchanged.
func FixParticipantValue(participants []models.Participant, totalValue float64, id int, newValue float64, policy Policy) ([]models.Participant, error) {
	if math.IsNaN(newValue) || math.IsInf(newValue, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, newValue)
	}

	_, idx, found := lo.FindIndexOf(participants, func(p models.Participant) bool {
		return p.ID == id
	})
	if !found {
		return nil, fmt.Errorf("%w: %d", ErrParticipantNotFound, id)
	}

	updated := models.CloneParticipants(participants)
	updated[idx].Value = newValue
	updated[idx].Fixed = true

	var remaining float64
	switch policy {
	case PolicyOriginalTotal:
		remaining = totalValue - newValue
	default:
		remaining = totalValue - FixedSum(updated)
	}

	open := len(updated) - FixedCount(updated)
	if open == 0 {
		return updated, nil
	}

	share := remaining / float64(open)
	for i := range updated {
		if !updated[i].Fixed {
			updated[i].Value = share
		}
	}
	return updated, nil
}

// FinalizeBill packages the working state into a Bill.
// The total is not checked against the sum of the participant values.
func FinalizeBill(accountName string, totalValue float64, participants []models.Participant) models.Bill {
	return models.Bill{
		Name:         accountName,
		TotalValue:   totalValue,
		Participants: models.CloneParticipants(participants),
	}
}

// Sum returns the sum of all participant values.
func Sum(participants []models.Participant) float64 {
	return lo.SumBy(participants, func(p models.Participant) float64 { return p.Value })
}

// FixedSum returns the sum of the fixed participant values.
func FixedSum(participants []models.Participant) float64 {
	fixed := lo.Filter(participants, func(p models.Participant, _ int) bool { return p.Fixed })
	return Sum(fixed)
}

// FixedCount returns how many participants have a fixed value.
func FixedCount(participants []models.Participant) int {
	return lo.CountBy(participants, func(p models.Participant) bool { return p.Fixed })
}
