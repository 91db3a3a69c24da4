package models

// Participant represents one person's share of a bill.
type Participant struct {
	// ID is unique within a bill and assigned sequentially from 0.
	ID int

	// Name is the display name (e.g., "Person 1").
	Name string

	// Value is the amount this person owes.
	Value float64

	// Fixed marks a value that was set by hand.
	// Redistribution never overwrites a fixed value.
	Fixed bool
}

// Draft is the working state of the bill being split in a session.
// The zero value is the initial empty state.
type Draft struct {
	// AccountName is the user-provided name for the bill (e.g., "Dinner").
	AccountName string

	// TotalValue is the amount to split.
	TotalValue float64

	// NumPeople is how many participants CreateSplit will produce.
	NumPeople int

	// Participants is empty until the split is created.
	Participants []Participant
}

// Clone returns a deep copy of the draft.
func (d Draft) Clone() Draft {
	d.Participants = CloneParticipants(d.Participants)
	return d
}

// Bill represents a finalized bill stored in a session's history.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format).
	ID string

	// SessionID is the session whose history holds this bill.
	SessionID string

	// Name is the account name the user gave the bill.
	// Auto-generated by the store when empty.
	Name string

	// TotalValue is the amount that was split.
	// It is not reconciled against the sum of participant values.
	TotalValue float64

	// Participants are the shares at the time the bill was finalized.
	Participants []Participant

	// CreatedAt is the Unix timestamp when the bill was finalized.
	CreatedAt int64
}

// CloneParticipants returns a copy of ps that shares no backing array.
// A nil input stays nil.
func CloneParticipants(ps []Participant) []Participant {
	if ps == nil {
		return nil
	}
	out := make([]Participant, len(ps))
	copy(out, ps)
	return out
}
