package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/mmynk/billsplit/internal/models"
)

func TestCreateEvenSplit(t *testing.T) {
	tests := []struct {
		name         string
		totalValue   float64
		numPeople    int
		wantErr      error
		validateFunc func(t *testing.T, participants []models.Participant)
	}{
		{
			name:       "four people share 100",
			totalValue: 100,
			numPeople:  4,
			validateFunc: func(t *testing.T, participants []models.Participant) {
				if len(participants) != 4 {
					t.Fatalf("got %d participants, want 4", len(participants))
				}
				for i, p := range participants {
					if p.ID != i {
						t.Errorf("participant %d ID = %d", i, p.ID)
					}
					if p.Name != DefaultName(i) {
						t.Errorf("participant %d name = %q, want %q", i, p.Name, DefaultName(i))
					}
					if p.Value != 25 {
						t.Errorf("participant %d value = %v, want 25", i, p.Value)
					}
					if p.Fixed {
						t.Errorf("participant %d should not be fixed", i)
					}
				}
			},
		},
		{
			name:       "sum matches total for uneven division",
			totalValue: 100,
			numPeople:  3,
			validateFunc: func(t *testing.T, participants []models.Participant) {
				if math.Abs(Sum(participants)-100) > 1e-9 {
					t.Errorf("sum = %v, want 100", Sum(participants))
				}
			},
		},
		{
			name:       "negative total is allowed",
			totalValue: -30,
			numPeople:  3,
			validateFunc: func(t *testing.T, participants []models.Participant) {
				for _, p := range participants {
					if p.Value != -10 {
						t.Errorf("%s value = %v, want -10", p.Name, p.Value)
					}
				}
			},
		},
		{
			name:       "zero total gives zero shares",
			totalValue: 0,
			numPeople:  2,
			validateFunc: func(t *testing.T, participants []models.Participant) {
				for _, p := range participants {
					if p.Value != 0 {
						t.Errorf("%s value = %v, want 0", p.Name, p.Value)
					}
				}
			},
		},
		{
			name:       "zero people is rejected",
			totalValue: 100,
			numPeople:  0,
			wantErr:    ErrNoParticipants,
		},
		{
			name:       "negative people is rejected",
			totalValue: 100,
			numPeople:  -2,
			wantErr:    ErrInvalidCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			participants, err := CreateEvenSplit(tt.totalValue, tt.numPeople)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CreateEvenSplit() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateEvenSplit() unexpected error: %v", err)
			}
			for _, p := range participants {
				if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
					t.Errorf("%s has non-finite value %v", p.Name, p.Value)
				}
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, participants)
			}
		})
	}
}

func TestFixParticipantValue(t *testing.T) {
	even, err := CreateEvenSplit(100, 4)
	if err != nil {
		t.Fatalf("CreateEvenSplit failed: %v", err)
	}

	t.Run("fixing one participant redistributes the rest", func(t *testing.T) {
		got, err := FixParticipantValue(even, 100, 0, 40, PolicyRemainder)
		if err != nil {
			t.Fatalf("FixParticipantValue failed: %v", err)
		}
		if got[0].Value != 40 || !got[0].Fixed {
			t.Errorf("participant 0 = %+v, want value 40 fixed", got[0])
		}
		for _, p := range got[1:] {
			if math.Abs(p.Value-20) > 0.01 {
				t.Errorf("%s value = %v, want 20", p.Name, p.Value)
			}
			if p.Fixed {
				t.Errorf("%s should not be fixed", p.Name)
			}
		}
		if math.Abs(Sum(got)-100) > 1e-9 {
			t.Errorf("sum = %v, want 100", Sum(got))
		}
	})

	t.Run("input slice is not modified", func(t *testing.T) {
		if _, err := FixParticipantValue(even, 100, 2, 70, PolicyRemainder); err != nil {
			t.Fatalf("FixParticipantValue failed: %v", err)
		}
		for _, p := range even {
			if p.Value != 25 || p.Fixed {
				t.Errorf("input participant changed: %+v", p)
			}
		}
	})

	t.Run("remainder policy accounts for earlier fixes", func(t *testing.T) {
		first, err := FixParticipantValue(even, 100, 0, 40, PolicyRemainder)
		if err != nil {
			t.Fatalf("first fix failed: %v", err)
		}
		second, err := FixParticipantValue(first, 100, 1, 30, PolicyRemainder)
		if err != nil {
			t.Fatalf("second fix failed: %v", err)
		}
		// 100 - 40 - 30 = 30 left for two people.
		for _, p := range second[2:] {
			if math.Abs(p.Value-15) > 1e-9 {
				t.Errorf("%s value = %v, want 15", p.Name, p.Value)
			}
		}
		if math.Abs(Sum(second)-100) > 1e-9 {
			t.Errorf("sum = %v, want 100", Sum(second))
		}
	})

	t.Run("original total policy subtracts only the latest fix", func(t *testing.T) {
		first, err := FixParticipantValue(even, 100, 0, 40, PolicyOriginalTotal)
		if err != nil {
			t.Fatalf("first fix failed: %v", err)
		}
		second, err := FixParticipantValue(first, 100, 1, 30, PolicyOriginalTotal)
		if err != nil {
			t.Fatalf("second fix failed: %v", err)
		}
		// (100 - 30) / 2 = 35, ignoring the 40 already fixed.
		for _, p := range second[2:] {
			if math.Abs(p.Value-35) > 1e-9 {
				t.Errorf("%s value = %v, want 35", p.Name, p.Value)
			}
		}
	})

	t.Run("refixing the same participant", func(t *testing.T) {
		first, _ := FixParticipantValue(even, 100, 3, 10, PolicyRemainder)
		second, err := FixParticipantValue(first, 100, 3, 55, PolicyRemainder)
		if err != nil {
			t.Fatalf("FixParticipantValue failed: %v", err)
		}
		if second[3].Value != 55 {
			t.Errorf("participant 3 value = %v, want 55", second[3].Value)
		}
		for _, p := range second[:3] {
			if math.Abs(p.Value-15) > 1e-9 {
				t.Errorf("%s value = %v, want 15", p.Name, p.Value)
			}
		}
	})

	t.Run("all participants fixed leaves values finite", func(t *testing.T) {
		ps, _ := CreateEvenSplit(50, 2)
		ps, _ = FixParticipantValue(ps, 50, 0, 20, PolicyRemainder)
		ps, err := FixParticipantValue(ps, 50, 1, 20, PolicyRemainder)
		if err != nil {
			t.Fatalf("FixParticipantValue failed: %v", err)
		}
		if FixedCount(ps) != 2 {
			t.Errorf("FixedCount = %d, want 2", FixedCount(ps))
		}
		for _, p := range ps {
			if p.Value != 20 {
				t.Errorf("%s value = %v, want 20", p.Name, p.Value)
			}
		}
	})

	t.Run("unknown participant", func(t *testing.T) {
		_, err := FixParticipantValue(even, 100, 9, 10, PolicyRemainder)
		if !errors.Is(err, ErrParticipantNotFound) {
			t.Errorf("error = %v, want ErrParticipantNotFound", err)
		}
	})

	t.Run("non-finite value", func(t *testing.T) {
		_, err := FixParticipantValue(even, 100, 0, math.NaN(), PolicyRemainder)
		if !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("error = %v, want ErrInvalidAmount", err)
		}
	})
}

func TestFinalizeBill(t *testing.T) {
	ps, _ := CreateEvenSplit(90, 3)
	bill := FinalizeBill("Dinner", 90, ps)

	if bill.Name != "Dinner" || bill.TotalValue != 90 {
		t.Errorf("bill = %+v", bill)
	}
	if len(bill.Participants) != 3 {
		t.Fatalf("got %d participants, want 3", len(bill.Participants))
	}

	ps[0].Value = 1000
	if bill.Participants[0].Value != 30 {
		t.Error("bill shares its participants with the caller")
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{in: "", want: PolicyRemainder},
		{in: "remainder", want: PolicyRemainder},
		{in: "original-total", want: PolicyOriginalTotal},
		{in: "original", want: PolicyOriginalTotal},
		{in: "proportional", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParsePolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
