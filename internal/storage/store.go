// Package storage provides abstractions for bill history storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/billsplit/internal/models"
)

// ErrBillNotFound is returned when a bill ID is unknown to the store.
var ErrBillNotFound = errors.New("bill not found")

// HistoryStore defines the interface for finalized bill history.
// Bills are never updated; they are deleted only together with their session.
type HistoryStore interface {
	// AppendBill persists a finalized bill.
	// Empty ID, Name and CreatedAt fields are populated by the store.
	AppendBill(ctx context.Context, bill *models.Bill) error

	// GetBill retrieves a bill by its ID.
	// Returns ErrBillNotFound if the bill does not exist.
	GetBill(ctx context.Context, billID string) (*models.Bill, error)

	// ListBills returns a session's bills in the order they were appended.
	ListBills(ctx context.Context, sessionID string) ([]*models.Bill, error)

	// DeleteBills removes all bills of a session and reports how many were removed.
	DeleteBills(ctx context.Context, sessionID string) (int, error)

	// Close releases any resources held by the store.
	Close() error
}
