// Package sqlite provides an in-memory SQLite implementation of storage.HistoryStore.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/storage"
)

// Ensure SQLiteStore implements storage.HistoryStore
var _ storage.HistoryStore = (*SQLiteStore)(nil)

// SQLiteStore implements storage.HistoryStore on a private in-memory database.
// History is lost when the store is closed.
type SQLiteStore struct {
	db *sql.DB
}

// New opens an empty in-memory history store and runs migrations.
func New() (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to :memory: gets its own database, so the pool must
	// never hold more than one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection, discarding all history.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// AppendBill persists a finalized bill and its participants.
func (s *SQLiteStore) AppendBill(ctx context.Context, bill *models.Bill) error {
	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}
	if bill.CreatedAt == 0 {
		bill.CreatedAt = time.Now().Unix()
	}
	if bill.Name == "" && len(bill.Participants) > 0 {
		bill.Name = generateTitle(participantNames(bill.Participants))
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO bills (id, session_id, name, total_value, created_at) VALUES (?, ?, ?, ?, ?)",
		bill.ID, bill.SessionID, bill.Name, bill.TotalValue, bill.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bill: %w", err)
	}

	for _, p := range bill.Participants {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO bill_participants (bill_id, participant_id, name, value, fixed) VALUES (?, ?, ?, ?, ?)",
			bill.ID, p.ID, p.Name, p.Value, p.Fixed,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetBill retrieves a bill by ID, including its participants.
func (s *SQLiteStore) GetBill(ctx context.Context, billID string) (*models.Bill, error) {
	bill := &models.Bill{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, session_id, name, total_value, created_at FROM bills WHERE id = ?",
		billID,
	).Scan(&bill.ID, &bill.SessionID, &bill.Name, &bill.TotalValue, &bill.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", storage.ErrBillNotFound, billID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}

	if bill.Participants, err = s.getParticipants(ctx, bill.ID); err != nil {
		return nil, err
	}
	return bill, nil
}

// ListBills returns a session's bills, oldest first.
func (s *SQLiteStore) ListBills(ctx context.Context, sessionID string) ([]*models.Bill, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, session_id, name, total_value, created_at FROM bills WHERE session_id = ? ORDER BY seq",
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}

	var bills []*models.Bill
	for rows.Next() {
		bill := &models.Bill{}
		if err := rows.Scan(&bill.ID, &bill.SessionID, &bill.Name, &bill.TotalValue, &bill.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, bill)
	}
	// The pool holds a single connection: rows must be released before the
	// participant queries below can run.
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bills: %w", err)
	}

	for _, bill := range bills {
		if bill.Participants, err = s.getParticipants(ctx, bill.ID); err != nil {
			return nil, err
		}
	}
	return bills, nil
}

// DeleteBills removes every bill of a session. Participants go with their
// bill through the foreign key cascade.
func (s *SQLiteStore) DeleteBills(ctx context.Context, sessionID string) (int, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM bills WHERE session_id = ?", sessionID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete bills: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted bills: %w", err)
	}
	return int(n), nil
}

func (s *SQLiteStore) getParticipants(ctx context.Context, billID string) ([]models.Participant, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT participant_id, name, value, fixed FROM bill_participants WHERE bill_id = ? ORDER BY participant_id",
		billID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	var participants []models.Participant
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.Name, &p.Value, &p.Fixed); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return participants, nil
}

func participantNames(participants []models.Participant) []string {
	names := make([]string, len(participants))
	for i, p := range participants {
		names[i] = p.Name
	}
	return names
}

// generateTitle creates a title from participant names. participants must
// not be empty.
func generateTitle(participants []string) string {
	if len(participants) <= 3 {
		return fmt.Sprintf("Split with %s", strings.Join(participants, ", "))
	}
	return fmt.Sprintf("Split with %s and %d others",
		strings.Join(participants[:2], ", "),
		len(participants)-2,
	)
}
