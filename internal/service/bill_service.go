package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/billsplit/internal/auth"
	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/metrics"
	"github.com/mmynk/billsplit/internal/middleware"
	"github.com/mmynk/billsplit/internal/splitter"
	"github.com/mmynk/billsplit/internal/storage"
	pb "github.com/mmynk/billsplit/pkg/proto"
	"github.com/mmynk/billsplit/pkg/proto/protoconnect"
)

var errSessionNotFound = errors.New("session not found, start a new session")

// maxSweepInterval caps how long expired sessions may linger when tokens are long-lived.
const maxSweepInterval = time.Minute

// Ensure BillService implements the Connect handler interface
var _ protoconnect.BillServiceHandler = (*BillService)(nil)

// BillService implements the Connect BillService. Each client works in its
// own session; all sessions append to the same history store. A session and
// its history are dropped once its token has expired.
type BillService struct {
	store   storage.HistoryStore
	tokens  *auth.TokenManager
	policy  calculator.Policy
	metrics *metrics.Metrics
	now     func() time.Time

	mu        sync.Mutex
	sessions  map[string]*sessionEntry
	nextSweep time.Time
}

type sessionEntry struct {
	sess      *splitter.Session
	expiresAt time.Time
}

// NewBillService creates a new BillService with the given storage backend.
func NewBillService(store storage.HistoryStore, tokens *auth.TokenManager, policy calculator.Policy, m *metrics.Metrics) *BillService {
	return &BillService{
		store:    store,
		tokens:   tokens,
		policy:   policy,
		metrics:  m,
		now:      time.Now,
		sessions: make(map[string]*sessionEntry),
	}
}

// session returns the session bound to the authenticated request.
func (s *BillService) session(ctx context.Context) (*splitter.Session, error) {
	sessionID := middleware.GetSessionID(ctx)
	if sessionID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	s.mu.Lock()
	e, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok || !s.now().Before(e.expiresAt) {
		return nil, connect.NewError(connect.CodeNotFound, errSessionNotFound)
	}
	return e.sess, nil
}

// sweepInterval is how often StartSession and RunEviction look for expired sessions.
func (s *BillService) sweepInterval() time.Duration {
	if ttl := s.tokens.TTL(); ttl > 0 && ttl < maxSweepInterval {
		return ttl
	}
	return maxSweepInterval
}

// EvictExpired drops every session whose token has expired, together with
// its history. It returns the number of sessions evicted.
func (s *BillService) EvictExpired(ctx context.Context) int {
	now := s.now()

	s.mu.Lock()
	var expired []string
	for id, e := range s.sessions {
		if !now.Before(e.expiresAt) {
			expired = append(expired, id)
			delete(s.sessions, id)
		}
	}
	s.nextSweep = now.Add(s.sweepInterval())
	s.mu.Unlock()

	if len(expired) == 0 {
		return 0
	}

	for _, id := range expired {
		n, err := s.store.DeleteBills(ctx, id)
		if err != nil {
			slog.Error("Failed to delete history of expired session", "session_id", id, "error", err)
			continue
		}
		slog.Debug("Session expired", "session_id", id, "bills_deleted", n)
	}
	s.metrics.ActiveSessions.Sub(float64(len(expired)))
	s.metrics.SessionsExpired.Add(float64(len(expired)))

	slog.Info("Expired sessions evicted", "count", len(expired))
	return len(expired)
}

// RunEviction calls EvictExpired periodically until ctx is cancelled.
func (s *BillService) RunEviction(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.EvictExpired(ctx)
		}
	}
}

// StartSession creates an empty session and returns the token that selects it.
func (s *BillService) StartSession(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[pb.StartSessionResponse], error) {
	s.mu.Lock()
	sweep := !s.now().Before(s.nextSweep)
	s.mu.Unlock()
	if sweep {
		s.EvictExpired(ctx)
	}

	sessionID := uuid.New().String()

	token, err := s.tokens.Generate(sessionID)
	if err != nil {
		slog.Error("StartSession failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.mu.Lock()
	s.sessions[sessionID] = &sessionEntry{
		sess:      splitter.New(sessionID, s.store, s.policy),
		expiresAt: s.now().Add(s.tokens.TTL()),
	}
	s.mu.Unlock()
	s.metrics.ActiveSessions.Inc()

	slog.Info("Session started", "session_id", sessionID, "policy", s.policy.String())
	return connect.NewResponse(&pb.StartSessionResponse{
		SessionId: sessionID,
		Token:     token,
	}), nil
}

// GetSession returns the working bill of the caller's session.
func (s *BillService) GetSession(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[pb.SessionState], error) {
	sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(toSessionState(sess.ID(), sess.Draft())), nil
}

// CreateSplit stores the entered name, total and count and splits the total
// evenly. A rejected request leaves the working bill as it was.
func (s *BillService) CreateSplit(ctx context.Context, req *connect.Request[pb.CreateSplitRequest]) (*connect.Response[pb.SessionState], error) {
	sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := sess.Split(req.Msg.GetAccountName(), req.Msg.GetTotalValue(), req.Msg.GetNumPeople()); err != nil {
		slog.Error("CreateSplit failed", "session_id", sess.ID(), "error", err)
		return nil, toConnectError(err)
	}
	s.metrics.SplitsCreated.Inc()

	return connect.NewResponse(toSessionState(sess.ID(), sess.Draft())), nil
}

// FixValue fixes one participant's share and redistributes the rest.
func (s *BillService) FixValue(ctx context.Context, req *connect.Request[pb.FixValueRequest]) (*connect.Response[pb.SessionState], error) {
	sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := sess.FixValue(int(req.Msg.GetParticipantId()), req.Msg.GetValue()); err != nil {
		slog.Error("FixValue failed",
			"session_id", sess.ID(),
			"participant_id", req.Msg.GetParticipantId(),
			"error", err,
		)
		return nil, toConnectError(err)
	}
	s.metrics.ValuesFixed.Inc()

	return connect.NewResponse(toSessionState(sess.ID(), sess.Draft())), nil
}

// FinalizeBill appends the working bill to history and resets the session.
func (s *BillService) FinalizeBill(ctx context.Context, req *connect.Request[pb.FinalizeBillRequest]) (*connect.Response[pb.FinalizeBillResponse], error) {
	sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	if req.Msg.AccountName != nil {
		sess.SetAccountName(req.Msg.GetAccountName())
	}

	bill, err := sess.Finalize(ctx)
	if err != nil {
		slog.Error("FinalizeBill failed", "session_id", sess.ID(), "error", err)
		return nil, toConnectError(err)
	}
	s.metrics.BillsFinalized.Inc()

	history, err := sess.History(ctx)
	if err != nil {
		slog.Error("FinalizeBill: failed to list history", "session_id", sess.ID(), "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&pb.FinalizeBillResponse{
		Bill:        toProtoBill(bill),
		HistorySize: int32(len(history)),
	}), nil
}

// ListHistory returns the caller's finalized bills, oldest first.
func (s *BillService) ListHistory(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[pb.ListHistoryResponse], error) {
	sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	bills, err := sess.History(ctx)
	if err != nil {
		slog.Error("ListHistory failed", "session_id", sess.ID(), "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	resp := &pb.ListHistoryResponse{Bills: make([]*pb.Bill, len(bills))}
	for i, bill := range bills {
		resp.Bills[i] = toProtoBill(bill)
	}
	return connect.NewResponse(resp), nil
}

// GetBill retrieves one bill from the caller's history. Bills of other
// sessions are reported as not found.
func (s *BillService) GetBill(ctx context.Context, req *connect.Request[pb.GetBillRequest]) (*connect.Response[pb.GetBillResponse], error) {
	sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	billID := req.Msg.GetBillId()
	if billID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("bill_id required"))
	}

	bill, err := s.store.GetBill(ctx, billID)
	if err == nil && bill.SessionID != sess.ID() {
		err = fmt.Errorf("%w: %s", storage.ErrBillNotFound, billID)
	}
	if err != nil {
		slog.Error("GetBill failed", "session_id", sess.ID(), "bill_id", billID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.GetBillResponse{Bill: toProtoBill(bill)}), nil
}

// toConnectError maps domain errors to Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, calculator.ErrInvalidAmount),
		errors.Is(err, calculator.ErrInvalidCount),
		errors.Is(err, calculator.ErrNoParticipants),
		errors.Is(err, calculator.ErrParticipantNotFound):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, splitter.ErrNothingToFinalize):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, storage.ErrBillNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
