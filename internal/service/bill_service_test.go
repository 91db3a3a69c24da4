package service

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/billsplit/internal/auth"
	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/metrics"
	"github.com/mmynk/billsplit/internal/middleware"
	"github.com/mmynk/billsplit/internal/storage/sqlite"
	pb "github.com/mmynk/billsplit/pkg/proto"
	"github.com/mmynk/billsplit/pkg/proto/protoconnect"
)

type testServer struct {
	url     string
	metrics *metrics.Metrics
}

// setupTestServer creates a test server backed by an in-memory history store.
func setupTestServer(t *testing.T, policy calculator.Policy) (*testServer, func()) {
	t.Helper()

	store, err := sqlite.New()
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	m := metrics.New()
	svc := NewBillService(store, tokens, policy, m)

	interceptors := connect.WithInterceptors(
		middleware.RequireSession(tokens, protoconnect.BillServiceStartSessionProcedure),
		middleware.ObserveInterceptor(m),
	)
	path, handler := protoconnect.NewBillServiceHandler(svc, interceptors)

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)

	cleanup := func() {
		server.Close()
		store.Close()
	}
	return &testServer{url: server.URL, metrics: m}, cleanup
}

// newSessionClient starts a session and returns a client that carries its token.
func newSessionClient(t *testing.T, ts *testServer) (protoconnect.BillServiceClient, string) {
	t.Helper()

	anon := protoconnect.NewBillServiceClient(http.DefaultClient, ts.url)
	resp, err := anon.StartSession(context.Background(), connect.NewRequest(&emptypb.Empty{}))
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	if resp.Msg.SessionId == "" || resp.Msg.Token == "" {
		t.Fatalf("StartSession returned empty session: %+v", resp.Msg)
	}

	client := protoconnect.NewBillServiceClient(http.DefaultClient, ts.url,
		connect.WithInterceptors(middleware.BearerToken(resp.Msg.Token)),
	)
	return client, resp.Msg.SessionId
}

func createSplit(t *testing.T, client protoconnect.BillServiceClient, name, total, people string) *pb.SessionState {
	t.Helper()
	resp, err := client.CreateSplit(context.Background(), connect.NewRequest(&pb.CreateSplitRequest{
		AccountName: name,
		TotalValue:  total,
		NumPeople:   people,
	}))
	if err != nil {
		t.Fatalf("CreateSplit failed: %v", err)
	}
	return resp.Msg
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect error, got %T: %v", err, err)
	}
	if connectErr.Code() != want {
		t.Errorf("expected code %v, got %v (%s)", want, connectErr.Code(), connectErr.Message())
	}
}

func TestCreateSplit_EvenSplit(t *testing.T) {
	ts, cleanup := setupTestServer(t, calculator.PolicyRemainder)
	defer cleanup()
	client, sessionID := newSessionClient(t, ts)

	state := createSplit(t, client, "Dinner", "100", "4")

	if state.SessionId != sessionID {
		t.Errorf("expected session %s, got %s", sessionID, state.SessionId)
	}
	if state.AccountName != "Dinner" {
		t.Errorf("expected account name Dinner, got %s", state.AccountName)
	}
	if len(state.Participants) != 4 {
		t.Fatalf("expected 4 participants, got %d", len(state.Participants))
	}
	for i, p := range state.Participants {
		if p.Id != int32(i) {
			t.Errorf("participant %d has ID %d", i, p.Id)
		}
		if p.Value != 25 {
			t.Errorf("expected %s value 25, got %f", p.Name, p.Value)
		}
	}
	if state.Sum != 100 {
		t.Errorf("expected sum 100, got %f", state.Sum)
	}
}

func TestFixValue_Redistributes(t *testing.T) {
	ts, cleanup := setupTestServer(t, calculator.PolicyRemainder)
	defer cleanup()
	client, _ := newSessionClient(t, ts)

	createSplit(t, client, "Dinner", "100", "4")

	resp, err := client.FixValue(context.Background(), connect.NewRequest(&pb.FixValueRequest{
		ParticipantId: 0,
		Value:         "40",
	}))
	if err != nil {
		t.Fatalf("FixValue failed: %v", err)
	}

	first := resp.Msg.Participants[0]
	if first.Value != 40 || !first.Fixed {
		t.Errorf("participant 0: expected 40 fixed, got %+v", first)
	}
	for _, p := range resp.Msg.Participants[1:] {
		if math.Abs(p.Value-20) > 0.01 {
			t.Errorf("expected %s value 20, got %f", p.Name, p.Value)
		}
	}

	if got := testutil.ToFloat64(ts.metrics.ValuesFixed); got != 1 {
		t.Errorf("expected values_fixed_total 1, got %v", got)
	}
}

func TestCreateSplit_InvalidInput(t *testing.T) {
	ts, cleanup := setupTestServer(t, calculator.PolicyRemainder)
	defer cleanup()
	client, _ := newSessionClient(t, ts)

	tests := []struct {
		name   string
		total  string
		people string
	}{
		{name: "non-numeric total", total: "abc", people: "2"},
		{name: "empty total", total: "", people: "2"},
		{name: "empty count", total: "10", people: ""},
		{name: "zero people", total: "10", people: "0"},
		{name: "negative people", total: "10", people: "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.CreateSplit(context.Background(), connect.NewRequest(&pb.CreateSplitRequest{
				TotalValue: tt.total,
				NumPeople:  tt.people,
			}))
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestFixValue_InvalidInput(t *testing.T) {
	ts, cleanup := setupTestServer(t, calculator.PolicyRemainder)
	defer cleanup()
	client, _ := newSessionClient(t, ts)

	createSplit(t, client, "", "30", "3")

	_, err := client.FixValue(context.Background(), connect.NewRequest(&pb.FixValueRequest{ParticipantId: 1, Value: "ten"}))
	assertCode(t, err, connect.CodeInvalidArgument)

	_, err = client.FixValue(context.Background(), connect.NewRequest(&pb.FixValueRequest{ParticipantId: 5, Value: "10"}))
	assertCode(t, err, connect.CodeInvalidArgument)

	state, err := client.GetSession(context.Background(), connect.NewRequest(&emptypb.Empty{}))
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	for _, p := range state.Msg.Participants {
		if p.Value != 10 || p.Fixed {
			t.Errorf("rejected input changed %s: %+v", p.Name, p)
		}
	}
}

func TestFinalizeBill_AppendsHistoryAndResets(t *testing.T) {
	ts, cleanup := setupTestServer(t, calculator.PolicyRemainder)
	defer cleanup()
	client, _ := newSessionClient(t, ts)
	ctx := context.Background()

	createSplit(t, client, "Dinner", "100", "4")
	if _, err := client.FixValue(ctx, connect.NewRequest(&pb.FixValueRequest{ParticipantId: 0, Value: "40"})); err != nil {
		t.Fatalf("FixValue failed: %v", err)
	}

	resp, err := client.FinalizeBill(ctx, connect.NewRequest(&pb.FinalizeBillRequest{}))
	if err != nil {
		t.Fatalf("FinalizeBill failed: %v", err)
	}
	if resp.Msg.HistorySize != 1 {
		t.Errorf("expected history size 1, got %d", resp.Msg.HistorySize)
	}
	bill := resp.Msg.Bill
	if bill.BillId == "" {
		t.Error("expected bill ID to be generated")
	}
	if bill.Name != "Dinner" || bill.TotalValue != 100 || len(bill.Participants) != 4 {
		t.Errorf("unexpected bill: %+v", bill)
	}
	if !bill.Participants[0].Fixed {
		t.Error("expected fixed flag to survive finalization")
	}

	state, err := client.GetSession(ctx, connect.NewRequest(&emptypb.Empty{}))
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if state.Msg.AccountName != "" || state.Msg.TotalValue != 0 || state.Msg.NumPeople != 0 || len(state.Msg.Participants) != 0 {
		t.Errorf("expected working state to be reset, got %+v", state.Msg)
	}

	// Finalizing again without a split is rejected.
	_, err = client.FinalizeBill(ctx, connect.NewRequest(&pb.FinalizeBillRequest{}))
	assertCode(t, err, connect.CodeFailedPrecondition)

	name := "Lunch"
	createSplit(t, client, "ignored", "20", "2")
	resp, err = client.FinalizeBill(ctx, connect.NewRequest(&pb.FinalizeBillRequest{AccountName: &name}))
	if err != nil {
		t.Fatalf("FinalizeBill failed: %v", err)
	}
	if resp.Msg.Bill.Name != "Lunch" {
		t.Errorf("expected override name Lunch, got %s", resp.Msg.Bill.Name)
	}

	history, err := client.ListHistory(ctx, connect.NewRequest(&emptypb.Empty{}))
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	if len(history.Msg.Bills) != 2 {
		t.Fatalf("expected 2 bills, got %d", len(history.Msg.Bills))
	}
	if history.Msg.Bills[0].Name != "Dinner" || history.Msg.Bills[1].Name != "Lunch" {
		t.Errorf("unexpected history order: %s, %s", history.Msg.Bills[0].Name, history.Msg.Bills[1].Name)
	}

	if got := testutil.ToFloat64(ts.metrics.BillsFinalized); got != 2 {
		t.Errorf("expected bills_finalized_total 2, got %v", got)
	}
}

func TestGetBill(t *testing.T) {
	ts, cleanup := setupTestServer(t, calculator.PolicyRemainder)
	defer cleanup()
	ctx := context.Background()

	alice, _ := newSessionClient(t, ts)
	bob, _ := newSessionClient(t, ts)

	createSplit(t, alice, "Taxi", "45", "3")
	finalized, err := alice.FinalizeBill(ctx, connect.NewRequest(&pb.FinalizeBillRequest{}))
	if err != nil {
		t.Fatalf("FinalizeBill failed: %v", err)
	}
	billID := finalized.Msg.Bill.BillId

	resp, err := alice.GetBill(ctx, connect.NewRequest(&pb.GetBillRequest{BillId: billID}))
	if err != nil {
		t.Fatalf("GetBill failed: %v", err)
	}
	if resp.Msg.Bill.Name != "Taxi" || len(resp.Msg.Bill.Participants) != 3 {
		t.Errorf("unexpected bill: %+v", resp.Msg.Bill)
	}

	// Another session's bill looks exactly like a missing one.
	_, err = bob.GetBill(ctx, connect.NewRequest(&pb.GetBillRequest{BillId: billID}))
	assertCode(t, err, connect.CodeNotFound)

	_, err = alice.GetBill(ctx, connect.NewRequest(&pb.GetBillRequest{BillId: "missing"}))
	assertCode(t, err, connect.CodeNotFound)

	_, err = alice.GetBill(ctx, connect.NewRequest(&pb.GetBillRequest{}))
	assertCode(t, err, connect.CodeInvalidArgument)

	bobHistory, err := bob.ListHistory(ctx, connect.NewRequest(&emptypb.Empty{}))
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	if len(bobHistory.Msg.Bills) != 0 {
		t.Errorf("expected sessions to have separate histories, got %d bills", len(bobHistory.Msg.Bills))
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	ts, cleanup := setupTestServer(t, calculator.PolicyRemainder)
	defer cleanup()

	alice, _ := newSessionClient(t, ts)
	bob, _ := newSessionClient(t, ts)

	createSplit(t, alice, "A", "100", "2")
	createSplit(t, bob, "B", "90", "3")

	state, err := alice.GetSession(context.Background(), connect.NewRequest(&emptypb.Empty{}))
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if state.Msg.AccountName != "A" || len(state.Msg.Participants) != 2 {
		t.Errorf("session state leaked between clients: %+v", state.Msg)
	}
	if got := testutil.ToFloat64(ts.metrics.ActiveSessions); got != 2 {
		t.Errorf("expected 2 active sessions, got %v", got)
	}
}

func TestOriginalTotalPolicy(t *testing.T) {
	ts, cleanup := setupTestServer(t, calculator.PolicyOriginalTotal)
	defer cleanup()
	client, _ := newSessionClient(t, ts)
	ctx := context.Background()

	createSplit(t, client, "", "100", "4")
	if _, err := client.FixValue(ctx, connect.NewRequest(&pb.FixValueRequest{ParticipantId: 0, Value: "40"})); err != nil {
		t.Fatalf("FixValue failed: %v", err)
	}
	resp, err := client.FixValue(ctx, connect.NewRequest(&pb.FixValueRequest{ParticipantId: 1, Value: "30"}))
	if err != nil {
		t.Fatalf("FixValue failed: %v", err)
	}

	// Legacy behavior: (100 - 30) / 2, ignoring the first fix.
	for _, p := range resp.Msg.Participants[2:] {
		if math.Abs(p.Value-35) > 1e-9 {
			t.Errorf("expected %s value 35, got %f", p.Name, p.Value)
		}
	}
}

func TestAuthentication(t *testing.T) {
	ts, cleanup := setupTestServer(t, calculator.PolicyRemainder)
	defer cleanup()
	ctx := context.Background()

	anon := protoconnect.NewBillServiceClient(http.DefaultClient, ts.url)
	_, err := anon.GetSession(ctx, connect.NewRequest(&emptypb.Empty{}))
	assertCode(t, err, connect.CodeUnauthenticated)

	forged := protoconnect.NewBillServiceClient(http.DefaultClient, ts.url,
		connect.WithInterceptors(middleware.BearerToken("forged")),
	)
	_, err = forged.GetSession(ctx, connect.NewRequest(&emptypb.Empty{}))
	assertCode(t, err, connect.CodeUnauthenticated)

	// A valid token for a session this server never started.
	token, err := auth.NewTokenManager("test-secret", time.Hour).Generate("unknown-session")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	stale := protoconnect.NewBillServiceClient(http.DefaultClient, ts.url,
		connect.WithInterceptors(middleware.BearerToken(token)),
	)
	_, err = stale.GetSession(ctx, connect.NewRequest(&emptypb.Empty{}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestCreateSplit_RejectedRequestKeepsWorkingBill(t *testing.T) {
	ts, cleanup := setupTestServer(t, calculator.PolicyRemainder)
	defer cleanup()
	client, _ := newSessionClient(t, ts)
	ctx := context.Background()

	createSplit(t, client, "Dinner", "100", "4")

	_, err := client.CreateSplit(ctx, connect.NewRequest(&pb.CreateSplitRequest{
		AccountName: "Lunch",
		TotalValue:  "50",
		NumPeople:   "abc",
	}))
	assertCode(t, err, connect.CodeInvalidArgument)

	state, err := client.GetSession(ctx, connect.NewRequest(&emptypb.Empty{}))
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if state.Msg.AccountName != "Dinner" || state.Msg.TotalValue != 100 || state.Msg.NumPeople != 4 {
		t.Errorf("rejected CreateSplit changed the working bill: %+v", state.Msg)
	}

	resp, err := client.FixValue(ctx, connect.NewRequest(&pb.FixValueRequest{ParticipantId: 0, Value: "10"}))
	if err != nil {
		t.Fatalf("FixValue failed: %v", err)
	}
	for _, p := range resp.Msg.Participants[1:] {
		if math.Abs(p.Value-30) > 1e-9 {
			t.Errorf("expected %s value 30, got %f", p.Name, p.Value)
		}
	}

	if got := testutil.ToFloat64(ts.metrics.SplitsCreated); got != 1 {
		t.Errorf("expected splits_created_total 1, got %v", got)
	}
}

// fakeClock is a settable time source for session expiry.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newExpiringService(t *testing.T, ttl time.Duration) (*BillService, *sqlite.SQLiteStore, *fakeClock) {
	t.Helper()

	store, err := sqlite.New()
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	clock := &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := NewBillService(store, auth.NewTokenManager("test-secret", ttl), calculator.PolicyRemainder, metrics.New())
	svc.now = clock.Now
	return svc, store, clock
}

func startSession(t *testing.T, svc *BillService) context.Context {
	t.Helper()
	resp, err := svc.StartSession(context.Background(), connect.NewRequest(&emptypb.Empty{}))
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	return middleware.WithSessionID(context.Background(), resp.Msg.GetSessionId())
}

func TestExpiredSessionsAreEvicted(t *testing.T) {
	svc, store, clock := newExpiringService(t, time.Hour)

	ctx := startSession(t, svc)
	sessionID := middleware.GetSessionID(ctx)
	if _, err := svc.CreateSplit(ctx, connect.NewRequest(&pb.CreateSplitRequest{TotalValue: "30", NumPeople: "3"})); err != nil {
		t.Fatalf("CreateSplit failed: %v", err)
	}
	if _, err := svc.FinalizeBill(ctx, connect.NewRequest(&pb.FinalizeBillRequest{})); err != nil {
		t.Fatalf("FinalizeBill failed: %v", err)
	}
	for i := 0; i < 99; i++ {
		startSession(t, svc)
	}

	if got := testutil.ToFloat64(svc.metrics.ActiveSessions); got != 100 {
		t.Fatalf("expected 100 active sessions, got %v", got)
	}

	clock.Advance(time.Hour)

	// An expired session is gone even before it has been swept.
	_, err := svc.GetSession(ctx, connect.NewRequest(&emptypb.Empty{}))
	assertCode(t, err, connect.CodeNotFound)

	// Starting a new session sweeps the expired ones.
	fresh := startSession(t, svc)

	svc.mu.Lock()
	held := len(svc.sessions)
	svc.mu.Unlock()
	if held != 1 {
		t.Errorf("expected 1 session held after expiry, got %d", held)
	}
	if got := testutil.ToFloat64(svc.metrics.ActiveSessions); got != 1 {
		t.Errorf("expected 1 active session, got %v", got)
	}
	if got := testutil.ToFloat64(svc.metrics.SessionsExpired); got != 100 {
		t.Errorf("expected sessions_expired_total 100, got %v", got)
	}

	bills, err := store.ListBills(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("ListBills failed: %v", err)
	}
	if len(bills) != 0 {
		t.Errorf("expected history of expired session to be deleted, got %d bills", len(bills))
	}

	if _, err := svc.GetSession(fresh, connect.NewRequest(&emptypb.Empty{})); err != nil {
		t.Errorf("fresh session should be usable: %v", err)
	}
}

func TestEvictExpired(t *testing.T) {
	svc, _, clock := newExpiringService(t, 10*time.Minute)

	old := startSession(t, svc)
	clock.Advance(5 * time.Minute)
	recent := startSession(t, svc)

	tests := []struct {
		name        string
		advance     time.Duration
		wantEvicted int
		wantHeld    int
	}{
		{name: "nothing expired yet", advance: 4 * time.Minute, wantEvicted: 0, wantHeld: 2},
		{name: "older session expires", advance: time.Minute, wantEvicted: 1, wantHeld: 1},
		{name: "sweeping twice is a no-op", advance: 0, wantEvicted: 0, wantHeld: 1},
		{name: "newer session expires", advance: 5 * time.Minute, wantEvicted: 1, wantHeld: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock.Advance(tt.advance)
			if got := svc.EvictExpired(context.Background()); got != tt.wantEvicted {
				t.Errorf("EvictExpired() = %d, want %d", got, tt.wantEvicted)
			}
			if got := testutil.ToFloat64(svc.metrics.ActiveSessions); got != float64(tt.wantHeld) {
				t.Errorf("active sessions = %v, want %d", got, tt.wantHeld)
			}
		})
	}

	_, err := svc.GetSession(old, connect.NewRequest(&emptypb.Empty{}))
	assertCode(t, err, connect.CodeNotFound)
	_, err = svc.GetSession(recent, connect.NewRequest(&emptypb.Empty{}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestRunEvictionStopsWithContext(t *testing.T) {
	svc, _, _ := newExpiringService(t, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.RunEviction(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunEviction did not return after cancel")
	}
}
