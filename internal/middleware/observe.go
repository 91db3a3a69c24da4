package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"github.com/samber/lo"

	"github.com/mmynk/billsplit/internal/metrics"
	pb "github.com/mmynk/billsplit/pkg/proto"
)

// ObserveInterceptor records every RPC in the metrics and logs it with the
// session and the bill it touched. Failures with a Connect code are
// warnings; anything else is an error.
func ObserveInterceptor(m *metrics.Metrics) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			elapsed := time.Since(start)
			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			m.RPCRequests.WithLabelValues(procedure, code).Inc()
			m.RPCDuration.WithLabelValues(procedure).Observe(elapsed.Seconds())

			attrs := []any{
				"procedure", procedure,
				"session_id", GetSessionID(ctx),
				"duration_ms", elapsed.Milliseconds(),
			}

			var connectErr *connect.Error
			switch {
			case errors.As(err, &connectErr):
				slog.Warn("RPC error", append(attrs, "code", connectErr.Code(), "error", connectErr.Message())...)
			case err != nil:
				slog.Error("RPC error", append(attrs, "error", err)...)
			default:
				slog.Info("RPC ok", append(attrs, billAttrs(resp.Any())...)...)
			}

			return resp, err
		}
	}
}

// billAttrs describes the bill carried by a BillService response.
func billAttrs(msg any) []any {
	switch m := msg.(type) {
	case *pb.SessionState:
		return []any{"participants", len(m.GetParticipants()), "fixed", lo.CountBy(m.GetParticipants(), (*pb.Participant).GetFixed)}
	case *pb.FinalizeBillResponse:
		return []any{"bill_id", m.GetBill().GetBillId(), "history_size", m.GetHistorySize()}
	case *pb.GetBillResponse:
		return []any{"bill_id", m.GetBill().GetBillId()}
	case *pb.ListHistoryResponse:
		return []any{"bills", len(m.GetBills())}
	default:
		return nil
	}
}
