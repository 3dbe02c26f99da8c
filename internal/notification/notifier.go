package notification

import (
	"context"

	"go.uber.org/zap"
)

// Event describes one leave-request lifecycle moment worth telling a human
// about. Delivery is best-effort: callers fire after commit and log failures
// without propagating them.
type Event struct {
	RequestID string
	Employee  string
	Manager   string
	LeaveType string
	StartDate string
	EndDate   string
	Days      int
	Status    string
}

type Notifier interface {
	RequestSubmitted(ctx context.Context, ev Event) error
	RequestDecided(ctx context.Context, ev Event) error
}

type noopNotifier struct{}

func NewNoopNotifier() Notifier {
	return noopNotifier{}
}

func (noopNotifier) RequestSubmitted(context.Context, Event) error { return nil }
func (noopNotifier) RequestDecided(context.Context, Event) error   { return nil }

// logNotifier stands in for a real mail gateway: it writes the would-be
// email as a log line.
type logNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger ...*zap.Logger) Notifier {
	l := zap.L().Named("notification")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification")
	}
	return &logNotifier{logger: l}
}

func (n *logNotifier) RequestSubmitted(_ context.Context, ev Event) error {
	n.logger.Info("EMAIL: new leave request",
		zap.String("to", ev.Manager),
		zap.String("request_id", ev.RequestID),
		zap.String("employee", ev.Employee),
		zap.String("leave_type", ev.LeaveType),
		zap.String("start_date", ev.StartDate),
		zap.String("end_date", ev.EndDate),
		zap.Int("days", ev.Days),
	)
	return nil
}

func (n *logNotifier) RequestDecided(_ context.Context, ev Event) error {
	n.logger.Info("EMAIL: leave request decided",
		zap.String("to", ev.Employee),
		zap.String("request_id", ev.RequestID),
		zap.String("status", ev.Status),
		zap.String("start_date", ev.StartDate),
		zap.String("end_date", ev.EndDate),
	)
	return nil
}
