package notifications

import (
	"context"

	"github.com/stylecart/storefront/pkg/enums"
	"github.com/stylecart/storefront/pkg/logger"
)

// Signal is an outcome the core reports for external presentation.
type Signal struct {
	Message  string
	Severity enums.Severity
}

// Notifier receives outcome signals. Presentation is the collaborator's
// concern; the core only emits.
type Notifier interface {
	Notify(ctx context.Context, signal Signal)
}

// LogNotifier writes signals to the structured log.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier wraps the given logger.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, signal Signal) {
	if n == nil || n.log == nil {
		return
	}
	ctx = n.log.WithField(ctx, "severity", signal.Severity.String())
	switch signal.Severity {
	case enums.SeverityError:
		n.log.Warn(ctx, signal.Message)
	default:
		n.log.Info(ctx, signal.Message)
	}
}

// Nop discards all signals.
type Nop struct{}

func (Nop) Notify(context.Context, Signal) {}

// Recorder captures signals for assertions.
type Recorder struct {
	Signals []Signal
}

func (r *Recorder) Notify(_ context.Context, signal Signal) {
	r.Signals = append(r.Signals, signal)
}
