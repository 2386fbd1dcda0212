package planner

import (
	"io"
	"log/slog"
	"time"
)

// MutationEvent captures lightweight telemetry for one plan mutation.
type MutationEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// MutationObserver receives plan-mutation events.
type MutationObserver interface {
	ObserveMutation(event MutationEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveMutation(MutationEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes mutation events to the provided writer as
// structured log lines.
func NewLogObserver(w io.Writer) MutationObserver {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) ObserveMutation(event MutationEvent) {
	attrs := make([]any, 0, 6+len(event.Fields)*2)
	attrs = append(attrs,
		"mutation", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.Error("plan_mutation", attrs...)
		return
	}
	o.logger.Info("plan_mutation", attrs...)
}
