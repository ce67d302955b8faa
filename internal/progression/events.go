package progression

import (
	"context"

	"go.uber.org/zap"
)

// EventKind classifies a progression event.
type EventKind string

const (
	EventLevelStarted      EventKind = "level_started"
	EventLevelCompleted    EventKind = "level_completed"
	EventAttemptFailed     EventKind = "attempt_failed"
	EventAttemptPassed     EventKind = "attempt_passed"
	EventHintShown         EventKind = "hint_shown"
	EventCurriculumChanged EventKind = "curriculum_changed"
)

// Event is one progression fact handed to a Recorder.
type Event struct {
	Kind   EventKind
	Level  string
	Detail string
}

// Recorder receives progression events, typically for an append-only history.
type Recorder interface {
	Record(ctx context.Context, ev Event) error
}

// RecorderFunc adapts a function to a Recorder.
type RecorderFunc func(ctx context.Context, ev Event) error

func (f RecorderFunc) Record(ctx context.Context, ev Event) error {
	return f(ctx, ev)
}

// RecordPassed records a successful validation of level. The engine records
// every other kind itself.
func (e *Engine) RecordPassed(ctx context.Context) {
	e.record(ctx, EventAttemptPassed, e.p.Level, "")
}

// record forwards an event to the recorder. History is best-effort, so
// failures are only logged.
func (e *Engine) record(ctx context.Context, kind EventKind, level, detail string) {
	if e.recorder == nil {
		return
	}
	if err := e.recorder.Record(ctx, Event{Kind: kind, Level: level, Detail: detail}); err != nil {
		e.logger.Warn("record event failed",
			zap.String("kind", string(kind)),
			zap.String("level", level),
			zap.Error(err))
	}
}
