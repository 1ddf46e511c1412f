package pipeline

import (
	"context"
)

// EventType enumerates the coarse progress events a run can emit.
type EventType int

const (
	EventTypeUnspecified EventType = iota
	EventTypeProgress
	EventTypeComplete
)

// Event is one stage-boundary notification. Purely observational; it has
// no effect on control flow.
type Event struct {
	Type     EventType
	Stage    string
	Progress int32 // 0-100
	Message  string
}

// Emitter receives progress events during a run.
type Emitter interface {
	Emit(event Event)
	EmitProgress(stage string, percent int32, message string)
}

type emitterKey struct{}

// WithEmitter attaches an emitter to the context.
func WithEmitter(ctx context.Context, emitter Emitter) context.Context {
	return context.WithValue(ctx, emitterKey{}, emitter)
}

// EmitterFrom retrieves the emitter from context, or returns a no-op emitter.
func EmitterFrom(ctx context.Context) Emitter {
	if e, ok := ctx.Value(emitterKey{}).(Emitter); ok {
		return e
	}
	return noopEmitter{}
}

// noopEmitter discards all events.
type noopEmitter struct{}

func (noopEmitter) Emit(Event)                         {}
func (noopEmitter) EmitProgress(string, int32, string) {}

// ChannelEmitter sends events to a channel without blocking the run.
type ChannelEmitter struct {
	Ch chan<- Event
}

func (e *ChannelEmitter) Emit(event Event) {
	select {
	case e.Ch <- event:
	default: // never stall a stage on a slow watcher
	}
}

func (e *ChannelEmitter) EmitProgress(stage string, percent int32, message string) {
	e.Emit(Event{Type: EventTypeProgress, Stage: stage, Progress: percent, Message: message})
}
