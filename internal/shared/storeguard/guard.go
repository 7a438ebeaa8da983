// Package storeguard keeps one store's failure from failing a whole request.
//
// Every call through the guard resolves to a tagged Result instead of an error:
// Success, NotFound (store reachable, record absent) or Unavailable (store errored).
package storeguard

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Store identifies the backing store a call goes to.
type Store string

const (
	Relational Store = "postgres"
	Document   Store = "mongodb"
)

// Outcome is the tag of a guarded call.
type Outcome int

const (
	Success Outcome = iota
	NotFound
	Unavailable
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case NotFound:
		return "not_found"
	case Unavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Result is the outcome of a guarded call. Err is set only when Outcome is Unavailable.
type Result[T any] struct {
	Value   T
	Outcome Outcome
	Err     error
}

// Found reports whether the call produced a value.
func (r Result[T]) Found() bool {
	return r.Outcome == Success
}

// Recorder receives one observation per guarded call.
type Recorder interface {
	RecordStoreCall(store, operation, outcome string)
}

// Guard logs and records guarded calls. It holds no per-request state.
type Guard struct {
	logger   zerolog.Logger
	recorder Recorder
}

// New builds a Guard. recorder may be nil.
func New(logger zerolog.Logger, recorder Recorder) *Guard {
	return &Guard{
		logger:   logger,
		recorder: recorder,
	}
}

// Fetch runs fn against store and converts its result into a Result.
// found=false with a nil error means the store answered but had no record.
// Errors and panics from fn are absorbed as Unavailable; nothing is retried.
func Fetch[T any](ctx context.Context, g *Guard, store Store, operation string, fn func(context.Context) (T, bool, error)) (res Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			res = Result[T]{Outcome: Unavailable, Err: fmt.Errorf("panic in %s %s: %v", store, operation, p)}
		}
		g.observe(store, operation, res.Outcome, res.Err)
	}()

	value, found, err := fn(ctx)
	switch {
	case err != nil:
		return Result[T]{Outcome: Unavailable, Err: err}
	case !found:
		return Result[T]{Outcome: NotFound}
	default:
		return Result[T]{Value: value, Outcome: Success}
	}
}

// FetchOne adapts the repository convention of returning (nil, nil) for an absent record.
func FetchOne[T any](ctx context.Context, g *Guard, store Store, operation string, fn func(context.Context) (*T, error)) Result[*T] {
	return Fetch(ctx, g, store, operation, func(ctx context.Context) (*T, bool, error) {
		v, err := fn(ctx)
		return v, v != nil, err
	})
}

func (g *Guard) observe(store Store, operation string, outcome Outcome, err error) {
	if g.recorder != nil {
		g.recorder.RecordStoreCall(string(store), operation, outcome.String())
	}

	switch outcome {
	case Unavailable:
		g.logger.Error().
			Err(err).
			Str("store", string(store)).
			Str("operation", operation).
			Msg("Store unavailable, continuing with partial result")
	case NotFound:
		g.logger.Debug().
			Str("store", string(store)).
			Str("operation", operation).
			Msg("Record not found")
	}
}
