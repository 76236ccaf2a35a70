// Package actions simulates the dashboard's network requests. Each operation
// dispatches a Requested event, waits for its fixed latency, and resolves
// with a Succeeded or Failed event on the same store.
package actions

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"projex/internal/state"
)

// Actions runs requests against a store and its persistence.
type Actions struct {
	store   *state.Store
	persist state.Persistence
	clock   Clock
	delays  Delays
	codes   func() string
	newID   func(prefix string) string
	pick    func(n int) int
	logger  zerolog.Logger

	// accounts serializes every read-modify-write of the registered users
	// and passwords documents.
	accounts sync.Mutex
}

// Option customizes Actions.
type Option func(*Actions)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option { return func(a *Actions) { a.clock = c } }

// WithDelays replaces the request latencies.
func WithDelays(d Delays) Option { return func(a *Actions) { a.delays = d } }

// WithCodeGenerator replaces the verification code source.
func WithCodeGenerator(fn func() string) Option { return func(a *Actions) { a.codes = fn } }

// WithIDGenerator replaces the entity id source.
func WithIDGenerator(fn func(prefix string) string) Option {
	return func(a *Actions) { a.newID = fn }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option { return func(a *Actions) { a.logger = l } }

// New wires actions to store and persist.
func New(store *state.Store, persist state.Persistence, opts ...Option) *Actions {
	a := &Actions{
		store:   store,
		persist: persist,
		clock:   SystemClock{},
		delays:  DefaultDelays,
		codes:   randomCode,
		newID:   func(prefix string) string { return prefix + "-" + uuid.NewString() },
		pick:    rand.IntN,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Store returns the store the actions dispatch to.
func (a *Actions) Store() *state.Store { return a.store }

func randomCode() string {
	return fmt.Sprintf("%06d", 100000+rand.IntN(900000))
}

// wait sleeps for the simulated latency of one request.
func (a *Actions) wait(ctx context.Context, op string, d time.Duration) error {
	if err := a.clock.Sleep(ctx, d); err != nil {
		a.logger.Warn().Err(err).Str("op", op).Msg("request abandoned")
		return fail(ErrUnexpected, msgUnexpected)
	}
	return nil
}
