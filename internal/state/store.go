package state

import (
	"sync"

	"github.com/rs/zerolog"
)

// Store owns the application state. Every event is applied atomically with
// respect to every other event.
type Store struct {
	mu      sync.Mutex
	state   State
	subs    map[int]func(State)
	nextSub int
	logger  zerolog.Logger
}

// NewStore creates a store seeded with initial.
func NewStore(initial State, logger zerolog.Logger) *Store {
	return &Store{
		state:  initial.Clone(),
		subs:   make(map[int]func(State)),
		logger: logger,
	}
}

// State returns a deep copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch applies ev and notifies subscribers.
func (s *Store) Dispatch(ev Event) {
	s.Apply(func(State) Event { return ev })
}

// Apply derives at most one event from the current state and applies it in
// the same critical section. A nil event leaves the state untouched and
// reports false.
//
// Subscribers run while the store is locked and must not dispatch.
func (s *Store) Apply(decide func(State) Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev := decide(s.state)
	if ev == nil {
		return false
	}
	s.state = Reduce(s.state, ev)
	s.logger.Debug().Str("event", ev.Name()).Msg("dispatch")

	if len(s.subs) > 0 {
		snapshot := s.state.Clone()
		for _, fn := range s.subs {
			fn(snapshot)
		}
	}
	return true
}

// Subscribe registers fn to receive every new state. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}
