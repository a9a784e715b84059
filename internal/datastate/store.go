package datastate

import (
	"context"
	"sync"
)

// Store is a publish/subscribe container for one projection kind. Exactly one
// Store instance exists per kind per process; subscribers always observe the
// current value first and then every change, conflated to the latest when
// they fall behind.
type Store[T any] struct {
	mu      sync.Mutex
	current DataState[T]
	subs    map[int]chan DataState[T]
	nextID  int
}

// NewStore returns a store holding [Loading].
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		current: Loading[T](),
		subs:    make(map[int]chan DataState[T]),
	}
}

// Get returns the current value.
func (s *Store[T]) Get() DataState[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set replaces the current value and notifies subscribers.
func (s *Store[T]) Set(state DataState[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = state
	for _, ch := range s.subs {
		push(ch, state)
	}
}

// Update applies fn to the current value under the store lock and publishes
// the result.
func (s *Store[T]) Update(fn func(DataState[T]) DataState[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = fn(s.current)
	for _, ch := range s.subs {
		push(ch, s.current)
	}
}

// UpdateToPendingOrLoading marks the start of a refresh while keeping any
// previous snapshot visible.
func (s *Store[T]) UpdateToPendingOrLoading() {
	s.Update(func(cur DataState[T]) DataState[T] { return cur.PendingOrLoading() })
}

// SubscriberCount returns the number of live subscriptions.
func (s *Store[T]) SubscriberCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Subscribe registers a subscriber that receives the current value
// immediately and the latest value after every change until ctx is done.
// A slow subscriber only delays itself: intermediate values are dropped in
// favour of the most recent one.
func (s *Store[T]) Subscribe(ctx context.Context) <-chan DataState[T] {
	ch := make(chan DataState[T], 1)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	ch <- s.current
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}()

	return ch
}

// FirstData blocks until the store publishes a state carrying data and
// returns that snapshot. Reconciliation uses it to read the current
// projection rather than a stale cached copy.
func (s *Store[T]) FirstData(ctx context.Context) (T, error) {
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := s.Subscribe(subCtx)
	for {
		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		case state := <-ch:
			if data, ok := state.Data(); ok {
				return data, nil
			}
		}
	}
}

// push delivers latest-wins: when the subscriber has not consumed the
// previous value it is replaced instead of blocking the publisher.
func push[T any](ch chan DataState[T], state DataState[T]) {
	for {
		select {
		case ch <- state:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}
