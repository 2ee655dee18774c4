// Package observe provides the publish-subscribe primitive the application's
// reactive state is built on: a value holder that replays its current value
// to new subscribers and delivers updates synchronously, in subscription
// order, on the publisher's goroutine.
//
// Subjects are constructed per application context and passed explicitly;
// there are no package-level instances, so tests build fresh ones.
package observe

import "sync"

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Subject holds a current value of type T and notifies subscribers on change.
type Subject[T any] struct {
	mu     sync.Mutex
	value  T
	nextID int
	subs   []subscriber[T]
}

// NewSubject creates a subject seeded with initial.
func NewSubject[T any](initial T) *Subject[T] {
	return &Subject[T]{value: initial}
}

// Get returns the current value.
func (s *Subject[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set stores v and notifies every subscriber with it. Delivery happens on
// the caller's goroutine before Set returns, so a mutation and the views
// derived from it always land on the same event turn.
func (s *Subject[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	subs := append([]subscriber[T](nil), s.subs...)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(v)
	}
}

// Subscribe registers fn and immediately invokes it with the current value.
// The returned function removes the subscription; calling it twice is safe.
func (s *Subject[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})
	current := s.value
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}
