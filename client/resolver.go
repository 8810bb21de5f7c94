package client

import (
	"chat-relay/errors"
	"slices"
	"time"
)

// Resolver turns ids into cached entities, asking the relay for the ones it
// does not know yet. Every waiter of an id is completed by the answer for
// that id only; answers for other ids leave it pending.
type Resolver[T any] struct {
	store   *Store[T]
	fetch   func(id string) error
	timeout time.Duration
	pending map[string]*waiting[T]
	// ids asked for and not answered yet, in request order
	inflight []string
}

type waiting[T any] struct {
	deadline      time.Time
	continuations []func(T, error)
}

// NewResolver caches into store. fetch sends the lookup request for an id and
// is called once per id until it is resolved or expires.
func NewResolver[T any](store *Store[T], fetch func(id string) error, timeout time.Duration) *Resolver[T] {
	return &Resolver[T]{
		store:   store,
		fetch:   fetch,
		timeout: timeout,
		pending: make(map[string]*waiting[T]),
	}
}

// Lookup runs k with the entity of id: immediately when cached, otherwise
// once the relay answers, or with ErrResolveTimeout once the deadline passed.
func (r *Resolver[T]) Lookup(id string, k func(T, error)) {
	if v, ok := r.store.Get(id); ok {
		k(v, nil)
		return
	}
	if w, ok := r.pending[id]; ok {
		w.continuations = append(w.continuations, k)
		return
	}
	r.pending[id] = &waiting[T]{
		deadline:      time.Now().Add(r.timeout),
		continuations: []func(T, error){k},
	}
	if err := r.fetch(id); err != nil {
		r.fail(id, err)
		return
	}
	r.inflight = append(r.inflight, id)
}

// Resolve caches v and completes the waiters of id.
func (r *Resolver[T]) Resolve(id string, v T) {
	r.store.Set(id, v)
	w, ok := r.pending[id]
	if !ok {
		return
	}
	delete(r.pending, id)
	for _, k := range w.continuations {
		k(v, nil)
	}
}

// Answer resolves id with the relay's reply to a lookup.
func (r *Resolver[T]) Answer(id string, v T) {
	if i := slices.Index(r.inflight, id); i >= 0 {
		r.inflight = slices.Delete(r.inflight, i, i+1)
	}
	r.Resolve(id, v)
}

// Reject fails the oldest unanswered lookup. The relay answers a connection's
// commands in order, so a refusal belongs to the oldest request.
func (r *Resolver[T]) Reject(err error) (string, bool) {
	if len(r.inflight) == 0 {
		return "", false
	}
	id := r.inflight[0]
	r.inflight = r.inflight[1:]
	r.fail(id, err)
	return id, true
}

// Sweep fails the waiters whose deadline is not after now and returns how
// many ids expired.
func (r *Resolver[T]) Sweep(now time.Time) int {
	var expired []string
	for id, w := range r.pending {
		if !w.deadline.After(now) {
			expired = append(expired, id)
		}
	}
	for _, id := range expired {
		r.fail(id, errors.ErrResolveTimeout)
	}
	return len(expired)
}

// Cancel fails every waiter, used when the client stops.
func (r *Resolver[T]) Cancel() {
	r.inflight = nil
	for id := range r.pending {
		r.fail(id, errors.ErrResolveCanceled)
	}
}

func (r *Resolver[T]) Pending() int {
	return len(r.pending)
}

func (r *Resolver[T]) fail(id string, err error) {
	w, ok := r.pending[id]
	if !ok {
		return
	}
	delete(r.pending, id)
	var zero T
	for _, k := range w.continuations {
		k(zero, err)
	}
}
