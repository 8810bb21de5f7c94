package client

import "slices"

// Store caches one entity type by id. Overwriting a key keeps its original
// position, so FindAll returns values in first-insertion order.
// A Store is owned by the client event loop and is not safe for concurrent use.
type Store[T any] struct {
	items map[string]T
	order []string
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{items: make(map[string]T)}
}

func (s *Store[T]) Get(id string) (T, bool) {
	v, ok := s.items[id]
	return v, ok
}

func (s *Store[T]) Set(id string, v T) {
	if _, ok := s.items[id]; !ok {
		s.order = append(s.order, id)
	}
	s.items[id] = v
}

func (s *Store[T]) Has(id string) bool {
	_, ok := s.items[id]
	return ok
}

func (s *Store[T]) Delete(id string) {
	if _, ok := s.items[id]; !ok {
		return
	}
	delete(s.items, id)
	s.order = slices.DeleteFunc(s.order, func(key string) bool { return key == id })
}

// FindAll returns the values matching keep.
func (s *Store[T]) FindAll(keep func(T) bool) []T {
	var found []T
	for _, id := range s.order {
		if v := s.items[id]; keep(v) {
			found = append(found, v)
		}
	}
	return found
}

func (s *Store[T]) Len() int {
	return len(s.items)
}
