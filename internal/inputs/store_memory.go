package inputs

import (
	"context"
	"sync"
)

// MemoryStore keeps the latest inputs in process memory. It is the default
// store when no Redis URL is configured.
type MemoryStore struct {
	mu          sync.Mutex
	latest      Inputs
	set         bool
	nextID      int
	subscribers map[int]func(Inputs)
}

// NewMemoryStore returns an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{subscribers: make(map[int]func(Inputs))}
}

// Current implements Store.
func (s *MemoryStore) Current(ctx context.Context) (Inputs, bool, error) {
	if err := ctx.Err(); err != nil {
		return Inputs{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.set, nil
}

// Put implements Store. Subscribers run synchronously after the lock is
// released.
func (s *MemoryStore) Put(ctx context.Context, in Inputs) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.latest = in
	s.set = true
	fns := make([]func(Inputs), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(in)
	}
	return nil
}

// Subscribe implements Store.
func (s *MemoryStore) Subscribe(fn func(Inputs)) (func(), error) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}, nil
}
