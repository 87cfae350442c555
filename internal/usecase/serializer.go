package usecase

import (
	"context"
	"sync"
)

// Serializer is the single-writer lock shared by every use case. Mutating
// operations run their whole check-then-act sequence inside it, so two
// requests can never both pass a uniqueness or conflict check.
type Serializer struct {
	mu sync.Mutex
}

func NewSerializer() *Serializer {
	return &Serializer{}
}

// serializar runs fn holding the writer lock. A context that is already done
// is rejected before waiting for the lock.
func serializar[T any](ctx context.Context, s *Serializer, fn func() (T, error)) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}
