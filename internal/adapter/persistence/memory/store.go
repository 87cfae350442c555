// Package memory holds in-process repositories. They keep snapshots of the
// entities (their ...Data projection) so callers never share mutable state
// with the store.
package memory

import "sync"

// store is a map keyed by id that remembers insertion order for listing.
type store[D any] struct {
	mu    sync.RWMutex
	itens map[string]D
	ordem []string
}

func newStore[D any]() *store[D] {
	return &store[D]{itens: make(map[string]D)}
}

func (s *store[D]) salvar(id string, d D) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.itens[id]; !ok {
		s.ordem = append(s.ordem, id)
	}
	s.itens[id] = d
}

func (s *store[D]) buscar(id string) (D, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.itens[id]
	return d, ok
}

func (s *store[D]) remover(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.itens[id]; !ok {
		return
	}
	delete(s.itens, id)
	for i, existente := range s.ordem {
		if existente == id {
			s.ordem = append(s.ordem[:i], s.ordem[i+1:]...)
			break
		}
	}
}

// filtrar returns, in insertion order, every item accepted by f (all when f is nil).
func (s *store[D]) filtrar(f func(D) bool) []D {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]D, 0, len(s.ordem))
	for _, id := range s.ordem {
		d := s.itens[id]
		if f == nil || f(d) {
			out = append(out, d)
		}
	}
	return out
}

// algum reports whether any item satisfies f.
func (s *store[D]) algum(f func(D) bool) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.itens {
		if f(d) {
			return true
		}
	}
	return false
}
