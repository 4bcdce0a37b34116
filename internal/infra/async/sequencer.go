package async

import "sync"

// Sequencer hands out increasing versions per key so that only the response
// to the most recently dispatched request is applied.
type Sequencer struct {
	mu     sync.Mutex
	latest map[string]uint64
	// floor is the highest version ever forgotten; keys restart above it.
	floor uint64
}

func NewSequencer() *Sequencer {
	return &Sequencer{latest: make(map[string]uint64)}
}

// Next supersedes every version handed out before for key.
func (s *Sequencer) Next(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	latest, found := s.latest[key]
	if !found {
		latest = s.floor
	}
	s.latest[key] = latest + 1
	return latest + 1
}

func (s *Sequencer) IsCurrent(key string, version uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest[key] == version
}

// Forget drops the key. Its outstanding versions stay invalid, even once the
// key is used again.
func (s *Sequencer) Forget(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.floor = max(s.floor, s.latest[key])
	delete(s.latest, key)
}
