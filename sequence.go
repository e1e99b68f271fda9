package infinigrid

import "sync"

// ContentSequence assigns content indices to tiles. The grid owns one
// sequence and consults it during tile construction; there is deliberately
// no process-wide counter, so tests can seed and reset deterministically.
type ContentSequence struct {
	mu   sync.Mutex
	next int
}

// NewContentSequence creates a sequence starting at start.
func NewContentSequence(start int) *ContentSequence {
	return &ContentSequence{next: start}
}

// Next returns the next content index and advances the sequence.
func (s *ContentSequence) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.next
	s.next++
	return n
}

// Reset rewinds the sequence to start.
func (s *ContentSequence) Reset(start int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next = start
}
