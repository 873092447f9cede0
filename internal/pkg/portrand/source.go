// Package portrand hands out local ports from the IANA ephemeral range.
package portrand

import "sync"

const (
	// First is the lowest ephemeral port.
	First uint16 = 49152
	// Last is the highest ephemeral port.
	Last uint16 = 65535

	seedMask = 0x3FFF
)

// Source is a rotating ephemeral port counter. The zero value starts at First.
// Seeding it with a time reading after bring-up keeps a freshly reset device
// from reusing the ports of its previous run.
type Source struct {
	mu   sync.Mutex
	next uint16
}

// NewSource returns a Source starting at First.
func NewSource() *Source {
	return &Source{next: First}
}

// Seed mixes the low 14 bits of n into the current position.
func (s *Source) Seed(n uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.normalize()
	s.next ^= uint16(n & seedMask)
}

// Next returns the next port and advances the counter, wrapping to First after Last.
func (s *Source) Next() uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.normalize()
	port := s.next
	if s.next == Last {
		s.next = First
	} else {
		s.next++
	}
	return port
}

// Peek returns the port the next call to Next will hand out.
func (s *Source) Peek() uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.normalize()
	return s.next
}

func (s *Source) normalize() {
	if s.next < First {
		s.next = First
	}
}
