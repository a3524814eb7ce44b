package engine

import "sync/atomic"

// Sequence issues process-unique, monotonically increasing identities.
// Identities are never reused.
type Sequence struct {
	n atomic.Uint64
}

// NewSequence returns a Sequence whose first identity is 0.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next identity.
func (s *Sequence) Next() uint64 {
	return s.n.Add(1) - 1
}

// identities is the source every Entity constructor draws from. It is a
// package-level default rather than a constructor parameter so that node
// identity stays comparable across containers, but it is swappable so
// tests can control identity assignment deterministically.
var identities atomic.Pointer[Sequence]

func init() {
	identities.Store(NewSequence())
}

// SetIdentitySource replaces the identity source and returns the previous
// one, so callers can restore it.
func SetIdentitySource(s *Sequence) *Sequence {
	return identities.Swap(s)
}

func nextID() uint64 {
	return identities.Load().Next()
}
