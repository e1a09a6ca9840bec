package order

import (
	"sync"
	"time"
)

// DefaultRevertDelay matches the debounce the storefront applies while
// the hand-off is prepared.
const DefaultRevertDelay = time.Second

// Opener is the capability through which a prepared order link reaches
// the outside world. The submitter never learns whether the open
// succeeded; delivery is the external channel's problem.
type Opener interface {
	Open(url string)
}

// OpenerFunc adapts a plain function to the Opener interface.
type OpenerFunc func(url string)

func (f OpenerFunc) Open(url string) { f(url) }

// Submitter guards one session's checkout against duplicate submissions.
// Its only states are idle and submitting; submitting reverts to idle on
// its own after a fixed delay regardless of what happened downstream.
type Submitter struct {
	opener Opener
	revert time.Duration

	mu         sync.Mutex
	submitting bool
}

// NewSubmitter wires a submitter to an opener. A non-positive revert
// delay falls back to DefaultRevertDelay.
func NewSubmitter(opener Opener, revert time.Duration) *Submitter {
	if revert <= 0 {
		revert = DefaultRevertDelay
	}
	return &Submitter{opener: opener, revert: revert}
}

// Submit hands the link to the opener unless a submission is already in
// flight, and reports whether the hand-off happened.
func (s *Submitter) Submit(url string) bool {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return false
	}
	s.submitting = true
	s.mu.Unlock()

	if s.opener != nil {
		s.opener.Open(url)
	}

	time.AfterFunc(s.revert, func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	})
	return true
}

// Submitting reports whether a submission is currently in flight.
func (s *Submitter) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}
