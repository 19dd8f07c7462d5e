package gesture

import (
	"time"

	"github.com/pthm-cable/pounce/session"
)

// Drive polls the tracker once and forwards the result to the session.
// Returns whether a hand was detected.
func Drive(s *session.Session, tr Tracker, now time.Time) bool {
	sample, ok := tr.Poll(now)
	s.GestureSample(session.InputSample{
		X:        sample.X,
		Y:        sample.Y,
		At:       sample.At,
		OpenHand: sample.OpenHand,
	}, ok)
	return ok
}
