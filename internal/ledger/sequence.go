package ledger

import (
	"fmt"
	"sync"
	"time"
)

// Sequence hands out message ids derived from the submission time in Unix
// milliseconds. When two submissions land in the same millisecond the second
// id is bumped past the first, so ids stay unique and strictly increasing.
type Sequence struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewSequence(now func() time.Time) *Sequence {
	if now == nil {
		now = time.Now
	}
	return &Sequence{now: now}
}

// Next returns the next id and the time it was taken at.
func (s *Sequence) Next() (int64, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.now()
	id := t.UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id, t
}

// TicketNumber formats the last eight digits of an id as TKT-XXXXXXXX.
func TicketNumber(id int64) string {
	if id < 0 {
		id = -id
	}
	return fmt.Sprintf("TKT-%08d", id%100_000_000)
}
