package holiday

import (
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/calendar"
)

type Holiday struct {
	ID         string
	Date       calendar.Date
	Name       string
	IsOptional bool
	CreatedAt  time.Time
}

// DateSet is a lookup of holiday dates keyed by "2006-01-02".
type DateSet map[string]struct{}

func NewDateSet(holidays []Holiday) DateSet {
	set := make(DateSet, len(holidays))
	for _, h := range holidays {
		set[h.Date.String()] = struct{}{}
	}
	return set
}

func (s DateSet) Contains(d calendar.Date) bool {
	_, ok := s[d.String()]
	return ok
}
