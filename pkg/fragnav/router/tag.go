package router

import (
	"strconv"

	"go.uber.org/atomic"
)

// TagGenerator hands out view tags of the form <kind><n>. A kind that
// already ends in a digit gets an underscore before the counter, so the
// counter is always the trailing digit run and a tag is never issued twice
// by the same generator. Tags always end in a digit and can never equal a
// non-numeric sentinel.
type TagGenerator struct {
	count atomic.Int64
}

// Next returns a fresh tag for a view of the given kind.
func (g *TagGenerator) Next(kind string) string {
	n := strconv.FormatInt(g.count.Inc(), 10)
	if endsInDigit(kind) {
		return kind + "_" + n
	}
	return kind + n
}

func endsInDigit(s string) bool {
	if s == "" {
		return false
	}
	c := s[len(s)-1]
	return c >= '0' && c <= '9'
}

// Count returns the number of tags issued so far.
func (g *TagGenerator) Count() int64 {
	return g.count.Load()
}

// Restore resets the counter, typically from persisted state.
func (g *TagGenerator) Restore(count int64) {
	if count < 0 {
		count = 0
	}
	g.count.Store(count)
}
