// Package policy mints and checks temporary policy numbers for clients
// registered while the agent is offline.
package policy

import (
	"fmt"
	"time"
)

// DefaultPrefix is the literal prefix on temporary policy numbers.
// Uniqueness of the full number holds only per device per day; a
// multi-agent deployment must configure a distinct prefix per device.
const DefaultPrefix = "TEMP"

// Generator produces temporary policy numbers. The zero value uses
// DefaultPrefix.
type Generator struct {
	Prefix string
}

// NewGenerator returns a Generator with the given prefix, falling back
// to DefaultPrefix when prefix is empty.
func NewGenerator(prefix string) Generator {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return Generator{Prefix: prefix}
}

// Number formats a temporary policy number for the given date and
// counter: prefix + YYYYMMDD + counter zero-padded to 3 digits. For a
// fixed date, increasing counters yield strictly increasing strings.
func (g Generator) Number(t time.Time, counter int) string {
	prefix := g.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return fmt.Sprintf("%s%04d%02d%02d%03d", prefix, t.Year(), int(t.Month()), t.Day(), counter)
}

// Matches reports whether s is a temporary number this generator could
// have minted on the given date.
func (g Generator) Matches(s string, t time.Time) bool {
	prefix := g.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	datePart := fmt.Sprintf("%04d%02d%02d", t.Year(), int(t.Month()), t.Day())
	head := prefix + datePart
	if len(s) < len(head)+3 || s[:len(head)] != head {
		return false
	}
	for _, r := range s[len(head):] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
