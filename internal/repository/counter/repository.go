package counter

import "context"

// Repository allocates named monotonic counters at the office, used to
// mint temporary policy numbers for registrations submitted without one.
type Repository interface {
	// Next atomically increments the named counter and returns the new
	// value. The first allocation of a name returns 1.
	Next(ctx context.Context, name string) (int64, error)
}
