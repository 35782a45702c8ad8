// Package randutil derives LCG seeds for runs that need many independent
// starting states from a single user-supplied seed.
package randutil

import "time"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// Derive returns the seed for item i of a run started from base.
// Neighbouring items land far apart in the LCG cycle, so their draws do not
// overlap the way Advance(base, i) would.
func Derive(base, i uint64) uint64 {
	return mix(base + i*goldenRatio64)
}

// FromTime turns a wall-clock reading into a seed.
func FromTime(t time.Time) uint64 {
	return mix(uint64(t.UnixNano()))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
