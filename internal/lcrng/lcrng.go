// Package lcrng implements the 64-bit linear congruential generator used by
// Generation 5 games. The state is a bare uint64 owned by the caller; every
// draw advances it in place.
package lcrng

// Forward and inverse constants. Prev(Next(s)) == s for every s.
const (
	Mult  = 0x5D588B656C078965
	Add   = 0x269EC3
	RMult = 0xDEDCEDAE9638806D
	RAdd  = 0x9B1AE6E9A384E6F9
)

// Next returns the state following seed.
func Next(seed uint64) uint64 {
	return seed*Mult + Add
}

// Prev returns the state preceding seed.
func Prev(seed uint64) uint64 {
	return seed*RMult + RAdd
}

// NextU32 advances seed and returns the high 32 bits of the new state.
func NextU32(seed *uint64) uint32 {
	*seed = Next(*seed)
	return uint32(*seed >> 32)
}

// NextRange advances seed and scales the high 32 bits into [0, max).
// The multiply-high reduction is what the games use, bias included.
func NextRange(seed *uint64, max uint32) uint32 {
	return uint32((uint64(NextU32(seed)) * uint64(max)) >> 32)
}

// Advance jumps seed forward n frames in O(log n).
func Advance(seed, n uint64) uint64 {
	return jump(seed, n, Mult, Add)
}

// Reverse jumps seed backward n frames in O(log n).
func Reverse(seed, n uint64) uint64 {
	return jump(seed, n, RMult, RAdd)
}

func jump(seed, n, mul, add uint64) uint64 {
	accMul, accAdd := uint64(1), uint64(0)
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			accMul *= mul
			accAdd = accAdd*mul + add
		}
		add *= mul + 1
		mul *= mul
	}
	return seed*accMul + accAdd
}

// Source adapts an LCG state to the math/rand/v2 Source interface.
type Source struct {
	Seed uint64
}

// NewSource returns a Source starting at seed.
func NewSource(seed uint64) *Source {
	return &Source{Seed: seed}
}

// Uint64 draws two frames and joins them high word first.
func (s *Source) Uint64() uint64 {
	hi := uint64(NextU32(&s.Seed))
	lo := uint64(NextU32(&s.Seed))
	return hi<<32 | lo
}
