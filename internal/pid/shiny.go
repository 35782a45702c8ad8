package pid

import (
	"fmt"
	"strings"
)

// ShinyThreshold is the exclusive bound on ShinyXor for a shiny PID.
const ShinyThreshold = 8

// Shiny is the requested rarity class.
type Shiny uint8

const (
	ShinyRandom Shiny = iota
	ShinyAlways
	ShinyNever
)

func (s Shiny) String() string {
	switch s {
	case ShinyRandom:
		return "random"
	case ShinyAlways:
		return "always"
	case ShinyNever:
		return "never"
	default:
		return fmt.Sprintf("shiny(%d)", uint8(s))
	}
}

// ParseShiny parses a rarity class name
func ParseShiny(s string) (Shiny, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "random", "normal":
		return ShinyRandom, nil
	case "always", "yes", "shiny":
		return ShinyAlways, nil
	case "never", "no", "locked":
		return ShinyNever, nil
	}
	return ShinyRandom, Invalid.New("unknown shiny class %q", s)
}

// Trainer identifies the owner a PID is checked against.
type Trainer struct {
	TID uint16
	SID uint16
}

func (t Trainer) xor() uint32 {
	return uint32(t.TID ^ t.SID)
}

func (t Trainer) parity() uint32 {
	return t.xor() & 1
}

// ShinyXor folds the PID halves with the trainer IDs. Values below
// ShinyThreshold are shiny.
func ShinyXor(pid uint32, tr Trainer) uint32 {
	return (pid >> 16) ^ (pid & 0xFFFF) ^ tr.xor()
}

// IsShiny reports whether pid is shiny for tr.
func IsShiny(pid uint32, tr Trainer) bool {
	return ShinyXor(pid, tr) < ShinyThreshold
}

// IsRarityAcceptable decides whether a candidate with the given xor meets
// the requested class. sourceRare is the candidate's shiny state before the
// auxiliary adjustment; a ShinyNever request tolerates a shiny result only
// when the adjustment produced it from a non-shiny candidate.
func IsRarityAcceptable(s Shiny, xor uint32, sourceRare bool) bool {
	rare := xor < ShinyThreshold
	switch s {
	case ShinyAlways:
		return rare
	case ShinyNever:
		return !rare || !sourceRare
	default:
		return true
	}
}
