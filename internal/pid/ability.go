package pid

import (
	"fmt"
	"strings"
)

// AbilityBit is the PID bit selecting the ability slot.
const AbilityBit = 1 << 16

// AbilityPermission restricts which ability slot the PID may select.
type AbilityPermission uint8

const (
	AbilityEither AbilityPermission = iota
	AbilityFirst
	AbilitySecond
)

func (a AbilityPermission) String() string {
	switch a {
	case AbilityEither:
		return "either"
	case AbilityFirst:
		return "first"
	case AbilitySecond:
		return "second"
	default:
		return fmt.Sprintf("ability(%d)", uint8(a))
	}
}

// ParseAbility parses an ability permission name or slot number
func ParseAbility(s string) (AbilityPermission, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "either", "any", "12":
		return AbilityEither, nil
	case "first", "1":
		return AbilityFirst, nil
	case "second", "2":
		return AbilitySecond, nil
	}
	return AbilityEither, Invalid.New("unknown ability permission %q", s)
}

// single reports whether exactly one slot is allowed, and that slot's bit.
func (a AbilityPermission) single() (uint32, bool) {
	switch a {
	case AbilityFirst:
		return 0, true
	case AbilitySecond:
		return 1, true
	}
	return 0, false
}

// Allows reports whether the slot bit (0 or 1) is permitted.
func (a AbilityPermission) Allows(bit uint32) bool {
	if want, ok := a.single(); ok {
		return bit == want
	}
	return true
}

// AbilitySlot returns bit 16 of pid.
func AbilitySlot(pid uint32) uint32 {
	return (pid >> 16) & 1
}
