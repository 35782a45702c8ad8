package pid

import (
	"fmt"
	"strconv"
	"strings"
)

// Gender is the categorical gender of an entity. GenderAny is the zero
// value and means "no preference" wherever a Gender is used as a criterion.
type Gender uint8

const (
	GenderAny Gender = iota
	Male
	Female
	Genderless
)

// String returns the lower-case name of the gender
func (g Gender) String() string {
	switch g {
	case GenderAny:
		return "any"
	case Male:
		return "male"
	case Female:
		return "female"
	case Genderless:
		return "genderless"
	default:
		return fmt.Sprintf("gender(%d)", uint8(g))
	}
}

// Code returns the in-game encoding: 0 male, 1 female, 2 genderless.
func (g Gender) Code() uint8 {
	switch g {
	case Female:
		return 1
	case Genderless:
		return 2
	default:
		return 0
	}
}

// ParseGender parses a gender name or symbol
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any", "random":
		return GenderAny, nil
	case "m", "male", "♂":
		return Male, nil
	case "f", "female", "♀":
		return Female, nil
	case "-", "genderless", "none":
		return Genderless, nil
	}
	return GenderAny, Invalid.New("unknown gender %q", s)
}

// GenderRatio is the species gender threshold byte. Three values are
// sentinels; every other value is the count of low-byte values that make
// the entity female.
type GenderRatio uint8

const (
	RatioMale       GenderRatio = 0
	Ratio7to1       GenderRatio = 31
	Ratio3to1       GenderRatio = 63
	Ratio1to1       GenderRatio = 127
	Ratio1to3       GenderRatio = 191
	Ratio1to7       GenderRatio = 225
	RatioFemale     GenderRatio = 254
	RatioGenderless GenderRatio = 255
)

var ratioNames = map[string]GenderRatio{
	"male":        RatioMale,
	"male-only":   RatioMale,
	"7:1":         Ratio7to1,
	"3:1":         Ratio3to1,
	"1:1":         Ratio1to1,
	"1:3":         Ratio1to3,
	"1:7":         Ratio1to7,
	"female":      RatioFemale,
	"female-only": RatioFemale,
	"genderless":  RatioGenderless,
}

// ParseRatio accepts a sentinel name, an "M:F" ratio or a raw byte value.
func ParseRatio(s string) (GenderRatio, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if r, ok := ratioNames[key]; ok {
		return r, nil
	}
	n, err := strconv.ParseUint(key, 0, 8)
	if err != nil {
		return 0, Invalid.New("unknown gender ratio %q", s)
	}
	return GenderRatio(n), nil
}

// IsSentinel reports whether the ratio fixes the gender regardless of PID.
func (r GenderRatio) IsSentinel() bool {
	return r == RatioMale || r == RatioFemale || r == RatioGenderless
}

// CanForce reports whether the low byte can be drawn from g's sub-range.
func (r GenderRatio) CanForce(g Gender) bool {
	if r.IsSentinel() {
		return false
	}
	switch g {
	case Male:
		return r <= 0xFD
	case Female:
		return r >= 2
	default:
		return false
	}
}

// Allows reports whether any PID can produce g under this ratio.
func (r GenderRatio) Allows(g Gender) bool {
	switch r {
	case RatioGenderless:
		return g == Genderless
	case RatioFemale:
		return g == Female
	case RatioMale:
		return g == Male
	}
	return g == Male || g == Female
}

func (r GenderRatio) String() string {
	for _, name := range []string{"male", "7:1", "3:1", "1:1", "1:3", "1:7", "female", "genderless"} {
		if ratioNames[name] == r {
			return name
		}
	}
	return strconv.Itoa(int(r))
}

// DeriveGender maps the PID's low byte to a gender under ratio.
func DeriveGender(pid uint32, ratio GenderRatio) Gender {
	switch ratio {
	case RatioGenderless:
		return Genderless
	case RatioFemale:
		return Female
	case RatioMale:
		return Male
	}
	if uint8(pid) < uint8(ratio) {
		return Female
	}
	return Male
}
