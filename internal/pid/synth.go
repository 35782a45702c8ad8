package pid

import "github.com/lox/pidgen/internal/lcrng"

const topBit = 1 << 31

// Entity receives the synthesized values.
type Entity interface {
	SetPID(pid uint32)
	SetGender(g Gender)
}

// Record is a minimal Entity.
type Record struct {
	PID    uint32
	Gender Gender
}

func (r *Record) SetPID(pid uint32) { r.PID = pid }

func (r *Record) SetGender(g Gender) { r.Gender = g }

// Criteria are the caller's requirements on the synthesized PID.
type Criteria struct {
	Gender  Gender
	Ability AbilityPermission
	Shiny   Shiny

	// ForcedGender draws the low byte directly from the gender's sub-range
	// of Ratio. It only applies when Ratio.CanForce(ForcedGender); otherwise
	// it acts as a plain gender requirement.
	ForcedGender Gender
}

// Request bundles everything one synthesis call needs.
type Request struct {
	Ratio    GenderRatio
	Adjust   bool
	Trainer  Trainer
	Criteria Criteria
}

// forcing reports whether the forced gender override is active.
func (r Request) forcing() bool {
	return r.Criteria.ForcedGender != GenderAny && r.Ratio.CanForce(r.Criteria.ForcedGender)
}

// wantGender is the gender a candidate must derive to, or GenderAny when the
// low byte already guarantees it.
func (r Request) wantGender() Gender {
	if f := r.Criteria.ForcedGender; f != GenderAny {
		if r.forcing() {
			return GenderAny
		}
		return f
	}
	return r.Criteria.Gender
}

// Check reports requests that are malformed or that no PID can satisfy.
// Synthesize never terminates on a request Check rejects as Unsatisfiable.
func (r Request) Check() error {
	c := r.Criteria
	if c.Gender > Genderless || c.ForcedGender > Genderless {
		return Invalid.New("gender out of range")
	}
	if c.Ability > AbilitySecond {
		return Invalid.New("ability permission out of range")
	}
	if c.Shiny > ShinyNever {
		return Invalid.New("shiny class out of range")
	}
	if c.ForcedGender == Genderless {
		return Invalid.New("cannot force genderless")
	}
	if c.ForcedGender != GenderAny && c.Gender != GenderAny && c.ForcedGender != c.Gender {
		return Invalid.New("forced gender %s conflicts with requested gender %s", c.ForcedGender, c.Gender)
	}
	if want := r.wantGender(); want != GenderAny && !r.Ratio.Allows(want) {
		return Unsatisfiable.New("gender %s impossible with ratio %s", want, r.Ratio)
	}
	return nil
}

// forcedLowByte draws a low byte inside the forced gender's sub-range.
func (r Request) forcedLowByte(seed *uint64) uint32 {
	ratio := uint32(r.Ratio)
	if r.Criteria.ForcedGender == Male {
		return ratio + lcrng.NextRange(seed, 0xFE-ratio)
	}
	return 1 + lcrng.NextRange(seed, ratio-1)
}

// candidate draws and patches one PID. ok is false when it fails a check.
func (r Request) candidate(seed *uint64) (pid uint32, gender Gender, ok bool) {
	pid = lcrng.NextU32(seed)

	if r.forcing() {
		pid = pid&^0xFF | r.forcedLowByte(seed)
	}

	switch r.Criteria.Shiny {
	case ShinyNever:
		if IsShiny(pid, r.Trainer) {
			pid ^= topBit
		}
	case ShinyAlways:
		low := pid & 0xFFFF
		pid = (low^r.Trainer.xor())<<16 | low
	}

	if bit, single := r.Criteria.Ability.single(); single && AbilitySlot(pid) != bit {
		pid ^= AbilityBit
	}

	sourceRare := IsShiny(pid, r.Trainer)
	if r.Adjust {
		// bits 31 and 0 are not the ones that decide shininess; kept as the games have it
		if (pid>>31)^(pid&1)^r.Trainer.parity() != 0 {
			pid ^= topBit
		}
	}

	gender = DeriveGender(pid, r.Ratio)

	if want := r.wantGender(); want != GenderAny && gender != want {
		return pid, gender, false
	}
	if !r.Criteria.Ability.Allows(AbilitySlot(pid)) {
		return pid, gender, false
	}
	if !IsRarityAcceptable(r.Criteria.Shiny, ShinyXor(pid, r.Trainer), sourceRare) {
		return pid, gender, false
	}
	return pid, gender, true
}

// Synthesize draws PIDs from seed until one satisfies req and writes it to e.
// It does not return for requests that cannot be satisfied.
func Synthesize(e Entity, seed *uint64, req Request) {
	for {
		if pid, gender, ok := req.candidate(seed); ok {
			e.SetPID(pid)
			e.SetGender(gender)
			return
		}
	}
}

// SynthesizeN is Synthesize with an attempt cap. It returns the number of
// candidates drawn. When the cap is hit the error is of class Unsatisfiable
// and e is left untouched. maxAttempts <= 0 removes the cap.
func SynthesizeN(e Entity, seed *uint64, req Request, maxAttempts int) (int, error) {
	if err := req.Check(); err != nil {
		return 0, err
	}
	for attempts := 1; maxAttempts <= 0 || attempts <= maxAttempts; attempts++ {
		if pid, gender, ok := req.candidate(seed); ok {
			e.SetPID(pid)
			e.SetGender(gender)
			return attempts, nil
		}
	}
	return maxAttempts, Unsatisfiable.New("no candidate after %d attempts", maxAttempts)
}
