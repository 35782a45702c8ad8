package pid

// Traits are the game-visible properties encoded in a PID.
type Traits struct {
	PID        uint32
	Gender     Gender
	GenderByte uint8
	Ability    uint32
	ShinyXor   uint32
	Shiny      bool
}

// Inspect decodes pid for a species with ratio owned by tr.
func Inspect(pid uint32, ratio GenderRatio, tr Trainer) Traits {
	xor := ShinyXor(pid, tr)
	return Traits{
		PID:        pid,
		Gender:     DeriveGender(pid, ratio),
		GenderByte: uint8(pid),
		Ability:    AbilitySlot(pid),
		ShinyXor:   xor,
		Shiny:      xor < ShinyThreshold,
	}
}

// Satisfies reports whether the decoded traits meet c. Rarity is checked
// strictly: a shiny value never satisfies ShinyNever here.
func (t Traits) Satisfies(c Criteria) bool {
	want := c.Gender
	if c.ForcedGender != GenderAny {
		want = c.ForcedGender
	}
	if want != GenderAny && t.Gender != want {
		return false
	}
	if !c.Ability.Allows(t.Ability) {
		return false
	}
	switch c.Shiny {
	case ShinyAlways:
		return t.Shiny
	case ShinyNever:
		return !t.Shiny
	}
	return true
}
