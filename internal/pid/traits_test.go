package pid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveGenderSentinels(t *testing.T) {
	for _, p := range []uint32{0, 1, 0x7F, 0x80, 0xFE, 0xFF, 0xFFFFFFFF, 0x12345678} {
		assert.Equal(t, Genderless, DeriveGender(p, RatioGenderless))
		assert.Equal(t, Female, DeriveGender(p, RatioFemale))
		assert.Equal(t, Male, DeriveGender(p, RatioMale))
	}
}

func TestDeriveGenderThreshold(t *testing.T) {
	tests := []struct {
		name  string
		pid   uint32
		ratio GenderRatio
		want  Gender
	}{
		{"below threshold", 0x1E, Ratio7to1, Female},
		{"at threshold", 0x1F, Ratio7to1, Male},
		{"high bits ignored", 0xFFFFFF00, Ratio1to1, Female},
		{"even split top", 0x7F, 128, Female},
		{"even split bottom", 0x80, 128, Male},
		{"ratio one", 0x00, 1, Female},
		{"ratio 253", 0xFD, 253, Male},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveGender(tt.pid, tt.ratio))
		})
	}
}

func TestParseRatio(t *testing.T) {
	tests := []struct {
		input   string
		want    GenderRatio
		wantErr bool
	}{
		{input: "genderless", want: RatioGenderless},
		{input: "Female", want: RatioFemale},
		{input: "male-only", want: RatioMale},
		{input: "7:1", want: Ratio7to1},
		{input: "1:1", want: Ratio1to1},
		{input: " 1:7 ", want: Ratio1to7},
		{input: "128", want: 128},
		{input: "0x1f", want: 31},
		{input: "256", wantErr: true},
		{input: "2:1", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRatio(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, Invalid.Has(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRatioString(t *testing.T) {
	assert.Equal(t, "1:1", Ratio1to1.String())
	assert.Equal(t, "genderless", RatioGenderless.String())
	assert.Equal(t, "128", GenderRatio(128).String())
}

func TestCanForce(t *testing.T) {
	assert.False(t, RatioMale.CanForce(Male))
	assert.False(t, RatioFemale.CanForce(Female))
	assert.False(t, RatioGenderless.CanForce(Male))
	assert.True(t, Ratio1to1.CanForce(Male))
	assert.True(t, Ratio1to1.CanForce(Female))
	assert.False(t, Ratio1to1.CanForce(Genderless))
	assert.False(t, GenderRatio(1).CanForce(Female))
	assert.True(t, GenderRatio(253).CanForce(Male))
}

func TestParseEnums(t *testing.T) {
	g, err := ParseGender("F")
	require.NoError(t, err)
	assert.Equal(t, Female, g)

	g, err = ParseGender("")
	require.NoError(t, err)
	assert.Equal(t, GenderAny, g)

	_, err = ParseGender("both")
	assert.True(t, Invalid.Has(err))

	s, err := ParseShiny("locked")
	require.NoError(t, err)
	assert.Equal(t, ShinyNever, s)

	_, err = ParseShiny("sometimes")
	assert.True(t, Invalid.Has(err))

	a, err := ParseAbility("2")
	require.NoError(t, err)
	assert.Equal(t, AbilitySecond, a)

	_, err = ParseAbility("hidden")
	assert.True(t, Invalid.Has(err))
}

func TestGenderCode(t *testing.T) {
	assert.Equal(t, uint8(0), Male.Code())
	assert.Equal(t, uint8(1), Female.Code())
	assert.Equal(t, uint8(2), Genderless.Code())
}

func TestShinyXor(t *testing.T) {
	tr := Trainer{TID: 12345, SID: 54321}
	xor := uint32(12345 ^ 54321)

	assert.Equal(t, uint32(0), ShinyXor(xor<<16, tr))
	assert.True(t, IsShiny(xor<<16|7, tr))
	assert.False(t, IsShiny(xor<<16|8, tr))
	assert.Equal(t, uint32(0x8000), ShinyXor(xor<<16^0x80000000, tr))
}

func TestIsRarityAcceptable(t *testing.T) {
	tests := []struct {
		name       string
		shiny      Shiny
		xor        uint32
		sourceRare bool
		want       bool
	}{
		{"random rare", ShinyRandom, 0, true, true},
		{"random plain", ShinyRandom, 0x1234, false, true},
		{"always rare", ShinyAlways, 7, false, true},
		{"always rare from rare source", ShinyAlways, 0, true, true},
		{"always plain", ShinyAlways, 8, true, false},
		{"never plain", ShinyNever, 8, false, true},
		{"never rare from rare source", ShinyNever, 3, true, false},
		{"never rare from plain source", ShinyNever, 3, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRarityAcceptable(tt.shiny, tt.xor, tt.sourceRare))
		})
	}
}

func TestAbilityPermission(t *testing.T) {
	assert.True(t, AbilityEither.Allows(0))
	assert.True(t, AbilityEither.Allows(1))
	assert.True(t, AbilityFirst.Allows(0))
	assert.False(t, AbilityFirst.Allows(1))
	assert.False(t, AbilitySecond.Allows(0))
	assert.True(t, AbilitySecond.Allows(1))

	assert.Equal(t, uint32(1), AbilitySlot(0x00010000))
	assert.Equal(t, uint32(0), AbilitySlot(0xFFFEFFFF))
}

func TestInspect(t *testing.T) {
	tr := Trainer{TID: 12345, SID: 54321}
	traits := Inspect(0x963A7232, Ratio1to1, tr)

	assert.Equal(t, uint32(0x963A7232), traits.PID)
	assert.Equal(t, Female, traits.Gender)
	assert.Equal(t, uint8(0x32), traits.GenderByte)
	assert.Equal(t, uint32(0), traits.Ability)
	assert.Equal(t, uint32(0), traits.ShinyXor)
	assert.True(t, traits.Shiny)

	assert.True(t, traits.Satisfies(Criteria{Gender: Female, Ability: AbilityFirst, Shiny: ShinyAlways}))
	assert.False(t, traits.Satisfies(Criteria{Shiny: ShinyNever}))
	assert.False(t, traits.Satisfies(Criteria{ForcedGender: Male}))
	assert.False(t, traits.Satisfies(Criteria{Ability: AbilitySecond}))
}
