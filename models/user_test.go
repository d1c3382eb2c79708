package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreferencesClamp(t *testing.T) {
	tests := []struct {
		name             string
		in               Preferences
		wantMin, wantMax int
	}{
		{"below lower bound", Preferences{MinAge: 10, MaxAge: 40}, 18, 40},
		{"above upper bound", Preferences{MinAge: 25, MaxAge: 150}, 25, 100},
		{"both out of range", Preferences{MinAge: 5, MaxAge: 200}, 18, 100},
		{"in range untouched", Preferences{MinAge: 21, MaxAge: 35}, 21, 35},
		{"zero values clamp up", Preferences{}, 18, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Clamp()
			assert.Equal(t, tt.wantMin, tt.in.MinAge)
			assert.Equal(t, tt.wantMax, tt.in.MaxAge)
		})
	}
}

func TestPreferencesClampToleratesInvertedBand(t *testing.T) {
	p := Preferences{MinAge: 60, MaxAge: 30}
	p.Clamp()

	// minAge > maxAge is stored as-is; the invariant is caller-side only.
	assert.Equal(t, 60, p.MinAge)
	assert.Equal(t, 30, p.MaxAge)
}

func TestPreferencesNormalize(t *testing.T) {
	p := Preferences{
		MinAge:             10,
		MaxAge:             120,
		Interests:          []string{" music ", "", "travel", "   "},
		PreferredReligions: []Religion{ReligionHindu, "jedi", ReligionSikh},
		Location:           "  Pune ",
	}
	p.Normalize()

	assert.Equal(t, 18, p.MinAge)
	assert.Equal(t, 100, p.MaxAge)
	assert.Equal(t, []string{"music", "travel"}, p.Interests)
	assert.Equal(t, []Religion{ReligionHindu, ReligionSikh}, p.PreferredReligions)
	assert.Equal(t, "Pune", p.Location)
}

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences(ReligionChristian)
	assert.Equal(t, 18, p.MinAge)
	assert.Equal(t, 50, p.MaxAge)
	assert.Equal(t, []Religion{ReligionChristian}, p.PreferredReligions)

	none := DefaultPreferences("")
	assert.Empty(t, none.PreferredReligions)
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, GenderFemale.Valid())
	assert.False(t, Gender("robot").Valid())

	assert.True(t, ReligionBuddhist.Valid())
	assert.False(t, Religion("").Valid())

	assert.True(t, EducationHighSchool.Valid())
	assert.False(t, Education("kindergarten").Valid())
}

func TestGenderOpposite(t *testing.T) {
	assert.Equal(t, GenderFemale, GenderMale.Opposite())
	assert.Equal(t, GenderMale, GenderFemale.Opposite())
	assert.Equal(t, GenderMale, GenderOther.Opposite())
}
