package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Age bounds accepted anywhere in the system, for profiles and preferences
// alike.
const (
	MinAllowedAge = 18
	MaxAllowedAge = 100
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Opposite returns the default gender a requester is matched against when no
// explicit gender preference exists: male maps to female, everything else
// maps to male.
func (g Gender) Opposite() Gender {
	if g == GenderMale {
		return GenderFemale
	}
	return GenderMale
}

type Religion string

const (
	ReligionHindu     Religion = "hindu"
	ReligionMuslim    Religion = "muslim"
	ReligionChristian Religion = "christian"
	ReligionSikh      Religion = "sikh"
	ReligionJain      Religion = "jain"
	ReligionBuddhist  Religion = "buddhist"
	ReligionOther     Religion = "other"
)

func (r Religion) Valid() bool {
	switch r {
	case ReligionHindu, ReligionMuslim, ReligionChristian, ReligionSikh,
		ReligionJain, ReligionBuddhist, ReligionOther:
		return true
	}
	return false
}

type Education string

const (
	EducationHighSchool Education = "high_school"
	EducationBachelor   Education = "bachelor"
	EducationMaster     Education = "master"
	EducationPhD        Education = "phd"
	EducationOther      Education = "other"
)

func (e Education) Valid() bool {
	switch e {
	case EducationHighSchool, EducationBachelor, EducationMaster,
		EducationPhD, EducationOther:
		return true
	}
	return false
}

// Preferences is the nested match-preference sub-record on a user. minAge and
// maxAge are clamped on update, not validated transactionally: a stored record
// with minAge > maxAge must still be readable and queryable.
type Preferences struct {
	MinAge             int        `bson:"minAge" json:"minAge"`
	MaxAge             int        `bson:"maxAge" json:"maxAge"`
	PreferredReligions []Religion `bson:"preferredReligions,omitempty" json:"preferredReligions,omitempty"`
	Interests          []string   `bson:"interests,omitempty" json:"interests,omitempty"`
	Location           string     `bson:"location,omitempty" json:"location,omitempty"`
}

// Clamp forces both age bounds into [MinAllowedAge, MaxAllowedAge]. It does
// not repair minAge > maxAge; that combination simply matches nobody.
func (p *Preferences) Clamp() {
	if p.MinAge < MinAllowedAge {
		p.MinAge = MinAllowedAge
	}
	if p.MinAge > MaxAllowedAge {
		p.MinAge = MaxAllowedAge
	}
	if p.MaxAge < MinAllowedAge {
		p.MaxAge = MinAllowedAge
	}
	if p.MaxAge > MaxAllowedAge {
		p.MaxAge = MaxAllowedAge
	}
}

// Normalize clamps the age band and cleans the free-form fields: interests
// are trimmed with empties dropped, preferred religions are filtered to the
// known set, location is trimmed.
func (p *Preferences) Normalize() {
	p.Clamp()

	interests := p.Interests[:0]
	for _, it := range p.Interests {
		if it = strings.TrimSpace(it); it != "" {
			interests = append(interests, it)
		}
	}
	p.Interests = interests

	religions := p.PreferredReligions[:0]
	for _, r := range p.PreferredReligions {
		if r.Valid() {
			religions = append(religions, r)
		}
	}
	p.PreferredReligions = religions

	p.Location = strings.TrimSpace(p.Location)
}

// DefaultPreferences is the sub-record seeded at registration.
func DefaultPreferences(religion Religion) Preferences {
	p := Preferences{MinAge: MinAllowedAge, MaxAge: 50}
	if religion.Valid() {
		p.PreferredReligions = []Religion{religion}
	}
	return p
}

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName    string             `bson:"firstName" json:"firstName"`
	LastName     string             `bson:"lastName,omitempty" json:"lastName,omitempty"`
	Email        string             `bson:"email" json:"email,omitempty"`
	Password     string             `bson:"password,omitempty" json:"-"`
	Age          int                `bson:"age" json:"age"`
	Gender       Gender             `bson:"gender,omitempty" json:"gender,omitempty"`
	Religion     Religion           `bson:"religion,omitempty" json:"religion,omitempty"`
	Caste        string             `bson:"caste,omitempty" json:"caste,omitempty"`
	Education    Education          `bson:"education,omitempty" json:"education,omitempty"`
	Occupation   string             `bson:"occupation,omitempty" json:"occupation,omitempty"`
	Bio          string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Interests    []string           `bson:"interests,omitempty" json:"interests,omitempty"`
	Location     string             `bson:"location,omitempty" json:"location,omitempty"`
	ProfilePhoto string             `bson:"profilePhoto,omitempty" json:"profilePhoto,omitempty"`
	Photos       []string           `bson:"photos,omitempty" json:"photos,omitempty"`
	Preferences  Preferences        `bson:"preferences" json:"preferences"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
