package culture

import (
	"fmt"
	"strings"
)

// Gender is the gender axis of a content lookup.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Opposite returns the other gender.
func (g Gender) Opposite() Gender {
	if g == GenderFemale {
		return GenderMale
	}
	return GenderFemale
}

// Valid reports whether g is a known gender.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// ParseGender accepts "male", "m", "female", "f" in any case.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return GenderMale, nil
	case "female", "f":
		return GenderFemale, nil
	}
	return "", fmt.Errorf("unknown gender %q", s)
}

// Coordinate is the key into every content table.
type Coordinate struct {
	Zone   Zone   `json:"zone" yaml:"zone"`
	Era    Era    `json:"era" yaml:"era"`
	Tier   Tier   `json:"tier" yaml:"tier"`
	Gender Gender `json:"gender" yaml:"gender"`
}

// Redirected applies the colonial override: a settler zone in the industrial
// era or later dresses like its parent zone in the same era.
func (c Coordinate) Redirected() Coordinate {
	if parent, ok := c.Zone.ColonialParent(); ok && c.Era.IsModern() {
		c.Zone = parent
	}
	return c
}

// String renders the coordinate as ZONE/ERA/tier/Gender.
func (c Coordinate) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", c.Zone, c.Era, c.Tier, c.Gender)
}

// AgeGroup is the coarse age bracket used by eligibility filters.
type AgeGroup string

const (
	AgeChild AgeGroup = "child"
	AgeYoung AgeGroup = "young"
	AgeAdult AgeGroup = "adult"
	AgeElder AgeGroup = "elder"
)

// AgeGroupFor maps a numeric age onto its bracket.
func AgeGroupFor(age int) AgeGroup {
	switch {
	case age < 16:
		return AgeChild
	case age < 25:
		return AgeYoung
	case age < 50:
		return AgeAdult
	default:
		return AgeElder
	}
}
