// Package character defines the ability scores and social-context vector that
// every later resolution stage reads.
package character

// AbilityScores holds the eight ability scores of a generated character.
// Each score is in [3, 18].
type AbilityScores struct {
	Strength     int `json:"strength" yaml:"strength"`
	Dexterity    int `json:"dexterity" yaml:"dexterity"`
	Constitution int `json:"constitution" yaml:"constitution"`
	Intelligence int `json:"intelligence" yaml:"intelligence"`
	Wisdom       int `json:"wisdom" yaml:"wisdom"`
	Charisma     int `json:"charisma" yaml:"charisma"`
	Perception   int `json:"perception" yaml:"perception"`
	Craftiness   int `json:"craftiness" yaml:"craftiness"`
}

// AbilityNames lists the ability fields in roll order.
var AbilityNames = []string{
	"strength", "dexterity", "constitution", "intelligence",
	"wisdom", "charisma", "perception", "craftiness",
}

// Modifier returns the ability modifier for a given score: (score - 10) / 2.
func (a AbilityScores) Modifier(score int) int {
	return (score - 10) / 2
}

// Get returns the named score.
//
// Postcondition: ok is false iff name is not one of AbilityNames.
func (a AbilityScores) Get(name string) (int, bool) {
	switch name {
	case "strength":
		return a.Strength, true
	case "dexterity":
		return a.Dexterity, true
	case "constitution":
		return a.Constitution, true
	case "intelligence":
		return a.Intelligence, true
	case "wisdom":
		return a.Wisdom, true
	case "charisma":
		return a.Charisma, true
	case "perception":
		return a.Perception, true
	case "craftiness":
		return a.Craftiness, true
	}
	return 0, false
}

// Set assigns the named score. Unknown names are ignored.
func (a *AbilityScores) Set(name string, v int) {
	switch name {
	case "strength":
		a.Strength = v
	case "dexterity":
		a.Dexterity = v
	case "constitution":
		a.Constitution = v
	case "intelligence":
		a.Intelligence = v
	case "wisdom":
		a.Wisdom = v
	case "charisma":
		a.Charisma = v
	case "perception":
		a.Perception = v
	case "craftiness":
		a.Craftiness = v
	}
}

// SocialContext is the five-axis social vector; every value is in [0, 1].
type SocialContext struct {
	Privilege       float64 `json:"privilege" yaml:"privilege"`
	Wanderlust      float64 `json:"wanderlust" yaml:"wanderlust"`
	Religiosity     float64 `json:"religiosity" yaml:"religiosity"`
	Ambition        float64 `json:"ambition" yaml:"ambition"`
	Entrepreneurial float64 `json:"entrepreneurial" yaml:"entrepreneurial"`
}

// SocialNames lists the social-context fields.
var SocialNames = []string{"privilege", "wanderlust", "religiosity", "ambition", "entrepreneurial"}

// Get returns the named social value.
func (s SocialContext) Get(name string) (float64, bool) {
	switch name {
	case "privilege":
		return s.Privilege, true
	case "wanderlust":
		return s.Wanderlust, true
	case "religiosity":
		return s.Religiosity, true
	case "ambition":
		return s.Ambition, true
	case "entrepreneurial":
		return s.Entrepreneurial, true
	}
	return 0, false
}
