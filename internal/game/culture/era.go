package culture

import (
	"fmt"
	"strings"
)

// Era is a coarse historical period.
type Era string

const (
	EraPrehistoric Era = "PREHISTORIC"
	EraAncient     Era = "ANCIENT"
	EraClassical   Era = "CLASSICAL"
	EraMedieval    Era = "MEDIEVAL"
	EraRenaissance Era = "RENAISSANCE"
	EraEarlyModern Era = "EARLY_MODERN"
	EraIndustrial  Era = "INDUSTRIAL"
	EraModern      Era = "MODERN"
	EraFuture      Era = "FUTURE"
)

// Eras lists every era in chronological order.
var Eras = []Era{
	EraPrehistoric, EraAncient, EraClassical, EraMedieval, EraRenaissance,
	EraEarlyModern, EraIndustrial, EraModern, EraFuture,
}

// eraNeighbors lists one or two adjacent eras per era, in precedence order.
var eraNeighbors = map[Era][]Era{
	EraPrehistoric: {EraAncient},
	EraAncient:     {EraClassical, EraPrehistoric},
	EraClassical:   {EraAncient, EraMedieval},
	EraMedieval:    {EraRenaissance, EraClassical},
	EraRenaissance: {EraMedieval, EraEarlyModern},
	EraEarlyModern: {EraRenaissance, EraIndustrial},
	EraIndustrial:  {EraEarlyModern, EraModern},
	EraModern:      {EraIndustrial, EraFuture},
	EraFuture:      {EraModern},
}

// Valid reports whether e is a known era.
func (e Era) Valid() bool {
	_, ok := eraNeighbors[e]
	return ok
}

// Index returns the chronological position of e, or -1 if unknown.
func (e Era) Index() int {
	for i, x := range Eras {
		if x == e {
			return i
		}
	}
	return -1
}

// Neighbors returns the adjacent eras in precedence order.
func (e Era) Neighbors() []Era {
	return append([]Era(nil), eraNeighbors[e]...)
}

// IsAncient reports whether e is prehistoric or ancient.
func (e Era) IsAncient() bool {
	return e == EraPrehistoric || e == EraAncient
}

// IsModern reports whether e is industrial or later.
func (e Era) IsModern() bool {
	return e.Index() >= EraIndustrial.Index()
}

// ParseEra accepts an era name in any case, with '-' or ' ' as separators.
func ParseEra(s string) (Era, error) {
	e := Era(strings.ToUpper(strings.NewReplacer("-", "_", " ", "_").Replace(strings.TrimSpace(s))))
	if !e.Valid() {
		return "", fmt.Errorf("unknown era %q", s)
	}
	return e, nil
}
