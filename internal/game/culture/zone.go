// Package culture defines the lookup coordinate shared by every content table:
// cultural zone, era, wealth and gender, together with the fixed adjacency
// tables the fallback chains walk.
package culture

import (
	"fmt"
	"strings"
)

// Zone is a coarse civilizational grouping used as the primary lookup axis.
type Zone string

const (
	ZoneEuropean              Zone = "EUROPEAN"
	ZoneMENA                  Zone = "MENA"
	ZoneCentralAsian          Zone = "CENTRAL_ASIAN"
	ZoneSouthAsian            Zone = "SOUTH_ASIAN"
	ZoneEastAsian             Zone = "EAST_ASIAN"
	ZoneSubSaharan            Zone = "SUB_SAHARAN"
	ZoneOceania               Zone = "OCEANIA"
	ZoneSouthAmerican         Zone = "SOUTH_AMERICAN"
	ZoneNorthAmericanNative   Zone = "NORTH_AMERICAN_NATIVE"
	ZoneNorthAmericanColonial Zone = "NORTH_AMERICAN_COLONIAL"
)

// Zones lists every zone in a stable order.
var Zones = []Zone{
	ZoneEuropean, ZoneMENA, ZoneCentralAsian, ZoneSouthAsian, ZoneEastAsian,
	ZoneSubSaharan, ZoneOceania, ZoneSouthAmerican, ZoneNorthAmericanNative,
	ZoneNorthAmericanColonial,
}

// zoneNeighbors is symmetric: if A lists B then B lists A. Order is precedence.
var zoneNeighbors = map[Zone][]Zone{
	ZoneEuropean:              {ZoneMENA, ZoneNorthAmericanColonial, ZoneCentralAsian},
	ZoneMENA:                  {ZoneEuropean, ZoneCentralAsian, ZoneSouthAsian, ZoneSubSaharan},
	ZoneCentralAsian:          {ZoneMENA, ZoneEastAsian, ZoneSouthAsian, ZoneEuropean},
	ZoneSouthAsian:            {ZoneMENA, ZoneCentralAsian, ZoneEastAsian, ZoneOceania},
	ZoneEastAsian:             {ZoneCentralAsian, ZoneSouthAsian},
	ZoneSubSaharan:            {ZoneMENA},
	ZoneOceania:               {ZoneSouthAsian},
	ZoneSouthAmerican:         {ZoneNorthAmericanNative},
	ZoneNorthAmericanNative:   {ZoneSouthAmerican, ZoneNorthAmericanColonial},
	ZoneNorthAmericanColonial: {ZoneEuropean, ZoneNorthAmericanNative},
}

// colonialParents maps a settler zone to the zone it was settled from.
var colonialParents = map[Zone]Zone{
	ZoneNorthAmericanColonial: ZoneEuropean,
}

// Valid reports whether z is a known zone.
func (z Zone) Valid() bool {
	_, ok := zoneNeighbors[z]
	return ok
}

// Neighbors returns the culturally adjacent zones in precedence order.
func (z Zone) Neighbors() []Zone {
	return append([]Zone(nil), zoneNeighbors[z]...)
}

// ColonialParent returns the parent zone of a settler zone.
func (z Zone) ColonialParent() (Zone, bool) {
	p, ok := colonialParents[z]
	return p, ok
}

// IsTropical reports whether the zone defaults to a hot-climate wardrobe.
func (z Zone) IsTropical() bool {
	switch z {
	case ZoneOceania, ZoneSubSaharan, ZoneSouthAmerican:
		return true
	}
	return false
}

// IsMENALike reports whether the zone applies MENA head-covering norms.
func (z Zone) IsMENALike() bool {
	return z == ZoneMENA
}

// ParseZone accepts a zone name in any case, with '-' or ' ' as separators.
func ParseZone(s string) (Zone, error) {
	z := Zone(strings.ToUpper(strings.NewReplacer("-", "_", " ", "_").Replace(strings.TrimSpace(s))))
	if !z.Valid() {
		return "", fmt.Errorf("unknown cultural zone %q", s)
	}
	return z, nil
}
