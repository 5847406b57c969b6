package clothing

import (
	"slices"
	"strings"

	"github.com/cory-johannsen/npcgen/internal/game/culture"
	"github.com/cory-johannsen/npcgen/internal/game/dice"
)

var (
	downgradeAdjectives = []string{"Worn", "Patched"}
	upgradeAdjectives   = []string{"Fine", "Ornate"}
)

// Downgrade moves every piece that is not bare one material quality tier down and
// marks it Worn or Patched.
func Downgrade(s Set, src dice.Source) Set {
	return shiftQuality(s, -1, downgradeAdjectives, src)
}

// Upgrade moves every piece that is not bare one material quality tier up and
// marks it Fine or Ornate.
func Upgrade(s Set, src dice.Source) Set {
	return shiftQuality(s, 1, upgradeAdjectives, src)
}

func shiftQuality(s Set, delta int, adjectives []string, src dice.Source) Set {
	return s.mapPieces(func(_ Category, p Piece) Piece {
		if p.IsBare() {
			return p
		}
		p.Material = ShiftMaterial(p.Material, delta, src)
		return p.withAdjective(dice.Pick(src, adjectives))
	})
}

// adaptToWealth moves a set borrowed from tier from toward tier to.
func adaptToWealth(s Set, from, to culture.Tier, src dice.Source) Set {
	switch {
	case to.Rank() < from.Rank():
		return Downgrade(s, src)
	case to.Rank() > from.Rank():
		return Upgrade(s, src)
	}
	return s
}

// adaptToEra recolors the primary and secondary channels to the era's dyes.
func adaptToEra(s Set, era culture.Era) Set {
	out := s.Clone()
	p := EraPalette(era)
	if len(p.Primary) > 0 {
		out.Palette.Primary = p.Primary
	}
	if len(p.Secondary) > 0 {
		out.Palette.Secondary = p.Secondary
	}
	return out
}

var (
	menaHeadgear     = []string{"hijab", "turban", "keffiyeh", "fez", "none"}
	tropicalHeadgear = []string{"none", "feather", "flower"}
)

// adaptToCulture recolors the secondary and accent channels to the zone's
// colors and applies the zone's headgear norms.
func adaptToCulture(s Set, zone culture.Zone) Set {
	out := s.Clone()
	p := ZonePalette(zone)
	if len(p.Secondary) > 0 {
		out.Palette.Secondary = p.Secondary
	}
	if len(p.Accent) > 0 {
		out.Palette.Accent = p.Accent
	}

	var allowed []string
	switch {
	case zone.IsMENALike():
		allowed = menaHeadgear
	case zone.IsTropical():
		allowed = tropicalHeadgear
	}
	if allowed != nil {
		out.Headgear = slices.DeleteFunc(out.Headgear, func(h Piece) bool {
			return !containsAny(strings.ToLower(h.Name), allowed)
		})
		if len(out.Headgear) == 0 {
			out.Headgear = []Piece{NonePiece()}
		}
	}
	return out
}

// genderSwaps are applied in order as whole-word substitutions on garment names.
var (
	toMaleSwaps = [][2]string{
		{"Dress", "Tunic"}, {"Gown", "Robe"}, {"Skirt", "Kilt"}, {"Bodice", "Vest"},
		{"Blouse", "Shirt"}, {"Kirtle", "Tunic"}, {"Chemise", "Shirt"},
	}
	toFemaleSwaps = [][2]string{
		{"Tunic", "Dress"}, {"Doublet", "Bodice"}, {"Breeches", "Skirt"},
		{"Trousers", "Skirt"}, {"Vest", "Bodice"}, {"Shirt", "Blouse"},
	}
)

const fittedAdjective = "Fitted"

// adaptToGender rewrites garment names toward the requested gender; female
// garments gain the Fitted adjective, male garments lose it.
func adaptToGender(s Set, g culture.Gender) Set {
	swaps := toMaleSwaps
	if g == culture.GenderFemale {
		swaps = toFemaleSwaps
	}
	return s.mapPieces(func(c Category, p Piece) Piece {
		if c != CategoryGarment || p.IsNone() {
			return p
		}
		p.Name = swapWords(p.Name, swaps)
		if g == culture.GenderFemale {
			return p.withAdjective(fittedAdjective)
		}
		return p.withoutAdjective(fittedAdjective)
	})
}

func swapWords(name string, swaps [][2]string) string {
	words := strings.Fields(name)
	for i, w := range words {
		for _, sw := range swaps {
			if w == sw[0] {
				words[i] = sw[1]
				break
			}
		}
	}
	return strings.Join(words, " ")
}
