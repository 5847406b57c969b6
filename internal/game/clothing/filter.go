package clothing

import (
	"slices"
	"strings"
	"unicode"
)

// Region and occupation checks are word matches against keyword lists. They
// are deliberately coarse; unknown regions and occupations pass through.
var (
	australianRegionWords = []string{
		"australia", "australian", "outback", "arnhem", "kimberley", "queensland",
		"new south wales", "victoria", "tasmania", "nullarbor", "pilbara", "top end",
	}
	polynesianItemWords = []string{
		"lei", "tapa", "lavalava", "pareo", "pareu", "grass skirt", "tiki", "hei tiki", "malo", "muumuu",
	}
	workingClassWords = []string{
		"laborer", "labourer", "farmer", "peasant", "serf", "slave", "miner", "fisher", "fisherman",
		"herder", "shepherd", "beggar", "porter", "stevedore", "servant", "wanderer", "drover",
		"thief", "bandit", "outlaw", "smuggler", "poacher", "pirate", "brigand", "cutpurse",
	}
	luxuryWords = []string{
		"silk", "gold", "golden", "velvet", "brocade", "jewel", "jeweled", "jewelled", "pearl",
		"ermine", "silver", "gilded", "ornate", "fine", "cashmere", "electrum", "damask",
	}
)

// aboriginalReplacements stand in for Polynesian-coded pieces in Australian regions.
var aboriginalReplacements = map[Category][]Piece{
	CategoryGarment:   {{Name: "Possum-skin Cloak", Material: "Possum Fur"}},
	CategoryHeadgear:  {{Name: "Hair-string Headband", Material: "Plant Fibre"}},
	CategoryAccessory: {{Name: "Dilly Bag", Material: "Woven Grass"}},
}

// IsAustralianRegion reports whether region names an Australian sub-area.
func IsAustralianRegion(region string) bool {
	return matchesWords(region, australianRegionWords)
}

// IsWorkingClass reports whether occupation is a working-class or outlaw trade.
func IsWorkingClass(occupation string) bool {
	return matchesWords(occupation, workingClassWords)
}

// FilterForRegion post-filters a resolved set for the caller's region and
// occupation. Polynesian-coded pieces are replaced in Australian regions and
// luxury pieces are removed for working-class or outlaw occupations. Emptied
// categories fall back to the sentinel or a basic piece.
func FilterForRegion(s Set, region, occupation string) Set {
	out := s.Clone()
	if IsAustralianRegion(region) {
		for _, c := range Categories {
			kept := slices.DeleteFunc(out.Pieces(c), isPolynesian)
			if len(kept) < len(s.Pieces(c)) {
				if repl, ok := aboriginalReplacements[c]; ok {
					kept = append(kept, repl...)
				}
			}
			out.setPieces(c, kept)
		}
	}
	if IsWorkingClass(occupation) {
		for _, c := range Categories {
			out.setPieces(c, slices.DeleteFunc(out.Pieces(c), isLuxury))
		}
	}
	return ensureComplete(out)
}

func isPolynesian(p Piece) bool {
	return matchesWords(p.Name, polynesianItemWords) || matchesWords(p.Material, polynesianItemWords)
}

func isLuxury(p Piece) bool {
	if p.IsNone() {
		return false
	}
	text := p.Name + " " + p.Material + " " + strings.Join(p.Adjectives, " ")
	return matchesWords(text, luxuryWords)
}

// matchesWords reports whether any keyword (possibly several words) appears
// in text on word boundaries, ignoring case and punctuation.
func matchesWords(text string, keywords []string) bool {
	norm := " " + strings.Join(strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	}), " ") + " "
	for _, k := range keywords {
		if strings.Contains(norm, " "+k+" ") {
			return true
		}
	}
	return false
}
