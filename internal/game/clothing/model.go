// Package clothing resolves a complete outfit for a (zone, era, wealth tier,
// gender) coordinate from a sparse catalog, adapting borrowed outfits so they
// still read as local.
package clothing

import (
	"slices"
	"strings"
)

// Piece is a single item of clothing. Pieces are values; adaptation always
// builds new pieces.
type Piece struct {
	Name       string   `yaml:"name" json:"name"`
	Material   string   `yaml:"material" json:"material"`
	Adjectives []string `yaml:"adjectives,omitempty" json:"adjectives,omitempty"`
}

// NonePiece is the explicit "no applicable item" sentinel.
func NonePiece() Piece {
	return Piece{Name: "None", Material: "None"}
}

// IsNone reports whether p is the sentinel.
func (p Piece) IsNone() bool {
	return strings.EqualFold(p.Name, "none")
}

// IsBare reports whether p stands for no item at all: the sentinel, or an
// authored piece with no material such as Barefoot.
func (p Piece) IsBare() bool {
	return p.IsNone() || strings.EqualFold(strings.TrimSpace(p.Material), "none")
}

// HasAdjective reports whether adj is already attached to p.
func (p Piece) HasAdjective(adj string) bool {
	return slices.Contains(p.Adjectives, adj)
}

func (p Piece) clone() Piece {
	p.Adjectives = slices.Clone(p.Adjectives)
	return p
}

func (p Piece) withAdjective(adj string) Piece {
	out := p.clone()
	if !out.HasAdjective(adj) {
		out.Adjectives = append(out.Adjectives, adj)
	}
	return out
}

func (p Piece) withoutAdjective(adj string) Piece {
	out := p.clone()
	out.Adjectives = slices.DeleteFunc(out.Adjectives, func(a string) bool { return a == adj })
	if len(out.Adjectives) == 0 {
		out.Adjectives = nil
	}
	return out
}

// String renders the piece as "Adj Adj Name (Material)".
func (p Piece) String() string {
	if p.IsNone() {
		return "None"
	}
	parts := append(slices.Clone(p.Adjectives), p.Name)
	return strings.Join(parts, " ") + " (" + p.Material + ")"
}

// Palette is a three-channel color palette.
type Palette struct {
	Primary   []string `yaml:"primary" json:"primary"`
	Secondary []string `yaml:"secondary" json:"secondary"`
	Accent    []string `yaml:"accent" json:"accent"`
}

func (p Palette) clone() Palette {
	return Palette{
		Primary:   slices.Clone(p.Primary),
		Secondary: slices.Clone(p.Secondary),
		Accent:    slices.Clone(p.Accent),
	}
}

// Category names one of the five clothing lists.
type Category string

const (
	CategoryGarment   Category = "garment"
	CategoryHeadgear  Category = "headgear"
	CategoryFootwear  Category = "footwear"
	CategoryBelt      Category = "belt"
	CategoryAccessory Category = "accessory"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryGarment, CategoryHeadgear, CategoryFootwear, CategoryBelt, CategoryAccessory}

// Optional reports whether the category may resolve to the None sentinel.
func (c Category) Optional() bool {
	return c == CategoryHeadgear || c == CategoryBelt || c == CategoryAccessory
}

// Set is a full outfit.
//
// Invariant: once resolution completes every category list is non-empty and
// every palette channel is non-empty.
type Set struct {
	Garments    []Piece `yaml:"garments" json:"garments"`
	Headgear    []Piece `yaml:"headgear" json:"headgear"`
	Footwear    []Piece `yaml:"footwear" json:"footwear"`
	Belts       []Piece `yaml:"belts" json:"belts"`
	Accessories []Piece `yaml:"accessories" json:"accessories"`
	Palette     Palette `yaml:"palette" json:"palette"`
}

// Pieces returns the list for c.
func (s Set) Pieces(c Category) []Piece {
	switch c {
	case CategoryGarment:
		return s.Garments
	case CategoryHeadgear:
		return s.Headgear
	case CategoryFootwear:
		return s.Footwear
	case CategoryBelt:
		return s.Belts
	case CategoryAccessory:
		return s.Accessories
	}
	return nil
}

func (s *Set) setPieces(c Category, pieces []Piece) {
	switch c {
	case CategoryGarment:
		s.Garments = pieces
	case CategoryHeadgear:
		s.Headgear = pieces
	case CategoryFootwear:
		s.Footwear = pieces
	case CategoryBelt:
		s.Belts = pieces
	case CategoryAccessory:
		s.Accessories = pieces
	}
}

// Clone returns a deep copy of s.
func (s Set) Clone() Set {
	out := Set{Palette: s.Palette.clone()}
	for _, c := range Categories {
		src := s.Pieces(c)
		if src == nil {
			continue
		}
		dst := make([]Piece, len(src))
		for i, p := range src {
			dst[i] = p.clone()
		}
		out.setPieces(c, dst)
	}
	return out
}

// Complete reports whether every category and palette channel is non-empty.
func (s Set) Complete() bool {
	for _, c := range Categories {
		if len(s.Pieces(c)) == 0 {
			return false
		}
	}
	return len(s.Palette.Primary) > 0 && len(s.Palette.Secondary) > 0 && len(s.Palette.Accent) > 0
}

// mapPieces builds a new set by applying fn to every piece.
func (s Set) mapPieces(fn func(Category, Piece) Piece) Set {
	out := Set{Palette: s.Palette.clone()}
	for _, c := range Categories {
		src := s.Pieces(c)
		if src == nil {
			continue
		}
		dst := make([]Piece, len(src))
		for i, p := range src {
			dst[i] = fn(c, p.clone())
		}
		out.setPieces(c, dst)
	}
	return out
}

// basicPieces are the generic stand-ins for required categories.
var basicPieces = map[Category]Piece{
	CategoryGarment:  {Name: "Simple Tunic", Material: "Linen"},
	CategoryFootwear: {Name: "Simple Shoes", Material: "Leather"},
}

var neutralPalette = Palette{
	Primary:   []string{"undyed"},
	Secondary: []string{"brown"},
	Accent:    []string{"grey"},
}

// ensureComplete fills every empty category with the sentinel (optional
// categories) or a basic generic piece (required categories), and every empty
// palette channel with a neutral color.
func ensureComplete(s Set) Set {
	out := s.Clone()
	for _, c := range Categories {
		if len(out.Pieces(c)) > 0 {
			continue
		}
		if c.Optional() {
			out.setPieces(c, []Piece{NonePiece()})
		} else {
			out.setPieces(c, []Piece{basicPieces[c]})
		}
	}
	if len(out.Palette.Primary) == 0 {
		out.Palette.Primary = slices.Clone(neutralPalette.Primary)
	}
	if len(out.Palette.Secondary) == 0 {
		out.Palette.Secondary = slices.Clone(neutralPalette.Secondary)
	}
	if len(out.Palette.Accent) == 0 {
		out.Palette.Accent = slices.Clone(neutralPalette.Accent)
	}
	return out
}
