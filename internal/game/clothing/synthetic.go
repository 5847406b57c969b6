package clothing

import "github.com/cory-johannsen/npcgen/internal/game/culture"

// synthesize builds a minimal plausible outfit from nothing but the request.
// It always succeeds.
func synthesize(req Request) Set {
	tropical := req.Zone.IsTropical()
	ancient := req.Era.IsAncient()

	var s Set
	switch {
	case ancient && tropical:
		s.Garments = []Piece{{Name: "Loincloth", Material: "Bark Cloth"}}
	case ancient:
		s.Garments = []Piece{{Name: "Hide Wrap", Material: "Hide"}}
	case tropical:
		s.Garments = []Piece{{Name: "Wrap", Material: "Cotton"}}
	default:
		s.Garments = []Piece{{Name: "Simple Tunic", Material: "Linen"}}
	}

	if tropical {
		s.Footwear = []Piece{{Name: "Barefoot", Material: "None"}}
		s.Headgear = []Piece{NonePiece()}
	} else {
		material := "Leather"
		if ancient {
			material = "Hide"
		}
		s.Footwear = []Piece{{Name: "Simple Shoes", Material: material}}
		s.Headgear = []Piece{{Name: "Simple Cap", Material: "Wool"}}
	}

	switch req.Tier {
	case culture.TierPoor:
		s.Belts = []Piece{{Name: "Rope Belt", Material: "Coarse Hemp"}}
		s.Accessories = []Piece{NonePiece()}
	case culture.TierWealthy:
		s.Belts = []Piece{{Name: "Tooled Belt", Material: "Tooled Leather"}}
		s.Accessories = []Piece{{Name: "Simple Ring", Material: "Silver"}}
		s.Garments[0].Adjectives = []string{"Fine"}
	default:
		s.Belts = []Piece{{Name: "Leather Belt", Material: "Leather"}}
		s.Accessories = []Piece{NonePiece()}
	}

	era := EraPalette(req.Era)
	zone := ZonePalette(req.Zone)
	s.Palette = Palette{Primary: era.Primary, Secondary: era.Secondary, Accent: zone.Accent}
	return ensureComplete(s)
}
