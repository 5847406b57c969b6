package marking

import "strings"

// Renderer-facing pattern vocabulary.
const (
	PatternTribal        = "tribal"
	PatternGeometric     = "geometric"
	PatternFloral        = "floral"
	PatternScript        = "script"
	PatternDots          = "dots"
	PatternEyeBand       = "eye_band"
	PatternFaceLines     = "face_lines"
	PatternScarification = "scarification"
	PatternPiercing      = "piercing"
	PatternBrandMark     = "brand_mark"
	PatternHennaLace     = "henna_lace"
	PatternAshSmear      = "ash_smear"
	PatternBodyPaint     = "body_paint"
	PatternStructural    = "structural"
)

// Vocabulary lists every pattern value a Descriptor may carry.
var Vocabulary = []string{
	PatternTribal, PatternGeometric, PatternFloral, PatternScript, PatternDots,
	PatternEyeBand, PatternFaceLines, PatternScarification, PatternPiercing,
	PatternBrandMark, PatternHennaLace, PatternAshSmear, PatternBodyPaint,
	PatternStructural,
}

// fixedPatterns collapse every pattern of a type onto one vocabulary entry.
var fixedPatterns = map[Type]string{
	TypeScarification: PatternScarification,
	TypePiercing:      PatternPiercing,
	TypeBrand:         PatternBrandMark,
	TypeHenna:         PatternHennaLace,
	TypeAsh:           PatternAshSmear,
	TypeStructural:    PatternStructural,
}

// patternAliases maps authored tattoo and paint pattern names by keyword.
// Checked in order.
var patternAliases = []struct {
	keywords []string
	pattern  string
}{
	{[]string{"eye_liner", "eyeliner", "eye_band", "kohl"}, PatternEyeBand},
	{[]string{"face_lines", "facial", "cheek", "chin", "moko"}, PatternFaceLines},
	{[]string{"script", "calligraph", "letter", "sutra", "yantra"}, PatternScript},
	{[]string{"dot", "spot"}, PatternDots},
	{[]string{"floral", "flower", "lotus", "vine", "leaf"}, PatternFloral},
	{[]string{"geometric", "chevron", "zigzag", "grid", "lattice", "spiral", "line"}, PatternGeometric},
	{[]string{"tribal", "band", "animal", "clan", "totem"}, PatternTribal},
}

// StructuralDetail describes a reshaping of the body.
type StructuralDetail struct {
	Modification string `json:"modification" yaml:"modification"`
	Permanent    bool   `json:"permanent" yaml:"permanent"`
	Significance string `json:"significance" yaml:"significance"`
}

// PiercingDetail describes a piercing and its jewelry.
type PiercingDetail struct {
	Style     string   `json:"style" yaml:"style"`
	Locations []string `json:"locations" yaml:"locations"`
	Material  string   `json:"material" yaml:"material"`
}

// ScarificationDetail describes a scar pattern.
type ScarificationDetail struct {
	Motif        string `json:"motif" yaml:"motif"`
	Permanent    bool   `json:"permanent" yaml:"permanent"`
	Significance string `json:"significance" yaml:"significance"`
}

// Descriptor is the renderer-agnostic form of a selected marking.
type Descriptor struct {
	ID            string               `json:"id" yaml:"id"`
	Name          string               `json:"name" yaml:"name"`
	Type          Type                 `json:"type" yaml:"type"`
	Pattern       string               `json:"pattern" yaml:"pattern"`
	Locations     []string             `json:"locations" yaml:"locations"`
	Colors        []string             `json:"colors" yaml:"colors"`
	Size          string               `json:"size" yaml:"size"`
	Permanent     bool                 `json:"permanent" yaml:"permanent"`
	Duration      string               `json:"duration,omitempty" yaml:"duration,omitempty"`
	Significance  string               `json:"significance,omitempty" yaml:"significance,omitempty"`
	Structural    *StructuralDetail    `json:"structural,omitempty" yaml:"structural,omitempty"`
	Piercing      *PiercingDetail      `json:"piercing,omitempty" yaml:"piercing,omitempty"`
	Scarification *ScarificationDetail `json:"scarification,omitempty" yaml:"scarification,omitempty"`
}

// Describe converts a selection into its descriptor.
//
// Postcondition: the descriptor's Pattern is an element of Vocabulary.
func Describe(sel Selection) Descriptor {
	d, p := sel.Definition, sel.Pattern
	out := Descriptor{
		ID:           d.ID,
		Name:         d.Name,
		Type:         d.Type,
		Pattern:      NormalizePattern(d.Type, p.Name),
		Locations:    append([]string(nil), p.Locations...),
		Colors:       append([]string(nil), p.Colors...),
		Size:         p.Size,
		Permanent:    d.Permanent,
		Duration:     d.Duration,
		Significance: d.Significance,
	}
	if out.Size == "" {
		out.Size = "medium"
	}
	switch d.Type {
	case TypeStructural:
		out.Structural = &StructuralDetail{Modification: p.Name, Permanent: d.Permanent, Significance: d.Significance}
	case TypePiercing:
		material := "bone"
		if len(p.Colors) > 0 {
			material = p.Colors[0]
		}
		out.Piercing = &PiercingDetail{Style: p.Name, Locations: append([]string(nil), p.Locations...), Material: material}
	case TypeScarification:
		out.Scarification = &ScarificationDetail{Motif: p.Name, Permanent: true, Significance: d.Significance}
		out.Permanent = true
	}
	return out
}

// NormalizePattern maps an authored pattern name onto the renderer
// vocabulary. Unmatched tattoo patterns become tribal and unmatched paint
// patterns become body_paint.
func NormalizePattern(t Type, name string) string {
	if fixed, ok := fixedPatterns[t]; ok {
		return fixed
	}
	n := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
	for _, a := range patternAliases {
		for _, k := range a.keywords {
			if strings.Contains(n, k) {
				return a.pattern
			}
		}
	}
	if t == TypePaint {
		return PatternBodyPaint
	}
	return PatternTribal
}
