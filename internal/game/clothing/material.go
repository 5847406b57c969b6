package clothing

import (
	"strings"

	"github.com/cory-johannsen/npcgen/internal/game/dice"
)

// MaterialCategory is the broad family of a material.
type MaterialCategory string

const (
	MaterialTextile MaterialCategory = "textile"
	MaterialMetal   MaterialCategory = "metal"
	MaterialLeather MaterialCategory = "leather"
)

// Quality is the four-step material quality scale.
type Quality int

const (
	QualityPoor Quality = iota
	QualityStandard
	QualityGood
	QualityExcellent
)

// String returns the lower-case quality name.
func (q Quality) String() string {
	switch q {
	case QualityPoor:
		return "poor"
	case QualityGood:
		return "good"
	case QualityExcellent:
		return "excellent"
	}
	return "standard"
}

// Classification is substring matching against keyword lists, checked in
// list order. It is an approximation: anything unmatched is textile of
// standard quality.
var categoryKeywords = []struct {
	category MaterialCategory
	words    []string
}{
	{MaterialLeather, []string{"leather", "hide", "fur", "suede", "pelt", "ermine"}},
	{MaterialMetal, []string{"iron", "bronze", "copper", "silver", "gold", "steel", "brass", "pewter", "electrum"}},
}

var qualityKeywords = []struct {
	quality Quality
	words   []string
}{
	{QualityExcellent, []string{"silk", "velvet", "brocade", "cashmere", "damask", "gold", "electrum", "ermine", "gilded", "embroidered"}},
	{QualityGood, []string{"fine", "felt", "suede", "tooled", "brass", "steel", "silver"}},
	{QualityPoor, []string{"burlap", "hemp", "sackcloth", "coarse", "rough", "scrap", "rawhide", "pewter", "bark"}},
	{QualityStandard, []string{"linen", "wool", "cotton", "leather", "hide", "iron", "bronze", "copper"}},
}

// materialVocabulary holds the replacement materials for each category and
// quality. Every entry classifies back into its own category and quality.
var materialVocabulary = map[MaterialCategory]map[Quality][]string{
	MaterialTextile: {
		QualityPoor:      {"Burlap", "Coarse Hemp", "Sackcloth"},
		QualityStandard:  {"Linen", "Wool", "Cotton"},
		QualityGood:      {"Fine Wool", "Fine Linen", "Felt"},
		QualityExcellent: {"Silk", "Velvet", "Brocade"},
	},
	MaterialLeather: {
		QualityPoor:      {"Rawhide", "Scrap Leather"},
		QualityStandard:  {"Leather", "Hide"},
		QualityGood:      {"Suede", "Tooled Leather"},
		QualityExcellent: {"Gilded Leather", "Ermine"},
	},
	MaterialMetal: {
		QualityPoor:      {"Pewter", "Scrap Iron"},
		QualityStandard:  {"Iron", "Bronze", "Copper"},
		QualityGood:      {"Brass", "Steel", "Silver"},
		QualityExcellent: {"Gold", "Electrum"},
	},
}

// ClassifyMaterial returns the category and quality of a free-text material,
// defaulting to textile and standard when nothing matches.
func ClassifyMaterial(material string) (MaterialCategory, Quality) {
	m := strings.ToLower(material)
	category := MaterialTextile
	for _, ck := range categoryKeywords {
		if containsAny(m, ck.words) {
			category = ck.category
			break
		}
	}
	quality := QualityStandard
	for _, qk := range qualityKeywords {
		if containsAny(m, qk.words) {
			quality = qk.quality
			break
		}
	}
	return category, quality
}

// ShiftMaterial moves material delta quality steps within its category by
// substituting a random material from the target tier's vocabulary. A shift
// past either end of the scale leaves the material unchanged.
func ShiftMaterial(material string, delta int, src dice.Source) string {
	category, quality := ClassifyMaterial(material)
	target := quality + Quality(delta)
	if target < QualityPoor || target > QualityExcellent || target == quality {
		return material
	}
	return dice.Pick(src, materialVocabulary[category][target])
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
