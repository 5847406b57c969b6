package narrator

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/npcgen/internal/game/clothing"
	"github.com/cory-johannsen/npcgen/internal/game/npc"
	"github.com/cory-johannsen/npcgen/internal/game/personality"
)

// SystemPrompt frames every narration request.
const SystemPrompt = "You write short biographies of non-player characters for a historical " +
	"role-playing setting. Use only the facts given. Write two paragraphs of plain prose, " +
	"no headings, no lists, at most 150 words."

// Prompt renders the facts of p as the user prompt. The result depends only
// on p.
func Prompt(p npc.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Age: %d (%s), %s\n", p.Age, p.AgeGroup, strings.ToLower(string(p.Gender)))
	place := fmt.Sprintf("%s, %s era", humanize(string(p.Zone)), humanize(string(p.Era)))
	if p.Region != "" {
		place = humanize(p.Region) + ", " + place
	}
	fmt.Fprintf(&b, "Setting: %s\n", place)
	fmt.Fprintf(&b, "Occupation: %s (%s)\n", p.Profession.Role, p.Profession.SocialClass)
	fmt.Fprintf(&b, "Wealth: %s; carries %s\n", p.Wealth, p.Purse.Display)
	fmt.Fprintf(&b, "Religion: %s\n", humanize(p.Religion))
	if p.Ideology.Ideology != "" {
		fmt.Fprintf(&b, "Outlook: %s", humanize(p.Ideology.Ideology))
		if len(p.Ideology.Beliefs) > 0 {
			held := make([]string, 0, len(p.Ideology.Beliefs))
			for _, hb := range p.Ideology.Beliefs {
				held = append(held, fmt.Sprintf("%s (%d)", humanize(hb.ID), hb.Conviction))
			}
			fmt.Fprintf(&b, "; beliefs: %s", strings.Join(held, ", "))
		}
		b.WriteString("\n")
	}
	if traits := describeTraits(p.Personality); traits != "" {
		fmt.Fprintf(&b, "Temperament: %s\n", traits)
	}
	if dress := describeDress(p.Clothing.Set); dress != "" {
		fmt.Fprintf(&b, "Dress: %s\n", dress)
	}
	if m := p.Marking; m != nil {
		fmt.Fprintf(&b, "Marking: %s on the %s\n", m.Name, strings.Join(m.Locations, " and "))
	}
	return b.String()
}

func humanize(s string) string {
	s = strings.ToLower(strings.ReplaceAll(s, "_", " "))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Only pronounced traits are worth mentioning.
func describeTraits(t personality.Traits) string {
	axes := []struct {
		v         float64
		high, low string
	}{
		{t.Openness, "curious", "traditional"},
		{t.Conscientiousness, "disciplined", "careless"},
		{t.Extraversion, "outgoing", "reserved"},
		{t.Agreeableness, "kind", "abrasive"},
		{t.Neuroticism, "anxious", "calm"},
	}
	var words []string
	for _, a := range axes {
		switch {
		case a.v >= 0.7:
			words = append(words, a.high)
		case a.v <= 0.3:
			words = append(words, a.low)
		}
	}
	return strings.Join(words, ", ")
}

func describeDress(s clothing.Set) string {
	var parts []string
	for _, c := range clothing.Categories {
		for _, piece := range s.Pieces(c) {
			if piece.IsNone() {
				continue
			}
			parts = append(parts, strings.ToLower(piece.String()))
		}
	}
	return strings.Join(parts, ", ")
}
