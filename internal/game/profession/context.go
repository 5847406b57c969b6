package profession

import (
	"strings"

	"github.com/cory-johannsen/npcgen/internal/game/culture"
)

// Context is the regional category used to filter plausible social classes.
type Context string

const (
	ContextFrontier Context = "frontier"
	ContextUrban    Context = "urban"
	ContextNative   Context = "native"
	ContextRural    Context = "rural"
	ContextMaritime Context = "maritime"
	ContextGeneral  Context = "general"
)

// Valid reports whether c is a known context.
func (c Context) Valid() bool {
	switch c {
	case ContextFrontier, ContextUrban, ContextNative, ContextRural, ContextMaritime, ContextGeneral:
		return true
	}
	return false
}

// contextKeywords are matched against the region name in order.
var contextKeywords = []struct {
	context  Context
	keywords []string
}{
	{ContextFrontier, []string{"frontier", "territory", "outpost", "borderland", "march", "wilderness", "fort"}},
	{ContextMaritime, []string{"coast", "harbor", "harbour", "port", "island", "isle", "bay", "strait"}},
	{ContextUrban, []string{"city", "capital", "town", "metropolis", "quarter", "court"}},
	{ContextNative, []string{"tribal", "nation", "reservation", "band lands", "homeland"}},
	{ContextRural, []string{"village", "farm", "countryside", "valley", "highland", "steppe", "plain", "hamlet"}},
}

// allowedClasses per context; ContextGeneral allows every class.
var allowedClasses = map[Context][]string{
	ContextFrontier: {"commoner", "artisan", "merchant", "military", "outlaw", "frontier"},
	ContextUrban:    {"commoner", "artisan", "merchant", "clergy", "nobility", "scholar", "military", "outlaw", "court"},
	ContextNative:   {"commoner", "tribal", "spiritual", "artisan"},
	ContextRural:    {"commoner", "peasant", "artisan", "clergy", "nobility", "military"},
	ContextMaritime: {"commoner", "maritime", "merchant", "artisan", "military", "outlaw"},
}

// fallbackClasses are allowed in every context.
var fallbackClasses = []string{"commoner", "artisan", "merchant", "clergy"}

// Classify derives the profession context of a region. An explicit region
// rule wins; otherwise region keywords decide; native zones default to
// native before the industrial era. Anything unmatched is general.
func Classify(region string, zone culture.Zone, era culture.Era, rules []RegionRule) Context {
	for _, r := range rules {
		if r.Context != "" {
			return r.Context
		}
	}
	lower := strings.ToLower(region)
	if lower != "" {
		for _, ck := range contextKeywords {
			for _, k := range ck.keywords {
				if strings.Contains(lower, k) {
					return ck.context
				}
			}
		}
	}
	if zone == culture.ZoneNorthAmericanNative && !era.IsModern() {
		return ContextNative
	}
	return ContextGeneral
}

// ClassAllowed reports whether a social class is plausible in ctx.
func ClassAllowed(ctx Context, class string) bool {
	allowed, ok := allowedClasses[ctx]
	if !ok {
		return true
	}
	return containsFold(allowed, class) || containsFold(fallbackClasses, class)
}
