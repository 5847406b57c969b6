package npc

import (
	"fmt"

	"github.com/google/uuid"
)

// profileNamespace scopes every profile ID.
var profileNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("npcgen.profile"))

// ProfileID derives a stable identifier from the seed and the filled request,
// so regenerating the same character yields the same ID.
func ProfileID(r Request) string {
	key := fmt.Sprintf("%d|%s|%s|%s|%s|%s|%d|%s|%s",
		r.Seed, r.Zone, r.Era, r.Gender, r.Wealth, r.Region, r.Age, r.Occasion, r.PreferredRole)
	return uuid.NewSHA1(profileNamespace, []byte(key)).String()
}
