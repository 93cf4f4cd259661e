package scoring

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/gutcheck/backend/internal/models"
)

// Version identifies the locked scoring tables. Every persisted score record
// carries this string so historical results stay interpretable after the
// tables change. Bump it whenever CategoryWeights, scoringMaps, reverseScored,
// or StarTiers change.
const Version = "locked-2025-01-27"

// Fingerprint returns a SHA-256 digest over a canonical serialization of the
// scoring tables. Logged at startup; two binaries with the same Version but
// different fingerprints indicate an unbumped table edit.
func Fingerprint() string {
	var b strings.Builder

	b.WriteString("version=" + Version + "\n")

	for _, c := range models.CategoryOrder {
		fmt.Fprintf(&b, "weight:%s=%g\n", c, CategoryWeights[c])
	}

	ids := make([]string, 0, len(scoringMaps))
	for id := range scoringMaps {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintf(&b, "map:%s=%v\n", id, scoringMaps[id])
	}

	rev := make([]string, 0, len(reverseScored))
	for id := range reverseScored {
		rev = append(rev, id)
	}
	sort.Strings(rev)
	fmt.Fprintf(&b, "reverse=%v\n", rev)

	for _, t := range StarTiers {
		fmt.Fprintf(&b, "tier:%d=%s:%d-%d\n", t.Stars, t.Name, t.Min, t.Max)
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
