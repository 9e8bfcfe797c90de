package knowledge

import (
	"fmt"
	"strings"
)

// HashQuery computes the cache key for a query: a 32-bit rolling
// multiplicative hash of the lowercased, trimmed text, rendered as signed
// hex. Deterministic and cheap; collisions only cause a harmless cache hit
// on an unrelated query, so nothing cryptographic is needed here.
func HashQuery(query string) string {
	clean := strings.TrimSpace(strings.ToLower(query))
	var hash int32
	for _, c := range clean {
		hash = hash*31 + int32(c)
	}
	return fmt.Sprintf("%x", hash)
}
