package cache

import "strings"

// GlobalKeyPrefix namespaces every key this service writes, so a shared
// Redis can host other tenants.
const GlobalKeyPrefix = "pgcetquiz"

// GenerateCacheKey builds "pgcetquiz:<owner>:<kind>:<id>". Quiz sessions
// live under owner "session" and kind "state", keyed by the session id.
// Qualifiers, when given, become one trailing segment joined by "_".
func GenerateCacheKey(owner, kind, id string, qualifiers ...string) string {
	key := GlobalKeyPrefix + ":" + owner + ":" + kind + ":" + id
	if len(qualifiers) == 0 {
		return key
	}
	return key + ":" + strings.Join(qualifiers, "_")
}
