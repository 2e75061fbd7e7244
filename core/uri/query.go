package uri

import (
	"strings"

	"github.com/rohanthewiz/rroute/consts"
)

// Split returns the query and fragment portions of route.
// The fragment is everything after the first '#'. The query is everything
// after the first '?' in the text before that '#'.
func Split(route string) (query string, fragment string) {
	if i := strings.IndexByte(route, consts.RuneHash); i >= 0 {
		fragment = route[i+1:]
		route = route[:i]
	}
	if i := strings.IndexByte(route, consts.RuneQuestion); i >= 0 {
		query = route[i+1:]
	}
	return query, fragment
}

// Query returns the key/value pairs of the query portion of route.
func Query(route string) map[string]string {
	query, _ := Split(route)
	params := make(map[string]string)
	parsePairs(query, params)
	return params
}

// Fragment returns the key/value pairs of the fragment portion of route.
func Fragment(route string) map[string]string {
	_, fragment := Split(route)
	params := make(map[string]string)
	parsePairs(fragment, params)
	return params
}

// MergeParams writes the query pairs and then the fragment pairs of route
// into dst. Later writes win, so fragment values override query values and
// both override whatever dst already held (path parameters).
func MergeParams(dst map[string]string, route string) {
	query, fragment := Split(route)
	parsePairs(query, dst)
	parsePairs(fragment, dst)
}

// parsePairs splits s on '&' and each candidate on its first '='.
// Candidates without '=' or with an empty key are skipped.
func parsePairs(s string, dst map[string]string) {
	for s != "" {
		var pair string
		if i := strings.IndexByte(s, consts.RuneAmp); i >= 0 {
			pair, s = s[:i], s[i+1:]
		} else {
			pair, s = s, ""
		}

		eq := strings.IndexByte(pair, consts.RuneEquals)
		if eq <= 0 {
			continue
		}
		dst[pair[:eq]] = pair[eq+1:]
	}
}
