package uri

import (
	"errors"
	"fmt"
	"strings"

	"github.com/grafana/regexp"
	"github.com/rohanthewiz/rroute/consts"
)

// ErrSchemeNotRecognized is reported when a route carries a scheme that is not
// in the configured list. It is informational: the route is still usable as is.
var ErrSchemeNotRecognized = errors.New("scheme not recognized")

var (
	schemePrefix = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*:`)
	schemeName   = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*$`)
)

// SchemeNormalizer strips a recognized application scheme prefix from routes.
// The scheme list is fixed when the normalizer is built.
type SchemeNormalizer struct {
	schemes []string
}

// NewSchemeNormalizer creates a normalizer for the given schemes.
// Empty entries are skipped; order is kept, so the first matching scheme wins.
func NewSchemeNormalizer(schemes ...string) *SchemeNormalizer {
	sn := &SchemeNormalizer{schemes: make([]string, 0, len(schemes))}
	for _, scheme := range schemes {
		if scheme == "" {
			continue
		}
		sn.schemes = append(sn.schemes, scheme)
	}
	return sn
}

// Schemes returns a copy of the recognized schemes.
func (sn *SchemeNormalizer) Schemes() []string {
	if sn == nil {
		return nil
	}
	out := make([]string, len(sn.schemes))
	copy(out, sn.schemes)
	return out
}

// Normalize removes the first recognized "<scheme>:" prefix from route.
// When no recognized scheme matches, route is returned unchanged. If route
// still looks like it starts with a scheme, ErrSchemeNotRecognized is returned
// alongside it so callers may log the miss.
func (sn *SchemeNormalizer) Normalize(route string) (string, error) {
	if sn != nil {
		for _, scheme := range sn.schemes {
			if len(route) > len(scheme) && route[len(scheme)] == consts.RuneColon &&
				strings.HasPrefix(route, scheme) {
				return route[len(scheme)+1:], nil
			}
		}
	}

	if prefix := schemePrefix.FindString(route); prefix != "" {
		return route, fmt.Errorf("%w: %s", ErrSchemeNotRecognized, prefix[:len(prefix)-1])
	}
	return route, nil
}

// ValidScheme reports whether s is a syntactically valid URL scheme name.
func ValidScheme(s string) bool {
	return schemeName.MatchString(s)
}
