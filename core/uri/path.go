package uri

import (
	"strings"

	"github.com/rohanthewiz/rroute/consts"
)

// Path returns route cut at the first '?' or '#', whichever comes first.
func Path(route string) string {
	if i := strings.IndexAny(route, consts.StrQueryOrFragment); i >= 0 {
		return route[:i]
	}
	return route
}

// Segments splits the path portion of route into segments.
//
// A leading slash becomes the root segment "/", so "/" yields ["/"] and
// "/user/42" yields ["/", "user", "42"]. Empty pieces produced by repeated or
// trailing slashes are dropped: "/user/42/" tokenizes like "/user/42".
// Patterns and incoming routes go through the same function.
func Segments(route string) []string {
	path := Path(route)
	if path == "" {
		return nil
	}

	segments := make([]string, 0, strings.Count(path, consts.StrSlash)+1)
	if path[0] == consts.RuneFwdSlash {
		segments = append(segments, consts.StrSlash)
		path = path[1:]
	}

	for path != "" {
		i := strings.IndexByte(path, consts.RuneFwdSlash)
		if i < 0 {
			segments = append(segments, path)
			break
		}
		if i > 0 {
			segments = append(segments, path[:i])
		}
		path = path[i+1:]
	}

	return segments
}
