package security

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchPath reports whether an Ant-style pattern matches a request path.
// "*" matches within one segment, "**" across segments, and a trailing
// "/**" also matches the bare prefix.
func MatchPath(pattern, path string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "/**"); ok && path == prefix {
		return true
	}
	ok, err := doublestar.Match(pattern, path)
	return err == nil && ok
}

func matchAny(patterns []string, path string) bool {
	for _, p := range patterns {
		if MatchPath(p, path) {
			return true
		}
	}
	return false
}
