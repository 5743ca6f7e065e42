// Package safety provides channel access filtering and audit logging for MCP
// tool handlers.
package safety

import "path"

// Filter decides whether a channel may be touched by a tool, based on an
// allowlist and a denylist of glob patterns (path.Match syntax).
type Filter struct {
	allowlist []string
	denylist  []string
}

// NewFilter constructs a Filter from the given pattern lists. Nil or empty
// lists impose no restriction of their kind.
func NewFilter(allowlist, denylist []string) *Filter {
	return &Filter{allowlist: allowlist, denylist: denylist}
}

// IsAllowed reports whether resource passes the filter. A denylist match
// always denies, even when the allowlist also matches. With an empty
// allowlist everything not denied is allowed; otherwise the resource must
// match an allowlist entry.
func (f *Filter) IsAllowed(resource string) bool {
	for _, pattern := range f.denylist {
		if matches(pattern, resource) {
			return false
		}
	}
	if len(f.allowlist) == 0 {
		return true
	}
	for _, pattern := range f.allowlist {
		if matches(pattern, resource) {
			return true
		}
	}
	return false
}

// matches applies pattern as a glob; a malformed pattern falls back to exact
// string comparison.
func matches(pattern, s string) bool {
	ok, err := path.Match(pattern, s)
	if err != nil {
		return pattern == s
	}
	return ok
}
