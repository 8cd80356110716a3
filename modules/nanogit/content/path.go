// Package content implements nanogit's path helpers and the three content
// areas (working, staging, committed) that back the staging protocol.
package content

import "strings"

// Path is a value-like slash-separated location. Two paths with identical
// textual form compare equal, so Path is just a string under the hood.
type Path string

// ToAbsolute prepends "/" if p doesn't already start with one.
func (p Path) ToAbsolute() Path {
	if strings.HasPrefix(string(p), "/") {
		return p
	}
	return "/" + p
}

// Resolve concatenates p and suffix with a single "/" separator, regardless
// of whether either side already carries one.
func (p Path) Resolve(suffix string) Path {
	left := strings.TrimSuffix(string(p), "/")
	right := strings.TrimPrefix(suffix, "/")
	if left == "" {
		return Path("/" + right)
	}
	return Path(left + "/" + right)
}

// SplitIntoParts tokenizes on "/" and drops empty tokens, so the root path
// "/" splits into an empty sequence.
func (p Path) SplitIntoParts() []string {
	raw := strings.Split(string(p), "/")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

func (p Path) String() string { return string(p) }
