// Package pathmatch gives checkout_pattern a single predicate to consume,
// backed by the retrieved wildmatch glob engine.
package pathmatch

import "github.com/antgroup/nanogit/modules/wildmatch"

// Predicate compiles pattern into a func(path string) bool the way
// checkout_pattern expects: a plain pattern matches anywhere in the path
// hierarchy (the Basename option is not set), not just its basename.
func Predicate(pattern string) func(path string) bool {
	w := wildmatch.NewWildmatch(pattern, wildmatch.Contents)
	return func(path string) bool {
		return w.Match(path)
	}
}

// PredicateAny ORs several patterns together — a path matches if any pattern
// matches it.
func PredicateAny(patterns ...string) func(path string) bool {
	preds := make([]func(string) bool, len(patterns))
	for i, p := range patterns {
		preds[i] = Predicate(p)
	}
	return func(path string) bool {
		for _, pred := range preds {
			if pred(path) {
				return true
			}
		}
		return false
	}
}
