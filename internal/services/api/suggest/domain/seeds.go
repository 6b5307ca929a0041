package domain

import (
	"strings"

	"setlist/internal/core/textrank"
)

// NormalizeSeed trims and case-folds one seed for comparisons and keys
func NormalizeSeed(s string) string {
	return textrank.Fold(strings.TrimSpace(s))
}

// DedupSeeds drops duplicate seeds case-insensitively, preserving the
// first-seen order and original spelling
func DedupSeeds(seeds []string) []string {
	seen := make(map[string]struct{}, len(seeds))
	out := make([]string, 0, len(seeds))
	for _, s := range seeds {
		n := NormalizeSeed(s)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, strings.TrimSpace(s))
	}
	return out
}
