package derive

import "github.com/rivo/uniseg"

// splitGraphemes breaks s into its grapheme clusters, in order.
func splitGraphemes(s string) []string {
	var out []string
	state := -1
	var cluster string
	for len(s) > 0 {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cluster)
	}
	return out
}

// countGraphemes reports how many grapheme clusters s contains.
func countGraphemes(s string) int {
	n := 0
	state := -1
	var rest string
	for len(s) > 0 {
		_, rest, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		s = rest
		n++
	}
	return n
}

// truncateGraphemes cuts s down to exactly n grapheme clusters. The cut
// always falls on a cluster boundary; a multi-codepoint cluster is either
// kept whole or dropped whole. ok is false if s has fewer than n clusters.
func truncateGraphemes(s string, n int) (out string, ok bool) {
	if n <= 0 {
		return "", true
	}
	taken := 0
	count := 0
	state := -1
	rest := s
	var cluster string
	for len(rest) > 0 && count < n {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		taken += len(cluster)
		count++
	}
	return s[:taken], count == n
}
