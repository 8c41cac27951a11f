package fieldpath

import "sort"

// Similarity scores two strings by counting matching characters at identical
// indices, divided by the longer string's length.
//
// This is deliberately cheaper than edit distance. It works well here because
// field paths share long common prefixes (e.g. "status.name" vs
// "status.statusCategory"), so a transposed or truncated suffix still scores
// high.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	matches := 0
	for i := 0; i < len(shorter); i++ {
		if shorter[i] == longer[i] {
			matches++
		}
	}

	return float64(matches) / float64(len(longer))
}

// Suggest returns up to maxSuggestions candidates scoring above the
// suggestion threshold, sorted by descending score.
func Suggest(path string, candidates []string) []string {
	type scored struct {
		path  string
		score float64
	}

	matches := make([]scored, 0)
	for _, candidate := range candidates {
		if score := Similarity(path, candidate); score > suggestionThreshold {
			matches = append(matches, scored{path: candidate, score: score})
		}
	}
	if len(matches) == 0 {
		return nil
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].path < matches[j].path
	})

	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.path
	}
	return out
}
