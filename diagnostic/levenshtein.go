package diagnostic

// Suggestion returns the candidate closest to value by edit distance, for use
// in "did you mean" hints on UndefinedIdentifier errors. Returns "" if no
// candidate is close enough to be a plausible typo.
//
// Ported from github.com/openllb/hlb/diagnostic.Suggestion.
func Suggestion(value string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	min := -1
	index := -1
	for i, candidate := range candidates {
		dist := Levenshtein([]rune(value), []rune(candidate))
		if min == -1 || dist < min {
			min = dist
			index = i
		}
	}
	failLimit := 1
	if len(value) > 3 {
		failLimit = 2
	}
	if min > failLimit {
		return ""
	}
	return candidates[index]
}

// Levenshtein returns the number of single-rune insertions, deletions, and
// substitutions needed to turn value into candidate, using a single
// column of the edit-distance matrix rather than the full grid.
func Levenshtein(value, candidate []rune) int {
	column := make([]int, len(value)+1)
	for row := 1; row <= len(value); row++ {
		column[row] = row
	}

	for col := 1; col <= len(candidate); col++ {
		column[0] = col
		diag := col - 1
		for row := 1; row <= len(value); row++ {
			prevColumn := column[row]

			substCost := diag
			if value[row-1] != candidate[col-1] {
				substCost++
			}

			best := column[row] + 1 // deletion
			if ins := column[row-1] + 1; ins < best {
				best = ins // insertion
			}
			if substCost < best {
				best = substCost // substitution / match
			}
			column[row] = best

			diag = prevColumn
		}
	}
	return column[len(value)]
}
