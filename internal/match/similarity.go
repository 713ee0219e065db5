package match

// Ratio computes a normalized edit similarity between two strings in
// [0, 1]. It is 1 - dist/maxLen over the Levenshtein distance, which is
// symmetric and deterministic. Distances are computed over runes so
// multi-byte characters count as single edits.
func Ratio(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	ar := []rune(a)
	br := []rune(b)
	longest := len(ar)
	if len(br) > longest {
		longest = len(br)
	}
	dist := levenshtein(ar, br)
	similarity := 1 - float64(dist)/float64(longest)
	if similarity < 0 {
		return 0
	}
	return similarity
}

// levenshtein computes edit distance with a rolling single-row buffer.
func levenshtein(a, b []rune) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i, ca := range a {
		curr := make([]int, len(b)+1)
		curr[0] = i + 1
		for j, cb := range b {
			insert := curr[j] + 1
			remove := prev[j+1] + 1
			substitute := prev[j]
			if ca != cb {
				substitute++
			}
			curr[j+1] = minInt(insert, remove, substitute)
		}
		prev = curr
	}
	return prev[len(prev)-1]
}

func minInt(values ...int) int {
	smallest := values[0]
	for _, v := range values[1:] {
		if v < smallest {
			smallest = v
		}
	}
	return smallest
}
