package match

import "sort"

// DefaultFuzzyThreshold is the minimum similarity for a fuzzy pairing.
// A candidate whose similarity equals the threshold is accepted.
const DefaultFuzzyThreshold = 0.85

// MatchType records which pass produced a pairing.
type MatchType string

const (
	MatchExact MatchType = "exact"
	MatchFuzzy MatchType = "fuzzy"
)

// Pair links a ground-truth row index to a generated row index.
type Pair struct {
	GT         int
	Gen        int
	Type       MatchType
	Similarity float64
	Key        string
}

// Result is the output of the two-pass row matching. Every row index on
// each side appears in exactly one of Pairs or the corresponding
// unmatched slice.
type Result struct {
	Pairs        []Pair
	UnmatchedGT  []int
	UnmatchedGen []int
	// DuplicateGTKeys and DuplicateGenKeys count composite keys that occur
	// more than once on a side. Duplicates beyond the first fall through
	// to the fuzzy pool and may be lost, so scores can be understated.
	DuplicateGTKeys  map[string]int
	DuplicateGenKeys map[string]int
}

// Match pairs ground-truth and generated rows by composite key.
//
// Pass 1 matches exact key equality; among generated rows sharing a key,
// the first not-yet-used index in scan order wins. Pass 2 scores every
// remaining cross pair with Ratio, keeps pairs at or above threshold, and
// commits them greedily in descending similarity order. The greedy pass
// is an approximation of optimal bipartite assignment and can mis-pair
// rows when several near-identical keys compete; it is kept as-is for
// determinism and simplicity at shelf-audit row counts.
func Match(gtKeys, genKeys []string, threshold float64) Result {
	result := Result{
		Pairs:            make([]Pair, 0, len(gtKeys)),
		DuplicateGTKeys:  duplicateKeys(gtKeys),
		DuplicateGenKeys: duplicateKeys(genKeys),
	}

	usedGT := make([]bool, len(gtKeys))
	usedGen := make([]bool, len(genKeys))

	genByKey := make(map[string][]int, len(genKeys))
	for genIdx, key := range genKeys {
		genByKey[key] = append(genByKey[key], genIdx)
	}

	for gtIdx, key := range gtKeys {
		for _, genIdx := range genByKey[key] {
			if usedGen[genIdx] {
				continue
			}
			result.Pairs = append(result.Pairs, Pair{
				GT:         gtIdx,
				Gen:        genIdx,
				Type:       MatchExact,
				Similarity: 1,
				Key:        key,
			})
			usedGT[gtIdx] = true
			usedGen[genIdx] = true
			break
		}
	}

	type candidate struct {
		similarity float64
		gt         int
		gen        int
	}
	candidates := make([]candidate, 0)
	for gtIdx, gtKey := range gtKeys {
		if usedGT[gtIdx] {
			continue
		}
		for genIdx, genKey := range genKeys {
			if usedGen[genIdx] {
				continue
			}
			ratio := Ratio(gtKey, genKey)
			if ratio >= threshold {
				candidates = append(candidates, candidate{similarity: ratio, gt: gtIdx, gen: genIdx})
			}
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].similarity > candidates[j].similarity
	})
	for _, cand := range candidates {
		if usedGT[cand.gt] || usedGen[cand.gen] {
			continue
		}
		result.Pairs = append(result.Pairs, Pair{
			GT:         cand.gt,
			Gen:        cand.gen,
			Type:       MatchFuzzy,
			Similarity: cand.similarity,
			Key:        gtKeys[cand.gt],
		})
		usedGT[cand.gt] = true
		usedGen[cand.gen] = true
	}

	result.UnmatchedGT = unusedIndices(usedGT)
	result.UnmatchedGen = unusedIndices(usedGen)
	return result
}

// duplicateKeys counts keys occurring more than once, or nil if none do.
func duplicateKeys(keys []string) map[string]int {
	counts := make(map[string]int, len(keys))
	for _, key := range keys {
		counts[key]++
	}
	duplicates := make(map[string]int)
	for key, count := range counts {
		if count > 1 {
			duplicates[key] = count
		}
	}
	if len(duplicates) == 0 {
		return nil
	}
	return duplicates
}

func unusedIndices(used []bool) []int {
	out := make([]int, 0)
	for idx, taken := range used {
		if !taken {
			out = append(out, idx)
		}
	}
	return out
}
