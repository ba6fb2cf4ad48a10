package rankdex

import "github.com/bits-and-blooms/bitset"

// PhraseMatcher finds, for each phrase in a query, the set of documents
// where the phrase's terms occur contiguously and in order, then unions
// those per-phrase matches into the query's overall candidate pool.
type PhraseMatcher struct {
	invIdx *InvertedIndex
}

// NewPhraseMatcher builds a matcher over a loaded InvertedIndex.
func NewPhraseMatcher(invIdx *InvertedIndex) *PhraseMatcher {
	return &PhraseMatcher{invIdx: invIdx}
}

// Candidates returns the union, over every phrase, of the documents that
// contain it. If phrases is empty, the caller should use every known
// doc_id instead — PhraseMatcher only ever handles the "at least one
// phrase" case.
func (pm *PhraseMatcher) Candidates(phrases [][]string) []int {
	seen := make(map[int]bool)
	var candidates []int
	for _, phrase := range phrases {
		for _, docID := range pm.matchPhrase(phrase) {
			if !seen[docID] {
				seen[docID] = true
				candidates = append(candidates, docID)
			}
		}
	}
	return candidates
}

// matchPhrase runs the two-level positional intersection for a single
// phrase: level 1 finds documents containing every term, level 2 checks
// that at least one alignment of positions makes the terms contiguous and
// in order within that document.
func (pm *PhraseMatcher) matchPhrase(phrase []string) []int {
	m := len(phrase)
	if m == 0 {
		return nil
	}

	postings := make([][]Posting, m)
	for i, term := range phrase {
		postings[i] = pm.invIdx.GetPostings(term)
		if len(postings[i]) == 0 {
			return nil
		}
	}
	if m == 1 {
		docs := make([]int, len(postings[0]))
		for i, p := range postings[0] {
			docs[i] = p.DocID
		}
		return docs
	}

	ptr := make([]int, m)
	exhausted := bitset.New(uint(m))
	var matches []int

	maxID := -1
	matchCount := 0
	i := 0

	for exhausted.None() {
		if ptr[i] >= len(postings[i]) {
			exhausted.Set(uint(i))
			continue
		}
		head := postings[i][ptr[i]].DocID

		switch {
		case maxID >= 0 && head < maxID:
			ptr[i]++

		case head == maxID:
			matchCount++
			if matchCount == m {
				members := make([]Posting, m)
				for j := 0; j < m; j++ {
					members[j] = postings[j][ptr[j]]
				}
				if phraseAligns(members) {
					matches = append(matches, maxID)
				}
				for j := 0; j < m; j++ {
					ptr[j]++
					if ptr[j] >= len(postings[j]) {
						exhausted.Set(uint(j))
					}
				}
				maxID = -1
				matchCount = 0
			}
			i = (i + 1) % m

		default: // head > maxID
			maxID = head
			matchCount = 1
			i = (i + 1) % m
		}
	}
	return matches
}

// phraseAligns reports whether some base offset makes positions[i]
// contain (base + i) for every i — i.e. the terms occur contiguously and
// in order starting at position base. members holds one posting per
// phrase term, all for the same document. Each candidate base is drawn,
// in ascending order, from term 0's positions, and the remaining
// terms are checked by binary search; the first base that aligns all terms is a
// witness, and a single witness is sufficient.
func phraseAligns(members []Posting) bool {
	m := len(members)
	first := members[0].Positions
	for _, base := range first {
		aligned := true
		for i := 1; i < m; i++ {
			if !containsPosition(members[i].Positions, base+i) {
				aligned = false
				break
			}
		}
		if aligned {
			return true
		}
	}
	return false
}

// containsPosition binary-searches a strictly increasing position list
// for target.
func containsPosition(positions []int, target int) bool {
	lo, hi := 0, len(positions)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case positions[mid] == target:
			return true
		case positions[mid] < target:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return false
}
