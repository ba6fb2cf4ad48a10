package rankdex

import (
	"math"
	"sort"
)

// Ranker scores a candidate pool of documents against a query's pooled
// term set (keywords and phrase members alike — phrase structure affects
// only which documents are candidates, never term weighting) using the
// augmented-TF, probabilistic-IDF, cosine-normalized model.
type Ranker struct {
	invIdx *InvertedIndex
	docIdx *DocumentIndex
}

// NewRanker builds a Ranker over a loaded InvertedIndex/DocumentIndex pair.
func NewRanker(invIdx *InvertedIndex, docIdx *DocumentIndex) *Ranker {
	return &Ranker{invIdx: invIdx, docIdx: docIdx}
}

// Score is one scored result: a document ID and its cosine-normalized
// score.
type Score struct {
	DocID int
	Value float64
}

// Rank scores every document in candidates against the pooled query terms
// and returns the documents with a non-zero raw score, each paired with
// its cosine-normalized final score. Order is unspecified; callers feed
// the result into TopK.
func (r *Ranker) Rank(terms []string, candidates []int) []Score {
	n := r.docIdx.Size()
	pool := uniqueTerms(terms)

	raw := make(map[int]float64, len(candidates))
	for _, t := range pool {
		df := r.invIdx.GetDF(t)
		if df == 0 {
			continue
		}
		q := queryWeight(n, df)
		idf := probabilisticIDF(n, df)
		if idf == 0 {
			continue
		}

		postings := r.invIdx.GetPostings(t)
		for _, docID := range candidates {
			p, ok := findPosting(postings, docID)
			if !ok {
				continue
			}
			maxTF := r.docIdx.GetMaxTF(docID)
			tfd := 0.5 + 0.5*float64(p.TF)/float64(maxTF)
			w := tfd * idf
			raw[docID] += q * w
		}
	}

	scores := make([]Score, 0, len(raw))
	for docID, rawScore := range raw {
		if rawScore == 0 {
			continue
		}
		length := r.docIdx.GetLength(docID)
		if length == 0 {
			continue
		}
		scores = append(scores, Score{DocID: docID, Value: rawScore / length})
	}
	return scores
}

// queryWeight computes q(t) = log10(N/df). Callers must have already
// excluded df == 0.
func queryWeight(n, df int) float64 {
	return math.Log10(float64(n) / float64(df))
}

// findPosting binary-searches postings (sorted ascending by DocID) for
// docID.
func findPosting(postings []Posting, docID int) (Posting, bool) {
	i := sort.Search(len(postings), func(i int) bool { return postings[i].DocID >= docID })
	if i < len(postings) && postings[i].DocID == docID {
		return postings[i], true
	}
	return Posting{}, false
}

// uniqueTerms deduplicates terms while preserving first-occurrence order,
// pooling keywords and every phrase member into one query vocabulary.
func uniqueTerms(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
