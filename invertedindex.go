package rankdex

import "sort"

// InvertedIndex maps each normalized term to its document frequency (df)
// and postings list, kept sorted by DocID at insertion time rather than at
// the end — every call to RegisterTerm leaves the index in a valid,
// queryable state. df always equals len(postings); the builder and loader
// both rely on that invariant holding after every mutation.
type InvertedIndex struct {
	entries map[string]*indexEntry
}

type indexEntry struct {
	df       int
	postings []Posting
}

// NewInvertedIndex creates an empty index.
func NewInvertedIndex() *InvertedIndex {
	return &InvertedIndex{entries: make(map[string]*indexEntry)}
}

// RegisterTerm adds a (term, doc_id, tf, positions) posting to the index.
// tf must equal len(positions) and positions must already be strictly
// increasing — the builder guarantees both by construction. Registering
// the same (term, doc_id) pair twice is a programming error: the builder's
// own construction order (one call per term per document, each document
// visited once in Pass 1) makes this impossible, but it is still guarded
// here so a bug surfaces immediately instead of silently corrupting df.
func (idx *InvertedIndex) RegisterTerm(term string, docID, tf int, positions []int) {
	entry, exists := idx.entries[term]
	if !exists {
		idx.entries[term] = &indexEntry{
			df:       1,
			postings: []Posting{{DocID: docID, TF: tf, Positions: positions}},
		}
		return
	}

	for _, p := range entry.postings {
		if p.DocID == docID {
			panic("rankdex: RegisterTerm called twice for the same (term, doc_id) pair")
		}
	}

	entry.postings = InsertByHead(Posting{DocID: docID, TF: tf, Positions: positions}, entry.postings)
	entry.df++
}

// GetPostings returns the postings sequence for term in ascending DocID
// order, or an empty slice if the term is absent.
func (idx *InvertedIndex) GetPostings(term string) []Posting {
	entry, exists := idx.entries[term]
	if !exists {
		return nil
	}
	return entry.postings
}

// GetDF returns the document frequency for term, or 0 if the term is
// absent from the index.
func (idx *InvertedIndex) GetDF(term string) int {
	entry, exists := idx.entries[term]
	if !exists {
		return 0
	}
	return entry.df
}

// Size returns the number of distinct terms in the index.
func (idx *InvertedIndex) Size() int {
	return len(idx.entries)
}

// Terms returns every term in the index, sorted lexicographically — the
// same order the TSV persistence format requires.
func (idx *InvertedIndex) Terms() []string {
	terms := make([]string, 0, len(idx.entries))
	for term := range idx.entries {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// mergeShard folds a per-shard partial index (built by one worker over a
// subset of documents during a parallelized Pass 1, see the builder) into
// idx. Each term's postings are combined via UnionByHead — safe because no
// doc_id can appear in more than one shard's postings for the same term,
// since each document is processed by exactly one worker.
func (idx *InvertedIndex) mergeShard(shard *InvertedIndex) {
	for term, shardEntry := range shard.entries {
		entry, exists := idx.entries[term]
		if !exists {
			idx.entries[term] = &indexEntry{
				df:       shardEntry.df,
				postings: append([]Posting(nil), shardEntry.postings...),
			}
			continue
		}
		entry.postings = UnionByHead(entry.postings, shardEntry.postings)
		entry.df = len(entry.postings)
	}
}
