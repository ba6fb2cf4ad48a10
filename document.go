package rankdex

// Document is a transient per-document accumulator used only during
// ingestion. It maps each term occurring in the document to its ordered,
// strictly-increasing list of positions, built up one AddTerm call at a
// time as the tokenizer emits terms in order. Once the builder has walked
// every term of a Document into the InvertedIndex and DocumentIndex, the
// Document itself is discarded — it does not outlive a single build.
type Document struct {
	ID    int
	terms map[string][]int
}

// NewDocument creates an empty accumulator for the given document ID.
func NewDocument(id int) *Document {
	return &Document{ID: id, terms: make(map[string][]int)}
}

// AddTerm records that term occurs at position. If the term has already
// been seen in this document, position is inserted into its position list
// via InsertUniqueInt, keeping the list strictly increasing with no
// duplicates. Positions are assigned by the caller in the order the
// tokenizer emits terms, starting at 0.
func (d *Document) AddTerm(term string, position int) {
	list, ok := d.terms[term]
	if !ok {
		d.terms[term] = []int{position}
		return
	}
	d.terms[term], _ = InsertUniqueInt(position, list)
}

// Terms returns the accumulated term → positions map. The builder owns the
// returned map; callers should treat it as read-only.
func (d *Document) Terms() map[string][]int {
	return d.terms
}

// MaxTF returns the maximum tf (number of positions) over every term in
// the document. Any document that has accumulated at least one term has a
// max_tf of at least 1.
func (d *Document) MaxTF() int {
	max := 0
	for _, positions := range d.terms {
		if len(positions) > max {
			max = len(positions)
		}
	}
	return max
}

// FromTokens builds a Document by feeding an already-tokenized,
// already-normalized sequence of terms through AddTerm in order, assigning
// positions 0, 1, 2, ... as the tokenizer's own output order dictates.
func FromTokens(id int, terms []string) *Document {
	doc := NewDocument(id)
	for position, term := range terms {
		doc.AddTerm(term, position)
	}
	return doc
}
