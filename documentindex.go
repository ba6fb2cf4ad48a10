package rankdex

import (
	"sort"

	"github.com/RoaringBitmap/roaring"
)

// DocumentIndex maps each document ID to its max_tf and cosine length.
// Entries are created once during the build's second pass and thereafter
// read-only. Alongside the per-document map, DocumentIndex keeps a roaring
// bitmap of every known document ID — the compressed representation the
// query command's no-phrase candidate pool draws on instead of a plain slice.
type DocumentIndex struct {
	entries map[int]docRecord
	allDocs *roaring.Bitmap
}

type docRecord struct {
	maxTF  int
	length float64
}

// NewDocumentIndex creates an empty document index.
func NewDocumentIndex() *DocumentIndex {
	return &DocumentIndex{
		entries: make(map[int]docRecord),
		allDocs: roaring.NewBitmap(),
	}
}

// RegisterDocument adds a document's statistics to the index. Registering
// the same document_id twice is a fatal programming error — the builder's
// Pass 2 visits each document exactly once.
func (di *DocumentIndex) RegisterDocument(docID, maxTF int, length float64) {
	if _, exists := di.entries[docID]; exists {
		panic("rankdex: document registered to index twice")
	}
	di.entries[docID] = docRecord{maxTF: maxTF, length: length}
	di.allDocs.Add(uint32(docID))
}

// Size returns the number of documents in the index (N in the ranking
// formula).
func (di *DocumentIndex) Size() int {
	return len(di.entries)
}

// GetMaxTF returns the maximum term frequency recorded for docID.
func (di *DocumentIndex) GetMaxTF(docID int) int {
	return di.entries[docID].maxTF
}

// GetLength returns the cosine normalization length recorded for docID.
func (di *DocumentIndex) GetLength(docID int) float64 {
	return di.entries[docID].length
}

// Has reports whether docID is a known document.
func (di *DocumentIndex) Has(docID int) bool {
	_, exists := di.entries[docID]
	return exists
}

// DocumentIDs returns every known document ID in ascending order — the
// candidate pool for a query with no phrases.
func (di *DocumentIndex) DocumentIDs() []int {
	ids := make([]int, 0, len(di.entries))
	for id := range di.entries {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// AllDocIDs returns a roaring bitmap snapshot of every known document ID.
// Cloned so the caller cannot mutate the index's own bitmap.
func (di *DocumentIndex) AllDocIDs() *roaring.Bitmap {
	return di.allDocs.Clone()
}
