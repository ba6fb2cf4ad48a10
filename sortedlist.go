// Package rankdex implements the core of a positional inverted index and
// ranked Boolean/phrase query evaluator, as specified by the project's
// engine specification: a two-pass index builder, a TF-IDF cosine ranker,
// a k-way positional phrase matcher, and a bounded top-k selector.
package rankdex

import "sort"

// SortedListOps: in-place sorted-insert and merge primitives over already
// ordered sequences. InvertedIndex, Document, and the builder's Pass 1
// merge step all go through here; the ranker's posting lookup and the
// phrase matcher's position lookup do their own binary search.

// InsertUniqueInt inserts x into the already-sorted list in sorted order
// using binary search. If x is already present, the list is returned
// unchanged and added is false. Otherwise x is inserted at the first
// position where list[i] > x and added is true.
func InsertUniqueInt(x int, list []int) (result []int, added bool) {
	low, high := 0, len(list)-1
	for low <= high {
		mid := (low + high) / 2
		switch {
		case list[mid] == x:
			return list, false
		case list[mid] < x:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return insertIntAt(list, low, x), true
}

func insertIntAt(list []int, index, x int) []int {
	list = append(list, 0)
	copy(list[index+1:], list[index:])
	list[index] = x
	return list
}

// Posting is the triple (doc_id, tf, positions) associated with one
// (term, document) pair. tf always equals len(positions), and positions is
// strictly increasing.
type Posting struct {
	DocID     int
	TF        int
	Positions []int
}

// InsertByHead inserts p into a postings list already sorted by DocID,
// using binary search on the head (DocID) field. The caller must guarantee
// no existing entry shares p.DocID — InsertByHead does not dedupe by head,
// it only finds the insertion point before the first entry whose DocID is
// strictly greater than p.DocID.
func InsertByHead(p Posting, list []Posting) []Posting {
	low, high := 0, len(list)
	for low < high {
		mid := (low + high) / 2
		if list[mid].DocID > p.DocID {
			high = mid
		} else {
			low = mid + 1
		}
	}
	list = append(list, Posting{})
	copy(list[low+1:], list[low:])
	list[low] = p
	return list
}

// IntersectInts returns a new sorted list containing the elements common
// to both already-sorted inputs.
func IntersectInts(a, b []int) []int {
	out := make([]int, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}

// UnionInts returns a new sorted list containing every element present in
// either already-sorted input.
func UnionInts(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// IntersectByHead returns a new list of postings, sorted by DocID,
// containing only the documents present in both inputs. Reserved for
// future Boolean extensions — the current engine only unions per-phrase
// candidate sets, but the primitive is total and correct for AND semantics
// if a caller needs them.
func IntersectByHead(a, b []Posting) []Posting {
	out := make([]Posting, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].DocID == b[j].DocID:
			out = append(out, a[i])
			i++
			j++
		case a[i].DocID < b[j].DocID:
			i++
		default:
			j++
		}
	}
	return out
}

// UnionByHead returns a new list of postings, sorted by DocID, containing
// every posting from both inputs. Neither input may contain a given DocID
// more than once; this is the merge step a parallel build uses to combine
// per-shard partial postings lists for the same term.
func UnionByHead(a, b []Posting) []Posting {
	out := make([]Posting, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].DocID == b[j].DocID:
			out = append(out, a[i])
			i++
			j++
		case a[i].DocID < b[j].DocID:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// sortedInts reports whether list is already sorted ascending.
func sortedInts(list []int) bool {
	return sort.IntsAreSorted(list)
}
