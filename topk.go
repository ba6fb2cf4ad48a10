package rankdex

// TopK is a bounded min-heap over (doc_id, score) pairs, ordered by score
// ascending, so the root is always the current worst of the k best seen
// so far. Sift operations are iterative rather than recursive, per the
// design note that recursive sift-down risks stack growth for large k.
type TopK struct {
	capacity int
	heap     []Score
}

// NewTopK creates a selector with the given capacity. capacity must be
// positive.
func NewTopK(capacity int) *TopK {
	return &TopK{capacity: capacity, heap: make([]Score, 0, capacity)}
}

// Offer considers one (doc_id, score) candidate. If the heap has not yet
// reached capacity, the candidate is always inserted. Once at capacity, it
// replaces the current root only if its score is strictly greater than
// the root's — ties keep whichever candidate arrived first.
func (t *TopK) Offer(s Score) {
	if len(t.heap) < t.capacity {
		t.heap = append(t.heap, s)
		t.siftUp(len(t.heap) - 1)
		return
	}
	if len(t.heap) == 0 || s.Value <= t.heap[0].Value {
		return
	}
	t.heap[0] = s
	t.siftDown(0)
}

// Len returns the number of candidates currently held (<= capacity).
func (t *TopK) Len() int {
	return len(t.heap)
}

// Drain empties the heap and returns its contents in descending score
// order — callers never need to reverse the result themselves.
func (t *TopK) Drain() []Score {
	n := len(t.heap)
	out := make([]Score, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = t.pop()
	}
	return out
}

func (t *TopK) pop() Score {
	root := t.heap[0]
	last := len(t.heap) - 1
	t.heap[0] = t.heap[last]
	t.heap = t.heap[:last]
	if len(t.heap) > 0 {
		t.siftDown(0)
	}
	return root
}

func (t *TopK) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if t.heap[i].Value >= t.heap[parent].Value {
			break
		}
		t.heap[i], t.heap[parent] = t.heap[parent], t.heap[i]
		i = parent
	}
}

func (t *TopK) siftDown(i int) {
	n := len(t.heap)
	for {
		left := 2*i + 1
		right := 2*i + 2
		smallest := i
		if left < n && t.heap[left].Value < t.heap[smallest].Value {
			smallest = left
		}
		if right < n && t.heap[right].Value < t.heap[smallest].Value {
			smallest = right
		}
		if smallest == i {
			return
		}
		t.heap[i], t.heap[smallest] = t.heap[smallest], t.heap[i]
		i = smallest
	}
}
