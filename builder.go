package rankdex

import (
	"context"
	"log/slog"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/corvidlabs/rankdex/internal/lexer"
)

// SourceDocument is one ingested (doc_id, body) pair, already concatenated
// from its source fields by the corpus loader.
type SourceDocument struct {
	ID   int
	Body string
}

// IndexBuilder drives the two-pass construction described by the data
// model: Pass 1 tokenizes every document and populates the InvertedIndex;
// Pass 2, which can only run once every term's df is final, walks the
// documents again to compute each one's cosine length and populate the
// DocumentIndex.
type IndexBuilder struct {
	// Workers bounds the number of goroutines used to shard Pass 1 and to
	// fan out Pass 2. Workers <= 1 runs Pass 1 in the calling goroutine
	// and Pass 2 in a single worker goroutine.
	Workers int
}

// NewIndexBuilder returns a builder that shards work across
// runtime.GOMAXPROCS(0) goroutines.
func NewIndexBuilder() *IndexBuilder {
	return &IndexBuilder{Workers: runtime.GOMAXPROCS(0)}
}

// Build tokenizes every source document, constructs the InvertedIndex in
// Pass 1, then computes per-document cosine lengths in Pass 2 and returns
// the completed InvertedIndex and DocumentIndex.
func (b *IndexBuilder) Build(ctx context.Context, docs []SourceDocument) (*InvertedIndex, *DocumentIndex, error) {
	invIdx, err := b.pass1(ctx, docs)
	if err != nil {
		return nil, nil, err
	}

	docIdx, err := b.pass2(ctx, docs, invIdx)
	if err != nil {
		return nil, nil, err
	}

	return invIdx, docIdx, nil
}

// pass1 tokenizes every document and registers its terms into a shared
// InvertedIndex. When Workers > 1 and there are at least 2*Workers
// documents, documents are sharded across workers that each build a
// private InvertedIndex, merged through mergeShard — safe because no
// doc_id is produced by more than one worker. Otherwise Pass 1 runs
// sequentially in the calling goroutine.
func (b *IndexBuilder) pass1(ctx context.Context, docs []SourceDocument) (*InvertedIndex, error) {
	workers := b.Workers
	if workers < 1 {
		workers = 1
	}
	if workers == 1 || len(docs) < workers*2 {
		return buildShard(docs), nil
	}

	shards := make([]*InvertedIndex, workers)
	chunks := shardDocuments(docs, workers)

	g, _ := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			shards[i] = buildShard(chunk)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := NewInvertedIndex()
	for _, shard := range shards {
		merged.mergeShard(shard)
	}

	slog.Info("build: pass 1 complete", slog.Int("documents", len(docs)), slog.Int("terms", merged.Size()), slog.Int("workers", workers))
	return merged, nil
}

func shardDocuments(docs []SourceDocument, workers int) [][]SourceDocument {
	chunks := make([][]SourceDocument, workers)
	for i, doc := range docs {
		w := i % workers
		chunks[w] = append(chunks[w], doc)
	}
	return chunks
}

func buildShard(docs []SourceDocument) *InvertedIndex {
	idx := NewInvertedIndex()
	for _, src := range docs {
		terms := lexer.Analyze(src.Body)
		doc := FromTokens(src.ID, terms)
		for term, positions := range doc.Terms() {
			idx.RegisterTerm(term, doc.ID, len(positions), positions)
		}
		slog.Info("build: indexed document", slog.Int("doc_id", src.ID), slog.Int("terms", len(terms)))
	}
	return idx
}

// pass2 recomputes every document's term weights using the now-final df
// values and sets its cosine length, populating the DocumentIndex. Fanned
// out across Workers goroutines since each document's length is
// independent of every other's.
func (b *IndexBuilder) pass2(ctx context.Context, docs []SourceDocument, invIdx *InvertedIndex) (*DocumentIndex, error) {
	docIdx := NewDocumentIndex()
	n := len(docs)

	workers := b.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(docs) {
		workers = max(1, len(docs))
	}

	type result struct {
		docID  int
		maxTF  int
		length float64
	}
	results := make(chan result, len(docs))

	g, _ := errgroup.WithContext(ctx)
	chunks := shardDocuments(docs, workers)
	for _, chunk := range chunks {
		chunk := chunk
		g.Go(func() error {
			for _, src := range chunk {
				terms := lexer.Analyze(src.Body)
				doc := FromTokens(src.ID, terms)
				length := documentLength(doc, invIdx, n)
				results <- result{docID: doc.ID, maxTF: doc.MaxTF(), length: length}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)

	for r := range results {
		docIdx.RegisterDocument(r.docID, r.maxTF, r.length)
	}

	slog.Info("build: pass 2 complete", slog.Int("documents", docIdx.Size()))
	return docIdx, nil
}

// documentLength recomputes w(t, doc_id) for every term in doc using the
// final df values in invIdx and returns sqrt(sum of squares).
func documentLength(doc *Document, invIdx *InvertedIndex, n int) float64 {
	maxTF := doc.MaxTF()
	var sumSquares float64
	for term, positions := range doc.Terms() {
		tf := len(positions)
		df := invIdx.GetDF(term)
		idf := probabilisticIDF(n, df)
		tfd := 0.5 + 0.5*float64(tf)/float64(maxTF)
		w := tfd * idf
		sumSquares += w * w
	}
	return math.Sqrt(sumSquares)
}

// probabilisticIDF computes max(0, log10((N-df)/df)), short-circuiting to
// 0 whenever N <= df so log10 of a non-positive argument is never taken.
func probabilisticIDF(n, df int) float64 {
	if df <= 0 || n <= df {
		return 0
	}
	v := math.Log10(float64(n-df) / float64(df))
	if v < 0 {
		return 0
	}
	return v
}
