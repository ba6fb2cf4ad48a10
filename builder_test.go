package rankdex

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func s1Corpus() []SourceDocument {
	return []SourceDocument{
		{ID: 1, Body: "the quick brown fox"},
		{ID: 2, Body: "the lazy dog"},
		{ID: 3, Body: "the quick dog"},
	}
}

func TestIndexBuilder_Build_Sequential(t *testing.T) {
	b := &IndexBuilder{Workers: 1}
	invIdx, docIdx, err := b.Build(context.Background(), s1Corpus())
	require.NoError(t, err)

	require.Equal(t, 3, docIdx.Size())
	require.Greater(t, invIdx.GetDF("quick"), 0)
	require.Equal(t, 2, invIdx.GetDF("quick"))
	require.Equal(t, 3, invIdx.GetDF("the"))
}

func TestIndexBuilder_Build_Parallel(t *testing.T) {
	b := &IndexBuilder{Workers: 4}
	invIdx, docIdx, err := b.Build(context.Background(), s1Corpus())
	require.NoError(t, err)

	require.Equal(t, 3, docIdx.Size())
	require.Equal(t, 2, invIdx.GetDF("quick"))
}

func TestIndexBuilder_SequentialAndParallelAgree(t *testing.T) {
	seq := &IndexBuilder{Workers: 1}
	par := &IndexBuilder{Workers: 3}

	seqInv, seqDoc, err := seq.Build(context.Background(), s1Corpus())
	require.NoError(t, err)
	parInv, parDoc, err := par.Build(context.Background(), s1Corpus())
	require.NoError(t, err)

	require.Equal(t, seqInv.Terms(), parInv.Terms())
	for _, term := range seqInv.Terms() {
		require.Equal(t, seqInv.GetDF(term), parInv.GetDF(term))
		require.Equal(t, seqInv.GetPostings(term), parInv.GetPostings(term))
	}
	for _, id := range seqDoc.DocumentIDs() {
		require.Equal(t, seqDoc.GetMaxTF(id), parDoc.GetMaxTF(id))
		require.InDelta(t, seqDoc.GetLength(id), parDoc.GetLength(id), 1e-9)
	}
}

// In this three-document corpus every term of doc 3 ("the", "quick",
// "dog") occurs in at least two of the three documents, so each earns a
// probabilistic IDF of zero ("zero when a term is in more than half the
// corpus") and doc 3's cosine length collapses to zero — the documented
// zero-length edge case from the design notes.
func TestIndexBuilder_Build_DocWithOnlyMajorityTermsHasZeroLength(t *testing.T) {
	b := &IndexBuilder{Workers: 1}
	_, docIdx, err := b.Build(context.Background(), s1Corpus())
	require.NoError(t, err)

	require.Equal(t, 0.0, docIdx.GetLength(3))
}

// doc 1 ("the quick brown fox") has two terms unique to it ("brown",
// "fox"), so it earns a positive cosine length.
func TestIndexBuilder_Build_DocWithRareTermsHasPositiveLength(t *testing.T) {
	b := &IndexBuilder{Workers: 1}
	_, docIdx, err := b.Build(context.Background(), s1Corpus())
	require.NoError(t, err)

	require.Greater(t, docIdx.GetLength(1), 0.0)
}

func TestProbabilisticIDF_ZeroWhenDFCoversHalfOrMore(t *testing.T) {
	require.Equal(t, 0.0, probabilisticIDF(3, 3))
	require.Equal(t, 0.0, probabilisticIDF(4, 2))
}

func TestProbabilisticIDF_PositiveWhenRare(t *testing.T) {
	require.Greater(t, probabilisticIDF(10, 1), 0.0)
}
