package rankdex

import (
	"context"
	"sort"
	"testing"
)

func buildS1Index(t *testing.T) *InvertedIndex {
	t.Helper()
	b := &IndexBuilder{Workers: 1}
	invIdx, _, err := b.Build(context.Background(), s1Corpus())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return invIdx
}

func TestPhraseMatcher_SinglePhrase_S2(t *testing.T) {
	invIdx := buildS1Index(t)
	pm := NewPhraseMatcher(invIdx)

	got := pm.Candidates([][]string{{"quick", "dog"}})
	sort.Ints(got)
	if len(got) != 1 || got[0] != 3 {
		t.Errorf("Candidates = %v, want [3]", got)
	}
}

func TestPhraseMatcher_NonOccurringPhrase_S4(t *testing.T) {
	invIdx := buildS1Index(t)
	pm := NewPhraseMatcher(invIdx)

	got := pm.Candidates([][]string{{"brown", "dog"}})
	if len(got) != 0 {
		t.Errorf("Candidates = %v, want empty", got)
	}
}

func TestPhraseMatcher_SingleWordPhraseMatchesEveryPosting(t *testing.T) {
	invIdx := buildS1Index(t)
	pm := NewPhraseMatcher(invIdx)

	got := pm.Candidates([][]string{{"dog"}})
	sort.Ints(got)
	want := []int{2, 3}
	if len(got) != len(want) {
		t.Fatalf("Candidates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Candidates = %v, want %v", got, want)
		}
	}
}

func TestPhraseMatcher_UnionOfMultiplePhrases(t *testing.T) {
	invIdx := buildS1Index(t)
	pm := NewPhraseMatcher(invIdx)

	got := pm.Candidates([][]string{{"quick", "dog"}, {"lazy", "dog"}})
	sort.Ints(got)
	want := []int{2, 3}
	if len(got) != len(want) {
		t.Fatalf("Candidates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Candidates = %v, want %v", got, want)
		}
	}
}

func TestPhraseMatcher_ThreeWordPhrase(t *testing.T) {
	invIdx := buildS1Index(t)
	pm := NewPhraseMatcher(invIdx)

	got := pm.Candidates([][]string{{"the", "quick", "brown"}})
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("Candidates = %v, want [1]", got)
	}
}

func TestPhraseMatcher_WrongOrderDoesNotMatch(t *testing.T) {
	invIdx := buildS1Index(t)
	pm := NewPhraseMatcher(invIdx)

	// "dog quick" never occurs contiguously in that order anywhere.
	got := pm.Candidates([][]string{{"dog", "quick"}})
	if len(got) != 0 {
		t.Errorf("Candidates = %v, want empty", got)
	}
}

func TestContainsPosition(t *testing.T) {
	positions := []int{1, 4, 9, 20}
	for _, p := range positions {
		if !containsPosition(positions, p) {
			t.Errorf("containsPosition(%v, %d) = false, want true", positions, p)
		}
	}
	if containsPosition(positions, 5) {
		t.Error("containsPosition(positions, 5) = true, want false")
	}
}
