package rankdex

import (
	"reflect"
	"testing"

	"github.com/corvidlabs/rankdex/internal/rankerr"
)

func TestParseQuery_BareKeywords(t *testing.T) {
	q, err := ParseQuery("quick brown fox")
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	want := []string{"quick", "brown", "fox"}
	if !reflect.DeepEqual(q.Keywords, want) {
		t.Errorf("Keywords = %v, want %v", q.Keywords, want)
	}
	if len(q.Phrases) != 0 {
		t.Errorf("Phrases = %v, want none", q.Phrases)
	}
}

func TestParseQuery_SingleWordPhrase(t *testing.T) {
	q, err := ParseQuery(":quick:")
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	want := [][]string{{"quick"}}
	if !reflect.DeepEqual(q.Phrases, want) {
		t.Errorf("Phrases = %v, want %v", q.Phrases, want)
	}
}

func TestParseQuery_MultiWordPhrase(t *testing.T) {
	q, err := ParseQuery(":quick dog:")
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	want := [][]string{{"quick", "dog"}}
	if !reflect.DeepEqual(q.Phrases, want) {
		t.Errorf("Phrases = %v, want %v", q.Phrases, want)
	}
}

func TestParseQuery_MixedKeywordsAndPhrase_S3(t *testing.T) {
	q, err := ParseQuery(":quick dog: lazy")
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	if !reflect.DeepEqual(q.Keywords, []string{"lazy"}) {
		t.Errorf("Keywords = %v, want [lazy]", q.Keywords)
	}
	if !reflect.DeepEqual(q.Phrases, [][]string{{"quick", "dog"}}) {
		t.Errorf("Phrases = %v, want [[quick dog]]", q.Phrases)
	}
}

func TestParseQuery_UnterminatedPhrase_S6(t *testing.T) {
	_, err := ParseQuery(":open phrase")
	if err == nil {
		t.Fatal("expected error for an unterminated phrase")
	}
	if !rankerr.Is(err, rankerr.ArgShape) {
		t.Errorf("error kind = %v, want ArgShape", err)
	}
}

func TestParseQuery_PhraseCloseWithoutOpen(t *testing.T) {
	_, err := ParseQuery("word: rest")
	if err == nil {
		t.Fatal("expected error for a phrase-close with no phrase open")
	}
	if !rankerr.Is(err, rankerr.ArgShape) {
		t.Errorf("error kind = %v, want ArgShape", err)
	}
}

func TestParseQuery_NestedPhraseOpen(t *testing.T) {
	_, err := ParseQuery(":one :two end:")
	if err == nil {
		t.Fatal("expected error for a phrase opened inside another")
	}
	if !rankerr.Is(err, rankerr.ArgShape) {
		t.Errorf("error kind = %v, want ArgShape", err)
	}
}

func TestParseQuery_UnrecognizedToken(t *testing.T) {
	_, err := ParseQuery("valid ::doublecolon")
	if err == nil {
		t.Fatal("expected error for a malformed token")
	}
	if !rankerr.Is(err, rankerr.ArgShape) {
		t.Errorf("error kind = %v, want ArgShape", err)
	}
}

func TestParsedQuery_IsEmpty(t *testing.T) {
	q, err := ParseQuery("")
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	if !q.IsEmpty() {
		t.Error("IsEmpty() = false for a blank query, want true")
	}
}

func TestParsedQuery_AllTerms_PoolsKeywordsAndPhraseMembers(t *testing.T) {
	q, err := ParseQuery(":quick dog: lazy")
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	want := []string{"lazy", "quick", "dog"}
	got := q.AllTerms()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AllTerms() = %v, want %v", got, want)
	}
}

func TestParsedQuery_Normalize(t *testing.T) {
	q, err := ParseQuery(":Quick Dogs: running")
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	normalized := q.Normalize()
	if len(normalized.Phrases) != 1 || len(normalized.Phrases[0]) != 2 {
		t.Fatalf("Normalize() phrases = %v", normalized.Phrases)
	}
	if len(normalized.Keywords) != 1 {
		t.Fatalf("Normalize() keywords = %v", normalized.Keywords)
	}
}
