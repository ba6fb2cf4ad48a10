package rankdex

import (
	"regexp"
	"strings"

	"github.com/corvidlabs/rankdex/internal/lexer"
	"github.com/corvidlabs/rankdex/internal/rankerr"
)

// ParsedQuery is the output of parsing a raw query string: an ordered
// list of free keyword terms and an ordered list of phrases, each phrase
// itself an ordered list of terms. ParseQuery fills it with the raw query
// tokens; Normalize returns a copy whose terms have been run through the
// same normalization pipeline the builder used.
type ParsedQuery struct {
	Keywords []string
	Phrases  [][]string
}

// wordToken matches a bare WORD shape: one or more letters, digits,
// apostrophes, or the Unicode apostrophe variants.
var wordToken = regexp.MustCompile(`^` + lexer.WordPattern + `$`)

// phraseOpenToken matches ":WORD" — the start of a phrase.
var phraseOpenToken = regexp.MustCompile(`^:(` + lexer.WordPattern + `)$`)

// phraseCloseToken matches "WORD:" — the end of a phrase.
var phraseCloseToken = regexp.MustCompile(`^(` + lexer.WordPattern + `):$`)

// phraseSingleToken matches ":WORD:" — a one-word phrase.
var phraseSingleToken = regexp.MustCompile(`^:(` + lexer.WordPattern + `):$`)

// ParseQuery validates and splits a raw query string into keywords and
// phrases per the grammar: tokens are whitespace-separated, and each one
// is a bare word, a phrase-open, a phrase-close, or a single-word phrase.
func ParseQuery(raw string) (ParsedQuery, error) {
	var result ParsedQuery
	var openPhrase []string
	inPhrase := false

	for _, tok := range strings.Fields(raw) {
		switch {
		case phraseSingleToken.MatchString(tok):
			if inPhrase {
				return ParsedQuery{}, rankerr.Newf(rankerr.ArgShape, "phrase opened again before %q closed the previous one", tok)
			}
			word := phraseSingleToken.FindStringSubmatch(tok)[1]
			result.Phrases = append(result.Phrases, []string{word})

		case phraseOpenToken.MatchString(tok):
			if inPhrase {
				return ParsedQuery{}, rankerr.Newf(rankerr.ArgShape, "phrase opened again before a previous phrase was closed at %q", tok)
			}
			inPhrase = true
			word := phraseOpenToken.FindStringSubmatch(tok)[1]
			openPhrase = []string{word}

		case phraseCloseToken.MatchString(tok):
			if !inPhrase {
				return ParsedQuery{}, rankerr.Newf(rankerr.ArgShape, "phrase closed at %q with no phrase open", tok)
			}
			word := phraseCloseToken.FindStringSubmatch(tok)[1]
			openPhrase = append(openPhrase, word)
			result.Phrases = append(result.Phrases, openPhrase)
			openPhrase = nil
			inPhrase = false

		case wordToken.MatchString(tok):
			if inPhrase {
				openPhrase = append(openPhrase, tok)
				continue
			}
			result.Keywords = append(result.Keywords, tok)

		default:
			return ParsedQuery{}, rankerr.Newf(rankerr.ArgShape, "unrecognized query token %q", tok)
		}
	}

	if inPhrase {
		return ParsedQuery{}, rankerr.Newf(rankerr.ArgShape, "query ends with an unterminated phrase")
	}

	return result, nil
}

// Normalize runs every keyword and phrase member through the same
// normalization pipeline the builder used, preserving phrase grouping. A
// bare word may normalize to zero, one, or several terms (contraction
// expansion can split one token into two); phrase members are flattened
// back into the phrase's term sequence in order.
func (q ParsedQuery) Normalize() ParsedQuery {
	var normalized ParsedQuery
	for _, kw := range q.Keywords {
		normalized.Keywords = append(normalized.Keywords, lexer.Analyze(kw)...)
	}
	for _, phrase := range q.Phrases {
		var terms []string
		for _, word := range phrase {
			terms = append(terms, lexer.Analyze(word)...)
		}
		normalized.Phrases = append(normalized.Phrases, terms)
	}
	return normalized
}

// IsEmpty reports whether the parsed query has neither keywords nor
// phrases — the Semantic error case the CLI must reject.
func (q ParsedQuery) IsEmpty() bool {
	return len(q.Keywords) == 0 && len(q.Phrases) == 0
}

// AllTerms returns every keyword and phrase-member term pooled into one
// slice, duplicates included — the vocabulary the Ranker scores over.
func (q ParsedQuery) AllTerms() []string {
	terms := make([]string, 0, len(q.Keywords))
	terms = append(terms, q.Keywords...)
	for _, phrase := range q.Phrases {
		terms = append(terms, phrase...)
	}
	return terms
}
