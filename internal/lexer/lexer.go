// Package lexer implements the text-analysis pipeline that sits outside the
// core retrieval engine's contract: a string goes in, an ordered sequence of
// normalized terms comes out. The engine only ever depends on that contract
// (see the Analyze function), never on the stages inside it.
//
// PIPELINE
// --------
//  1. Tokenize    → split on anything that is not a letter, digit, or
//     apostrophe (including the Unicode right-single-quote and low-9
//     variants), matching the regex class original_source used.
//  2. Casefold    → Unicode lowercasing (strings.ToLower), not just ASCII;
//     full case folding (e.g. "ß" → "ss") is not applied.
//  3. Expand      → rewrite a fixed set of English contractions ("don't" →
//     "do", "not"; "it's" → "it", "is"), splitting one token into two when
//     expansion succeeds.
//  4. Stem        → reduce each token to its root form with a Porter-style
//     (Snowball) stemmer.
//
// Build time and query time MUST share this pipeline, or postings written
// under one set of terms would never be found under another.
package lexer

import (
	"regexp"
	"strings"

	snowballeng "github.com/kljensen/snowball/english"
)

// wordPattern matches a maximal run of letters, digits, apostrophes, or the
// Unicode right single quotation mark / single low-9 quotation mark — the
// same token shape the original tokenizer and the query grammar both
// assume.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}'\x{2019}\x{201A}]+`)

// WordPattern exposes the token shape so the query parser can validate
// tokens with the exact same character class the tokenizer uses.
const WordPattern = `[\p{L}\p{N}'\x{2019}\x{201A}]+`

// Analyze runs the full pipeline over raw text and returns the ordered
// sequence of normalized terms. Positions are implicit in the slice's
// index order — the caller (FromTokens) assigns position numbers in
// this order, starting at 0.
func Analyze(text string) []string {
	tokens := tokenize(text)
	terms := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		folded := strings.ToLower(tok)
		for _, expanded := range expandContractions(folded) {
			terms = append(terms, stem(expanded))
		}
	}
	return terms
}

// tokenize splits text into maximal runs of word characters.
func tokenize(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

// stem reduces a token to its root form using the Snowball (Porter2)
// algorithm for English.
func stem(token string) string {
	return snowballeng.Stem(token, false)
}

// apostropheVariants rewrites the Unicode right single quote and single
// low-9 quotation mark to a plain ASCII apostrophe before contraction
// matching, since both appear in real-world text in place of '.
var apostropheVariants = strings.NewReplacer("’", "'", "‚", "'")

// bareApostrophe matches a token that is a plain word with at most a
// leading or trailing apostrophe and nothing else — e.g. "rock'n'" is not
// this shape, but "y'" or "'tis" partially is; these tokens carry no
// decodable contraction and are only stripped of their apostrophes.
var bareApostrophe = regexp.MustCompile(`^'?[\p{L}\p{N}]+'?$`)

// trailingContraction strips any apostrophe-prefixed remainder that survived
// the rewrite rules below (an unrecognized suffix like "y'all" after "all"
// handling has already run out of rules).
var trailingContraction = regexp.MustCompile(`'[\p{L}\p{N}]*`)

type contractionRule struct {
	pattern *regexp.Regexp
	repl    string
}

// contractionRules is the fixed rewrite table for common English
// contractions. Order matters: "can't" and "won't" are irregular and must
// be handled before the generic "n't" → " not" rule would mangle them.
var contractionRules = []contractionRule{
	{regexp.MustCompile(`can't`), "can not"},
	{regexp.MustCompile(`won't`), "will not"},
	{regexp.MustCompile(`'s`), " is"},
	{regexp.MustCompile(`'ll`), " will"},
	{regexp.MustCompile(`'re`), " are"},
	{regexp.MustCompile(`n't`), " not"},
	{regexp.MustCompile(`'d`), " would"},
	{regexp.MustCompile(`'ve`), " have"},
	{regexp.MustCompile(`'t`), " not"},
	{regexp.MustCompile(`'m`), " am"},
}

// expandContractions rewrites contractions in a single token into one or
// two tokens. Tokens without an apostrophe, or whose apostrophe is only
// leading/trailing (not a genuine contraction), pass through unchanged
// except for apostrophe removal.
func expandContractions(token string) []string {
	token = apostropheVariants.Replace(token)

	if !strings.Contains(token, "'") {
		return []string{token}
	}

	if bareApostrophe.MatchString(token) {
		return []string{strings.ReplaceAll(token, "'", "")}
	}

	for _, rule := range contractionRules {
		token = rule.pattern.ReplaceAllString(token, rule.repl)
	}

	// Any contraction suffix that didn't match a known rule is dropped
	// rather than guessed at.
	token = trailingContraction.ReplaceAllString(token, "")

	out := make([]string, 0, 2)
	for _, piece := range strings.Split(token, " ") {
		if piece != "" {
			out = append(out, piece)
		}
	}
	return out
}
