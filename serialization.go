package rankdex

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/corvidlabs/rankdex/internal/rankerr"
)

// Persisted index file names within an index directory.
const (
	InvertedIndexFile = "inverted_index.tsv"
	DocumentIndexFile = "document_index.tsv"
)

// SaveInvertedIndex writes idx to dir/inverted_index.tsv: one line per
// term, sorted lexicographically, as
//
//	<term>\t<df>\t[[<doc_id>, <tf>, [<pos>, <pos>, ...]], ...]\n
func SaveInvertedIndex(idx *InvertedIndex, dir string) error {
	path := filepath.Join(dir, InvertedIndexFile)
	f, err := os.Create(path)
	if err != nil {
		return rankerr.Wrap(rankerr.IndexShape, "could not create inverted index file", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, term := range idx.Terms() {
		fmt.Fprintf(w, "%s\t%d\t%s\n", term, idx.GetDF(term), renderPostings(idx.GetPostings(term)))
	}
	return w.Flush()
}

func renderPostings(postings []Posting) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range postings {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('[')
		fmt.Fprintf(&b, "%d, %d, ", p.DocID, p.TF)
		b.WriteByte('[')
		for j, pos := range p.Positions {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%d", pos)
		}
		b.WriteByte(']')
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}

// SaveDocumentIndex writes di to dir/document_index.tsv: one line per
// document, sorted by doc_id ascending, as <doc_id>\t<max_tf>\t<length>\n.
func SaveDocumentIndex(di *DocumentIndex, dir string) error {
	path := filepath.Join(dir, DocumentIndexFile)
	f, err := os.Create(path)
	if err != nil {
		return rankerr.Wrap(rankerr.IndexShape, "could not create document index file", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, docID := range di.DocumentIDs() {
		fmt.Fprintf(w, "%d\t%d\t%s\n", docID, di.GetMaxTF(docID), formatLength(di.GetLength(docID)))
	}
	return w.Flush()
}

// formatLength renders a cosine length with enough precision to round-trip
// through decimal (the default %v formatting for float64 in Go already
// produces the shortest string that parses back to the same value).
func formatLength(length float64) string {
	return strconv.FormatFloat(length, 'g', -1, 64)
}

// readPermissive reads a file's bytes and replaces any byte sequence that
// is not valid UTF-8 with the Unicode replacement character, mirroring the
// source engine's "errors='backslashreplace'" decoding policy closely
// enough that no byte in a real corpus ever aborts a load.
func readPermissive(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(bytes.ToValidUTF8(data, []byte("�"))), nil
}

// LoadInvertedIndex reads an inverted index back from dir/inverted_index.tsv.
func LoadInvertedIndex(dir string) (*InvertedIndex, error) {
	path := filepath.Join(dir, InvertedIndexFile)
	content, err := readPermissive(path)
	if err != nil {
		return nil, rankerr.Wrap(rankerr.IndexShape, fmt.Sprintf("index %s does not exist", path), err)
	}

	idx := NewInvertedIndex()
	for _, line := range strings.Split(content, "\n") {
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) != 3 {
			return nil, rankerr.Newf(rankerr.IndexShape, "malformed inverted index line: %q", line)
		}
		term := fields[0]
		df, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, rankerr.Wrap(rankerr.IndexShape, fmt.Sprintf("malformed df for term %q", term), err)
		}
		postings, err := parsePostings(fields[2])
		if err != nil {
			return nil, rankerr.Wrap(rankerr.IndexShape, fmt.Sprintf("malformed postings for term %q", term), err)
		}
		idx.entries[term] = &indexEntry{df: df, postings: postings}
	}
	return idx, nil
}

// parsePostings implements the on-disk postings grammar: strip the outer
// brackets, split sub-postings on the literal "], [", then split each
// sub-posting on ", " at most twice to recover doc_id, tf, and the
// bracketed position list, which is itself split on ", ".
func parsePostings(literal string) ([]Posting, error) {
	literal = strings.TrimSpace(literal)
	if len(literal) < 2 || literal[0] != '[' || literal[len(literal)-1] != ']' {
		return nil, fmt.Errorf("postings literal missing outer brackets: %q", literal)
	}
	inner := literal[1 : len(literal)-1]
	if inner == "" {
		return nil, nil
	}

	parts := strings.Split(inner, "], [")
	postings := make([]Posting, 0, len(parts))
	for i, part := range parts {
		if i == 0 {
			part = strings.TrimPrefix(part, "[")
		}
		if i == len(parts)-1 {
			part = strings.TrimSuffix(part, "]")
		}

		fields := strings.SplitN(part, ", ", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed posting: %q", part)
		}
		docID, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("malformed doc_id in posting %q: %w", part, err)
		}

		rest := fields[1]
		tfAndPositions := strings.SplitN(rest, ", ", 2)
		if len(tfAndPositions) != 2 {
			return nil, fmt.Errorf("malformed posting: %q", part)
		}
		tf, err := strconv.Atoi(tfAndPositions[0])
		if err != nil {
			return nil, fmt.Errorf("malformed tf in posting %q: %w", part, err)
		}

		positions, err := parsePositions(tfAndPositions[1])
		if err != nil {
			return nil, err
		}

		postings = append(postings, Posting{DocID: docID, TF: tf, Positions: positions})
	}
	return postings, nil
}

func parsePositions(literal string) ([]int, error) {
	literal = strings.TrimPrefix(literal, "[")
	literal = strings.TrimSuffix(literal, "]")
	if literal == "" {
		return nil, nil
	}
	parts := strings.Split(literal, ", ")
	positions := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("malformed position %q: %w", p, err)
		}
		positions = append(positions, n)
	}
	return positions, nil
}

// LoadDocumentIndex reads a document index back from dir/document_index.tsv.
func LoadDocumentIndex(dir string) (*DocumentIndex, error) {
	path := filepath.Join(dir, DocumentIndexFile)
	content, err := readPermissive(path)
	if err != nil {
		return nil, rankerr.Wrap(rankerr.IndexShape, fmt.Sprintf("index %s does not exist", path), err)
	}

	di := NewDocumentIndex()
	for _, line := range strings.Split(content, "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, rankerr.Newf(rankerr.IndexShape, "malformed document index line: %q", line)
		}
		docID, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, rankerr.Wrap(rankerr.IndexShape, "malformed doc_id", err)
		}
		maxTF, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, rankerr.Wrap(rankerr.IndexShape, "malformed max_tf", err)
		}
		length, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, rankerr.Wrap(rankerr.IndexShape, "malformed length", err)
		}
		di.entries[docID] = docRecord{maxTF: maxTF, length: length}
		di.allDocs.Add(uint32(docID))
	}
	return di, nil
}

// IndexFilesExist reports whether both persisted index files exist in dir.
func IndexFilesExist(dir string) bool {
	inv := filepath.Join(dir, InvertedIndexFile)
	doc := filepath.Join(dir, DocumentIndexFile)
	if _, err := os.Stat(inv); err != nil {
		return false
	}
	if _, err := os.Stat(doc); err != nil {
		return false
	}
	return true
}
