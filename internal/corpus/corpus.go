// Package corpus loads the JSON-formatted document collection that feeds
// the index builder. It has exactly one job: turn an array of JSON objects
// into a slice of (doc_id, body) pairs, rejecting malformed input early so
// the builder never has to re-validate it.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/corvidlabs/rankdex/internal/rankerr"
)

// Record is one ingested document: its identifier and the concatenation of
// every non-id field, space-separated, ready for tokenization.
type Record struct {
	DocumentID int
	Body       string
}

// Load reads a JSON array of objects from path. Each object must contain an
// integer-coercible "document_id" field and at least one other field; every
// other field's string value is concatenated (space-separated, in sorted
// key order) into Body. Duplicate document_id values anywhere
// in the file are a fatal InputShape error.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, rankerr.Wrap(rankerr.InputShape, "could not read input file", err)
	}

	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, rankerr.Wrap(rankerr.InputShape, "input is not a JSON array of objects", err)
	}

	seen := make(map[int]bool, len(raw))
	records := make([]Record, 0, len(raw))

	for _, item := range raw {
		docID, err := extractDocumentID(item)
		if err != nil {
			return nil, err
		}

		if seen[docID] {
			return nil, rankerr.Newf(rankerr.InputShape, "found duplicate document_id %d", docID)
		}
		seen[docID] = true

		body, err := concatenateFields(item, docID)
		if err != nil {
			return nil, err
		}

		records = append(records, Record{DocumentID: docID, Body: body})
	}

	return records, nil
}

func extractDocumentID(item map[string]json.RawMessage) (int, error) {
	raw, ok := item["document_id"]
	if !ok {
		return 0, rankerr.New(rankerr.InputShape, "document does not contain document_id field")
	}

	var asInt int
	if err := json.Unmarshal(raw, &asInt); err == nil {
		return asInt, nil
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		var coerced int
		if _, err := fmt.Sscanf(asString, "%d", &coerced); err == nil {
			return coerced, nil
		}
	}

	return 0, rankerr.New(rankerr.InputShape, "document_id is not integer-coercible")
}

// concatenateFields joins every field except document_id, in sorted key
// order so the resulting body — and therefore the term positions derived
// from it — is deterministic across runs regardless of map iteration order.
func concatenateFields(item map[string]json.RawMessage, docID int) (string, error) {
	keys := make([]string, 0, len(item))
	for k := range item {
		if k == "document_id" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if len(keys) == 0 {
		return "", rankerr.Newf(rankerr.InputShape, "document %d is missing zones", docID)
	}

	var b strings.Builder
	for i, k := range keys {
		var value string
		if err := json.Unmarshal(item[k], &value); err != nil {
			return "", rankerr.Wrap(rankerr.InputShape, fmt.Sprintf("field %q of document %d is not a string", k, docID), err)
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(value)
	}
	return b.String(), nil
}
