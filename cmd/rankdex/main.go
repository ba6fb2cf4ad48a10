// Command rankdex builds and queries a positional inverted index with
// TF-IDF cosine ranking and k-way phrase matching.
//
// Usage:
//
//	rankdex build <input.json> <index_dir>
//	rankdex query <index_dir> <k> <query>
package main

import (
	"fmt"
	"os"

	"github.com/corvidlabs/rankdex/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, cli.UsageHint())
		os.Exit(1)
	}
}
