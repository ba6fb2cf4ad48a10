package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/corvidlabs/rankdex"
	"github.com/corvidlabs/rankdex/internal/corpus"
	"github.com/corvidlabs/rankdex/internal/rankerr"
)

var buildCmd = &cobra.Command{
	Use:           "build <input.json> <index_dir>",
	Short:         "Build an inverted index and document index from a JSON corpus",
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	inputPath, indexDir := args[0], args[1]

	if info, err := os.Stat(inputPath); err != nil || info.IsDir() {
		return rankerr.Newf(rankerr.ArgShape, "input file %q does not exist", inputPath)
	}
	if info, err := os.Stat(indexDir); err != nil || !info.IsDir() {
		return rankerr.Newf(rankerr.ArgShape, "index directory %q does not exist", indexDir)
	}

	records, err := corpus.Load(inputPath)
	if err != nil {
		return err
	}

	docs := make([]rankdex.SourceDocument, len(records))
	for i, rec := range records {
		docs[i] = rankdex.SourceDocument{ID: rec.DocumentID, Body: rec.Body}
	}

	builder := rankdex.NewIndexBuilder()
	invIdx, docIdx, err := builder.Build(context.Background(), docs)
	if err != nil {
		return err
	}

	if err := rankdex.SaveInvertedIndex(invIdx, indexDir); err != nil {
		return err
	}
	if err := rankdex.SaveDocumentIndex(docIdx, indexDir); err != nil {
		return err
	}

	return nil
}
