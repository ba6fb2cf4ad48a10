package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/corvidlabs/rankdex"
	"github.com/corvidlabs/rankdex/internal/rankerr"
)

var queryCmd = &cobra.Command{
	Use:           "query <index_dir> <k> <query>",
	Short:         "Answer a top-k ranked Boolean/phrase query against a built index",
	Args:          cobra.ExactArgs(3),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	indexDir, kArg, rawQuery := args[0], args[1], args[2]

	if !rankdex.IndexFilesExist(indexDir) {
		return rankerr.Newf(rankerr.IndexShape, "index directory %q does not contain both index files", indexDir)
	}

	k, err := strconv.Atoi(kArg)
	if err != nil || k <= 0 {
		return rankerr.Newf(rankerr.ArgShape, "k must be a positive integer, got %q", kArg)
	}

	parsed, err := rankdex.ParseQuery(rawQuery)
	if err != nil {
		return err
	}
	if parsed.IsEmpty() {
		return rankerr.New(rankerr.Semantic, "query contains neither keywords nor phrases")
	}
	normalized := parsed.Normalize()

	invIdx, err := rankdex.LoadInvertedIndex(indexDir)
	if err != nil {
		return err
	}
	docIdx, err := rankdex.LoadDocumentIndex(indexDir)
	if err != nil {
		return err
	}

	var candidates []int
	if len(normalized.Phrases) == 0 {
		ids := docIdx.AllDocIDs().ToArray()
		candidates = make([]int, len(ids))
		for i, id := range ids {
			candidates[i] = int(id)
		}
	} else {
		pm := rankdex.NewPhraseMatcher(invIdx)
		candidates = pm.Candidates(normalized.Phrases)
	}

	ranker := rankdex.NewRanker(invIdx, docIdx)
	scores := ranker.Rank(normalized.AllTerms(), candidates)

	topK := rankdex.NewTopK(k)
	for _, s := range scores {
		topK.Offer(s)
	}
	results := topK.Drain()

	fmt.Fprintf(cmd.OutOrStdout(), "Documents considered: %d\n", len(candidates))
	fmt.Fprintf(cmd.OutOrStdout(), "Documents with non-zero similarity score: %d\n", len(scores))
	fmt.Fprintf(cmd.OutOrStdout(), "Doc ID\tScore\n")
	for _, r := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%v\n", r.DocID, r.Value)
	}

	return nil
}
