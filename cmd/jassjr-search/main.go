// Command jassjr-search answers BM25-ranked queries against an index built
// by jassjr-index.
//
// Queries are read one per line from standard input until end of file.
// Results are written to standard output in TREC-eval format. Query terms
// are matched against the vocabulary case-sensitively: unlike the indexer,
// this command does not lowercase its input, so a query for "Fox" will not
// match documents indexed under "fox".
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wizenheimer/jassjr/internal/config"
	"github.com/wizenheimer/jassjr/internal/query"
)

var (
	indexDir   string
	configPath string
	k1Flag     float64
	bFlag      float64
)

func main() {
	root := &cobra.Command{
		Use:           "jassjr-search",
		Short:         "Answer BM25-ranked queries against a jassjr-index index",
		Long:          "Answer BM25-ranked queries against a jassjr-index index.\n\nQuery terms are matched case-sensitively; the searcher does not lowercase its input the way the indexer lowercases corpus terms.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	root.Flags().StringVar(&indexDir, "index-dir", ".", "directory containing docids.bin, lengths.bin, postings.bin and vocab.bin")
	root.Flags().StringVar(&configPath, "config", "", "optional YAML file overriding k1/b defaults")
	root.Flags().Float64Var(&k1Flag, "k1", 0, "override the BM25 k1 parameter (0 means use config/default)")
	root.Flags().Float64Var(&bFlag, "b", 0, "override the BM25 b parameter (0 means use config/default)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "jassjr-search:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("index-dir") {
		cfg.IndexDir = indexDir
	}
	params := query.Params{K1: cfg.K1, B: cfg.B}
	if k1Flag != 0 {
		params.K1 = k1Flag
	}
	if bFlag != 0 {
		params.B = bFlag
	}

	idx, err := query.Load(cfg.IndexDir)
	if err != nil {
		return fmt.Errorf("load index from %s: %w", cfg.IndexDir, err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		queryID, results := query.Query(idx, line, params)
		for rank, r := range results {
			fmt.Fprintln(out, query.FormatLine(idx, queryID, rank+1, r))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read query: %w", err)
	}
	return nil
}
