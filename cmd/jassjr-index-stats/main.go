// Command jassjr-index-stats reports summary statistics about a jassjr
// index: document count, document-length distribution, vocabulary size and
// the most frequent term.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wizenheimer/jassjr/internal/query"
)

var indexDir string

func main() {
	root := &cobra.Command{
		Use:           "jassjr-index-stats",
		Short:         "Report summary statistics about a jassjr index",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	root.Flags().StringVar(&indexDir, "index-dir", ".", "directory containing the index files")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "jassjr-index-stats:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	idx, err := query.Load(indexDir)
	if err != nil {
		return fmt.Errorf("load index from %s: %w", indexDir, err)
	}

	fmt.Printf("Num documents: %d\n", idx.N())
	fmt.Printf("Average doc len: %.2f\n", idx.AverageLength)

	shortest, longest := int32(0), int32(0)
	for i, l := range idx.Lengths {
		if i == 0 || l < shortest {
			shortest = l
		}
		if i == 0 || l > longest {
			longest = l
		}
	}
	fmt.Printf("Shortest doc: %d\n", shortest)
	fmt.Printf("Longest doc: %d\n", longest)
	fmt.Printf("Num terms: %d\n", len(idx.Vocab))

	var mostCommon string
	var mostCommonSize uint32
	for term, entry := range idx.Vocab {
		if entry.Size > mostCommonSize {
			mostCommon = term
			mostCommonSize = entry.Size
		}
	}
	fmt.Printf("Most common term: %s (%d documents)\n", mostCommon, idx.DocumentFrequency(mostCommon))
	return nil
}
