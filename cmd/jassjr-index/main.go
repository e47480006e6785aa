// Command jassjr-index builds an on-disk inverted index from a TREC-style
// SGML corpus file.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/wizenheimer/jassjr/internal/index"
)

var outDir string

func main() {
	root := &cobra.Command{
		Use:   "jassjr-index <infile.xml>",
		Short: "Build an inverted index from a TREC-style SGML corpus",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				fmt.Fprint(os.Stderr, cmd.UsageString())
				return err
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	root.Flags().StringVar(&outDir, "out", ".", "directory to write docids.bin, lengths.bin, postings.bin and vocab.bin into")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "jassjr-index:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	infile := args[0]

	f, err := os.Open(infile)
	if err != nil {
		return fmt.Errorf("open %s: %w", infile, err)
	}
	defer f.Close()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	builder := index.NewBuilder(log)
	builder.OnProgress = func(count int) {
		fmt.Printf("%d documents indexed\n", count)
	}

	if err := builder.Add(f); err != nil {
		return fmt.Errorf("index %s: %w", infile, err)
	}

	n := builder.PendingDocumentCount()
	if n == 0 {
		// No <DOC> was ever seen; Build writes nothing and this command
		// exits cleanly with no progress or completion message.
		_, err := builder.Build(outDir)
		return err
	}

	fmt.Printf("Indexed %d documents. Serialising...\n", n)
	if _, err := builder.Build(outDir); err != nil {
		return fmt.Errorf("serialise index: %w", err)
	}
	return nil
}
