// Command jassjr-vocab-diff compares two vocab.bin files and reports terms
// unique to each side plus terms whose postings-list size differs between
// them. It operates on vocab.bin alone; it does not need postings.bin,
// lengths.bin or docids.bin to be present.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/wizenheimer/jassjr/internal/format"
)

// maxListed caps how many terms are printed per section, matching the
// reference tool's truncation behaviour for large diffs.
const maxListed = 100

func main() {
	root := &cobra.Command{
		Use:           "jassjr-vocab-diff <vocab-a.bin> <vocab-b.bin>",
		Short:         "Diff two vocab.bin files",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "jassjr-vocab-diff:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	a, err := format.ReadVocabFileAt(args[0])
	if err != nil {
		return err
	}
	b, err := format.ReadVocabFileAt(args[1])
	if err != nil {
		return err
	}

	var onlyA, onlyB []string
	var differing []string

	for term, entryA := range a {
		entryB, ok := b[term]
		if !ok {
			onlyA = append(onlyA, term)
			continue
		}
		if entryA.Size != entryB.Size {
			differing = append(differing, fmt.Sprintf("%s: %d vs %d", term, entryA.Size, entryB.Size))
		}
	}
	for term := range b {
		if _, ok := a[term]; !ok {
			onlyB = append(onlyB, term)
		}
	}

	sort.Strings(onlyA)
	sort.Strings(onlyB)
	sort.Strings(differing)

	fmt.Println("Only in", args[0]+":")
	printCapped(onlyA)
	fmt.Println("Only in", args[1]+":")
	printCapped(onlyB)
	fmt.Println("Differing postings size:")
	printCapped(differing)
	return nil
}

func printCapped(items []string) {
	n := len(items)
	if n > maxListed {
		n = maxListed
	}
	for _, item := range items[:n] {
		fmt.Println(" ", item)
	}
	if len(items) > maxListed {
		fmt.Println("  ...")
	}
}
