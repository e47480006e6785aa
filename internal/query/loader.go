// Package query implements the searcher's load phase and BM25 scoring loop.
package query

import (
	"github.com/RoaringBitmap/roaring"

	"github.com/wizenheimer/jassjr/internal/format"
)

// Index is an in-memory, read-only view of one on-disk index, as loaded by
// the searcher and jassjr-index-stats.
type Index struct {
	DocIDs  []string
	Lengths []int32

	Vocab    map[string]format.VocabEntry
	postings []byte // raw postings.bin, sliced by Vocab entries on demand

	// bitmaps caches, per term, the set of docids containing it. Rebuilt
	// once at load time by replaying each term's postings list; not
	// persisted. Used by the diagnostic tools for O(1) document-frequency
	// queries instead of re-walking a postings list just to count it.
	bitmaps map[string]*roaring.Bitmap

	AverageLength float64
}

// N is the number of documents in the index.
func (idx *Index) N() int {
	return len(idx.DocIDs)
}

// Load reads all four index files from dir into memory.
func Load(dir string) (*Index, error) {
	docIDs, err := format.ReadDocIDs(dir)
	if err != nil {
		return nil, err
	}
	lengths, err := format.ReadLengths(dir)
	if err != nil {
		return nil, err
	}
	vocab, err := format.ReadVocabFile(dir)
	if err != nil {
		return nil, err
	}
	postings, err := format.ReadPostingsFile(dir)
	if err != nil {
		return nil, err
	}

	idx := &Index{
		DocIDs:   docIDs,
		Lengths:  lengths,
		Vocab:    vocab,
		postings: postings,
		bitmaps:  make(map[string]*roaring.Bitmap, len(vocab)),
	}

	var total int64
	for _, l := range lengths {
		total += int64(l)
	}
	if len(lengths) > 0 {
		idx.AverageLength = float64(total) / float64(len(lengths))
	}

	for term, entry := range vocab {
		list, err := format.DecodePostings(postings, entry.Offset, entry.Size)
		if err != nil {
			return nil, err
		}
		bitmap := roaring.NewBitmap()
		for _, p := range list {
			bitmap.Add(uint32(p.DocID))
		}
		idx.bitmaps[term] = bitmap
	}

	return idx, nil
}

// Postings returns the decoded postings list for term, or (nil, false) if
// the term is not in the vocabulary.
func (idx *Index) Postings(term string) ([]format.Posting, bool) {
	entry, ok := idx.Vocab[term]
	if !ok {
		return nil, false
	}
	list, err := format.DecodePostings(idx.postings, entry.Offset, entry.Size)
	if err != nil {
		return nil, false
	}
	return list, true
}

// DocumentFrequency returns the number of documents containing term, using
// the cached bitmap rather than decoding the postings list.
func (idx *Index) DocumentFrequency(term string) int {
	bitmap, ok := idx.bitmaps[term]
	if !ok {
		return 0
	}
	return int(bitmap.GetCardinality())
}
