// Package format implements the on-disk inverted index layout shared by every
// command in this module.
//
// ═══════════════════════════════════════════════════════════════════════════════
// THE FOUR FILES
// ═══════════════════════════════════════════════════════════════════════════════
// An index is four files written once by the indexer and read in full by every
// downstream tool:
//
//	docids.bin    text, one primary key per line, ordered by internal docid
//	lengths.bin   binary, N native-endian int32 document lengths
//	postings.bin  binary, concatenated (docid int32, tf int32) pairs
//	vocab.bin     binary, concatenated variable-length term records
//
// There is no header anywhere in this format and no cross-file index: a reader
// loads docids.bin and lengths.bin wholesale, then linearly scans vocab.bin to
// build a hash table of term -> (offset, size) into postings.bin. This keeps the
// writer and the reader trivially simple at the cost of requiring the whole
// index to fit in memory - acceptable for the corpus sizes this engine targets.
// ═══════════════════════════════════════════════════════════════════════════════
package format

import "errors"

// File names as written by the indexer and expected by every reader, relative
// to an index directory.
const (
	DocIDsFile   = "docids.bin"
	LengthsFile  = "lengths.bin"
	PostingsFile = "postings.bin"
	VocabFile    = "vocab.bin"
)

// MaxTermLength is the largest term the vocabulary format can represent: the
// length prefix is a single byte, and zero is reserved to mean "no term".
const MaxTermLength = 255

// Posting is one (document, term-frequency) pair in a postings list.
type Posting struct {
	DocID int32
	TF    int32
}

// VocabEntry locates one term's postings list inside postings.bin.
type VocabEntry struct {
	Term   string
	Offset uint32
	Size   uint32
}

// Sentinel errors for malformed index files. All are wrapped with additional
// context (offending file, byte offset) by the functions that return them.
var (
	ErrTruncatedVocabRecord = errors.New("vocab record extends past end of file")
	ErrEmptyTerm            = errors.New("vocab record has zero-length term")
	ErrBadPostingsSize      = errors.New("postings size is not a positive multiple of 8")
)
