// Package index accumulates an in-memory inverted index from a token stream
// and serializes it to the on-disk format.
//
// ═══════════════════════════════════════════════════════════════════════════════
// DOCUMENT STATE MACHINE
// ═══════════════════════════════════════════════════════════════════════════════
// The builder walks the lexer's token stream through three states:
//
//	between documents --<DOC>--> in document --<DOCNO>--> expect docno
//	       ^                          ^  |                      |
//	       |                          |  +----------------------+
//	       +--------------------------+     (next token is the primary key)
//
// A <DOC> seen while already in-document closes the previous document (its
// length is flushed to the length vector) and opens a new one. Every other
// token encountered in-document is indexed as a regular term - including the
// primary-key token itself and the bare alphanumeric remnants of the
// </DOCNO> and </DOC> closing tags, which this lexer emits as Word tokens. That
// duplication is a property of the reference format, not a bug to fix here.
// ═══════════════════════════════════════════════════════════════════════════════
package index

import (
	"bufio"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/RoaringBitmap/roaring"

	"github.com/wizenheimer/jassjr/internal/format"
	"github.com/wizenheimer/jassjr/internal/lexer"
)

type docState int

const (
	stateBetweenDocuments docState = iota
	stateInDocument
	stateExpectDocno
)

// postingsList is the mutable, growable accumulator for one term, kept in
// interleaved (docid, tf) pairs per the on-disk layout. Appending a new
// docid only ever happens when it differs from the last one seen, which
// holds because documents are assigned ascending docids as they are
// consumed - the same monotonicity the reference posting lists rely on.
type postingsList struct {
	postings []format.Posting
}

func (p *postingsList) add(docID int32) {
	if n := len(p.postings); n > 0 && p.postings[n-1].DocID == docID {
		p.postings[n-1].TF++
		return
	}
	p.postings = append(p.postings, format.Posting{DocID: docID, TF: 1})
}

// Builder accumulates postings lists, document lengths and primary keys
// across one or more calls to Add, then serializes them with Build.
type Builder struct {
	postings map[string]*postingsList
	bitmaps  map[string]*roaring.Bitmap // term -> docids containing it

	docIDs  []string
	lengths []int32

	state      docState
	sawAnyDoc  bool
	curDocID   int32
	curLength  int32
	haveCurDoc bool

	log *slog.Logger

	// OnProgress, if set, is called with the number of documents fully
	// indexed so far whenever that count crosses a multiple of 1000. The
	// CLI uses this to print the operator-facing progress line to
	// standard output; internal diagnostic logging goes through log
	// instead and is not format-sensitive.
	OnProgress func(count int)
}

// NewBuilder returns an empty builder ready to accumulate one corpus.
func NewBuilder(log *slog.Logger) *Builder {
	if log == nil {
		log = slog.Default()
	}
	return &Builder{
		postings: make(map[string]*postingsList),
		bitmaps:  make(map[string]*roaring.Bitmap),
		curDocID: -1,
		log:      log,
	}
}

// Add feeds one corpus stream through the lexer and the document state
// machine, accumulating postings as it goes. It may be called more than
// once against the same Builder, in which case document boundaries carry
// across calls (a <DOC> at the start of the second call still closes a
// document left open by the first).
func (b *Builder) Add(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return lexer.Scan(scanner, func(tok lexer.Token) {
		b.handleToken(tok)
	})
}

func (b *Builder) handleToken(tok lexer.Token) {
	switch tok.Kind {
	case lexer.TagDoc:
		b.flushCurrentDocument()
		b.curDocID++
		b.curLength = 0
		b.haveCurDoc = true
		b.sawAnyDoc = true
		b.state = stateInDocument
		if b.curDocID > 0 && b.curDocID%1000 == 0 {
			b.log.Debug("indexing progress", slog.Int64("documents_indexed", int64(b.curDocID)))
			if b.OnProgress != nil {
				b.OnProgress(int(b.curDocID))
			}
		}
		return
	case lexer.TagDocno:
		if b.state == stateInDocument {
			b.state = stateExpectDocno
		}
		return
	}

	// tok.Kind == lexer.Word
	if b.state == stateExpectDocno {
		b.docIDs = append(b.docIDs, tok.Text)
		b.state = stateInDocument
	}
	if b.state == stateInDocument || b.state == stateExpectDocno {
		b.indexTerm(strings.ToLower(truncate(tok.Text, format.MaxTermLength)))
		b.curLength++
	}
}

func (b *Builder) indexTerm(term string) {
	list, ok := b.postings[term]
	if !ok {
		list = &postingsList{}
		b.postings[term] = list
	}
	bitmap, ok := b.bitmaps[term]
	if !ok {
		bitmap = roaring.NewBitmap()
		b.bitmaps[term] = bitmap
	}
	before := len(list.postings)
	list.add(b.curDocID)
	if len(list.postings) != before {
		bitmap.Add(uint32(b.curDocID))
	}
}

func (b *Builder) flushCurrentDocument() {
	if !b.haveCurDoc {
		return
	}
	b.lengths = append(b.lengths, b.curLength)
	b.haveCurDoc = false
}

// Build writes the four on-disk files to dir and returns the number of
// documents indexed. If no <DOC> was ever seen, it writes nothing and
// returns (0, nil): a corpus with no documents is not an error.
func (b *Builder) Build(dir string) (int, error) {
	b.flushCurrentDocument()
	if !b.sawAnyDoc {
		return 0, nil
	}

	n := len(b.docIDs)
	b.log.Info("serializing index", slog.Int("documents", n), slog.Int("terms", len(b.postings)))

	if err := format.WriteDocIDs(dir, b.docIDs); err != nil {
		return 0, err
	}
	if err := format.WriteLengths(dir, b.lengths); err != nil {
		return 0, err
	}

	pw, err := format.CreatePostingsWriter(dir)
	if err != nil {
		return 0, err
	}
	vw, err := format.CreateVocabWriter(dir)
	if err != nil {
		pw.Close()
		return 0, err
	}
	// Map iteration order is randomized per process, so writing terms in
	// range order would make postings.bin's byte layout differ between
	// two runs over the identical corpus. Sorting the terms first makes
	// postings.bin (and docids.bin and lengths.bin, which never depended
	// on map order) byte-identical across repeated runs; only vocab.bin's
	// term order is allowed to vary.
	terms := make([]string, 0, len(b.postings))
	for term := range b.postings {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	for _, term := range terms {
		list := b.postings[term]
		offset, size, err := pw.Append(list.postings)
		if err != nil {
			pw.Close()
			vw.Close()
			return 0, err
		}
		if err := vw.Append(term, offset, size); err != nil {
			pw.Close()
			vw.Close()
			return 0, err
		}
	}
	if err := pw.Close(); err != nil {
		vw.Close()
		return 0, err
	}
	if err := vw.Close(); err != nil {
		return 0, err
	}
	return n, nil
}

// PendingDocumentCount reports how many documents have been seen so far,
// including one still open (not yet flushed by Build). Callers that need to
// report a document count before serialization starts - the CLI's "Indexed
// N documents. Serialising..." message must print before Build writes
// anything - use this instead of waiting for Build's return value.
func (b *Builder) PendingDocumentCount() int {
	if b.haveCurDoc {
		return len(b.lengths) + 1
	}
	return len(b.lengths)
}

// DocumentBitmap returns the roaring bitmap of docids containing term, or
// nil if the term was never indexed. These bitmaps are not written to disk;
// the index-stats tool reads the copies that query.Load rebuilds from
// postings.bin.
func (b *Builder) DocumentBitmap(term string) *roaring.Bitmap {
	return b.bitmaps[term]
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
