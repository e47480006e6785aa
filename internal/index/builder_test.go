package index

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/wizenheimer/jassjr/internal/format"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func TestBuilderTwoTinyDocuments(t *testing.T) {
	corpus := `<DOC>
<DOCNO> DOC1 </DOCNO>
the quick brown fox
</DOC>
<DOC>
<DOCNO> DOC2 </DOCNO>
the lazy dog
</DOC>
`
	b := NewBuilder(discardLogger())
	if err := b.Add(strings.NewReader(corpus)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	dir := t.TempDir()
	n, err := b.Build(dir)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if n != 2 {
		t.Fatalf("got %d documents, want 2", n)
	}

	docIDs, err := format.ReadDocIDs(dir)
	if err != nil {
		t.Fatalf("ReadDocIDs: %v", err)
	}
	if len(docIDs) != 2 || docIDs[0] != "DOC1" || docIDs[1] != "DOC2" {
		t.Fatalf("got docids %v, want [DOC1 DOC2]", docIDs)
	}

	lengths, err := format.ReadLengths(dir)
	if err != nil {
		t.Fatalf("ReadLengths: %v", err)
	}
	if len(lengths) != 2 {
		t.Fatalf("got %d lengths, want 2", len(lengths))
	}

	vocab, err := format.ReadVocabFile(dir)
	if err != nil {
		t.Fatalf("ReadVocabFile: %v", err)
	}
	if _, ok := vocab["the"]; !ok {
		t.Error("expected \"the\" in vocabulary (shared across both documents)")
	}
	if _, ok := vocab["fox"]; !ok {
		t.Error("expected \"fox\" in vocabulary")
	}

	raw, err := format.ReadPostingsFile(dir)
	if err != nil {
		t.Fatalf("ReadPostingsFile: %v", err)
	}
	theEntry := vocab["the"]
	postings, err := format.DecodePostings(raw, theEntry.Offset, theEntry.Size)
	if err != nil {
		t.Fatalf("DecodePostings: %v", err)
	}
	if len(postings) != 2 {
		t.Fatalf("\"the\" appears in %d documents, want 2", len(postings))
	}
	if postings[0].DocID != 0 || postings[1].DocID != 1 {
		t.Errorf("postings docids = %+v, want [0 1]", postings)
	}
}

func TestBuilderNoDocumentsWritesNoFiles(t *testing.T) {
	b := NewBuilder(discardLogger())
	if err := b.Add(strings.NewReader("just some plain text with no document tags")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	dir := t.TempDir()
	n, err := b.Build(dir)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if n != 0 {
		t.Fatalf("got %d documents, want 0", n)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no files written, got %v", entries)
	}
}

func TestBuilderDocnoTermsAreAlsoIndexed(t *testing.T) {
	corpus := `<DOC>
<DOCNO> X1 </DOCNO>
body
</DOC>
`
	b := NewBuilder(discardLogger())
	if err := b.Add(strings.NewReader(corpus)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	dir := t.TempDir()
	if _, err := b.Build(dir); err != nil {
		t.Fatalf("Build: %v", err)
	}
	vocab, err := format.ReadVocabFile(dir)
	if err != nil {
		t.Fatalf("ReadVocabFile: %v", err)
	}
	for _, term := range []string{"x1", "docno", "body"} {
		if _, ok := vocab[term]; !ok {
			t.Errorf("expected term %q to be indexed", term)
		}
	}
}

func TestBuilderDocumentBitmapCardinalityMatchesPostingsCount(t *testing.T) {
	b := NewBuilder(discardLogger())
	if err := b.Add(strings.NewReader(`<DOC>
<DOCNO> D1 </DOCNO>
shared unique1
</DOC>
<DOC>
<DOCNO> D2 </DOCNO>
shared unique2
</DOC>
<DOC>
<DOCNO> D3 </DOCNO>
shared unique3
</DOC>
`)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	dir := t.TempDir()
	if _, err := b.Build(dir); err != nil {
		t.Fatalf("Build: %v", err)
	}

	bitmap := b.DocumentBitmap("shared")
	if bitmap == nil {
		t.Fatal("expected a bitmap for \"shared\"")
	}
	if got := bitmap.GetCardinality(); got != 3 {
		t.Errorf("\"shared\" bitmap cardinality = %d, want 3", got)
	}

	vocab, err := format.ReadVocabFile(dir)
	if err != nil {
		t.Fatalf("ReadVocabFile: %v", err)
	}
	entry := vocab["shared"]
	if int(entry.Size)/8 != int(bitmap.GetCardinality()) {
		t.Errorf("postings count %d does not match bitmap cardinality %d", entry.Size/8, bitmap.GetCardinality())
	}

	if b.DocumentBitmap("doesnotexist") != nil {
		t.Error("expected nil bitmap for an unindexed term")
	}
}

func TestBuilderTermTruncation(t *testing.T) {
	long256 := strings.Repeat("a", 256)
	corpus := "<DOC>\n<DOCNO> D </DOCNO>\n" + long256 + "\n</DOC>\n"
	b := NewBuilder(discardLogger())
	if err := b.Add(strings.NewReader(corpus)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	dir := t.TempDir()
	if _, err := b.Build(dir); err != nil {
		t.Fatalf("Build: %v", err)
	}
	vocab, err := format.ReadVocabFile(dir)
	if err != nil {
		t.Fatalf("ReadVocabFile: %v", err)
	}
	truncated := strings.Repeat("a", 255)
	if _, ok := vocab[truncated]; !ok {
		t.Error("expected 256-byte token truncated to 255 bytes")
	}
	if _, ok := vocab[long256]; ok {
		t.Error("did not expect the untruncated 256-byte term in the vocabulary")
	}
}
