package format

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// PostingsWriter appends postings lists to postings.bin, tracking the byte
// offset of each list as it goes so the caller can record (offset, size) pairs
// into the vocabulary file in lock-step.
type PostingsWriter struct {
	f      *os.File
	w      *bufio.Writer
	offset uint32
}

// CreatePostingsWriter opens postings.bin for writing, truncating any
// existing content.
func CreatePostingsWriter(dir string) (*PostingsWriter, error) {
	path := filepath.Join(dir, PostingsFile)
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return &PostingsWriter{f: f, w: bufio.NewWriter(f)}, nil
}

// Append writes one term's postings list and returns where it landed.
func (pw *PostingsWriter) Append(postings []Posting) (offset, size uint32, err error) {
	offset = pw.offset
	buf := make([]byte, 8)
	for _, p := range postings {
		binary.NativeEndian.PutUint32(buf[0:4], uint32(p.DocID))
		binary.NativeEndian.PutUint32(buf[4:8], uint32(p.TF))
		if _, err := pw.w.Write(buf); err != nil {
			return 0, 0, fmt.Errorf("write postings: %w", err)
		}
	}
	size = uint32(len(postings) * 8)
	pw.offset += size
	return offset, size, nil
}

// Close flushes and closes the underlying file.
func (pw *PostingsWriter) Close() error {
	if err := pw.w.Flush(); err != nil {
		pw.f.Close()
		return fmt.Errorf("flush postings.bin: %w", err)
	}
	return pw.f.Close()
}

// ReadPostingsFile reads the whole postings file into memory for random
// access by vocabulary offset/size.
func ReadPostingsFile(dir string) ([]byte, error) {
	path := filepath.Join(dir, PostingsFile)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return raw, nil
}

// DecodePostings decodes the byte range [offset, offset+size) of a postings
// file into a slice of Posting values. It allocates a new slice on every
// call; the searcher's query loop, the load phase and the tests all decode
// postings lists through it.
func DecodePostings(raw []byte, offset, size uint32) ([]Posting, error) {
	if size == 0 || size%8 != 0 {
		return nil, fmt.Errorf("postings size %d at offset %d: %w", size, offset, ErrBadPostingsSize)
	}
	if uint64(offset)+uint64(size) > uint64(len(raw)) {
		return nil, fmt.Errorf("postings range [%d,%d) exceeds file length %d: %w", offset, offset+size, len(raw), ErrTruncatedVocabRecord)
	}
	region := raw[offset : offset+size]
	n := len(region) / 8
	out := make([]Posting, n)
	for i := 0; i < n; i++ {
		out[i].DocID = int32(binary.NativeEndian.Uint32(region[i*8:]))
		out[i].TF = int32(binary.NativeEndian.Uint32(region[i*8+4:]))
	}
	return out, nil
}
