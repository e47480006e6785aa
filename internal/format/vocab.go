package format

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// VocabWriter appends term records to vocab.bin. Each record is:
//
//	1 byte  term length L (1..255)
//	L bytes term bytes
//	1 byte  0x00 sentinel
//	4 bytes offset into postings.bin (native-endian)
//	4 bytes size in bytes of the postings list (native-endian)
//
// There is no count and no index: a reader scans records back to back until
// the file is exhausted.
type VocabWriter struct {
	f *os.File
	w *bufio.Writer
}

// CreateVocabWriter opens vocab.bin for writing, truncating any existing
// content.
func CreateVocabWriter(dir string) (*VocabWriter, error) {
	path := filepath.Join(dir, VocabFile)
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return &VocabWriter{f: f, w: bufio.NewWriter(f)}, nil
}

// Append writes one term's vocabulary record.
func (vw *VocabWriter) Append(term string, offset, size uint32) error {
	if len(term) == 0 {
		return fmt.Errorf("vocab append: %w", ErrEmptyTerm)
	}
	if len(term) > MaxTermLength {
		return fmt.Errorf("term of length %d exceeds %d bytes", len(term), MaxTermLength)
	}
	if size == 0 || size%8 != 0 {
		return fmt.Errorf("term %q: %w", term, ErrBadPostingsSize)
	}
	record := make([]byte, 1+len(term)+1+4+4)
	record[0] = byte(len(term))
	copy(record[1:], term)
	record[1+len(term)] = 0x00
	binary.NativeEndian.PutUint32(record[2+len(term):], offset)
	binary.NativeEndian.PutUint32(record[6+len(term):], size)
	if _, err := vw.w.Write(record); err != nil {
		return fmt.Errorf("write vocab record for %q: %w", term, err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (vw *VocabWriter) Close() error {
	if err := vw.w.Flush(); err != nil {
		vw.f.Close()
		return fmt.Errorf("flush vocab.bin: %w", err)
	}
	return vw.f.Close()
}

// ReadVocabFile reads the whole vocabulary file into memory and decodes it
// into a term -> VocabEntry table by a single linear scan.
func ReadVocabFile(dir string) (map[string]VocabEntry, error) {
	path := filepath.Join(dir, VocabFile)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	entries, err := DecodeVocabBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return entries, nil
}

// ReadVocabFileAt reads and decodes a vocabulary file at an arbitrary path,
// independent of the standard docids.bin/lengths.bin/postings.bin/vocab.bin
// directory layout. Used by jassjr-vocab-diff, which compares two vocab.bin
// files from different index directories and needs neither file named
// exactly "vocab.bin" nor the other three files present alongside it.
func ReadVocabFileAt(path string) (map[string]VocabEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	entries, err := DecodeVocabBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return entries, nil
}

// DecodeVocabBytes decodes an in-memory vocab.bin image by a single linear
// scan, with no header, count or index to guide it.
func DecodeVocabBytes(raw []byte) (map[string]VocabEntry, error) {
	entries := make(map[string]VocabEntry)
	pos := 0
	for pos < len(raw) {
		entry, next, err := decodeVocabRecord(raw, pos)
		if err != nil {
			return nil, fmt.Errorf("decode vocab record at offset %d: %w", pos, err)
		}
		entries[entry.Term] = entry
		pos = next
	}
	return entries, nil
}

// decodeVocabRecord decodes a single record starting at pos and returns the
// offset of the record immediately following it.
func decodeVocabRecord(raw []byte, pos int) (VocabEntry, int, error) {
	if pos >= len(raw) {
		return VocabEntry{}, 0, ErrTruncatedVocabRecord
	}
	length := int(raw[pos])
	if length == 0 {
		return VocabEntry{}, 0, ErrEmptyTerm
	}
	end := pos + 1 + length + 1 + 4 + 4
	if end > len(raw) {
		return VocabEntry{}, 0, ErrTruncatedVocabRecord
	}
	term := string(raw[pos+1 : pos+1+length])
	offset := binary.NativeEndian.Uint32(raw[pos+1+length+1:])
	size := binary.NativeEndian.Uint32(raw[pos+1+length+1+4:])
	if size == 0 || size%8 != 0 {
		return VocabEntry{}, 0, ErrBadPostingsSize
	}
	return VocabEntry{Term: term, Offset: offset, Size: size}, end, nil
}
