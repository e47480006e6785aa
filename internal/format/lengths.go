package format

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// WriteLengths writes the document-length file: N consecutive native-endian
// int32 values, one per internal docid.
//
// Native endianness (as opposed to the little-endian wire format a
// cross-platform binary protocol would use) is a deliberate property of this
// format, inherited from the reference implementation's use of the host's
// native struct packing. It makes the index non-portable across machines of
// differing endianness; that trade-off is accepted, not worked around.
func WriteLengths(dir string, lengths []int32) error {
	path := filepath.Join(dir, LengthsFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, 4*len(lengths))
	for i, l := range lengths {
		binary.NativeEndian.PutUint32(buf[i*4:], uint32(l))
	}
	if _, err := f.Write(buf); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadLengths reads the document-length file back into a slice ordered by
// internal docid.
func ReadLengths(dir string) ([]int32, error) {
	path := filepath.Join(dir, LengthsFile)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	n := len(raw) / 4
	lengths := make([]int32, n)
	for i := 0; i < n; i++ {
		lengths[i] = int32(binary.NativeEndian.Uint32(raw[i*4:]))
	}
	return lengths, nil
}
