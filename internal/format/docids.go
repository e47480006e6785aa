package format

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteDocIDs writes the primary-key file: one key per line, in internal docid
// order, newline-terminated.
func WriteDocIDs(dir string, docIDs []string) error {
	path := filepath.Join(dir, DocIDsFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, id := range docIDs {
		if _, err := w.WriteString(id); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

// ReadDocIDs reads the primary-key file back into a slice ordered by internal
// docid, with the trailing newline of each line stripped.
func ReadDocIDs(dir string) ([]string, error) {
	path := filepath.Join(dir, DocIDsFile)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	text := string(raw)
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{}, nil
	}
	return strings.Split(text, "\n"), nil
}
