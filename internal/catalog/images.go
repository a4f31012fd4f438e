package catalog

import (
	"fmt"
	"os"
	"strings"
)

// ImageSet is a snapshot of the cover-image directory listing, taken
// once per run. The listing order is preserved: when several files
// share a book-code prefix the first one wins.
type ImageSet struct {
	filenames []string
}

func NewImageSet(filenames []string) *ImageSet {
	return &ImageSet{filenames: filenames}
}

// ListImageDir snapshots the directory into an ImageSet. os.ReadDir
// returns entries in lexical order, which fixes the tie-break order.
func ListImageDir(dir string) (*ImageSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read images dir %s: %w", dir, err)
	}
	filenames := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		filenames = append(filenames, e.Name())
	}
	return NewImageSet(filenames), nil
}

// Resolve returns the first filename prefixed with "<code>_", or
// "" and false when no file matches.
func (s *ImageSet) Resolve(code string) (string, bool) {
	if code == "" {
		return "", false
	}
	prefix := code + "_"
	for _, name := range s.filenames {
		if strings.HasPrefix(name, prefix) {
			return name, true
		}
	}
	return "", false
}

func (s *ImageSet) Len() int {
	return len(s.filenames)
}
