package utils

import (
	"errors"
	"os"
	"sort"

	"github.com/mattn/go-zglob"
)

// CustomGlobber resolves glob patterns using mattn/go-zglob.
type CustomGlobber struct{}

// Glob expands pattern and returns the matching paths in lexical order.
// zglob reports an empty match set as os.ErrNotExist; that is returned as no matches.
func (g CustomGlobber) Glob(pattern string) ([]string, error) {
	matches, err := zglob.Glob(pattern)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)
	return matches, nil
}
