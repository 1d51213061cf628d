package utils

import (
	"sort"

	"github.com/spf13/afero"
)

// FsGlobber resolves glob patterns against an afero filesystem, so matching sees the
// same files the caller reads and removes.
type FsGlobber struct {
	Fs afero.Fs
}

// Glob expands pattern on the wrapped filesystem and returns the matches in lexical order.
func (g FsGlobber) Glob(pattern string) ([]string, error) {
	matches, err := afero.Glob(g.Fs, pattern)
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)
	return matches, nil
}
