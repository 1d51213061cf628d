package churn

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Sweep removes files matching <prefix><index> in the configured directory that an
// interrupted run left behind. Other files sharing the prefix and anything that is not a
// regular file are not touched. Cancellation is checked between removals.
func (r *Runner) Sweep(ctx context.Context) (int, error) {
	pattern := filepath.Join(r.cfg.Dir, r.cfg.Prefix+"*")
	matches, err := r.globber.Glob(pattern)
	if err != nil {
		return 0, fmt.Errorf("glob %s: %w", pattern, err)
	}

	removed := 0
	var failures []error

	for _, match := range matches {
		if err := ctx.Err(); err != nil {
			r.logger.Warningf("Sweep interrupted after %d files: %v", removed, err)
			return removed, errors.Join(append(failures, err)...)
		}

		name := filepath.Base(match)
		index, ok := r.parseIndex(name)
		if !ok {
			r.logger.Debugf("Skipping %s: not a churn file", match)
			continue
		}

		if info, err := r.fs.Stat(match); err == nil && !info.Mode().IsRegular() {
			r.logger.Debugf("Skipping %s: not a regular file", match)
			continue
		}

		r.printf("removing %s ... \n", name)
		rec := FileRecord{Index: index, Name: name, Path: match}
		if err := r.fs.Remove(match); err != nil {
			ferr := newFileError(DeletionFailure, rec, err)
			if r.cfg.Policy == PolicyFailFast {
				return removed, ferr
			}
			failures = append(failures, ferr)
			continue
		}
		removed++
	}

	if removed == 0 && len(failures) == 0 {
		r.logger.Info("No leftover files found")
	} else {
		r.logger.Infof("===> Swept %d leftover files from %s", removed, cyan(r.cfg.Dir))
	}

	return removed, errors.Join(failures...)
}

// parseIndex reports whether name is the prefix followed by a plain decimal index.
func (r *Runner) parseIndex(name string) (int, bool) {
	suffix, found := strings.CutPrefix(name, r.cfg.Prefix)
	if !found || suffix == "" {
		return 0, false
	}
	for _, c := range suffix {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	if len(suffix) > 1 && suffix[0] == '0' {
		return 0, false
	}
	index, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, false
	}
	return index, true
}
