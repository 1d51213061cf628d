package churn

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/codingsince1985/checksum"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/spf13/afero"
)

var (
	errContentMismatch = errors.New("content differs from written text")
	errNotLowercase    = errors.New("content contains bytes outside a-z")
)

// Verify reads every recorded file back and checks its length, alphabet and content.
// The SHA-256 of each file that could be read is stored in its record.
func (r *Runner) Verify(records []FileRecord) error {
	var failures []error

	for i := range records {
		if err := r.verifyFile(&records[i]); err != nil {
			r.logger.Errorf("Verification failed for %s: %v", yellow(records[i].Name), err)
			if r.cfg.Policy == PolicyFailFast {
				return err
			}
			failures = append(failures, err)
		}
	}

	if len(failures) == 0 {
		r.logger.Infof("===> Verified %d files", len(records))
	}

	return errors.Join(failures...)
}

func (r *Runner) verifyFile(rec *FileRecord) error {
	data, err := afero.ReadFile(r.fs, rec.Path)
	if err != nil {
		return newFileError(VerifyFailure, *rec, err)
	}

	sum, err := checksum.SHA256sumReader(bytes.NewReader(data))
	if err != nil {
		return newFileError(VerifyFailure, *rec, err)
	}
	rec.SHA256 = sum
	r.logger.Debugf("%s sha256 %s", rec.Name, sum)

	switch {
	case len(data) != r.cfg.TextLength:
		return newFileError(VerifyFailure, *rec, fmt.Errorf("expected %d bytes, found %d", r.cfg.TextLength, len(data)))
	case !isLowercase(data):
		return newFileError(VerifyFailure, *rec, errNotLowercase)
	case rec.content != nil && !bytes.Equal(data, rec.content):
		r.logger.Debugf("Unexpected content in %s:\n%s", rec.Name, contentDiff(rec.Name, rec.content, data))
		return newFileError(VerifyFailure, *rec, errContentMismatch)
	}

	return nil
}

// contentDiff renders a unified diff between the written text and what was read back.
func contentDiff(name string, written, found []byte) string {
	want := string(written) + "\n"
	got := string(found) + "\n"
	edits := myers.ComputeEdits(span.URIFromPath(name), want, got)
	return fmt.Sprint(gotextdiff.ToUnified("written/"+name, "disk/"+name, want, edits))
}
