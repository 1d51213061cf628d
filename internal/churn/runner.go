package churn

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/op/go-logging"
	"github.com/shini4i/file-churn/cmd/churn/utils"
	"github.com/shini4i/file-churn/internal/ports"
	"github.com/spf13/afero"
)

const fileMode os.FileMode = 0o644

// Dependencies aggregates runtime collaborators required by Runner.
type Dependencies struct {
	FS      afero.Fs
	Text    ports.TextSource
	Globber ports.Globber
	Logger  *logging.Logger
	Out     io.Writer
	Now     func() time.Time
}

// FileRecord describes one file created by the write phase.
type FileRecord struct {
	Index  int    `yaml:"index"`
	Name   string `yaml:"name"`
	Path   string `yaml:"path"`
	Bytes  int    `yaml:"bytes"`
	SHA256 string `yaml:"sha256,omitempty"`

	content []byte
}

// Runner creates, verifies and removes the churn files.
type Runner struct {
	cfg     Config
	fs      afero.Fs
	text    ports.TextSource
	globber ports.Globber
	logger  *logging.Logger
	out     io.Writer
	now     func() time.Time
}

// New constructs a Runner using the supplied configuration and dependencies.
func New(cfg Config, deps Dependencies) (*Runner, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if deps.Logger == nil {
		return nil, errors.New("logger must be provided")
	}

	if deps.FS == nil {
		deps.FS = afero.NewOsFs()
	}
	if deps.Text == nil {
		if cfg.Seed != nil {
			deps.Text = NewSeededLowercaseSource(*cfg.Seed)
		} else {
			deps.Text = NewLowercaseSource()
		}
	}
	if deps.Globber == nil {
		if _, ok := deps.FS.(*afero.OsFs); ok {
			deps.Globber = utils.CustomGlobber{}
		} else {
			deps.Globber = utils.FsGlobber{Fs: deps.FS}
		}
	}
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	return &Runner{
		cfg:     cfg,
		fs:      deps.FS,
		text:    deps.Text,
		globber: deps.Globber,
		logger:  deps.Logger,
		out:     deps.Out,
		now:     deps.Now,
	}, nil
}

// FileName returns the name of the file with the given index.
func (r *Runner) FileName(index int) string {
	return r.cfg.Prefix + strconv.Itoa(index)
}

func (r *Runner) record(index int) FileRecord {
	name := r.FileName(index)
	return FileRecord{Index: index, Name: name, Path: filepath.Join(r.cfg.Dir, name)}
}

func (r *Runner) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// Run executes the write phase, the optional verification and the cleanup phase.
func (r *Runner) Run(ctx context.Context) (err error) {
	report := r.newReport()
	if r.cfg.ReportPath != "" {
		defer func() {
			report.FinishedAt = r.now()
			report.Failures = failureMessages(err)
			if reportErr := r.writeReport(report); reportErr != nil {
				r.logger.Errorf("Failed to write report %s: %v", r.cfg.ReportPath, reportErr)
				if err == nil {
					err = reportErr
				}
			}
		}()
	}

	r.printf("-- file churn - Hello %s\n", r.cfg.Banner)
	r.logger.Infof("===> Running file churn version [%s]", cyan(r.cfg.Version))
	r.logger.Debugf("Writing %d files of %d bytes to %s (policy %s)", r.cfg.FileCount, r.cfg.TextLength, r.cfg.Dir, r.cfg.Policy)

	var failures []error

	records, err := r.WritePhase(ctx)
	report.Files = records
	if err != nil {
		if r.cfg.Policy == PolicyFailFast || isCancellation(err) {
			r.rollback(records)
			return err
		}
		failures = append(failures, err)
	}

	if r.cfg.Verify {
		if verifyErr := r.Verify(records); verifyErr != nil {
			if r.cfg.Policy == PolicyFailFast {
				r.rollback(records)
				return verifyErr
			}
			failures = append(failures, verifyErr)
		}
	}

	removed, err := r.CleanupPhase(records)
	report.Removed = removed
	if err != nil {
		if r.cfg.Policy == PolicyFailFast {
			return err
		}
		failures = append(failures, err)
	}

	r.printf("DONE\n")

	if len(failures) > 0 {
		r.logger.Warningf("Run finished with %s", red(fmt.Sprintf("%d failed phase(s)", len(failures))))
		return errors.Join(failures...)
	}

	r.logger.Infof("===> Removed %d files", removed)
	return nil
}

// WritePhase creates the files in increasing index order and fills each with random text.
// Every handle is closed before the next file is opened. The returned records cover the
// files that were written completely, including when an error is returned.
func (r *Runner) WritePhase(ctx context.Context) ([]FileRecord, error) {
	var (
		records  []FileRecord
		failures []error
	)

	for i := 0; i < r.cfg.FileCount; i++ {
		if err := ctx.Err(); err != nil {
			r.logger.Warningf("Write phase interrupted before %s: %v", r.FileName(i), err)
			return records, errors.Join(append(failures, err)...)
		}

		rec := r.record(i)
		if err := r.writeFile(&rec); err != nil {
			r.logger.Errorf("Failed to write %s: %v", yellow(rec.Name), err)
			if r.cfg.Policy == PolicyFailFast {
				return records, err
			}
			failures = append(failures, err)
			continue
		}

		r.logger.Debugf("Wrote %d bytes to %s", rec.Bytes, rec.Path)
		records = append(records, rec)
	}

	return records, errors.Join(failures...)
}

// writeFile performs a single open, write and close cycle. A file that could not be
// written completely is removed again.
func (r *Runner) writeFile(rec *FileRecord) (err error) {
	f, err := r.fs.OpenFile(rec.Path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		return newFileError(CreationFailure, *rec, err)
	}

	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = newFileError(WriteFailure, *rec, closeErr)
		}
		if err != nil {
			r.discard(*rec)
		}
	}()

	r.printf("writing to %s ...\n", rec.Name)

	text := r.text.Text(r.cfg.TextLength)
	n, err := f.Write(text)
	if err != nil {
		return newFileError(WriteFailure, *rec, err)
	}
	if n != len(text) {
		return newFileError(WriteFailure, *rec, io.ErrShortWrite)
	}

	rec.Bytes = n
	rec.content = text
	return nil
}

func (r *Runner) discard(rec FileRecord) {
	if err := r.fs.Remove(rec.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		r.logger.Warningf("Failed to remove partial file %s: %v", rec.Path, err)
	}
}

// CleanupPhase removes the recorded files in increasing index order and returns how many
// were removed. A missing file is a DeletionFailure wrapping fs.ErrNotExist.
func (r *Runner) CleanupPhase(records []FileRecord) (int, error) {
	removed := 0
	var failures []error

	for _, rec := range records {
		r.printf("removing %s ... \n", rec.Name)

		if err := r.fs.Remove(rec.Path); err != nil {
			ferr := newFileError(DeletionFailure, rec, err)
			r.logger.Errorf("Failed to remove %s: %v", yellow(rec.Name), err)
			if r.cfg.Policy == PolicyFailFast {
				return removed, ferr
			}
			failures = append(failures, ferr)
			continue
		}

		removed++
	}

	return removed, errors.Join(failures...)
}

// rollback removes every recorded file without stopping on errors.
func (r *Runner) rollback(records []FileRecord) {
	if len(records) == 0 {
		return
	}

	r.logger.Warningf("Rolling back %d created files", len(records))
	for _, rec := range records {
		if err := r.fs.Remove(rec.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
			r.logger.Errorf("Rollback failed for %s: %v", yellow(rec.Name), err)
		}
	}
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
