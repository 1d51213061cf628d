package churn

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/op/go-logging"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const testDir = "/work"

var errDiskFull = errors.New("no space left on device")

func setupTestLogger(t *testing.T, name string) *logging.Logger {
	logger := logging.MustGetLogger(name)
	logging.SetBackend(logging.NewLogBackend(io.Discard, "", 0))
	t.Cleanup(func() {
		logging.SetBackend(logging.NewLogBackend(os.Stdout, "", 0))
	})
	return logger
}

// newTestRunner builds a runner on fs writing into testDir with a fixed seed.
func newTestRunner(t *testing.T, fs afero.Fs, deps Dependencies, opts ...ConfigOption) (*Runner, *bytes.Buffer) {
	t.Helper()

	require.NoError(t, fs.MkdirAll(testDir, 0o755))

	base := []ConfigOption{WithDir(testDir), WithSeed(42), WithBanner("churn")}
	cfg, err := NewConfig(append(base, opts...)...)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	deps.FS = fs
	deps.Out = out
	if deps.Logger == nil {
		deps.Logger = setupTestLogger(t, t.Name())
	}

	runner, err := New(cfg, deps)
	require.NoError(t, err)
	return runner, out
}

func testPath(name string) string {
	return filepath.Join(testDir, name)
}

// faultyFs fails writes to one file name and tracks how many handles are open at once.
type faultyFs struct {
	afero.Fs
	failWrite string
	failClose string
	open      int
	maxOpen   int
}

func (f *faultyFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	file, err := f.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	f.open++
	if f.open > f.maxOpen {
		f.maxOpen = f.open
	}
	base := filepath.Base(name)
	return &faultyFile{File: file, fs: f, failWrite: base == f.failWrite, failClose: base == f.failClose}, nil
}

type faultyFile struct {
	afero.File
	fs        *faultyFs
	failWrite bool
	failClose bool
}

func (f *faultyFile) Write(p []byte) (int, error) {
	if f.failWrite {
		return 0, errDiskFull
	}
	return f.File.Write(p)
}

func (f *faultyFile) Close() error {
	f.fs.open--
	if err := f.File.Close(); err != nil {
		return err
	}
	if f.failClose {
		return errDiskFull
	}
	return nil
}
