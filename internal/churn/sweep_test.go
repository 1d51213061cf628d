package churn

import (
	"context"
	"errors"
	"testing"

	"github.com/shini4i/file-churn/cmd/churn/mocks"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSweepRemovesOnlyIndexedFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	globber := mocks.NewMockGlobber(ctrl)

	fsys := afero.NewMemMapFs()
	runner, out := newTestRunner(t, fsys, Dependencies{Globber: globber})

	names := []string{"FILE0", "FILE12", "FILE", "FILEbackup", "FILE07", "FILE3.txt"}
	var paths []string
	for _, name := range names {
		require.NoError(t, afero.WriteFile(fsys, testPath(name), []byte("abc"), 0o644))
		paths = append(paths, testPath(name))
	}
	globber.EXPECT().Glob(testPath("FILE*")).Return(paths, nil)

	removed, err := runner.Sweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, removed)
	assert.Equal(t, "removing FILE0 ... \nremoving FILE12 ... \n", out.String())

	for _, kept := range []string{"FILE", "FILEbackup", "FILE07", "FILE3.txt"} {
		exists, err := afero.Exists(fsys, testPath(kept))
		require.NoError(t, err)
		assert.True(t, exists, "%s should be kept", kept)
	}
}

func TestSweepNothingToDo(t *testing.T) {
	ctrl := gomock.NewController(t)
	globber := mocks.NewMockGlobber(ctrl)
	globber.EXPECT().Glob(gomock.Any()).Return(nil, nil)

	runner, out := newTestRunner(t, afero.NewMemMapFs(), Dependencies{Globber: globber})

	removed, err := runner.Sweep(context.Background())
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.Empty(t, out.String())
}

func TestSweepGlobError(t *testing.T) {
	ctrl := gomock.NewController(t)
	globber := mocks.NewMockGlobber(ctrl)
	globber.EXPECT().Glob(gomock.Any()).Return(nil, errors.New("permission denied"))

	runner, _ := newTestRunner(t, afero.NewMemMapFs(), Dependencies{Globber: globber})

	_, err := runner.Sweep(context.Background())
	assert.ErrorContains(t, err, "permission denied")
}

func TestSweepDeletionFailure(t *testing.T) {
	cases := []struct {
		name        string
		keepGoing   bool
		wantRemoved int
	}{
		{name: "fail fast stops", keepGoing: false, wantRemoved: 0},
		{name: "keep going continues", keepGoing: true, wantRemoved: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			globber := mocks.NewMockGlobber(ctrl)

			fsys := afero.NewMemMapFs()
			runner, _ := newTestRunner(t, fsys, Dependencies{Globber: globber}, WithKeepGoing(tc.keepGoing))
			require.NoError(t, afero.WriteFile(fsys, testPath("FILE1"), []byte("abc"), 0o644))

			// FILE0 is reported by the glob but already gone.
			globber.EXPECT().Glob(gomock.Any()).Return([]string{testPath("FILE0"), testPath("FILE1")}, nil)

			removed, err := runner.Sweep(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDelete)
			assert.Equal(t, tc.wantRemoved, removed)
		})
	}
}

func TestParseIndex(t *testing.T) {
	runner, _ := newTestRunner(t, afero.NewMemMapFs(), Dependencies{}, WithPrefix("BLK"))

	index, ok := runner.parseIndex("BLK42")
	assert.True(t, ok)
	assert.Equal(t, 42, index)

	for _, name := range []string{"BLK", "BLK-1", "BLK01", "FILE1", "BLK1a"} {
		_, ok := runner.parseIndex(name)
		assert.False(t, ok, name)
	}

	index, ok = runner.parseIndex("BLK0")
	assert.True(t, ok)
	assert.Zero(t, index)
}

func TestSweepDefaultGlobberUsesRunnerFs(t *testing.T) {
	cases := []struct {
		name string
		fsys func(t *testing.T) afero.Fs
	}{
		{name: "memory", fsys: func(*testing.T) afero.Fs { return afero.NewMemMapFs() }},
		{name: "base path", fsys: func(t *testing.T) afero.Fs { return afero.NewBasePathFs(afero.NewOsFs(), t.TempDir()) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fsys := tc.fsys(t)
			runner, out := newTestRunner(t, fsys, Dependencies{})

			for _, name := range []string{"FILE0", "FILE1", "FILEbackup"} {
				require.NoError(t, afero.WriteFile(fsys, testPath(name), []byte("abc"), 0o644))
			}

			removed, err := runner.Sweep(context.Background())
			require.NoError(t, err)

			assert.Equal(t, 2, removed)
			assert.Equal(t, "removing FILE0 ... \nremoving FILE1 ... \n", out.String())
			assertNoChurnFiles(t, fsys)

			exists, err := afero.Exists(fsys, testPath("FILEbackup"))
			require.NoError(t, err)
			assert.True(t, exists)
		})
	}
}

func TestSweepSkipsDirectories(t *testing.T) {
	fsys := afero.NewMemMapFs()
	runner, out := newTestRunner(t, fsys, Dependencies{})

	require.NoError(t, afero.WriteFile(fsys, testPath("FILE4"), []byte("abc"), 0o644))
	require.NoError(t, fsys.MkdirAll(testPath("FILE5"), 0o755))
	require.NoError(t, afero.WriteFile(fsys, testPath("FILE5/keep"), []byte("abc"), 0o644))

	removed, err := runner.Sweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, removed)
	assert.Equal(t, "removing FILE4 ... \n", out.String())

	isDir, err := afero.IsDir(fsys, testPath("FILE5"))
	require.NoError(t, err)
	assert.True(t, isDir)

	exists, err := afero.Exists(fsys, testPath("FILE5/keep"))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSweepStopsWhenCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	globber := mocks.NewMockGlobber(ctrl)

	fsys := afero.NewMemMapFs()
	runner, out := newTestRunner(t, fsys, Dependencies{Globber: globber}, WithKeepGoing(true))

	var paths []string
	for _, name := range []string{"FILE0", "FILE1"} {
		require.NoError(t, afero.WriteFile(fsys, testPath(name), []byte("abc"), 0o644))
		paths = append(paths, testPath(name))
	}

	ctx, cancel := context.WithCancel(context.Background())
	globber.EXPECT().Glob(gomock.Any()).DoAndReturn(func(string) ([]string, error) {
		cancel()
		return paths, nil
	})

	removed, err := runner.Sweep(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, removed)
	assert.Empty(t, out.String())

	for _, path := range paths {
		exists, err := afero.Exists(fsys, path)
		require.NoError(t, err)
		assert.True(t, exists)
	}
}
