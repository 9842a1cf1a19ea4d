package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shakecalc/internal/app"
	"shakecalc/internal/calc"
	"shakecalc/internal/domain"
	"shakecalc/internal/keypad"
	"shakecalc/internal/store"
)

// run executes the CLI with args against dir and returns stdout.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	return runWithInput(t, dir, "", args...)
}

func runWithInput(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--home", dir}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "eval", "2+3*4")
	require.NoError(t, err)
	assert.Equal(t, "20\n", out)

	out, err = run(t, dir, "eval", "5/0")
	require.NoError(t, err)
	assert.Equal(t, "Infinity\n", out)

	_, err = run(t, dir, "eval", "abc")
	assert.ErrorIs(t, err, calc.ErrInvalidNumber)
}

func TestPressPersistsAcrossRuns(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "press", "12+3=")
	require.NoError(t, err)
	assert.Equal(t, "15\n", out)

	out, err = run(t, dir, "last")
	require.NoError(t, err)
	assert.Equal(t, "15\n", out)

	// The restored display keeps accepting operators.
	out, err = run(t, dir, "press", "x", "2", "=")
	require.NoError(t, err)
	assert.Equal(t, "30\n", out)

	out, err = run(t, dir, "press", "DEL")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	_, err = os.Stat(filepath.Join(dir, store.PrefsFileName))
	assert.NoError(t, err)
}

func TestPressUnknownKey(t *testing.T) {
	_, err := run(t, t.TempDir(), "press", "2^3")
	assert.ErrorIs(t, err, keypad.ErrUnknownKey)
}

func TestPressErrorDisplay(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, dir, "press", "1+.=")
	require.NoError(t, err)
	assert.Equal(t, domain.ErrorDisplay+"\n", out)

	// A digit replaces the restored error.
	out, err = run(t, dir, "press", "4")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)
}

func TestLastDefaultsToZero(t *testing.T) {
	out, err := run(t, t.TempDir(), "last")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestClear(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "press", "99")
	require.NoError(t, err)

	out, err := run(t, dir, "clear")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	out, err = run(t, dir, "last")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestShakeFromStdin(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "press", "42")
	require.NoError(t, err)

	samples := "# resting\n0,0,9.80665\n0.5,0.2,9.7\n30,0,9.8\n"
	out, err := runWithInput(t, dir, samples, "shake")
	require.NoError(t, err)
	assert.Equal(t, domain.ShakeNotice+"\n0\n", out)

	out, err = run(t, dir, "last")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestShakeBelowThresholdKeepsDisplay(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "press", "42")
	require.NoError(t, err)

	file := filepath.Join(dir, "still.csv")
	require.NoError(t, os.WriteFile(file, []byte("0 0 9.8\n1 1 10\n"), 0o600))

	out, err := run(t, dir, "shake", file)
	require.NoError(t, err)
	assert.Equal(t, "42\n", out)
}

func TestShakeStrict(t *testing.T) {
	_, err := runWithInput(t, t.TempDir(), "1,2\n", "shake", "--strict")
	assert.Error(t, err)
}

func TestStoreBackends(t *testing.T) {
	for _, backend := range []string{app.BackendSQLite, app.BackendMemory} {
		t.Run(backend, func(t *testing.T) {
			dir := t.TempDir()
			out, err := run(t, dir, "--store", backend, "press", "6/3=")
			require.NoError(t, err)
			assert.Equal(t, "2\n", out)

			want := "2\n"
			if backend == app.BackendMemory {
				want = "0\n"
			}
			out, err = run(t, dir, "--store", backend, "last")
			require.NoError(t, err)
			assert.Equal(t, want, out)
		})
	}
}

func TestSealedStore(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, dir, "-p", "hunter2", "press", "7")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)

	out, err = run(t, dir, "-p", "hunter2", "last")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)

	_, err = run(t, dir, "-p", "wrong", "last")
	assert.ErrorIs(t, err, store.ErrWrongPassphrase)
}

func TestInvalidStore(t *testing.T) {
	_, err := run(t, t.TempDir(), "--store", "redis", "last")
	assert.ErrorIs(t, err, app.ErrInvalidConfig)
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, app.ConfigFileName)

	cfg, err := app.LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, app.BackendFile, cfg.Store.Backend)

	_, err = run(t, dir, "init")
	assert.Error(t, err)
	_, err = run(t, dir, "init", "--force")
	assert.NoError(t, err)
}

func TestServeNeedsSomethingToServe(t *testing.T) {
	_, err := run(t, t.TempDir(), "serve")
	assert.Error(t, err)
}
