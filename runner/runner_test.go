package runner_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/runner"
)

func TestParseLines(t *testing.T) {
	assert.Equal(t, []string{"ab", "cd"}, runner.ParseLines("ab\ncd\n"))
	assert.Equal(t, []string{"ab", "cd"}, runner.ParseLines("ab\r\ncd"))
	assert.Equal(t, []string{"ab", ""}, runner.ParseLines("ab\n\n"))
	assert.Nil(t, runner.ParseLines(""))
}

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("123\n456\n"), 0o600))

	lines, err := runner.ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"123", "456"}, lines)

	_, err = runner.ReadLines(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadLines_Compressed(t *testing.T) {
	dir := t.TempDir()
	payload := []byte("2413\n3215\n")

	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, err := zw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	gzPath := filepath.Join(dir, "input.txt.gz")
	require.NoError(t, os.WriteFile(gzPath, gz.Bytes(), 0o600))

	var zs bytes.Buffer
	enc, err := zstd.NewWriter(&zs)
	require.NoError(t, err)
	_, err = enc.Write(payload)
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	zsPath := filepath.Join(dir, "input.txt.zst")
	require.NoError(t, os.WriteFile(zsPath, zs.Bytes(), 0o600))

	for _, path := range []string{gzPath, zsPath} {
		lines, err := runner.ReadLines(path)
		require.NoError(t, err, path)
		assert.Equal(t, []string{"2413", "3215"}, lines, path)
	}

	bad := filepath.Join(dir, "broken.gz")
	require.NoError(t, os.WriteFile(bad, []byte("plain text"), 0o600))
	_, err = runner.ReadLines(bad)
	assert.Error(t, err)
}

func TestOutcomeFormat(t *testing.T) {
	o := runner.Outcome{Name: "A", Value: 1234567, Elapsed: 1500 * time.Microsecond}
	assert.Equal(t, "part A: 1,234,567 (1.5ms)", o.Format(false))

	colored := o.Format(true)
	assert.Contains(t, colored, "1,234,567")
	assert.NotEqual(t, o.Format(false), colored)

	failed := runner.Outcome{Name: "B", Err: errors.New("no path"), Elapsed: time.Millisecond}
	assert.Equal(t, "part B: no path (1ms)", failed.Format(false))
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	count := func(lines []string) (int, error) { return len(lines), nil }
	boom := errors.New("boom")
	fail := func([]string) (int, error) { return 0, boom }

	outcomes, err := runner.Run(&buf, []string{"x", "y"}, false,
		runner.Part{Name: "A", Solve: count},
		runner.Part{Name: "B", Solve: fail},
		runner.Part{Name: "C"},
	)
	assert.ErrorIs(t, err, boom)
	require.Len(t, outcomes, 3)
	assert.Equal(t, 2, outcomes[0].Value)
	assert.ErrorIs(t, outcomes[2].Err, runner.ErrNoSolver)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "part A: 2 ("))
	assert.True(t, strings.HasPrefix(lines[1], "part B: boom ("))
}
