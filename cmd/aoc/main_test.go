package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeInput stores body in a temp file and returns its path.
func writeInput(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name        string
		command     string
		file        string
		body        string
		extra       []string
		wantContain []string
	}{
		{
			name:        "reports sample",
			command:     "reports",
			file:        "reports.txt",
			body:        "7 6 4 2 1\n1 2 7 8 9\n9 7 6 2 1\n1 3 2 4 5\n8 6 4 4 1\n1 3 6 7 9\n",
			extra:       []string{"--verify", "--workers", "2"},
			wantContain: []string{"reports: 6", "safe: 2", "tolerant-safe: 4"},
		},
		{
			name:        "locations sample",
			command:     "locations",
			file:        "lists.txt",
			body:        "3   4\n4   3\n2   5\n1   3\n3   9\n3   3\n",
			wantContain: []string{"distance: 11"},
		},
		{
			name:        "memscan sample",
			command:     "memscan",
			file:        "memory.txt",
			body:        "xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))",
			wantContain: []string{"products: 161", "enabled-products: 48"},
		},
		{
			name:        "wordsearch reduced",
			command:     "wordsearch",
			file:        "grid.txt",
			body:        "M.S\n.A.\nM.S\n\n",
			extra:       []string{"--reduced", "--word", "MAS"},
			wantContain: []string{"words: 2", "crosses: 1"},
		},
		{
			name:        "pageorder",
			command:     "pageorder",
			file:        "pages.txt",
			body:        "1|2\n2|3\n1|3\n\n1,2,3\n3,2,1\n",
			extra:       []string{"--check-total"},
			wantContain: []string{"ordered-middles: 2", "reordered-middles: 2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeInput(t, tt.file, tt.body)
			args := append([]string{tt.command, path}, tt.extra...)

			out, _, err := run(t, args...)
			require.NoError(t, err)
			for _, want := range tt.wantContain {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestJSONOutput(t *testing.T) {
	path := writeInput(t, "lists.txt", "1 2\n")
	out, _, err := run(t, "locations", path, "--json")
	require.NoError(t, err)

	var got []answer
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "distance", got[0].Label)
	assert.EqualValues(t, 1, got[0].Value)
}

func TestBenchLogsToStderr(t *testing.T) {
	path := writeInput(t, "memory.txt", "mul(2,3)")
	out, errOut, err := run(t, "memscan", path, "--bench", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "products: 6")
	assert.Contains(t, errOut, "label=memscan/all")
}

func TestReportsBench(t *testing.T) {
	path := writeInput(t, "reports.txt", "7 6 4 2 1\n1 3 2 4 5\n")
	out, errOut, err := run(t, "reports", path, "--bench", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "tolerant-safe: 2")
	assert.Contains(t, errOut, "label=reports/bitmask")
	assert.Contains(t, errOut, "label=reports/naive")
}

func TestConfigFile(t *testing.T) {
	cfg := writeInput(t, "aoc.yaml", "log_level: debug\nworkers: 1\n")
	path := writeInput(t, "reports.txt", "1 2 3\n")
	_, errOut, err := run(t, "reports", path, "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, errOut, "settings loaded")
	assert.Contains(t, errOut, "mask table built")
}

func TestErrors(t *testing.T) {
	_, _, err := run(t, "reports", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := writeInput(t, "bad.txt", "1 two 3\n")
	_, _, err = run(t, "reports", bad)
	assert.ErrorContains(t, err, "malformed integer token")

	ok := writeInput(t, "ok.txt", "1 2\n")
	_, _, err = run(t, "reports", ok, "--workers", "0")
	assert.ErrorContains(t, err, "--workers")

	_, _, err = run(t, "reports")
	assert.Error(t, err)

	ragged := writeInput(t, "grid.txt", "ab\nc\n")
	_, _, err = run(t, "wordsearch", ragged)
	assert.ErrorContains(t, err, "same length")

	undecided := writeInput(t, "pages.txt", "1|2\n\n1,3\n")
	_, _, err = run(t, "pageorder", undecided)
	assert.ErrorContains(t, err, "no rule orders")
}
