package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amp-labs/amp-sort/bench"
	amperrors "github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/xform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	if args == nil {
		args = []string{}
	}

	root := newRootCommand()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.ExecuteContext(t.Context())

	return stdout.String(), err
}

func writeDataset(t *testing.T, n int) string {
	t.Helper()

	var sb strings.Builder

	sb.WriteString("Item_ID,Item_Name,Purchase_Price\n")

	for i := range n {
		fmt.Fprintf(&sb, "%d,item %d,%d.%02d\n", i, i, (i*37)%101, (i*13)%100)
	}

	path := filepath.Join(t.TempDir(), "inventory.csv")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o600))

	return path
}

func TestSortCommand(t *testing.T) { //nolint:paralleltest
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "radix integers",
			args: []string{"sort", "--algorithm", "radix", "--type", "int", "--", "170", "-45", "75", "90", "-802", "24", "2", "66"},
			want: "-802 -45 2 24 66 75 90 170",
		},
		{
			name: "bucket floats",
			args: []string{"sort", "64.5", "34.0", "25.5", "12.2", "22.7", "11.1", "90.0"},
			want: "11.1 12.2 22.7 25.5 34 64.5 90",
		},
		{
			name: "bucket words",
			args: []string{"sort", "--type", "string", "--verify", "dog", "cat", "bird", "ant"},
			want: "ant bird cat dog",
		},
		{
			name: "negative values after the first",
			args: []string{"sort", "-a", "bucket", "-t", "int", "5", "-3", "0"},
			want: "-3 0 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)

			lines := strings.Split(strings.TrimSpace(out), "\n")
			require.Len(t, lines, 2)
			assert.Equal(t, tt.want, lines[0])
			assert.Contains(t, lines[1], "comparisons=")
		})
	}
}

func TestSortCommandErrors(t *testing.T) { //nolint:paralleltest
	_, err := execute(t, "sort", "--type", "complex", "1")
	require.ErrorIs(t, err, amperrors.ErrUnknownType)

	_, err = execute(t, "sort", "--algorithm", "quick", "1")
	require.ErrorIs(t, err, amperrors.ErrUnknownAlgorithm)

	_, err = execute(t, "sort", "--type", "int", "one")
	require.Error(t, err)

	_, err = execute(t, "sort")
	require.Error(t, err)
}

func TestBenchJSON(t *testing.T) { //nolint:paralleltest
	path := writeDataset(t, 40)

	out, err := execute(t, "--file", path, "--sizes", "10,20", "--iterations", "2",
		"--parallelism", "2", "--format", "json", "--verify")
	require.NoError(t, err)

	var report bench.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Results, 4)

	for _, res := range report.Results {
		assert.True(t, res.Verified)
		assert.Equal(t, 2, res.Iterations)
	}
}

func TestBenchSettingsFromEnv(t *testing.T) { //nolint:paralleltest
	path := writeDataset(t, 30)

	t.Setenv("SORTBENCH_FILE", path)
	t.Setenv("SORTBENCH_FORMAT", "YAML")
	t.Setenv("SORTBENCH_SIZES", "5")
	t.Setenv("SORTBENCH_ALGORITHMS", "radix")

	out, err := execute(t)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Len(t, decoded["results"], 1)

	// Flags win over the environment.
	out, err = execute(t, "--format", "json", "--algorithms", "bucket,radix")
	require.NoError(t, err)

	var report bench.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Len(t, report.Results, 2)
}

func TestBenchText(t *testing.T) { //nolint:paralleltest
	t.Setenv("SORTBENCH_NO_BANNER", "true")

	path := writeDataset(t, 15)

	out, err := execute(t, "-f", path, "--sizes", "15", "-n", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "inventory.csv · Purchase_Price · 15 values")
	assert.Contains(t, out, "bucket")
	assert.Contains(t, out, "radix")
}

func TestBenchErrors(t *testing.T) { //nolint:paralleltest
	path := writeDataset(t, 10)

	_, err := execute(t, "--file", path, "--column", "Price")
	require.ErrorIs(t, err, amperrors.ErrColumnNotFound)

	_, err = execute(t, "--file", path, "--format", "xml")
	require.ErrorIs(t, err, amperrors.ErrUnknownFormat)

	_, err = execute(t, "--file", path, "--algorithms", "merge")
	require.ErrorIs(t, err, amperrors.ErrUnknownAlgorithm)

	t.Setenv("SORTBENCH_ITERATIONS", "0")

	_, err = execute(t, "--file", path)
	require.ErrorIs(t, err, xform.ErrNonPositive)
}

func TestVersionFlag(t *testing.T) { //nolint:paralleltest
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "sortbench version "), out)
}
