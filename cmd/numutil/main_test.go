package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/numutil/pkg/numeric"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDemo(t *testing.T) {
	out, _, err := execute(t, "demo")
	require.NoError(t, err)

	want := "Basic Math:\n" +
		"  10 + 5 = 15\n" +
		"  10 - 5 = 5\n" +
		"  10 * 5 = 50\n" +
		"  10 / 5 = 2\n" +
		"\nCurrency: $99.90\n" +
		"\n15% of 200 = 30\n" +
		"\nPi rounded to 2 decimals: 3.14\n" +
		"\n50 is in range 0-100: true\n"
	assert.Equal(t, want, out)
}

func TestOperationCommands(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"add", "2", "3"}, "5\n"},
		{[]string{"sub", "--", "4", "10"}, "-6\n"},
		{[]string{"multiply", "--", "-3", "-4"}, "12\n"},
		{[]string{"div", "10", "4"}, "2.5\n"},
		{[]string{"currency", "99.999"}, "$100.00\n"},
		{[]string{"currency", "--", "-12.5"}, "$-12.50\n"},
		{[]string{"percentage", "200", "15"}, "30\n"},
		{[]string{"round", "3.145", "2"}, "3.15\n"},
		{[]string{"in-range", "101", "0", "100"}, "false\n"},
		{[]string{"--exact", "add", "0.1", "0.2"}, "0.3\n"},
		{[]string{"add", "0.1", "0.2"}, "0.30000000000000004\n"},
	}
	for _, c := range cases {
		out, _, err := execute(t, c.args...)
		require.NoError(t, err, c.args)
		assert.Equal(t, c.want, out, c.args)
	}
}

func TestDivideByZeroFails(t *testing.T) {
	_, stderr, err := execute(t, "divide", "10", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, numeric.ErrDivisionByZero)
	assert.Contains(t, stderr, "Division by zero")
}

func TestOperationArgumentErrors(t *testing.T) {
	_, _, err := execute(t, "add", "1")
	assert.Error(t, err)

	_, _, err = execute(t, "add", "1", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `argument 2: "x" is not a number`)

	_, _, err = execute(t, "round", "3.14", "1.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "round decimals must be an integer")
}

func TestVerboseLogging(t *testing.T) {
	out, stderr, err := execute(t, "--verbose", "add", "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
	assert.Contains(t, stderr, "level=debug")
	assert.Contains(t, stderr, "method=evaluate")
	assert.Contains(t, stderr, "op=add")

	_, stderr, err = execute(t, "add", "1", "2")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func writeBatch(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ops.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleBatch = `operations:
  - name: sum
    op: add
    args: [10, 5]
  - name: boom
    op: divide
    args: [10, 0]
  - name: price
    op: currency
    args: [99.9]
`

func TestBatch(t *testing.T) {
	path := writeBatch(t, sampleBatch)

	out, _, err := execute(t, "batch", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "sum: add(10, 5) = 15\n")
	assert.Contains(t, out, "boom: divide(10, 0) error: Division by zero\n")
	assert.Contains(t, out, "price: format_currency(99.9) = $99.90\n")
	assert.Contains(t, out, "3 operations, 1 failed (33.33%)")

	out, _, err = execute(t, "batch", "-f", path, "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"failures": 1`)

	_, _, err = execute(t, "batch", "-f", path, "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 operations failed")
}

func TestBatchErrors(t *testing.T) {
	_, _, err := execute(t, "batch")
	assert.Error(t, err, "--file is required")

	_, _, err = execute(t, "batch", "-f", writeBatch(t, sampleBatch), "-o", "html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")

	_, _, err = execute(t, "batch", "-f", writeBatch(t, "operations: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no operations provided")
}

func TestBatchJSONWithNonFiniteValues(t *testing.T) {
	path := writeBatch(t, `operations:
  - name: overflow
    op: multiply
    args: [1e308, 10]
  - name: infinite
    op: add
    args: [.inf, 1]
  - name: sum
    op: add
    args: [1, 2]
`)
	out, _, err := execute(t, "batch", "-f", path, "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"value": "+Inf"`)
	assert.Contains(t, out, `"+Inf",`)
	assert.Contains(t, out, `"value": 3`)
}
