package input_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/opsearch/calibrate"
	"github.com/katalvlaran/opsearch/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = `190: 10 19
3267: 81 40 27
83: 17 5

# concat-only lines follow
156: 15 6
7290: 6 8 6 15
`

// TestParse_Sample parses targets and operands in order.
func TestParse_Sample(t *testing.T) {
	eqs, err := input.ParseString(sampleText)
	require.NoError(t, err)
	require.Len(t, eqs, 5)

	got := make([]string, len(eqs))
	for i, eq := range eqs {
		got[i] = eq.String()
	}
	want := []string{"190: 10 19", "3267: 81 40 27", "83: 17 5", "156: 15 6", "7290: 6 8 6 15"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parsed equations mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []uint64{6, 8, 6, 15}, eqs[4].Operands())
}

// TestParse_Whitespace accepts extra spaces, tabs and CRLF endings.
func TestParse_Whitespace(t *testing.T) {
	eqs, err := input.ParseString("  21 :\t1  20 \r\n5:5")
	require.NoError(t, err)
	require.Len(t, eqs, 2)
	assert.Equal(t, uint64(21), eqs[0].Target())
	assert.Equal(t, []uint64{1, 20}, eqs[0].Operands())
	assert.Equal(t, []uint64{5}, eqs[1].Operands())
}

// TestParse_Errors reports the failing line and wraps ErrSyntax.
func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"missing colon":   "190: 10 19\n190 10 19",
		"no operands":     "1: 1\n2:",
		"negative":        "1: 1\n3: -1 4",
		"not a number":    "1: 1\nx: 1 2",
		"uint64 overflow": "1: 1\n18446744073709551616: 1",
	}
	for name, text := range cases {
		_, err := input.ParseString(text)
		require.Error(t, err, name)
		assert.ErrorIs(t, err, input.ErrSyntax, name)
		assert.Contains(t, err.Error(), "line 2", name)
	}

	_, err := input.ParseString("2:")
	assert.ErrorIs(t, err, calibrate.ErrNoOperands)
}

// TestParse_Empty yields no equations and no error.
func TestParse_Empty(t *testing.T) {
	eqs, err := input.ParseString("\n\n# nothing\n")
	require.NoError(t, err)
	assert.Empty(t, eqs)
}

// TestParseFile reads from disk and reports missing files.
func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "equations.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleText), 0o600))

	eqs, err := input.ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, eqs, 5)

	_, err = input.ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestParse_LongLine accepts lines larger than the scanner's default buffer.
func TestParse_LongLine(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("1:")
	for i := 0; i < 40000; i++ {
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(i % 10))
	}
	eqs, err := input.ParseString(sb.String())
	require.NoError(t, err)
	require.Len(t, eqs, 1)
	assert.Equal(t, 39999, eqs[0].Slots())
}
