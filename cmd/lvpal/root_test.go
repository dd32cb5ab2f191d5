package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// execute runs the root command with args and stdin, returning stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	// a nil slice would make cobra fall back to os.Args
	if args == nil {
		args = []string{}
	}

	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

// TestRoot_TextArgument prints the first longest palindrome of an argument.
func TestRoot_TextArgument(t *testing.T) {
	out, _, err := execute(t, "", "babad")
	require.NoError(t, err)
	assert.Equal(t, "begin=0 length=3 text=\"bab\"\n", out)
}

// TestRoot_EmptyInput prints the zero-length sentinel.
func TestRoot_EmptyInput(t *testing.T) {
	out, _, err := execute(t, "", "")
	require.NoError(t, err)
	assert.Equal(t, "begin=0 length=0 text=\"\"\n", out)
}

// TestRoot_Stdin reads stdin and drops the trailing newline.
func TestRoot_Stdin(t *testing.T) {
	out, _, err := execute(t, "xabbay\n")
	require.NoError(t, err)
	assert.Equal(t, "begin=1 length=4 text=\"abba\"\n", out)
}

// TestRoot_File reads a memory-mapped file.
func TestRoot_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("cbbd\r\n"), 0o600))

	out, _, err := execute(t, "", "--file", path, "--mode", "rolling")
	require.NoError(t, err)
	assert.Equal(t, "begin=1 length=2 text=\"bb\"\n", out)
}

// TestRoot_FoldAlnumJSON prepares text and prints JSON.
func TestRoot_FoldAlnumJSON(t *testing.T) {
	out, _, err := execute(t, "", "--fold", "--alnum", "-o", "json", "Step on no pets!")
	require.NoError(t, err)

	var rep report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, report{
		Begin:     0,
		Length:    12,
		Text:      "Step on no pets",
		ByteStart: 0,
		ByteEnd:   15,
		Symbols:   12,
		Mode:      "full",
	}, rep)
}

// TestRoot_YAML prints YAML.
func TestRoot_YAML(t *testing.T) {
	out, _, err := execute(t, "", "--output", "yaml", "aaaa")
	require.NoError(t, err)

	var rep report
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 4, rep.Length)
	assert.Equal(t, "aaaa", rep.Text)
	assert.Contains(t, out, "byte_end: 4")
}

// TestRoot_EnvOverride verifies LVPAL_* variables apply when the flag is unset
// and lose to an explicit flag.
func TestRoot_EnvOverride(t *testing.T) {
	t.Setenv("LVPAL_MODE", "rolling")
	t.Setenv("LVPAL_OUTPUT", "json")

	out, _, err := execute(t, "", "level")
	require.NoError(t, err)
	var rep report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "rolling", rep.Mode)

	out, _, err = execute(t, "", "--mode", "full", "level")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "full", rep.Mode)
}

// TestRoot_Trace verifies cell tracing and the table dump reach stderr.
func TestRoot_Trace(t *testing.T) {
	out, errOut, err := execute(t, "", "--trace", "abba")
	require.NoError(t, err)
	assert.Equal(t, "begin=0 length=4 text=\"abba\"\n", out)
	assert.Equal(t, 6, strings.Count(errOut, "cell decided"), "one line per i<j cell")
	assert.Contains(t, errOut, "table:")
	assert.Contains(t, errOut, "palindromes=6")
}

// TestRoot_TraceRollingHasNoTable verifies rolling mode traces cells only.
func TestRoot_TraceRollingHasNoTable(t *testing.T) {
	_, errOut, err := execute(t, "", "--trace", "--mode", "rolling", "abba")
	require.NoError(t, err)
	assert.Contains(t, errOut, "cell decided")
	assert.NotContains(t, errOut, "table:")
}

// TestRoot_QuietByDefault verifies nothing is logged at the default level.
func TestRoot_QuietByDefault(t *testing.T) {
	_, errOut, err := execute(t, "", "abba")
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

// TestRoot_BadFlags ensures invalid values fail before any scan.
func TestRoot_BadFlags(t *testing.T) {
	cases := map[string][]string{
		"mode":      {"--mode", "sparse", "x"},
		"normalize": {"--normalize", "nfx", "x"},
		"output":    {"--output", "xml", "x"},
		"log level": {"--log-level", "loud", "x"},
		"two args":  {"a", "b"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := execute(t, "", args...)
			assert.Error(t, err)
		})
	}
}

// TestRoot_MissingFile surfaces the open error.
func TestRoot_MissingFile(t *testing.T) {
	_, _, err := execute(t, "", "--file", filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open input")
}
