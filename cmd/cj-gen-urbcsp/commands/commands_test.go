package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michal-dobrogost/csp-json/urbcsp"
)

// Commands install the package-level logger, so tests run sequentially.

// run executes the command tree in-process.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errb bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errb)
	err = root.Execute()
	return out.String(), errb.String(), err
}

func golden(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("..", "..", "..", "urbcsp", "testdata", name))
	require.NoError(t, err)
	return string(b)
}

func TestRoot_PositionalGolden(t *testing.T) {
	want := golden(t, "n100d10c10t10s100i99k10.json")

	out, _, err := run(t, "", "100", "10", "10", "10", "100", "99")
	require.NoError(t, err)
	assert.Equal(t, want, out)

	out, _, err = run(t, "", "100", "10", "10", "10", "100", "99", "10")
	require.NoError(t, err)
	assert.Equal(t, want, out)

	out, _, err = run(t, "", "6", "3", "5", "2", "7", "2", "2")
	require.NoError(t, err)
	assert.Equal(t, golden(t, "n6d3c5t2s7i2k2.json"), out)
}

func TestRoot_NegativeSeedMatchesPositive(t *testing.T) {
	neg, _, err := run(t, "", "6", "3", "5", "2", "-7", "2", "2")
	require.NoError(t, err)
	pos, _, err := run(t, "", "6", "3", "5", "2", "7", "2", "2")
	require.NoError(t, err)

	// Same stream, different meta.
	assert.Contains(t, neg, `"s": -7`)
	assert.Equal(t, pos[strings.Index(pos, `"domains"`):], neg[strings.Index(neg, `"domains"`):])
}

func TestRoot_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		code int
	}{
		{"too few args", []string{"1", "2", "3"}, ExitUsage},
		{"too many args", []string{"1", "2", "3", "4", "5", "6", "7", "8"}, ExitUsage},
		{"not an integer", []string{"4", "two", "1", "1", "1", "0"}, ExitUsage},
		{"unknown flag", []string{"--frobnicate", "4", "2", "1", "1", "1", "0"}, ExitUsage},
		{"bad log format", []string{"--log-format", "xml", "4", "2", "1", "1", "1", "0"}, ExitUsage},
		{"n below 2", []string{"1", "2", "0", "1", "1", "0"}, ExitInvalidParams},
		{"too many constraints", []string{"4", "2", "7", "1", "1", "0"}, ExitInvalidParams},
		{"tightness above d squared", []string{"4", "2", "3", "5", "1", "0"}, ExitInvalidParams},
		{"k above c", []string{"4", "2", "3", "1", "1", "0", "4"}, ExitInvalidParams},
		{"negative instance", []string{"4", "2", "3", "1", "1", "-1"}, ExitInvalidParams},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, "", tc.args...)
			require.Error(t, err)
			assert.Equal(t, tc.code, ExitCode(err))
			assert.Empty(t, out)
		})
	}
}

func TestRoot_InvalidParamsIsSentinel(t *testing.T) {
	_, _, err := run(t, "", "4", "2", "3", "1", "1", "0", "4")
	assert.ErrorIs(t, err, urbcsp.ErrInvalidParams)
	assert.Equal(t, ExitOK, ExitCode(nil))
}

func TestRoot_ParamsFileAndOutput(t *testing.T) {
	tmp := t.TempDir()
	params := filepath.Join(tmp, "p.yaml")
	require.NoError(t, os.WriteFile(params, []byte("n: 100\nd: 10\nc: 10\nt: 10\ns: 100\ni: 99\n"), 0o644))
	dst := filepath.Join(tmp, "out.json")

	out, _, err := run(t, "", "--params", params, "-o", dst)
	require.NoError(t, err)
	assert.Empty(t, out)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, golden(t, "n100d10c10t10s100i99k10.json"), string(got))

	_, _, err = run(t, "", "--params", params, "4", "2", "1", "1", "1", "0")
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestRoot_DebugLogsToStderr(t *testing.T) {
	out, errOut, err := run(t, "", "--debug", "6", "3", "5", "2", "7", "2", "2")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Contains(t, errOut, "urbcsp.generate")
	assert.NotContains(t, out, "urbcsp.generate")
}

func TestInspect_StdinAndFile(t *testing.T) {
	doc := golden(t, "n100d10c10t10s100i99k10.json")

	out, _, err := run(t, doc, "inspect")
	require.NoError(t, err)
	assert.Contains(t, out, "id: urbcsp/n100d10c10t10s100i99k10")
	assert.Contains(t, out, "algo: urbcsp")
	assert.Contains(t, out, "variables: 100")
	assert.Contains(t, out, "constraints: 10")
	assert.Contains(t, out, "components: 90")

	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	fromFile, _, err := run(t, "", "inspect", path)
	require.NoError(t, err)
	assert.Equal(t, out, fromFile)
}

func TestInspect_Rejects(t *testing.T) {
	_, _, err := run(t, "{not json", "inspect", "-")
	assert.Error(t, err)

	_, _, err = run(t, "", "inspect", filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "cj-gen-urbcsp dev (commit=none, date=unknown)\n", out)
}
