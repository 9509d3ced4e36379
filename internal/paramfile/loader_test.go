package paramfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithAndWithoutK(t *testing.T) {
	tmp := t.TempDir()

	full := filepath.Join(tmp, "full.yaml")
	require.NoError(t, os.WriteFile(full, []byte("n: 100\nd: 10\nc: 10\nt: 10\ns: 100\ni: 99\nk: 5\n"), 0o644))
	p, err := Load(full)
	require.NoError(t, err)
	assert.Equal(t, 100, p.N)
	assert.Equal(t, 99, p.I)
	require.NotNil(t, p.K)
	assert.Equal(t, 5, *p.K)

	noK := filepath.Join(tmp, "nok.yaml")
	require.NoError(t, os.WriteFile(noK, []byte("n: 4\nd: 2\nc: 3\nt: 1\ns: -7\ni: 0\n"), 0o644))
	p, err = Load(noK)
	require.NoError(t, err)
	assert.Nil(t, p.K)
	assert.Equal(t, -7, p.S)

	ps, err := p.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 3, ps.K)
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"missing field", "n: 4\nd: 2\nc: 3\nt: 1\ni: 0\n", ErrMissingField},
		{"unknown field", "n: 4\nd: 2\nc: 3\nt: 1\ns: 1\ni: 0\nq: 9\n", ErrParse},
		{"not an int", "n: four\n", ErrParse},
		{"empty", "", ErrParse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
