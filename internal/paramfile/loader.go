// Package paramfile reads generation parameters from YAML files:
//
//	n: 100
//	d: 10
//	c: 10
//	t: 10
//	s: 100
//	i: 99
//	k: 10   # optional, defaults to c
package paramfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/michal-dobrogost/csp-json/urbcsp"
)

// ErrMissingField indicates a required key is absent from the file.
var ErrMissingField = errors.New("paramfile: missing field")

// ErrParse indicates the file is not a valid parameter document.
var ErrParse = errors.New("paramfile: parse error")

// fileDTO mirrors urbcsp.Params with every field optional so that missing
// keys can be told apart from zero values.
type fileDTO struct {
	N *int `yaml:"n"`
	D *int `yaml:"d"`
	C *int `yaml:"c"`
	T *int `yaml:"t"`
	S *int `yaml:"s"`
	I *int `yaml:"i"`
	K *int `yaml:"k"`
}

// Load reads and decodes the parameter file at path.
func Load(path string) (urbcsp.Params, error) {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return urbcsp.Params{}, fmt.Errorf("paramfile: read %s: %w", path, err)
	}
	p, err := Decode(bytes.NewReader(b))
	if err != nil {
		return urbcsp.Params{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Decode reads one parameter document. Unknown keys are rejected.
func Decode(r io.Reader) (urbcsp.Params, error) {
	var dto fileDTO
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil {
		if errors.Is(err, io.EOF) {
			return urbcsp.Params{}, fmt.Errorf("empty document: %w", ErrParse)
		}
		return urbcsp.Params{}, fmt.Errorf("%v: %w", err, ErrParse)
	}
	return dto.toParams()
}

func (d fileDTO) toParams() (urbcsp.Params, error) {
	required := []struct {
		key string
		val *int
	}{
		{urbcsp.KeyN, d.N},
		{urbcsp.KeyD, d.D},
		{urbcsp.KeyC, d.C},
		{urbcsp.KeyT, d.T},
		{urbcsp.KeyS, d.S},
		{urbcsp.KeyI, d.I},
	}
	for _, f := range required {
		if f.val == nil {
			return urbcsp.Params{}, fmt.Errorf("%q: %w", f.key, ErrMissingField)
		}
	}

	return urbcsp.Params{
		N: *d.N,
		D: *d.D,
		C: *d.C,
		T: *d.T,
		S: *d.S,
		I: *d.I,
		K: d.K,
	}, nil
}
