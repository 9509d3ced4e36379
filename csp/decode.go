// SPDX-License-Identifier: MIT
// Package: csp-json/csp
//
// decode.go - reading CSP-JSON documents.
//
// Contract:
//   - Accepts any JSON layout; only the canonical writer is byte-exact.
//   - meta.params keeps its key order; values must be integers.
//   - Decoding does not validate references; call Validate for that.

package csp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

type wireDocument struct {
	Meta struct {
		ID     string          `json:"id"`
		Algo   string          `json:"algo"`
		Params json.RawMessage `json:"params"`
	} `json:"meta"`
	Domains []struct {
		Values []int `json:"values"`
	} `json:"domains"`
	Vars           []int `json:"vars"`
	ConstraintDefs []struct {
		NoGoods [][]int `json:"noGoods"`
	} `json:"constraintDefs"`
	Constraints []struct {
		ID   int   `json:"id"`
		Vars []int `json:"vars"`
	} `json:"constraints"`
}

// Decode reads one document from r.
// Complexity: O(size of the input).
func Decode(r io.Reader) (*Document, error) {
	var w wireDocument
	dec := json.NewDecoder(r)
	if err := dec.Decode(&w); err != nil {
		return nil, fmt.Errorf("Decode: %v: %w", err, ErrMalformed)
	}

	params, err := decodeParams(w.Meta.Params)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Meta: Meta{ID: w.Meta.ID, Algo: w.Meta.Algo, Params: params},
		Vars: w.Vars,
	}
	for _, d := range w.Domains {
		doc.Domains = append(doc.Domains, Domain{Values: d.Values})
	}
	for _, def := range w.ConstraintDefs {
		doc.ConstraintDefs = append(doc.ConstraintDefs, ConstraintDef{NoGoods: def.NoGoods})
	}
	for _, c := range w.Constraints {
		doc.Constraints = append(doc.Constraints, Constraint{ID: c.ID, Vars: c.Vars})
	}
	return doc, nil
}

// Unmarshal decodes a document held in memory.
func Unmarshal(data []byte) (*Document, error) {
	return Decode(bytes.NewReader(data))
}

// decodeParams walks the params object token by token so that key order
// survives decoding.
func decodeParams(raw json.RawMessage) ([]Param, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("Decode: params: %v: %w", err, ErrMalformed)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("Decode: params is not an object: %w", ErrMalformed)
	}

	var out []Param
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("Decode: params: %v: %w", err, ErrMalformed)
		}
		key, _ := keyTok.(string)

		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("Decode: params[%s]: %v: %w", key, err, ErrMalformed)
		}
		num, ok := valTok.(json.Number)
		if !ok {
			return nil, fmt.Errorf("Decode: params[%s] is not a number: %w", key, ErrMalformed)
		}
		v, err := num.Int64()
		if err != nil {
			return nil, fmt.Errorf("Decode: params[%s]=%s: %w", key, num, errors.Join(err, ErrMalformed))
		}
		out = append(out, Param{Key: key, Value: int(v)})
	}
	return out, nil
}
