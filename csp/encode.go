// SPDX-License-Identifier: MIT
// Package: csp-json/csp
//
// encode.go - canonical CSP-JSON text.
//
// Layout contract (byte-exact, regression tested against golden files):
//   - Top-level keys one per line, two-space indentation, fixed key order
//     meta, domains, vars, constraintDefs, constraints.
//   - meta spans one line per key; params is a single inline object.
//   - Each domain / constraint def / constraint is one inline line.
//   - Integer lists are inline with ", " separators; tuples are nested lists.
//   - Empty top-level lists print as "[]" on the key line.
//   - Exactly one trailing newline.

package csp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Marshal renders doc in canonical form.
// Complexity: O(size of the document).
func Marshal(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("Marshal: nil document: %w", ErrInvalidDocument)
	}

	var b bytes.Buffer
	b.WriteString("{\n")

	b.WriteString("  \"meta\": {\n")
	b.WriteString("    \"id\": ")
	if err := writeString(&b, doc.Meta.ID); err != nil {
		return nil, err
	}
	b.WriteString(",\n    \"algo\": ")
	if err := writeString(&b, doc.Meta.Algo); err != nil {
		return nil, err
	}
	b.WriteString(",\n    \"params\": {")
	for i, p := range doc.Meta.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		if err := writeString(&b, p.Key); err != nil {
			return nil, err
		}
		b.WriteString(": ")
		b.WriteString(strconv.Itoa(p.Value))
	}
	b.WriteString("}\n  },\n")

	if len(doc.Domains) == 0 {
		b.WriteString("  \"domains\": [],\n")
	} else {
		b.WriteString("  \"domains\": [\n")
		for i, d := range doc.Domains {
			b.WriteString("    {\"values\": ")
			writeInts(&b, d.Values)
			b.WriteString("}")
			endItem(&b, i, len(doc.Domains))
		}
		b.WriteString("  ],\n")
	}

	b.WriteString("  \"vars\": ")
	writeInts(&b, doc.Vars)
	b.WriteString(",\n")

	if len(doc.ConstraintDefs) == 0 {
		b.WriteString("  \"constraintDefs\": [],\n")
	} else {
		b.WriteString("  \"constraintDefs\": [\n")
		for i, def := range doc.ConstraintDefs {
			b.WriteString("    {\"noGoods\": ")
			writeTuples(&b, def.NoGoods)
			b.WriteString("}")
			endItem(&b, i, len(doc.ConstraintDefs))
		}
		b.WriteString("  ],\n")
	}

	if len(doc.Constraints) == 0 {
		b.WriteString("  \"constraints\": []\n")
	} else {
		b.WriteString("  \"constraints\": [\n")
		for i, c := range doc.Constraints {
			b.WriteString("    {\"id\": ")
			b.WriteString(strconv.Itoa(c.ID))
			b.WriteString(", \"vars\": ")
			writeInts(&b, c.Vars)
			b.WriteString("}")
			endItem(&b, i, len(doc.Constraints))
		}
		b.WriteString("  ]\n")
	}

	b.WriteString("}\n")
	return b.Bytes(), nil
}

// Encode renders doc and writes it to w in a single Write call, so a failed
// render never leaves a partial document behind.
func Encode(w io.Writer, doc *Document) error {
	out, err := Marshal(doc)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	return nil
}

func endItem(b *bytes.Buffer, i, n int) {
	if i != n-1 {
		b.WriteString(",\n")
		return
	}
	b.WriteString("\n")
}

func writeInts(b *bytes.Buffer, xs []int) {
	b.WriteByte('[')
	for i, x := range xs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(x))
	}
	b.WriteByte(']')
}

func writeTuples(b *bytes.Buffer, ts [][]int) {
	b.WriteByte('[')
	for i, t := range ts {
		if i > 0 {
			b.WriteString(", ")
		}
		writeInts(b, t)
	}
	b.WriteByte(']')
}

// writeString emits s as a JSON string literal.
func writeString(b *bytes.Buffer, s string) error {
	q, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("Marshal: string %q: %w", s, err)
	}
	b.Write(q)
	return nil
}
