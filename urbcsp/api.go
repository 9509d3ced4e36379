// SPDX-License-Identifier: MIT
// Package: csp-json/urbcsp
//
// api.go - thin public entry-points for the urbcsp package.
//
// Design contract (strict):
//   - One orchestrator: Generate(p, opts...). Validates, derives the stream,
//     draws, builds. Render adds canonical encoding on top.
//   - Functional options (Option) resolve into an immutable genConfig (no global state).
//   - Determinism: same ParamSet ⇒ byte-identical document, regardless of options.
//   - Safety: never panic; return sentinel errors wrapped with method context.
//
// Pipeline:
//   ParamSet → deriveStream → drawInstance (structure ⇄ relations, assign) → buildDocument → csp.Marshal

package urbcsp

import (
	"fmt"

	"github.com/michal-dobrogost/csp-json/csp"
)

// Generate draws the instance described by p.
// p is validated first; nothing is drawn for an invalid ParamSet.
//
// Complexity:
//   - Positioning: O(i·c·(1+t)) draws.
//   - Drawing: O(c·(log n + t log t)).
//   - Building: O(n + d + c + k·t).
//
// Errors:
//   - ErrInvalidParams for any parameter outside its range.
//   - ErrSamplingExhausted if a sampler overruns its space (a defect).
func Generate(p ParamSet, opts ...Option) (*csp.Document, error) {
	cfg := newGenConfig(opts...)

	if err := p.Validate(); err != nil {
		cfg.logger.Warn("urbcsp.invalid_params", "error", err)
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}

	src := deriveStream(p)
	start := src.Drawn()
	cfg.logger.Debug("urbcsp.stream", "seed", p.S, "instance", p.I, "offset", start)

	s, err := drawInstance(p, src)
	if err != nil {
		cfg.logger.Error("urbcsp.sampling_failed", "id", p.ID(), "error", err)
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}

	doc, err := buildDocument(p, s)
	if err != nil {
		cfg.logger.Error("urbcsp.build_failed", "id", p.ID(), "error", err)
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}

	cfg.logger.Debug("urbcsp.generate",
		"id", p.ID(),
		"draws", src.Drawn()-start,
		"constraints", len(doc.Constraints),
		"relations", len(doc.ConstraintDefs),
	)
	return doc, nil
}

// Render generates the instance for p and returns its canonical CSP-JSON text.
// The full text is produced before it is returned, so callers can write it
// in one piece.
func Render(p ParamSet, opts ...Option) ([]byte, error) {
	doc, err := Generate(p, opts...)
	if err != nil {
		return nil, err
	}
	out, err := csp.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}
	return out, nil
}
