// SPDX-License-Identifier: MIT
// Package: csp-json/ran2
//
// ran2.go - the pinned pseudo-random generator behind every generated instance.
//
// Algorithm (frozen, Numerical Recipes in C, 2nd ed., §7.1 "ran2"):
//   - Two multiplicative congruential generators combined by subtraction
//     (L'Ecuyer), moduli im1=2147483563 and im2=2147483399, evaluated with
//     Schrage's method so every intermediate fits in int32.
//   - Bays–Durham shuffle over a table of ntab=32 entries.
//   - Output is the combined state scaled by 1/im1 and rounded to float32,
//     capped at rnmx = 1-1.2e-7 so 1.0 is never returned.
//
// Contract:
//   - Bit-identical streams on every platform for the same seed. Only int32
//     arithmetic and a single float64→float32 rounding are involved.
//   - The sign of the seed is ignored; seed 0 and math.MinInt32 both start
//     the stream that seed 1 starts.
//
// Concurrency:
//   - A Source is NOT goroutine-safe. Derive one per generation run.

package ran2

const (
	im1  int32 = 2147483563
	im2  int32 = 2147483399
	imm1 int32 = im1 - 1
	ia1  int32 = 40014
	ia2  int32 = 40692
	iq1  int32 = 53668
	iq2  int32 = 52774
	ir1  int32 = 12211
	ir2  int32 = 3791
	ntab       = 32
	ndiv int32 = 1 + imm1/ntab

	am   = 1.0 / float64(im1)
	eps  = 1.2e-7
	rnmx = 1.0 - eps

	// warmup is the number of discarded steps before the shuffle table is
	// loaded (ntab+8 iterations, the first 8 are thrown away).
	warmup = ntab + 7
)

// Source is the state of one ran2 stream.
type Source struct {
	idum  int32
	idum2 int32
	iy    int32
	iv    [ntab]int32
	drawn int64
}

// New returns a Source positioned at the start of the stream for seed.
// Complexity: O(ntab).
func New(seed int32) *Source {
	s := &Source{}
	s.reset(seed)
	return s
}

// reset loads the shuffle table for seed. Negative and positive seeds of the
// same magnitude produce the same stream.
func (s *Source) reset(seed int32) {
	idum := seed
	if idum > 0 {
		idum = -idum
	}
	// -MinInt32 wraps back to MinInt32, which lands in the "< 1" branch.
	if -idum < 1 {
		idum = 1
	} else {
		idum = -idum
	}

	s.idum2 = idum
	for j := warmup; j >= 0; j-- {
		idum = step(idum, ia1, iq1, ir1, im1)
		if j < ntab {
			s.iv[j] = idum
		}
	}
	s.idum = idum
	s.iy = s.iv[0]
	s.drawn = 0
}

// step advances one multiplicative congruential generator using Schrage's
// factorisation m = a*q + r, which keeps a*(x mod q) within int32.
func step(x, a, q, r, m int32) int32 {
	k := x / q
	x = a*(x-k*q) - k*r
	if x < 0 {
		x += m
	}
	return x
}

// Float32 returns the next value in (0, 1).
// Complexity: O(1).
func (s *Source) Float32() float32 {
	s.idum = step(s.idum, ia1, iq1, ir1, im1)
	s.idum2 = step(s.idum2, ia2, iq2, ir2, im2)

	j := s.iy / ndiv
	s.iy = s.iv[j] - s.idum2
	s.iv[j] = s.idum
	if s.iy < 1 {
		s.iy += imm1
	}
	s.drawn++

	temp := float32(am * float64(s.iy))
	if float64(temp) > rnmx {
		return float32(rnmx)
	}
	return temp
}

// Index returns lo + floor(u*(hi-lo)) for the next draw u, evaluated in
// float32 so streams match published instances. The result lies in
// [lo, hi) for hi > lo.
// Complexity: O(1).
func (s *Source) Index(lo, hi int) int {
	span := hi - lo
	r := lo + int(s.Float32()*float32(span))
	// float32(span) rounds up once span exceeds 2^24; keep the draw in range.
	if r >= hi {
		r = hi - 1
	}
	return r
}

// Skip discards n draws. Negative n is a no-op.
// Complexity: O(n).
func (s *Source) Skip(n int64) {
	for ; n > 0; n-- {
		s.Float32()
	}
}

// Drawn reports how many values have been drawn since the stream started,
// skipped ones included.
func (s *Source) Drawn() int64 {
	return s.drawn
}
