// Package ran2 implements the Numerical Recipes "ran2" generator, the single
// pseudo-random source every urbcsp instance is drawn from.
//
// The generator is part of the output contract: documents are regression
// tested byte for byte against the reference C tool, so the stream for a
// given seed must never change. Do not substitute math/rand or any other
// source whose algorithm is not pinned.
//
//	src := ran2.New(100)
//	u := src.Float32()      // (0, 1)
//	r := src.Index(3, 4950) // [3, 4950)
package ran2
