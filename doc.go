// Package cspjson generates uniform random binary constraint satisfaction
// problems and writes them as CSP-JSON documents.
//
// An instance is fully determined by seven integers:
//
//	n  number of variables (all share one domain {0..d-1})
//	d  domain size
//	c  number of binary constraints, each on a distinct pair of variables
//	t  nogoods per relation table
//	s  base seed
//	i  instance index within the seed's stream
//	k  number of relation tables (defaults to c)
//
// The same seven integers always produce a byte-identical document.
//
// Layout:
//
//	ran2/              portable ran2 generator (L'Ecuyer with Bays-Durham shuffle)
//	urbcsp/            parameters, samplers and the Generate / Render entry points
//	csp/               CSP-JSON document model, canonical encoder, decoder, validation
//	stats/             density, tightness, degree and constrainedness of an instance
//	cmd/cj-gen-urbcsp/ command-line front end (generate, inspect, version)
//
// Quick example:
//
//	cj-gen-urbcsp 100 10 10 10 100 99 > n100d10c10t10s100i99k10.json
//	cj-gen-urbcsp inspect n100d10c10t10s100i99k10.json
//
//	go get github.com/michal-dobrogost/csp-json/urbcsp
package cspjson
