// Package testutil provides testing utilities for slotvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source, random operation streams and a
// reference model of the container to check results against.
//
// # Random Operation Streams
//
//	rng := testutil.NewRNG(seed)
//	ops := rng.Ops(1000, 0.4, 8)
//
// # Reference Model
//
//	m := testutil.NewModel[int]()
//	idx := m.Insert(42)
//	v, ok := m.Get(idx)
package testutil
