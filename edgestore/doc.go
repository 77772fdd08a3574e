// Package edgestore holds the append-only multigraph of flight slots
// that edgeplan grows and planeplan later drains. An edge is a single
// (from, to) flight slot carrying a cargo vector indexed by final
// destination; edgestore only tracks capacity bookkeeping and adjacency,
// never ordering — that is constraint's job.
package edgestore
