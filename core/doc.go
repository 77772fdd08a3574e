// Package core holds the demand model shared by the rest of crateplan:
// the dense crate matrix, the City/PlaneID identifiers, Instance
// construction and validation, the trivial flight-count lower bound,
// and the Flight output type.
//
// Nothing in this package plans anything. It exists so edgeplan and
// planeplan both consume the same validated, immutable view of "what
// needs to move from where to where, and which planes exist," and so
// planeplan can emit Flight values without importing the facade
// package that assembles a full Plan.
package core
