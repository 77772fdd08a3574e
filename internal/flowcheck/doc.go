// Package flowcheck verifies P3 (origin-flow conservation through
// transshipment) by turning a destination's transshipment-resolved
// cargo flow into a literal max-flow problem: a super-source feeding
// each origin's demand, arcs along every flight carrying capacity equal
// to that flight's destination-bound cargo, sunk at the destination
// itself. If max flow equals total demand into the destination, every
// crate's flow is accounted for along flights that actually exist.
//
// It is used by flightplan's tests and by the validate subcommand of
// cmd/crateplan; nothing in the planning core imports it.
package flowcheck
