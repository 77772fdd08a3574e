// Package edgeplan implements the edge planner (component D): it turns
// a demand matrix into a multiset of capacity-limited flight slots,
// reusing existing under-filled edges through transshipment where a
// constrained path exists, and falling back to dedicated direct edges
// otherwise.
package edgeplan
