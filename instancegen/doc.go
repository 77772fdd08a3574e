// Package instancegen generates synthetic core.Instance values for the
// CLI's generate subcommand and for property-based tests.
//
// It follows the functional-options + injected-RNG shape of
// lvlath/builder: a Config assembled from Option closures, validated the
// way RandomSparse validates n/p (sentinel errors, never a panic on bad
// user input), and a Generate that is deterministic for a fixed *rand.Rand
// and fixed options. Unlike builder, there is no core.Graph to populate —
// Generate samples a dense demand matrix and a plane-start assignment
// directly.
package instancegen
