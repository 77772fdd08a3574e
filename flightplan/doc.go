// Package flightplan is the thin orchestration facade: it wires the
// demand model (core), the edge planner (edgeplan), and the plane
// planner (planeplan) into a single Run call, in the style of
// lvlath/core's api.go — no planning algorithm lives here, only
// construction and sequencing of the pieces that do.
package flightplan
