// Package planeplan implements the plane planner (component E): it
// assigns edgestore's edges to concrete planes in an order consistent
// with the constraint store's precedence relation, inserting zero-cargo
// repositioning flights when a plane's current city has no available
// work.
package planeplan
