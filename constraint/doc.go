// Package constraint maintains the transitively-closed, acyclic
// precedence relation over edge indices: "edge a must be executed
// before edge b". edgeplan grows the relation as it commits
// transshipment paths; planeplan only ever reads it.
package constraint
