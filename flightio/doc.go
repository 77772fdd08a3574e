// Package flightio implements the JSON on-disk encoding of Instance and
// Plan values for cmd/crateplan. spec.md §6 is explicit that this
// encoding "is not part of the core" — flightio exists precisely so
// core, flightplan, and their siblings never import encoding/json for
// anything but this boundary layer.
package flightio
