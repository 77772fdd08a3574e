// Package flightsvg renders a flightplan.Plan's flight graph to SVG:
// cities placed on a circle, edges drawn as arrows labeled with cargo
// counts. Grounded on dungo's pkg/export/svg.go — a bytes.Buffer +
// svg.New canvas, deterministic sorted-order drawing, an Options struct
// with sane defaults — simplified because a complete city graph has no
// natural 2D embedding to preserve (unlike a dungeon's room graph), so a
// circular layout replaces dungo's force-directed one.
package flightsvg
