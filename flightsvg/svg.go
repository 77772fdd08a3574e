package flightsvg

import (
	"bytes"
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/avionops/crateplan/core"
	"github.com/avionops/crateplan/flightplan"
)

// Options configures SVG rendering of a Plan's flight graph.
type Options struct {
	Width, Height int
	ShowCargo     bool
	Title         string
	Margin        int
	NodeRadius    int
}

// DefaultOptions returns sensible defaults, matching dungo's
// DefaultSVGOptions shape: a 1200x900 canvas, labels on, comfortable
// margin and node size.
func DefaultOptions() Options {
	return Options{
		Width:      1200,
		Height:     900,
		ShowCargo:  true,
		Title:      "Flight Plan",
		Margin:     60,
		NodeRadius: 22,
	}
}

type point struct{ X, Y float64 }

// Render draws instance's cities on a circle and plan's flights as
// arrows between them, returning the SVG document as bytes. Edges are
// drawn before nodes so city markers sit on top, the same ordering
// dungo's ExportSVG uses.
func Render(instance *core.Instance, plan *flightplan.Plan, opts Options) ([]byte, error) {
	if instance == nil {
		return nil, ErrNilInstance
	}
	if plan == nil {
		return nil, ErrNilPlan
	}
	if opts.Width <= 0 {
		opts.Width = 1200
	}
	if opts.Height <= 0 {
		opts.Height = 900
	}
	if opts.Margin <= 0 {
		opts.Margin = 60
	}
	if opts.NodeRadius <= 0 {
		opts.NodeRadius = 22
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#1a1a2e")

	positions := cityPositions(instance.NCities, opts)

	drawFlights(canvas, plan.Flights, positions, opts)
	drawCities(canvas, instance.NCities, positions, opts)

	if opts.Title != "" {
		canvas.Text(opts.Width/2, 30, fmt.Sprintf("%s (run %s)", opts.Title, plan.RunID),
			"text-anchor:middle;font-size:18px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
	}

	canvas.End()
	return buf.Bytes(), nil
}

// cityPositions places n cities evenly around a circle centered in the
// drawable area, the same simplification dungo's calculateLayout uses
// for "no natural embedding to preserve."
func cityPositions(n int, opts Options) []point {
	positions := make([]point, n)
	if n == 0 {
		return positions
	}
	centerX := float64(opts.Width) / 2
	centerY := float64(opts.Height) / 2
	radius := math.Min(float64(opts.Width), float64(opts.Height))/2 - float64(opts.Margin) - float64(opts.NodeRadius)
	if radius < 0 {
		radius = 0
	}
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		angle := float64(i) * step
		positions[i] = point{
			X: centerX + radius*math.Cos(angle),
			Y: centerY + radius*math.Sin(angle),
		}
	}
	return positions
}

func drawCities(canvas *svg.SVG, n int, positions []point, opts Options) {
	for c := 0; c < n; c++ {
		pos := positions[c]
		canvas.Circle(int(pos.X), int(pos.Y), opts.NodeRadius,
			"fill:#4299e1;stroke:#fff;stroke-width:2;opacity:0.9")
		canvas.Text(int(pos.X), int(pos.Y)+4, fmt.Sprintf("%d", c),
			"text-anchor:middle;font-size:12px;font-weight:bold;fill:#0b1120")
	}
}

// drawFlights draws one arrow per flight, in the plan's flight order
// for deterministic output, distinguishing repositioning flights (dashed,
// gray) from cargo flights (solid, colored by plane).
func drawFlights(canvas *svg.SVG, flights []core.Flight, positions []point, opts Options) {
	for i, f := range flights {
		from, to := positions[f.From], positions[f.To]
		style := flightStyle(f)
		canvas.Line(int(from.X), int(from.Y), int(to.X), int(to.Y), style)
		drawArrowhead(canvas, from, to, flightColor(f))

		if opts.ShowCargo && !f.IsRepositioning() {
			midX, midY := (from.X+to.X)/2, (from.Y+to.Y)/2
			canvas.Text(int(midX), int(midY)-6, fmt.Sprintf("#%d:%d", i, sumCargo(f.Cargo)),
				"text-anchor:middle;font-size:10px;fill:#cbd5e0;font-family:monospace")
		}
	}
}

func sumCargo(cargo []int64) int64 {
	var total int64
	for _, v := range cargo {
		total += v
	}
	return total
}

func flightColor(f core.Flight) string {
	if f.IsRepositioning() {
		return "#718096"
	}
	palette := []string{"#48bb78", "#ed8936", "#9f7aea", "#f56565", "#4299e1", "#ecc94b"}
	return palette[int(f.Plane)%len(palette)]
}

func flightStyle(f core.Flight) string {
	color := flightColor(f)
	if f.IsRepositioning() {
		return fmt.Sprintf("stroke:%s;stroke-width:1;stroke-dasharray:4,4;opacity:0.6", color)
	}
	return fmt.Sprintf("stroke:%s;stroke-width:2;opacity:0.85", color)
}

func drawArrowhead(canvas *svg.SVG, from, to point, color string) {
	dx, dy := to.X-from.X, to.Y-from.Y
	angle := math.Atan2(dy, dx)
	const size = 9.0
	tip := point{X: to.X - 24*math.Cos(angle), Y: to.Y - 24*math.Sin(angle)}
	left := point{X: tip.X - size*math.Cos(angle-0.4), Y: tip.Y - size*math.Sin(angle-0.4)}
	right := point{X: tip.X - size*math.Cos(angle+0.4), Y: tip.Y - size*math.Sin(angle+0.4)}
	xs := []int{int(tip.X), int(left.X), int(right.X)}
	ys := []int{int(tip.Y), int(left.Y), int(right.Y)}
	canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s", color))
}

