package layout

import (
	"math"
	"math/rand/v2"

	"github.com/edgeviz/edgeviz/pkg/geom"
	"github.com/edgeviz/edgeviz/pkg/graph"
)

// circular places nodes evenly on a circle of radius Scale, in sorted ID
// order starting at angle zero. A single node sits at the center.
func circular(g *graph.Graph, opts Options) *Layout {
	ids := g.NodeIDs()
	pos := make(map[string]geom.Point, len(ids))
	if len(ids) == 1 {
		pos[ids[0]] = opts.Center
		return &Layout{Positions: pos}
	}
	for i, id := range ids {
		angle := 2 * math.Pi * float64(i) / float64(len(ids))
		pos[id] = geom.Point{
			X: opts.Center.X + opts.Scale*math.Cos(angle),
			Y: opts.Center.Y + opts.Scale*math.Sin(angle),
		}
	}
	return &Layout{Positions: pos}
}

// grid places nodes row-major on a near-square grid spanning the layout
// area, in sorted ID order.
func grid(g *graph.Graph, opts Options) *Layout {
	ids := g.NodeIDs()
	pos := make(map[string]geom.Point, len(ids))
	if len(ids) == 0 {
		return &Layout{Positions: pos}
	}

	cols := int(math.Ceil(math.Sqrt(float64(len(ids)))))
	rows := (len(ids) + cols - 1) / cols
	stepX := 2 * opts.Scale / float64(max(cols-1, 1))
	stepY := 2 * opts.Scale / float64(max(rows-1, 1))

	for i, id := range ids {
		col := i % cols
		row := i / cols
		x := opts.Center.X - opts.Scale + float64(col)*stepX
		y := opts.Center.Y + opts.Scale - float64(row)*stepY
		if cols == 1 {
			x = opts.Center.X
		}
		if rows == 1 {
			y = opts.Center.Y
		}
		pos[id] = geom.Point{X: x, Y: y}
	}
	return &Layout{Positions: pos}
}

// random scatters nodes uniformly over the layout area. The same seed
// always produces the same scatter.
func random(g *graph.Graph, opts Options) *Layout {
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xdeadbeef))
	ids := g.NodeIDs()
	pos := make(map[string]geom.Point, len(ids))
	for _, id := range ids {
		pos[id] = geom.Point{
			X: opts.Center.X + (2*rng.Float64()-1)*opts.Scale,
			Y: opts.Center.Y + (2*rng.Float64()-1)*opts.Scale,
		}
	}
	return &Layout{Positions: pos}
}

// spring runs Fruchterman-Reingold force relaxation: all node pairs repel
// with k²/d, edge endpoints attract with d²/k, and a linearly cooling
// temperature caps per-iteration movement. O(iterations × n²), fine for
// the graph sizes this module plots.
func spring(g *graph.Graph, opts Options) *Layout {
	ids := g.NodeIDs()
	n := len(ids)
	if n == 0 {
		return &Layout{Positions: map[string]geom.Point{}}
	}
	if n == 1 {
		return &Layout{Positions: map[string]geom.Point{ids[0]: opts.Center}}
	}

	k := opts.K
	if k <= 0 {
		k = 2 * opts.Scale / math.Sqrt(float64(n))
	}

	// Deterministic random start; relaxation itself has no randomness.
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xdeadbeef))
	px := make([]float64, n)
	py := make([]float64, n)
	for i := range ids {
		px[i] = (2*rng.Float64() - 1) * opts.Scale
		py[i] = (2*rng.Float64() - 1) * opts.Scale
	}

	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}
	type pair struct{ a, b int }
	var springs []pair
	for _, e := range g.Edges() {
		a, b := index[e.From], index[e.To]
		if a == b {
			continue
		}
		springs = append(springs, pair{a, b})
	}

	temp := opts.Scale / 5
	cool := temp / float64(opts.Iterations+1)
	dx := make([]float64, n)
	dy := make([]float64, n)

	for iter := 0; iter < opts.Iterations; iter++ {
		for i := range dx {
			dx[i], dy[i] = 0, 0
		}

		// Repulsion between every pair.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				ddx := px[i] - px[j]
				ddy := py[i] - py[j]
				dist := math.Hypot(ddx, ddy)
				if dist < 0.01 {
					// Coincident nodes get nudged apart along x.
					ddx, ddy, dist = 0.01, 0, 0.01
				}
				force := k * k / dist
				ux, uy := ddx/dist, ddy/dist
				dx[i] += ux * force
				dy[i] += uy * force
				dx[j] -= ux * force
				dy[j] -= uy * force
			}
		}

		// Attraction along edges.
		for _, s := range springs {
			ddx := px[s.a] - px[s.b]
			ddy := py[s.a] - py[s.b]
			dist := math.Hypot(ddx, ddy)
			if dist < 0.01 {
				continue
			}
			force := dist * dist / k
			ux, uy := ddx/dist, ddy/dist
			dx[s.a] -= ux * force
			dy[s.a] -= uy * force
			dx[s.b] += ux * force
			dy[s.b] += uy * force
		}

		// Move, capped by the current temperature.
		for i := 0; i < n; i++ {
			disp := math.Hypot(dx[i], dy[i])
			if disp == 0 {
				continue
			}
			step := math.Min(disp, temp)
			px[i] += dx[i] / disp * step
			py[i] += dy[i] / disp * step
		}
		temp -= cool
	}

	rescale(px, py, opts)

	pos := make(map[string]geom.Point, n)
	for i, id := range ids {
		pos[id] = geom.Point{X: px[i], Y: py[i]}
	}
	return &Layout{Positions: pos}
}

// rescale centers positions on Options.Center and scales them uniformly
// so the larger axis spans [-Scale, +Scale].
func rescale(px, py []float64, opts Options) {
	var cx, cy float64
	for i := range px {
		cx += px[i]
		cy += py[i]
	}
	cx /= float64(len(px))
	cy /= float64(len(py))

	var maxAbs float64
	for i := range px {
		px[i] -= cx
		py[i] -= cy
		maxAbs = max(maxAbs, math.Abs(px[i]), math.Abs(py[i]))
	}
	if maxAbs == 0 {
		maxAbs = 1
	}
	for i := range px {
		px[i] = px[i]/maxAbs*opts.Scale + opts.Center.X
		py[i] = py[i]/maxAbs*opts.Scale + opts.Center.Y
	}
}
