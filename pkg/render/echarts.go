package render

import (
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	chartsopts "github.com/go-echarts/go-echarts/v2/opts"

	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/graph"
	"github.com/edgeviz/edgeviz/pkg/layout"
)

// Chart surface the fixed-position mode maps layouts onto, in ECharts
// canvas pixels (y grows downward).
const (
	chartWidth  = 800.0
	chartHeight = 600.0
	chartMargin = 40.0
)

// EChartsHTML writes a standalone interactive HTML page showing the graph.
// With a layout the nodes are fixed at their computed positions, scaled
// into the chart surface; without one the page runs a force simulation.
// Directed graphs get arrow symbols on the target end of each edge.
func EChartsHTML(w io.Writer, g *graph.Graph, l *layout.Layout, opts Options) error {
	if g == nil {
		return errors.New(errors.ErrCodeInvalidGraph, "no graph provided")
	}
	nodeColor, edgeColor, err := opts.colors()
	if err != nil {
		return err
	}
	nodes, err := chartNodes(g, l)
	if err != nil {
		return err
	}

	links := make([]chartsopts.GraphLink, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		links = append(links, chartsopts.GraphLink{Source: e.From, Target: e.To})
	}

	title := opts.Title
	if title == "" {
		title = "edgeviz"
	}

	chart := charts.NewGraph()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(chartsopts.Initialization{
			PageTitle: title,
			Width:     "100vw",
			Height:    "100vh",
		}),
		charts.WithTitleOpts(chartsopts.Title{Title: title}),
		charts.WithLegendOpts(chartsopts.Legend{Show: chartsopts.Bool(false)}),
		charts.WithTooltipOpts(chartsopts.Tooltip{Show: chartsopts.Bool(true)}),
	)

	series := chartsopts.GraphChart{
		Roam:      chartsopts.Bool(true),
		Draggable: chartsopts.Bool(true),
	}
	if l == nil {
		series.Layout = "force"
		series.Force = &chartsopts.GraphForce{Repulsion: 400}
	} else {
		series.Layout = "none"
	}
	if g.Directed() {
		series.EdgeSymbol = []string{"none", "arrow"}
		series.EdgeSymbolSize = 8
	}

	chart.AddSeries("graph", nodes, links,
		charts.WithGraphChartOpts(series),
		charts.WithLabelOpts(chartsopts.Label{
			Show:     chartsopts.Bool(opts.Labels),
			Color:    "black",
			Position: "top",
		}),
		charts.WithItemStyleOpts(chartsopts.ItemStyle{Color: nodeColor.Hex()}),
		charts.WithLineStyleOpts(chartsopts.LineStyle{Color: edgeColor.Hex()}),
	)

	page := components.NewPage()
	page.AddCharts(chart)
	return page.Render(w)
}

// chartNodes builds the node list, mapping layout positions into chart
// pixels with a uniform, centered, y-flipped scale when a layout is
// supplied.
func chartNodes(g *graph.Graph, l *layout.Layout) ([]chartsopts.GraphNode, error) {
	ns := g.Nodes()
	nodes := make([]chartsopts.GraphNode, 0, len(ns))
	if l == nil {
		for _, n := range ns {
			nodes = append(nodes, chartsopts.GraphNode{Name: n.ID, SymbolSize: 20})
		}
		return nodes, nil
	}

	min, max, ok := l.Bounds()
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "layout has no positions")
	}
	if max.X-min.X <= 0 {
		min.X -= 0.5
		max.X += 0.5
	}
	if max.Y-min.Y <= 0 {
		min.Y -= 0.5
		max.Y += 0.5
	}
	innerW := chartWidth - 2*chartMargin
	innerH := chartHeight - 2*chartMargin
	scale := math.Min(innerW/(max.X-min.X), innerH/(max.Y-min.Y))
	offX := chartMargin + (innerW-(max.X-min.X)*scale)/2
	offY := chartMargin + (innerH-(max.Y-min.Y)*scale)/2

	for _, n := range ns {
		p, ok := l.Positions[n.ID]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "no position for node %q", n.ID)
		}
		nodes = append(nodes, chartsopts.GraphNode{
			Name:       n.ID,
			X:          float32(offX + (p.X-min.X)*scale),
			Y:          float32(offY + (max.Y-p.Y)*scale),
			Fixed:      true,
			SymbolSize: 20,
		})
	}
	return nodes, nil
}
