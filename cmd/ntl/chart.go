package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func toLineItems(vals []float64) []opts.LineData {
	out := make([]opts.LineData, len(vals))
	for i, v := range vals {
		out[i] = opts.LineData{Value: v}
	}
	return out
}

// renderChart writes an HTML page plotting the timing of each run of res.
func (res *benchResult) renderChart(w io.Writer) error {

	title := fmt.Sprintf("%s, workers=%d", res.Params, res.Workers)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "time per run (us)"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	xLabels := make([]string, len(res.NTT))
	for i := range xLabels {
		xLabels[i] = strconv.Itoa(i)
	}

	line.SetXAxis(xLabels).
		AddSeries("NTT", toLineItems(res.NTT)).
		AddSeries("INTT", toLineItems(res.INTT))

	if len(res.MulPoly) != 0 {
		line.AddSeries("MulPoly", toLineItems(res.MulPoly))
	}

	page := components.NewPage().SetPageTitle(title)
	page.AddCharts(line)

	return page.Render(w)
}
