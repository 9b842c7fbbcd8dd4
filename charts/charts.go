// Package charts builds the ECharts figures embedded in the analytics view.
package charts

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/render"

	"github.com/complyboard/complyboard/model"
)

// Dashboard palette, shared with the page styles
const (
	colorGreen = "#10b981"
	colorAmber = "#f59e0b"
	colorRed   = "#ef4444"
	colorBlue  = "#3b82f6"
)

// GapCount is one bar of the compliance gaps chart
type GapCount struct {
	Term string
	Gaps int
}

// TermStatusCount is one column of the stacked term status chart
type TermStatusCount struct {
	Term    string
	Met     int
	Partial int
	Missing int
}

// ComplianceGapsBar builds the horizontal bar of gaps per compliance term,
// largest first
func ComplianceGapsBar(gaps []GapCount) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "100%",
			Height: "400px",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Number of Gaps"}),
	)

	// ECharts draws category axes bottom-up, reverse so the biggest gap
	// lands on top
	terms := make([]string, 0, len(gaps))
	values := make([]opts.BarData, 0, len(gaps))
	for i := len(gaps) - 1; i >= 0; i-- {
		terms = append(terms, gaps[i].Term)
		values = append(values, opts.BarData{Value: gaps[i].Gaps})
	}

	bar.SetXAxis(terms)
	bar.AddSeries("Gaps", values,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorRed}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "right"}),
	)
	bar.XYReversal()
	return bar
}

// ReviewDurationBar builds the per-contract review duration chart
func ReviewDurationBar(contracts []*model.Contract) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "100%",
			Height: "400px",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Days"}),
	)

	names := make([]string, 0, len(contracts))
	values := make([]opts.BarData, 0, len(contracts))
	for _, c := range contracts {
		names = append(names, c.Name)
		values = append(values, opts.BarData{Value: c.ReviewDurationDays})
	}

	bar.SetXAxis(names)
	bar.AddSeries("Review Duration", values,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorBlue}),
	)
	return bar
}

// TermStatusStackedBar builds the stacked met/partial/missing chart across
// compliance terms
func TermStatusStackedBar(rows []TermStatusCount) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "100%",
			Height: "450px",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Number of Terms"}),
	)

	terms := make([]string, 0, len(rows))
	met := make([]opts.BarData, 0, len(rows))
	partial := make([]opts.BarData, 0, len(rows))
	missing := make([]opts.BarData, 0, len(rows))
	for _, row := range rows {
		terms = append(terms, row.Term)
		met = append(met, opts.BarData{Value: row.Met})
		partial = append(partial, opts.BarData{Value: row.Partial})
		missing = append(missing, opts.BarData{Value: row.Missing})
	}

	bar.SetXAxis(terms)
	bar.AddSeries("Terms Met", met,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorGreen}),
		charts.WithBarChartOpts(opts.BarChart{Stack: "status"}),
	)
	bar.AddSeries("Partially Met", partial,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorAmber}),
		charts.WithBarChartOpts(opts.BarChart{Stack: "status"}),
	)
	bar.AddSeries("Terms Missing", missing,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorRed}),
		charts.WithBarChartOpts(opts.BarChart{Stack: "status"}),
	)
	return bar
}

// MatchingRateLine builds the matching rate trend over completed reviews,
// oldest first
func MatchingRateLine(contracts []*model.Contract) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "100%",
			Height: "400px",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Matching Rate (%)", Max: 100}),
	)

	dates := make([]string, 0, len(contracts))
	termRates := make([]opts.LineData, 0, len(contracts))
	pointRates := make([]opts.LineData, 0, len(contracts))
	for i := len(contracts) - 1; i >= 0; i-- {
		c := contracts[i]
		dates = append(dates, c.ReviewDate.Format("Jan 2"))
		termRates = append(termRates, opts.LineData{Value: c.TermMatchingRate})
		pointRates = append(pointRates, opts.LineData{Value: c.PointsMatchingRate})
	}

	line.SetXAxis(dates)
	line.AddSeries("Term Matching", termRates,
		charts.WithLineStyleOpts(opts.LineStyle{Color: colorGreen}),
	)
	line.AddSeries("Points Matching", pointRates,
		charts.WithLineStyleOpts(opts.LineStyle{Color: colorBlue}),
	)
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return line
}

// snippeter is satisfied by every go-echarts chart type
type snippeter interface {
	RenderSnippet() render.ChartSnippet
}

// EmbedHTML renders a chart as an embeddable fragment: the container div
// plus the init script, without a standalone page around them.
func EmbedHTML(chart snippeter) string {
	snippet := chart.RenderSnippet()
	return fmt.Sprintf("%s\n%s", snippet.Element, snippet.Script)
}
