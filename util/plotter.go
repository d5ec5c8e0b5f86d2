package util

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"weather-dash/models/chart"
)

const CHART_WIDTH = "900px"
const CHART_HEIGHT = "500px"

// SHADE_COLORS is the low-to-high palette of the colour dimension.
var SHADE_COLORS = []string{"#0d0887", "#7e03a8", "#cc4778", "#f89540", "#f0f921"}

// Plottable is a go-echarts chart that can be written as a standalone page.
type Plottable interface {
	components.Charter
	Render(w io.Writer) error
}

// PlotDescription converts a ChartDescription into the matching go-echarts chart.
func PlotDescription(desc chart.Description, chartID string) (Plottable, error) {
	switch desc.Kind {
	case chart.KindScatter:
		return plotScatter(desc, chartID), nil
	case chart.KindBox:
		return plotBox(desc, chartID), nil
	case chart.KindLine:
		return plotLine(desc, chartID), nil
	case chart.KindPolar:
		return plotWindRose(desc, chartID), nil
	default:
		return nil, fmt.Errorf("unsupported chart kind %q", desc.Kind)
	}
}

// RenderDescription writes desc as a self-contained HTML page.
func RenderDescription(w io.Writer, desc chart.Description, chartID string) error {
	c, err := PlotDescription(desc, chartID)
	if err != nil {
		return err
	}
	if err := c.Render(w); err != nil {
		return fmt.Errorf("failed to render chart %s: %w", chartID, err)
	}
	return nil
}

// RenderPage writes several descriptions into one flex-layout page.
func RenderPage(w io.Writer, descs map[string]chart.Description, order []string) error {
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	for _, id := range order {
		c, err := PlotDescription(descs[id], id)
		if err != nil {
			return err
		}
		page.AddCharts(c)
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// EChartsID turns a region id into a chart id usable as a JavaScript identifier.
func EChartsID(id string) string {
	return strings.ReplaceAll(id, "-", "_")
}

func commonOptions(desc chart.Description, chartID string) []charts.GlobalOpts {
	xAxis := opts.XAxis{Name: desc.XAxis.Name, Type: desc.XAxis.Type}
	if desc.XAxis.Min != nil {
		xAxis.Min = *desc.XAxis.Min
	}
	if desc.XAxis.Max != nil {
		xAxis.Max = *desc.XAxis.Max
	}
	yAxis := opts.YAxis{Name: desc.YAxis.Name, Type: desc.YAxis.Type}
	if desc.YAxis.Min != nil {
		yAxis.Min = *desc.YAxis.Min
	}
	if desc.YAxis.Max != nil {
		yAxis.Max = *desc.YAxis.Max
	}

	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: desc.Title,
			ChartID:   EChartsID(chartID),
			Width:     CHART_WIDTH,
			Height:    CHART_HEIGHT,
		}),
		charts.WithTitleOpts(opts.Title{Title: desc.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(xAxis),
		charts.WithYAxisOpts(yAxis),
	}
}

// finite reports whether v can be encoded into the chart options.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func plotScatter(desc chart.Description, chartID string) *charts.Scatter {
	scatter := charts.NewScatter()
	global := commonOptions(desc, chartID)
	if desc.ShadeLabel != "" {
		global = append(global, charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Dimension:  "2",
			Min:        float32(desc.ShadeMin),
			Max:        float32(desc.ShadeMax),
			Text:       []string{desc.ShadeLabel},
			InRange:    &opts.VisualMapInRange{Color: SHADE_COLORS},
		}))
	}
	scatter.SetGlobalOptions(global...)

	for _, s := range desc.Series {
		data := make([]opts.ScatterData, 0, len(s.Points))
		for _, p := range s.Points {
			// points without coordinates stay in the description but cannot be drawn
			if !finite(p.X) || !finite(p.Y) {
				continue
			}
			var shade interface{} = p.Shade
			if !finite(p.Shade) {
				shade = "-"
			}
			data = append(data, opts.ScatterData{Name: p.Label, Value: []interface{}{p.X, p.Y, shade}})
		}
		scatter.AddSeries(s.Name, data)
	}
	return scatter
}

func plotBox(desc chart.Description, chartID string) *charts.BoxPlot {
	box := charts.NewBoxPlot()
	box.SetGlobalOptions(commonOptions(desc, chartID)...)
	box.SetXAxis(desc.Categories)

	name := desc.YAxis.Name
	if len(desc.Categories) > 0 {
		name = desc.Categories[0]
	}

	data := []opts.BoxPlotData{}
	if desc.Box != nil && !desc.Box.Empty() {
		b := desc.Box
		data = append(data, opts.BoxPlotData{
			Name:  name,
			Value: []float64{b.LowerWhisker, b.Q1, b.Median, b.Q3, b.UpperWhisker},
		})
	}
	box.AddSeries(name, data)

	if desc.Box != nil && len(desc.Box.Outliers) > 0 {
		outliers := charts.NewScatter()
		points := make([]opts.ScatterData, 0, len(desc.Box.Outliers))
		for _, v := range desc.Box.Outliers {
			points = append(points, opts.ScatterData{Value: []interface{}{name, v}})
		}
		outliers.AddSeries("outliers", points)
		box.Overlap(outliers)
	}
	return box
}

func plotLine(desc chart.Description, chartID string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(append(commonOptions(desc, chartID),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
	)...)

	for _, s := range desc.Series {
		data := make([]opts.LineData, 0, len(s.Points))
		for _, p := range s.Points {
			var y interface{} = p.Y
			if !finite(p.Y) {
				y = "-"
			}
			x := time.UnixMilli(int64(p.X)).UTC().Format("2006-01-02 15:04:05")
			data = append(data, opts.LineData{Value: []interface{}{x, y}})
		}
		line.AddSeries(s.Name, data)
	}
	return line
}

// plotWindRose draws the compass-sector series as bars over the sector labels.
func plotWindRose(desc chart.Description, chartID string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(append(commonOptions(desc, chartID),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
	)...)
	bar.SetXAxis(desc.Categories)

	for _, s := range desc.Series {
		data := make([]opts.BarData, 0, len(s.Points))
		for _, p := range s.Points {
			var y interface{} = p.Y
			if !finite(p.Y) {
				y = "-"
			}
			data = append(data, opts.BarData{Name: p.Label, Value: y})
		}
		bar.AddSeries(s.Name, data)
	}
	return bar
}
