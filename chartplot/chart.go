// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"log"
	"maycharts/chartval"
	"maycharts/config"
	"maycharts/viewport"
	"maycharts/widgets"

	"gioui.org/layout"
	"gioui.org/unit"
)

// YAxis configures how the value range of one axis is derived from the data.
type YAxis struct {
	StartAtZero bool
	// Additional space as fraction of the value range.
	SpaceTop    float32
	SpaceBottom float32
}

func (a YAxis) axisRange(data chartval.AxisRange) chartval.AxisRange {
	if a.StartAtZero {
		data.Min = min(data.Min, 0)
		data.Max = max(data.Max, 0)
	}
	delta := data.Max - data.Min
	if abs(delta) < chartval.NearZero {
		// Single value, center it.
		delta = max(abs(data.Max), 1)
	}
	r := chartval.AxisRange{
		Min: data.Min - delta*a.SpaceBottom,
		Max: data.Max + delta*a.SpaceTop,
	}
	if a.StartAtZero && data.Min >= 0 {
		r.Min = 0
	}
	return r
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// Chart contains the layout state shared by all chart types: the viewport,
// the transformers of both value axes and the label metrics.
type Chart struct {
	Theme      *widgets.ChartTheme
	Metrics    chartval.LayoutMetrics
	LeftAxis   YAxis
	RightAxis  YAxis
	LogEnabled bool
	// Logger is used instead of the standard logger if set.
	Logger *log.Logger

	vp               *viewport.Handler
	orientation      Orientation
	leftTransformer  *Transformer
	rightTransformer *Transformer
	leftRange        chartval.AxisRange
	rightRange       chartval.AxisRange
	categoryRange    chartval.AxisRange
	categoryCount    int
	xModulus         int
	pointer          pointerState
}

func newChart(o Orientation, theme *widgets.ChartTheme) Chart {
	vp := viewport.NewHandler(unit.Metric{PxPerDp: 1, PxPerSp: 1})
	return Chart{
		Theme:            theme,
		Metrics:          defaultMetrics(),
		LeftAxis:         YAxis{SpaceTop: 0.1, SpaceBottom: 0.1},
		RightAxis:        YAxis{SpaceTop: 0.1, SpaceBottom: 0.1},
		vp:               vp,
		orientation:      o,
		leftTransformer:  NewTransformer(vp, o),
		rightTransformer: NewTransformer(vp, o),
		xModulus:         1,
	}
}

func defaultMetrics() chartval.LayoutMetrics {
	return chartval.LayoutMetrics{
		Legend:    chartval.LegendMetrics{Enabled: true, Position: chartval.LegendBelowChartLeft},
		LeftAxis:  chartval.ValueAxisMetrics{Enabled: true},
		RightAxis: chartval.ValueAxisMetrics{Enabled: true},
		XAxis:     chartval.CategoryAxisMetrics{Enabled: true, Position: chartval.XAxisBottom},
	}
}

func (c *Chart) Viewport() *viewport.Handler {
	return c.vp
}

func (c *Chart) Orientation() Orientation {
	return c.orientation
}

func (c *Chart) LeftTransformer() *Transformer {
	return c.leftTransformer
}

func (c *Chart) RightTransformer() *Transformer {
	return c.rightTransformer
}

// ApplyConfig copies the settings which are common to all chart types.
func (c *Chart) ApplyConfig(cfg config.ChartConfig) {
	c.LogEnabled = cfg.LogEnabled
	if cfg.LightTheme {
		c.Theme = widgets.NewLightChartTheme()
	} else {
		c.Theme = widgets.NewDarkChartTheme()
	}
	c.Metrics.Legend.Enabled = cfg.Legend.Enabled
	c.Metrics.Legend.Position = chartval.LegendPositionFromString(cfg.Legend.Position)
	c.Theme.LegendXOffset = unit.Dp(cfg.Legend.XOffsetDp)
	c.Metrics.XAxis.Enabled = cfg.XAxis.Enabled
	c.Metrics.XAxis.Position = chartval.XAxisPositionFromString(cfg.XAxis.Position)
	c.Metrics.LeftAxis.Enabled = cfg.LeftAxis.Enabled
	c.Metrics.RightAxis.Enabled = cfg.RightAxis.Enabled
	c.LeftAxis = YAxis{
		StartAtZero: cfg.LeftAxis.StartAtZero,
		SpaceTop:    cfg.LeftAxis.SpaceTop,
		SpaceBottom: cfg.LeftAxis.SpaceBottom,
	}
	c.RightAxis = YAxis{
		StartAtZero: cfg.RightAxis.StartAtZero,
		SpaceTop:    cfg.RightAxis.SpaceTop,
		SpaceBottom: cfg.RightAxis.SpaceBottom,
	}
	c.vp.SetInvertY(cfg.InvertY)
	c.vp.SetScaleLimits(1, 1, cfg.Zoom.MaxScaleX, cfg.Zoom.MaxScaleY)
}

// SetRanges sets the data ranges the transformers are built from.
// The value ranges are extended according to the axis configuration.
func (c *Chart) SetRanges(left, right, categories chartval.AxisRange, categoryCount int) {
	c.leftRange = c.LeftAxis.axisRange(left)
	c.rightRange = c.RightAxis.axisRange(right)
	c.categoryRange = categories
	c.categoryCount = categoryCount
}

// measure updates the pixel sizes of legend and axis labels from the theme.
func (c *Chart) measure(m unit.Metric) {
	if c.Theme == nil {
		return
	}
	label := c.Theme.AxisLabelSize.Px(m)
	legend := c.Theme.LegendTextSize.Px(m)
	c.Metrics.Legend.TextWidthMax = float32(legend.X)
	c.Metrics.Legend.TextHeightMax = float32(legend.Y)
	c.Metrics.Legend.XOffset = float32(m.Dp(c.Theme.LegendXOffset))
	c.Metrics.LeftAxis.RequiredWidth = float32(label.X)
	c.Metrics.LeftAxis.RequiredHeight = float32(label.Y)
	c.Metrics.RightAxis.RequiredWidth = float32(label.X)
	c.Metrics.RightAxis.RequiredHeight = float32(label.Y)
	c.Metrics.XAxis.LabelWidth = float32(label.X)
	c.Metrics.XAxis.LabelHeight = float32(label.Y)
}

// CalculateOffsets reserves the margins for legend and labels, restrains the
// viewport and rebuilds the value to pixel matrices of both axes.
func (c *Chart) CalculateOffsets() chartval.Margins {
	m := c.orientation.offsets(c.Metrics)
	c.vp.RestrainViewport(m.Left, m.Top, m.Right, m.Bottom)
	if c.LogEnabled {
		c.logf("%s", m)
		c.logf("Content: %s", c.vp.ContentRect())
	}
	c.prepareValuePxMatrix()
	c.xModulus = c.LabelModulus()
	return m
}

func (c *Chart) prepareValuePxMatrix() {
	categoryDelta := c.categoryRange.Max - c.categoryRange.Min
	c.leftTransformer.PrepareValuePxMatrix(c.leftRange.Min, c.leftRange.Max-c.leftRange.Min, categoryDelta, c.categoryRange.Min)
	c.rightTransformer.PrepareValuePxMatrix(c.rightRange.Min, c.rightRange.Max-c.rightRange.Min, categoryDelta, c.categoryRange.Min)
}

// InitializeFrame updates the chart size and all matrices for a new frame.
func (c *Chart) InitializeFrame(gtx layout.Context) {
	c.vp.SetMetric(gtx.Metric)
	c.vp.SetChartDimens(float32(gtx.Constraints.Max.X), float32(gtx.Constraints.Max.Y))
	c.measure(gtx.Metric)
	c.CalculateOffsets()
}

// LabelModulus returns the number of category labels to skip at the current zoom level.
func (c *Chart) LabelModulus() int {
	return c.orientation.labelModulus(c.vp, c.categoryCount, c.Metrics.XAxis.LabelWidth, c.Metrics.XAxis.LabelHeight)
}

// XLabelModulus returns the modulus of the last layout pass.
func (c *Chart) XLabelModulus() int {
	return c.xModulus
}

// Zoom scales by the given factors around the pixel position.
func (c *Chart) Zoom(scaleX, scaleY, x, y float32) {
	c.vp.Zoom(scaleX, scaleY, x, y)
	c.xModulus = c.LabelModulus()
}

// Translate pans by a pixel delta.
func (c *Chart) Translate(dx, dy float32) {
	c.vp.Translate(dx, dy)
}

// FitScreen resets zoom and pan.
func (c *Chart) FitScreen() {
	c.vp.FitScreen()
	c.xModulus = c.LabelModulus()
}

func (c *Chart) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}

func (c *Chart) logf(format string, v ...any) {
	c.logger().Printf(format, v...)
}

func (c *Chart) highlightResolver() HighlightResolver {
	if c.LogEnabled {
		return HighlightResolver{Logger: c.logger()}
	}
	return HighlightResolver{}
}
