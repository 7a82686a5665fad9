// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"image/color"
	"maycharts/chartdata"
	"maycharts/chartval"
	"maycharts/config"
	"maycharts/widgets"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/x/stroke"
)

// Segments of all candles sharing the same color.
type candleSegments struct {
	shadow     []stroke.Segment
	solid      []stroke.Segment
	solidWidth []float32
	hollow     []stroke.Segment
}

// OverlayLine is drawn on top of the candles, e.g. a moving average.
type OverlayLine struct {
	Entries []chartval.Entry
	Color   color.NRGBA
}

type CandleChart struct {
	Chart
	Data     *chartdata.CandleData
	Overlays []OverlayLine

	highlight    chartval.Highlight
	hasHighlight bool
	segments     []candleSegments
	lineSegments []stroke.Segment
	gridSegments []stroke.Segment
}

// Candle charts are always vertical.
func NewCandleChart(data *chartdata.CandleData, theme *widgets.ChartTheme) *CandleChart {
	return &CandleChart{
		Chart: newChart(Vertical, theme),
		Data:  data,
	}
}

// ApplyConfig applies the common chart settings and the candle settings to all data sets.
func (c *CandleChart) ApplyConfig(cfg config.ChartConfig) {
	c.Chart.ApplyConfig(cfg)
	if c.Data == nil {
		return
	}
	for _, set := range c.Data.DataSets {
		set.SetBodySpace(cfg.Candle.BodySpace)
		set.SetShadowWidth(cfg.Candle.ShadowWidthDp)
	}
}

func (c *CandleChart) updateRanges() {
	var values, categories chartval.AxisRange
	var count int
	if c.Data != nil && !c.Data.IsEmpty() {
		values, _ = c.Data.YRange()
		categories, _ = c.Data.XRange()
		count = c.Data.XValCount()
	}
	c.SetRanges(values, values, categories, count)
}

// Prepare updates ranges and matrices for the given frame without painting.
func (c *CandleChart) Prepare(gtx layout.Context) {
	c.updateRanges()
	c.InitializeFrame(gtx)
}

func (c *CandleChart) Layout(gtx layout.Context) layout.Dimensions {
	c.handleInput(gtx, c)
	c.Prepare(gtx)
	paintBackground(gtx, c.Theme)
	if c.Data != nil && !c.Data.IsEmpty() {
		area := contentClip(c.vp).Push(gtx.Ops)
		c.gridSegments = c.paintCategoryGrid(gtx, c.gridSegments, func(i int) float32 {
			return c.categoryRange.Min + float32(i) + 0.5
		})
		c.plotCandles(gtx)
		c.plotOverlays(gtx)
		if c.hasHighlight {
			c.plotHighlight(gtx)
		}
		area.Pop()
	}
	paintAxes(gtx, c.vp, c.Theme)
	c.registerInputOps(gtx.Ops, gtx.Constraints.Max)
	return layout.Dimensions{Size: gtx.Constraints.Max}
}

func (c *CandleChart) resetSegments(numColors int) {
	numColors = max(numColors, 1)
	for len(c.segments) < numColors {
		c.segments = append(c.segments, candleSegments{})
	}
	for i := range c.segments {
		c.segments[i].shadow = c.segments[i].shadow[:0]
		c.segments[i].solid = c.segments[i].solid[:0]
		c.segments[i].solidWidth = c.segments[i].solidWidth[:0]
		c.segments[i].hollow = c.segments[i].hollow[:0]
	}
}

func (c *CandleChart) plotCandles(gtx layout.Context) {
	// One buffer for all entries of this pass.
	var buf CandleBuffer
	t := c.leftTransformer
	for _, set := range c.Data.DataSets {
		numColors := len(set.Colors())
		c.resetSegments(numColors)
		for i, e := range set.Entries {
			g := buf.BuildCandleGeometry(t, e, set.BodySpace())
			// Skip candles which are completely outside of the content area.
			if !c.vp.IsInBoundsLeft(g.Body.Right) || !c.vp.IsInBoundsRight(g.Body.Left) {
				continue
			}
			seg := &c.segments[i%max(numColors, 1)]
			c.appendCandle(seg, g)
		}
		shadowWidth := float32(gtx.Metric.Dp(unit.Dp(set.ShadowWidth())))
		hollowWidth := float32(1)
		if c.Theme != nil {
			hollowWidth = float32(gtx.Metric.Dp(c.Theme.HollowBodyWidth))
		}
		for i := 0; i < max(numColors, 1); i++ {
			seg := &c.segments[i]
			col := set.Color(i)
			strokeSegments(gtx, seg.shadow, shadowWidth, stroke.FlatCap, col)
			strokeSegments(gtx, seg.hollow, hollowWidth, stroke.SquareCap, col)
			c.strokeSolidBodies(gtx, seg, col)
		}
	}
}

func (c *CandleChart) appendCandle(seg *candleSegments, g CandleGeometry) {
	s := g.Shadow
	if math.Round(float64(s.High)) == math.Round(float64(s.Low)) {
		s.Low++ // Stroke does not draw zero length lines.
	}
	seg.shadow = append(seg.shadow,
		stroke.MoveTo(f32.Pt(s.X, s.High)),
		stroke.LineTo(f32.Pt(s.X, s.Low)),
	)
	b := g.Body
	if g.Fill == FillSolid {
		openY, closeY := b.Open, b.Close
		if math.Round(float64(openY)) == math.Round(float64(closeY)) {
			openY++ // Minimum height of 1 pixel.
		}
		center := (b.Left + b.Right) / 2
		seg.solid = append(seg.solid,
			stroke.MoveTo(f32.Pt(center, closeY)),
			stroke.LineTo(f32.Pt(center, openY)),
		)
		seg.solidWidth = append(seg.solidWidth, b.Right-b.Left)
		return
	}
	seg.hollow = append(seg.hollow,
		stroke.MoveTo(f32.Pt(b.Left, b.Close)),
		stroke.LineTo(f32.Pt(b.Right, b.Close)),
		stroke.LineTo(f32.Pt(b.Right, b.Open)),
		stroke.LineTo(f32.Pt(b.Left, b.Open)),
		stroke.LineTo(f32.Pt(b.Left, b.Close)),
	)
}

// Solid bodies may differ in width when zooming, so each one is stroked separately.
func (c *CandleChart) strokeSolidBodies(gtx layout.Context, seg *candleSegments, col color.NRGBA) {
	for i, width := range seg.solidWidth {
		strokeSegments(gtx, seg.solid[2*i:2*i+2], max(width, 1), stroke.FlatCap, col)
	}
}

func (c *CandleChart) plotOverlays(gtx layout.Context) {
	t := c.leftTransformer
	for _, o := range c.Overlays {
		c.lineSegments = c.lineSegments[:0]
		for i, e := range o.Entries {
			// Lines connect the candle centers.
			p := t.ValueToPixel(float32(e.XIndex)+0.5, e.Value)
			if i == 0 {
				c.lineSegments = append(c.lineSegments, stroke.MoveTo(p))
			} else {
				c.lineSegments = append(c.lineSegments, stroke.LineTo(p))
			}
		}
		strokeSegments(gtx, c.lineSegments, float32(gtx.Metric.Dp(1)), stroke.RoundCap, o.Color)
	}
}

func (c *CandleChart) plotHighlight(gtx layout.Context) {
	x := c.leftTransformer.ValueToPixel(float32(c.highlight.XIndex)+0.5, 0).X
	r := c.vp.ContentRect()
	c.lineSegments = append(c.lineSegments[:0],
		stroke.MoveTo(f32.Pt(x, r.Top)),
		stroke.LineTo(f32.Pt(x, r.Bottom)),
	)
	width, col := highlightStyle(gtx, c.Theme)
	strokeSegments(gtx, c.lineSegments, width, stroke.FlatCap, col)
}

// HighlightByTouchPoint returns the candle at the pixel position. If several
// data sets contain a candle at that position, the one with the closest
// close value is selected.
func (c *CandleChart) HighlightByTouchPoint(x, y float32) (chartval.Highlight, bool) {
	if c.Data == nil || c.Data.IsEmpty() {
		c.logger().Println("can't select by touch, no data set")
		return chartval.Highlight{}, false
	}
	t := c.leftTransformer
	p := t.PixelToValue(x, y)
	if !t.CategoryRange().Contains(p.X) {
		return chartval.Highlight{}, false
	}
	categories, _ := c.Data.XRange()
	xIndex := chartval.Clamp(chartval.FloorInt(p.X), int(categories.Min), int(categories.Max)-1)

	found := false
	var h chartval.Highlight
	var bestDistance float32
	for j, set := range c.Data.DataSets {
		for _, e := range set.Entries {
			if e.XIndex != xIndex {
				continue
			}
			d := abs(e.Close - p.Y)
			if !found || d < bestDistance {
				h = chartval.Highlight{XIndex: xIndex, DataSetIndex: j}
				bestDistance = d
				found = true
			}
		}
	}
	if c.LogEnabled && found {
		c.logf("xIndex: %d, dataSet: %d", h.XIndex, h.DataSetIndex)
	}
	return h, found
}

// SetHighlight marks a candle, or removes the mark if ok is false.
func (c *CandleChart) SetHighlight(h chartval.Highlight, ok bool) {
	c.highlight = h
	c.hasHighlight = ok
}
