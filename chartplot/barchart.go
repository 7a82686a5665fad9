// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"maycharts/chartdata"
	"maycharts/chartval"
	"maycharts/config"
	"maycharts/widgets"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/x/stroke"
)

// BarChart draws grouped bars, vertical or horizontal depending on the orientation.
type BarChart struct {
	Chart
	Data *chartdata.BarData

	highlight    chartval.Highlight
	hasHighlight bool
	segments     [][]stroke.Segment
	gridSegments []stroke.Segment
}

func NewBarChart(o Orientation, data *chartdata.BarData, theme *widgets.ChartTheme) *BarChart {
	c := &BarChart{
		Chart: newChart(o, theme),
		Data:  data,
	}
	c.LeftAxis.StartAtZero = true
	c.RightAxis.StartAtZero = true
	return c
}

func (c *BarChart) ApplyConfig(cfg config.ChartConfig) {
	c.Chart.ApplyConfig(cfg)
	// Bars grow from zero.
	c.LeftAxis.StartAtZero = true
	c.RightAxis.StartAtZero = true
	if c.Data == nil {
		return
	}
	c.Data.SetGroupSpace(cfg.Bar.GroupSpace)
	for _, set := range c.Data.DataSets {
		set.SetBarSpace(cfg.Bar.BarSpace)
	}
}

func (c *BarChart) updateRanges() {
	var values, categories chartval.AxisRange
	var count int
	if c.Data != nil && !c.Data.IsEmpty() {
		values, _ = c.Data.YRange()
		categories = c.Data.XRange()
		count = c.Data.XValCount()
	}
	c.SetRanges(values, values, categories, count)
}

// Prepare updates ranges and matrices for the given frame without painting.
func (c *BarChart) Prepare(gtx layout.Context) {
	c.updateRanges()
	c.InitializeFrame(gtx)
}

func (c *BarChart) Layout(gtx layout.Context) layout.Dimensions {
	c.handleInput(gtx, c)
	c.Prepare(gtx)
	paintBackground(gtx, c.Theme)
	if c.Data != nil && !c.Data.IsEmpty() {
		area := contentClip(c.vp).Push(gtx.Ops)
		c.gridSegments = c.paintCategoryGrid(gtx, c.gridSegments, func(i int) float32 {
			// Grid lines are centered below the group.
			return c.Data.BarCenter(i, 0) + float32(c.Data.DataSetCount()-1)/2
		})
		c.plotBars(gtx)
		if c.hasHighlight {
			c.plotHighlight(gtx)
		}
		area.Pop()
	}
	paintAxes(gtx, c.vp, c.Theme)
	c.registerInputOps(gtx.Ops, gtx.Constraints.Max)
	return layout.Dimensions{Size: gtx.Constraints.Max}
}

// barLine returns the bar as a line along the value axis in pixels, and the
// line width. buf is reused for all bars of one pass.
func (c *BarChart) barLine(buf *[4]float32, e chartval.Entry, setIndex int, barSpace float32) (from, to f32.Point, width float32) {
	center := c.Data.BarCenter(e.XIndex, setIndex)
	halfWidth := 0.5 - barSpace/2
	p1 := c.orientation.dataPoint(center-halfWidth, 0)
	p2 := c.orientation.dataPoint(center+halfWidth, e.Value)
	buf[0], buf[1], buf[2], buf[3] = p1.X, p1.Y, p2.X, p2.Y
	c.leftTransformer.TransformPointArray(buf[:])

	left, base, right, top := buf[0], buf[1], buf[2], buf[3]
	if c.orientation == Horizontal {
		left, base, right, top = buf[1], buf[0], buf[3], buf[2]
	}
	if math.Round(float64(base)) == math.Round(float64(top)) {
		top-- // Stroke does not draw zero length lines.
	}
	middle := (left + right) / 2
	width = abs(right - left)
	if c.orientation == Horizontal {
		return f32.Pt(base, middle), f32.Pt(top, middle), width
	}
	return f32.Pt(middle, base), f32.Pt(middle, top), width
}

func (c *BarChart) resetSegments(numColors int) {
	numColors = max(numColors, 1)
	for len(c.segments) < numColors {
		c.segments = append(c.segments, nil)
	}
	for i := range c.segments {
		c.segments[i] = c.segments[i][:0]
	}
}

func (c *BarChart) plotBars(gtx layout.Context) {
	var buf [4]float32
	for j, set := range c.Data.DataSets {
		numColors := max(len(set.Colors()), 1)
		c.resetSegments(numColors)
		var width float32
		for i, e := range set.Entries {
			from, to, w := c.barLine(&buf, e, j, set.BarSpace())
			width = w
			if !c.isVisible(from, to, w) {
				continue
			}
			c.segments[i%numColors] = append(c.segments[i%numColors], stroke.MoveTo(from), stroke.LineTo(to))
		}
		// All bars of one data set have the same width.
		for i := 0; i < numColors; i++ {
			strokeSegments(gtx, c.segments[i], max(width, 1), stroke.FlatCap, set.Color(i))
		}
	}
}

// Skip bars which are completely outside of the content area.
func (c *BarChart) isVisible(from, to f32.Point, width float32) bool {
	if c.orientation == Horizontal {
		return c.vp.IsInBoundsTop(from.Y+width/2) && c.vp.IsInBoundsBottom(from.Y-width/2)
	}
	return c.vp.IsInBoundsLeft(from.X+width/2) && c.vp.IsInBoundsRight(from.X-width/2)
}

func (c *BarChart) plotHighlight(gtx layout.Context) {
	h := c.highlight
	if h.DataSetIndex >= len(c.Data.DataSets) {
		return
	}
	set := c.Data.DataSets[h.DataSetIndex]
	for _, e := range set.Entries {
		if e.XIndex != h.XIndex {
			continue
		}
		var buf [4]float32
		from, to, width := c.barLine(&buf, e, h.DataSetIndex, set.BarSpace())
		_, col := highlightStyle(gtx, c.Theme)
		col.A = 120
		c.gridSegments = append(c.gridSegments[:0], stroke.MoveTo(from), stroke.LineTo(to))
		strokeSegments(gtx, c.gridSegments, max(width, 1), stroke.FlatCap, col)
	}
}

// HighlightByTouchPoint returns the bar at the pixel position.
func (c *BarChart) HighlightByTouchPoint(x, y float32) (chartval.Highlight, bool) {
	if c.Data == nil || c.Data.IsEmpty() {
		c.logger().Println("can't select by touch, no data set")
		return chartval.Highlight{}, false
	}
	return c.highlightResolver().ResolveHighlight(
		x, y,
		c.leftTransformer,
		c.Data.DataSetCount(),
		c.Data.XValCount(),
		c.Data.GroupSpace(),
	)
}

// SetHighlight marks a bar, or removes the mark if ok is false.
func (c *BarChart) SetHighlight(h chartval.Highlight, ok bool) {
	c.highlight = h
	c.hasHighlight = ok
}
