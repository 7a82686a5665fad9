// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"image"
	"image/color"
	"maycharts/viewport"
	"maycharts/widgets"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/x/stroke"
)

func strokeSegments(gtx layout.Context, seg []stroke.Segment, lineWidth float32, lineCap stroke.StrokeCap, lineColor color.NRGBA) {
	if len(seg) == 0 || lineWidth <= 0 {
		return
	}
	var path stroke.Path
	path.Segments = seg
	paint.FillShape(
		gtx.Ops,
		lineColor,
		stroke.Stroke{Path: path, Width: lineWidth, Cap: lineCap}.Op(gtx.Ops),
	)
}

func contentRectangle(vp *viewport.Handler) image.Rectangle {
	r := vp.ContentRect()
	return image.Rect(
		int(math.Floor(float64(r.Left))),
		int(math.Floor(float64(r.Top))),
		int(math.Ceil(float64(r.Right))),
		int(math.Ceil(float64(r.Bottom))),
	)
}

// Only draw within the content area.
func contentClip(vp *viewport.Handler) clip.Rect {
	return clip.Rect(contentRectangle(vp))
}

func paintBackground(gtx layout.Context, th *widgets.ChartTheme) {
	if th == nil {
		return
	}
	paint.FillShape(gtx.Ops, th.BackgroundColor, clip.Rect{Max: gtx.Constraints.Max}.Op())
}

// paintAxes draws the left and bottom border of the content area.
func paintAxes(gtx layout.Context, vp *viewport.Handler, th *widgets.ChartTheme) {
	if th == nil {
		return
	}
	r := vp.ContentRect()
	var path stroke.Path
	path.Segments = []stroke.Segment{
		stroke.MoveTo(f32.Pt(r.Left, r.Top)),
		stroke.LineTo(f32.Pt(r.Left, r.Bottom)),
		stroke.LineTo(f32.Pt(r.Right, r.Bottom)),
	}
	area := stroke.Stroke{Path: path, Width: float32(gtx.Dp(1))}.Op(gtx.Ops)
	paint.FillShape(gtx.Ops, th.AxesColor, area)
}

// paintCategoryGrid draws one grid line per visible category label.
func (c *Chart) paintCategoryGrid(gtx layout.Context, segments []stroke.Segment, categoryPos func(i int) float32) []stroke.Segment {
	segments = segments[:0]
	if c.Theme == nil || c.categoryCount <= 0 || !c.Metrics.XAxis.Enabled {
		return segments
	}
	t := c.leftTransformer
	values := t.ValueRange()
	modulus := max(c.xModulus, 1)
	for i := 0; i < c.categoryCount; i += modulus {
		from := c.orientation.dataPoint(categoryPos(i), values.Min)
		to := c.orientation.dataPoint(categoryPos(i), values.Max)
		segments = append(segments,
			stroke.MoveTo(t.ValueToPixel(from.X, from.Y)),
			stroke.LineTo(t.ValueToPixel(to.X, to.Y)),
		)
	}
	strokeSegments(gtx, segments, float32(gtx.Dp(1)), stroke.FlatCap, c.Theme.GridColor)
	return segments
}

func highlightStyle(gtx layout.Context, th *widgets.ChartTheme) (float32, color.NRGBA) {
	if th == nil {
		return float32(gtx.Dp(2)), color.NRGBA{R: 255, G: 187, B: 115, A: 255}
	}
	return float32(gtx.Metric.Dp(max(th.HighlightLineWidth, unit.Dp(1)))), th.HighlightColor
}
