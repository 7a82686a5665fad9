// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"maycharts/chartval"
	"maycharts/viewport"

	"gioui.org/f32"
)

// Transformer maps data points of one value axis (left or right) and the
// category axis to view pixels and back.
// Mapping order is: value to pixel matrix, touch matrix, offset matrix.
type Transformer struct {
	vp              *viewport.Handler
	orientation     Orientation
	matrixValueToPx f32.Affine2D
	values          chartval.AxisRange
	categories      chartval.AxisRange
}

func NewTransformer(vp *viewport.Handler, o Orientation) *Transformer {
	return &Transformer{vp: vp, orientation: o}
}

// PrepareValuePxMatrix needs to be called whenever the content area or one of
// the axis ranges changes. Ranges of zero or negative size are treated as 1.
func (t *Transformer) PrepareValuePxMatrix(axisMinimum, axisRange, categoryDelta, categoryMin float32) {
	if !(axisRange > 0) {
		axisRange = 1
	}
	if !(categoryDelta > 0) {
		categoryDelta = 1
	}
	t.values = chartval.AxisRange{Min: axisMinimum, Max: axisMinimum + axisRange}
	t.categories = chartval.AxisRange{Min: categoryMin, Max: categoryMin + categoryDelta}
	t.matrixValueToPx = t.orientation.valuePxMatrix(t.vp.ContentWidth(), t.vp.ContentHeight(), t.values, t.categories)
}

// ValueRange returns the value axis range of the last prepared matrix.
func (t *Transformer) ValueRange() chartval.AxisRange {
	return t.values
}

// CategoryRange returns the category axis range of the last prepared matrix.
func (t *Transformer) CategoryRange() chartval.AxisRange {
	return t.categories
}

func (t *Transformer) Orientation() Orientation {
	return t.orientation
}

// TransformPointArray transforms interleaved x/y data values to pixels in place.
// A trailing odd element is left untouched.
func (t *Transformer) TransformPointArray(pts []float32) {
	touch := t.vp.MatrixTouch()
	offset := t.vp.MatrixOffset()
	for i := 0; i+1 < len(pts); i += 2 {
		p := f32.Pt(pts[i], pts[i+1])
		p = t.matrixValueToPx.Transform(p)
		p = touch.Transform(p)
		p = offset.Transform(p)
		pts[i], pts[i+1] = p.X, p.Y
	}
}

// PixelsToValue transforms interleaved x/y pixel positions to data values in place.
func (t *Transformer) PixelsToValue(pts []float32) {
	offsetInv := t.vp.MatrixOffset().Invert()
	touchInv := t.vp.MatrixTouch().Invert()
	valueInv := t.matrixValueToPx.Invert()
	for i := 0; i+1 < len(pts); i += 2 {
		p := f32.Pt(pts[i], pts[i+1])
		p = offsetInv.Transform(p)
		p = touchInv.Transform(p)
		p = valueInv.Transform(p)
		pts[i], pts[i+1] = p.X, p.Y
	}
}

// ValueToPixel transforms a single data point.
func (t *Transformer) ValueToPixel(x, y float32) f32.Point {
	pts := [2]float32{x, y}
	t.TransformPointArray(pts[:])
	return f32.Pt(pts[0], pts[1])
}

// PixelToValue transforms a single pixel position.
func (t *Transformer) PixelToValue(x, y float32) f32.Point {
	pts := [2]float32{x, y}
	t.PixelsToValue(pts[:])
	return f32.Pt(pts[0], pts[1])
}
