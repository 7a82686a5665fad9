// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"maycharts/chartval"
	"maycharts/viewport"

	"gioui.org/f32"
)

// Orientation contains the rules which differ between charts with vertical
// bars (category axis at the bottom) and horizontal bars (category axis at
// the left side). It is selected once when creating a chart.
type Orientation interface {
	// valuePxMatrix maps data points to content coordinates, with the origin
	// at the bottom left of the content area.
	valuePxMatrix(contentWidth, contentHeight float32, values, categories chartval.AxisRange) f32.Affine2D
	// offsets sums up the margins needed by legend and axis labels.
	offsets(m chartval.LayoutMetrics) chartval.Margins
	// categoryPos returns the position along the category axis of a data point.
	categoryPos(p f32.Point) float32
	// dataPoint builds a data point from category and value.
	dataPoint(category, value float32) f32.Point
	// labelModulus returns the category label skip interval.
	labelModulus(vp *viewport.Handler, categoryCount int, labelWidth, labelHeight float32) int
	String() string
}

var (
	Vertical   Orientation = vertical{}
	Horizontal Orientation = horizontal{}
)

func OrientationFromString(s string) Orientation {
	if s == Horizontal.String() {
		return Horizontal
	}
	return Vertical
}

// Data points are (category, value).
type vertical struct{}

// Data points are (value, category).
type horizontal struct{}

func (vertical) String() string {
	return "vertical"
}

func (horizontal) String() string {
	return "horizontal"
}

func (vertical) valuePxMatrix(contentWidth, contentHeight float32, values, categories chartval.AxisRange) f32.Affine2D {
	return scaleToContent(contentWidth, contentHeight, categories, values)
}

func (horizontal) valuePxMatrix(contentWidth, contentHeight float32, values, categories chartval.AxisRange) f32.Affine2D {
	return scaleToContent(contentWidth, contentHeight, values, categories)
}

func scaleToContent(contentWidth, contentHeight float32, x, y chartval.AxisRange) f32.Affine2D {
	// An empty content area would not be invertible.
	contentWidth = max(contentWidth, 1)
	contentHeight = max(contentHeight, 1)
	scaleX := contentWidth / x.Delta()
	scaleY := contentHeight / y.Delta()
	// Pixel Y is increasing downwards, values are increasing upwards.
	return f32.Affine2D{}.
		Offset(f32.Pt(-x.Min, -y.Min)).
		Scale(f32.Point{}, f32.Pt(scaleX, -scaleY))
}

func legendOffsets(l chartval.LegendMetrics) (m chartval.Margins) {
	if !l.Enabled {
		return
	}
	if l.Position.IsRightOfChart() {
		m.Right += l.TextWidthMax + l.XOffset*2
	} else if l.Position.IsBelowChart() {
		m.Bottom += l.TextHeightMax * 3
	}
	return
}

func (vertical) offsets(lm chartval.LayoutMetrics) chartval.Margins {
	m := legendOffsets(lm.Legend)
	if lm.LeftAxis.Enabled {
		m.Left += lm.LeftAxis.RequiredWidth
	}
	if lm.RightAxis.Enabled {
		m.Right += lm.RightAxis.RequiredWidth
	}
	if lm.XAxis.Enabled {
		// Label height plus the same amount of spacing.
		labelHeight := lm.XAxis.LabelHeight * 2
		switch lm.XAxis.Position {
		case chartval.XAxisBottom:
			m.Bottom += labelHeight
		case chartval.XAxisTop:
			m.Top += labelHeight
		case chartval.XAxisBothSided:
			m.Bottom += labelHeight
			m.Top += labelHeight
		}
	}
	return m
}

func (horizontal) offsets(lm chartval.LayoutMetrics) chartval.Margins {
	m := legendOffsets(lm.Legend)
	// Value axes are horizontal, the left axis is drawn on top.
	if lm.LeftAxis.Enabled {
		m.Top += lm.LeftAxis.RequiredHeight
	}
	if lm.RightAxis.Enabled {
		m.Bottom += lm.RightAxis.RequiredHeight
	}
	if lm.XAxis.Enabled {
		labelWidth := lm.XAxis.LabelWidth
		switch lm.XAxis.Position {
		case chartval.XAxisBottom:
			m.Left += labelWidth
		case chartval.XAxisTop:
			m.Right += labelWidth
		case chartval.XAxisBothSided:
			m.Left += labelWidth
			m.Right += labelWidth
		}
	}
	return m
}

func (vertical) categoryPos(p f32.Point) float32 {
	return p.X
}

func (horizontal) categoryPos(p f32.Point) float32 {
	return p.Y
}

func (vertical) dataPoint(category, value float32) f32.Point {
	return f32.Pt(category, value)
}

func (horizontal) dataPoint(category, value float32) f32.Point {
	return f32.Pt(value, category)
}

func (vertical) labelModulus(vp *viewport.Handler, categoryCount int, labelWidth, labelHeight float32) int {
	return chartval.ComputeModulus(categoryCount, labelWidth, vp.ContentWidth(), vp.ScaleX())
}

func (horizontal) labelModulus(vp *viewport.Handler, categoryCount int, labelWidth, labelHeight float32) int {
	return chartval.ComputeModulus(categoryCount, labelHeight, vp.ContentHeight(), vp.ScaleY())
}
