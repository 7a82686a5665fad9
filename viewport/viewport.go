// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package viewport

import (
	"maycharts/chartval"

	"gioui.org/f32"
	"gioui.org/unit"
)

// MinOffset is the smallest margin kept on each side of the content area.
const MinOffset unit.Dp = 10

// Handler owns the drawable content area of one chart, the pan/zoom ("touch")
// matrix and the matrix translating content coordinates to view pixels.
// It is not safe for concurrent use.
type Handler struct {
	metric      unit.Metric
	chartWidth  float32
	chartHeight float32
	contentRect chartval.Rect
	invertY     bool
	// Applied after the value to pixel matrix, before the offset matrix.
	// The origin of its coordinate system is the bottom left of the content area.
	matrixTouch  f32.Affine2D
	matrixOffset f32.Affine2D
	minScaleX    float32
	minScaleY    float32
	maxScaleX    float32
	maxScaleY    float32
}

func NewHandler(m unit.Metric) *Handler {
	return &Handler{
		metric:    m,
		minScaleX: 1,
		minScaleY: 1,
		maxScaleX: float32(1 << 20),
		maxScaleY: float32(1 << 20),
	}
}

func (h *Handler) SetMetric(m unit.Metric) {
	h.metric = m
}

// SetChartDimens sets the size of the whole view. The content area covers the
// whole view until RestrainViewport is called.
func (h *Handler) SetChartDimens(width, height float32) {
	h.chartWidth = max(width, 0)
	h.chartHeight = max(height, 0)
	if h.contentRect == (chartval.Rect{}) {
		h.contentRect = chartval.Rect{Right: h.chartWidth, Bottom: h.chartHeight}
		h.prepareOffsetMatrix()
	}
}

// MinOffsetPx returns MinOffset in pixels for the current metric.
func (h *Handler) MinOffsetPx() float32 {
	return float32(h.metric.Dp(MinOffset))
}

// RestrainViewport insets the content area by the given margins. Each margin
// is at least MinOffset. The offset matrix is rebuilt, transformers depending
// on the content size need to be prepared again by the caller.
func (h *Handler) RestrainViewport(offsetLeft, offsetTop, offsetRight, offsetBottom float32) {
	minOffset := h.MinOffsetPx()
	offsetLeft = max(offsetLeft, minOffset)
	offsetTop = max(offsetTop, minOffset)
	offsetRight = max(offsetRight, minOffset)
	offsetBottom = max(offsetBottom, minOffset)

	r := chartval.Rect{
		Left:   offsetLeft,
		Top:    offsetTop,
		Right:  h.chartWidth - offsetRight,
		Bottom: h.chartHeight - offsetBottom,
	}
	// A view smaller than its margins results in an empty, but valid, area.
	if r.Right < r.Left {
		r.Right = r.Left
	}
	if r.Bottom < r.Top {
		r.Bottom = r.Top
	}
	h.contentRect = r
	h.prepareOffsetMatrix()
	h.matrixTouch = h.limitTransAndScale(h.matrixTouch)
}

func (h *Handler) SetInvertY(invert bool) {
	if h.invertY != invert {
		h.invertY = invert
		h.prepareOffsetMatrix()
	}
}

func (h *Handler) IsInvertY() bool {
	return h.invertY
}

func (h *Handler) prepareOffsetMatrix() {
	r := h.contentRect
	if h.invertY {
		h.matrixOffset = f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(1, -1)).Offset(f32.Pt(r.Left, r.Top))
	} else {
		h.matrixOffset = f32.Affine2D{}.Offset(f32.Pt(r.Left, r.Bottom))
	}
}

func (h *Handler) ContentRect() chartval.Rect {
	return h.contentRect
}

func (h *Handler) ContentWidth() float32 {
	return h.contentRect.Width()
}

func (h *Handler) ContentHeight() float32 {
	return h.contentRect.Height()
}

func (h *Handler) ContentCenter() f32.Point {
	return h.contentRect.Center()
}

func (h *Handler) ChartWidth() float32 {
	return h.chartWidth
}

func (h *Handler) ChartHeight() float32 {
	return h.chartHeight
}

// MatrixTouch returns the current pan/zoom matrix.
func (h *Handler) MatrixTouch() f32.Affine2D {
	return h.matrixTouch
}

func (h *Handler) MatrixOffset() f32.Affine2D {
	return h.matrixOffset
}

func (h *Handler) ScaleX() float32 {
	sx, _, _, _, _, _ := h.matrixTouch.Elems()
	return sx
}

func (h *Handler) ScaleY() float32 {
	_, _, _, _, sy, _ := h.matrixTouch.Elems()
	return sy
}

func (h *Handler) TransX() float32 {
	_, _, ox, _, _, _ := h.matrixTouch.Elems()
	return ox
}

func (h *Handler) TransY() float32 {
	_, _, _, _, _, oy := h.matrixTouch.Elems()
	return oy
}

func (h *Handler) IsInBoundsLeft(x float32) bool {
	return h.contentRect.Left <= x
}

func (h *Handler) IsInBoundsRight(x float32) bool {
	// Avoid losing the last pixel column due to rounding.
	x = float32(int(x*100)) / 100
	return h.contentRect.Right >= x
}

func (h *Handler) IsInBoundsTop(y float32) bool {
	return h.contentRect.Top <= y
}

func (h *Handler) IsInBoundsBottom(y float32) bool {
	y = float32(int(y*100)) / 100
	return h.contentRect.Bottom >= y
}

func (h *Handler) IsInBoundsX(x float32) bool {
	return h.IsInBoundsLeft(x) && h.IsInBoundsRight(x)
}

func (h *Handler) IsInBoundsY(y float32) bool {
	return h.IsInBoundsTop(y) && h.IsInBoundsBottom(y)
}
