// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package viewport

import (
	"gioui.org/f32"
)

// SetScaleLimits configures the allowed zoom range. Minimum scales below 1
// would shrink the data into a part of the content area and are raised to 1.
func (h *Handler) SetScaleLimits(minX, minY, maxX, maxY float32) {
	h.minScaleX = max(minX, 1)
	h.minScaleY = max(minY, 1)
	h.maxScaleX = max(maxX, h.minScaleX)
	h.maxScaleY = max(maxY, h.minScaleY)
	h.matrixTouch = h.limitTransAndScale(h.matrixTouch)
}

// toTouchSpace converts a view pixel position to the coordinate system of the touch matrix.
func (h *Handler) toTouchSpace(p f32.Point) f32.Point {
	return h.matrixOffset.Invert().Transform(p)
}

// Zoom scales the content around the given view pixel position.
func (h *Handler) Zoom(scaleX, scaleY, x, y float32) {
	if scaleX <= 0 || scaleY <= 0 {
		return
	}
	origin := h.toTouchSpace(f32.Pt(x, y))
	h.Refresh(h.matrixTouch.Scale(origin, f32.Pt(scaleX, scaleY)))
}

// Translate pans the content by a pixel distance.
func (h *Handler) Translate(dx, dy float32) {
	d := h.toTouchSpace(f32.Pt(dx, dy)).Sub(h.toTouchSpace(f32.Point{}))
	h.Refresh(h.matrixTouch.Offset(d))
}

// FitScreen resets all zooming and panning.
func (h *Handler) FitScreen() {
	h.Refresh(f32.Affine2D{})
}

// Refresh replaces the touch matrix, applying the scale and translation limits.
func (h *Handler) Refresh(m f32.Affine2D) {
	h.matrixTouch = h.limitTransAndScale(m)
}

// limitTransAndScale keeps the zoomed content covering the whole content area.
func (h *Handler) limitTransAndScale(m f32.Affine2D) f32.Affine2D {
	sx, _, ox, _, sy, oy := m.Elems()
	sx = min(max(sx, h.minScaleX), h.maxScaleX)
	sy = min(max(sy, h.minScaleY), h.maxScaleY)

	width := h.ContentWidth()
	height := h.ContentHeight()
	// Content spans [0, width] horizontally and [-height, 0] vertically.
	maxTransX := -width * (sx - 1)
	ox = min(max(ox, maxTransX), 0)
	maxTransY := height * (sy - 1)
	oy = min(max(oy, 0), maxTransY)

	return f32.NewAffine2D(sx, 0, ox, 0, sy, oy)
}
