// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"image"
	"maycharts/chartval"
	"math"

	"gioui.org/f32"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
)

// Zoom factor per scroll event.
const scrollZoom = 1.1

type touchHighlighter interface {
	HighlightByTouchPoint(x, y float32) (chartval.Highlight, bool)
	SetHighlight(h chartval.Highlight, ok bool)
}

type pointerState struct {
	pressPos f32.Point
	dragged  bool
}

func (c *Chart) registerInputOps(ops *op.Ops, size image.Point) {
	area := clip.Rect(image.Rectangle{Max: size}).Push(ops)
	pointer.InputOp{
		Tag:   c,
		Kinds: pointer.Press | pointer.Release | pointer.Drag | pointer.Scroll,
		ScrollBounds: image.Rectangle{
			Min: image.Point{X: 0, Y: math.MinInt},
			Max: image.Point{X: 0, Y: math.MaxInt},
		},
	}.Add(ops)
	area.Pop()
}

// handleInput pans on drag, zooms the category axis on scroll and
// highlights the touched entry on click.
func (c *Chart) handleInput(gtx layout.Context, h touchHighlighter) {
	for _, gtxEvent := range gtx.Events(c) {
		e, ok := gtxEvent.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Kind {
		case pointer.Press:
			c.pointer = pointerState{pressPos: e.Position}
		case pointer.Drag:
			delta := e.Position.Sub(c.pointer.pressPos)
			c.Translate(delta.X, delta.Y)
			c.pointer.pressPos = e.Position
			c.pointer.dragged = true
		case pointer.Release:
			if !c.pointer.dragged {
				h.SetHighlight(h.HighlightByTouchPoint(e.Position.X, e.Position.Y))
			}
			c.pointer.dragged = false
		case pointer.Scroll:
			zoom := float32(scrollZoom)
			if e.Scroll.Y > 0 {
				zoom = 1 / zoom
			}
			if c.orientation == Horizontal {
				c.Zoom(1, zoom, e.Position.X, e.Position.Y)
			} else {
				c.Zoom(zoom, 1, e.Position.X, e.Position.Y)
			}
		}
	}
}
