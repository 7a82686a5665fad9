// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

import (
	"fmt"

	"gioui.org/f32"
)

// Rect is an axis aligned rectangle in pixel space.
type Rect struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

func (r Rect) Width() float32 {
	return r.Right - r.Left
}

func (r Rect) Height() float32 {
	return r.Bottom - r.Top
}

func (r Rect) Center() f32.Point {
	return f32.Pt(r.Left+r.Width()/2, r.Top+r.Height()/2)
}

func (r Rect) Contains(p f32.Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%.1f, %.1f - %.1f, %.1f)", r.Left, r.Top, r.Right, r.Bottom)
}

// AxisRange is the data range of a single axis.
type AxisRange struct {
	Min float32
	Max float32
}

// Delta returns the extent of the range. A degenerate range has a delta of 1,
// so that it can be used as a divisor.
func (r AxisRange) Delta() float32 {
	d := r.Max - r.Min
	if d <= 0 || d != d {
		return 1
	}
	return d
}

func (r AxisRange) Contains(v float32) bool {
	return v >= r.Min && v <= r.Max
}

// Entry is a single value at a category index.
type Entry struct {
	XIndex int
	Value  float32
}

// CandleEntry carries open/high/low/close values. Value holds the close price.
// Out-of-order values are used as given.
type CandleEntry struct {
	Entry
	High  float32
	Low   float32
	Open  float32
	Close float32
}

func NewCandleEntry(xIndex int, high, low, open, close float32) CandleEntry {
	return CandleEntry{
		Entry: Entry{XIndex: xIndex, Value: close},
		High:  high,
		Low:   low,
		Open:  open,
		Close: close,
	}
}

// Highlight identifies a category and a data set (series).
type Highlight struct {
	XIndex       int
	DataSetIndex int
}

// Margins are the pixel offsets reserved around the content area.
type Margins struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

func (m Margins) String() string {
	return fmt.Sprintf("offsetLeft: %f, offsetTop: %f, offsetRight: %f, offsetBottom: %f", m.Left, m.Top, m.Right, m.Bottom)
}
