// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartdata

import (
	"image/color"
	"maycharts/chartval"
)

var DefaultColor = color.NRGBA{R: 140, G: 234, B: 255, A: 255}

// DataSet holds the properties shared by all data set types.
type DataSet struct {
	Label  string
	colors []color.NRGBA
}

func (d *DataSet) SetColors(c ...color.NRGBA) {
	d.colors = append(d.colors[:0], c...)
}

func (d *DataSet) Colors() []color.NRGBA {
	return d.colors
}

// Color returns the color for the entry at index i. Colors are reused if
// there are more entries than colors.
func (d *DataSet) Color(i int) color.NRGBA {
	if len(d.colors) == 0 {
		return DefaultColor
	}
	if i < 0 {
		i = -i
	}
	return d.colors[i%len(d.colors)]
}

// CandleDataSet is a list of candles in category order.
type CandleDataSet struct {
	DataSet
	Entries     []chartval.CandleEntry
	bodySpace   float32
	shadowWidth float32
}

const DefaultBodySpace = 0.1
const MaxBodySpace = 0.45
const DefaultShadowWidthDp = 3

func NewCandleDataSet(label string, entries []chartval.CandleEntry) *CandleDataSet {
	return &CandleDataSet{
		DataSet:     DataSet{Label: label},
		Entries:     entries,
		bodySpace:   DefaultBodySpace,
		shadowWidth: DefaultShadowWidthDp,
	}
}

// SetBodySpace sets the space left on each side of a candle body, in category units.
func (d *CandleDataSet) SetBodySpace(space float32) {
	d.bodySpace = chartval.Clamp(space, 0, MaxBodySpace)
}

func (d *CandleDataSet) BodySpace() float32 {
	return d.bodySpace
}

// SetShadowWidth sets the width of the high/low line in dp.
func (d *CandleDataSet) SetShadowWidth(width float32) {
	d.shadowWidth = max(width, 0)
}

func (d *CandleDataSet) ShadowWidth() float32 {
	return d.shadowWidth
}

// YRange returns the lowest low and the highest high.
func (d *CandleDataSet) YRange() (r chartval.AxisRange, ok bool) {
	for i, e := range d.Entries {
		if i == 0 || e.Low < r.Min {
			r.Min = e.Low
		}
		if i == 0 || e.High > r.Max {
			r.Max = e.High
		}
	}
	return r, len(d.Entries) > 0
}

// XRange returns the category range. Candles have a width of one category.
func (d *CandleDataSet) XRange() (r chartval.AxisRange, ok bool) {
	for i, e := range d.Entries {
		x := float32(e.XIndex)
		if i == 0 || x < r.Min {
			r.Min = x
		}
		if i == 0 || x > r.Max {
			r.Max = x
		}
	}
	r.Max++
	return r, len(d.Entries) > 0
}

// CandleData combines candle data sets sharing the same categories.
type CandleData struct {
	DataSets []*CandleDataSet
}

func (d *CandleData) IsEmpty() bool {
	for _, s := range d.DataSets {
		if len(s.Entries) > 0 {
			return false
		}
	}
	return true
}

func (d *CandleData) XValCount() int {
	var n int
	for _, s := range d.DataSets {
		n = max(n, len(s.Entries))
	}
	return n
}

func (d *CandleData) YRange() (r chartval.AxisRange, ok bool) {
	return combineRanges(d.DataSets, (*CandleDataSet).YRange)
}

func (d *CandleData) XRange() (r chartval.AxisRange, ok bool) {
	return combineRanges(d.DataSets, (*CandleDataSet).XRange)
}

func combineRanges[T any](sets []T, f func(T) (chartval.AxisRange, bool)) (r chartval.AxisRange, ok bool) {
	for _, s := range sets {
		sr, sok := f(s)
		if !sok {
			continue
		}
		if !ok {
			r = sr
			ok = true
			continue
		}
		r.Min = min(r.Min, sr.Min)
		r.Max = max(r.Max, sr.Max)
	}
	return
}
