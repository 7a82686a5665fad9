// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartdata

import (
	"image/color"
	"maycharts/chartval"
	"testing"
	"time"

	"github.com/ericlagergren/decimal"
	"github.com/stretchr/testify/assert"
)

func NewTestCandleDataSet() *CandleDataSet {
	return NewCandleDataSet("test", []chartval.CandleEntry{
		chartval.NewCandleEntry(0, 12, 7, 10, 8),
		chartval.NewCandleEntry(1, 11, 7.5, 8, 10),
		chartval.NewCandleEntry(2, 9.5, 8.5, 9, 9),
	})
}

func TestColorWraps(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	green := color.NRGBA{G: 255, A: 255}
	var d DataSet
	assert.Equal(t, DefaultColor, d.Color(3))
	d.SetColors(red, green)
	assert.Equal(t, red, d.Color(0))
	assert.Equal(t, green, d.Color(1))
	assert.Equal(t, red, d.Color(2))
	assert.Equal(t, green, d.Color(7))
}

func TestCandleRanges(t *testing.T) {
	d := NewTestCandleDataSet()
	y, ok := d.YRange()
	assert.True(t, ok)
	assert.Equal(t, chartval.AxisRange{Min: 7, Max: 12}, y)
	x, ok := d.XRange()
	assert.True(t, ok)
	// Candles are one category wide.
	assert.Equal(t, chartval.AxisRange{Min: 0, Max: 3}, x)

	data := CandleData{DataSets: []*CandleDataSet{d, NewCandleDataSet("empty", nil)}}
	assert.False(t, data.IsEmpty())
	assert.Equal(t, 3, data.XValCount())
	y, ok = data.YRange()
	assert.True(t, ok)
	assert.Equal(t, chartval.AxisRange{Min: 7, Max: 12}, y)

	_, ok = (&CandleData{}).YRange()
	assert.False(t, ok)
}

func TestBodySpaceIsClamped(t *testing.T) {
	d := NewTestCandleDataSet()
	assert.Equal(t, float32(DefaultBodySpace), d.BodySpace())
	d.SetBodySpace(0.7)
	assert.Equal(t, float32(MaxBodySpace), d.BodySpace())
	d.SetBodySpace(-1)
	assert.Equal(t, float32(0), d.BodySpace())
	d.SetShadowWidth(-2)
	assert.Equal(t, float32(0), d.ShadowWidth())
}

func TestBarDataRanges(t *testing.T) {
	single := NewBarData(NewBarDataSet("a", []chartval.Entry{{XIndex: 0, Value: 3}, {XIndex: 9, Value: 5}}))
	assert.Equal(t, 10, single.XValCount())
	assert.Equal(t, chartval.AxisRange{Min: -0.5, Max: 9.5}, single.XRange())
	assert.Equal(t, float32(4), single.BarCenter(4, 0))
	y, ok := single.YRange()
	assert.True(t, ok)
	assert.Equal(t, chartval.AxisRange{Min: 0, Max: 5}, y)

	grouped := NewBarData(
		NewBarDataSet("a", []chartval.Entry{{XIndex: 9, Value: -2}}),
		NewBarDataSet("b", nil),
		NewBarDataSet("c", nil),
	)
	grouped.SetGroupSpace(0.2)
	r := grouped.XRange()
	assert.Equal(t, float32(-0.5), r.Min)
	assert.InDelta(t, 31.5, r.Max, 1e-5)
	assert.InDelta(t, 7.5, grouped.BarCenter(2, 1), 1e-5)
	y, ok = grouped.YRange()
	assert.True(t, ok)
	assert.Equal(t, chartval.AxisRange{Min: -2, Max: 0}, y)

	grouped.SetGroupSpace(-1)
	assert.Equal(t, float32(0), grouped.GroupSpace())
}

func TestBarSpaceIsClamped(t *testing.T) {
	d := NewBarDataSet("a", nil)
	d.SetBarSpace(2)
	assert.Equal(t, float32(MaxBarSpace), d.BarSpace())
	assert.True(t, NewBarData(d).IsEmpty())
}

func TestCandlesFromPrices(t *testing.T) {
	base := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	data := []PriceData{
		{Timestamp: base.Add(time.Hour), OpenPrice: decimal.New(1050, 2), HighPrice: decimal.New(1100, 2), LowPrice: decimal.New(1000, 2), ClosePrice: decimal.New(1025, 2)},
		{Timestamp: base, OpenPrice: decimal.New(9, 0), HighPrice: decimal.New(12, 0), LowPrice: decimal.New(8, 0), ClosePrice: decimal.New(11, 0)},
		{Timestamp: base.Add(2 * time.Hour), OpenPrice: decimal.New(9, 0)},
	}
	entries := CandlesFromPrices(data)
	assert.Len(t, entries, 2)
	assert.Equal(t, chartval.NewCandleEntry(0, 12, 8, 9, 11), entries[0])
	assert.Equal(t, 1, entries[1].XIndex)
	assert.InDelta(t, 10.5, entries[1].Open, 1e-6)
	assert.InDelta(t, 10.25, entries[1].Close, 1e-6)
	assert.InDelta(t, 10.25, entries[1].Value, 1e-6)
}

func TestMovingAverage(t *testing.T) {
	d := NewCandleDataSet("flat", []chartval.CandleEntry{
		chartval.NewCandleEntry(3, 6, 4, 5, 5),
		chartval.NewCandleEntry(4, 6, 4, 5, 5),
		chartval.NewCandleEntry(5, 6, 4, 5, 5),
		chartval.NewCandleEntry(6, 6, 4, 5, 5),
	})
	ma := MovingAverage(d, 2)
	assert.Len(t, ma, 3)
	assert.Equal(t, 4, ma[0].XIndex)
	assert.Equal(t, 6, ma[2].XIndex)
	assert.InDelta(t, 5, ma[2].Value, 1e-6)
	assert.Nil(t, MovingAverage(d, 0))
	assert.Nil(t, MovingAverage(d, 5))
}
