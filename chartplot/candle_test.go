// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"image"
	"maycharts/chartdata"
	"maycharts/chartval"
	"maycharts/mock"
	"maycharts/widgets"
	"testing"

	"gioui.org/f32"
	"github.com/stretchr/testify/assert"
)

func TestCandleFillPolicy(t *testing.T) {
	assert.Equal(t, FillSolid, CandleFillPolicy(10, 8))
	assert.Equal(t, FillHollow, CandleFillPolicy(8, 10))
	// Unchanged candles are hollow.
	assert.Equal(t, FillHollow, CandleFillPolicy(9, 9))
}

func TestDataGeometry(t *testing.T) {
	var buf CandleBuffer
	g := buf.DataGeometry(chartval.NewCandleEntry(3, 12, 7, 10, 8), 0.1)

	assert.Equal(t, ShadowSegment{X: 3.5, High: 12, Low: 7}, g.Shadow)
	assert.InDelta(t, 3.1, g.Body.Left, 1e-5)
	assert.InDelta(t, 3.9, g.Body.Right, 1e-5)
	assert.Equal(t, float32(10), g.Body.Open)
	assert.Equal(t, float32(8), g.Body.Close)
	assert.Equal(t, FillSolid, g.Fill)
}

func TestBuildCandleGeometry(t *testing.T) {
	tr := NewTransformer(NewTestViewport(), Vertical)
	// 38 px per category, 14 px per value.
	tr.PrepareValuePxMatrix(0, 20, 10, 0)

	var buf CandleBuffer
	g := buf.BuildCandleGeometry(tr, chartval.NewCandleEntry(3, 12, 7, 10, 8), 0.1)

	assert.InDelta(t, 143, g.Shadow.X, pxDelta)
	assert.InDelta(t, 122, g.Shadow.High, pxDelta)
	assert.InDelta(t, 192, g.Shadow.Low, pxDelta)
	assert.InDelta(t, 127.8, g.Body.Left, pxDelta)
	assert.InDelta(t, 158.2, g.Body.Right, pxDelta)
	assert.InDelta(t, 150, g.Body.Open, pxDelta)
	assert.InDelta(t, 178, g.Body.Close, pxDelta)
	// Pixel Y is inverted, but the fill policy depends on the data values.
	assert.Equal(t, FillSolid, g.Fill)
}

func TestCandleBufferReuse(t *testing.T) {
	tr := NewTransformer(NewTestViewport(), Vertical)
	tr.PrepareValuePxMatrix(0, 20, 10, 0)

	var buf CandleBuffer
	first := buf.BuildCandleGeometry(tr, chartval.NewCandleEntry(3, 12, 7, 10, 8), 0.1)
	second := buf.BuildCandleGeometry(tr, chartval.NewCandleEntry(5, 15, 9, 10, 14), 0)
	again := buf.BuildCandleGeometry(tr, chartval.NewCandleEntry(3, 12, 7, 10, 8), 0.1)

	assert.Equal(t, first, again)
	assert.Equal(t, FillHollow, second.Fill)
	assert.InDelta(t, 200, second.Body.Left, pxDelta)
	assert.InDelta(t, 238, second.Body.Right, pxDelta)
	assertPoint(t, tr.ValueToPixel(5.5, 15), f32.Pt(second.Shadow.X, second.Shadow.High))
}

func NewTestCandleChart(n int) *CandleChart {
	c := NewCandleChart(mock.NewCandleData(n), widgets.NewDarkChartTheme())
	c.Prepare(NewTestContext(image.Pt(800, 600)))
	return c
}

func TestCandleChartRanges(t *testing.T) {
	c := NewTestCandleChart(10)
	// Candles have a width of one category.
	assert.Equal(t, chartval.AxisRange{Min: 0, Max: 10}, c.LeftTransformer().CategoryRange())
	// Lowest low is 99, highest high is 112, plus 10% space.
	r := c.LeftTransformer().ValueRange()
	assert.InDelta(t, 97.7, r.Min, 1e-3)
	assert.InDelta(t, 113.3, r.Max, 1e-3)
}

func TestCandleChartHighlightByTouchPoint(t *testing.T) {
	c := NewTestCandleChart(10)
	p := c.LeftTransformer().ValueToPixel(4.5, 104)
	h, ok := c.HighlightByTouchPoint(p.X, p.Y)
	assert.True(t, ok)
	assert.Equal(t, chartval.Highlight{XIndex: 4, DataSetIndex: 0}, h)

	p = c.LeftTransformer().ValueToPixel(9.9, 104)
	h, ok = c.HighlightByTouchPoint(p.X, p.Y)
	assert.True(t, ok)
	assert.Equal(t, 9, h.XIndex)

	p = c.LeftTransformer().ValueToPixel(-0.5, 104)
	_, ok = c.HighlightByTouchPoint(p.X, p.Y)
	assert.False(t, ok)
}

func TestCandleChartHighlightClosestDataSet(t *testing.T) {
	c := NewCandleChart(mock.NewCandleData(10), widgets.NewDarkChartTheme())
	shifted := make([]chartval.CandleEntry, len(c.Data.DataSets[0].Entries))
	for i, e := range c.Data.DataSets[0].Entries {
		shifted[i] = chartval.NewCandleEntry(e.XIndex, e.High+50, e.Low+50, e.Open+50, e.Close+50)
	}
	c.Data.DataSets = append(c.Data.DataSets, chartdata.NewCandleDataSet("shifted", shifted))
	c.Prepare(NewTestContext(image.Pt(800, 600)))

	p := c.LeftTransformer().ValueToPixel(4.5, 150)
	h, ok := c.HighlightByTouchPoint(p.X, p.Y)
	assert.True(t, ok)
	assert.Equal(t, chartval.Highlight{XIndex: 4, DataSetIndex: 1}, h)

	p = c.LeftTransformer().ValueToPixel(4.5, 110)
	h, ok = c.HighlightByTouchPoint(p.X, p.Y)
	assert.True(t, ok)
	assert.Equal(t, chartval.Highlight{XIndex: 4, DataSetIndex: 0}, h)
}

func TestCandleChartHighlightWithoutData(t *testing.T) {
	logger, scanner := mock.NewLogger(t)
	c := NewCandleChart(&chartdata.CandleData{}, widgets.NewDarkChartTheme())
	c.Logger = logger
	c.Prepare(NewTestContext(image.Pt(800, 600)))

	_, ok := c.HighlightByTouchPoint(100, 100)
	assert.False(t, ok)
	assert.True(t, scanner.Scan())
	assert.Contains(t, scanner.Text(), "can't select by touch, no data set")
}

func TestCandleChartLayout(t *testing.T) {
	c := NewCandleChart(mock.NewCandleData(30), widgets.NewLightChartTheme())
	c.Data.DataSets[0].SetColors(widgets.NewLightChartTheme().CandleColors...)
	c.Overlays = []OverlayLine{{
		Entries: chartdata.MovingAverage(c.Data.DataSets[0], 5),
		Color:   c.Theme.HighlightColor,
	}}
	c.SetHighlight(chartval.Highlight{XIndex: 3}, true)
	gtx := NewTestContext(image.Pt(800, 600))

	dims := c.Layout(gtx)
	assert.Equal(t, image.Pt(800, 600), dims.Size)
	assert.True(t, c.Viewport().ContentWidth() > 0)

	// Zoomed in, most candles are skipped.
	c.Zoom(10, 1, 400, 300)
	dims = c.Layout(gtx)
	assert.Equal(t, image.Pt(800, 600), dims.Size)
}

func TestCandleChartLayoutEmpty(t *testing.T) {
	c := NewCandleChart(nil, nil)
	dims := c.Layout(NewTestContext(image.Pt(200, 100)))
	assert.Equal(t, image.Pt(200, 100), dims.Size)
}
