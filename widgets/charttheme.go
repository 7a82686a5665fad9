// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"image"
	"image/color"

	"gioui.org/unit"
	"golang.org/x/image/colornames"
)

type DpPoint struct {
	X unit.Dp
	Y unit.Dp
}

func (p *DpPoint) Px(m unit.Metric) image.Point {
	return image.Point{
		X: m.Dp(p.X),
		Y: m.Dp(p.Y),
	}
}

type ChartTheme struct {
	BackgroundColor    color.NRGBA
	AxesColor          color.NRGBA
	GridColor          color.NRGBA
	HighlightColor     color.NRGBA
	CandleColors       []color.NRGBA
	BarColors          []color.NRGBA
	AxisLabelSize      DpPoint // estimated size of a single axis label
	LegendTextSize     DpPoint
	LegendXOffset      unit.Dp
	HollowBodyWidth    unit.Dp
	HighlightLineWidth unit.Dp
}

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func NewDarkChartTheme() *ChartTheme {
	return &ChartTheme{
		BackgroundColor: color.NRGBA{R: 20, G: 20, B: 20, A: 255},
		AxesColor:       color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		GridColor:       color.NRGBA{R: 60, G: 60, B: 60, A: 255},
		HighlightColor:  color.NRGBA{R: 255, G: 187, B: 115, A: 255},
		CandleColors: []color.NRGBA{
			nrgba(colornames.Limegreen),
			nrgba(colornames.Orangered),
			nrgba(colornames.Deepskyblue),
		},
		BarColors: []color.NRGBA{
			nrgba(colornames.Deepskyblue),
			nrgba(colornames.Gold),
			nrgba(colornames.Mediumorchid),
			nrgba(colornames.Limegreen),
		},
		AxisLabelSize:      DpPoint{X: 48, Y: 17},
		LegendTextSize:     DpPoint{X: 80, Y: 14},
		LegendXOffset:      5,
		HollowBodyWidth:    1,
		HighlightLineWidth: 2,
	}
}

func NewLightChartTheme() *ChartTheme {
	return &ChartTheme{
		BackgroundColor: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		AxesColor:       color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		GridColor:       color.NRGBA{R: 230, G: 230, B: 230, A: 255},
		HighlightColor:  color.NRGBA{R: 255, G: 120, B: 0, A: 255},
		CandleColors: []color.NRGBA{
			nrgba(colornames.Darkgreen),
			nrgba(colornames.Firebrick),
			nrgba(colornames.Steelblue),
		},
		BarColors: []color.NRGBA{
			nrgba(colornames.Steelblue),
			nrgba(colornames.Darkorange),
			nrgba(colornames.Purple),
			nrgba(colornames.Darkgreen),
		},
		AxisLabelSize:      DpPoint{X: 48, Y: 17},
		LegendTextSize:     DpPoint{X: 80, Y: 14},
		LegendXOffset:      5,
		HollowBodyWidth:    1,
		HighlightLineWidth: 2,
	}
}
