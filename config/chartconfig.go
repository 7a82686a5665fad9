// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"maycharts/chartval"

	"github.com/barkimedes/go-deepcopy"
)

const (
	maxBodySpace = 0.45
	maxBarSpace  = 0.9
)

type ChartConfig struct {
	Orientation string `yaml:",omitempty"`
	LightTheme  bool   `yaml:",omitempty"`
	LogEnabled  bool   `yaml:",omitempty"`
	InvertY     bool   `yaml:",omitempty"`
	Legend      LegendConfig
	XAxis       XAxisConfig
	LeftAxis    AxisConfig
	RightAxis   AxisConfig
	Candle      CandleConfig
	Bar         BarConfig
	Zoom        ZoomConfig
}

type LegendConfig struct {
	Enabled   bool
	Position  string  `yaml:",omitempty"`
	XOffsetDp float32 `yaml:",omitempty"`
}

type XAxisConfig struct {
	Enabled  bool
	Position string `yaml:",omitempty"`
}

type AxisConfig struct {
	Enabled     bool
	StartAtZero bool `yaml:",omitempty"`
	// Additional space as fraction of the value range.
	SpaceTop    float32 `yaml:",omitempty"`
	SpaceBottom float32 `yaml:",omitempty"`
}

type CandleConfig struct {
	BodySpace     float32
	ShadowWidthDp float32
}

type BarConfig struct {
	GroupSpace float32
	BarSpace   float32
}

type ZoomConfig struct {
	MaxScaleX float32
	MaxScaleY float32
}

func NewChartConfig() ChartConfig {
	return ChartConfig{
		Orientation: "vertical",
		Legend: LegendConfig{
			Enabled:   true,
			Position:  chartval.LegendBelowChartLeft.String(),
			XOffsetDp: 5,
		},
		XAxis: XAxisConfig{
			Enabled:  true,
			Position: chartval.XAxisBottom.String(),
		},
		LeftAxis: AxisConfig{
			Enabled:     true,
			SpaceTop:    0.1,
			SpaceBottom: 0.1,
		},
		RightAxis: AxisConfig{
			Enabled:     true,
			SpaceTop:    0.1,
			SpaceBottom: 0.1,
		},
		Candle: CandleConfig{
			BodySpace:     0.1,
			ShadowWidthDp: 3,
		},
		Bar: BarConfig{
			GroupSpace: 0.8,
			BarSpace:   0.15,
		},
		Zoom: ZoomConfig{
			MaxScaleX: 50,
			MaxScaleY: 50,
		},
	}
}

func (c *ChartConfig) deepCopy() ChartConfig {
	cp, err := deepcopy.Anything(c)
	if err != nil {
		panic(err)
	}
	return *cp.(*ChartConfig)
}

// Sanitize replaces invalid values instead of rejecting the configuration.
func (c *ChartConfig) Sanitize() {
	if c.Orientation != "horizontal" {
		c.Orientation = "vertical"
	}
	c.Legend.Position = chartval.LegendPositionFromString(c.Legend.Position).String()
	c.Legend.XOffsetDp = max(c.Legend.XOffsetDp, 0)
	c.XAxis.Position = chartval.XAxisPositionFromString(c.XAxis.Position).String()
	c.LeftAxis.sanitize()
	c.RightAxis.sanitize()
	c.Candle.BodySpace = chartval.Clamp(c.Candle.BodySpace, 0, maxBodySpace)
	c.Candle.ShadowWidthDp = max(c.Candle.ShadowWidthDp, 0)
	c.Bar.GroupSpace = max(c.Bar.GroupSpace, 0)
	c.Bar.BarSpace = chartval.Clamp(c.Bar.BarSpace, 0, maxBarSpace)
	c.Zoom.MaxScaleX = max(c.Zoom.MaxScaleX, 1)
	c.Zoom.MaxScaleY = max(c.Zoom.MaxScaleY, 1)
}

func (a *AxisConfig) sanitize() {
	a.SpaceTop = max(a.SpaceTop, 0)
	a.SpaceBottom = max(a.SpaceBottom, 0)
}
