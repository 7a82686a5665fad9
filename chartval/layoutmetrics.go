// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

import "strings"

type LegendPosition int

const (
	LegendRightOfChart LegendPosition = iota
	LegendRightOfChartCenter
	LegendRightOfChartInside
	LegendBelowChartLeft
	LegendBelowChartRight
	LegendBelowChartCenter
	LegendPieChartCenter
)

var legendPositionNames = []string{
	"right",
	"right-center",
	"right-inside",
	"below-left",
	"below-right",
	"below-center",
	"pie-center",
}

func (p LegendPosition) String() string {
	if p < 0 || int(p) >= len(legendPositionNames) {
		return "unknown"
	}
	return legendPositionNames[p]
}

// Ignore unknown names and return the default position.
func LegendPositionFromString(s string) LegendPosition {
	for i, n := range legendPositionNames {
		if strings.EqualFold(n, strings.TrimSpace(s)) {
			return LegendPosition(i)
		}
	}
	return LegendBelowChartLeft
}

func (p LegendPosition) IsRightOfChart() bool {
	return p == LegendRightOfChart || p == LegendRightOfChartCenter
}

func (p LegendPosition) IsBelowChart() bool {
	return p == LegendBelowChartLeft || p == LegendBelowChartRight || p == LegendBelowChartCenter
}

type XAxisPosition int

const (
	XAxisBottom XAxisPosition = iota
	XAxisTop
	XAxisBothSided
)

var xAxisPositionNames = []string{
	"bottom",
	"top",
	"both",
}

func (p XAxisPosition) String() string {
	if p < 0 || int(p) >= len(xAxisPositionNames) {
		return "unknown"
	}
	return xAxisPositionNames[p]
}

func XAxisPositionFromString(s string) XAxisPosition {
	for i, n := range xAxisPositionNames {
		if strings.EqualFold(n, strings.TrimSpace(s)) {
			return XAxisPosition(i)
		}
	}
	return XAxisBottom
}

// LegendMetrics are measured by the legend renderer.
type LegendMetrics struct {
	Enabled       bool
	Position      LegendPosition
	TextWidthMax  float32
	TextHeightMax float32
	XOffset       float32
}

// ValueAxisMetrics describe the label band of a left or right value axis.
type ValueAxisMetrics struct {
	Enabled        bool
	RequiredWidth  float32
	RequiredHeight float32
}

// CategoryAxisMetrics describe the labels of the category (x) axis.
type CategoryAxisMetrics struct {
	Enabled     bool
	Position    XAxisPosition
	LabelWidth  float32
	LabelHeight float32
}

// LayoutMetrics collects everything the offset calculation depends on.
type LayoutMetrics struct {
	Legend    LegendMetrics
	LeftAxis  ValueAxisMetrics
	RightAxis ValueAxisMetrics
	XAxis     CategoryAxisMetrics
}
