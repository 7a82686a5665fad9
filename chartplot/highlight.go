// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"log"
	"maycharts/chartval"
)

// HighlightResolver decodes touch positions on grouped bars.
type HighlightResolver struct {
	// Logger receives decoding details. Nothing is logged if nil.
	Logger *log.Logger
}

// ResolveHighlight returns the category and data set at the pixel position.
// With several data sets, each category holds one bar per data set followed
// by groupSpace. Touches outside of the category axis range return false,
// indices beyond the available data are clamped to the nearest bar.
func (r HighlightResolver) ResolveHighlight(x, y float32, t *Transformer, setCount, valCount int, groupSpace float32) (chartval.Highlight, bool) {
	if valCount <= 0 || setCount <= 0 {
		return chartval.Highlight{}, false
	}
	p := t.PixelToValue(x, y)
	base := t.Orientation().categoryPos(p)
	if !t.CategoryRange().Contains(base) {
		return chartval.Highlight{}, false
	}

	if setCount <= 1 {
		xIndex := chartval.Clamp(chartval.RoundInt(base), 0, valCount-1)
		return chartval.Highlight{XIndex: xIndex, DataSetIndex: 0}, true
	}

	steps := chartval.FloorInt(base / (float32(setCount) + groupSpace))
	groupSpaceSum := groupSpace * float32(steps)
	baseNoSpace := base - groupSpaceSum
	r.logf("base: %f, steps: %d, groupSpaceSum: %f, baseNoSpace: %f", base, steps, groupSpaceSum, baseNoSpace)

	dataSetIndex := chartval.FloorInt(baseNoSpace) % setCount
	xIndex := chartval.FloorInt(baseNoSpace / float32(setCount))
	r.logf("xIndex: %d, dataSet: %d", xIndex, dataSetIndex)

	if xIndex < 0 {
		xIndex = 0
		dataSetIndex = 0
	} else if xIndex >= valCount {
		xIndex = valCount - 1
		dataSetIndex = setCount - 1
	}
	dataSetIndex = chartval.Clamp(dataSetIndex, 0, setCount-1)
	return chartval.Highlight{XIndex: xIndex, DataSetIndex: dataSetIndex}, true
}

func (r HighlightResolver) logf(format string, v ...any) {
	if r.Logger != nil {
		r.Logger.Printf(format, v...)
	}
}
