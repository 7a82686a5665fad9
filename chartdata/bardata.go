// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartdata

import (
	"maycharts/chartval"
)

const DefaultBarSpace = 0.15
const MaxBarSpace = 0.9
const DefaultGroupSpace = 0.8

type BarDataSet struct {
	DataSet
	Entries  []chartval.Entry
	barSpace float32
}

func NewBarDataSet(label string, entries []chartval.Entry) *BarDataSet {
	return &BarDataSet{
		DataSet:  DataSet{Label: label},
		Entries:  entries,
		barSpace: DefaultBarSpace,
	}
}

// SetBarSpace sets the gap between two bars of the same group, in category units.
func (d *BarDataSet) SetBarSpace(space float32) {
	d.barSpace = chartval.Clamp(space, 0, MaxBarSpace)
}

func (d *BarDataSet) BarSpace() float32 {
	return d.barSpace
}

func (d *BarDataSet) YRange() (r chartval.AxisRange, ok bool) {
	for i, e := range d.Entries {
		if i == 0 || e.Value < r.Min {
			r.Min = e.Value
		}
		if i == 0 || e.Value > r.Max {
			r.Max = e.Value
		}
	}
	return r, len(d.Entries) > 0
}

// BarData groups bar data sets. Bars of the same category are drawn side by
// side, separated from the next category by the group space.
type BarData struct {
	DataSets   []*BarDataSet
	groupSpace float32
}

func NewBarData(sets ...*BarDataSet) *BarData {
	return &BarData{
		DataSets:   sets,
		groupSpace: DefaultGroupSpace,
	}
}

// SetGroupSpace sets the space between category groups, in category units.
func (d *BarData) SetGroupSpace(space float32) {
	d.groupSpace = max(space, 0)
}

// GroupSpace returns the space between groups. It is only relevant with
// more than one data set.
func (d *BarData) GroupSpace() float32 {
	return d.groupSpace
}

func (d *BarData) DataSetCount() int {
	return len(d.DataSets)
}

// XValCount returns the number of categories.
func (d *BarData) XValCount() int {
	var n int
	for _, s := range d.DataSets {
		for _, e := range s.Entries {
			n = max(n, e.XIndex+1)
		}
	}
	return n
}

func (d *BarData) IsEmpty() bool {
	return d.XValCount() == 0
}

// XRange returns the category axis range in data space.
func (d *BarData) XRange() chartval.AxisRange {
	n := float32(d.XValCount())
	setCount := d.DataSetCount()
	if setCount <= 1 {
		return chartval.AxisRange{Min: -0.5, Max: n - 0.5}
	}
	return chartval.AxisRange{Min: -0.5, Max: n*(float32(setCount)+d.groupSpace) - 0.5}
}

// YRange returns the value range. Bars always start at zero.
func (d *BarData) YRange() (r chartval.AxisRange, ok bool) {
	r, ok = combineRanges(d.DataSets, (*BarDataSet).YRange)
	if ok {
		r.Min = min(r.Min, 0)
		r.Max = max(r.Max, 0)
	}
	return
}

// BarCenter returns the category axis position of the bar of data set
// setIndex at category xIndex.
func (d *BarData) BarCenter(xIndex, setIndex int) float32 {
	setCount := d.DataSetCount()
	if setCount <= 1 {
		return float32(xIndex)
	}
	return float32(xIndex)*(float32(setCount)+d.groupSpace) + float32(setIndex) + d.groupSpace/2
}
