// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartdata

import (
	"log"
	"maycharts/chartval"
	"sort"
	"time"

	"github.com/cinar/indicator"
	"github.com/ericlagergren/decimal"
)

// PriceData is a candle as delivered by a price source.
type PriceData struct {
	Timestamp  time.Time
	OpenPrice  *decimal.Big
	HighPrice  *decimal.Big
	LowPrice   *decimal.Big
	ClosePrice *decimal.Big
}

// For sorting
type PriceList []PriceData

func (x PriceList) Len() int           { return len(x) }
func (x PriceList) Less(i, j int) bool { return x[i].Timestamp.Before(x[j].Timestamp) }
func (x PriceList) Swap(i, j int)      { x[i], x[j] = x[j], x[i] }

// CandlesFromPrices converts price data to candle entries, ordered by time.
// Records with missing prices are skipped, but keep their category.
func CandlesFromPrices(data []PriceData) []chartval.CandleEntry {
	sorted := make(PriceList, len(data))
	copy(sorted, data)
	sort.Stable(sorted)
	entries := make([]chartval.CandleEntry, 0, len(sorted))
	for i, d := range sorted {
		if d.OpenPrice == nil || d.HighPrice == nil || d.LowPrice == nil || d.ClosePrice == nil {
			log.Printf("skipping incomplete candle at %v", d.Timestamp)
			continue
		}
		o, _ := d.OpenPrice.Float64()
		h, _ := d.HighPrice.Float64()
		l, _ := d.LowPrice.Float64()
		c, _ := d.ClosePrice.Float64()
		entries = append(entries, chartval.NewCandleEntry(i, float32(h), float32(l), float32(o), float32(c)))
	}
	return entries
}

// MovingAverage returns the simple moving average of the close values,
// starting at the first entry with numPeriods values.
func MovingAverage(d *CandleDataSet, numPeriods int) []chartval.Entry {
	if numPeriods <= 0 || len(d.Entries) < numPeriods {
		return nil
	}
	closePrices := make([]float64, len(d.Entries))
	for i, e := range d.Entries {
		closePrices[i] = float64(e.Close)
	}
	result := indicator.Sma(numPeriods, closePrices)
	// The first values are incomplete.
	var entries []chartval.Entry
	for i := numPeriods - 1; i < len(result); i++ {
		entries = append(entries, chartval.Entry{XIndex: d.Entries[i].XIndex, Value: float32(result[i])})
	}
	return entries
}
