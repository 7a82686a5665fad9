// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartviz

import (
	"maycharts/chartdata"
	"maycharts/chartval"
	"math/rand"
	"time"

	"github.com/ericlagergren/decimal"
)

// NewDemoPrices returns n random walk candles, the last one starting
// one resolution step before the slot of end.
func NewDemoPrices(r *rand.Rand, start *decimal.Big, end time.Time, n int, resolution time.Duration) []chartdata.PriceData {
	prices := make([]chartdata.PriceData, n)
	timestamp := end.UTC().Truncate(resolution).Add(-time.Duration(n) * resolution)
	closePrice := new(decimal.Big).Copy(start)
	for i := range prices {
		openPrice := closePrice
		closePrice = new(decimal.Big).Add(openPrice, decimal.New(int64(r.Intn(101)-50), 2))
		if closePrice.Sign() <= 0 {
			closePrice = decimal.New(1, 2)
		}
		high, low := openPrice, closePrice
		if closePrice.Cmp(openPrice) > 0 {
			high, low = closePrice, openPrice
		}
		prices[i] = chartdata.PriceData{
			Timestamp:  timestamp,
			OpenPrice:  openPrice,
			HighPrice:  new(decimal.Big).Add(high, decimal.New(int64(r.Intn(31)), 2)),
			LowPrice:   new(decimal.Big).Sub(low, decimal.New(int64(r.Intn(31)), 2)),
			ClosePrice: closePrice,
		}
		timestamp = timestamp.Add(resolution)
	}
	return prices
}

// NewDemoBarData returns one data set per label with n random values.
func NewDemoBarData(r *rand.Rand, labels []string, n int) *chartdata.BarData {
	sets := make([]*chartdata.BarDataSet, len(labels))
	for j, label := range labels {
		entries := make([]chartval.Entry, n)
		for i := range entries {
			entries[i] = chartval.Entry{XIndex: i, Value: float32(r.Intn(90) + 10)}
		}
		sets[j] = chartdata.NewBarDataSet(label, entries)
	}
	return chartdata.NewBarData(sets...)
}
