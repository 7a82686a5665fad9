// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mock

import (
	"bufio"
	"log"
	"maycharts/chartdata"
	"maycharts/chartval"
	"maycharts/config"
	"os"
	"testing"
	"time"

	"github.com/ericlagergren/decimal"
	"github.com/stretchr/testify/assert"
)

func NewLogger(t *testing.T) (*log.Logger, *bufio.Scanner) {
	r, w, err := os.Pipe()
	if err != nil {
		assert.Fail(t, "failed to create logger mock: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	t.Cleanup(func() { w.Close() })
	return log.New(w, "", log.LstdFlags), bufio.NewScanner(r)
}

func NewChartConfig(orientation string) config.Config {
	c := config.NewTestConfig()
	chartConfig, _ := c.Lock()
	chartConfig.Orientation = orientation
	_ = c.Unlock(chartConfig)
	return c
}

// NewPriceData returns n ascending one minute price records, alternating
// between increasing and decreasing candles.
func NewPriceData(n int) []chartdata.PriceData {
	start := time.Date(2023, 1, 2, 9, 30, 0, 0, time.UTC)
	data := make([]chartdata.PriceData, n)
	for i := range data {
		base := int64(100 + i)
		open, close := base, base+2
		if i%2 == 1 {
			open, close = base+2, base
		}
		data[i] = chartdata.PriceData{
			Timestamp:  start.Add(time.Duration(i) * time.Minute),
			OpenPrice:  decimal.New(open, 0),
			HighPrice:  decimal.New(base+3, 0),
			LowPrice:   decimal.New(base-1, 0),
			ClosePrice: decimal.New(close, 0),
		}
	}
	return data
}

func NewCandleData(n int) *chartdata.CandleData {
	return &chartdata.CandleData{
		DataSets: []*chartdata.CandleDataSet{
			chartdata.NewCandleDataSet("test", chartdata.CandlesFromPrices(NewPriceData(n))),
		},
	}
}

// NewBarData returns setCount data sets with n bars each. Bar values are
// index based: set j, category i has the value (i+1)*(j+1).
func NewBarData(setCount, n int) *chartdata.BarData {
	sets := make([]*chartdata.BarDataSet, setCount)
	for j := range sets {
		entries := make([]chartval.Entry, n)
		for i := range entries {
			entries[i] = chartval.Entry{XIndex: i, Value: float32((i + 1) * (j + 1))}
		}
		sets[j] = chartdata.NewBarDataSet("set", entries)
	}
	return chartdata.NewBarData(sets...)
}
