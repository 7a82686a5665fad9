// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartviz

import (
	"maycharts/chartdata"
	"math/rand"
	"testing"
	"time"

	"github.com/ericlagergren/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewDemoPrices(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	end := time.Date(2023, 1, 2, 12, 0, 30, 0, time.UTC)
	prices := NewDemoPrices(r, decimal.New(10000, 2), end, 50, time.Minute)

	assert.Len(t, prices, 50)
	assert.True(t, time.Date(2023, 1, 2, 11, 10, 0, 0, time.UTC).Equal(prices[0].Timestamp))
	for i, p := range prices {
		if i > 0 {
			assert.Equal(t, time.Minute, p.Timestamp.Sub(prices[i-1].Timestamp))
			assert.Equal(t, 0, p.OpenPrice.Cmp(prices[i-1].ClosePrice))
		}
		assert.GreaterOrEqual(t, p.HighPrice.Cmp(p.OpenPrice), 0)
		assert.GreaterOrEqual(t, p.HighPrice.Cmp(p.ClosePrice), 0)
		assert.LessOrEqual(t, p.LowPrice.Cmp(p.OpenPrice), 0)
		assert.LessOrEqual(t, p.LowPrice.Cmp(p.ClosePrice), 0)
	}
	assert.Len(t, chartdata.CandlesFromPrices(prices), 50)
}

func TestNewDemoBarData(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	data := NewDemoBarData(r, []string{"a", "b", "c"}, 12)

	assert.Equal(t, 3, data.DataSetCount())
	assert.Equal(t, 12, data.XValCount())
	assert.Equal(t, "b", data.DataSets[1].Label)
	for _, set := range data.DataSets {
		for i, e := range set.Entries {
			assert.Equal(t, i, e.XIndex)
			assert.GreaterOrEqual(t, e.Value, float32(10))
			assert.Less(t, e.Value, float32(100))
		}
	}
}
