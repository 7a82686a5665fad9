// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartviz

import (
	"context"
	"maycharts/chartdata"
	"testing"
	"time"

	"github.com/ericlagergren/decimal"
	"github.com/stretchr/testify/assert"
)

func assertPrice(t *testing.T, expected int64, actual *decimal.Big) {
	if assert.NotNil(t, actual) {
		assert.Equal(t, 0, actual.Cmp(decimal.New(expected, 0)), "expected %d, got %s", expected, actual)
	}
}

func TestConsolidateOutOfOrder(t *testing.T) {
	f := NewPriceFeed(decimal.New(100, 0), time.Minute, time.Second)
	start := time.Date(2023, 1, 2, 9, 30, 0, 0, time.UTC)
	f.AddTick(start.Add(30*time.Second), decimal.New(103, 0))
	f.AddTick(start.Add(70*time.Second), decimal.New(101, 0))
	f.AddTick(start.Add(10*time.Second), decimal.New(100, 0))
	f.AddTick(start.Add(50*time.Second), decimal.New(99, 0))
	assert.Equal(t, 4, f.PendingTicks())

	prices, changed := f.Consolidate(nil)
	assert.True(t, changed)
	assert.Equal(t, 0, f.PendingTicks())
	if assert.Len(t, prices, 2) {
		assert.True(t, start.Equal(prices[0].Timestamp))
		assertPrice(t, 100, prices[0].OpenPrice)
		assertPrice(t, 103, prices[0].HighPrice)
		assertPrice(t, 99, prices[0].LowPrice)
		assertPrice(t, 99, prices[0].ClosePrice)

		assert.True(t, start.Add(time.Minute).Equal(prices[1].Timestamp))
		assertPrice(t, 101, prices[1].OpenPrice)
		assertPrice(t, 101, prices[1].ClosePrice)
	}
}

func TestConsolidateUpdatesLastCandle(t *testing.T) {
	f := NewPriceFeed(decimal.New(100, 0), time.Minute, time.Second)
	start := time.Date(2023, 1, 2, 9, 30, 0, 0, time.UTC)
	prices := []chartdata.PriceData{{
		Timestamp:  start,
		OpenPrice:  decimal.New(100, 0),
		HighPrice:  decimal.New(102, 0),
		LowPrice:   decimal.New(98, 0),
		ClosePrice: decimal.New(101, 0),
	}}
	f.AddTick(start.Add(20*time.Second), decimal.New(105, 0))

	prices, changed := f.Consolidate(prices)
	assert.True(t, changed)
	if assert.Len(t, prices, 1) {
		assertPrice(t, 100, prices[0].OpenPrice)
		assertPrice(t, 105, prices[0].HighPrice)
		assertPrice(t, 98, prices[0].LowPrice)
		assertPrice(t, 105, prices[0].ClosePrice)
	}
}

func TestConsolidateDropsOldTicks(t *testing.T) {
	f := NewPriceFeed(decimal.New(100, 0), time.Minute, time.Second)
	start := time.Date(2023, 1, 2, 9, 30, 0, 0, time.UTC)
	prices := []chartdata.PriceData{{
		Timestamp:  start,
		OpenPrice:  decimal.New(100, 0),
		HighPrice:  decimal.New(100, 0),
		LowPrice:   decimal.New(100, 0),
		ClosePrice: decimal.New(100, 0),
	}}
	f.AddTick(start.Add(-30*time.Second), decimal.New(50, 0))

	prices, changed := f.Consolidate(prices)
	assert.False(t, changed)
	assert.Len(t, prices, 1)
	assertPrice(t, 100, prices[0].LowPrice)
	assert.Equal(t, 0, f.PendingTicks())
}

func TestPriceFeedRun(t *testing.T) {
	f := NewPriceFeed(decimal.New(100, 0), time.Minute, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	ticked := make(chan struct{}, 1)
	done := make(chan struct{})
	go func() {
		f.Run(ctx, func() {
			select {
			case ticked <- struct{}{}:
			default:
			}
		})
		close(done)
	}()

	select {
	case <-ticked:
	case <-time.After(5 * time.Second):
		assert.Fail(t, "no tick received")
	}
	cancel()
	<-done

	prices, changed := f.Consolidate(nil)
	assert.True(t, changed)
	assert.NotEmpty(t, prices)
	assert.Positive(t, prices[len(prices)-1].ClosePrice.Sign())
}
