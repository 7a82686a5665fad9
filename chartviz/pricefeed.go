// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartviz

import (
	"context"
	"maycharts/chartdata"
	"math/rand"
	"time"

	"github.com/ericlagergren/decimal"
	"github.com/zhangyunhao116/skipmap"
)

// PriceFeed simulates a realtime trade source. Ticks are kept ordered by
// timestamp until they are folded into candles.
type PriceFeed struct {
	ticks      *skipmap.Int64Map[*decimal.Big]
	resolution time.Duration
	interval   time.Duration
	rand       *rand.Rand
	last       *decimal.Big
}

func NewPriceFeed(start *decimal.Big, resolution time.Duration, interval time.Duration) *PriceFeed {
	return &PriceFeed{
		ticks:      skipmap.NewInt64[*decimal.Big](),
		resolution: resolution,
		interval:   interval,
		rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
		last:       new(decimal.Big).Copy(start),
	}
}

// AddTick stores a trade price. The order of ticks does not matter.
func (f *PriceFeed) AddTick(timestamp time.Time, price *decimal.Big) {
	f.ticks.Store(timestamp.UnixMilli(), price)
}

func (f *PriceFeed) PendingTicks() int {
	return f.ticks.Len()
}

// Run generates random walk ticks until the context is done.
// invalidate is called after each tick.
func (f *PriceFeed) Run(ctx context.Context, invalidate func()) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			f.AddTick(t, f.nextPrice())
			invalidate()
		}
	}
}

func (f *PriceFeed) nextPrice() *decimal.Big {
	delta := decimal.New(int64(f.rand.Intn(21)-10), 2)
	f.last = new(decimal.Big).Add(f.last, delta)
	if f.last.Sign() <= 0 {
		f.last = decimal.New(1, 2)
	}
	return new(decimal.Big).Copy(f.last)
}

// Consolidate removes all pending ticks and merges them into prices, which
// need to be ordered by time. A tick updates the last candle if it is within
// the candle's time slot and starts a new candle if it is later.
// Ticks older than the last candle are dropped.
func (f *PriceFeed) Consolidate(prices []chartdata.PriceData) ([]chartdata.PriceData, bool) {
	var changed bool
	f.ticks.Range(
		func(ms int64, price *decimal.Big) bool {
			f.ticks.Delete(ms)
			slot := time.UnixMilli(ms).UTC().Truncate(f.resolution)
			n := len(prices)
			switch {
			case n > 0 && slot.Before(prices[n-1].Timestamp):
				return true
			case n > 0 && slot.Equal(prices[n-1].Timestamp):
				prices[n-1] = updateCandle(prices[n-1], price)
			default:
				prices = append(prices, chartdata.PriceData{
					Timestamp:  slot,
					OpenPrice:  price,
					HighPrice:  price,
					LowPrice:   price,
					ClosePrice: price,
				})
			}
			changed = true
			return true
		})
	return prices, changed
}

func updateCandle(p chartdata.PriceData, price *decimal.Big) chartdata.PriceData {
	if p.HighPrice == nil || price.Cmp(p.HighPrice) > 0 {
		p.HighPrice = price
	}
	if p.LowPrice == nil || price.Cmp(p.LowPrice) < 0 {
		p.LowPrice = price
	}
	if p.OpenPrice == nil {
		p.OpenPrice = price
	}
	p.ClosePrice = price
	return p
}
