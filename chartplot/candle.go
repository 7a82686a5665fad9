// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartplot

import (
	"maycharts/chartval"
)

type FillPolicy int

const (
	// Hollow bodies are only outlined. Used for increasing and unchanged candles.
	FillHollow FillPolicy = iota
	// Filled bodies are used for decreasing candles.
	FillSolid
)

func CandleFillPolicy(open, close float32) FillPolicy {
	if open > close {
		return FillSolid
	}
	return FillHollow
}

// ShadowSegment is the vertical high/low line of a candle.
type ShadowSegment struct {
	X    float32
	High float32
	Low  float32
}

// BodyRect spans open and close price of a candle.
type BodyRect struct {
	Left  float32
	Open  float32
	Right float32
	Close float32
}

type CandleGeometry struct {
	Shadow ShadowSegment
	Body   BodyRect
	Fill   FillPolicy
}

// CandleBuffer is the scratch space used to transform candles. Use a single
// buffer for all entries of one draw pass, do not keep it beyond that pass.
type CandleBuffer struct {
	shadow [4]float32
	body   [4]float32
}

func (b *CandleBuffer) loadShadow(e chartval.CandleEntry) {
	x := float32(e.XIndex) + 0.5
	b.shadow[0] = x
	b.shadow[1] = e.High
	b.shadow[2] = x
	b.shadow[3] = e.Low
}

func (b *CandleBuffer) loadBody(e chartval.CandleEntry, bodySpace float32) {
	b.body[0] = float32(e.XIndex) + bodySpace
	b.body[1] = e.Close
	b.body[2] = float32(e.XIndex) + 1 - bodySpace
	b.body[3] = e.Open
}

func (b *CandleBuffer) geometry(e chartval.CandleEntry) CandleGeometry {
	return CandleGeometry{
		Shadow: ShadowSegment{X: b.shadow[0], High: b.shadow[1], Low: b.shadow[3]},
		Body:   BodyRect{Left: b.body[0], Close: b.body[1], Right: b.body[2], Open: b.body[3]},
		Fill:   CandleFillPolicy(e.Open, e.Close),
	}
}

// DataGeometry returns the candle shadow and body in data space.
func (b *CandleBuffer) DataGeometry(e chartval.CandleEntry, bodySpace float32) CandleGeometry {
	b.loadShadow(e)
	b.loadBody(e, bodySpace)
	return b.geometry(e)
}

// BuildCandleGeometry returns the candle shadow and body in pixels.
// The fill policy depends on the data values, not on the pixel positions.
func (b *CandleBuffer) BuildCandleGeometry(t *Transformer, e chartval.CandleEntry, bodySpace float32) CandleGeometry {
	b.loadShadow(e)
	b.loadBody(e, bodySpace)
	t.TransformPointArray(b.shadow[:])
	t.TransformPointArray(b.body[:])
	return b.geometry(e)
}
