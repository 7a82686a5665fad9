// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

import (
	"math"

	"golang.org/x/exp/constraints"
)

const NearZero = 0.000001

func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MaxModulus is returned if there is no room for labels at all.
const MaxModulus = math.MaxInt32

// ComputeModulus returns the label skip interval so that labels of the given
// extent do not overlap within the (scaled) content extent. The result is at
// least 1.
func ComputeModulus(categoryCount int, labelExtent, contentExtent, scale float32) int {
	needed := float64(categoryCount) * float64(labelExtent)
	if needed <= 0 || math.IsNaN(needed) {
		return 1
	}
	available := float64(contentExtent) * float64(scale)
	if available <= 0 || math.IsNaN(available) {
		return MaxModulus
	}
	m := math.Ceil(needed / available)
	if m >= MaxModulus || math.IsInf(m, 1) {
		return MaxModulus
	}
	return max(int(m), 1)
}

// FloorInt rounds towards negative infinity, a plain int conversion truncates towards zero.
func FloorInt(v float32) int {
	return int(math.Floor(float64(v)))
}

// RoundInt rounds half up, e.g. -0.5 becomes 0.
func RoundInt(v float32) int {
	return int(math.Floor(float64(v) + 0.5))
}
