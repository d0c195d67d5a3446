// Copyright 2025 The Entroscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import "math"

// cubicRealRoots solves x³ + b·x² + c·x + d = 0 and returns the real roots in
// ascending order, using the trigonometric method for the three-root case
func cubicRealRoots(b, c, d float64) []float64 {
	p := c - b*b/3.0
	q := 2.0*b*b*b/27.0 - b*c/3.0 + d
	disc := (q/2.0)*(q/2.0) + (p/3.0)*(p/3.0)*(p/3.0)
	if disc > 0 {
		sq := math.Sqrt(disc)
		u := math.Copysign(math.Pow(math.Abs(-q/2.0+sq), 1.0/3.0), -q/2.0+sq)
		v := math.Copysign(math.Pow(math.Abs(-q/2.0-sq), 1.0/3.0), -q/2.0-sq)
		return []float64{u + v - b/3.0}
	}
	r := math.Sqrt(-(p * p * p) / 27.0)
	arg := -q / (2.0 * r)
	if arg > 1 {
		arg = 1
	} else if arg < -1 {
		arg = -1
	}
	φ := math.Acos(arg)
	m := 2.0 * math.Sqrt(-p/3.0)
	roots := []float64{
		m*math.Cos(φ/3.0) - b/3.0,
		m*math.Cos((φ+2.0*math.Pi)/3.0) - b/3.0,
		m*math.Cos((φ+4.0*math.Pi)/3.0) - b/3.0,
	}
	sort3(roots)
	return roots
}

func sort3(x []float64) {
	if x[0] > x[1] {
		x[0], x[1] = x[1], x[0]
	}
	if x[1] > x[2] {
		x[1], x[2] = x[2], x[1]
	}
	if x[0] > x[1] {
		x[0], x[1] = x[1], x[0]
	}
}
