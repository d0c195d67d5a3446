// Copyright 2025 The Entroscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package framework

import (
	"math"

	"github.com/BookmarkSciencePrrojects/entroscale/transport"
)

// GenericScalingModel evaluates the rational correlation
//
//	Y(s) = (A + B·log1p(s) + C·s + D·s² + E·s³) / (1 + g1·log1p(s) + g2·s)
//
// where A..E are the rows of the coefficient matrix dotted with the
// composition weights x. log1p keeps the evaluation stable near s=0.
func GenericScalingModel(alpha [][]float64, g1, g2, s float64, x []float64) float64 {
	dot := func(row []float64) (r float64) {
		for i, xi := range x {
			r += row[i] * xi
		}
		return
	}
	l := math.Log1p(s)
	num := dot(alpha[0]) + dot(alpha[1])*l + dot(alpha[2])*s + dot(alpha[3])*s*s + dot(alpha[4])*s*s*s
	den := 1.0 + g1*l + g2*s
	return num / den
}

// ScalingModel evaluates the correlation of this parameter set at reduced
// entropy s. A nil x defaults to the single-component weight 1.
func (o *Params) ScalingModel(s float64, x []float64) float64 {
	if x == nil {
		x = []float64{1}
	}
	g1, g2 := transport.DenomConstants(o.Base.Prop)
	return GenericScalingModel(o.Alpha, g1, g2, s, x)
}
