// Copyright 2025 The Entroscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package framework

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/BookmarkSciencePrrojects/entroscale/dilute"
	"github.com/BookmarkSciencePrrojects/entroscale/transport"
)

// blendWeight is the logistic crossover between the dilute-gas reference and
// the minimum-curve reference, centred at sˢ=0.5
func blendWeight(sˢ float64) float64 {
	return 1.0 / (1.0 + math.Exp(20.0*(sˢ-0.5)))
}

// ScalingProperty converts a physical property value Y into its entropy-scaled
// dimensionless form (inv=false), or back (inv=true), at the state point
// (T, ϱ, s) with composition z. Forward and inverse are exact mutual inverses
// at the same state point.
func (o *Params) ScalingProperty(Y, T, ϱ, s float64, z []float64, inv bool) (float64, error) {
	n := len(o.Sig)
	if z == nil {
		z = []float64{1}
	}
	if len(z) != n {
		return 0, chk.Err("parameter set %q: composition has %d entries for %d components", o.Base.Prop.String(), len(z), n)
	}

	// dilute-gas reference
	var y0p float64
	switch {
	case o.Base.Prop == transport.InfDiffusion:
		mw1, mw2 := o.pairMw()
		y0p = dilute.BinaryCEPlus(T, o.Sig[0], o.Eps[0], mw1, mw2)
	case n == 1:
		y0p = o.ceplusAt(T, 0)
	default:
		vals := make([]float64, n)
		for i := range vals {
			vals[i] = o.ceplusAt(T, i)
		}
		y0p = dilute.MixCE(vals, z)
	}

	// minimum-curve reference
	y0min := o.Y0Min[0]
	if n > 1 {
		y0min = dilute.MixCE(o.Y0Min, z)
	}

	// blended reference scale
	sˢ := o.Base.ReducedEntropy(s, z)
	W := blendWeight(sˢ)
	ref := W/y0p + (1.0-W)/y0min

	k := 1.0
	if inv {
		k = -1.0
	}
	res := math.Pow(ref, k) * transport.PlusScaling(o.Base, Y, T, ϱ, s, z, inv)
	if math.IsNaN(res) {
		return 0, chk.Err("parameter set %q: scaling undefined at T=%g K, ϱ=%g mol/m³, s=%g", o.Base.Prop.String(), T, ϱ, s)
	}
	return res, nil
}
