// Copyright 2025 The Entroscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transport

import "math"

// PlusScaling converts a physical transport property into its dimensionless
// plus-scaled form (inv=false), or back (inv=true). The entropy-modified
// reduction keeps the dilute-gas limit finite:
//
//	viscosity              Y⁺ = Y · sˢ^(2/3) / (ϱN^(2/3)·√(m̄·kB·T))
//	thermal conductivity   Y⁺ = Y · sˢ^(2/3) / (ϱN^(2/3)·kB·√(kB·T/m̄))
//	diffusion family       Y⁺ = Y · sˢ^(2/3) · ϱN^(1/3) / √(kB·T/m̄)
//
// with ϱN the number density and m̄ the mole-average molecular mass.
func PlusScaling(base *BaseParam, Y, T, ϱ, s float64, z []float64, inv bool) float64 {
	sˢ := base.ReducedEntropy(s, z)
	m := base.MixMw(z) / NA
	ϱN := ϱ * NA
	var fac float64
	switch base.Prop {
	case Viscosity:
		fac = math.Pow(sˢ, 2.0/3.0) / (math.Pow(ϱN, 2.0/3.0) * math.Sqrt(m*KB*T))
	case ThermalConductivity:
		fac = math.Pow(sˢ, 2.0/3.0) / (math.Pow(ϱN, 2.0/3.0) * KB * math.Sqrt(KB*T/m))
	default:
		fac = math.Pow(sˢ, 2.0/3.0) * math.Pow(ϱN, 1.0/3.0) / math.Sqrt(KB*T/m)
	}
	if inv {
		return Y / fac
	}
	return Y * fac
}
