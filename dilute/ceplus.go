// Copyright 2025 The Entroscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dilute

import (
	"math"

	"github.com/BookmarkSciencePrrojects/entroscale/transport"
)

// PropertyCEPlus computes the dilute-gas limit of the plus-scaled transport
// property at temperature T for one component with Lennard-Jones parameters
// (σ, ε) and molar mass M. The Chapman-Enskog property is combined with the
// zero-density limit of the entropy factor, leaving a finite, temperature-only
// reference value Y₀⁺(T).
func PropertyCEPlus(kind transport.Kind, T, σ, ε, M float64) float64 {
	Tˢ := T * transport.KB / ε
	m := M / transport.NA
	f := σ * σ * σ * EntropyVirial(Tˢ)
	if f <= 0 {
		return math.NaN()
	}
	f23 := math.Pow(f, 2.0/3.0)
	switch kind {
	case transport.Viscosity:
		y0 := 5.0 / 16.0 * math.Sqrt(m*transport.KB*T/math.Pi) / (σ * σ * Omega22(Tˢ))
		return y0 * f23 / math.Sqrt(m*transport.KB*T)
	case transport.ThermalConductivity:
		y0 := 75.0 / 64.0 * transport.KB * math.Sqrt(transport.KB*T/(math.Pi*m)) / (σ * σ * Omega22(Tˢ))
		return y0 * f23 / (transport.KB * math.Sqrt(transport.KB*T/m))
	}
	// self-diffusion: reduced mass m/2
	μ := m / 2.0
	rd := 3.0 / 16.0 * math.Sqrt(2.0*math.Pi*transport.KB*T/μ) / (math.Pi * σ * σ * Omega11(Tˢ))
	return rd * f23 / math.Sqrt(transport.KB*T/m)
}

// BinaryCEPlus computes the dilute-gas limit of the plus-scaled binary
// (Maxwell-Stefan / infinite-dilution) diffusion coefficient for a
// solvent-solute pair with combined parameters (σ, ε) and molar masses
// (M1 solvent, M2 solute)
func BinaryCEPlus(T, σ, ε, M1, M2 float64) float64 {
	Tˢ := T * transport.KB / ε
	m1 := M1 / transport.NA
	m2 := M2 / transport.NA
	f := σ * σ * σ * EntropyVirial(Tˢ)
	if f <= 0 {
		return math.NaN()
	}
	f23 := math.Pow(f, 2.0/3.0)
	μ := m1 * m2 / (m1 + m2)
	rd := 3.0 / 16.0 * math.Sqrt(2.0*math.Pi*transport.KB*T/μ) / (math.Pi * σ * σ * Omega11(Tˢ))
	return rd * f23 / math.Sqrt(transport.KB*T/m1)
}

// MixCE mixes per-component dilute-gas values by mole fraction
func MixCE(vals, z []float64) float64 {
	var res float64
	for i, v := range vals {
		res += z[i] * v
	}
	return res
}
