// Copyright 2025 The Entroscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dilute

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/integrate/quad"
)

// quadrature settings for the virial integral; the integrand decays fast
// beyond the cutoff and the remainder is added analytically
const (
	virialCutoff = 8.0
	virialNodes  = 80
)

// SecondVirial computes the reduced Lennard-Jones second virial coefficient
// B*(T*) = B₂/σ³ by Gauss-Legendre quadrature
func SecondVirial(Tˢ float64) float64 {
	f := func(r float64) float64 {
		ri := 1.0 / r
		u := 4.0 * (math.Pow(ri, 12) - math.Pow(ri, 6))
		return (math.Exp(-u/Tˢ) - 1.0) * r * r
	}
	integ := quad.Fixed(f, 0, virialCutoff, virialNodes, nil, 0)
	tail := -(4.0 / Tˢ) * (math.Pow(virialCutoff, -9)/9.0 - math.Pow(virialCutoff, -3)/3.0)
	return -2.0 * math.Pi * (integ + tail)
}

// SecondVirialDeriv computes dB*/dT* by central differences
func SecondVirialDeriv(Tˢ float64) float64 {
	return fd.Derivative(SecondVirial, Tˢ, &fd.Settings{
		Formula: fd.Central,
		Step:    1e-5 * Tˢ,
	})
}

// EntropyVirial returns B* + T*·dB*/dT*, the combination governing the
// zero-density limit of the configurational entropy: sˢ → ϱN·σ³·(B*+T*·B*′)
func EntropyVirial(Tˢ float64) float64 {
	return SecondVirial(Tˢ) + Tˢ*SecondVirialDeriv(Tˢ)
}
