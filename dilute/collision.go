// Copyright 2025 The Entroscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dilute implements the dilute-gas collaborators of the scaling
// framework: Lennard-Jones size/energy parameters, collision integrals, the
// second virial coefficient and the Chapman-Enskog plus-scaled properties
package dilute

import "math"

// Omega22 computes the reduced (2,2) collision integral using the correlation
// by Neufeld, Janzen and Aziz (1972)
func Omega22(Tˢ float64) float64 {
	return 1.16145*math.Pow(Tˢ, -0.14874) +
		0.52487*math.Exp(-0.77320*Tˢ) +
		2.16178*math.Exp(-2.43787*Tˢ)
}

// Omega11 computes the reduced (1,1) collision integral (Neufeld et al. 1972)
func Omega11(Tˢ float64) float64 {
	return 1.06036*math.Pow(Tˢ, -0.15610) +
		0.19300*math.Exp(-0.47635*Tˢ) +
		1.03587*math.Exp(-1.52996*Tˢ) +
		1.76474*math.Exp(-3.89411*Tˢ)
}
