// Copyright 2025 The Entroscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eos defines the equation-of-state collaborator consumed by the
// entropy-scaling framework and provides a Peng-Robinson implementation
package eos

// Model defines the thermodynamic surface required by the scaling framework.
// Densities are molar [mol/m³], temperatures [K], pressures [Pa] and entropies
// [J/(mol·K)]. Compositions are mole fractions.
type Model interface {

	// Len returns the number of components
	Len() int

	// Components returns the component names
	Components() []string

	// Mw returns the molar masses [kg/mol]
	Mw() []float64

	// SegmentNumber returns the dimensionless size descriptor used to
	// normalise the configurational entropy (1 for non-segment models)
	SegmentNumber() []float64

	// CritPure returns the critical temperature and pressure. It fails for
	// multicomponent models.
	CritPure() (Tc, pc float64, err error)

	// SplitPure returns one pure-component sub-model per component
	SplitPure() []Model

	// EntropyConf computes the configurational (residual) entropy at fixed
	// temperature and molar density
	EntropyConf(ϱ, T float64, z []float64) float64

	// MolarDensity solves for the molar density at given pressure and
	// temperature. The phase hint is "liquid", "gas" or "" (minimum residual
	// Gibbs energy root).
	MolarDensity(p, T float64, z []float64, phase string) (float64, error)
}
