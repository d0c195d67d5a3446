// Copyright 2025 The Entroscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package transport defines transport-property kinds, the shared parameter
// base, the plus-scaling reduction and experimental data tables used by the
// entropy-scaling framework
package transport

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// physical constants (CODATA 2018)
const (
	KB   = 1.380649e-23     // Boltzmann constant [J/K]
	NA   = 6.02214076e23    // Avogadro number [1/mol]
	Rgas = KB * NA          // gas constant [J/(mol·K)]
)

// Kind identifies a transport property
type Kind int

const (
	Viscosity Kind = iota
	ThermalConductivity
	SelfDiffusion
	InfDiffusion // diffusion at infinite dilution (solvent+solute pair property)
	MaxwellStefan
)

// String returns the property name
func (o Kind) String() string {
	switch o {
	case Viscosity:
		return "viscosity"
	case ThermalConductivity:
		return "thermal_conductivity"
	case SelfDiffusion:
		return "self_diffusion"
	case InfDiffusion:
		return "inf_diffusion"
	case MaxwellStefan:
		return "maxwell_stefan"
	}
	return "unknown"
}

// IsDiffusion tells whether this kind belongs to the diffusion family
func (o Kind) IsDiffusion() bool {
	return o == SelfDiffusion || o == InfDiffusion || o == MaxwellStefan
}

// UsesLog tells whether the correlation operates on the logarithm of the
// reduced property (all families except thermal conductivity)
func (o Kind) UsesLog() bool {
	return o != ThermalConductivity
}

// DefaultA0 returns the standard initial value of the constant coefficient
// row: 1 for thermal conductivity, 0 otherwise
func (o Kind) DefaultA0() float64 {
	if o == ThermalConductivity {
		return 1.0
	}
	return 0.0
}

// DenomConstants returns the universal denominator constants (g1, g2) of the
// correlation for this property family. These are empirical constants, not
// fitted per substance.
func DenomConstants(kind Kind) (g1, g2 float64) {
	switch kind {
	case Viscosity:
		return -1.6386, 1.3923
	case ThermalConductivity:
		return -1.9107, 1.0725
	}
	return 0.6632, 9.4714 // diffusion family
}

// FitOrder returns the fittable kinds in fitting order
func FitOrder() []Kind {
	return []Kind{Viscosity, ThermalConductivity, SelfDiffusion, InfDiffusion}
}

// KindFromString parses a property name
func KindFromString(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "viscosity":
		return Viscosity, nil
	case "thermal_conductivity", "thermal-conductivity", "thermalconductivity":
		return ThermalConductivity, nil
	case "self_diffusion", "self-diffusion", "selfdiffusion":
		return SelfDiffusion, nil
	case "inf_diffusion", "inf-diffusion", "infdiffusion":
		return InfDiffusion, nil
	case "maxwell_stefan", "maxwell-stefan", "maxwellstefan":
		return MaxwellStefan, nil
	}
	return 0, chk.Err("unknown transport property %q", name)
}
