// Copyright 2025 The Entroscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package framework

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/BookmarkSciencePrrojects/entroscale/transport"
)

// composition resolves a possibly-nil composition vector
func (o *Model) composition(z []float64) ([]float64, error) {
	n := o.Eos.Len()
	if z == nil {
		if n != 1 {
			return nil, chk.Err("composition required for a %d-component model", n)
		}
		return []float64{1}, nil
	}
	if len(z) != n {
		return nil, chk.Err("composition has %d entries for %d components", len(z), n)
	}
	return z, nil
}

// evaluate computes the physical property from a parameter set at (ϱ, T, z)
func (o *Model) evaluate(ps *Params, ϱ, T float64, z []float64) (float64, error) {
	s := o.Eos.EntropyConf(ϱ, T, z)
	sˢ := ps.Base.ReducedEntropy(s, z)
	y := ps.ScalingModel(sˢ, z)
	if ps.Base.Prop.UsesLog() {
		y = math.Exp(y)
	}
	return ps.ScalingProperty(y, T, ϱ, s, z, true)
}

// scalarAtRho is the shared density-based entry point for scalar properties
func (o *Model) scalarAtRho(kind transport.Kind, ϱ, T float64, z []float64) (float64, error) {
	z, err := o.composition(z)
	if err != nil {
		return 0, err
	}
	ps := o.ParamsFor(kind)
	if ps == nil {
		return 0, chk.Err("model has no %q parameter set", kind.String())
	}
	return o.evaluate(ps, ϱ, T, z)
}

// scalarAtP resolves the density from pressure first
func (o *Model) scalarAtP(kind transport.Kind, p, T float64, z []float64, phase string) (float64, error) {
	zz, err := o.composition(z)
	if err != nil {
		return 0, err
	}
	ϱ, err := o.Eos.MolarDensity(p, T, zz, phase)
	if err != nil {
		return 0, err
	}
	return o.scalarAtRho(kind, ϱ, T, zz)
}

// Viscosity predicts the dynamic viscosity [Pa·s] at pressure p [Pa] and
// temperature T [K]. The phase hint is passed to the EOS density solver.
func (o *Model) Viscosity(p, T float64, z []float64, phase string) (float64, error) {
	return o.scalarAtP(transport.Viscosity, p, T, z, phase)
}

// ViscosityRho predicts the dynamic viscosity [Pa·s] at molar density ϱ [mol/m³]
func (o *Model) ViscosityRho(ϱ, T float64, z []float64) (float64, error) {
	return o.scalarAtRho(transport.Viscosity, ϱ, T, z)
}

// ThermalConductivity predicts the thermal conductivity [W/(m·K)] at (p, T)
func (o *Model) ThermalConductivity(p, T float64, z []float64, phase string) (float64, error) {
	return o.scalarAtP(transport.ThermalConductivity, p, T, z, phase)
}

// ThermalConductivityRho predicts the thermal conductivity [W/(m·K)] at (ϱ, T)
func (o *Model) ThermalConductivityRho(ϱ, T float64, z []float64) (float64, error) {
	return o.scalarAtRho(transport.ThermalConductivity, ϱ, T, z)
}

// SelfDiffusion predicts the self-diffusion coefficients [m²/s] at (p, T),
// one per component
func (o *Model) SelfDiffusion(p, T float64, z []float64, phase string) ([]float64, error) {
	zz, err := o.composition(z)
	if err != nil {
		return nil, err
	}
	ϱ, err := o.Eos.MolarDensity(p, T, zz, phase)
	if err != nil {
		return nil, err
	}
	return o.SelfDiffusionRho(ϱ, T, zz)
}

// SelfDiffusionRho predicts the self-diffusion coefficients [m²/s] at (ϱ, T).
// In mixtures each component uses a hybrid of the self-diffusion set (own
// column) and the infinite-dilution set (all other columns).
func (o *Model) SelfDiffusionRho(ϱ, T float64, z []float64) ([]float64, error) {
	z, err := o.composition(z)
	if err != nil {
		return nil, err
	}
	n := o.Eos.Len()
	if n == 1 {
		d, err := o.scalarAtRho(transport.SelfDiffusion, ϱ, T, z)
		if err != nil {
			return nil, err
		}
		return []float64{d}, nil
	}
	self := o.ParamsFor(transport.SelfDiffusion)
	if self == nil {
		return nil, chk.Err("model has no %q parameter set", transport.SelfDiffusion.String())
	}
	inf := o.ParamsFor(transport.InfDiffusion)
	if inf == nil {
		return nil, chk.Err("mixture self-diffusion needs an %q parameter set", transport.InfDiffusion.String())
	}
	res := make([]float64, n)
	for i := 0; i < n; i++ {
		hyb := self.MergeInfDilution(inf, i)
		d, err := o.evaluate(hyb, ϱ, T, z)
		if err != nil {
			return nil, err
		}
		res[i] = d
	}
	return res, nil
}

// MSDiffusion predicts the binary Maxwell-Stefan diffusion coefficient [m²/s]
// at (p, T) through the infinite-dilution parameter set
func (o *Model) MSDiffusion(p, T float64, z []float64, phase string) (float64, error) {
	zz, err := o.composition(z)
	if err != nil {
		return 0, err
	}
	ϱ, err := o.Eos.MolarDensity(p, T, zz, phase)
	if err != nil {
		return 0, err
	}
	return o.MSDiffusionRho(ϱ, T, zz)
}

// MSDiffusionRho predicts the binary Maxwell-Stefan diffusion coefficient at (ϱ, T)
func (o *Model) MSDiffusionRho(ϱ, T float64, z []float64) (float64, error) {
	if o.Eos.Len() != 2 {
		return 0, chk.Err("Maxwell-Stefan diffusion requires a binary model, got %d components", o.Eos.Len())
	}
	return o.scalarAtRho(transport.InfDiffusion, ϱ, T, z)
}
