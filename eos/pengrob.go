// Copyright 2025 The Entroscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// gas constant [J/(mol·K)]
const rgas = 8.31446261815324

const sqrt2 = 1.4142135623730951

// PengRobinson implements the Peng-Robinson (1976) cubic equation of state
// with one-fluid van der Waals mixing and zero binary interaction parameters
type PengRobinson struct {

	// component data
	names []string
	tc    []float64 // critical temperatures
	pc    []float64 // critical pressures
	w     []float64 // acentric factors
	mw    []float64 // molar masses

	// derived constants
	a0    []float64 // attraction at Tc
	b     []float64 // covolume
	kappa []float64 // alpha-function slope
}

// NewPengRobinson returns an empty model; components are added with AddComponent
func NewPengRobinson() *PengRobinson {
	return new(PengRobinson)
}

// AddComponent appends one component given its name and parameters.
// Recognised parameters: "Tc" [K], "Pc" [Pa], "omega" [-], "Mw" [kg/mol].
func (o *PengRobinson) AddComponent(name string, prms dbf.Params) error {
	var tc, pc, w, mw float64
	for _, p := range prms {
		switch p.N {
		case "Tc":
			tc = p.V
		case "Pc":
			pc = p.V
		case "omega":
			w = p.V
		case "Mw":
			mw = p.V
		default:
			return chk.Err("peng-robinson: parameter named %q is incorrect", p.N)
		}
	}
	if tc <= 0 || pc <= 0 || mw <= 0 {
		return chk.Err("peng-robinson: component %q needs positive 'Tc', 'Pc' and 'Mw'", name)
	}
	o.names = append(o.names, name)
	o.tc = append(o.tc, tc)
	o.pc = append(o.pc, pc)
	o.w = append(o.w, w)
	o.mw = append(o.mw, mw)
	o.a0 = append(o.a0, 0.45724*rgas*rgas*tc*tc/pc)
	o.b = append(o.b, 0.07780*rgas*tc/pc)
	o.kappa = append(o.kappa, 0.37464+1.54226*w-0.26992*w*w)
	return nil
}

// Len returns the number of components
func (o *PengRobinson) Len() int { return len(o.names) }

// Components returns the component names
func (o *PengRobinson) Components() []string { return o.names }

// Mw returns the molar masses [kg/mol]
func (o *PengRobinson) Mw() []float64 { return o.mw }

// SegmentNumber returns 1 per component; PR is not a segment model
func (o *PengRobinson) SegmentNumber() []float64 {
	m := make([]float64, len(o.names))
	for i := range m {
		m[i] = 1.0
	}
	return m
}

// CritPure returns the critical point of a pure model
func (o *PengRobinson) CritPure() (Tc, pc float64, err error) {
	if len(o.names) != 1 {
		return 0, 0, chk.Err("peng-robinson: CritPure requires a pure model; this one has %d components", len(o.names))
	}
	return o.tc[0], o.pc[0], nil
}

// SplitPure returns one pure sub-model per component
func (o *PengRobinson) SplitPure() []Model {
	res := make([]Model, len(o.names))
	for i := range o.names {
		pure := NewPengRobinson()
		pure.names = []string{o.names[i]}
		pure.tc = []float64{o.tc[i]}
		pure.pc = []float64{o.pc[i]}
		pure.w = []float64{o.w[i]}
		pure.mw = []float64{o.mw[i]}
		pure.a0 = []float64{o.a0[i]}
		pure.b = []float64{o.b[i]}
		pure.kappa = []float64{o.kappa[i]}
		res[i] = pure
	}
	return res
}

// aPure computes a_i(T)
func (o *PengRobinson) aPure(i int, T float64) float64 {
	al := 1.0 + o.kappa[i]*(1.0-math.Sqrt(T/o.tc[i]))
	return o.a0[i] * al * al
}

// daPure computes da_i/dT
func (o *PengRobinson) daPure(i int, T float64) float64 {
	sq := math.Sqrt(T / o.tc[i])
	return -o.a0[i] * o.kappa[i] * (1.0 + o.kappa[i]*(1.0-sq)) / (sq * o.tc[i])
}

// mix computes the one-fluid mixture a(T), da/dT and b for composition z
func (o *PengRobinson) mix(T float64, z []float64) (am, damdT, bm float64) {
	n := len(o.names)
	a := make([]float64, n)
	da := make([]float64, n)
	for i := 0; i < n; i++ {
		a[i] = o.aPure(i, T)
		da[i] = o.daPure(i, T)
		bm += z[i] * o.b[i]
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				am += z[i] * z[j] * a[i]
				damdT += z[i] * z[j] * da[i]
				continue
			}
			aij := math.Sqrt(a[i] * a[j])
			am += z[i] * z[j] * aij
			damdT += z[i] * z[j] * (da[i]*a[j] + a[i]*da[j]) / (2.0 * aij)
		}
	}
	return
}

// EntropyConf computes the residual entropy at fixed (T, ϱ) [J/(mol·K)]
func (o *PengRobinson) EntropyConf(ϱ, T float64, z []float64) float64 {
	_, damdT, bm := o.mix(T, z)
	v := 1.0 / ϱ
	L := math.Log((v + (1.0+sqrt2)*bm) / (v + (1.0-sqrt2)*bm))
	return rgas*math.Log(1.0-bm/v) + damdT/(2.0*sqrt2*bm)*L
}

// MolarDensity solves the cubic for the compressibility factor and returns the
// molar density of the requested phase
func (o *PengRobinson) MolarDensity(p, T float64, z []float64, phase string) (float64, error) {
	am, _, bm := o.mix(T, z)
	rt := rgas * T
	A := am * p / (rt * rt)
	B := bm * p / rt
	roots := cubicRealRoots(-(1.0 - B), A-3.0*B*B-2.0*B, -(A*B - B*B - B*B*B))
	var real []float64
	for _, zr := range roots {
		if zr > B {
			real = append(real, zr)
		}
	}
	if len(real) == 0 {
		return 0, chk.Err("peng-robinson: no physical root at p=%g Pa, T=%g K", p, T)
	}
	var Z float64
	switch {
	case phase == "liquid":
		Z = real[0]
	case phase == "gas" || phase == "vapor":
		Z = real[len(real)-1]
	case len(real) == 1:
		Z = real[0]
	default:
		// minimum residual Gibbs energy
		Z = real[0]
		gmin := o.gibbsRes(real[0], A, B)
		for _, zr := range real[1:] {
			if g := o.gibbsRes(zr, A, B); g < gmin {
				Z, gmin = zr, g
			}
		}
	}
	return p / (Z * rgas * T), nil
}

func (o *PengRobinson) gibbsRes(Z, A, B float64) float64 {
	return Z - 1.0 - math.Log(Z-B) - A/(2.0*sqrt2*B)*math.Log((Z+(1.0+sqrt2)*B)/(Z+(1.0-sqrt2)*B))
}
