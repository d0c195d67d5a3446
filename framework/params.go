// Copyright 2025 The Entroscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package framework implements the entropy-scaling correlation model: per
// property parameter sets bound to an EOS, the scaling correlation, the
// reduced-property mapper, the fitting driver and the binary-diffusion merge
package framework

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/BookmarkSciencePrrojects/entroscale/dilute"
	"github.com/BookmarkSciencePrrojects/entroscale/eos"
	"github.com/BookmarkSciencePrrojects/entroscale/transport"
)

// number of coefficient rows: constant, log-term and three ascending powers
// of the reduced entropy
const nAlphaRows = 5

// Params holds the correlation coefficients of one transport property for all
// components of an EOS, plus the derived dilute-gas reference constants
type Params struct {
	Alpha [][]float64 // coefficient matrix, 5 rows × ncomp columns
	Sig   []float64   // dilute-gas size scales σ [m]
	Eps   []float64   // dilute-gas energy scales ε [J]
	Y0Min []float64   // minima of the dilute-gas reduced property curves
	Base  *transport.BaseParam

	// solute molar mass for infinite-dilution sets built from a pure solvent
	// EOS plus a separate solute model (0 otherwise)
	soluteMw float64
}

// NewParams builds a parameter set from known coefficients. The matrix must
// have exactly 5 rows and one column per EOS component. An optional solute
// model extends infinite-dilution sets.
func NewParams(kind transport.Kind, m eos.Model, alpha [][]float64, solute eos.Model, refs []string) (*Params, error) {
	if len(alpha) != nAlphaRows {
		return nil, chk.Err("parameter set %q: coefficient matrix must have %d rows, got %d", kind.String(), nAlphaRows, len(alpha))
	}
	ncomp := m.Len()
	for i, row := range alpha {
		if len(row) != ncomp {
			return nil, chk.Err("parameter set %q: coefficient row %d has %d columns for %d components", kind.String(), i+1, len(row), ncomp)
		}
	}
	o, err := newSkeleton(kind, m, solute, refs)
	if err != nil {
		return nil, err
	}
	for i := 0; i < nAlphaRows; i++ {
		copy(o.Alpha[i], alpha[i])
	}
	return o, nil
}

// newSkeleton builds an empty-coefficient parameter set and runs the
// dilute-gas reference initialiser
func newSkeleton(kind transport.Kind, m eos.Model, solute eos.Model, refs []string) (*Params, error) {
	ncomp := m.Len()
	base, err := transport.NewBaseParam(kind, append([]float64(nil), m.Mw()...), append([]float64(nil), m.SegmentNumber()...), refs)
	if err != nil {
		return nil, err
	}
	o := &Params{
		Alpha: utl.Alloc(nAlphaRows, ncomp),
		Sig:   make([]float64, ncomp),
		Eps:   make([]float64, ncomp),
		Y0Min: make([]float64, ncomp),
		Base:  base,
	}
	if err := o.initDiluteRefs(m, solute); err != nil {
		return nil, err
	}
	return o, nil
}

// initDiluteRefs computes the size/energy scales and the dilute-gas curve
// minima for all components
func (o *Params) initDiluteRefs(m eos.Model, solute eos.Model) error {

	// pure sub-models, solute appended
	pures := m.SplitPure()
	if solute != nil {
		if solute.Len() != 1 {
			return chk.Err("parameter set %q: solute EOS must be pure, got %d components", o.Base.Prop.String(), solute.Len())
		}
		pures = append(pures, solute)
		o.soluteMw = solute.Mw()[0]
	}

	// size/energy scale per component
	n := len(pures)
	σ := make([]float64, n)
	ε := make([]float64, n)
	Tc := make([]float64, n)
	for i, pure := range pures {
		tci, pci, err := pure.CritPure()
		if err != nil {
			return err
		}
		Tc[i] = tci
		σ[i], ε[i] = dilute.ComponentLJ(pure.Components()[0], tci, pci)
	}

	// infinite dilution is a pair property: exactly solvent+solute, with the
	// arithmetic-mean size and geometric-mean energy broadcast everywhere
	if o.Base.Prop == transport.InfDiffusion {
		if n != 2 {
			return chk.Err("infinite-dilution diffusion requires exactly a solvent+solute pair, got %d components", n)
		}
		σp := 0.5 * (σ[0] + σ[1])
		εp := math.Sqrt(ε[0] * ε[1])
		for i := range σ {
			σ[i], ε[i] = σp, εp
		}
	}

	// stored scales cover the EOS components only
	ncomp := len(o.Sig)
	copy(o.Sig, σ[:ncomp])
	copy(o.Eps, ε[:ncomp])

	// minimum of the dilute-gas reduced property curve, solved per component
	// over ln T seeded at twice the critical temperature
	for i := 0; i < ncomp; i++ {
		obj := func(u float64) float64 {
			return o.ceplusAt(math.Exp(u), i)
		}
		_, fmin, err := minimizeScalar(obj, math.Log(2.0*Tc[i]))
		if err != nil {
			return chk.Err("parameter set %q: dilute-gas minimum search failed for component %d: %v", o.Base.Prop.String(), i, err)
		}
		o.Y0Min[i] = fmin
	}
	return nil
}

// ceplusAt evaluates the dilute-gas plus-scaled property for column i
func (o *Params) ceplusAt(T float64, i int) float64 {
	if o.Base.Prop == transport.InfDiffusion {
		mw1, mw2 := o.pairMw()
		return dilute.BinaryCEPlus(T, o.Sig[i], o.Eps[i], mw1, mw2)
	}
	return dilute.PropertyCEPlus(o.Base.Prop, T, o.Sig[i], o.Eps[i], o.Base.Mw[i])
}

// pairMw returns the solvent and solute molar masses of an infinite-dilution set
func (o *Params) pairMw() (mw1, mw2 float64) {
	mw1 = o.Base.Mw[0]
	if o.soluteMw > 0 {
		return mw1, o.soluteMw
	}
	return mw1, o.Base.Mw[1]
}

// Clone returns a deep copy of the parameter set
func (o *Params) Clone() *Params {
	c := &Params{
		Alpha:    utl.Alloc(nAlphaRows, len(o.Sig)),
		Sig:      append([]float64(nil), o.Sig...),
		Eps:      append([]float64(nil), o.Eps...),
		Y0Min:    append([]float64(nil), o.Y0Min...),
		Base:     o.Base.Clone(),
		soluteMw: o.soluteMw,
	}
	for i := range o.Alpha {
		copy(c.Alpha[i], o.Alpha[i])
	}
	return c
}
