// Copyright 2025 The Entroscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transport

import "github.com/cpmech/gosl/chk"

// BaseParam holds the property identity, molar masses and fit bookkeeping
// shared by one parameter set. It is owned exclusively by the parameter set
// that created it.
type BaseParam struct {
	Prop Kind      // property identity
	Mw   []float64 // molar masses [kg/mol], one per component
	Seg  []float64 // EOS segment numbers, one per component

	// fit bookkeeping
	Npts int     // number of fitted data points (0 when not fitted)
	AAD  float64 // average absolute relative deviation of the fit

	// literature references
	Refs []string
}

// NewBaseParam builds the shared base record
func NewBaseParam(prop Kind, mw, seg []float64, refs []string) (*BaseParam, error) {
	if len(mw) != len(seg) {
		return nil, chk.Err("base parameter: Mw and segment vectors must have equal length (%d vs %d)", len(mw), len(seg))
	}
	return &BaseParam{Prop: prop, Mw: mw, Seg: seg, Refs: refs}, nil
}

// ReducedEntropy converts a configurational entropy [J/(mol·K)] into the
// dimensionless reduced entropy sˢ = -s / (R·Σ mᵢzᵢ). Stable states have
// s ≤ 0, hence sˢ ≥ 0.
func (o *BaseParam) ReducedEntropy(s float64, z []float64) float64 {
	var mz float64
	for i, zi := range z {
		mz += o.Seg[i] * zi
	}
	return -s / (Rgas * mz)
}

// MixMw returns the mole-average molar mass
func (o *BaseParam) MixMw(z []float64) float64 {
	var m float64
	for i, zi := range z {
		m += o.Mw[i] * zi
	}
	return m
}

// Clone returns a deep copy (used by the binary-diffusion merge)
func (o *BaseParam) Clone() *BaseParam {
	c := &BaseParam{Prop: o.Prop, Npts: o.Npts, AAD: o.AAD}
	c.Mw = append([]float64(nil), o.Mw...)
	c.Seg = append([]float64(nil), o.Seg...)
	c.Refs = append([]string(nil), o.Refs...)
	return c
}
