// Copyright 2025 The Entroscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transport

import (
	"github.com/cpmech/gosl/chk"

	"github.com/BookmarkSciencePrrojects/entroscale/eos"
)

// Data is a flat table of experimental transport-property points for one
// property, one phase and one literature source. Either P or Rho is given;
// the missing one is resolved from the EOS before fitting.
type Data struct {
	Prop  Kind
	T     []float64 // temperatures [K]
	P     []float64 // pressures [Pa]; nil when densities are given
	Rho   []float64 // molar densities [mol/m³]; nil when pressures are given
	Y     []float64 // property values [SI]
	Phase string    // phase hint for the density solver ("liquid", "gas", "")
	Ref   string    // literature reference
}

// NewData assembles a dataset, validating the table shape
func NewData(prop Kind, T, P, Rho, Y []float64, phase, ref string) (*Data, error) {
	n := len(T)
	if n == 0 {
		return nil, chk.Err("dataset %q: no data points", prop.String())
	}
	if len(Y) != n {
		return nil, chk.Err("dataset %q: %d property values for %d temperatures", prop.String(), len(Y), n)
	}
	if (P == nil) == (Rho == nil) {
		return nil, chk.Err("dataset %q: exactly one of pressures and densities must be given", prop.String())
	}
	if P != nil && len(P) != n {
		return nil, chk.Err("dataset %q: %d pressures for %d temperatures", prop.String(), len(P), n)
	}
	if Rho != nil && len(Rho) != n {
		return nil, chk.Err("dataset %q: %d densities for %d temperatures", prop.String(), len(Rho), n)
	}
	return &Data{Prop: prop, T: T, P: P, Rho: Rho, Y: Y, Phase: phase, Ref: ref}, nil
}

// Len returns the number of points
func (o *Data) Len() int { return len(o.T) }

// ResolveDensities returns a new dataset with densities present, computed from
// the EOS at the tabulated (p, T) when missing. The receiver is not modified.
func (o *Data) ResolveDensities(m eos.Model) (*Data, error) {
	if o.Rho != nil {
		c := *o
		return &c, nil
	}
	if m.Len() != 1 {
		return nil, chk.Err("dataset %q: density resolution needs a pure EOS", o.Prop.String())
	}
	c := *o
	c.Rho = make([]float64, len(o.T))
	z := []float64{1}
	for i := range o.T {
		ϱ, err := m.MolarDensity(o.P[i], o.T[i], z, o.Phase)
		if err != nil {
			return nil, err
		}
		c.Rho[i] = ϱ
	}
	return &c, nil
}
