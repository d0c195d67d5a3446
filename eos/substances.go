// Copyright 2025 The Entroscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// SubstanceParams returns Peng-Robinson parameters for a known substance.
// Critical data from DIPPR/NIST compilations.
func SubstanceParams(name string) (dbf.Params, error) {
	switch strings.ToLower(name) {
	case "water":
		return dbf.Params{
			&dbf.P{N: "Tc", V: 647.096},
			&dbf.P{N: "Pc", V: 22.064e6},
			&dbf.P{N: "omega", V: 0.3443},
			&dbf.P{N: "Mw", V: 18.015e-3},
		}, nil
	case "benzene":
		return dbf.Params{
			&dbf.P{N: "Tc", V: 562.05},
			&dbf.P{N: "Pc", V: 4.895e6},
			&dbf.P{N: "omega", V: 0.2103},
			&dbf.P{N: "Mw", V: 78.114e-3},
		}, nil
	case "methane":
		return dbf.Params{
			&dbf.P{N: "Tc", V: 190.564},
			&dbf.P{N: "Pc", V: 4.5992e6},
			&dbf.P{N: "omega", V: 0.01142},
			&dbf.P{N: "Mw", V: 16.043e-3},
		}, nil
	case "nitrogen":
		return dbf.Params{
			&dbf.P{N: "Tc", V: 126.192},
			&dbf.P{N: "Pc", V: 3.3958e6},
			&dbf.P{N: "omega", V: 0.0372},
			&dbf.P{N: "Mw", V: 28.014e-3},
		}, nil
	case "carbon dioxide", "co2":
		return dbf.Params{
			&dbf.P{N: "Tc", V: 304.1282},
			&dbf.P{N: "Pc", V: 7.3773e6},
			&dbf.P{N: "omega", V: 0.22394},
			&dbf.P{N: "Mw", V: 44.010e-3},
		}, nil
	case "methanol":
		return dbf.Params{
			&dbf.P{N: "Tc", V: 512.6},
			&dbf.P{N: "Pc", V: 8.0959e6},
			&dbf.P{N: "omega", V: 0.5625},
			&dbf.P{N: "Mw", V: 32.042e-3},
		}, nil
	}
	return nil, chk.Err("substance %q is not available in the database", name)
}

// NewPure builds a pure Peng-Robinson model for a known substance
func NewPure(name string) (*PengRobinson, error) {
	prms, err := SubstanceParams(name)
	if err != nil {
		return nil, err
	}
	o := NewPengRobinson()
	if err := o.AddComponent(name, prms); err != nil {
		return nil, err
	}
	return o, nil
}
