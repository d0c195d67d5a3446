// Copyright 2025 The Entroscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dilute

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/BookmarkSciencePrrojects/entroscale/transport"
)

func Test_collision01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("collision01. Neufeld collision integrals")

	chk.Float64(tst, "Ω22(1.0)", 1e-10, Omega22(1.0), 1.59251959608)
	chk.Float64(tst, "Ω22(2.5)", 1e-10, Omega22(2.5), 1.09430025551)
	chk.Float64(tst, "Ω11(1.0)", 1e-10, Omega11(1.0), 1.44046639959)
	chk.Float64(tst, "Ω11(2.5)", 1e-10, Omega11(2.5), 1.00041210611)
}

func Test_virial01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("virial01. LJ second virial coefficient")

	chk.Float64(tst, "B*(1.0)", 1e-6, SecondVirial(1.0), -5.33126890738)
	chk.Float64(tst, "B*(2.0)", 1e-6, SecondVirial(2.0), -1.31098573265)
	chk.Float64(tst, "B*+T*B*'(2.0)", 1e-6, EntropyVirial(2.0), 2.11154558412)

	// Boyle point: B* changes sign between T*=3 and T*=4
	if SecondVirial(3.0) >= 0 || SecondVirial(4.0) <= 0 {
		tst.Errorf("Boyle temperature must lie between T*=3 and T*=4\n")
	}
}

func Test_lj01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lj01. parameter table and correspondence principle")

	// tabulated
	σ, ε, ok := LJParams("water")
	if !ok {
		tst.Errorf("water must be tabulated\n")
		return
	}
	chk.Float64(tst, "σ water", 1e-15, σ, 2.640e-10)
	chk.Float64(tst, "ε/kB water", 1e-12, ε/transport.KB, 809.10)

	// correspondence fallback (benzene is not tabulated)
	σb, εb := ComponentLJ("benzene", 562.05, 4.895e6)
	if chk.Verbose {
		io.Pf("benzene: σ = %v m, ε/kB = %v K\n", σb, εb/transport.KB)
	}
	chk.Float64(tst, "σ benzene", 1e-6*5.4e-10, σb, 5.37777433534e-10)
	chk.Float64(tst, "ε/kB benzene", 1e-6, εb/transport.KB, 425.473126419)
}

func Test_ceplus01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ceplus01. plus-scaled dilute-gas properties")

	σ, ε, _ := LJParams("water")
	y := PropertyCEPlus(transport.Viscosity, 298.15, σ, ε, 18.015e-3)
	chk.Float64(tst, "η₀⁺ water 298.15K", 1e-6, y, 0.851013443473)

	// all plus-scaled dilute properties are positive and finite here
	for _, kind := range []transport.Kind{transport.Viscosity, transport.ThermalConductivity, transport.SelfDiffusion} {
		v := PropertyCEPlus(kind, 500.0, σ, ε, 18.015e-3)
		if !(v > 0) {
			tst.Errorf("%v: dilute value must be positive, got %v\n", kind, v)
		}
	}

	// binary reduces to a finite positive value as well
	vb := BinaryCEPlus(400.0, 4.0e-10, 600.0*transport.KB, 18.015e-3, 78.114e-3)
	if !(vb > 0) {
		tst.Errorf("binary dilute value must be positive, got %v\n", vb)
	}

	chk.Float64(tst, "mix", 1e-15, MixCE([]float64{1.0, 3.0}, []float64{0.25, 0.75}), 2.5)
}
