// Copyright 2025 The Entroscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_pr01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pr01. water liquid root and residual entropy")

	water, err := NewPure("water")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	z := []float64{1}
	ϱ, err := water.MolarDensity(1e5, 298.15, z, "liquid")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if chk.Verbose {
		io.Pf("ϱ = %v mol/m³ (%.2f kg/m³)\n", ϱ, ϱ*18.015e-3)
	}
	chk.Float64(tst, "ϱ liquid", 1e-4, ϱ, 47104.0926821)

	s := water.EntropyConf(ϱ, 298.15, z)
	if chk.Verbose {
		io.Pf("s = %v J/(mol·K)\n", s)
	}
	chk.Float64(tst, "s conf", 1e-6, s, -64.5351567744)
	if s >= 0 {
		tst.Errorf("liquid residual entropy must be negative\n")
	}
}

func Test_pr02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pr02. gas root near ideal limit")

	water, err := NewPure("water")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	z := []float64{1}
	ϱ, err := water.MolarDensity(1e4, 400.0, z, "gas")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "ϱ gas", 1e-6, ϱ, 3.00893683929)

	// dilute gas: residual entropy close to zero
	s := water.EntropyConf(ϱ, 400.0, z)
	if s > 0 || s < -0.1 {
		tst.Errorf("dilute gas residual entropy out of range: %v\n", s)
	}
}

func Test_pr03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pr03. binary mixture and split")

	mix := NewPengRobinson()
	for _, name := range []string{"water", "benzene"} {
		prms, err := SubstanceParams(name)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		if err := mix.AddComponent(name, prms); err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
	}
	chk.Int(tst, "ncomp", mix.Len(), 2)
	chk.Array(tst, "segment numbers", 1e-15, mix.SegmentNumber(), []float64{1, 1})

	if _, _, err := mix.CritPure(); err == nil {
		tst.Errorf("CritPure must fail for a mixture\n")
	}

	pures := mix.SplitPure()
	chk.Int(tst, "npure", len(pures), 2)
	Tc, pc, err := pures[1].CritPure()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Tc benzene", 1e-15, Tc, 562.05)
	chk.Float64(tst, "pc benzene", 1e-15, pc, 4.895e6)

	// equimolar liquid-like state must have negative residual entropy
	z := []float64{0.5, 0.5}
	ϱ, err := mix.MolarDensity(1e5, 298.15, z, "liquid")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	s := mix.EntropyConf(ϱ, 298.15, z)
	if s >= 0 {
		tst.Errorf("mixture liquid residual entropy must be negative: %v\n", s)
	}

	// unknown parameter name is a configuration error
	bad := NewPengRobinson()
	if err := bad.AddComponent("x", dbf.Params{&dbf.P{N: "Zc", V: 0.3}}); err == nil {
		tst.Errorf("unknown parameter must fail\n")
	}
}
