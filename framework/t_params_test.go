// Copyright 2025 The Entroscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package framework

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/BookmarkSciencePrrojects/entroscale/eos"
	"github.com/BookmarkSciencePrrojects/entroscale/transport"
)

// zeroAlpha returns an all-zero coefficient matrix
func zeroAlpha(ncomp int) [][]float64 {
	a := make([][]float64, nAlphaRows)
	for i := range a {
		a[i] = make([]float64, ncomp)
	}
	return a
}

func newWater(tst *testing.T) eos.Model {
	water, err := eos.NewPure("water")
	if err != nil {
		tst.Fatalf("cannot build water EOS: %v\n", err)
	}
	return water
}

func newWaterBenzene(tst *testing.T) eos.Model {
	mix := eos.NewPengRobinson()
	for _, name := range []string{"water", "benzene"} {
		prms, err := eos.SubstanceParams(name)
		if err != nil {
			tst.Fatalf("cannot build mixture EOS: %v\n", err)
		}
		if err := mix.AddComponent(name, prms); err != nil {
			tst.Fatalf("cannot build mixture EOS: %v\n", err)
		}
	}
	return mix
}

func Test_params01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("params01. shape validation and dilute-gas references")

	water := newWater(tst)

	// wrong number of rows
	if _, err := NewParams(transport.Viscosity, water, zeroAlpha(1)[:4], nil, nil); err == nil {
		tst.Errorf("coefficient matrix with 4 rows must fail\n")
	}

	// wrong number of columns
	if _, err := NewParams(transport.Viscosity, water, zeroAlpha(2), nil, nil); err == nil {
		tst.Errorf("coefficient matrix with 2 columns must fail for a pure fluid\n")
	}

	ps, err := NewParams(transport.Viscosity, water, zeroAlpha(1), nil, []string{"ref A"})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Strings(tst, "refs", ps.Base.Refs, []string{"ref A"})

	// water takes the tabulated Lennard-Jones parameters
	chk.Float64(tst, "σ water", 1e-25, ps.Sig[0], 2.640e-10)
	chk.Float64(tst, "ε/kB water", 1e-10, ps.Eps[0]/transport.KB, 809.10)

	// minima of the dilute-gas reduced curves
	if chk.Verbose {
		io.Pf("Y0min viscosity = %v\n", ps.Y0Min[0])
	}
	chk.Float64(tst, "Y0min viscosity", 1e-6, ps.Y0Min[0], 0.246231229184)

	pt, err := NewParams(transport.ThermalConductivity, water, zeroAlpha(1), nil, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Y0min thermal conductivity", 1e-6, pt.Y0Min[0], 0.92336710944)

	pd, err := NewParams(transport.SelfDiffusion, water, zeroAlpha(1), nil, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Y0min self-diffusion", 1e-6, pd.Y0Min[0], 0.323167599851)
}

func Test_params02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("params02. infinite-dilution pair construction")

	water := newWater(tst)

	// a pure solvent alone is not a pair
	if _, err := NewParams(transport.InfDiffusion, water, zeroAlpha(1), nil, nil); err == nil {
		tst.Errorf("infinite dilution without a solute must fail\n")
	}

	// a binary EOS plus a solute is three components
	benzene, err := eos.NewPure("benzene")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	mix := newWaterBenzene(tst)
	if _, err := NewParams(transport.InfDiffusion, mix, zeroAlpha(2), benzene, nil); err == nil {
		tst.Errorf("solvent mixture plus solute must fail\n")
	}

	// the solute EOS must be pure
	if _, err := NewParams(transport.InfDiffusion, water, zeroAlpha(1), mix, nil); err == nil {
		tst.Errorf("mixture solute must fail\n")
	}

	// water solvent + benzene solute: combined scales broadcast to the column
	ps, err := NewParams(transport.InfDiffusion, water, zeroAlpha(1), benzene, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if chk.Verbose {
		io.Pf("σ pair = %v m, ε/kB pair = %v K\n", ps.Sig[0], ps.Eps[0]/transport.KB)
	}
	chk.Float64(tst, "σ pair", 1e-20, ps.Sig[0], 4.00888716767e-10)
	chk.Float64(tst, "ε/kB pair", 1e-8, ps.Eps[0]/transport.KB, 586.728477736)
	chk.Float64(tst, "Y0min pair", 1e-6, ps.Y0Min[0], 0.253498613449)

	// the same pair built from a binary EOS without a separate solute
	pb, err := NewParams(transport.InfDiffusion, mix, zeroAlpha(2), nil, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Array(tst, "σ columns", 1e-20, pb.Sig, []float64{4.00888716767e-10, 4.00888716767e-10})
	chk.Float64(tst, "Y0min column 0", 1e-6, pb.Y0Min[0], 0.253498613449)
	chk.Float64(tst, "Y0min column 1", 1e-6, pb.Y0Min[1], 0.253498613449)
}

func Test_params03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("params03. hybrid merge for mixture self-diffusion")

	mix := newWaterBenzene(tst)

	alphaSelf := [][]float64{{1, 10}, {2, 20}, {3, 30}, {4, 40}, {5, 50}}
	self, err := NewParams(transport.SelfDiffusion, mix, alphaSelf, nil, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	alphaInf := [][]float64{{-1, -10}, {-2, -20}, {-3, -30}, {-4, -40}, {-5, -50}}
	inf, err := NewParams(transport.InfDiffusion, mix, alphaInf, nil, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	hyb := self.MergeInfDilution(inf, 0)

	// kept column stays, other column comes from the infinite-dilution set
	for r := 0; r < nAlphaRows; r++ {
		chk.Float64(tst, io.Sf("α[%d][0]", r), 1e-15, hyb.Alpha[r][0], alphaSelf[r][0])
		chk.Float64(tst, io.Sf("α[%d][1]", r), 1e-15, hyb.Alpha[r][1], alphaInf[r][1])
	}
	chk.Float64(tst, "σ kept", 1e-20, hyb.Sig[0], self.Sig[0])
	chk.Float64(tst, "σ merged", 1e-20, hyb.Sig[1], inf.Sig[1])
	chk.Float64(tst, "ε merged", 1e-30, hyb.Eps[1], inf.Eps[1])
	chk.Float64(tst, "Y0min merged", 1e-15, hyb.Y0Min[1], inf.Y0Min[1])

	// property identity follows the self-diffusion set
	if hyb.Base.Prop != transport.SelfDiffusion {
		tst.Errorf("hybrid must keep the self-diffusion property identity\n")
	}

	// the originals are untouched
	chk.Float64(tst, "self α[0][1] intact", 1e-15, self.Alpha[0][1], 10.0)
	chk.Float64(tst, "inf α[0][0] intact", 1e-15, inf.Alpha[0][0], -1.0)
}
