// Copyright 2025 The Entroscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package framework

import (
	"log/slog"
	"math"

	"github.com/cpmech/gosl/chk"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/BookmarkSciencePrrojects/entroscale/eos"
	"github.com/BookmarkSciencePrrojects/entroscale/transport"
)

// FitOptions controls the fitting driver
type FitOptions struct {
	Solute   eos.Model                  // solute EOS for infinite-dilution datasets
	FreeRows map[transport.Kind][]int   // 1-based coefficient rows to fit; default {2,3,4,5}
	Seed     uint64                     // seed of the random initial guess
	Logger   *slog.Logger               // diagnostics sink; slog.Default() when nil
}

// defaultFreeRows leaves the constant row at its family default
var defaultFreeRows = []int{2, 3, 4, 5}

// Fit adjusts correlation coefficients of a pure fluid against experimental
// datasets and returns a ready model. One parameter set is fitted per property
// that has data; properties without data are skipped.
func Fit(m eos.Model, datasets []*transport.Data, opts *FitOptions) (*Model, error) {
	if opts == nil {
		opts = &FitOptions{}
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	if m.Len() != 1 {
		return nil, chk.Err("fitting requires a pure EOS, got %d components", m.Len())
	}
	for _, d := range datasets {
		if d.Prop == transport.MaxwellStefan {
			return nil, chk.Err("Maxwell-Stefan data is fitted through the %q property; relabel the dataset", transport.InfDiffusion.String())
		}
	}

	var sets []*Params
	for _, kind := range transport.FitOrder() {
		var group []*transport.Data
		for _, d := range datasets {
			if d.Prop == kind {
				group = append(group, d)
			}
		}
		if len(group) == 0 {
			continue
		}
		var solute eos.Model
		if kind == transport.InfDiffusion {
			if opts.Solute == nil {
				return nil, chk.Err("infinite-dilution datasets need a solute EOS in the fit options")
			}
			solute = opts.Solute
		}
		ps, err := fitOne(kind, m, solute, group, opts, log)
		if err != nil {
			return nil, err
		}
		sets = append(sets, ps)
	}
	model := NewModel(m, sets...)
	model.Log = log
	return model, nil
}

// fitOne fits the coefficients of a single property
func fitOne(kind transport.Kind, m, solute eos.Model, group []*transport.Data, opts *FitOptions, log *slog.Logger) (*Params, error) {

	var refs []string
	for _, d := range group {
		if d.Ref != "" {
			refs = append(refs, d.Ref)
		}
	}
	ps, err := newSkeleton(kind, m, solute, refs)
	if err != nil {
		return nil, err
	}

	// flatten the datasets into state points and reduced targets
	z := []float64{1}
	var Ts, ϱs, ss, sˢs, Ys, targets []float64
	for _, d := range group {
		r, err := d.ResolveDensities(m)
		if err != nil {
			return nil, err
		}
		for i := 0; i < r.Len(); i++ {
			s := m.EntropyConf(r.Rho[i], r.T[i], z)
			y, err := ps.ScalingProperty(r.Y[i], r.T[i], r.Rho[i], s, z, false)
			if err != nil {
				return nil, err
			}
			t := y
			if kind.UsesLog() {
				if y <= 0 {
					return nil, chk.Err("fit %q: non-positive reduced value at T=%g K", kind.String(), r.T[i])
				}
				t = math.Log(y)
			}
			Ts = append(Ts, r.T[i])
			ϱs = append(ϱs, r.Rho[i])
			ss = append(ss, s)
			sˢs = append(sˢs, ps.Base.ReducedEntropy(s, z))
			Ys = append(Ys, r.Y[i])
			targets = append(targets, t)
		}
	}
	npts := len(Ts)

	free := defaultFreeRows
	if rows, ok := opts.FreeRows[kind]; ok {
		free = rows
	}
	for _, row := range free {
		if row < 1 || row > nAlphaRows {
			return nil, chk.Err("fit %q: coefficient row %d out of range 1..%d", kind.String(), row, nAlphaRows)
		}
	}
	if npts < len(free) {
		return nil, chk.Err("fit %q: %d data points cannot determine %d coefficients", kind.String(), npts, len(free))
	}

	// fixed-row baseline of the coefficient column
	fixed := make([]float64, nAlphaRows)
	fixed[0] = kind.DefaultA0()
	isFree := make([]bool, nAlphaRows)
	for _, row := range free {
		fixed[row-1] = 0
		isFree[row-1] = true
	}

	// the correlation is linear in the coefficients: residuals share the basis
	// rows [1, log1p, s, s², s³] over the family denominator
	g1, g2 := transport.DenomConstants(kind)
	basis := func(s float64, row int) float64 {
		l := math.Log1p(s)
		den := 1.0 + g1*l + g2*s
		switch row {
		case 0:
			return 1.0 / den
		case 1:
			return l / den
		case 2:
			return s / den
		case 3:
			return s * s / den
		}
		return s * s * s / den
	}
	resid := func(c []float64) []float64 {
		r := make([]float64, npts)
		for j := 0; j < npts; j++ {
			v := 0.0
			for row := 0; row < nAlphaRows; row++ {
				v += fixed[row] * basis(sˢs[j], row)
			}
			for k, row := range free {
				v += c[k] * basis(sˢs[j], row-1)
			}
			r[j] = v - targets[j]
		}
		return r
	}
	jac := func(c []float64) [][]float64 {
		J := make([][]float64, npts)
		for j := 0; j < npts; j++ {
			J[j] = make([]float64, len(free))
			for k, row := range free {
				J[j][k] = basis(sˢs[j], row-1)
			}
		}
		return J
	}

	// standard-normal initial guess keeps repeated fits reproducible per seed
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(opts.Seed)}
	x0 := make([]float64, len(free))
	for k := range x0 {
		x0[k] = dist.Rand()
	}
	sol, err := leastSquares(resid, jac, x0)
	if err != nil {
		return nil, chk.Err("fit %q: %v", kind.String(), err)
	}

	// assemble the coefficient column
	for row := 0; row < nAlphaRows; row++ {
		ps.Alpha[row][0] = fixed[row]
	}
	for k, row := range free {
		ps.Alpha[row-1][0] = sol[k]
	}

	// deviation of the back-transformed predictions
	var aad float64
	for j := 0; j < npts; j++ {
		y := ps.ScalingModel(sˢs[j], z)
		if kind.UsesLog() {
			y = math.Exp(y)
		}
		pred, err := ps.ScalingProperty(y, Ts[j], ϱs[j], ss[j], z, true)
		if err != nil {
			return nil, err
		}
		aad += math.Abs(pred-Ys[j]) / math.Abs(Ys[j])
	}
	aad /= float64(npts)
	ps.Base.Npts = npts
	ps.Base.AAD = aad
	log.Info("fitted parameter set", "property", kind.String(), "points", npts, "aad", aad)
	return ps, nil
}
