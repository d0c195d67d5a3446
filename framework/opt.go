// Copyright 2025 The Entroscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package framework

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

// optimiser tolerance target for the dilute-gas minimum search and the
// least-squares solves
const optTol = 1e-8

// minimizeScalar solves an unconstrained 1-D minimisation with Nelder-Mead
func minimizeScalar(f func(float64) float64, x0 float64) (x, fx float64, err error) {
	problem := optimize.Problem{
		Func: func(v []float64) float64 { return f(v[0]) },
	}
	settings := &optimize.Settings{
		Converger: &optimize.FunctionConverge{Absolute: optTol * 1e-2, Relative: optTol, Iterations: 100},
	}
	res, err := optimize.Minimize(problem, []float64{x0}, settings, &optimize.NelderMead{})
	if err != nil {
		return 0, 0, chk.Err("1-D minimisation failed: %v", err)
	}
	if err := res.Status.Err(); err != nil {
		return 0, 0, chk.Err("1-D minimisation did not converge: %v", err)
	}
	return res.X[0], res.F, nil
}

// leastSquares minimises the sum of squared residuals over the free
// coefficients. BFGS with the analytic gradient 2·Jᵀr does the descent; the
// residual is linear in the coefficients, so one Gauss-Newton step solved by
// QR afterwards lands on the optimum. Near a flat quadratic optimum the BFGS
// linesearch can stall, which is why the final gradient check, not the
// optimizer status, decides convergence.
func leastSquares(resid func(c []float64) []float64, jac func(c []float64) [][]float64, x0 []float64) ([]float64, error) {
	gradAt := func(g, c []float64) {
		r := resid(c)
		J := jac(c)
		for k := range g {
			var s float64
			for j := range r {
				s += 2.0 * r[j] * J[j][k]
			}
			g[k] = s
		}
	}
	problem := optimize.Problem{
		Func: func(c []float64) float64 {
			var sum float64
			for _, r := range resid(c) {
				sum += r * r
			}
			return sum
		},
		Grad: gradAt,
	}
	settings := &optimize.Settings{
		Converger:         &optimize.FunctionConverge{Absolute: optTol * 1e-4, Iterations: 50},
		GradientThreshold: optTol,
	}
	res, _ := optimize.Minimize(problem, x0, settings, &optimize.BFGS{})
	if res == nil {
		return nil, chk.Err("least-squares solve failed")
	}
	x := append([]float64(nil), res.X...)

	// Gauss-Newton step for the overdetermined case
	r := resid(x)
	J := jac(x)
	if m, k := len(r), len(x); m >= k {
		A := mat.NewDense(m, k, nil)
		b := mat.NewVecDense(m, nil)
		for j := 0; j < m; j++ {
			b.SetVec(j, -r[j])
			for i := 0; i < k; i++ {
				A.Set(j, i, J[j][i])
			}
		}
		var qr mat.QR
		qr.Factorize(A)
		var δ mat.VecDense
		if err := qr.SolveVecTo(&δ, false, b); err == nil {
			for i := range x {
				x[i] += δ.AtVec(i)
			}
		}
	}

	g := make([]float64, len(x))
	gradAt(g, x)
	for _, gi := range g {
		if math.IsNaN(gi) || math.Abs(gi) > optTol {
			return nil, chk.Err("least-squares solve did not converge: |∇F| = %g exceeds %g", math.Abs(gi), optTol)
		}
	}
	return x, nil
}
