// Copyright 2025 The Entroscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dilute

import (
	"math"
	"strings"

	"github.com/BookmarkSciencePrrojects/entroscale/transport"
)

// Lennard-Jones critical constants used by the correspondence principle
const (
	critTstar = 1.321  // kB·Tc/ε of the LJ fluid
	critPstar = 0.1296 // pc·σ³/ε of the LJ fluid
)

// CorrespondencePrinciple maps a critical point onto Lennard-Jones size and
// energy scales: ε = kB·Tc/Tc*, σ = (pc*·ε/pc)^(1/3)
func CorrespondencePrinciple(Tc, pc float64) (σ, ε float64) {
	ε = transport.KB * Tc / critTstar
	σ = math.Pow(critPstar*ε/pc, 1.0/3.0)
	return
}

// ljEntry holds tabulated parameters: σ [m] and ε/kB [K]
type ljEntry struct {
	sigma float64
	epsK  float64
}

// tabulated Lennard-Jones parameters from viscosity data
// (Poling, Prausnitz, O'Connell, Appendix B)
var ljTable = map[string]ljEntry{
	"water":          {2.640e-10, 809.10},
	"methane":        {3.758e-10, 148.6},
	"nitrogen":       {3.798e-10, 71.4},
	"oxygen":         {3.467e-10, 106.7},
	"argon":          {3.542e-10, 93.3},
	"carbon dioxide": {3.941e-10, 195.2},
	"methanol":       {3.626e-10, 481.8},
}

// LJParams returns tabulated Lennard-Jones parameters for a component name,
// with ok=false when the component is not in the table
func LJParams(name string) (σ, ε float64, ok bool) {
	e, ok := ljTable[strings.ToLower(name)]
	if !ok {
		return 0, 0, false
	}
	return e.sigma, e.epsK * transport.KB, true
}

// ComponentLJ resolves the size/energy pair for a component: the table first,
// the critical-point correspondence as fallback
func ComponentLJ(name string, Tc, pc float64) (σ, ε float64) {
	if s, e, ok := LJParams(name); ok {
		return s, e
	}
	return CorrespondencePrinciple(Tc, pc)
}
