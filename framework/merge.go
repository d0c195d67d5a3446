// Copyright 2025 The Entroscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package framework

// MergeInfDilution builds the hybrid parameter set used for component `keep`
// of a mixture self-diffusion evaluation: column `keep` stays from the pure
// self-diffusion set o, every other column is overwritten from the
// infinite-dilution set inf (coefficients, size/energy scales, curve minima
// and molar masses). The result is transient and never stored in a model.
func (o *Params) MergeInfDilution(inf *Params, keep int) *Params {
	c := o.Clone()
	for j := range c.Sig {
		if j == keep {
			continue
		}
		for r := range c.Alpha {
			c.Alpha[r][j] = inf.Alpha[r][j]
		}
		c.Sig[j] = inf.Sig[j]
		c.Eps[j] = inf.Eps[j]
		c.Y0Min[j] = inf.Y0Min[j]
		c.Base.Mw[j] = inf.Base.Mw[j]
	}
	return c
}
