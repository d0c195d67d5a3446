// Copyright 2025 The Entroscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transport

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"
)

// yamlPoint is one experimental point in a dataset file
type yamlPoint struct {
	T     float64 `yaml:"T"`
	P     float64 `yaml:"p"`
	Rho   float64 `yaml:"rho"`
	Value float64 `yaml:"value"`
}

// yamlDataset is one dataset in a dataset file
type yamlDataset struct {
	Property  string      `yaml:"property"`
	Phase     string      `yaml:"phase"`
	Reference string      `yaml:"reference"`
	Points    []yamlPoint `yaml:"points"`
}

type yamlFile struct {
	Datasets []yamlDataset `yaml:"datasets"`
}

// LoadData reads experimental datasets from a YAML file. Each dataset must
// give either pressures or densities for all of its points.
func LoadData(filename string) ([]*Data, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var f yamlFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, chk.Err("cannot parse dataset file %q: %v", filename, err)
	}
	if len(f.Datasets) == 0 {
		return nil, chk.Err("dataset file %q has no datasets", filename)
	}
	res := make([]*Data, 0, len(f.Datasets))
	for _, d := range f.Datasets {
		prop, err := KindFromString(d.Property)
		if err != nil {
			return nil, err
		}
		n := len(d.Points)
		if n == 0 {
			return nil, chk.Err("dataset %q in %q has no points", d.Property, filename)
		}
		T := make([]float64, n)
		Y := make([]float64, n)
		var P, Rho []float64
		usePressure := d.Points[0].P > 0
		if usePressure {
			P = make([]float64, n)
		} else {
			Rho = make([]float64, n)
		}
		for i, pt := range d.Points {
			T[i] = pt.T
			Y[i] = pt.Value
			switch {
			case usePressure && pt.P > 0:
				P[i] = pt.P
			case !usePressure && pt.Rho > 0:
				Rho[i] = pt.Rho
			default:
				return nil, chk.Err("dataset %q in %q mixes pressure and density points", d.Property, filename)
			}
		}
		data, err := NewData(prop, T, P, Rho, Y, d.Phase, d.Reference)
		if err != nil {
			return nil, err
		}
		res = append(res, data)
	}
	return res, nil
}
