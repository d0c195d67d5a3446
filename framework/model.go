// Copyright 2025 The Entroscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package framework

import (
	"log/slog"

	"github.com/BookmarkSciencePrrojects/entroscale/eos"
	"github.com/BookmarkSciencePrrojects/entroscale/transport"
)

// Model aggregates one parameter set per transport property bound to a shared
// EOS. The EOS is externally owned and read-only.
type Model struct {
	Names []string  // component names
	Sets  []*Params // parameter sets, at most one used per property
	Eos   eos.Model // shared thermodynamic engine
	Log   *slog.Logger
}

// NewModel builds a model from explicit parameter sets
func NewModel(m eos.Model, sets ...*Params) *Model {
	return &Model{
		Names: append([]string(nil), m.Components()...),
		Sets:  sets,
		Eos:   m,
		Log:   slog.Default(),
	}
}

// ParamsFor returns the parameter set bound to the requested property, or nil
// when none is registered. Zero and multiple matches are reported as
// diagnostics; with multiple matches the first one wins.
func (o *Model) ParamsFor(kind transport.Kind) *Params {
	var found []*Params
	for _, ps := range o.Sets {
		if ps.Base.Prop == kind {
			found = append(found, ps)
		}
	}
	switch {
	case len(found) == 0:
		o.Log.Info("no parameter set for property", "property", kind.String())
		return nil
	case len(found) > 1:
		o.Log.Warn("multiple parameter sets for property, using the first",
			"property", kind.String(), "count", len(found))
	}
	return found[0]
}

// References aggregates the literature references of all parameter sets
func (o *Model) References() []string {
	var refs []string
	for _, ps := range o.Sets {
		refs = append(refs, ps.Base.Refs...)
	}
	return refs
}
