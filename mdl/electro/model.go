// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package electro

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/gowater/gowater/diag"
	"github.com/gowater/gowater/mdl/eos"
	"github.com/gowater/gowater/mdl/thermo"
)

// margins added to the validated range before warning
const (
	MarginT = 1.0     // [K]
	MarginP = 1.0e+05 // [Pa]
)

// Model is a named dielectric constant correlation with its validated range
type Model struct {
	Name     string       // name of model
	Ref      string       // reference
	Params   Params       // coefficients
	Envelope eos.Envelope // validated range
	Warn     diag.Sink    // receives diagnostics; nil means diag.Default
}

// Calc computes the electrostatic state. One diagnostic is emitted for each violated bound
// (temperature or pressure) but the state is always computed.
func (o Model) Calc(ts thermo.State) State {
	T, P := ts.Temperature, ts.Pressure
	env := o.Envelope
	diag.Warning(o.Warn, T < env.Tmin-MarginT || T > env.Tmax+MarginT,
		"evaluating electrostatic properties of water at %g K and %g bar using %s model. This temperature is not within the valid temperature range for this model: %g to %g K",
		T, P/eos.BarToPascal, o.Ref, env.Tmin, env.Tmax)
	diag.Warning(o.Warn, P < env.Pmin || P > env.Pmax+MarginP,
		"evaluating electrostatic properties of water at %g K and %g bar using %s model. This pressure is not within the valid pressure range for this model: %g to %g bar",
		T, P/eos.BarToPascal, o.Ref, env.Pmin/eos.BarToPascal, env.Pmax/eos.BarToPascal)
	return Correlate(ts, o.Params)
}

// New returns a copy of the model registered under name
func New(name string) (*Model, error) {
	m, ok := models[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'electro' database", name)
	}
	return &m, nil
}

// Names returns the sorted names of all available models
func Names() (names []string) {
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// models holds all available models
var models = map[string]Model{
	"johnson-norton": {
		Name:     "johnson-norton",
		Ref:      "Johnson and Norton (1991)",
		Params:   JohnsonNortonParams(),
		Envelope: eos.Envelope{Tmin: 273.15, Tmax: 1273.15, Pmin: 0, Pmax: 5000 * eos.BarToPascal},
	},
	"uematsu-franck": {
		Name:     "uematsu-franck",
		Ref:      "Uematsu and Franck (1980)",
		Params:   UematsuFranckParams(),
		Envelope: eos.Envelope{Tmin: 273.15, Tmax: 823.15, Pmin: 0, Pmax: 5000 * eos.BarToPascal},
	},
}
