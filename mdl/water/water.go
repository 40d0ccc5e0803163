// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package water combines an equation of state and a dielectric correlation to compute the
// thermodynamic and electrostatic properties of water at given temperature and pressure
package water

import (
	"github.com/gowater/gowater/diag"
	"github.com/gowater/gowater/mdl/electro"
	"github.com/gowater/gowater/mdl/eos"
	"github.com/gowater/gowater/mdl/thermo"
)

// default models
const (
	DefaultThermo  = "wagner-pruss"
	DefaultElectro = "johnson-norton"
)

// Props holds all properties of water at one state
type Props struct {
	Thermo  thermo.State  `json:"thermo"`
	Electro electro.State `json:"electro"`
}

// Water computes properties of water using one equation of state and one dielectric model
type Water struct {
	Thermo  *eos.Model     // equation of state
	Electro *electro.Model // dielectric constant correlation
	Solver  thermo.Solver  // density solver
	Warn    diag.Sink      // receives diagnostics; nil means diag.Default
}

// New returns a new Water object. Empty names select the default models.
func New(thermoName, electroName string) (o *Water, err error) {
	if thermoName == "" {
		thermoName = DefaultThermo
	}
	if electroName == "" {
		electroName = DefaultElectro
	}
	o = new(Water)
	o.Thermo, err = eos.New(thermoName)
	if err != nil {
		return nil, err
	}
	o.Electro, err = electro.New(electroName)
	if err != nil {
		return nil, err
	}
	return
}

// SetWarn sets the diagnostics sink of all components
func (o *Water) SetWarn(sink diag.Sink) {
	o.Warn = sink
	o.Solver.Warn = sink
	o.Electro.Warn = sink
}

// ThermoProps computes the thermodynamic state at temperature T [K] and pressure P [Pa]
// seeding the density solver with the nearest reference state
func (o *Water) ThermoProps(T, P float64) (thermo.State, error) {
	o.check(T, P)
	return o.Solver.SolveNearest(o.Thermo.Calc, T, P)
}

// ThermoPropsSOM computes the thermodynamic state at temperature T [K] and pressure P [Pa]
// seeding the density solver according to the state of matter
func (o *Water) ThermoPropsSOM(T, P float64, som thermo.StateOfMatter) (thermo.State, error) {
	o.check(T, P)
	return o.Solver.SolveStateOfMatter(o.Thermo.Calc, T, P, som)
}

// ThermoPropsD computes the thermodynamic state at temperature T [K] and density D [kg/m³]
func (o *Water) ThermoPropsD(T, D float64) thermo.State {
	return thermo.Resolve(T, D, o.Thermo.Calc(T, D))
}

// ElectroProps computes the electrostatic state corresponding to ts
func (o *Water) ElectroProps(ts thermo.State) electro.State {
	return o.Electro.Calc(ts)
}

// Props computes the thermodynamic and electrostatic states at (T, P)
func (o *Water) Props(T, P float64) (res Props, err error) {
	res.Thermo, err = o.ThermoProps(T, P)
	if err != nil {
		return Props{}, err
	}
	res.Electro = o.ElectroProps(res.Thermo)
	return
}

// check emits one diagnostic for each bound of the equation of state violated by (T, P)
func (o *Water) check(T, P float64) {
	env := o.Thermo.Envelope
	badT, badP := env.Outside(T, P)
	diag.Warning(o.Warn, badT, "evaluating thermodynamic properties of water at %g K using %s model. This temperature is not within the valid temperature range for this model: %g to %g K", T, o.Thermo.Name, env.Tmin, env.Tmax)
	diag.Warning(o.Warn, badP, "evaluating thermodynamic properties of water at %g Pa using %s model. This pressure is not within the valid pressure range for this model: %g to %g Pa", P, o.Thermo.Name, env.Pmin, env.Pmax)
}
