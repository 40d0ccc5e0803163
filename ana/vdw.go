// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/gowater/gowater/mdl/eos"
)

// VanDerWaals implements the van der Waals fluid with constant isochoric heat capacity.
// The specific Helmholtz free energy is:
//
//   f(T,D) = cv・T・(1 - ln(T/T0)) - R・T・(ln(1 - b・D) - ln(D)) - a・D
//
//   P = D²・fD = D・R・T/(1 - b・D) - a・D²
//
type VanDerWaals struct {
	R  float64 // specific gas constant [J/(kg・K)]
	Cv float64 // isochoric heat capacity [J/(kg・K)]
	T0 float64 // reference temperature [K]
	A  float64 // attraction parameter [Pa・m⁶/kg²]
	B  float64 // covolume [m³/kg]
}

// Init initialises the parameters from the critical point (Tc [K], Pc [Pa]) and gas constant R
func (o *VanDerWaals) Init(R, Tc, Pc float64) {
	o.R = R
	o.Cv = 3 * R
	o.T0 = Tc
	o.A = 27 * R * R * Tc * Tc / (64 * Pc)
	o.B = R * Tc / (8 * Pc)
}

// InitWater initialises the parameters with the critical point of water
func (o *VanDerWaals) InitWater() {
	c := eos.WaterConstants()
	o.Init(c.R, c.Tc, c.Pc)
}

// CriticalDensity returns the critical density of this fluid
func (o VanDerWaals) CriticalDensity() float64 {
	return 1.0 / (3.0 * o.B)
}

// Pressure computes the pressure
func (o VanDerWaals) Pressure(T, D float64) float64 {
	return D*o.R*T/(1-o.B*D) - o.A*D*D
}

// Calc computes the Helmholtz state with closed-form derivatives
func (o VanDerWaals) Calc(T, D float64) eos.State {
	x := 1 - o.B*D
	l := math.Log(x) - math.Log(D)
	g1 := o.B/x + 1/D
	g2 := o.B*o.B/(x*x) - 1/(D*D)
	g3 := 2*o.B*o.B*o.B/(x*x*x) + 2/(D*D*D)
	return eos.State{
		F:    o.Cv*T*(1-math.Log(T/o.T0)) - o.R*T*l - o.A*D,
		FT:   -o.Cv*math.Log(T/o.T0) - o.R*l,
		FD:   o.R*T*g1 - o.A,
		FTT:  -o.Cv / T,
		FTD:  o.R * g1,
		FDD:  o.R * T * g2,
		FTTT: o.Cv / (T * T),
		FTTD: 0,
		FTDD: o.R * g2,
		FDDD: o.R * T * g3,
	}
}
