// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions and reference data used to verify the models
package ana

// Water holds reference properties of liquid water at ambient conditions
type Water struct {
	Θ   float64 // reference temperature; default = 25°C or 298.15K
	P   float64 // reference pressure; default = 1 atm
	K   float64 // bulk modulus @ reference state
	Rho float64 // density @ reference state
	C   float64 // compressibility @ reference state
	Eps float64 // dielectric constant @ reference state
}

// Steam holds the properties of water vapour as an ideal gas
type Steam struct {
	Θ   float64 // reference temperature; default = 400 K
	R   float64 // specific ideal gas constant
	P   float64 // reference pressure; default = 1 atm
	Rho float64 // density @ reference state
	C   float64 // compressibility @ reference state
}

// Init initialises data
func (o *Water) Init() {
	o.Θ = 298.15      // [K]       25°C
	o.P = 101325      // [Pa]
	o.K = 2.2e9       // [Pa]      25°C
	o.Rho = 997.0479  // [kg/m³]   25°C
	o.C = o.Rho / o.K // [kg/(m³・Pa)]
	o.Eps = 78.46     // [-]       25°C
}

// Init initialises data
func (o *Steam) Init() {
	o.Θ = 400.0               // [K]
	o.R = 461.51805           // [J/(kg・K)]
	o.P = 101325              // [Pa]
	o.Rho = o.P / (o.R * o.Θ) // [kg/m³]
	o.C = 1.0 / (o.R * o.Θ)   // [kg/(m³・Pa)]
}

// Density returns the ideal gas density at (T, P)
func (o Steam) Density(T, P float64) float64 {
	return P / (o.R * T)
}
