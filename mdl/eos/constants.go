// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

// Constants holds physical constants of a pure fluid
type Constants struct {
	R   float64 // specific gas constant [J/(kg・K)]
	M   float64 // molar mass [kg/mol]
	Tc  float64 // critical temperature [K]
	Pc  float64 // critical pressure [Pa]
	Dc  float64 // critical density [kg/m³]
	Tt  float64 // triple point temperature [K]
	Pt  float64 // triple point pressure [Pa]
	DtL float64 // triple point liquid density [kg/m³]
	DtV float64 // triple point vapour density [kg/m³]
}

// UniversalGasConstant is the universal gas constant [J/(mol・K)]
const UniversalGasConstant = 8.3144621

// unit conversion factors
const (
	BarToPascal     = 1.0e+05
	MPaToPascal     = 1.0e+06
	CelsiusToKelvin = 273.15
)

// WaterConstants returns the constants of water used by IAPWS-95 [1]
func WaterConstants() Constants {
	return Constants{
		R:   461.51805,
		M:   0.018015268,
		Tc:  647.096,
		Pc:  22.064e+06,
		Dc:  322.0,
		Tt:  273.16,
		Pt:  611.655,
		DtL: 999.793,
		DtV: 0.00485458,
	}
}
