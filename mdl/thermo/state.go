// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package thermo implements the resolution of thermodynamic properties of water from
// Helmholtz free energy models and the solution of density given temperature and pressure
package thermo

import (
	"math"

	"github.com/gowater/gowater/mdl/eos"
)

// State holds the thermodynamic properties of water at one (T, D) state
//  Units: T [K], P [Pa], D [kg/m³], energies [J/kg], entropies and heat capacities [J/(kg・K)]
type State struct {
	Temperature    float64 `json:"temperature"`
	Pressure       float64 `json:"pressure"`
	Density        float64 `json:"density"`
	Volume         float64 `json:"volume"`
	Entropy        float64 `json:"entropy"`
	InternalEnergy float64 `json:"internalEnergy"`
	Enthalpy       float64 `json:"enthalpy"`
	Helmholtz      float64 `json:"helmholtz"`
	Gibbs          float64 `json:"gibbs"`
	Cv             float64 `json:"cv"`
	Cp             float64 `json:"cp"`
	SpeedOfSound   float64 `json:"speedOfSound"`

	// derivatives of pressure
	PressureT  float64 `json:"pressureT"`  // ∂P/∂T
	PressureD  float64 `json:"pressureD"`  // ∂P/∂D
	PressureTT float64 `json:"pressureTT"` // ∂²P/∂T²
	PressureTD float64 `json:"pressureTD"` // ∂²P/∂T∂D
	PressureDD float64 `json:"pressureDD"` // ∂²P/∂D²

	// derivatives of density
	DensityT  float64 `json:"densityT"`  // ∂D/∂T
	DensityP  float64 `json:"densityP"`  // ∂D/∂P
	DensityTT float64 `json:"densityTT"` // ∂²D/∂T²
	DensityTP float64 `json:"densityTP"` // ∂²D/∂T∂P
	DensityPP float64 `json:"densityPP"` // ∂²D/∂P²
}

// Resolve computes all thermodynamic properties from the Helmholtz state h evaluated at (T, D).
// The density derivatives are not finite where ∂P/∂D = 0.
func Resolve(T, D float64, h eos.State) (o State) {

	// state
	o.Temperature = T
	o.Density = D

	// pressure and its derivatives
	o.Pressure = D * D * h.FD
	o.PressureD = 2*D*h.FD + D*D*h.FDD
	o.PressureT = D * D * h.FTD
	o.PressureDD = 2*h.FD + 4*D*h.FDD + D*D*h.FDDD
	o.PressureTD = 2*D*h.FTD + D*D*h.FTDD
	o.PressureTT = D * D * h.FTTD

	// density derivatives (implicit function theorem on P(T,D))
	o.DensityT = -o.PressureT / o.PressureD
	o.DensityP = 1.0 / o.PressureD
	o.DensityTT = -o.DensityT * o.DensityP * (o.DensityT*o.PressureDD + 2*o.PressureTD + o.PressureTT/o.DensityT)
	o.DensityTP = -o.DensityP * o.DensityP * (o.DensityT*o.PressureDD + o.PressureTD)
	o.DensityPP = -o.DensityP * o.DensityP * o.DensityP * o.PressureDD

	// energies
	o.Volume = 1.0 / D
	o.Entropy = -h.FT
	o.Helmholtz = h.F
	o.InternalEnergy = o.Helmholtz + T*o.Entropy
	o.Enthalpy = o.InternalEnergy + o.Pressure/D
	o.Gibbs = o.Enthalpy - T*o.Entropy

	// heat capacities and speed of sound
	o.Cv = -T * h.FTT
	o.Cp = o.Cv + T/(D*D)*o.PressureT*o.PressureT/o.PressureD
	o.SpeedOfSound = math.Sqrt(o.PressureD - o.PressureT*h.FTD/h.FTT)
	return
}

// Singular returns true if the density derivatives of this state are not defined
func (o State) Singular() bool {
	if o.PressureD == 0 {
		return true
	}
	for _, v := range []float64{o.DensityT, o.DensityP, o.DensityTT, o.DensityTP, o.DensityPP} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return false
}

// IsZero returns true if this is the zero state returned by failed solutions
func (o State) IsZero() bool {
	return o == State{}
}
