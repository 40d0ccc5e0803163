// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package electro implements dielectric constant correlations of water and Born functions
//  References:
//   [1] Uematsu M and Franck EU (1980) Static dielectric constant of water and steam.
//       Journal of Physical and Chemical Reference Data, 9(4), 1291-1306
//   [2] Johnson JW and Norton D (1991) Critical phenomena in hydrothermal systems: state,
//       thermodynamic, electrostatic, and transport properties of H2O in the critical region.
//       American Journal of Science, 291, 541-648
package electro

import (
	"math"

	"github.com/gowater/gowater/mdl/thermo"
)

// reference state of the correlation
const (
	Tref = 298.15 // reference temperature [K]
	Dref = 1000.0 // reference density [kg/m³]
)

// State holds the dielectric constant ε of water, its derivatives with respect to
// temperature T [K] and pressure P [Pa], and the Born functions
type State struct {
	Epsilon   float64 `json:"epsilon"`   // ε
	EpsilonT  float64 `json:"epsilonT"`  // ∂ε/∂T
	EpsilonP  float64 `json:"epsilonP"`  // ∂ε/∂P
	EpsilonTT float64 `json:"epsilonTT"` // ∂²ε/∂T²
	EpsilonTP float64 `json:"epsilonTP"` // ∂²ε/∂T∂P
	EpsilonPP float64 `json:"epsilonPP"` // ∂²ε/∂P²
	BornZ     float64 `json:"bornZ"`     // Z = -1/ε
	BornY     float64 `json:"bornY"`     // Y = ∂Z/∂T
	BornQ     float64 `json:"bornQ"`     // Q = ∂Z/∂P
	BornN     float64 `json:"bornN"`     // N = ∂Q/∂P
	BornU     float64 `json:"bornU"`     // U = ∂Q/∂T
	BornX     float64 `json:"bornX"`     // X = ∂Y/∂T
}

// Correlate computes the dielectric constant and the Born functions from the thermodynamic
// state ts using the coefficients prms
func Correlate(ts thermo.State, prms Params) (o State) {

	// derivatives of ln(ρ)
	D := ts.Density
	α := -ts.DensityT / D
	β := ts.DensityP / D
	αT := -ts.DensityTT/D + α*α
	βT := ts.DensityTP/D + α*β
	βP := ts.DensityPP/D - β*β

	// reduced variables
	t := ts.Temperature / Tref
	tt := t * t
	ttt := t * tt
	tttt := t * ttt
	r := D / Dref

	// coefficients and their derivatives with respect to t
	A1, A2, A3, A4, A5 := prms.A1, prms.A2, prms.A3, prms.A4, prms.A5
	A6, A7, A8, A9, A10 := prms.A6, prms.A7, prms.A8, prms.A9, prms.A10
	k := [5]float64{1, A1 / t, A2/t + A3 + A4*t, A5/t + A6*t + A7*tt, A8/tt + A9/t + A10}
	kt := [5]float64{0, -A1 / tt, -A2/tt + A4, -A5/tt + A6 + 2*A7*t, -2*A8/ttt - A9/tt}
	ktt := [5]float64{0, 2 * A1 / ttt, 2 * A2 / ttt, 2*A5/ttt + 2*A7, 6*A8/tttt + 2*A9/ttt}

	// ε and derivatives
	for i := 0; i <= 4; i++ {
		n := float64(i)
		ri := math.Pow(r, n)
		ki := k[i]
		kiT := kt[i] / Tref
		kiTT := ktt[i] / (Tref * Tref)
		o.Epsilon += ki * ri
		o.EpsilonT += ri * (kiT - n*α*ki)
		o.EpsilonP += ri * ki * n * β
		o.EpsilonTT += ri * (kiTT - n*(α*kiT+ki*αT) - n*α*(kiT-n*α*ki))
		o.EpsilonTP += ri * n * (β*kiT - n*α*β*ki + ki*βT)
		o.EpsilonPP += ri * ki * n * (n*β*β + βP)
	}

	// Born functions
	ε2 := o.Epsilon * o.Epsilon
	o.BornZ = -1.0 / o.Epsilon
	o.BornY = o.EpsilonT / ε2
	o.BornQ = o.EpsilonP / ε2
	o.BornU = o.EpsilonTP/ε2 - 2.0*o.BornY*o.BornQ*o.Epsilon
	o.BornN = o.EpsilonPP/ε2 - 2.0*o.BornQ*o.BornQ*o.Epsilon
	o.BornX = o.EpsilonTT/ε2 - 2.0*o.BornY*o.BornY*o.Epsilon
	return
}
