// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

// add model to database
func init() {
	Register("hgk", HGK, Envelope{Tmin: 273.15, Tmax: 1273.15, Pmin: 0, Pmax: 1000e6})
}

// HGK computes the Helmholtz state of water with the equation of state of Haar, Gallagher
// and Kell (1984), using the reference values of Johnson, Oelkers and Helgeson (1992).
//
//   A(T,ρ) = A_base(T,ρ) + A_residual(T,ρ) + A_ideal(T) + R・(T・s_ref - u_ref)
//
//  Note: ρ is in g/cm³ and A in J/g inside the formulation
//  References:
//   Haar L, Gallagher JS and Kell GS (1984) NBS/NRC Steam Tables. Hemisphere Publishing
//   Kestin J and Sengers JV (1986) New international formulations for the thermodynamic
//   properties of light and heavy water. J. Phys. Chem. Ref. Data, 15(1), 305-320
func HGK(T, D float64) State {
	t := VarT(T)
	ρ := VarD(D).Scale(1e-3)
	a := hgkBase(t, ρ).Add(hgkResidual(t, ρ)).Add(hgkIdeal(t))
	a = a.Add(t.Scale(hgkR * hgkSref)).Shift(-hgkR * hgkUref)
	return a.Scale(1e3).State()
}

// hgkBase computes the base function (hard-sphere and virial terms)
func hgkBase(t, ρ Jet) Jet {

	// b(T) and B(T)
	θ := t.Inv().Scale(hgkTz) // Tz/T
	b := Log(t.Scale(1/hgkTz)).Scale(-0.3540782).Shift(0.7478629)
	b = b.Add(Pow(θ, 3).Scale(0.007159876)).Add(Pow(θ, 5).Scale(-0.003528426))
	B := θ.Scale(-0.5944001).Shift(1.1278334)
	B = B.Add(θ.Sq().Scale(-5.010996)).Add(Pow(θ, 4).Scale(0.63684256))

	// y = b・ρ/4
	y := b.Mul(ρ).Scale(0.25)
	x := y.Scale(-1).Shift(1)
	α, β, γ := hgkG1, hgkG2, hgkGf
	s := Log(x).Scale(-1)
	s = s.Sub(x.Inv().Scale(β - 1))
	s = s.Add(x.Sq().Inv().Scale((α + β + 1) / 2))
	s = s.Add(y.Mul(B.Div(b).Shift(-γ)).Scale(4))
	s = s.Shift(-(α - β + 3) / 2)
	s = s.Add(Log(ρ.Mul(t).Scale(hgkR / 0.101325)))
	return t.Mul(s).Scale(hgkR)
}

// hgkResidual computes the residual function
func hgkResidual(t, ρ Jet) (a Jet) {
	θ := t.Inv().Scale(hgkTz)
	q := Exp(ρ.Scale(-1)).Scale(-1).Shift(1)
	for i := 0; i < 36; i++ {
		k := float64(hgkI[i] + 1)
		l := float64(hgkJ[i] - 1)
		a = a.Add(Pow(q, k).Mul(Pow(θ, l)).Scale(hgkG[i] / k))
	}
	for j := 0; j < 4; j++ {
		i := 36 + j
		δ := ρ.Scale(1 / hgkAdz[j]).Shift(-1)
		τ := t.Scale(1 / hgkAtz[j]).Shift(-1)
		e := Exp(Pow(δ, float64(hgkI[i])).Scale(-hgkAad[j]).Sub(τ.Sq().Scale(hgkAat[j])))
		a = a.Add(Pow(δ, float64(hgkJ[i])).Mul(e).Scale(hgkG[i]))
	}
	return
}

// hgkIdeal computes the ideal gas function
func hgkIdeal(t Jet) Jet {
	τ := t.Scale(1.0 / 100)
	g := τ.Inv().Scale(hgkC[0]).Shift(hgkC[1]).Mul(Log(τ)).Scale(-1)
	for i := 3; i <= 18; i++ {
		g = g.Sub(Pow(τ, float64(i-6)).Scale(hgkC[i-1]))
	}
	return t.Mul(g.Shift(-1)).Scale(hgkR)
}

// constants
const (
	hgkR    = 0.461522        // gas constant [J/(g・K)]
	hgkTz   = 647.073         // reference temperature [K]
	hgkUref = -4328.455039    // reference internal energy (dimensionless)
	hgkSref = 7.618231319     // reference entropy (dimensionless)
	hgkG1   = 11.0            // α
	hgkG2   = 44.333333333333 // β
	hgkGf   = 3.5             // γ
)

// coefficients
var (
	hgkG = []float64{
		-0.53062968529023e3, 0.22744901424408e4, 0.78779333020687e3, -0.69830527374994e2,
		0.17863832875422e5, -0.39514731563338e5, 0.33803884280753e5, -0.13855050202703e5,
		-0.25637436613260e6, 0.48212575981415e6, -0.34183016969660e6, 0.12223156417448e6,
		0.11797433655832e7, -0.21734810110373e7, 0.10829952168620e7, -0.25441998064049e6,
		-0.31377774947767e7, 0.52911910757704e7, -0.13802577177877e7, -0.25109914369001e6,
		0.46561826115608e7, -0.72752773275387e7, 0.41774246148294e6, 0.14016358244614e7,
		-0.31555231392127e7, 0.47929666384584e7, 0.40912664781209e6, -0.13626369388386e7,
		0.69625220862664e6, -0.10834900096447e7, -0.22722827401688e6, 0.38365486000660e6,
		0.68833257944332e4, 0.21757245522644e5, -0.26627944829770e4, -0.70730418082074e5,
		-0.225, -1.68, 0.055, -93.0,
	}
	hgkI = []int{
		0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 4, 4, 4, 4,
		5, 5, 5, 5, 6, 6, 6, 6, 8, 8, 8, 8, 2, 2, 0, 4, 2, 2, 2, 4,
	}
	hgkJ = []int{
		2, 3, 5, 7, 2, 3, 5, 7, 2, 3, 5, 7, 2, 3, 5, 7, 2, 3, 5, 7,
		2, 3, 5, 7, 2, 3, 5, 7, 2, 3, 5, 7, 1, 4, 4, 4, 0, 2, 0, 0,
	}
	hgkAtz = []float64{640, 640, 641.6, 270}
	hgkAdz = []float64{0.319, 0.319, 0.319, 1.55}
	hgkAat = []float64{2e4, 2e4, 4e4, 25}
	hgkAad = []float64{34, 40, 30, 1050}
	hgkC   = []float64{
		0.19730271018e2, 0.209662681977e2, -0.483429455355, 0.605743189245e1,
		0.2256023885e2, -0.987532442e1, -0.43135538513e1, 0.458155781,
		-0.47754901883e-1, 0.41238460633e-2, -0.27929052852e-3, 0.14481695261e-4,
		-0.56473658748e-6, 0.16200446e-7, -0.3303822796e-9, 0.451916067368e-11,
		-0.370734122708e-13, 0.137546068238e-15,
	}
)
