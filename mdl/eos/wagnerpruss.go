// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

// add models to database
func init() {
	Register("wagner-pruss", WagnerPruss, Envelope{Tmin: 273.16, Tmax: 1273.0, Pmin: 0, Pmax: 1000e6})
	Register("ideal-gas", IdealGas, Envelope{Tmin: 273.16, Tmax: 1273.0, Pmin: 0, Pmax: 1e6})
}

// WagnerPruss computes the Helmholtz state of water with the IAPWS-95 formulation [1,2].
//
//   f(T,D) = R・T・(φ°(δ,τ) + φʳ(δ,τ))    with   δ = D/Dc   and   τ = Tc/T
//
func WagnerPruss(T, D float64) State {
	c := WaterConstants()
	t := VarT(T)
	τ := t.Inv().Scale(c.Tc)
	δ := VarD(D).Scale(1 / c.Dc)
	φ := idealPart(δ, τ).Add(residualPart(δ, τ))
	return t.Mul(φ).Scale(c.R).State()
}

// IdealGas computes the Helmholtz state of water as an ideal gas (ideal part of IAPWS-95 only)
func IdealGas(T, D float64) State {
	c := WaterConstants()
	t := VarT(T)
	τ := t.Inv().Scale(c.Tc)
	δ := VarD(D).Scale(1 / c.Dc)
	return t.Mul(idealPart(δ, τ)).Scale(c.R).State()
}

// idealPart computes φ° [1, eq. 6.5]
func idealPart(δ, τ Jet) Jet {
	φ := Log(δ).Shift(wpN0[0]).Add(τ.Scale(wpN0[1])).Add(Log(τ).Scale(wpN0[2]))
	for i := 3; i < 8; i++ {
		e := Exp(τ.Scale(-wpγ0[i-3]))
		φ = φ.Add(Log(e.Scale(-1).Shift(1)).Scale(wpN0[i]))
	}
	return φ
}

// residualPart computes φʳ [1, eq. 6.6]
func residualPart(δ, τ Jet) (φ Jet) {

	// polynomial terms
	for i := 0; i < 7; i++ {
		φ = φ.Add(Pow(δ, wpD[i]).Mul(Pow(τ, wpT[i])).Scale(wpN[i]))
	}

	// exponential terms
	for i := 7; i < 51; i++ {
		e := Exp(Pow(δ, wpC[i]).Scale(-1))
		φ = φ.Add(Pow(δ, wpD[i]).Mul(Pow(τ, wpT[i])).Mul(e).Scale(wpN[i]))
	}

	// gaussian bell-shaped terms
	for i := 51; i < 54; i++ {
		k := i - 51
		dδ := δ.Shift(-wpε[k])
		dτ := τ.Shift(-wpγ[k])
		e := Exp(dδ.Sq().Scale(-wpα[k]).Sub(dτ.Sq().Scale(wpβ[k])))
		φ = φ.Add(Pow(δ, wpD[i]).Mul(Pow(τ, wpT[i])).Mul(e).Scale(wpN[i]))
	}

	// nonanalytical terms
	//   Δ = θ² + B・|δ-1|^(2a)
	//   θ = (1-τ) + A・|δ-1|^(1/β)
	//   ψ = exp(-C・(δ-1)² - D・(τ-1)²)
	for i := 54; i < 56; i++ {
		k := i - 54
		δ1 := Abs(δ.Shift(-1))
		τ1 := τ.Shift(-1)
		θ := τ1.Scale(-1).Add(Pow(δ1, 1/wpNaβ[k]).Scale(wpNaA[k]))
		Δ := θ.Sq().Add(Pow(δ1, 2*wpNaa[k]).Scale(wpNaB[k]))
		ψ := Exp(δ1.Sq().Scale(-wpNaC[k]).Sub(τ1.Sq().Scale(wpNaD[k])))
		φ = φ.Add(Pow(Δ, wpNab[k]).Mul(δ).Mul(ψ).Scale(wpN[i]))
	}
	return
}

// coefficients of the ideal-gas part [1, table 6.1]
var (
	wpN0 = []float64{-8.3204464837497, 6.6832105275932, 3.00632, 0.012436, 0.97315, 1.27950, 0.96956, 0.24873}
	wpγ0 = []float64{1.28728967, 3.53734222, 7.74073708, 9.24437796, 27.5075105}
)

// coefficients of the residual part [1, table 6.2]
var (
	wpC = []float64{
		0, 0, 0, 0, 0, 0, 0,
		1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
		2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
		3, 3, 3, 3,
		4,
		6, 6, 6, 6,
		0, 0, 0,
		0, 0,
	}

	wpD = []float64{
		1, 1, 1, 2, 2, 3, 4,
		1, 1, 1, 2, 2, 3, 4, 4, 5, 7, 9, 10, 11, 13, 15,
		1, 2, 2, 2, 3, 4, 4, 4, 5, 6, 6, 7, 9, 9, 9, 9, 9, 10, 10, 12,
		3, 4, 4, 5,
		14,
		3, 6, 6, 6,
		3, 3, 3,
		0, 0,
	}

	wpT = []float64{
		-0.5, 0.875, 1, 0.5, 0.75, 0.375, 1,
		4, 6, 12, 1, 5, 4, 2, 13, 9, 3, 4, 11, 4, 13, 1,
		7, 1, 9, 10, 10, 3, 7, 10, 10, 6, 10, 10, 1, 2, 3, 4, 8, 6, 9, 8,
		16, 22, 23, 23,
		10,
		50, 44, 46, 50,
		0, 1, 4,
		0, 0,
	}

	wpN = []float64{
		0.12533547935523e-1,
		0.78957634722828e+1,
		-0.87803203303561e+1,
		0.31802509345418e+0,
		-0.26145533859358e+0,
		-0.78199751687981e-2,
		0.88089493102134e-2,
		-0.66856572307965e+0,
		0.20433810950965e+0,
		-0.66212605039687e-4,
		-0.19232721156002e+0,
		-0.25709043003438e+0,
		0.16074868486251e+0,
		-0.40092828925807e-1,
		0.39343422603254e-6,
		-0.75941377088144e-5,
		0.56250979351888e-3,
		-0.15608652257135e-4,
		0.11537996422951e-8,
		0.36582165144204e-6,
		-0.13251180074668e-11,
		-0.62639586912454e-9,
		-0.10793600908932e+0,
		0.17611491008752e-1,
		0.22132295167546e+0,
		-0.40247669763528e+0,
		0.58083399985759e+0,
		0.49969146990806e-2,
		-0.31358700712549e-1,
		-0.74315929710341e+0,
		0.47807329915480e+0,
		0.20527940895948e-1,
		-0.13636435110343e+0,
		0.14180634400617e-1,
		0.83326504880713e-2,
		-0.29052336009585e-1,
		0.38615085574206e-1,
		-0.20393486513704e-1,
		-0.16554050063734e-2,
		0.19955571979541e-2,
		0.15870308324157e-3,
		-0.16388568342530e-4,
		0.43613615723811e-1,
		0.34994005463765e-1,
		-0.76788197844621e-1,
		0.22446277332006e-1,
		-0.62689710414685e-4,
		-0.55711118565645e-9,
		-0.19905718354408e+0,
		0.31777497330738e+0,
		-0.11841182425981e+0,
		-0.31306260323435e+2,
		0.31546140237781e+2,
		-0.25213154341695e+4,
		-0.14874640856724e+0,
		0.31806110878444e+0,
	}

	// gaussian terms
	wpα = []float64{20, 20, 20}
	wpβ = []float64{150, 150, 250}
	wpγ = []float64{1.21, 1.21, 1.25}
	wpε = []float64{1, 1, 1}

	// nonanalytical terms
	wpNaa = []float64{3.5, 3.5}
	wpNab = []float64{0.85, 0.95}
	wpNaB = []float64{0.2, 0.2}
	wpNaC = []float64{28, 32}
	wpNaD = []float64{700, 800}
	wpNaA = []float64{0.32, 0.32}
	wpNaβ = []float64{0.3, 0.3}
)
