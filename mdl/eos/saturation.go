// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/cpmech/gosl/num"
)

// SaturationPressure returns the vapour pressure [Pa] at temperature T [K] using the
// auxiliary equation of [1, eq. 2.5]. Valid from the triple point to the critical point.
//
//   ln(p/pc) = (Tc/T)・(a1・ϑ + a2・ϑ^1.5 + a3・ϑ³ + a4・ϑ^3.5 + a5・ϑ⁴ + a6・ϑ^7.5)   with   ϑ = 1 - T/Tc
//
func SaturationPressure(T float64) float64 {
	c := WaterConstants()
	ϑ := 1.0 - T/c.Tc
	if ϑ <= 0 {
		return c.Pc
	}
	sum := 0.0
	for i, a := range satA {
		sum += a * math.Pow(ϑ, satAexp[i])
	}
	return c.Pc * math.Exp(c.Tc/T*sum)
}

// SaturatedLiquidDensity returns the density [kg/m³] of the saturated liquid at T [K] [1, eq. 2.6]
func SaturatedLiquidDensity(T float64) float64 {
	c := WaterConstants()
	ϑ := 1.0 - T/c.Tc
	if ϑ <= 0 {
		return c.Dc
	}
	sum := 1.0
	for i, b := range satB {
		sum += b * math.Pow(ϑ, satBexp[i])
	}
	return c.Dc * sum
}

// SaturatedVaporDensity returns the density [kg/m³] of the saturated vapour at T [K] [1, eq. 2.7]
func SaturatedVaporDensity(T float64) float64 {
	c := WaterConstants()
	ϑ := 1.0 - T/c.Tc
	if ϑ <= 0 {
		return c.Dc
	}
	sum := 0.0
	for i, cc := range satC {
		sum += cc * math.Pow(ϑ, satCexp[i])
	}
	return c.Dc * math.Exp(sum)
}

// SaturationTemperature returns the temperature [K] at which SaturationPressure equals P [Pa].
// The equation ln(psat(T)/P) = 0 is solved with Brent's method; P is clipped to the
// triple-critical range.
func SaturationTemperature(P float64) float64 {
	c := WaterConstants()
	if P >= c.Pc {
		return c.Tc
	}
	if P <= SaturationPressure(c.Tt) {
		return c.Tt
	}
	ffcn := func(T float64) float64 { return math.Log(SaturationPressure(T) / P) }
	fa, fb := ffcn(c.Tt), ffcn(c.Tc)
	if fa*fb >= -num.MACHEPS {
		if math.Abs(fa) < math.Abs(fb) {
			return c.Tt
		}
		return c.Tc
	}
	return num.NewBrent(ffcn, nil).Root(c.Tt, c.Tc)
}

// auxiliary equations coefficients
var (
	satA    = []float64{-7.85951783, 1.84408259, -11.7866497, 22.6807411, -15.9618719, 1.80122502}
	satAexp = []float64{1, 1.5, 3, 3.5, 4, 7.5}
	satB    = []float64{1.99274064, 1.09965342, -0.510839303, -1.75493479, -45.5170352, -6.74694450e+05}
	satBexp = []float64{1.0 / 3.0, 2.0 / 3.0, 5.0 / 3.0, 16.0 / 3.0, 43.0 / 3.0, 110.0 / 3.0}
	satC    = []float64{-2.03150240, -2.68302940, -5.38626492, -17.2991605, -44.7586581, -63.9201063}
	satCexp = []float64{2.0 / 6.0, 4.0 / 6.0, 8.0 / 6.0, 18.0 / 6.0, 37.0 / 6.0, 71.0 / 6.0}
)
