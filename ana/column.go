// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/ode"
)

// ColumnWaterPressure computes pressure (p) and density (R) of water along a vertical
// column with gravity (g). With constant compressibility the solution is:
//
//    R    = R0 + C・(p - p0)   thus   dR/dp = C
//    dp   = -R(p)・g・dz
//    p(z) = p0 + (R0/C)・(exp(C・g・(H - z)) - 1)
//
// The numerical solution integrates along the pseudo time 0 ≤ t ≤ 1 with any density function:
//
//    Z(z) = H + t・(z - H)
//    dp/dt = R(p)・g・Δz   with   Δz = H - z
type ColumnWaterPressure struct {
	R0      float64                 // density corresponding to p0
	P0      float64                 // pressure corresponding to R0
	C       float64                 // compressibility coefficient dR/dp; e.g. R0/Kbulk
	Grav    float64                 // gravity acceleration (positive constant)
	H       float64                 // elevation where (R0,p0) is known
	Tol     float64                 // tolerance of the ODE solver in CalcNum
	Density func(p float64) float64 // density as a function of pressure for CalcNum
}

// Init initialises this structure. A nil density selects the linear law R0 + C・(p - p0).
func (o *ColumnWaterPressure) Init(R0, p0, C, g, H float64, density func(p float64) float64) {
	o.R0 = R0
	o.P0 = p0
	o.C = C
	o.Grav = g
	o.H = H
	o.Tol = 1e-10
	o.Density = density
	if o.Density == nil {
		o.Density = func(p float64) float64 { return o.R0 + o.C*(p-o.P0) }
	}
}

// Calc computes pressure and density with constant compressibility
func (o ColumnWaterPressure) Calc(z float64) (p, R float64) {
	p = o.P0 + (o.R0/o.C)*math.Expm1(o.C*o.Grav*(o.H-z))
	R = o.R0 + o.C*(p-o.P0)
	return
}

// CalcNum computes pressure and density by integrating from H down to z with the
// Dormand-Prince method
func (o ColumnWaterPressure) CalcNum(z float64) (p, R float64) {
	if z > o.H {
		chk.Panic("ColumnWaterPressure: elevation %g must not be above the top of the column %g", z, o.H)
	}
	Δz := o.H - z
	if Δz == 0 {
		return o.P0, o.Density(o.P0)
	}
	y := la.Vector{o.P0}
	ode.Dopri5simple(func(f la.Vector, h, t float64, y la.Vector) {
		f[0] = o.Density(y[0]) * o.Grav * Δz // dp/dt
	}, y, 1, o.Tol)
	return y[0], o.Density(y[0])
}
