// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package refdata holds tables of reference states of water used to seed density solvers
package refdata

import (
	"math"
	"sort"
	"sync"

	"github.com/gowater/gowater/mdl/eos"
)

// Point holds one reference state
type Point struct {
	T float64 // temperature [K]
	P float64 // pressure [Pa]
	D float64 // density [kg/m³]
}

// isobar holds points with the same pressure sorted by temperature. The liquid branch ends
// and the vapour branch starts with the saturated state when P is below the critical pressure.
type isobar struct {
	P      float64
	single []Point // single-phase points
	liquid []Point // liquid points and saturated liquid
	vapor  []Point // saturated vapour, vapour and supercritical points
}

// Liquid returns whether (T, P) lies on the liquid side of the saturation curve.
// Above the critical temperature all states belong to the vapour side.
func Liquid(T, P float64) bool {
	return T < eos.WaterConstants().Tc && P >= eos.SaturationPressure(T)
}

// Nearest returns the reference point closest to (T, P). The nearest pressure is searched
// first, then the nearest temperature along that isobar on the same side of the saturation
// curve as (T, P).
func Nearest(T, P float64) Point {
	b := nearestIsobar(P)
	pts := b.vapor
	if Liquid(T, P) {
		pts = b.liquid
	}
	if len(pts) == 0 {
		pts = b.single
	}
	best := pts[0]
	for _, p := range pts[1:] {
		if math.Abs(p.T-T) < math.Abs(best.T-T) {
			best = p
		}
	}
	return best
}

// MinTemperature returns the point with the lowest temperature at the pressure nearest to P
func MinTemperature(P float64) Point {
	pts := nearestIsobar(P).single
	return pts[0]
}

// MaxTemperature returns the point with the largest temperature at the pressure nearest to P
func MaxTemperature(P float64) Point {
	pts := nearestIsobar(P).single
	return pts[len(pts)-1]
}

// SinglePhase returns a copy of all single-phase points sorted by pressure, then temperature
func SinglePhase() (res []Point) {
	for _, b := range dense() {
		res = append(res, b.single...)
	}
	return
}

// SaturatedLiquid returns a copy of the saturated liquid table
func SaturatedLiquid() []Point {
	return append([]Point(nil), satLiquid...)
}

// SaturatedVapor returns a copy of the saturated vapour table
func SaturatedVapor() []Point {
	return append([]Point(nil), satVapor...)
}

// nearestIsobar returns the isobar closest to P; ties go to the lower pressure
func nearestIsobar(P float64) *isobar {
	isobars := dense()
	i := sort.Search(len(isobars), func(i int) bool { return isobars[i].P >= P })
	switch {
	case i == 0:
		return &isobars[0]
	case i == len(isobars):
		return &isobars[len(isobars)-1]
	}
	if P-isobars[i-1].P <= isobars[i].P-P {
		return &isobars[i-1]
	}
	return &isobars[i]
}

// tables
var (
	satLiquid []Point
	satVapor  []Point
	isobars   []isobar
	once      sync.Once
)

// dense returns the single-phase table, computing it on first use
func dense() []isobar {
	once.Do(build)
	return isobars
}

// build saturation tables
func init() {
	c := eos.WaterConstants()
	for T := 275.0; T < c.Tc; T += 5 {
		P := eos.SaturationPressure(T)
		satLiquid = append(satLiquid, Point{T: T, P: P, D: eos.SaturatedLiquidDensity(T)})
		satVapor = append(satVapor, Point{T: T, P: P, D: eos.SaturatedVaporDensity(T)})
	}
}

// build computes the single-phase table with IAPWS-95 by continuation along isotherms.
// Below the critical temperature the isotherms of the saturation tables start at the
// saturated states and go up in pressure through the liquid and down through the vapour.
// Above it they start from the ideal gas at the lowest pressure.
func build() {

	// isobars
	isobars = make([]isobar, len(pressures))
	for j, P := range pressures {
		isobars[j].P = P * eos.MPaToPascal
	}
	add := func(j int, T, D0 float64) float64 {
		b := &isobars[j]
		D, ok := density(T, b.P, D0)
		if !ok {
			return D0
		}
		p := Point{T: T, P: b.P, D: D}
		b.single = append(b.single, p)
		if Liquid(T, b.P) {
			b.liquid = append(b.liquid, p)
		} else {
			b.vapor = append(b.vapor, p)
		}
		return D
	}

	// subcritical isotherms
	for i, sat := range satLiquid {
		first := sort.Search(len(isobars), func(j int) bool { return isobars[j].P >= sat.P })
		D := sat.D
		for j := first; j < len(isobars); j++ {
			D = add(j, sat.T, D)
		}
		D = satVapor[i].D
		for j := first - 1; j >= 0; j-- {
			D = add(j, sat.T, D)
		}
	}

	// supercritical isotherms
	c := eos.WaterConstants()
	for T := 650.0; T <= 1275; T += 25 {
		D := isobars[0].P / (c.R * T)
		for j := range isobars {
			D = add(j, T, D)
		}
	}

	// saturated states
	for j := range isobars {
		b := &isobars[j]
		if b.P >= c.Pc {
			continue
		}
		Tsat := eos.SaturationTemperature(b.P)
		b.liquid = append(b.liquid, Point{T: Tsat, P: b.P, D: eos.SaturatedLiquidDensity(Tsat)})
		b.vapor = append([]Point{{T: Tsat, P: b.P, D: eos.SaturatedVaporDensity(Tsat)}}, b.vapor...)
	}
}

// density solves D²・fD(T, D) = P with Newton's method; it returns D0 and false if the
// iterations fail
func density(T, P, D0 float64) (float64, bool) {
	pc := eos.WaterConstants().Pc
	D := D0
	for it := 0; it < 100; it++ {
		h := eos.WagnerPruss(T, D)
		f := (D*D*h.FD - P) / pc
		df := (2*D*h.FD + D*D*h.FDD) / pc
		if D > f/df {
			D -= f / df
		} else {
			D = P / (D * h.FD)
		}
		if math.Abs(f) < 1e-8 {
			return D, true
		}
	}
	return D0, false
}

// pressures of the isobars [MPa]
var pressures = []float64{
	0.001, 0.002, 0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.3, 0.5, 0.75,
	1, 1.5, 2, 3, 4, 5, 6, 7, 8, 9, 10, 12.5, 15, 17.5, 20, 21, 22, 22.5,
	25, 30, 35, 40, 50, 60, 70, 80, 90, 100, 125, 150, 200, 250, 300,
	400, 500, 600, 700, 800, 900, 1000,
}
