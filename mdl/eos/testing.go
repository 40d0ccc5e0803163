// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/diff/fd"
)

// CheckDerivs compares the analytical derivatives returned by calc at (T, D) with central
// finite differences of the next lower order. tol is a relative tolerance.
func CheckDerivs(tst *testing.T, calc Func, T, D, tol float64, verbose bool) {

	// steps
	hT := 1e-5 * T
	hD := 1e-5 * D
	setT := &fd.Settings{Formula: fd.Central, Step: hT}
	setD := &fd.Settings{Formula: fd.Central, Step: hD}

	// derivatives along T and along D of one component
	alongT := func(get func(s State) float64) float64 {
		return fd.Derivative(func(x float64) float64 { return get(calc(x, D)) }, T, setT)
	}
	alongD := func(get func(s State) float64) float64 {
		return fd.Derivative(func(x float64) float64 { return get(calc(T, x)) }, D, setD)
	}

	s := calc(T, D)
	if verbose {
		io.Pforan("T = %v  D = %v\n", T, D)
	}
	check := func(msg string, ana, num float64) {
		chk.AnaNum(tst, msg, tol*math.Max(1, math.Abs(num)), ana, num, verbose)
	}
	check("fT   = ∂f/∂T      ", s.FT, alongT(func(s State) float64 { return s.F }))
	check("fD   = ∂f/∂D      ", s.FD, alongD(func(s State) float64 { return s.F }))
	check("fTT  = ∂fT/∂T     ", s.FTT, alongT(func(s State) float64 { return s.FT }))
	check("fTD  = ∂fT/∂D     ", s.FTD, alongD(func(s State) float64 { return s.FT }))
	check("fTD  = ∂fD/∂T     ", s.FTD, alongT(func(s State) float64 { return s.FD }))
	check("fDD  = ∂fD/∂D     ", s.FDD, alongD(func(s State) float64 { return s.FD }))
	check("fTTT = ∂fTT/∂T    ", s.FTTT, alongT(func(s State) float64 { return s.FTT }))
	check("fTTD = ∂fTT/∂D    ", s.FTTD, alongD(func(s State) float64 { return s.FTT }))
	check("fTDD = ∂fDD/∂T    ", s.FTDD, alongT(func(s State) float64 { return s.FDD }))
	check("fDDD = ∂fDD/∂D    ", s.FDDD, alongD(func(s State) float64 { return s.FDD }))
}
