// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import (
	"errors"
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/gowater/gowater/diag"
	"github.com/gowater/gowater/mdl/eos"
	"github.com/gowater/gowater/mdl/refdata"
)

// default solver settings
const (
	DefaultMaxIt = 100
	DefaultTol   = 1e-8
)

// StateOfMatter selects the branch of the equation of state used to seed the density solver
type StateOfMatter int

// states of matter
const (
	Solid StateOfMatter = iota
	Liquid
	Gas
	Plasma
)

// String returns the name of the state of matter
func (o StateOfMatter) String() string {
	switch o {
	case Solid:
		return "solid"
	case Liquid:
		return "liquid"
	case Gas:
		return "gas"
	case Plasma:
		return "plasma"
	}
	return io.Sf("StateOfMatter(%d)", int(o))
}

// ParseStateOfMatter returns the state of matter named s; unknown names map to Gas
func ParseStateOfMatter(s string) StateOfMatter {
	switch s {
	case "solid":
		return Solid
	case "liquid":
		return Liquid
	case "plasma":
		return Plasma
	}
	return Gas
}

// NonConvergenceError is returned when the density could not be found
type NonConvergenceError struct {
	T     float64 // temperature [K]
	P     float64 // pressure [Pa]
	D0    float64 // initial density [kg/m³]
	It    int     // number of iterations
	Resid float64 // last normalised residual
}

// Error returns the error message
func (o *NonConvergenceError) Error() string {
	return io.Sf("the calculation of water density at temperature %g K and pressure %g Pa did not converge after %d iterations (initial density = %g, residual = %g)", o.T, o.P, o.It, o.D0, o.Resid)
}

// IsNonConvergence returns true if err is (or wraps) a NonConvergenceError
func IsNonConvergence(err error) bool {
	var e *NonConvergenceError
	return errors.As(err, &e)
}

// Solver computes the density of water given temperature and pressure using Newton's method on
//
//   f(D) = (D²・fD(T,D) - P) / Pc
//
// The zero value uses the default settings and the critical pressure of water.
type Solver struct {
	MaxIt int       // max number of iterations
	Tol   float64   // tolerance on the normalised residual
	Pc    float64   // pressure used to normalise the residual [Pa]
	ShowR bool      // show residuals
	Warn  diag.Sink // receives diagnostics; nil means diag.Default
}

// Solve computes the thermodynamic state at (T, P) starting from the density D0.
// It returns the zero state and a *NonConvergenceError if the iterations fail.
func (o Solver) Solve(model eos.Func, T, P, D0 float64) (State, error) {

	// settings
	maxit, tol, pc := o.MaxIt, o.Tol, o.Pc
	if maxit <= 0 {
		maxit = DefaultMaxIt
	}
	if tol <= 0 {
		tol = DefaultTol
	}
	if pc <= 0 {
		pc = eos.WaterConstants().Pc
	}

	// Newton's iterations
	D := D0
	var f float64
	for it := 1; it <= maxit; it++ {
		h := model(T, D)
		f = (D*D*h.FD - P) / pc
		df := (2*D*h.FD + D*D*h.FDD) / pc
		if o.ShowR {
			io.Pf("%4d: D = %23.15e  f = %23.15e\n", it, D, f)
		}

		// update keeping the density positive
		if D > f/df {
			D -= f / df
		} else {
			D = P / (D * h.FD)
		}

		// converged
		if math.Abs(f) < tol {
			st := Resolve(T, D, model(T, D))
			diag.Warning(o.Warn, st.Singular(), "density derivatives of water at temperature %g K and pressure %g Pa are singular (∂P/∂D = %g)", T, P, st.PressureD)
			return st, nil
		}
	}

	// failed
	err := &NonConvergenceError{T: T, P: P, D0: D0, It: maxit, Resid: f}
	diag.Warning(o.Warn, true, "%v", err)
	return State{}, err
}

// SolveNearest computes the thermodynamic state at (T, P) seeding the density with the
// nearest point of the reference table
func (o Solver) SolveNearest(model eos.Func, T, P float64) (State, error) {
	return o.Solve(model, T, P, refdata.Nearest(T, P).D)
}

// SolveStateOfMatter computes the thermodynamic state at (T, P) seeding the density with the
// coldest reference point at P for solids and liquids or with the hottest one otherwise
func (o Solver) SolveStateOfMatter(model eos.Func, T, P float64, som StateOfMatter) (State, error) {
	switch som {
	case Solid, Liquid:
		return o.Solve(model, T, P, refdata.MinTemperature(P).D)
	default:
		return o.Solve(model, T, P, refdata.MaxTemperature(P).D)
	}
}
