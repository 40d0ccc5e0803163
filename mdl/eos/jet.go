// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import "math"

// Jet holds a function of two variables (T, D) and all its partial derivatives up to third order.
// Arithmetic on jets propagates the derivatives exactly (forward-mode differentiation).
//
//   V    = f
//   T    = ∂f/∂T      D    = ∂f/∂D
//   TT   = ∂²f/∂T²    TD   = ∂²f/∂T∂D    DD  = ∂²f/∂D²
//   TTT  = ∂³f/∂T³    TTD  = ∂³f/∂T²∂D   TDD = ∂³f/∂T∂D²   DDD = ∂³f/∂D³
//
type Jet struct {
	V                  float64
	T, D               float64
	TT, TD, DD         float64
	TTT, TTD, TDD, DDD float64
}

// Const returns a jet representing a constant
func Const(v float64) Jet { return Jet{V: v} }

// VarT returns a jet representing the first variable with value t
func VarT(t float64) Jet { return Jet{V: t, T: 1} }

// VarD returns a jet representing the second variable with value d
func VarD(d float64) Jet { return Jet{V: d, D: 1} }

// Add returns a + b
func (a Jet) Add(b Jet) Jet {
	return Jet{
		a.V + b.V,
		a.T + b.T, a.D + b.D,
		a.TT + b.TT, a.TD + b.TD, a.DD + b.DD,
		a.TTT + b.TTT, a.TTD + b.TTD, a.TDD + b.TDD, a.DDD + b.DDD,
	}
}

// Sub returns a - b
func (a Jet) Sub(b Jet) Jet {
	return a.Add(b.Scale(-1))
}

// Shift returns a + c
func (a Jet) Shift(c float64) Jet {
	a.V += c
	return a
}

// Scale returns c・a
func (a Jet) Scale(c float64) Jet {
	return Jet{
		c * a.V,
		c * a.T, c * a.D,
		c * a.TT, c * a.TD, c * a.DD,
		c * a.TTT, c * a.TTD, c * a.TDD, c * a.DDD,
	}
}

// Mul returns a・b (Leibniz rule)
func (a Jet) Mul(b Jet) Jet {
	return Jet{
		V:   a.V * b.V,
		T:   a.T*b.V + a.V*b.T,
		D:   a.D*b.V + a.V*b.D,
		TT:  a.TT*b.V + 2*a.T*b.T + a.V*b.TT,
		TD:  a.TD*b.V + a.T*b.D + a.D*b.T + a.V*b.TD,
		DD:  a.DD*b.V + 2*a.D*b.D + a.V*b.DD,
		TTT: a.TTT*b.V + 3*a.TT*b.T + 3*a.T*b.TT + a.V*b.TTT,
		TTD: a.TTD*b.V + a.TT*b.D + 2*a.TD*b.T + 2*a.T*b.TD + a.D*b.TT + a.V*b.TTD,
		TDD: a.TDD*b.V + a.DD*b.T + 2*a.TD*b.D + 2*a.D*b.TD + a.T*b.DD + a.V*b.TDD,
		DDD: a.DDD*b.V + 3*a.DD*b.D + 3*a.D*b.DD + a.V*b.DDD,
	}
}

// Div returns a / b
func (a Jet) Div(b Jet) Jet {
	return a.Mul(b.Inv())
}

// Inv returns 1 / a
func (a Jet) Inv() Jet {
	x := a.V
	return a.compose(1/x, -1/(x*x), 2/(x*x*x), -6/(x*x*x*x))
}

// Sq returns a²
func (a Jet) Sq() Jet {
	return a.Mul(a)
}

// Exp returns exp(a)
func Exp(a Jet) Jet {
	e := math.Exp(a.V)
	return a.compose(e, e, e, e)
}

// Log returns ln(a)
func Log(a Jet) Jet {
	x := a.V
	return a.compose(math.Log(x), 1/x, -1/(x*x), 2/(x*x*x))
}

// Pow returns a^p for real p. Terms with zero coefficients are dropped so that
// integer and large powers of a zero base have finite derivatives.
func Pow(a Jet, p float64) Jet {
	x := a.V
	c1 := p
	c2 := p * (p - 1)
	c3 := p * (p - 1) * (p - 2)
	var f1, f2, f3 float64
	if c1 != 0 {
		f1 = c1 * math.Pow(x, p-1)
	}
	if c2 != 0 {
		f2 = c2 * math.Pow(x, p-2)
	}
	if c3 != 0 {
		f3 = c3 * math.Pow(x, p-3)
	}
	return a.compose(math.Pow(x, p), f1, f2, f3)
}

// Abs returns |a|
func Abs(a Jet) Jet {
	if a.V < 0 {
		return a.Scale(-1)
	}
	return a
}

// compose returns φ(a) given φ and its first three derivatives evaluated at a.V (Faà di Bruno)
func (a Jet) compose(f0, f1, f2, f3 float64) Jet {
	return Jet{
		V:   f0,
		T:   f1 * a.T,
		D:   f1 * a.D,
		TT:  f2*a.T*a.T + f1*a.TT,
		TD:  f2*a.T*a.D + f1*a.TD,
		DD:  f2*a.D*a.D + f1*a.DD,
		TTT: f3*a.T*a.T*a.T + 3*f2*a.T*a.TT + f1*a.TTT,
		TTD: f3*a.T*a.T*a.D + f2*(2*a.T*a.TD+a.TT*a.D) + f1*a.TTD,
		TDD: f3*a.T*a.D*a.D + f2*(2*a.D*a.TD+a.DD*a.T) + f1*a.TDD,
		DDD: f3*a.D*a.D*a.D + 3*f2*a.D*a.DD + f1*a.DDD,
	}
}

// State converts this jet into a Helmholtz state
func (a Jet) State() State {
	return State{
		F:    a.V,
		FT:   a.T,
		FD:   a.D,
		FTT:  a.TT,
		FTD:  a.TD,
		FDD:  a.DD,
		FTTT: a.TTT,
		FTTD: a.TTD,
		FTDD: a.TDD,
		FDDD: a.DDD,
	}
}
