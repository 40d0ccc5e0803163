// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package electro

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Params holds the ten coefficients of the dielectric constant correlation
//
//   ε(t,r) = Σᵢ kᵢ(t)・rⁱ   i = 0..4   with   t = T/Tr   and   r = ρ/ρr
//
//   k₀ = 1
//   k₁ = A1/t
//   k₂ = A2/t + A3 + A4・t
//   k₃ = A5/t + A6・t + A7・t²
//   k₄ = A8/t² + A9/t + A10
//
type Params struct {
	A1, A2, A3, A4, A5, A6, A7, A8, A9, A10 float64
}

// JohnsonNortonParams returns the coefficients of Johnson and Norton (1991)
func JohnsonNortonParams() Params {
	return Params{
		A1:  0.1470333593e+02,
		A2:  0.2128462733e+03,
		A3:  -0.1154445173e+03,
		A4:  0.1955210915e+02,
		A5:  -0.8330347980e+02,
		A6:  0.3213240048e+02,
		A7:  -0.6694098645e+01,
		A8:  -0.3786202045e+02,
		A9:  0.6887359646e+02,
		A10: -0.2729401652e+02,
	}
}

// UematsuFranckParams returns the coefficients of Uematsu and Franck (1980)
func UematsuFranckParams() Params {
	return Params{
		A1:  0.762571e+1,
		A2:  0.244003e+3,
		A3:  -0.140569e+3,
		A4:  0.277841e+2,
		A5:  -0.962805e+2,
		A6:  0.417909e+2,
		A7:  -0.102099e+2,
		A8:  -0.452059e+2,
		A9:  0.846395e+2,
		A10: -0.358644e+2,
	}
}

// Init initialises the coefficients; all ten must be given
func (o *Params) Init(prms dbf.Params) (err error) {
	ptrs := o.ptrs()
	given := make(map[string]bool)
	for _, p := range prms {
		ptr, ok := ptrs[p.N]
		if !ok {
			return chk.Err("dielectric model: parameter named %q is invalid", p.N)
		}
		*ptr = p.V
		given[p.N] = true
	}
	for _, name := range paramNames {
		if !given[name] {
			return chk.Err("dielectric model: parameter %q is missing", name)
		}
	}
	return
}

// GetPrms gets (an example of) parameters
//  Input:
//   example -- returns the coefficients of Johnson and Norton (1991); otherwise returns current ones
func (o Params) GetPrms(example bool) dbf.Params {
	if example {
		o = JohnsonNortonParams()
	}
	vals := o.values()
	prms := make(dbf.Params, len(paramNames))
	for i, name := range paramNames {
		prms[i] = &dbf.P{N: name, V: vals[i]}
	}
	return prms
}

// paramNames holds the names of the coefficients
var paramNames = []string{"A1", "A2", "A3", "A4", "A5", "A6", "A7", "A8", "A9", "A10"}

// ptrs returns pointers to the coefficients by name
func (o *Params) ptrs() map[string]*float64 {
	return map[string]*float64{
		"A1": &o.A1, "A2": &o.A2, "A3": &o.A3, "A4": &o.A4, "A5": &o.A5,
		"A6": &o.A6, "A7": &o.A7, "A8": &o.A8, "A9": &o.A9, "A10": &o.A10,
	}
}

// values returns the coefficients in order
func (o Params) values() []float64 {
	return []float64{o.A1, o.A2, o.A3, o.A4, o.A5, o.A6, o.A7, o.A8, o.A9, o.A10}
}
