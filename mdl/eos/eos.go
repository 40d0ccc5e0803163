// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eos implements Helmholtz free energy equations of state for water
//  References:
//   [1] Wagner W and Pruss A (2002) The IAPWS formulation 1995 for the thermodynamic properties
//       of ordinary water substance for general and scientific use. Journal of Physical and
//       Chemical Reference Data, 31(2), 387-535, http://dx.doi.org/10.1063/1.1461829
//   [2] IAPWS R6-95(2018) Revised release on the IAPWS formulation 1995 for the thermodynamic
//       properties of ordinary water substance for general and scientific use
package eos

import (
	"sort"
	"sync"

	"github.com/cpmech/gosl/chk"
)

// State holds the specific Helmholtz free energy f(T,D) [J/kg] and its partial derivatives
// with respect to temperature T [K] and density D [kg/m³] up to third order
type State struct {
	F    float64 // f
	FT   float64 // ∂f/∂T
	FD   float64 // ∂f/∂D
	FTT  float64 // ∂²f/∂T²
	FTD  float64 // ∂²f/∂T∂D
	FDD  float64 // ∂²f/∂D²
	FTTT float64 // ∂³f/∂T³
	FTTD float64 // ∂³f/∂T²∂D
	FTDD float64 // ∂³f/∂T∂D²
	FDDD float64 // ∂³f/∂D³
}

// Func computes the Helmholtz state at temperature T [K] and density D [kg/m³]
type Func func(T, D float64) State

// Envelope holds the validated range of a model
type Envelope struct {
	Tmin float64 // minimum temperature [K]
	Tmax float64 // maximum temperature [K]
	Pmin float64 // minimum pressure [Pa]
	Pmax float64 // maximum pressure [Pa]
}

// Outside returns which bounds are violated by (T, P)
func (o Envelope) Outside(T, P float64) (badT, badP bool) {
	badT = T < o.Tmin || T > o.Tmax
	badP = P < o.Pmin || P > o.Pmax
	return
}

// Model is a named equation of state
type Model struct {
	Name     string   // name of model
	Calc     Func     // function computing the Helmholtz state
	Envelope Envelope // validated range
}

// New returns the model registered under name
func New(name string) (*Model, error) {
	mu.RLock()
	defer mu.RUnlock()
	m, ok := models[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'eos' database", name)
	}
	return m, nil
}

// Register adds (or replaces) a model in the database
func Register(name string, calc Func, env Envelope) *Model {
	m := &Model{Name: name, Calc: calc, Envelope: env}
	mu.Lock()
	models[name] = m
	mu.Unlock()
	return m
}

// Names returns the sorted names of all available models
func Names() (names []string) {
	mu.RLock()
	for name := range models {
		names = append(names, name)
	}
	mu.RUnlock()
	sort.Strings(names)
	return
}

// models holds all available models
var (
	mu     sync.RWMutex
	models = map[string]*Model{}
)
