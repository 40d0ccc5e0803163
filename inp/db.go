// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.wdb) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
	"github.com/gowater/gowater/mdl/thermo"
	"github.com/gowater/gowater/mdl/water"
)

// ThermoData holds the equation of state settings
type ThermoData struct {
	Model string `json:"model"` // name of equation of state; e.g. "wagner-pruss"
	Som   string `json:"som"`   // state of matter seeding the solver: "solid", "liquid", "gas", "plasma"; empty means nearest reference state
}

// ElectroData holds the dielectric model settings
type ElectroData struct {
	Model string     `json:"model"` // name of dielectric model; e.g. "johnson-norton"
	Prms  dbf.Params `json:"prms"`  // coefficients replacing the built-in ones (optional)
}

// SolverData holds the density solver settings
type SolverData struct {
	MaxIt int     `json:"maxit"` // max number of iterations
	Tol   float64 `json:"tol"`   // tolerance on the normalised residual
	ShowR bool    `json:"showr"` // show residuals
}

// GridData holds a temperature-pressure grid for tabulation
type GridData struct {
	Tmin float64 `json:"tmin"` // min temperature [K]
	Tmax float64 `json:"tmax"` // max temperature [K]
	Nt   int     `json:"nt"`   // number of temperatures
	Pmin float64 `json:"pmin"` // min pressure [Pa]
	Pmax float64 `json:"pmax"` // max pressure [Pa]
	Np   int     `json:"np"`   // number of pressures
}

// Db holds all input data
type Db struct {

	// input
	Desc    string      `json:"desc"`    // description
	Thermo  ThermoData  `json:"thermo"`  // equation of state
	Electro ElectroData `json:"electro"` // dielectric model
	Solver  SolverData  `json:"solver"`  // density solver
	Grid    GridData    `json:"grid"`    // tabulation grid

	// derived
	Water  *water.Water         // water properties calculator
	Som    thermo.StateOfMatter // state of matter if Thermo.Som is given
	UseSom bool                 // seed the solver with Som instead of the nearest reference state
}

// ReadDb reads the input data from a .wdb JSON file
func ReadDb(dir, fn string) (db *Db, err error) {

	// new database
	db = new(Db)

	// read file
	b, err := os.ReadFile(os.ExpandEnv(filepath.Join(dir, fn)))
	if err != nil {
		return nil, chk.Err("cannot read %q:\n%v", fn, err)
	}

	// decode
	err = json.Unmarshal(b, db)
	if err != nil {
		return nil, chk.Err("cannot decode %q:\n%v", fn, err)
	}

	// models
	db.Water, err = water.New(db.Thermo.Model, db.Electro.Model)
	if err != nil {
		return nil, err
	}
	if len(db.Electro.Prms) > 0 {
		err = db.Water.Electro.Params.Init(db.Electro.Prms)
		if err != nil {
			return nil, err
		}
	}

	// state of matter
	if db.Thermo.Som != "" {
		db.Som = thermo.ParseStateOfMatter(db.Thermo.Som)
		if db.Som.String() != db.Thermo.Som {
			return nil, chk.Err("state of matter %q is incorrect; options are \"solid\", \"liquid\", \"gas\", and \"plasma\"", db.Thermo.Som)
		}
		db.UseSom = true
	}

	// solver
	if db.Solver.MaxIt < 0 || db.Solver.Tol < 0 {
		return nil, chk.Err("solver settings must be non-negative: maxit = %d, tol = %g", db.Solver.MaxIt, db.Solver.Tol)
	}
	db.Water.Solver.MaxIt = db.Solver.MaxIt
	db.Water.Solver.Tol = db.Solver.Tol
	db.Water.Solver.ShowR = db.Solver.ShowR

	// grid
	err = db.Grid.check()
	return
}

// Props computes the properties of water at (T, P) using the selected seeding strategy
func (o *Db) Props(T, P float64) (res water.Props, err error) {
	if o.UseSom {
		res.Thermo, err = o.Water.ThermoPropsSOM(T, P, o.Som)
		if err != nil {
			return water.Props{}, err
		}
		res.Electro = o.Water.ElectroProps(res.Thermo)
		return
	}
	return o.Water.Props(T, P)
}

// Temperatures returns the temperatures of the grid
func (o GridData) Temperatures() []float64 {
	if o.Nt == 1 {
		return []float64{o.Tmin}
	}
	return utl.LinSpace(o.Tmin, o.Tmax, o.Nt)
}

// Pressures returns the pressures of the grid
func (o GridData) Pressures() []float64 {
	if o.Np == 1 {
		return []float64{o.Pmin}
	}
	return utl.LinSpace(o.Pmin, o.Pmax, o.Np)
}

// check checks the grid; an empty grid is accepted
func (o GridData) check() error {
	if o.Nt == 0 && o.Np == 0 {
		return nil
	}
	if o.Nt < 1 || o.Np < 1 {
		return chk.Err("grid must have at least one temperature and one pressure: nt = %d, np = %d", o.Nt, o.Np)
	}
	if o.Tmin <= 0 || o.Tmax < o.Tmin {
		return chk.Err("grid temperatures are incorrect: tmin = %g, tmax = %g", o.Tmin, o.Tmax)
	}
	if o.Pmin <= 0 || o.Pmax < o.Pmin {
		return chk.Err("grid pressures are incorrect: pmin = %g, pmax = %g", o.Pmin, o.Pmax)
	}
	return nil
}
