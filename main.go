// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gowater/gowater/inp"
	"github.com/gowater/gowater/mdl/water"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	T := io.ArgToFloat(0, 298.15)
	P := io.ArgToFloat(1, 101325)
	fnamepath := io.ArgToString(2, "")
	verbose := io.ArgToBool(3, true)

	// message
	if verbose {
		io.PfWhite("\nGowater -- thermodynamic and electrostatic properties of water\n")
		io.Pf("Copyright 2018 The Gowater Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"temperature [K]", "T", T,
			"pressure [Pa]", "P", P,
			"database filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// models
	var res water.Props
	var err error
	if fnamepath != "" {
		db, e := inp.ReadDb("", fnamepath)
		if e != nil {
			chk.Panic("cannot read database:\n%v", e)
		}
		res, err = db.Props(T, P)
	} else {
		w, e := water.New("", "")
		if e != nil {
			chk.Panic("%v", e)
		}
		res, err = w.Props(T, P)
	}
	if err != nil {
		chk.Panic("Props failed:\n%v", err)
	}

	// results
	ts, es := res.Thermo, res.Electro
	io.Pf("\n%v\n", io.ArgsTable("THERMODYNAMIC PROPERTIES",
		"density [kg/m³]", "D", ts.Density,
		"specific volume [m³/kg]", "v", ts.Volume,
		"specific entropy [J/(kg・K)]", "s", ts.Entropy,
		"specific internal energy [J/kg]", "u", ts.InternalEnergy,
		"specific enthalpy [J/kg]", "h", ts.Enthalpy,
		"specific Helmholtz energy [J/kg]", "a", ts.Helmholtz,
		"specific Gibbs energy [J/kg]", "g", ts.Gibbs,
		"isochoric heat capacity [J/(kg・K)]", "cv", ts.Cv,
		"isobaric heat capacity [J/(kg・K)]", "cp", ts.Cp,
		"speed of sound [m/s]", "w", ts.SpeedOfSound,
	))
	io.Pf("%v\n", io.ArgsTable("ELECTROSTATIC PROPERTIES",
		"dielectric constant", "ε", es.Epsilon,
		"Born function Z", "Z", es.BornZ,
		"Born function Y [1/K]", "Y", es.BornY,
		"Born function Q [1/Pa]", "Q", es.BornQ,
		"Born function N [1/Pa²]", "N", es.BornN,
		"Born function U [1/(K・Pa)]", "U", es.BornU,
		"Born function X [1/K²]", "X", es.BornX,
	))
}
