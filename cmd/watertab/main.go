// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gowater/gowater/inp"
	"github.com/gowater/gowater/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "inp/data/water", ".wdb", true)
	keys := io.ArgToString(1, "density,cp,epsilon,bornX")
	dirout := io.ArgToString(2, "/tmp/gowater")
	dbpath := io.ArgToString(3, "")
	nworkers := io.ArgToInt(4, 0)
	verbose := io.ArgToBool(5, false)

	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"database filename path", "fnamepath", fnamepath,
		"quantities to plot", "keys", keys,
		"output directory", "dirout", dirout,
		"tables database path (empty: do not store)", "dbpath", dbpath,
		"max simultaneous workers (0: one per point)", "nworkers", nworkers,
		"show messages", "verbose", verbose,
	))

	// database
	db, err := inp.ReadDb("", fnamepath)
	if err != nil {
		chk.Panic("cannot read database:\n%v", err)
	}
	if db.Grid.Nt == 0 {
		chk.Panic("database %q has no grid", fnamepath)
	}

	// tabulate
	tbl := out.Tabulate(db.Props, db.Grid.Temperatures(), db.Grid.Pressures(), nworkers, verbose)
	tbl.Desc = db.Desc
	tbl.Thermo = db.Water.Thermo.Name
	tbl.Electro = db.Water.Electro.Name
	io.Pf("table %s: %d points, %d errors\n", tbl.ID, len(tbl.Rows), tbl.NumErrors())

	// save json
	b, err := json.MarshalIndent(tbl, "", "  ")
	if err != nil {
		chk.Panic("cannot encode table:\n%v", err)
	}
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		chk.Panic("cannot create directory %q:\n%v", dirout, err)
	}
	fn := filepath.Join(dirout, fnkey+".json")
	err = os.WriteFile(fn, b, 0644)
	if err != nil {
		chk.Panic("cannot write %q:\n%v", fn, err)
	}
	io.Pf("file <%s> written\n", fn)

	// plot
	for _, key := range strings.Split(keys, ",") {
		err = out.PlotIsobars(tbl, key, dirout, fnkey+"-"+key+".png")
		if err != nil {
			chk.Panic("%v", err)
		}
	}

	// store
	if dbpath != "" {
		store, err := out.OpenStore(dbpath)
		if err != nil {
			chk.Panic("%v", err)
		}
		defer store.Close()
		err = store.SaveTable(tbl)
		if err != nil {
			chk.Panic("%v", err)
		}
		io.Pf("table stored in <%s>\n", filepath.Clean(dbpath))
	}
}
