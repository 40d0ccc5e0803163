// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/google/uuid"
	"github.com/gowater/gowater/diag"
	"github.com/gowater/gowater/mdl/water"
)

// newWater returns the default water model without diagnostics
func newWater(tst *testing.T) *water.Water {
	w, err := water.New("", "")
	if err != nil {
		tst.Fatalf("water.New failed: %v\n", err)
	}
	w.SetWarn(diag.Silent)
	return w
}

func Test_quantities01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("quantities01")

	chk.Int(tst, "number of quantities", len(Keys()), 19)
	q, err := GetQuantity("density")
	if err != nil {
		tst.Errorf("GetQuantity failed: %v\n", err)
		return
	}
	chk.String(tst, q.GetLabel(), "ρ [kg/m³]")
	q, _ = GetQuantity("epsilon")
	chk.String(tst, q.GetLabel(), "ε")

	var r water.Props
	r.Thermo.Cp = 4180
	r.Electro.BornX = -1e-6
	q, _ = GetQuantity("cp")
	chk.Float64(tst, "cp", 1e-17, q.Get(r), 4180)
	q, _ = GetQuantity("bornX")
	chk.Float64(tst, "X", 1e-17, q.Get(r), -1e-6)

	_, err = GetQuantity("viscosity")
	if err == nil {
		tst.Errorf("GetQuantity should have failed\n")
	}
}

func Test_tabulate00(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tabulate00. bounded workers")

	var running, maxRunning int64
	calc := func(T, P float64) (res water.Props, err error) {
		n := atomic.AddInt64(&running, 1)
		for {
			m := atomic.LoadInt64(&maxRunning)
			if n <= m || atomic.CompareAndSwapInt64(&maxRunning, m, n) {
				break
			}
		}
		defer atomic.AddInt64(&running, -1)
		time.Sleep(time.Millisecond)
		if T < 0 {
			return res, chk.Err("negative temperature %g", T)
		}
		res.Thermo.Temperature = T
		res.Thermo.Pressure = P
		res.Thermo.Density = T * P
		return
	}

	Ts := []float64{7, -2, 5, 1, 3, -1, 0, 2, 6, 4}
	Ps := []float64{3, 1, 2}
	tbl := Tabulate(calc, Ts, Ps, 3, false)
	chk.Int(tst, "number of rows", len(tbl.Rows), 30)
	chk.Int(tst, "number of errors", tbl.NumErrors(), 6)
	if maxRunning > 3 {
		tst.Errorf("at most 3 workers may run simultaneously; got %d\n", maxRunning)
	}
	for i, r := range tbl.Rows {
		T, P := float64(i%10-2), float64(i/10+1)
		chk.Float64(tst, io.Sf("T%d", i), 1e-17, r.T, T)
		chk.Float64(tst, io.Sf("P%d", i), 1e-17, r.P, P)
		if T < 0 {
			if r.Err == "" {
				tst.Errorf("row %d must hold an error\n", i)
			}
			continue
		}
		chk.Float64(tst, io.Sf("D%d", i), 1e-17, r.Props.Thermo.Density, T*P)
		chk.Float64(tst, io.Sf("T%d stored", i), 1e-17, r.Props.Thermo.Temperature, T)
	}
	chk.Int(tst, "input temperatures unchanged", int(Ts[0]), 7)

	empty := Tabulate(calc, nil, Ps, 2, false)
	chk.Int(tst, "empty table", len(empty.Rows), 0)
}

func Test_tabulate01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tabulate01")

	w := newWater(tst)
	Ts := []float64{500, 300, 400}
	Ps := []float64{25e6, 1e6}
	tbl := Tabulate(w.Props, Ts, Ps, 2, chk.Verbose)

	chk.Int(tst, "number of rows", len(tbl.Rows), 6)
	chk.Int(tst, "number of errors", tbl.NumErrors(), 0)
	if tbl.ID == uuid.Nil {
		tst.Errorf("run identifier must be set\n")
	}
	Pr := tbl.Pressures()
	chk.Int(tst, "number of pressures", len(Pr), 2)
	chk.Float64(tst, "P0", 1e-17, Pr[0], 1e6)
	chk.Float64(tst, "P1", 1e-17, Pr[1], 25e6)

	// sorted rows equal to sequential results
	for i, r := range tbl.Rows {
		chk.Float64(tst, io.Sf("T%d", i), 1e-17, r.T, []float64{300, 400, 500}[i%3])
		res, err := w.Props(r.T, r.P)
		if err != nil {
			tst.Errorf("Props failed: %v\n", err)
			return
		}
		if r.Props != res {
			tst.Errorf("row %d differs from sequential result\n", i)
		}
	}

	iso := tbl.Isobar(1e6)
	chk.Int(tst, "isobar length", len(iso), 3)
	chk.Float64(tst, "D(300 K, 1 MPa)", 1e-8, iso[0].Props.Thermo.Density, 996.9600226949856)
}

func Test_tabulate02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tabulate02. failed points")

	w := newWater(tst)
	w.Solver.MaxIt = 1
	tbl := Tabulate(w.Props, []float64{312, 912}, []float64{0.1e6}, 0, false)
	chk.Int(tst, "number of rows", len(tbl.Rows), 2)
	chk.Int(tst, "number of errors", tbl.NumErrors(), 2)
	chk.Int(tst, "isobar length", len(tbl.Isobar(0.1e6)), 0)
	for _, r := range tbl.Rows {
		io.Pforan("%s\n", r.Err)
		if r.Props != (water.Props{}) {
			tst.Errorf("failed row must hold zero properties\n")
		}
	}
}

func Test_plot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot01")

	w := newWater(tst)
	tbl := Tabulate(w.Props, []float64{300, 350, 400, 450}, []float64{1e6, 10e6}, 0, false)
	tbl.Thermo = w.Thermo.Name

	p, err := Isobars(tbl, "cp")
	if err != nil {
		tst.Errorf("Isobars failed: %v\n", err)
		return
	}
	chk.String(tst, p.Y.Label.Text, "cp [J/(kg・K)]")

	_, err = Isobars(tbl, "viscosity")
	if err == nil {
		tst.Errorf("Isobars should have failed\n")
	}

	dirout := tst.TempDir()
	if chk.Verbose {
		dirout = "/tmp/gowater"
	}
	err = PlotIsobars(tbl, "density", dirout, "isobars-density.png")
	if err != nil {
		tst.Errorf("PlotIsobars failed: %v\n", err)
		return
	}
	if _, err := os.Stat(filepath.Join(dirout, "isobars-density.png")); err != nil {
		tst.Errorf("figure was not written: %v\n", err)
	}
}

func Test_store01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("store01")

	w := newWater(tst)
	w.Solver.MaxIt = 1
	tbl := Tabulate(w.Props, []float64{302, 400, 1010}, []float64{0.1e6, 10e6}, 0, false)
	tbl.Desc = "store01"
	tbl.Thermo = w.Thermo.Name
	tbl.Electro = w.Electro.Name
	nerr := tbl.NumErrors()
	io.Pforan("number of failed points = %d\n", nerr)
	chk.Int(tst, "number of failed points", nerr, 4)

	for _, path := range []string{":memory:", filepath.Join(tst.TempDir(), "tables.db")} {
		s, err := OpenStore(path)
		if err != nil {
			tst.Errorf("OpenStore failed: %v\n", err)
			return
		}
		defer s.Close()

		err = s.SaveTable(tbl)
		if err != nil {
			tst.Errorf("SaveTable failed: %v\n", err)
			return
		}
		err = s.SaveTable(tbl)
		if err == nil {
			tst.Errorf("saving the same run twice should fail\n")
		}

		runs, err := s.Runs()
		if err != nil {
			tst.Errorf("Runs failed: %v\n", err)
			return
		}
		chk.Int(tst, "number of runs", len(runs), 1)
		chk.String(tst, runs[0].ID, tbl.ID.String())
		chk.String(tst, runs[0].Electro, "johnson-norton")
		chk.Int(tst, "npoints", runs[0].Npoints, 6)
		chk.Int(tst, "nerrors", runs[0].Nerrors, nerr)

		res, err := s.LoadTable(tbl.ID)
		if err != nil {
			tst.Errorf("LoadTable failed: %v\n", err)
			return
		}
		chk.String(tst, res.Desc, "store01")
		if !res.Created.Equal(tbl.Created) {
			tst.Errorf("creation times differ: %v != %v\n", res.Created, tbl.Created)
		}
		chk.Int(tst, "number of rows", len(res.Rows), len(tbl.Rows))
		for i := range res.Rows {
			if res.Rows[i] != tbl.Rows[i] {
				tst.Errorf("row %d differs:\n%+v\n%+v\n", i, res.Rows[i], tbl.Rows[i])
			}
		}

		err = s.DeleteRun(tbl.ID)
		if err != nil {
			tst.Errorf("DeleteRun failed: %v\n", err)
		}
		_, err = s.LoadTable(tbl.ID)
		if err == nil {
			tst.Errorf("LoadTable should have failed after deletion\n")
		}
		err = s.DeleteRun(tbl.ID)
		if err == nil {
			tst.Errorf("DeleteRun should have failed for missing run\n")
		}
	}
}
