// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package water

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gowater/gowater/diag"
	"github.com/gowater/gowater/mdl/thermo"
)

func Test_water01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("water01. default models")

	w, err := New("", "")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.String(tst, w.Thermo.Name, DefaultThermo)
	chk.String(tst, w.Electro.Name, DefaultElectro)

	var rec diag.Recorder
	w.SetWarn(rec.Sink())
	res, err := w.Props(300, 1e6)
	if err != nil {
		tst.Errorf("Props failed: %v\n", err)
		return
	}
	io.Pforan("D = %v  ε = %v\n", res.Thermo.Density, res.Electro.Epsilon)
	chk.Int(tst, "number of diagnostics", rec.Len(), 0)
	chk.Float64(tst, "D", 1e-8, res.Thermo.Density, 996.9600226949856)
	chk.Float64(tst, "Z・ε", 1e-15, res.Electro.BornZ*res.Electro.Epsilon, -1)

	// same as direct evaluation at the solved density
	ts := w.ThermoPropsD(300, res.Thermo.Density)
	chk.Float64(tst, "P", 1e-8*1e6, ts.Pressure, res.Thermo.Pressure)
	chk.Float64(tst, "h", 1e-12, ts.Enthalpy, res.Thermo.Enthalpy)
	es := w.ElectroProps(ts)
	chk.Float64(tst, "ε", 1e-12, es.Epsilon, res.Electro.Epsilon)
}

func Test_water02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("water02. state of matter")

	w, err := New("wagner-pruss", "uematsu-franck")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	w.SetWarn(diag.Silent)

	liq, err := w.ThermoPropsSOM(400, 0.1e6, thermo.Liquid)
	if err != nil {
		tst.Errorf("ThermoPropsSOM failed: %v\n", err)
		return
	}
	gas, err := w.ThermoPropsSOM(400, 0.1e6, thermo.Gas)
	if err != nil {
		tst.Errorf("ThermoPropsSOM failed: %v\n", err)
		return
	}
	io.Pforan("liquid: D = %v  gas: D = %v\n", liq.Density, gas.Density)
	chk.Float64(tst, "liquid D", 1e-2, liq.Density, 937.41)
	chk.Float64(tst, "gas D", 1e-4, gas.Density, 0.54761)
}

func Test_water03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("water03. out-of-range diagnostics")

	w, err := New("", "")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	var rec diag.Recorder
	w.SetWarn(rec.Sink())

	// temperature above range: equation of state and dielectric model
	res, err := w.Props(1500, 0.1e6)
	if err != nil {
		tst.Errorf("Props failed: %v\n", err)
		return
	}
	for _, msg := range rec.Messages() {
		io.Pforan("%s\n", msg)
	}
	chk.Int(tst, "number of diagnostics", rec.Len(), 2)
	chk.Float64(tst, "D", 1e-6, res.Thermo.Density, 0.14445130)

	// pressure above range: equation of state only
	rec.Reset()
	ts, err := w.ThermoProps(500, 1200e6)
	if err != nil {
		tst.Errorf("ThermoProps failed: %v\n", err)
		return
	}
	chk.Int(tst, "number of diagnostics", rec.Len(), 1)
	chk.Float64(tst, "D", 1e-4, ts.Density, 1170.5321)

	// invalid names
	_, err = New("iapws-97", "")
	if err == nil {
		tst.Errorf("New should have failed with unknown equation of state\n")
	}
	_, err = New("", "helgeson-kirkham")
	if err == nil {
		tst.Errorf("New should have failed with unknown dielectric model\n")
	}
}
