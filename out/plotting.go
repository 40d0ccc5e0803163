// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// figure size
var (
	FigWidth  = 6 * vg.Inch
	FigHeight = 4 * vg.Inch
)

// Isobars returns a plot of quantity key against temperature with one line per pressure
func Isobars(tbl *Table, key string) (p *plot.Plot, err error) {
	q, err := GetQuantity(key)
	if err != nil {
		return
	}
	p = plot.New()
	p.Title.Text = io.Sf("%s (%s)", q.Label, tbl.Thermo)
	p.X.Label.Text = "T [K]"
	p.Y.Label.Text = q.GetLabel()
	p.Legend.Top = true
	for i, P := range tbl.Pressures() {
		rows := tbl.Isobar(P)
		if len(rows) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(rows))
		for j, r := range rows {
			xys[j].X = r.T
			xys[j].Y = q.Get(r.Props)
		}
		l, e := plotter.NewLine(xys)
		if e != nil {
			return nil, chk.Err("cannot plot isobar P = %g:\n%v", P, e)
		}
		l.Color = plotutil.Color(i)
		l.Dashes = plotutil.Dashes(i)
		p.Add(l)
		p.Legend.Add(io.Sf("P = %g MPa", P/1e6), l)
	}
	return
}

// PlotIsobars saves a figure with the isobars of quantity key. The format is given by the
// extension of fname; e.g. ".png", ".svg", ".pdf"
func PlotIsobars(tbl *Table, key, dirout, fname string) (err error) {
	p, err := Isobars(tbl, key)
	if err != nil {
		return
	}
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return chk.Err("cannot create directory %q:\n%v", dirout, err)
	}
	fn := filepath.Join(dirout, fname)
	err = p.Save(FigWidth, FigHeight, fn)
	if err != nil {
		return chk.Err("cannot save figure %q:\n%v", fn, err)
	}
	io.Pf("file <%s> written\n", fn)
	return
}
