// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"sort"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/gowater/gowater/mdl/water"
)

// PropsFunc computes the properties of water at temperature T [K] and pressure P [Pa]
type PropsFunc func(T, P float64) (water.Props, error)

// Row holds the properties at one grid point
type Row struct {
	T     float64     `json:"t"`               // temperature [K]
	P     float64     `json:"p"`               // pressure [Pa]
	Props water.Props `json:"props"`           // properties; zero if Err is not empty
	Err   string      `json:"error,omitempty"` // error message
}

// Table holds properties on a temperature-pressure grid
type Table struct {
	ID      uuid.UUID `json:"id"`      // run identifier
	Desc    string    `json:"desc"`    // description
	Thermo  string    `json:"thermo"`  // name of equation of state
	Electro string    `json:"electro"` // name of dielectric model
	Created time.Time `json:"created"` // creation time
	Rows    []Row     `json:"rows"`    // sorted by pressure, then temperature
}

// NumErrors returns the number of grid points that failed
func (o *Table) NumErrors() (n int) {
	for _, r := range o.Rows {
		if r.Err != "" {
			n++
		}
	}
	return
}

// Pressures returns the sorted distinct pressures
func (o *Table) Pressures() (res []float64) {
	for i, r := range o.Rows {
		if i == 0 || r.P != o.Rows[i-1].P {
			res = append(res, r.P)
		}
	}
	return
}

// Isobar returns the successful rows at pressure P sorted by temperature
func (o *Table) Isobar(P float64) (res []Row) {
	for _, r := range o.Rows {
		if r.P == P && r.Err == "" {
			res = append(res, r)
		}
	}
	return
}

// Tabulate computes the properties at all (T, P) combinations using at most nworkers
// simultaneous workers (0 means one per point). Rows are sorted by pressure, then temperature.
// Failed points are kept with their error message.
func Tabulate(calc PropsFunc, Ts, Ps []float64, nworkers int, verbose bool) *Table {

	// grid
	Ts, Ps = sorted(Ts), sorted(Ps)
	rows := make([]Row, len(Ts)*len(Ps))
	for j, P := range Ps {
		for i, T := range Ts {
			rows[j*len(Ts)+i] = Row{T: T, P: P}
		}
	}
	if nworkers < 1 || nworkers > len(rows) {
		nworkers = len(rows)
	}

	// workers; each one owns the rows whose indices it receives
	indices := make(chan int)
	var wg sync.WaitGroup
	wg.Add(nworkers)
	for w := 0; w < nworkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range indices {
				r := &rows[idx]
				props, err := calc(r.T, r.P)
				if err != nil {
					r.Err = err.Error()
					if verbose {
						log.Warnf("Tabulate: T = %g K  P = %g Pa: %v", r.T, r.P, err)
					}
					continue
				}
				r.Props = props
				if verbose {
					log.Infof("Tabulate: T = %g K  P = %g Pa  D = %g kg/m³", r.T, r.P, props.Thermo.Density)
				}
			}
		}()
	}
	for idx := range rows {
		indices <- idx
	}
	close(indices)
	wg.Wait()
	return &Table{ID: uuid.New(), Created: time.Now().UTC(), Rows: rows}
}

// sorted returns a sorted copy of x
func sorted(x []float64) []float64 {
	res := append([]float64{}, x...)
	sort.Float64s(res)
	return res
}
