// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the tabulation of water properties on temperature-pressure grids,
// plotting of isobars and persistence of tables
package out

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/gowater/gowater/mdl/water"
)

// Quantity defines one tabulated property
type Quantity struct {
	Key   string                      // key; e.g. "density"
	Label string                      // label; e.g. "ρ"
	Unit  string                      // unit; e.g. "kg/m³"
	Get   func(r water.Props) float64 // extracts the value
}

// GetLabel returns the axis label of a quantity; e.g. "ρ [kg/m³]"
func (o Quantity) GetLabel() string {
	if o.Unit == "" {
		return o.Label
	}
	return o.Label + " [" + o.Unit + "]"
}

// GetQuantity returns the quantity with the given key
func GetQuantity(key string) (q Quantity, err error) {
	q, ok := quantities[key]
	if !ok {
		err = chk.Err("quantity %q is not available. options are %v", key, Keys())
	}
	return
}

// Keys returns the sorted keys of all quantities
func Keys() (keys []string) {
	for key := range quantities {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return
}

// quantities holds all quantities
var quantities = map[string]Quantity{}

// add adds a quantity to the database
func add(key, label, unit string, get func(r water.Props) float64) {
	quantities[key] = Quantity{key, label, unit, get}
}

// set quantities
func init() {
	add("temperature", "T", "K", func(r water.Props) float64 { return r.Thermo.Temperature })
	add("pressure", "P", "Pa", func(r water.Props) float64 { return r.Thermo.Pressure })
	add("density", "ρ", "kg/m³", func(r water.Props) float64 { return r.Thermo.Density })
	add("volume", "v", "m³/kg", func(r water.Props) float64 { return r.Thermo.Volume })
	add("entropy", "s", "J/(kg・K)", func(r water.Props) float64 { return r.Thermo.Entropy })
	add("internalEnergy", "u", "J/kg", func(r water.Props) float64 { return r.Thermo.InternalEnergy })
	add("enthalpy", "h", "J/kg", func(r water.Props) float64 { return r.Thermo.Enthalpy })
	add("helmholtz", "a", "J/kg", func(r water.Props) float64 { return r.Thermo.Helmholtz })
	add("gibbs", "g", "J/kg", func(r water.Props) float64 { return r.Thermo.Gibbs })
	add("cv", "cv", "J/(kg・K)", func(r water.Props) float64 { return r.Thermo.Cv })
	add("cp", "cp", "J/(kg・K)", func(r water.Props) float64 { return r.Thermo.Cp })
	add("speedOfSound", "w", "m/s", func(r water.Props) float64 { return r.Thermo.SpeedOfSound })
	add("epsilon", "ε", "", func(r water.Props) float64 { return r.Electro.Epsilon })
	add("bornZ", "Z", "", func(r water.Props) float64 { return r.Electro.BornZ })
	add("bornY", "Y", "1/K", func(r water.Props) float64 { return r.Electro.BornY })
	add("bornQ", "Q", "1/Pa", func(r water.Props) float64 { return r.Electro.BornQ })
	add("bornN", "N", "1/Pa²", func(r water.Props) float64 { return r.Electro.BornN })
	add("bornU", "U", "1/(K・Pa)", func(r water.Props) float64 { return r.Electro.BornU })
	add("bornX", "X", "1/K²", func(r water.Props) float64 { return r.Electro.BornX })
}
