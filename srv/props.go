// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srv

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gowater/gowater/diag"
	"github.com/gowater/gowater/mdl/electro"
	"github.com/gowater/gowater/mdl/eos"
	"github.com/gowater/gowater/mdl/thermo"
	"github.com/gowater/gowater/mdl/water"
	"github.com/gowater/gowater/out"
)

// PropsAPI computes properties at one state
type PropsAPI struct {
	Router fiber.Router
}

// Register registers the routes
//  GET /models                                  names of available models
//  GET /quantities                              keys of tabulated quantities
//  GET /thermo?T=&P=[&model=][&som=]            thermodynamic state
//  GET /props?T=&P=[&thermo=][&electro=]        thermodynamic and electrostatic states
func (api *PropsAPI) Register() {

	api.Router.Get("/models", func(c *fiber.Ctx) error {
		return success(c, fiber.Map{"thermo": eos.Names(), "electro": electro.Names()}, nil)
	})

	api.Router.Get("/quantities", func(c *fiber.Ctx) error {
		return success(c, out.Keys(), nil)
	})

	api.Router.Get("/thermo", func(c *fiber.Ctx) error {
		T, P, err := queryTP(c)
		if err != nil {
			return err
		}
		w, rec, err := newWater(c.Query("model"), "")
		if err != nil {
			return err
		}
		var ts thermo.State
		if som := c.Query("som"); som != "" {
			ts, err = w.ThermoPropsSOM(T, P, thermo.ParseStateOfMatter(som))
		} else {
			ts, err = w.ThermoProps(T, P)
		}
		if err != nil {
			return err
		}
		return success(c, ts, rec.Messages())
	})

	api.Router.Get("/props", func(c *fiber.Ctx) error {
		T, P, err := queryTP(c)
		if err != nil {
			return err
		}
		w, rec, err := newWater(c.Query("thermo"), c.Query("electro"))
		if err != nil {
			return err
		}
		res, err := w.Props(T, P)
		if err != nil {
			return err
		}
		return success(c, res, rec.Messages())
	})
}

// queryTP parses temperature and pressure
func queryTP(c *fiber.Ctx) (T, P float64, err error) {
	T, err = queryFloat(c, "T")
	if err != nil {
		return
	}
	P, err = queryFloat(c, "P")
	if err != nil {
		return
	}
	if T <= 0 || P <= 0 {
		err = badRequest("temperature and pressure must be positive: T = %g, P = %g", T, P)
	}
	return
}

// newWater returns a water model recording its diagnostics
func newWater(thermoName, electroName string) (*water.Water, *diag.Recorder, error) {
	w, err := water.New(thermoName, electroName)
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	rec := new(diag.Recorder)
	w.SetWarn(rec.Sink())
	return w, rec, nil
}
