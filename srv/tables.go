// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srv

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/gowater/gowater/out"
)

// TableRequest holds the input of a tabulation
type TableRequest struct {
	Desc    string    `json:"desc"`
	Thermo  string    `json:"thermo"`
	Electro string    `json:"electro"`
	Ts      []float64 `json:"ts"` // temperatures [K]
	Ps      []float64 `json:"ps"` // pressures [Pa]
}

// TablesAPI tabulates properties and serves stored tables
type TablesAPI struct {
	Router     fiber.Router
	Store      *out.Store
	MaxWorkers int
	MaxPoints  int
}

// Register registers the routes
//  POST   /      tabulate TableRequest and store the result
//  GET    /      summaries of stored tables
//  GET    /:id   stored table
//  DELETE /:id   remove stored table
func (api *TablesAPI) Register() {

	api.Router.Post("/", func(c *fiber.Ctx) error {
		var req TableRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest("cannot parse table request: %v", err)
		}
		n := len(req.Ts) * len(req.Ps)
		if n == 0 {
			return badRequest("at least one temperature and one pressure are required")
		}
		if n > api.MaxPoints {
			return badRequest("too many grid points: %d > %d", n, api.MaxPoints)
		}
		for _, v := range append(append([]float64{}, req.Ts...), req.Ps...) {
			if !finite(v) || v <= 0 {
				return badRequest("temperatures and pressures must be positive and finite")
			}
		}
		w, rec, err := newWater(req.Thermo, req.Electro)
		if err != nil {
			return err
		}
		tbl := out.Tabulate(w.Props, req.Ts, req.Ps, api.MaxWorkers, false)
		tbl.Desc = req.Desc
		tbl.Thermo = w.Thermo.Name
		tbl.Electro = w.Electro.Name
		if err := api.Store.SaveTable(tbl); err != nil {
			return err
		}
		log.Infof("table %s stored: %d points, %d errors", tbl.ID, len(tbl.Rows), tbl.NumErrors())
		return c.Status(fiber.StatusCreated).JSON(Response{Success: true, Data: tbl, Warnings: rec.Messages()})
	})

	api.Router.Get("/", func(c *fiber.Ctx) error {
		runs, err := api.Store.Runs()
		if err != nil {
			return err
		}
		return success(c, runs, nil)
	})

	api.Router.Get("/:id", func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return badRequest("invalid table identifier %q", c.Params("id"))
		}
		tbl, err := api.Store.LoadTable(id)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return success(c, tbl, nil)
	})

	api.Router.Delete("/:id", func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return badRequest("invalid table identifier %q", c.Params("id"))
		}
		if err := api.Store.DeleteRun(id); err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return success(c, nil, nil)
	})
}
