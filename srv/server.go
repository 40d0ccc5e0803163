// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package srv implements an HTTP service computing water properties
package srv

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gowater/gowater/mdl/thermo"
	"github.com/gowater/gowater/out"
)

// Server holds the HTTP application
type Server struct {
	App        *fiber.App // application
	Store      *out.Store // tables storage; nil disables the tables routes
	MaxWorkers int        // max number of simultaneous workers when tabulating
	MaxPoints  int        // max number of grid points per table
}

// New returns a new server with all routes registered
func New(store *out.Store, maxWorkers, maxPoints int) *Server {
	if maxPoints <= 0 {
		maxPoints = 10000
	}
	o := &Server{Store: store, MaxWorkers: maxWorkers, MaxPoints: maxPoints}
	o.App = fiber.New(fiber.Config{
		AppName:      "gowater",
		ErrorHandler: errorHandler,
	})
	api := o.App.Group("/api")
	(&PropsAPI{Router: api}).Register()
	if store != nil {
		(&TablesAPI{Router: api.Group("/tables"), Store: store, MaxWorkers: maxWorkers, MaxPoints: maxPoints}).Register()
	}
	return o
}

// Listen serves HTTP requests on addr
func (o *Server) Listen(addr string) error {
	log.Infof("gowater listening on %s", addr)
	return o.App.Listen(addr)
}

// errorHandler converts errors into JSON responses
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	switch {
	case errors.As(err, &e):
		code = e.Code
	case thermo.IsNonConvergence(err):
		code = fiber.StatusUnprocessableEntity
	}
	if code >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(Response{Success: false, Error: err.Error()})
}
