// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srv

import (
	"math"
	"strconv"

	"github.com/cpmech/gosl/io"
	"github.com/gofiber/fiber/v2"
)

// Response is the envelope of all responses
type Response struct {
	Success  bool        `json:"success"`
	Data     interface{} `json:"data,omitempty"`
	Warnings []string    `json:"warnings,omitempty"`
	Error    string      `json:"error,omitempty"`
}

// success writes data and the diagnostics collected while computing it
func success(c *fiber.Ctx, data interface{}, warnings []string) error {
	return c.JSON(Response{Success: true, Data: data, Warnings: warnings})
}

// badRequest returns an error with status 400
func badRequest(format string, args ...interface{}) error {
	return fiber.NewError(fiber.StatusBadRequest, io.Sf(format, args...))
}

// queryFloat parses a required float query parameter
func queryFloat(c *fiber.Ctx, key string) (float64, error) {
	s := c.Query(key)
	if s == "" {
		return 0, badRequest("query parameter %q is required", key)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !finite(v) {
		return 0, badRequest("query parameter %q must be a finite number: %q", key, s)
	}
	return v, nil
}

// finite returns whether v is neither NaN nor ±Inf
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
