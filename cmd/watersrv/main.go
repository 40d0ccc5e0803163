// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/io"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gowater/gowater/out"
	"github.com/gowater/gowater/srv"
)

func main() {

	// read input parameters
	addr := io.ArgToString(0, ":8080")
	dbpath := io.ArgToString(1, "gowater.db")
	maxWorkers := io.ArgToInt(2, 4)
	maxPoints := io.ArgToInt(3, 10000)

	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"address to listen on", "addr", addr,
		"tables database path", "dbpath", dbpath,
		"max simultaneous workers", "maxWorkers", maxWorkers,
		"max grid points per table", "maxPoints", maxPoints,
	))

	// storage
	store, err := out.OpenStore(dbpath)
	if err != nil {
		log.Fatalf("cannot open tables database: %v", err)
	}
	defer store.Close()

	// serve
	s := srv.New(store, maxWorkers, maxPoints)
	if err := s.Listen(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
