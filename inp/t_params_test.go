// Copyright 2020 The fastSF Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_params01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("params01. read parameters file")

	par, err := ReadParams("data/para.sf")
	if err != nil {
		tst.Errorf("cannot read parameters:\n%v\n", err)
		return
	}
	if chk.Verbose {
		io.Pforan("%+v\n", par)
	}
	chk.String(tst, par.DirOut, "/tmp/fastsf")
	chk.String(tst, par.DirIn, "in") // default
	chk.Int(tst, "nx", par.Nx, 16)
	chk.Int(tst, "ny", par.Ny, 16)
	chk.Int(tst, "nz", par.Nz, 16)
	chk.Float64(tst, "lx", 1e-17, par.Lx, 1.0)
	chk.Int(tst, "q1", par.Q1, 2)
	chk.Int(tst, "q2", par.Q2, 4)
	chk.Int(tst, "nq", par.Nq(), 3)
	chk.Int(tst, "px", par.Px, 2)
	chk.Int(tst, "procs", par.Procs, 4)
	chk.Int(tst, "py", par.Py(), 2)
	chk.Int(tst, "n2", par.N2(), 16)
	if !par.Test {
		tst.Errorf("test flag was not read\n")
		return
	}
	if err := par.Validate(); err != nil {
		tst.Errorf("validation failed:\n%v\n", err)
	}
}

func Test_params02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("params02. validation of the process grid")

	ok := []Params{
		{Nx: 8, Ny: 8, Nz: 8, Q1: 2, Q2: 4, Px: 1, Procs: 1},
		{Nx: 8, Ny: 8, Nz: 8, Q1: 2, Q2: 4, Px: 2, Procs: 4},
		{Nx: 8, Ny: 8, Nz: 8, Q1: 2, Q2: 4, Px: 4, Procs: 4},  // px == Nx/2
		{Nx: 12, Ny: 8, Nz: 8, Q1: 2, Q2: 4, Px: 3, Procs: 3}, // 6/3 = 2 even
		{TwoDim: true, Nx: 8, Nz: 8, Q1: 1, Q2: 2, Px: 2, Procs: 4},
	}
	for i, par := range ok {
		if err := par.Validate(); err != nil {
			tst.Errorf("case %d should be valid:\n%v\n", i, err)
			return
		}
	}

	bad := []Params{
		{Nx: 8, Ny: 8, Nz: 8, Q1: 2, Q2: 4, Px: 3, Procs: 4},  // px does not divide P
		{Nx: 8, Ny: 8, Nz: 8, Q1: 2, Q2: 4, Px: 8, Procs: 8},  // px > Nx/2
		{Nx: 12, Ny: 8, Nz: 8, Q1: 2, Q2: 4, Px: 2, Procs: 2}, // 6/2 = 3 odd: breaks pairing
		{Nx: 8, Ny: 12, Nz: 8, Q1: 2, Q2: 4, Px: 2, Procs: 4}, // same along y
		{Nx: 8, Ny: 8, Nz: 8, Q1: 4, Q2: 2, Px: 1, Procs: 1},  // empty order range
		{Nx: 8, Ny: 8, Nz: 8, Q1: 2, Q2: 4, Px: 4, Procs: 2},  // px > P
		{Nx: 1, Ny: 8, Nz: 8, Q1: 2, Q2: 4, Px: 1, Procs: 1},  // degenerate axis
		{TwoDim: true, Nx: 8, Nz: 12, Q1: 1, Q2: 2, Px: 4, Procs: 8}, // 6/2 = 3 odd along z
	}
	for i, par := range bad {
		err := par.Validate()
		if err == nil {
			tst.Errorf("case %d should be rejected\n", i)
			return
		}
		if chk.Verbose {
			io.Pf("case %d rejected: %v\n", i, err)
		}
	}
}
