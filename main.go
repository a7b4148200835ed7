// Copyright 2020 The fastSF Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/ShubhadeepSadhukhan1993/Kolmogorov41/ana"
	"github.com/ShubhadeepSadhukhan1993/Kolmogorov41/inp"
	"github.com/ShubhadeepSadhukhan1993/Kolmogorov41/out"
	"github.com/ShubhadeepSadhukhan1993/Kolmogorov41/sf"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			if !mpi.IsOn() || mpi.WorldRank() == 0 {
				io.PfRed("\nERROR: %v\n", err)
				io.Pf("See location of error below:\n")
				chk.Verbose = true
				for i := 5; i > 3; i-- {
					chk.CallerInfo(i)
				}
			}
		}
		mpi.Stop()
	}()
	mpi.Start()
	startTime := time.Now()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "in/para", ".sf", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, false)

	par, err := inp.ReadParams(fnamepath)
	if err != nil {
		chk.Panic("cannot read input parameters:\n%v", err)
	}
	if mpi.IsOn() && mpi.WorldSize() > 1 {
		par.Procs = mpi.WorldSize()
	}
	err = par.Validate()
	if err != nil {
		chk.Panic("incompatible input parameters:\n%v", err)
	}

	// computation context
	m := sf.NewMain(par, verbose)

	// message
	if m.ShowMsg {
		io.PfWhite("\nfastSF -- structure functions of scalar and velocity field data\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"parameters file path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"plot 2D results", "doplot", doplot,
		))
		io.Pf("> Number of processes in x direction: %d\n", par.Px)
		if par.TwoDim {
			io.Pf("> Number of processes in z direction: %d\n", par.Py())
		} else {
			io.Pf("> Number of processes in y direction: %d\n", par.Py())
		}
	}

	// input fields: generated in test mode, read from disk otherwise
	if par.Test {
		if m.ShowMsg {
			io.Pf("\n> WARNING: running in TEST mode; idealized fields are generated and taken as inputs\n")
		}
		switch {
		case par.TwoDim && par.Scalar:
			m.T2 = ana.LinearScalar2D(m.Grid)
		case par.TwoDim:
			m.U2, m.W2 = ana.LinearVelocity2D(m.Grid)
		case par.Scalar:
			m.T = ana.LinearScalar3D(m.Grid)
		default:
			m.U, m.V, m.W = ana.LinearVelocity3D(m.Grid)
		}
	} else {
		if m.ShowMsg {
			io.Pf("\n> Reading fields from %s\n", par.DirIn)
		}
		switch {
		case par.TwoDim && par.Scalar:
			m.T2 = out.ReadField2(par.DirIn, "T.Fr", par.Nx, par.Nz)
		case par.TwoDim:
			m.U2 = out.ReadField2(par.DirIn, "U.V1r", par.Nx, par.Nz)
			m.W2 = out.ReadField2(par.DirIn, "U.V3r", par.Nx, par.Nz)
		case par.Scalar:
			m.T = out.ReadField3(par.DirIn, "T.Fr", par.Nx, par.Ny, par.Nz)
		default:
			m.U = out.ReadField3(par.DirIn, "U.V1r", par.Nx, par.Ny, par.Nz)
			m.V = out.ReadField3(par.DirIn, "U.V2r", par.Nx, par.Ny, par.Nz)
			m.W = out.ReadField3(par.DirIn, "U.V3r", par.Nx, par.Ny, par.Nz)
		}
	}

	// compute structure functions
	parTime := time.Now()
	m.Run()
	parElapsed := time.Now().Sub(parTime)

	// write results and validate
	if m.Root() {
		writeResults(m)
		if doplot && par.TwoDim {
			plotResults(m)
		}
		if par.Test {
			validate(m)
		}
		io.Pf("\n> Time elapsed for the parallel part: %v\n", parElapsed)
		io.Pf("> Total time elapsed: %v\n", time.Now().Sub(startTime))
		io.PfGreen("> Success\n")
	}
}

// writeResults persists the assembled grids, one file per order
func writeResults(m *sf.Main) {
	par := m.Par
	switch {
	case par.TwoDim && par.Scalar:
		out.WriteSFGrid2D(par.DirOut, "SF_Grid_scalar", m.Scal2, m.ShowMsg)
	case par.TwoDim:
		out.WriteSFGrid2D(par.DirOut, "SF_Grid_pll", m.Pll2, m.ShowMsg)
		if !par.LongOnly {
			out.WriteSFGrid2D(par.DirOut, "SF_Grid_perp", m.Perp2, m.ShowMsg)
		}
	case par.Scalar:
		out.WriteSFGrid3D(par.DirOut, "SF_Grid_scalar", m.Scal, m.ShowMsg)
	default:
		out.WriteSFGrid3D(par.DirOut, "SF_Grid_pll", m.Pll, m.ShowMsg)
		if !par.LongOnly {
			out.WriteSFGrid3D(par.DirOut, "SF_Grid_perp", m.Perp, m.ShowMsg)
		}
	}
}

// plotResults draws filled contours of every order of the assembled 2D
// result grids next to the persisted files
func plotResults(m *sf.Main) {
	par := m.Par
	plot := func(key string, g *sf.SFGrid2D) {
		for q := g.Q1; q <= g.Q2; q++ {
			out.PlotOrder2D(m.Grid, g, q, par.DirOut, key+io.Sf("%d", q))
		}
	}
	if par.Scalar {
		plot("SF_Grid_scalar", m.Scal2)
		return
	}
	plot("SF_Grid_pll", m.Pll2)
	if !par.LongOnly {
		plot("SF_Grid_perp", m.Perp2)
	}
}

// validate compares the assembled grids with the analytical solutions of
// the idealized fields generated in test mode
func validate(m *sf.Main) {
	par := m.Par
	switch {
	case par.TwoDim && par.Scalar:
		ana.Report("SCALAR_2D", ana.VerifyScalar2D(m.Grid, m.Scal2))
	case par.TwoDim:
		ana.Report("VECTOR_2D", ana.VerifyVector2D(m.Grid, m.Pll2, m.Perp2))
	case par.Scalar:
		ana.Report("SCALAR_3D", ana.VerifyScalar3D(m.Grid, m.Scal))
	default:
		ana.Report("VECTOR_3D", ana.VerifyVector3D(m.Grid, m.Pll, m.Perp))
	}
}
