// Copyright 2020 The fastSF Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sf

import (
	"github.com/ShubhadeepSadhukhan1993/Kolmogorov41/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/mpi"
)

// Main holds all data for one structure-function computation: parameters,
// grid, resident input fields, process bookkeeping and the assembled
// result grids. One Main is built per run; there is no package-level
// mutable state.
type Main struct {
	Par  *inp.Params // input parameters (already validated)
	Grid *Grid       // grid extents and spacing
	Topo Topology    // process grid

	// resident input fields; the caller fills the ones matching the case.
	// Every rank holds the full field; the core only reads them.
	U, V, W *Field3 // 3D velocity components
	T       *Field3 // 3D scalar field
	U2, W2  *Field2 // 2D velocity components
	T2      *Field2 // 2D scalar field

	// assembled results, coordinator only
	Pll, Perp, Scal    *SFGrid3D // 3D: longitudinal, transverse, scalar
	Pll2, Perp2, Scal2 *SFGrid2D // 2D: longitudinal, transverse, scalar

	// multiprocessing data
	Proc    int  // process id
	Nproc   int  // number of processes actually running
	ShowMsg bool // show messages

	comm *mpi.Communicator
}

// NewMain returns a new Main structure wired to the process environment:
// with MPI on, ranks and sizes come from the world communicator and must
// match the declared process grid; otherwise the run executes in a single
// process that emulates every rank of the declared process grid in turn.
func NewMain(par *inp.Params, verbose bool) (o *Main) {
	o = &Main{Par: par}
	if par.TwoDim {
		o.Grid = NewGrid(par.Nx, 1, par.Nz, par.Lx, 0, par.Lz)
	} else {
		o.Grid = NewGrid(par.Nx, par.Ny, par.Nz, par.Lx, par.Ly, par.Lz)
	}
	o.Nproc = 1
	if mpi.IsOn() && mpi.WorldSize() > 1 {
		o.comm = mpi.NewCommunicator(nil)
		o.Proc = o.comm.Rank()
		o.Nproc = o.comm.Size()
		if o.Nproc != par.Procs {
			chk.Panic("parameters declare P=%d processes but the MPI world has %d", par.Procs, o.Nproc)
		}
	}
	o.Topo = NewTopology(par.Procs, par.Px)
	o.ShowMsg = verbose && o.Proc == 0
	return
}

// Root tells whether this process is the coordinator
func (o *Main) Root() bool {
	return o.Proc == 0
}

// Run computes the structure functions for the configured case and
// assembles the result grids on the coordinator. Input fields must be
// resident before the call.
func (o *Main) Run() {
	o.allocGrids()
	switch {
	case o.Par.TwoDim && o.Par.Scalar:
		o.runScalar2D()
	case o.Par.TwoDim:
		o.runVec2D()
	case o.Par.Scalar:
		o.runScalar3D()
	default:
		o.runVec3D()
	}
}

// allocGrids allocates the zeroed result grids on the coordinator
func (o *Main) allocGrids() {
	if !o.Root() {
		return
	}
	g, par := o.Grid, o.Par
	if par.TwoDim {
		if par.Scalar {
			o.Scal2 = NewSFGrid2D(g.Nx/2, g.Nz/2, par.Q1, par.Q2)
			return
		}
		o.Pll2 = NewSFGrid2D(g.Nx/2, g.Nz/2, par.Q1, par.Q2)
		if !par.LongOnly {
			o.Perp2 = NewSFGrid2D(g.Nx/2, g.Nz/2, par.Q1, par.Q2)
		}
		return
	}
	if par.Scalar {
		o.Scal = NewSFGrid3D(g.Nx/2, g.Ny/2, g.Nz/2, par.Q1, par.Q2)
		return
	}
	o.Pll = NewSFGrid3D(g.Nx/2, g.Ny/2, g.Nz/2, par.Q1, par.Q2)
	if !par.LongOnly {
		o.Perp = NewSFGrid3D(g.Nx/2, g.Ny/2, g.Nz/2, par.Q1, par.Q2)
	}
}

// runVec3D computes S(lx,ly,lz) from 3D velocity field data
func (o *Main) runVec3D() {
	if o.ShowMsg {
		if o.Par.LongOnly {
			io.Pf("> Computing longitudinal S(lx, ly, lz) using 3D velocity field data\n")
		} else {
			io.Pf("> Computing longitudinal and transverse S(lx, ly, lz) using 3D velocity field data\n")
		}
	}
	g := o.Grid
	n := (g.Nx / 2) * (g.Ny / 2) * (g.Nz / 2) * o.Par.Nq()
	ngrids := 1
	var dst []la.Vector
	if o.Root() {
		dst = []la.Vector{o.Pll.V}
	}
	if !o.Par.LongOnly {
		ngrids = 2
		if o.Root() {
			dst = append(dst, o.Perp.V)
		}
	}
	o.collect(n, ngrids, dst, o.vec3Drank)
	if o.Root() {
		o.Pll.ZeroDisplacement()
		if !o.Par.LongOnly {
			o.Perp.ZeroDisplacement()
		}
	}
}

// runScalar3D computes S(lx,ly,lz) from 3D scalar field data
func (o *Main) runScalar3D() {
	if o.ShowMsg {
		io.Pf("> Computing S(lx, ly, lz) using 3D scalar field data\n")
	}
	g := o.Grid
	n := (g.Nx / 2) * (g.Ny / 2) * (g.Nz / 2) * o.Par.Nq()
	var dst []la.Vector
	if o.Root() {
		dst = []la.Vector{o.Scal.V}
	}
	o.collect(n, 1, dst, o.scal3Drank)
	if o.Root() {
		o.Scal.ZeroDisplacement()
	}
}

// runVec2D computes S(lx,lz) from 2D velocity field data
func (o *Main) runVec2D() {
	if o.ShowMsg {
		if o.Par.LongOnly {
			io.Pf("> Computing longitudinal S(lx, lz) using 2D velocity field data\n")
		} else {
			io.Pf("> Computing longitudinal and transverse S(lx, lz) using 2D velocity field data\n")
		}
	}
	g := o.Grid
	n := (g.Nx / 2) * (g.Nz / 2) * o.Par.Nq()
	ngrids := 1
	var dst []la.Vector
	if o.Root() {
		dst = []la.Vector{o.Pll2.V}
	}
	if !o.Par.LongOnly {
		ngrids = 2
		if o.Root() {
			dst = append(dst, o.Perp2.V)
		}
	}
	o.collect(n, ngrids, dst, o.vec2Drank)
	if o.Root() {
		o.Pll2.ZeroDisplacement()
		if !o.Par.LongOnly {
			o.Perp2.ZeroDisplacement()
		}
	}
}

// runScalar2D computes S(lx,lz) from 2D scalar field data
func (o *Main) runScalar2D() {
	if o.ShowMsg {
		io.Pf("> Computing S(lx, lz) using 2D scalar field data\n")
	}
	g := o.Grid
	n := (g.Nx / 2) * (g.Nz / 2) * o.Par.Nq()
	var dst []la.Vector
	if o.Root() {
		dst = []la.Vector{o.Scal2.V}
	}
	o.collect(n, 1, dst, o.scal2Drank)
	if o.Root() {
		o.Scal2.ZeroDisplacement()
	}
}

// vec3Drank computes the contribution of one rank for the 3D vector case:
// for each assigned (x,y) pair the full z half-range is swept locally.
// Returned offsets key each value to its (displacement, order) cell.
func (o *Main) vec3Drank(rank int) (off []int, vals [][]float64) {
	g := o.Grid
	h1, h2, h3 := g.Nx/2, g.Ny/2, g.Nz/2
	nq := o.Par.Nq()
	both := !o.Par.LongOnly
	pairs := o.Topo.Pairs(rank, h1, h2)
	kern := newVecKern3(g, o.U, o.V, o.W, o.Par.Q1, o.Par.Q2)
	shape := &SFGrid3D{Nx: h1, Ny: h2, Nz: h3, Q1: o.Par.Q1, Q2: o.Par.Q2}

	nvals := len(pairs) * h3 * nq
	off = make([]int, 0, nvals)
	vals = [][]float64{make([]float64, 0, nvals)}
	if both {
		vals = append(vals, make([]float64, 0, nvals))
	}
	for _, xy := range pairs {
		x, y := xy[0], xy[1]
		for z := 0; z < h3; z++ {
			if x == 0 && y == 0 && z == 0 {
				continue // force-set by the zero-displacement convention
			}
			pll, perp := kern.vec(x, y, z, both)
			for p := 0; p < nq; p++ {
				off = append(off, shape.Idx(x, y, z, p))
				vals[0] = append(vals[0], pll[p])
				if both {
					vals[1] = append(vals[1], perp[p])
				}
			}
		}
	}
	return
}

// scal3Drank computes the contribution of one rank for the 3D scalar case
func (o *Main) scal3Drank(rank int) (off []int, vals [][]float64) {
	g := o.Grid
	h1, h2, h3 := g.Nx/2, g.Ny/2, g.Nz/2
	nq := o.Par.Nq()
	pairs := o.Topo.Pairs(rank, h1, h2)
	kern := newScalKern3(g, o.T, o.Par.Q1, o.Par.Q2)
	shape := &SFGrid3D{Nx: h1, Ny: h2, Nz: h3, Q1: o.Par.Q1, Q2: o.Par.Q2}

	nvals := len(pairs) * h3 * nq
	off = make([]int, 0, nvals)
	vals = [][]float64{make([]float64, 0, nvals)}
	for _, xy := range pairs {
		x, y := xy[0], xy[1]
		for z := 0; z < h3; z++ {
			if x == 0 && y == 0 && z == 0 {
				continue
			}
			st := kern.scalar(x, y, z)
			for p := 0; p < nq; p++ {
				off = append(off, shape.Idx(x, y, z, p))
				vals[0] = append(vals[0], st[p])
			}
		}
	}
	return
}

// vec2Drank computes the contribution of one rank for the 2D vector case:
// both partitioned axes are x and z, there is no local sweep
func (o *Main) vec2Drank(rank int) (off []int, vals [][]float64) {
	g := o.Grid
	h1, h2 := g.Nx/2, g.Nz/2
	nq := o.Par.Nq()
	both := !o.Par.LongOnly
	pairs := o.Topo.Pairs(rank, h1, h2)
	kern := newVecKern2(g, o.U2, o.W2, o.Par.Q1, o.Par.Q2)
	shape := &SFGrid2D{Nx: h1, Nz: h2, Q1: o.Par.Q1, Q2: o.Par.Q2}

	nvals := len(pairs) * nq
	off = make([]int, 0, nvals)
	vals = [][]float64{make([]float64, 0, nvals)}
	if both {
		vals = append(vals, make([]float64, 0, nvals))
	}
	for _, xz := range pairs {
		x, z := xz[0], xz[1]
		if x == 0 && z == 0 {
			continue // force-set by the zero-displacement convention
		}
		pll, perp := kern.vec(x, z, both)
		for p := 0; p < nq; p++ {
			off = append(off, shape.Idx(x, z, p))
			vals[0] = append(vals[0], pll[p])
			if both {
				vals[1] = append(vals[1], perp[p])
			}
		}
	}
	return
}

// scal2Drank computes the contribution of one rank for the 2D scalar case
func (o *Main) scal2Drank(rank int) (off []int, vals [][]float64) {
	g := o.Grid
	h1, h2 := g.Nx/2, g.Nz/2
	nq := o.Par.Nq()
	pairs := o.Topo.Pairs(rank, h1, h2)
	kern := newScalKern2(g, o.T2, o.Par.Q1, o.Par.Q2)
	shape := &SFGrid2D{Nx: h1, Nz: h2, Q1: o.Par.Q1, Q2: o.Par.Q2}

	nvals := len(pairs) * nq
	off = make([]int, 0, nvals)
	vals = [][]float64{make([]float64, 0, nvals)}
	for _, xz := range pairs {
		x, z := xz[0], xz[1]
		if x == 0 && z == 0 {
			continue
		}
		st := kern.scalar(x, z)
		for p := 0; p < nq; p++ {
			off = append(off, shape.Idx(x, z, p))
			vals[0] = append(vals[0], st[p])
		}
	}
	return
}
