// Copyright 2020 The fastSF Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements persisted-array I/O: input fields are read from
// and result grids written to hierarchical binary (hb) files, one dataset
// per file with the dataset named after the file key
package out

import (
	"github.com/ShubhadeepSadhukhan1993/Kolmogorov41/sf"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/hb"
	"github.com/cpmech/gosl/io"
)

// WriteSFGrid3D writes one file per order under dirout: file key+q holds
// the (Nx/2,Ny/2,Nz/2) plane of order q
func WriteSFGrid3D(dirout, key string, g *sf.SFGrid3D, verbose bool) {
	for q := g.Q1; q <= g.Q2; q++ {
		fnkey := key + io.Sf("%d", q)
		if verbose {
			io.Pf("> Writing %d order SF as function of lx, ly, and lz: %s\n", q, fnkey)
		}
		f := hb.Create(dirout, fnkey)
		f.PutInts("/shape", []int{g.Nx, g.Ny, g.Nz})
		f.PutArray("/"+fnkey, g.OrderSlice(q))
		f.Close()
	}
}

// WriteSFGrid2D writes one file per order under dirout: file key+q holds
// the (Nx/2,Nz/2) plane of order q
func WriteSFGrid2D(dirout, key string, g *sf.SFGrid2D, verbose bool) {
	for q := g.Q1; q <= g.Q2; q++ {
		fnkey := key + io.Sf("%d", q)
		if verbose {
			io.Pf("> Writing %d order SF as function of lx and lz: %s\n", q, fnkey)
		}
		f := hb.Create(dirout, fnkey)
		f.PutInts("/shape", []int{g.Nx, g.Nz})
		f.PutArray("/"+fnkey, g.OrderSlice(q))
		f.Close()
	}
}

// ReadSlice reads back one persisted order plane and its shape
func ReadSlice(dirout, fnkey string) (vals []float64, shape []int) {
	f := hb.Open(dirout, fnkey)
	defer f.Close()
	shape = f.GetInts("/shape")
	vals = f.GetArray("/" + fnkey)
	return
}

// WriteField3 persists a full 3D field under dir with dataset fnkey
func WriteField3(dir, fnkey string, fld *sf.Field3) {
	f := hb.Create(dir, fnkey)
	f.PutInts("/shape", []int{fld.Nx, fld.Ny, fld.Nz})
	f.PutArray("/"+fnkey, fld.V)
	f.Close()
}

// WriteField2 persists a full 2D field under dir with dataset fnkey
func WriteField2(dir, fnkey string, fld *sf.Field2) {
	f := hb.Create(dir, fnkey)
	f.PutInts("/shape", []int{fld.Nx, fld.Nz})
	f.PutArray("/"+fnkey, fld.V)
	f.Close()
}

// ReadField3 reads a full 3D input field from dir and checks its shape
// against the configured grid. An incompatible file fails the run.
func ReadField3(dir, fnkey string, nx, ny, nz int) *sf.Field3 {
	f := hb.Open(dir, fnkey)
	defer f.Close()
	shape := f.GetInts("/shape")
	if len(shape) != 3 || shape[0] != nx || shape[1] != ny || shape[2] != nz {
		chk.Panic("field file %s/%s has incompatible shape %v; expected [%d %d %d]", dir, fnkey, shape, nx, ny, nz)
	}
	return &sf.Field3{Nx: nx, Ny: ny, Nz: nz, V: f.GetArray("/" + fnkey)}
}

// ReadField2 reads a full 2D input field from dir and checks its shape
// against the configured grid
func ReadField2(dir, fnkey string, nx, nz int) *sf.Field2 {
	f := hb.Open(dir, fnkey)
	defer f.Close()
	shape := f.GetInts("/shape")
	if len(shape) != 2 || shape[0] != nx || shape[1] != nz {
		chk.Panic("field file %s/%s has incompatible shape %v; expected [%d %d]", dir, fnkey, shape, nx, nz)
	}
	return &sf.Field2{Nx: nx, Nz: nz, V: f.GetArray("/" + fnkey)}
}
