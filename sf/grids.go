// Copyright 2020 The fastSF Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sf

import (
	"github.com/cpmech/gosl/la"
)

// SFGrid3D holds structure functions of orders q1..q2 over the half-extent
// displacement grid (lx,ly,lz). Storage is flat row-major with the order
// index varying fastest. Only the coordinating process holds the fully
// assembled grid.
type SFGrid3D struct {
	Nx, Ny, Nz int // half extents along x, y, z
	Q1, Q2     int // order range
	V          la.Vector
}

// NewSFGrid3D allocates a zeroed 3D structure-function grid
func NewSFGrid3D(nx, ny, nz, q1, q2 int) *SFGrid3D {
	return &SFGrid3D{Nx: nx, Ny: ny, Nz: nz, Q1: q1, Q2: q2,
		V: la.NewVector(nx * ny * nz * (q2 - q1 + 1))}
}

// Nq returns the number of orders
func (o *SFGrid3D) Nq() int {
	return o.Q2 - o.Q1 + 1
}

// Idx returns the flat index of displacement (x,y,z) and order q1+p
func (o *SFGrid3D) Idx(x, y, z, p int) int {
	return ((x*o.Ny+y)*o.Nz+z)*o.Nq() + p
}

// Get returns the structure function of order q1+p at displacement (x,y,z)
func (o *SFGrid3D) Get(x, y, z, p int) float64 {
	return o.V[o.Idx(x, y, z, p)]
}

// OrderSlice returns a copy of the plane of one order q, shaped
// (Nx,Ny,Nz) row-major, ready to be persisted
func (o *SFGrid3D) OrderSlice(q int) la.Vector {
	p := q - o.Q1
	res := la.NewVector(o.Nx * o.Ny * o.Nz)
	for i := range res {
		res[i] = o.V[i*o.Nq()+p]
	}
	return res
}

// ZeroDisplacement overwrites the all-zero-displacement cell with 0 for
// every order: the self-difference is zero by convention and never
// computed through the kernels
func (o *SFGrid3D) ZeroDisplacement() {
	for p := 0; p < o.Nq(); p++ {
		o.V[o.Idx(0, 0, 0, p)] = 0
	}
}

// SFGrid2D holds structure functions of orders q1..q2 over the half-extent
// displacement grid (lx,lz) of a 2D run
type SFGrid2D struct {
	Nx, Nz int // half extents along x, z
	Q1, Q2 int // order range
	V      la.Vector
}

// NewSFGrid2D allocates a zeroed 2D structure-function grid
func NewSFGrid2D(nx, nz, q1, q2 int) *SFGrid2D {
	return &SFGrid2D{Nx: nx, Nz: nz, Q1: q1, Q2: q2,
		V: la.NewVector(nx * nz * (q2 - q1 + 1))}
}

// Nq returns the number of orders
func (o *SFGrid2D) Nq() int {
	return o.Q2 - o.Q1 + 1
}

// Idx returns the flat index of displacement (x,z) and order q1+p
func (o *SFGrid2D) Idx(x, z, p int) int {
	return (x*o.Nz+z)*o.Nq() + p
}

// Get returns the structure function of order q1+p at displacement (x,z)
func (o *SFGrid2D) Get(x, z, p int) float64 {
	return o.V[o.Idx(x, z, p)]
}

// OrderSlice returns a copy of the plane of one order q, shaped (Nx,Nz)
func (o *SFGrid2D) OrderSlice(q int) la.Vector {
	p := q - o.Q1
	res := la.NewVector(o.Nx * o.Nz)
	for i := range res {
		res[i] = o.V[i*o.Nq()+p]
	}
	return res
}

// ZeroDisplacement overwrites the zero-displacement cell with 0 for every
// order
func (o *SFGrid2D) ZeroDisplacement() {
	for p := 0; p < o.Nq(); p++ {
		o.V[o.Idx(0, 0, p)] = 0
	}
}
