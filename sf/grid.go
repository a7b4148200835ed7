// Copyright 2020 The fastSF Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sf implements the distributed computation of structure functions
package sf

import (
	"github.com/cpmech/gosl/la"
)

// Grid holds the regular grid extents and the derived spacing. Structure
// functions are evaluated for non-negative displacements up to half the
// extent along each axis (the remaining displacements follow by symmetry).
type Grid struct {

	// extents
	Nx int // number of gridpoints in x
	Ny int // number of gridpoints in y (1 for 2D grids)
	Nz int // number of gridpoints in z

	// domain lengths
	Lx float64
	Ly float64
	Lz float64

	// derived spacing: L/(N-1), or 0 for a degenerate axis
	Dx float64
	Dy float64
	Dz float64
}

// NewGrid returns a grid with derived spacing. An axis with a single point
// gets zero spacing so that its displacements carry no physical length.
func NewGrid(nx, ny, nz int, lx, ly, lz float64) (o *Grid) {
	o = &Grid{Nx: nx, Ny: ny, Nz: nz, Lx: lx, Ly: ly, Lz: lz}
	if nx > 1 {
		o.Dx = lx / float64(nx-1)
	}
	if ny > 1 {
		o.Dy = ly / float64(ny-1)
	}
	if nz > 1 {
		o.Dz = lz / float64(nz-1)
	}
	return
}

// Field3 holds one scalar quantity (a scalar field or one Cartesian
// component of a velocity field) on a 3D grid, row-major in (i,j,k).
// The computation core only reads field values.
type Field3 struct {
	Nx, Ny, Nz int
	V          la.Vector
}

// NewField3 allocates a zeroed 3D field
func NewField3(nx, ny, nz int) *Field3 {
	return &Field3{Nx: nx, Ny: ny, Nz: nz, V: la.NewVector(nx * ny * nz)}
}

// Idx returns the flat index of gridpoint (i,j,k)
func (o *Field3) Idx(i, j, k int) int {
	return (i*o.Ny+j)*o.Nz + k
}

// Get returns the value at gridpoint (i,j,k)
func (o *Field3) Get(i, j, k int) float64 {
	return o.V[(i*o.Ny+j)*o.Nz+k]
}

// Set sets the value at gridpoint (i,j,k)
func (o *Field3) Set(i, j, k int, v float64) {
	o.V[(i*o.Ny+j)*o.Nz+k] = v
}

// Field2 holds one scalar quantity on a 2D (x-z) grid, row-major in (i,k)
type Field2 struct {
	Nx, Nz int
	V      la.Vector
}

// NewField2 allocates a zeroed 2D field
func NewField2(nx, nz int) *Field2 {
	return &Field2{Nx: nx, Nz: nz, V: la.NewVector(nx * nz)}
}

// Idx returns the flat index of gridpoint (i,k)
func (o *Field2) Idx(i, k int) int {
	return i*o.Nz + k
}

// Get returns the value at gridpoint (i,k)
func (o *Field2) Get(i, k int) float64 {
	return o.V[i*o.Nz+k]
}

// Set sets the value at gridpoint (i,k)
func (o *Field2) Set(i, k int, v float64) {
	o.V[i*o.Nz+k] = v
}
