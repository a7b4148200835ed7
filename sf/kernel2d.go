// Copyright 2020 The fastSF Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sf

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// kern2 is the 2D (x-z plane) counterpart of kern3: moments of difference
// fields for one fixed displacement (x,z) at a time, with scratch reused
// across calls
type kern2 struct {
	g      *Grid
	ux, uz *Field2 // velocity components (vector case)
	t      *Field2 // scalar field (scalar case)
	q1, q2 int

	// scratch, capacity Nx*Nz
	dux, duz, dpll, tmp []float64
}

// newVecKern2 returns a kernel over a 2D velocity field
func newVecKern2(g *Grid, ux, uz *Field2, q1, q2 int) (o *kern2) {
	o = &kern2{g: g, ux: ux, uz: uz, q1: q1, q2: q2}
	n := g.Nx * g.Nz
	o.dux = make([]float64, n)
	o.duz = make([]float64, n)
	o.dpll = make([]float64, n)
	o.tmp = make([]float64, n)
	return
}

// newScalKern2 returns a kernel over a 2D scalar field
func newScalKern2(g *Grid, t *Field2, q1, q2 int) (o *kern2) {
	o = &kern2{g: g, t: t, q1: q1, q2: q2}
	n := g.Nx * g.Nz
	o.dux = make([]float64, n)
	o.tmp = make([]float64, n)
	return
}

// diff fills d with f(shifted)-f(unshifted) over the overlap sub-lattice
// of displacement (x,z) and returns the overlap point count
func (o *kern2) diff(d []float64, f *Field2, x, z int) int {
	nx, nz := o.g.Nx-x, o.g.Nz-z
	m := 0
	for i := 0; i < nx; i++ {
		a := (i + x) * o.g.Nz
		b := i * o.g.Nz
		for k := 0; k < nz; k++ {
			d[m] = f.V[a+z+k] - f.V[b+k]
			m++
		}
	}
	return m
}

// vec computes the mean q-th powers of the longitudinal component and,
// when both is true, of the transverse magnitude of the velocity
// difference at displacement (x,z). The zero displacement must never
// reach this method.
func (o *kern2) vec(x, z int, both bool) (pll, perp []float64) {
	count := o.diff(o.dux, o.ux, x, z)
	o.diff(o.duz, o.uz, x, z)
	dux, duz := o.dux[:count], o.duz[:count]
	dpll := o.dpll[:count]

	lx := float64(x) * o.g.Dx
	lz := float64(z) * o.g.Dz
	r := math.Sqrt(lx*lx + lz*lz)

	// longitudinal projection: dpll = (lx*dux + lz*duz)/r
	floats.ScaleTo(dpll, lx/r, dux)
	floats.AddScaled(dpll, lz/r, duz)
	pll = momentMeans(dpll, o.q1, o.q2, o.tmp)

	if both {
		// transverse residual and its magnitude
		floats.AddScaled(dux, -lx/r, dpll)
		floats.AddScaled(duz, -lz/r, dpll)
		for m := range dux {
			dux[m] = math.Sqrt(dux[m]*dux[m] + duz[m]*duz[m])
		}
		perp = momentMeans(dux, o.q1, o.q2, o.tmp)
	}
	return
}

// scalar computes the mean q-th powers of the scalar difference at
// displacement (x,z) for every order q in [q1,q2]
func (o *kern2) scalar(x, z int) []float64 {
	count := o.diff(o.dux, o.t, x, z)
	return momentMeans(o.dux[:count], o.q1, o.q2, o.tmp)
}
