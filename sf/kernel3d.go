// Copyright 2020 The fastSF Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sf

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// kern3 computes moments of difference fields of 3D data for one fixed
// displacement at a time. Scratch buffers are sized for the largest
// overlap (the full grid) and resliced per displacement, so one kern3
// serves a whole rank. The cost of each call is proportional to the
// overlap volume (Nx-x)*(Ny-y)*(Nz-z), which shrinks as the displacement
// grows; the partitioner balances exactly this.
type kern3 struct {
	g          *Grid
	ux, uy, uz *Field3 // velocity components (vector case)
	t          *Field3 // scalar field (scalar case)
	q1, q2     int

	// scratch, capacity Nx*Ny*Nz
	dux, duy, duz, dpll, tmp []float64
}

// newVecKern3 returns a kernel over a 3D velocity field
func newVecKern3(g *Grid, ux, uy, uz *Field3, q1, q2 int) (o *kern3) {
	o = &kern3{g: g, ux: ux, uy: uy, uz: uz, q1: q1, q2: q2}
	n := g.Nx * g.Ny * g.Nz
	o.dux = make([]float64, n)
	o.duy = make([]float64, n)
	o.duz = make([]float64, n)
	o.dpll = make([]float64, n)
	o.tmp = make([]float64, n)
	return
}

// newScalKern3 returns a kernel over a 3D scalar field
func newScalKern3(g *Grid, t *Field3, q1, q2 int) (o *kern3) {
	o = &kern3{g: g, t: t, q1: q1, q2: q2}
	n := g.Nx * g.Ny * g.Nz
	o.dux = make([]float64, n)
	o.tmp = make([]float64, n)
	return
}

// diff fills d with f(shifted)-f(unshifted) over the overlap sub-lattice
// of displacement (x,y,z) and returns the overlap point count
func (o *kern3) diff(d []float64, f *Field3, x, y, z int) int {
	nx, ny, nz := o.g.Nx-x, o.g.Ny-y, o.g.Nz-z
	m := 0
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			a := ((i+x)*o.g.Ny + (j + y)) * o.g.Nz
			b := (i*o.g.Ny + j) * o.g.Nz
			for k := 0; k < nz; k++ {
				d[m] = f.V[a+z+k] - f.V[b+k]
				m++
			}
		}
	}
	return m
}

// vec computes the mean q-th powers of the longitudinal component and,
// when both is true, of the transverse magnitude of the velocity
// difference at displacement (x,y,z), for every order q in [q1,q2].
// The all-zero displacement must never reach this method: the projection
// divides by the displacement magnitude r.
func (o *kern3) vec(x, y, z int, both bool) (pll, perp []float64) {
	count := o.diff(o.dux, o.ux, x, y, z)
	o.diff(o.duy, o.uy, x, y, z)
	o.diff(o.duz, o.uz, x, y, z)
	dux, duy, duz := o.dux[:count], o.duy[:count], o.duz[:count]
	dpll := o.dpll[:count]

	lx := float64(x) * o.g.Dx
	ly := float64(y) * o.g.Dy
	lz := float64(z) * o.g.Dz
	r := math.Sqrt(lx*lx + ly*ly + lz*lz)

	// longitudinal projection: dpll = (lx*dux + ly*duy + lz*duz)/r
	floats.ScaleTo(dpll, lx/r, dux)
	floats.AddScaled(dpll, ly/r, duy)
	floats.AddScaled(dpll, lz/r, duz)
	pll = o.moments(dpll)

	if both {
		// transverse residual and its magnitude
		floats.AddScaled(dux, -lx/r, dpll)
		floats.AddScaled(duy, -ly/r, dpll)
		floats.AddScaled(duz, -lz/r, dpll)
		for m := range dux {
			dux[m] = math.Sqrt(dux[m]*dux[m] + duy[m]*duy[m] + duz[m]*duz[m])
		}
		perp = o.moments(dux)
	}
	return
}

// scalar computes the mean q-th powers of the scalar difference at
// displacement (x,y,z) for every order q in [q1,q2]
func (o *kern3) scalar(x, y, z int) []float64 {
	count := o.diff(o.dux, o.t, x, y, z)
	return o.moments(o.dux[:count])
}

func (o *kern3) moments(d []float64) []float64 {
	return momentMeans(d, o.q1, o.q2, o.tmp)
}

// momentMeans returns the arithmetic mean of d^q for q in [q1,q2].
// Raising a negative difference to a non-integer order follows standard
// real-power semantics (math.Pow); choosing meaningful order ranges is
// the caller's business.
func momentMeans(d []float64, q1, q2 int, tmp []float64) []float64 {
	res := make([]float64, q2-q1+1)
	tmp = tmp[:len(d)]
	for p := range res {
		q := float64(q1 + p)
		for i, v := range d {
			tmp[i] = math.Pow(v, q)
		}
		res[p] = floats.Sum(tmp) / float64(len(d))
	}
	return res
}
