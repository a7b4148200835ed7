// Copyright 2020 The fastSF Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sf

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
)

// randField3 fills a 3D field with uniform deviates in [-1,1]
func randField3(nx, ny, nz int) *Field3 {
	f := NewField3(nx, ny, nz)
	for i := range f.V {
		f.V[i] = rnd.Float64(-1, 1)
	}
	return f
}

// randField2 fills a 2D field with uniform deviates in [-1,1]
func randField2(nx, nz int) *Field2 {
	f := NewField2(nx, nz)
	for i := range f.V {
		f.V[i] = rnd.Float64(-1, 1)
	}
	return f
}

func Test_kern01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kern01. scalar moments versus direct summation")

	rnd.Init(1234)
	g := NewGrid(6, 5, 4, 1, 1, 1)
	t := randField3(g.Nx, g.Ny, g.Nz)
	kern := newScalKern3(g, t, 1, 3)

	for _, xyz := range [][3]int{{1, 0, 0}, {0, 2, 1}, {2, 2, 1}, {1, 1, 1}} {
		x, y, z := xyz[0], xyz[1], xyz[2]
		res := kern.scalar(x, y, z)
		for p, q := 0, 1; q <= 3; p, q = p+1, q+1 {
			sum, cnt := 0.0, 0
			for i := 0; i < g.Nx-x; i++ {
				for j := 0; j < g.Ny-y; j++ {
					for k := 0; k < g.Nz-z; k++ {
						d := t.Get(i+x, j+y, k+z) - t.Get(i, j, k)
						sum += math.Pow(d, float64(q))
						cnt++
					}
				}
			}
			chk.Float64(tst, io.Sf("S%d(%d,%d,%d)", q, x, y, z), 1e-14, res[p], sum/float64(cnt))
		}
	}
}

func Test_kern02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kern02. longitudinal/transverse decomposition identity")

	// for q=2 the longitudinal and transverse second moments add up to
	// the mean squared magnitude of the velocity difference
	rnd.Init(4321)
	g := NewGrid(6, 6, 6, 1, 1, 1)
	ux := randField3(g.Nx, g.Ny, g.Nz)
	uy := randField3(g.Nx, g.Ny, g.Nz)
	uz := randField3(g.Nx, g.Ny, g.Nz)
	kern := newVecKern3(g, ux, uy, uz, 2, 2)

	for _, xyz := range [][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {2, 1, 0}, {1, 2, 3}} {
		x, y, z := xyz[0], xyz[1], xyz[2]
		pll, perp := kern.vec(x, y, z, true)
		sum, cnt := 0.0, 0
		for i := 0; i < g.Nx-x; i++ {
			for j := 0; j < g.Ny-y; j++ {
				for k := 0; k < g.Nz-z; k++ {
					dx := ux.Get(i+x, j+y, k+z) - ux.Get(i, j, k)
					dy := uy.Get(i+x, j+y, k+z) - uy.Get(i, j, k)
					dz := uz.Get(i+x, j+y, k+z) - uz.Get(i, j, k)
					sum += dx*dx + dy*dy + dz*dz
					cnt++
				}
			}
		}
		chk.Float64(tst, io.Sf("S2pll+S2perp (%d,%d,%d)", x, y, z), 1e-13, pll[0]+perp[0], sum/float64(cnt))
	}
}

func Test_kern03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kern03. 2D kernels versus direct summation")

	rnd.Init(5678)
	g := NewGrid(7, 1, 5, 1, 0, 1)
	ux := randField2(g.Nx, g.Nz)
	uz := randField2(g.Nx, g.Nz)
	t := randField2(g.Nx, g.Nz)
	vkern := newVecKern2(g, ux, uz, 2, 2)
	skern := newScalKern2(g, t, 1, 2)

	for _, xz := range [][2]int{{1, 0}, {0, 2}, {3, 1}, {2, 2}} {
		x, z := xz[0], xz[1]

		// vector: decomposition identity at q=2
		pll, perp := vkern.vec(x, z, true)
		sum, cnt := 0.0, 0
		for i := 0; i < g.Nx-x; i++ {
			for k := 0; k < g.Nz-z; k++ {
				dx := ux.Get(i+x, k+z) - ux.Get(i, k)
				dz := uz.Get(i+x, k+z) - uz.Get(i, k)
				sum += dx*dx + dz*dz
				cnt++
			}
		}
		chk.Float64(tst, io.Sf("S2pll+S2perp (%d,%d)", x, z), 1e-13, pll[0]+perp[0], sum/float64(cnt))

		// scalar: direct summation
		res := skern.scalar(x, z)
		for p, q := 0, 1; q <= 2; p, q = p+1, q+1 {
			sum, cnt = 0.0, 0
			for i := 0; i < g.Nx-x; i++ {
				for k := 0; k < g.Nz-z; k++ {
					d := t.Get(i+x, k+z) - t.Get(i, k)
					sum += math.Pow(d, float64(q))
					cnt++
				}
			}
			chk.Float64(tst, io.Sf("S%d(%d,%d)", q, x, z), 1e-14, res[p], sum/float64(cnt))
		}
	}
}
