// Copyright 2020 The fastSF Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for idealized input fields
package ana

import (
	"math"
	"testing"

	"github.com/ShubhadeepSadhukhan1993/Kolmogorov41/sf"
	"github.com/cpmech/gosl/chk"
)

// Tolerance is the maximum error against the closed forms for a run to
// count as validated
const Tolerance = 1e-10

// LinearVelocity3D generates the idealized 3D velocity field
// u = (x, y, z). For this field the longitudinal structure function of
// order q is |l|^q and the transverse one vanishes.
func LinearVelocity3D(g *sf.Grid) (ux, uy, uz *sf.Field3) {
	ux = sf.NewField3(g.Nx, g.Ny, g.Nz)
	uy = sf.NewField3(g.Nx, g.Ny, g.Nz)
	uz = sf.NewField3(g.Nx, g.Ny, g.Nz)
	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			for k := 0; k < g.Nz; k++ {
				ux.Set(i, j, k, float64(i)*g.Dx)
				uy.Set(i, j, k, float64(j)*g.Dy)
				uz.Set(i, j, k, float64(k)*g.Dz)
			}
		}
	}
	return
}

// LinearVelocity2D generates the idealized 2D velocity field u = (x, z)
func LinearVelocity2D(g *sf.Grid) (ux, uz *sf.Field2) {
	ux = sf.NewField2(g.Nx, g.Nz)
	uz = sf.NewField2(g.Nx, g.Nz)
	for i := 0; i < g.Nx; i++ {
		for k := 0; k < g.Nz; k++ {
			ux.Set(i, k, float64(i)*g.Dx)
			uz.Set(i, k, float64(k)*g.Dz)
		}
	}
	return
}

// LinearScalar3D generates the idealized 3D scalar field θ = x + y + z.
// The structure function of order q is (lx+ly+lz)^q.
func LinearScalar3D(g *sf.Grid) (t *sf.Field3) {
	t = sf.NewField3(g.Nx, g.Ny, g.Nz)
	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			for k := 0; k < g.Nz; k++ {
				t.Set(i, j, k, float64(i)*g.Dx+float64(j)*g.Dy+float64(k)*g.Dz)
			}
		}
	}
	return
}

// LinearScalar2D generates the idealized 2D scalar field θ = x + z.
// The structure function of order q is (lx+lz)^q.
func LinearScalar2D(g *sf.Grid) (t *sf.Field2) {
	t = sf.NewField2(g.Nx, g.Nz)
	for i := 0; i < g.Nx; i++ {
		for k := 0; k < g.Nz; k++ {
			t.Set(i, k, float64(i)*g.Dx+float64(k)*g.Dz)
		}
	}
	return
}

// relErr measures res against the analytic value ana: relative when the
// analytic magnitude is significant, absolute otherwise
func relErr(res, ana, scale float64) float64 {
	if math.Abs(scale) > Tolerance {
		return math.Abs((res - ana) / ana)
	}
	return math.Abs(res)
}

// VerifyVector3D returns the maximum error of a computed 3D vector run
// against the closed forms of u=(x,y,z): longitudinal |l|^q, transverse
// zero. perp may be nil for longitudinal-only runs.
func VerifyVector3D(g *sf.Grid, pll, perp *sf.SFGrid3D) (maxerr float64) {
	for p := 0; p < pll.Nq(); p++ {
		q := float64(pll.Q1 + p)
		for i := 0; i < pll.Nx; i++ {
			lx := g.Dx * float64(i)
			for j := 0; j < pll.Ny; j++ {
				ly := g.Dy * float64(j)
				for k := 0; k < pll.Nz; k++ {
					lz := g.Dz * float64(k)
					l2 := lx*lx + ly*ly + lz*lz
					err := relErr(pll.Get(i, j, k, p), math.Pow(l2, q/2.0), l2)
					maxerr = math.Max(maxerr, err)
					if perp != nil {
						maxerr = math.Max(maxerr, math.Abs(perp.Get(i, j, k, p)))
					}
				}
			}
		}
	}
	return
}

// VerifyVector2D returns the maximum error of a computed 2D vector run
// against the closed forms of u=(x,z). perp may be nil.
func VerifyVector2D(g *sf.Grid, pll, perp *sf.SFGrid2D) (maxerr float64) {
	for p := 0; p < pll.Nq(); p++ {
		q := float64(pll.Q1 + p)
		for i := 0; i < pll.Nx; i++ {
			lx := g.Dx * float64(i)
			for k := 0; k < pll.Nz; k++ {
				lz := g.Dz * float64(k)
				l2 := lx*lx + lz*lz
				err := relErr(pll.Get(i, k, p), math.Pow(l2, q/2.0), l2)
				maxerr = math.Max(maxerr, err)
				if perp != nil {
					maxerr = math.Max(maxerr, math.Abs(perp.Get(i, k, p)))
				}
			}
		}
	}
	return
}

// VerifyScalar3D returns the maximum error of a computed 3D scalar run
// against the closed form of θ=x+y+z
func VerifyScalar3D(g *sf.Grid, scal *sf.SFGrid3D) (maxerr float64) {
	for p := 0; p < scal.Nq(); p++ {
		q := float64(scal.Q1 + p)
		for i := 0; i < scal.Nx; i++ {
			lx := g.Dx * float64(i)
			for j := 0; j < scal.Ny; j++ {
				ly := g.Dy * float64(j)
				for k := 0; k < scal.Nz; k++ {
					lz := g.Dz * float64(k)
					l := lx + ly + lz
					err := relErr(scal.Get(i, j, k, p), math.Pow(l, q), l)
					maxerr = math.Max(maxerr, err)
				}
			}
		}
	}
	return
}

// VerifyScalar2D returns the maximum error of a computed 2D scalar run
// against the closed form of θ=x+z
func VerifyScalar2D(g *sf.Grid, scal *sf.SFGrid2D) (maxerr float64) {
	for p := 0; p < scal.Nq(); p++ {
		q := float64(scal.Q1 + p)
		for i := 0; i < scal.Nx; i++ {
			lx := g.Dx * float64(i)
			for k := 0; k < scal.Nz; k++ {
				lz := g.Dz * float64(k)
				l := lx + lz
				err := relErr(scal.Get(i, k, p), math.Pow(l, q), l)
				maxerr = math.Max(maxerr, err)
			}
		}
	}
	return
}

// CheckVector3D checks a computed 3D vector run in tests
func CheckVector3D(tst *testing.T, g *sf.Grid, pll, perp *sf.SFGrid3D) {
	chk.Float64(tst, "max error (vector 3D)", Tolerance, VerifyVector3D(g, pll, perp), 0)
}

// CheckVector2D checks a computed 2D vector run in tests
func CheckVector2D(tst *testing.T, g *sf.Grid, pll, perp *sf.SFGrid2D) {
	chk.Float64(tst, "max error (vector 2D)", Tolerance, VerifyVector2D(g, pll, perp), 0)
}

// CheckScalar3D checks a computed 3D scalar run in tests
func CheckScalar3D(tst *testing.T, g *sf.Grid, scal *sf.SFGrid3D) {
	chk.Float64(tst, "max error (scalar 3D)", Tolerance, VerifyScalar3D(g, scal), 0)
}

// CheckScalar2D checks a computed 2D scalar run in tests
func CheckScalar2D(tst *testing.T, g *sf.Grid, scal *sf.SFGrid2D) {
	chk.Float64(tst, "max error (scalar 2D)", Tolerance, VerifyScalar2D(g, scal), 0)
}
