// Copyright 2020 The fastSF Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/ShubhadeepSadhukhan1993/Kolmogorov41/sf"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotOrder2D draws filled contours of S(lx,lz) for one order of a 2D run
// and saves the figure under dirout
func PlotOrder2D(g *sf.Grid, res *sf.SFGrid2D, q int, dirout, fnkey string) {
	p := q - res.Q1
	X := utl.Alloc(res.Nx, res.Nz)
	Z := utl.Alloc(res.Nx, res.Nz)
	S := utl.Alloc(res.Nx, res.Nz)
	for i := 0; i < res.Nx; i++ {
		for k := 0; k < res.Nz; k++ {
			X[i][k] = g.Dx * float64(i)
			Z[i][k] = g.Dz * float64(k)
			S[i][k] = res.Get(i, k, p)
		}
	}
	plt.Reset(true, nil)
	plt.ContourF(X, Z, S, nil)
	plt.Gll("$l_x$", "$l_z$", nil)
	plt.Save(dirout, fnkey)
}
