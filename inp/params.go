// Copyright 2020 The fastSF Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sf) JSON file
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Params holds all input parameters for one structure-function run
type Params struct {

	// global information
	Desc   string `json:"desc"`   // description of run
	DirOut string `json:"dirout"` // directory for output; e.g. out
	DirIn  string `json:"dirin"`  // directory holding input field files; e.g. in

	// problem definition and options
	Scalar   bool `json:"scalar"`   // scalar field instead of velocity field
	TwoDim   bool `json:"twodim"`   // 2D fields (x-z plane) instead of 3D
	LongOnly bool `json:"longonly"` // compute only longitudinal structure functions
	Test     bool `json:"test"`     // generate idealized fields and validate results

	// grid
	Nx int `json:"nx"` // number of gridpoints in x
	Ny int `json:"ny"` // number of gridpoints in y (ignored when twodim)
	Nz int `json:"nz"` // number of gridpoints in z

	// domain dimension
	Lx float64 `json:"lx"` // domain length in x
	Ly float64 `json:"ly"` // domain length in y
	Lz float64 `json:"lz"` // domain length in z

	// structure function
	Q1 int `json:"q1"` // first order of the range of orders
	Q2 int `json:"q2"` // last order of the range of orders

	// process grid
	Px    int `json:"px"`    // number of processes along x
	Procs int `json:"procs"` // total number of processes P
}

// ReadParams reads parameters from a (.sf) JSON file
func ReadParams(fnamepath string) (o *Params, err error) {
	b := io.ReadFile(fnamepath)
	if err != nil {
		return nil, chk.Err("cannot read parameters file %q:\n%v", fnamepath, err)
	}
	o = new(Params)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot parse parameters file %q:\n%v", fnamepath, err)
	}
	if o.DirOut == "" {
		o.DirOut = "out"
	}
	if o.DirIn == "" {
		o.DirIn = "in"
	}
	return
}

// Nq returns the number of orders q2-q1+1
func (o *Params) Nq() int {
	return o.Q2 - o.Q1 + 1
}

// N2 returns the extent of the second partitioned axis: Nz in 2D, Ny in 3D
func (o *Params) N2() int {
	if o.TwoDim {
		return o.Nz
	}
	return o.Ny
}

// Py returns the number of processes along the second partitioned axis
func (o *Params) Py() int {
	return o.Procs / o.Px
}

// Validate checks the compatibility of the grid with the process grid.
// The computation core assumes these preconditions hold and performs no
// internal checks; anything rejected here must never reach it.
func (o *Params) Validate() (err error) {

	// grid and orders
	if o.Nx < 2 || o.Nz < 2 {
		return chk.Err("grid must have at least 2 points per active axis; Nx=%d, Nz=%d", o.Nx, o.Nz)
	}
	if !o.TwoDim && o.Ny < 2 {
		return chk.Err("grid must have at least 2 points per active axis; Ny=%d", o.Ny)
	}
	if o.Q1 > o.Q2 {
		return chk.Err("order range is empty: q1=%d > q2=%d", o.Q1, o.Q2)
	}

	// process grid
	if o.Procs < 1 || o.Px < 1 {
		return chk.Err("process counts must be positive: P=%d, px=%d", o.Procs, o.Px)
	}
	if o.Px > o.Procs {
		return chk.Err("number of processes in x direction (px=%d) cannot exceed the total number of processes (P=%d)", o.Px, o.Procs)
	}
	if o.Procs%o.Px != 0 {
		return chk.Err("number of processes in x direction (px=%d) must divide the total number of processes (P=%d)", o.Px, o.Procs)
	}

	// divisibility along the partitioned axes
	err = checkAxis("x", o.Nx, o.Px)
	if err != nil {
		return
	}
	axis := "y"
	if o.TwoDim {
		axis = "z"
	}
	return checkAxis(axis, o.N2(), o.Py())
}

// checkAxis checks one partitioned axis: the half-extent H=N/2 must be
// divisible by the process count p, and the per-rank share H/p must be
// even so that every small index can be paired with its mirror, except in
// the degenerate p==H case in which each rank holds a single index
func checkAxis(axis string, n, p int) error {
	h := n / 2
	if p > h {
		return chk.Err("number of processes along %s (%d) cannot exceed half the number of gridpoints N%s/2=%d", axis, p, axis, h)
	}
	if h%p != 0 {
		return chk.Err("number of processes along %s (%d) must divide N%s/2=%d", axis, p, axis, h)
	}
	if p != h && (h/p)%2 != 0 {
		return chk.Err("indices per process along %s (N%s/2 / %d = %d) must be even for mirror pairing", axis, axis, p, h/p)
	}
	return nil
}
