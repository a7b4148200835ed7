// Copyright 2020 The fastSF Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sf

// Topology maps a linear process rank onto a px-by-py rectangular process
// grid, row-major: the second-axis rank varies fastest.
type Topology struct {
	P  int // total number of processes
	Px int // processes along the first partitioned axis (x)
	Py int // processes along the second partitioned axis (y in 3D, z in 2D)
}

// NewTopology returns the process grid for P processes with px along x.
// The caller guarantees px divides P.
func NewTopology(nproc, px int) Topology {
	return Topology{P: nproc, Px: px, Py: nproc / px}
}

// Coords returns the (x,y) coordinates of a linear rank.
// The caller guarantees rank < P.
func (o Topology) Coords(rank int) (rx, ry int) {
	ry = rank % o.Py
	rx = (rank - ry) / o.Py
	return
}

// Rank is the inverse of Coords
func (o Topology) Rank(rx, ry int) int {
	return rx*o.Py + ry
}

// Pairs returns the ordered (x,y) displacement-index pairs owned by rank,
// the Cartesian cross of the rank's ladder lists along both partitioned
// axes with the second axis varying fastest. h1 and h2 are the half
// extents of the two axes; every rank owns exactly h1*h2/P pairs.
func (o Topology) Pairs(rank, h1, h2 int) [][2]int {
	rx, ry := o.Coords(rank)
	xs := LadderIndices(h1, o.Px, rx)
	ys := LadderIndices(h2, o.Py, ry)
	pairs := make([][2]int, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			pairs = append(pairs, [2]int{x, y})
		}
	}
	return pairs
}
