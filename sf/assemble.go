// Copyright 2020 The fastSF Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sf

import (
	"github.com/cpmech/gosl/la"
)

// collect assembles the per-rank keyed values into the destination grids.
// compute returns, for one rank, the flat grid offsets it owns and one
// parallel value slice per result grid; the partitioner guarantees the
// offset sets are disjoint across ranks and cover every non-zero
// displacement exactly once.
//
// In distributed mode each rank scatters its values into a zero buffer of
// full grid length n and a single sum-reduction per grid lands them on
// the coordinator: with disjoint keys the sum is an indexed gather, so
// the assembled content does not depend on which rank contributed which
// slot. Without MPI the single process iterates every rank's assignment
// in turn and writes straight into the grids. dst is significant on the
// coordinator only.
func (o *Main) collect(n, ngrids int, dst []la.Vector, compute func(rank int) ([]int, [][]float64)) {
	if o.comm == nil {
		for rank := 0; rank < o.Topo.P; rank++ {
			off, vals := compute(rank)
			for g := 0; g < ngrids; g++ {
				for i, ix := range off {
					dst[g][ix] = vals[g][i]
				}
			}
		}
		return
	}
	off, vals := compute(o.Proc)
	for g := 0; g < ngrids; g++ {
		buf := la.NewVector(n)
		for i, ix := range off {
			buf[ix] = vals[g][i]
		}
		res := la.NewVector(n)
		o.comm.ReduceSum(res, buf)
		if o.Root() {
			copy(dst[g], res)
		}
	}
}
