// Copyright 2020 The fastSF Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sf

import (
	"sort"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_topo01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("topo01. rank to coordinates mapping")

	topo := NewTopology(6, 2)
	chk.Int(tst, "Px", topo.Px, 2)
	chk.Int(tst, "Py", topo.Py, 3)

	// second-axis rank varies fastest
	for rank := 0; rank < topo.P; rank++ {
		rx, ry := topo.Coords(rank)
		chk.Int(tst, io.Sf("rank(%d,%d)", rx, ry), topo.Rank(rx, ry), rank)
		chk.Int(tst, io.Sf("rx of %d", rank), rx, rank/3)
		chk.Int(tst, io.Sf("ry of %d", rank), ry, rank%3)
	}
}

func Test_topo02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("topo02. per-rank displacement pairs")

	// P=4, px=2 on an 8x8 half grid: 4x4 indices, 4 pairs per rank
	topo := NewTopology(4, 2)
	h1, h2 := 4, 4

	pairs := topo.Pairs(0, h1, h2)
	chk.Int(tst, "npairs rank 0", len(pairs), h1*h2/topo.P)
	correct := [][2]int{{0, 0}, {0, 3}, {3, 0}, {3, 3}}
	for i, xy := range pairs {
		chk.Ints(tst, io.Sf("pair %d", i), []int{xy[0], xy[1]}, []int{correct[i][0], correct[i][1]})
	}

	// all ranks together cover the half grid exactly once
	keys := []int{}
	for rank := 0; rank < topo.P; rank++ {
		pairs := topo.Pairs(rank, h1, h2)
		chk.Int(tst, io.Sf("npairs rank %d", rank), len(pairs), h1*h2/topo.P)
		for _, xy := range pairs {
			keys = append(keys, xy[0]*h2+xy[1])
		}
	}
	sort.Ints(keys)
	all := make([]int, h1*h2)
	for i := range all {
		all[i] = i
	}
	chk.Ints(tst, "coverage", keys, all)
}
