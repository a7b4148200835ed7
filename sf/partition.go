// Copyright 2020 The fastSF Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sf

// LadderIndices returns the ordered list of displacement indices assigned
// to one rank along a partitioned axis with half-extent h and p processes.
// Slots are filled in pairs: index rank+i*p together with its mirror
// h-1-(rank+i*p), so every rank interleaves cheap large displacements with
// expensive small ones and the summed index positions balance across
// ranks. When p == h each rank holds a single index and there is no
// mirror. The caller guarantees h%p == 0 and, for p != h, that h/p is
// even (enforced by inp.Params.Validate).
func LadderIndices(h, p, rank int) []int {
	list := make([]int, h/p)
	for i := 0; i < len(list); i += 2 {
		list[i] = rank + i*p
		if p != h {
			list[i+1] = h - 1 - list[i]
		}
	}
	return list
}
