// Copyright 2020 The fastSF Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gosl/io"
)

// Report prints the end-of-run validation verdict for one case and
// returns whether it passed
func Report(name string, maxerr float64) (ok bool) {
	ok = maxerr <= Tolerance
	if ok {
		io.PfGreen("\n%s: TEST_PASSED. The computed structure functions match the analytically obtained values.\n", name)
	} else {
		io.PfRed("\n%s: TEST_FAILED. The computed structure functions do NOT match the analytically obtained values.\n", name)
	}
	io.Pf("maximum error: %g\n", maxerr)
	return
}
