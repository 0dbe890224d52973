// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgas

import "errors"

// ErrAllocation is returned by NewBarrierInit when the process-wide barrier
// array cannot be created.
//
// This is the only failure the core surfaces directly (§7). Everything
// else in the error taxonomy is
// either a caller contract violation — a non-symmetric buffer, a non-zero
// pSync on entry, two overlapping collectives sharing a pSync/pWrk — or a
// transport failure, and neither is detected or recovered by this package.
// The PGAS contract is "correct inputs or abort": a caller that violates it
// gets undefined behavior, not a returned error.
//
// Example:
//
//	b, err := pgas.NewBarrierInit(n)
//	if err != nil {
//	    // library not usable; caller aborts
//	}
var ErrAllocation = errors.New("pgas: barrier array allocation failed")
