// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgas

import (
	"code.hybscloud.com/pgas/symm"
	"code.hybscloud.com/pgas/transport"
)

// SyncSize is the number of cells a pSync scratch array must have (§3, §6).
const SyncSize = symm.SyncSize

// ReduceMinWrkdataSize is the minimum element count a pWrk scratch buffer
// must hold (§3, §6).
const ReduceMinWrkdataSize = symm.ReduceMinWrkdataSize

// Comparison tags for wait-until predicates (§6), re-exported from
// transport so callers never need to import that package directly for
// the constants the specification requires the implementation to expose.
const (
	CmpEQ = transport.CmpEQ
	CmpNE = transport.CmpNE
	CmpGT = transport.CmpGT
	CmpLT = transport.CmpLT
	CmpGE = transport.CmpGE
	CmpLE = transport.CmpLE
)
