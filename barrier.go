// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgas

import (
	"code.hybscloud.com/pgas/symm"
	"code.hybscloud.com/pgas/transport"
)

// Barrier is the process-wide pSync array the spec describes as created
// once at init and reused by every barrier_all (§3 "Barrier array", §6
// barrier_init).
type Barrier struct {
	pSync *symm.PSync
}

// NewBarrierInit allocates the barrier array for a run of peCount PEs.
// Returns ErrAllocation if peCount is not positive.
func NewBarrierInit(peCount int) (*Barrier, error) {
	if peCount <= 0 {
		return nil, ErrAllocation
	}
	return &Barrier{pSync: symm.NewPSync(peCount)}, nil
}

// BarrierAll synchronizes every PE in a run of grp.PESize PEs, first
// draining this PE's prior one-sided traffic with a transport quiet
// (§4.2, barrier_all).
func (c *Context) BarrierAll(b *Barrier, grp Group) {
	c.Transport.Quiet()
	c.Barrier(grp, b.pSync)
}

// Barrier synchronizes every PE in grp using pSync, which must be zeroed
// on entry and is zeroed again on exit (§3, §4.2).
//
// Gather-release on grp.PEStart: non-root PEs atomically add 1 to the
// root's cell 0, then wait for the root to release them by writing a
// non-zero value into their own cell 0 (§4.2; the release predicate is
// "wait until non-zero", confirmed against original_source/src/collectives.c
// — see DESIGN.md). The root waits until every non-root has contributed,
// clears its own cell, then fans the release out.
func (c *Context) Barrier(grp Group, pSync *symm.PSync) {
	c.Transport.Quiet()

	root := grp.PEStart
	if c.MyPE == root {
		pSync.Signal(root, 0).WaitEqual(int64(grp.PESize - 1))
		pSync.Signal(root, 0).Reset()
		c.fanOutSignal(pSync, grp, root)
		return
	}

	h := c.Transport.AtomicFold(pSync, 0, oneInt64Bytes(), root, transport.OpSUM, transport.Int64)
	c.Transport.Wait(h)
	pSync.Signal(c.MyPE, 0).WaitNonZero()
	pSync.Signal(c.MyPE, 0).Reset()
}

// fanOutSignal releases every non-root PE in grp by writing a non-zero
// value into cell 0 of its pSync. Used by Barrier's release step (§4.2
// step 3); the reduction's per-chunk release has its own loop.
func (c *Context) fanOutSignal(pSync *symm.PSync, grp Group, root int) {
	var h transport.Handle
	for _, pe := range grp.Members() {
		if pe == root {
			continue
		}
		h = h.Plus(c.Transport.Put(pSync, 0, oneInt64Bytes(), pe))
	}
	c.Transport.Wait(h)
}

func oneInt64Bytes() []byte {
	return int64Bytes(1)
}
