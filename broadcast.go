// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgas

import (
	"code.hybscloud.com/pgas/symm"
	"code.hybscloud.com/pgas/transport"
)

// bcast is the linear fan-out from root shared by Broadcast32/Broadcast64
// (§4.4). Collect does not use it: its terminal fan-out is terminalFanOut.
//
// After return, every non-root PE's target holds the first len bytes of
// root's source. Root's target is untouched unless source and target are
// different objects, in which case root also self-writes (skipped when
// source == target, §4.4).
func (c *Context) bcast(target, source *symm.Bytes, length int, root int, grp Group, pSync *symm.PSync) {
	if c.MyPE == root {
		srcBytes := source.Local(root)[:length]
		var h transport.Handle
		for _, pe := range grp.Members() {
			if pe == root {
				if source != target {
					copy(target.Local(root)[:length], srcBytes)
				}
				continue
			}
			// Data then signal to the same peer under one completion
			// scope: the peer observing the signal is guaranteed to
			// already see the payload (§4.1, §4.4).
			h = h.Plus(c.Transport.Put(target, 0, srcBytes, pe))
			h = h.Plus(c.Transport.Put(pSync, 0, oneInt64Bytes(), pe))
		}
		c.Transport.Wait(h)
		return
	}

	pSync.Signal(c.MyPE, 0).WaitNonZero()
	pSync.Signal(c.MyPE, 0).Reset()
}

// Broadcast32 copies nlong 4-byte elements (nlong*4 bytes) from PE_root's
// source to every other group member's target (§4.4, §6).
func (c *Context) Broadcast32(target, source *symm.Bytes, nlong int, root int, grp Group, pSync *symm.PSync) {
	c.bcast(target, source, nlong*4, root, grp, pSync)
}

// Broadcast64 copies nlong 8-byte elements (nlong*8 bytes) from PE_root's
// source to every other group member's target (§4.4, §6).
func (c *Context) Broadcast64(target, source *symm.Bytes, nlong int, root int, grp Group, pSync *symm.PSync) {
	c.bcast(target, source, nlong*8, root, grp, pSync)
}
