// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgas

import (
	"code.hybscloud.com/pgas/symm"
	"code.hybscloud.com/pgas/transport"
)

// fcollect implements the fixed-length ordered gather of §4.6: every PE,
// root included, places its length-byte contribution into root's target at
// its own rank's slot in parallel, then root broadcasts the fully assembled
// buffer of length*PE_size bytes back out.
func (c *Context) fcollect(target, source *symm.Bytes, length int, grp Group, pSync *symm.PSync) {
	root := grp.PEStart
	rank := grp.RankOf(c.MyPE)
	offset := rank * length

	hData := c.Transport.Put(target, offset, source.Local(c.MyPE)[:length], root)

	if c.MyPE != root {
		hSig := c.Transport.AtomicFold(pSync, 0, oneInt64Bytes(), root, transport.OpSUM, transport.Int64)
		c.Transport.Wait(hData.Plus(hSig))

		pSync.Signal(c.MyPE, 0).WaitNonZero()
		pSync.Signal(c.MyPE, 0).Reset()
		return
	}

	c.Transport.Wait(hData)

	pSync.Signal(root, 0).WaitEqual(int64(grp.PESize - 1))
	pSync.Signal(root, 0).Reset()

	total := length * grp.PESize
	payload := target.Local(root)[:total]
	var h transport.Handle
	for _, pe := range grp.Members() {
		if pe == root {
			continue
		}
		h = h.Plus(c.Transport.Put(target, 0, payload, pe))
		h = h.Plus(c.Transport.Put(pSync, 0, oneInt64Bytes(), pe))
	}
	c.Transport.Wait(h)
}

// Fcollect32 gathers every PE's nlong 4-byte elements into every PE's
// target, in group-rank order (§4.6, §6).
func (c *Context) Fcollect32(target, source *symm.Bytes, nlong int, grp Group, pSync *symm.PSync) {
	c.fcollect(target, source, nlong*4, grp, pSync)
}

// Fcollect64 gathers every PE's nlong 8-byte elements into every PE's
// target, in group-rank order (§4.6, §6).
func (c *Context) Fcollect64(target, source *symm.Bytes, nlong int, grp Group, pSync *symm.PSync) {
	c.fcollect(target, source, nlong*8, grp, pSync)
}
