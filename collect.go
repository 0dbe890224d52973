// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgas

import (
	"code.hybscloud.com/pgas/symm"
	"code.hybscloud.com/pgas/transport"
)

// Collect implements the variable-length ordered gather of §4.5: every PE
// contributes its own length-byte source, and on return every PE's target
// holds the rank-ordered concatenation of all contributions. The returned
// int is the total byte length of that concatenation.
//
// pSync's cell 0 carries the running byte offset through the chain and,
// after the chain wraps, the final total length; cell 1 is the ready flag
// that pairs with it. Both settle back to zero before collect returns.
//
// The source's own wrap-around handoff leaves how the final length reaches
// every PE before the terminal broadcast unresolved (§9, Open Questions);
// this implementation resolves it by carrying the total length alongside
// the payload in the terminal fan-out rather than assuming every PE already
// knows it — see DESIGN.md.
func (c *Context) Collect(target, source *symm.Bytes, length int, grp Group, pSync *symm.PSync) int {
	root := grp.PEStart

	if grp.PESize == 1 {
		if target != source {
			copy(target.Local(c.MyPE)[:length], source.Local(c.MyPE)[:length])
		}
		return length
	}

	members := grp.Members()
	rank := grp.RankOf(c.MyPE)

	if c.MyPE == root {
		copy(target.Local(root)[:length], source.Local(c.MyPE)[:length])
		c.forwardChainLink(pSync, members[1], int64(length))

		pSync.Signal(root, 1).WaitNonZero()
		totalLen := int(pSync.Signal(root, 0).Load())
		pSync.Signal(root, 0).Reset()
		pSync.Signal(root, 1).Reset()

		c.terminalFanOut(target, pSync, members, root, totalLen)
		return totalLen
	}

	pSync.Signal(c.MyPE, 1).WaitNonZero()
	offset := pSync.Signal(c.MyPE, 0).Load()
	pSync.Signal(c.MyPE, 0).Reset()
	pSync.Signal(c.MyPE, 1).Reset()

	c.Transport.Wait(c.Transport.Put(target, int(offset), source.Local(c.MyPE)[:length], root))

	nextRank := rank + 1
	next := root
	if nextRank < grp.PESize {
		next = members[nextRank]
	}
	c.forwardChainLink(pSync, next, offset+int64(length))

	pSync.Signal(c.MyPE, 1).WaitNonZero()
	totalLen := int(pSync.Signal(c.MyPE, 0).Load())
	pSync.Signal(c.MyPE, 0).Reset()
	pSync.Signal(c.MyPE, 1).Reset()
	return totalLen
}

// forwardChainLink writes (offset, ready=1) into peer's pSync cells 0 and 1
// (§4.5 step 3), waiting for both to complete before returning.
func (c *Context) forwardChainLink(pSync *symm.PSync, peer int, offset int64) {
	var h transport.Handle
	h = h.Plus(c.Transport.Put(pSync, 0, int64Bytes(offset), peer))
	h = h.Plus(c.Transport.Put(pSync, syncCellBytes, oneInt64Bytes(), peer))
	c.Transport.Wait(h)
}

// terminalFanOut delivers root's fully assembled target, and the total
// length it settled on, to every non-root peer under one completion scope
// per peer (§4.5's terminal broadcast, specialized to also carry the
// length — see collect's doc comment).
func (c *Context) terminalFanOut(target *symm.Bytes, pSync *symm.PSync, members []int, root, totalLen int) {
	payload := target.Local(root)[:totalLen]
	var h transport.Handle
	for _, pe := range members {
		if pe == root {
			continue
		}
		h = h.Plus(c.Transport.Put(target, 0, payload, pe))
		h = h.Plus(c.Transport.Put(pSync, 0, int64Bytes(int64(totalLen)), pe))
		h = h.Plus(c.Transport.Put(pSync, syncCellBytes, oneInt64Bytes(), pe))
	}
	c.Transport.Wait(h)
}

// Collect32 gathers each PE's nlong 4-byte elements into every PE's target,
// in group-rank order, returning the total byte length (§4.5, §6).
func (c *Context) Collect32(target, source *symm.Bytes, nlong int, grp Group, pSync *symm.PSync) int {
	return c.Collect(target, source, nlong*4, grp, pSync)
}

// Collect64 gathers each PE's nlong 8-byte elements into every PE's target,
// in group-rank order, returning the total byte length (§4.5, §6).
func (c *Context) Collect64(target, source *symm.Bytes, nlong int, grp Group, pSync *symm.PSync) int {
	return c.Collect(target, source, nlong*8, grp, pSync)
}
