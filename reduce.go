// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgas

import (
	"code.hybscloud.com/pgas/symm"
	"code.hybscloud.com/pgas/transport"
)

// opToAll computes, element-wise over the first count elements, the fold of
// op across every PE's source row in grp, landing the result in every PE's
// target row (§4.3). target and source may be the same *symm.Array[T] (§8
// property 8): the chunked copy out of pWrk happens only after every
// contribution for that chunk has been folded in.
//
// pWrk must hold at least ReduceMinWrkdataSize elements per PE and be
// zeroed on entry; pSync must be zeroed. Both are zero again on return.
// The chunk width is max(ReduceMinWrkdataSize, count/2+1), capped at pWrk's
// row length.
func opToAll[T symm.Numeric](c *Context, target, source *symm.Array[T], count int, grp Group, pWrk *symm.Array[T], pSync *symm.PSync, op transport.Op) {
	if count == 0 {
		return
	}

	dt := dataTypeOf[T]()
	root := grp.PEStart
	w := ReduceMinWrkdataSize
	if half := count/2 + 1; half > w {
		w = half
	}
	if l := pWrk.Len(); l > 0 && w > l {
		w = l
	}

	for off := 0; off < count; off += w {
		n := w
		if off+n > count {
			n = count - off
		}
		reduceChunk(c, target, source, off, n, grp, root, pWrk, pSync, op, dt)
	}
}

// reduceChunk runs one chunk of the algorithm in §4.3's four numbered steps.
// A plain generic function rather than a method: Go does not allow a method
// to carry its own type parameters beyond its receiver's.
func reduceChunk[T symm.Numeric](c *Context, target, source *symm.Array[T], off, n int, grp Group, root int, pWrk *symm.Array[T], pSync *symm.PSync, op transport.Op, dt transport.DataType) {
	// Step 1: every PE, root included, atomic-folds its chunk into root's
	// pWrk landing pad. Root folds into its own pWrk via the same remote
	// path as everyone else, for a uniform code path and transport-ordered
	// visibility against the arriving contributions (§4.3 rationale).
	srcBytes := symm.AsBytes(source.Local(c.MyPE)[off : off+n])
	hFold := c.Transport.AtomicFold(pWrk, 0, srcBytes, root, op, dt)

	if c.MyPE != root {
		hSig := c.Transport.AtomicFold(pSync, 0, oneInt64Bytes(), root, transport.OpSUM, transport.Int64)
		c.Transport.Wait(hFold.Plus(hSig))

		// Step 2: wait for root's release signal on this PE's own cell,
		// then clear it (predicate is "wait until non-zero", §9).
		pSync.Signal(c.MyPE, 0).WaitNonZero()
		pSync.Signal(c.MyPE, 0).Reset()
		return
	}

	c.Transport.Wait(hFold)

	// Step 3: root waits for every non-root contribution, clears its
	// counter, then moves the folded chunk out of pWrk into its own target
	// row, zeroing pWrk back to the entry invariant.
	pSync.Signal(root, 0).WaitEqual(int64(grp.PESize - 1))
	pSync.Signal(root, 0).Reset()

	copy(target.Local(root)[off:off+n], pWrk.Local(root)[:n])
	pWrk.Zero(root, n)

	// Step 4: fan the chunk result out to every non-root peer, data then
	// signal to the same peer under one completion scope (§4.1 ordering
	// guarantee), then a single wait on the whole batch.
	var h transport.Handle
	resultBytes := symm.AsBytes(target.Local(root)[off : off+n])
	byteOff := off * elemSize[T]()
	for _, pe := range grp.Members() {
		if pe == root {
			continue
		}
		h = h.Plus(c.Transport.Put(target, byteOff, resultBytes, pe))
		h = h.Plus(c.Transport.Put(pSync, 0, oneInt64Bytes(), pe))
	}
	c.Transport.Wait(h)
}

// elemSize returns sizeof(T) in bytes, for converting an element offset into
// the byte offset transport.Transport.Put/AtomicFold expect.
func elemSize[T symm.Numeric]() int {
	var zero T
	return symm.SizeOf(zero)
}
