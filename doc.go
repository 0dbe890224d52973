// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pgas implements the collective-communication core of a
// partitioned-global-address-space (PGAS) runtime: barrier, reduction,
// broadcast, collect and fcollect, layered over a one-sided put/atomic-fold
// transport and caller-owned symmetric scratch arrays.
//
// The package does not implement the transport, PE discovery, or the
// symmetric-heap allocator — those are external collaborators, consumed
// through the [code.hybscloud.com/pgas/transport] interface and the
// [code.hybscloud.com/pgas/symm] scratch types. A reference, in-process
// transport lives in
// [code.hybscloud.com/pgas/internal/simtransport] and is what the package's
// own tests run against.
//
// # Quick Start
//
// Every participant runs one [Context], bound to a shared [transport.Transport]
// and its own PE rank:
//
//	tr := simtransport.New()
//	ctxs := make([]*pgas.Context, n)
//	for pe := range n {
//	    ctxs[pe] = &pgas.Context{Transport: tr, MyPE: pe}
//	}
//
// # Barrier
//
// The barrier array is created once per process and reused by every
// subsequent barrier_all:
//
//	b, err := pgas.NewBarrierInit(n)
//	if err != nil {
//	    // allocation failed; library not usable
//	}
//
//	var wg sync.WaitGroup
//	for pe := range n {
//	    wg.Add(1)
//	    go func(pe int) {
//	        defer wg.Done()
//	        ctxs[pe].BarrierAll(b, pgas.FullGroup(n))
//	    }(pe)
//	}
//	wg.Wait()
//
// # Reduction
//
// pWrk and pSync are caller-owned, symmetric, and must be zeroed on entry:
//
//	pSync := symm.NewPSync(n)
//	pWrk := symm.NewArray[int32](n, max(pgas.ReduceMinWrkdataSize, 8))
//	target := symm.NewArray[int32](n, 3)
//	source := symm.NewArray[int32](n, 3)
//
//	for pe := range n {
//	    go func(pe int) {
//	        copy(source.Local(pe), []int32{int32(pe) + 1, int32(pe) + 1, int32(pe) + 1})
//	        ctxs[pe].Int32SumToAll(target, source, 3, pgas.FullGroup(n), pWrk, pSync)
//	    }(pe)
//	}
//
// # Broadcast, Collect, Fcollect
//
// broadcast32/64, collect32/64 and fcollect32/64 operate on raw
// [symm.Bytes] payloads in units of 4 or 8 bytes:
//
//	ctxs[pe].Broadcast64(target, source, nlong, root, grp, pSync)
//	ctxs[pe].Collect64(target, source, nlong, grp, pSync)
//	ctxs[pe].Fcollect32(target, source, nlong, grp, pSync)
//
// # Single-threaded per PE
//
// Within one PE the library is single-threaded and blocking: every
// collective runs to completion on the calling goroutine before returning.
// Across PEs, synchronization happens only through the one-sided messages
// the algorithms describe — a collective's return on one PE never implies
// every other PE in the group has also returned; callers that need full
// two-sided synchronization pair the collective with a barrier.
package pgas
