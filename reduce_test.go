// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgas_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/pgas"
	"code.hybscloud.com/pgas/symm"
)

// TestIntSumToAll is scenario S2: 4 PEs, count=3, source on PE k is
// [k+1, k+1, k+1]; every PE's target must end up [10, 10, 10].
func TestIntSumToAll(t *testing.T) {
	const n, count = 4, 3
	ctxs := newContexts(n)
	grp := pgas.FullGroup(n)

	pSync := symm.NewPSync(n)
	pWrk := symm.NewArray[int32](n, pgas.ReduceMinWrkdataSize)
	source := symm.NewArray[int32](n, count)
	target := symm.NewArray[int32](n, count)

	var wg sync.WaitGroup
	for pe := range n {
		row := source.Local(pe)
		for i := range row {
			row[i] = int32(pe) + 1
		}
		wg.Add(1)
		go func(pe int) {
			defer wg.Done()
			ctxs[pe].Int32SumToAll(target, source, count, grp, pWrk, pSync)
		}(pe)
	}
	wg.Wait()

	want := []int32{10, 10, 10}
	for pe := range n {
		got := target.Local(pe)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("PE %d target[%d]: got %d, want %d", pe, i, got[i], want[i])
			}
		}
	}
	for pe := range n {
		if !pSync.AllZero(pe) {
			t.Fatalf("PE %d: pSync not reset after reduction", pe)
		}
	}
}

// TestIntMinToAll is scenario S3: 3 PEs, count=5, sources [9,9,9,9,9],
// [5,5,5,5,5], [7,7,7,7,7]; every PE's target must end up [5,5,5,5,5].
func TestIntMinToAll(t *testing.T) {
	const n, count = 3, 5
	ctxs := newContexts(n)
	grp := pgas.FullGroup(n)

	pSync := symm.NewPSync(n)
	pWrk := symm.NewArray[int32](n, pgas.ReduceMinWrkdataSize)
	source := symm.NewArray[int32](n, count)
	target := symm.NewArray[int32](n, count)

	values := []int32{9, 5, 7}
	var wg sync.WaitGroup
	for pe := range n {
		row := source.Local(pe)
		for i := range row {
			row[i] = values[pe]
		}
		wg.Add(1)
		go func(pe int) {
			defer wg.Done()
			ctxs[pe].Int32MinToAll(target, source, count, grp, pWrk, pSync)
		}(pe)
	}
	wg.Wait()

	for pe := range n {
		got := target.Local(pe)
		for i := range got {
			if got[i] != 5 {
				t.Fatalf("PE %d target[%d]: got %d, want 5", pe, i, got[i])
			}
		}
	}
}

// TestReduceChunkingIdempotent checks §8 property 9: the result does not
// depend on the chunk width, by driving a count large enough to force
// multiple chunks through the same pWrk landing pad.
func TestReduceChunkingIdempotent(t *testing.T) {
	const n, count = 4, 2*pgas.ReduceMinWrkdataSize + 3
	ctxs := newContexts(n)
	grp := pgas.FullGroup(n)

	pSync := symm.NewPSync(n)
	pWrk := symm.NewArray[int64](n, pgas.ReduceMinWrkdataSize)
	source := symm.NewArray[int64](n, count)
	target := symm.NewArray[int64](n, count)

	var wg sync.WaitGroup
	for pe := range n {
		row := source.Local(pe)
		for i := range row {
			row[i] = int64(pe + 1)
		}
		wg.Add(1)
		go func(pe int) {
			defer wg.Done()
			ctxs[pe].Int64SumToAll(target, source, count, grp, pWrk, pSync)
		}(pe)
	}
	wg.Wait()

	for pe := range n {
		got := target.Local(pe)
		for i := range got {
			if got[i] != 10 {
				t.Fatalf("PE %d target[%d]: got %d, want 10", pe, i, got[i])
			}
		}
	}
	root := grp.PEStart
	for i, v := range pWrk.Local(root) {
		if v != 0 {
			t.Fatalf("pWrk[%d] on root: got %d, want 0 (reset invariant, §8 property 3)", i, v)
		}
	}
}

// TestReduceAliasingSafety checks §8 property 8: calling with source==target
// yields the same result as calling with distinct buffers.
func TestReduceAliasingSafety(t *testing.T) {
	const n, count = 2, 4
	ctxs := newContexts(n)
	grp := pgas.FullGroup(n)

	pSync := symm.NewPSync(n)
	pWrk := symm.NewArray[int32](n, pgas.ReduceMinWrkdataSize)
	buf := symm.NewArray[int32](n, count)

	values := []int32{3, 4}
	var wg sync.WaitGroup
	for pe := range n {
		row := buf.Local(pe)
		for i := range row {
			row[i] = values[pe]
		}
		wg.Add(1)
		go func(pe int) {
			defer wg.Done()
			ctxs[pe].Int32SumToAll(buf, buf, count, grp, pWrk, pSync)
		}(pe)
	}
	wg.Wait()

	for pe := range n {
		got := buf.Local(pe)
		for i := range got {
			if got[i] != 7 {
				t.Fatalf("PE %d target[%d]: got %d, want 7", pe, i, got[i])
			}
		}
	}
}
