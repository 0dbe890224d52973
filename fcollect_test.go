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

// TestFcollect32 is scenario S6: 4 PEs, nlong=2 (8 bytes per PE); PE k
// contributes {k,k,k,k,k,k,k,k}. Every PE's target must end up four
// contiguous 8-byte runs of 0,1,2,3.
func TestFcollect32(t *testing.T) {
	const n, nlong = 4, 2
	ctxs := newContexts(n)
	grp := pgas.FullGroup(n)
	pSync := symm.NewPSync(n)

	const elemLen = nlong * 4
	source := symm.NewBytes(n, elemLen)
	target := symm.NewBytes(n, elemLen*n)
	for pe := range n {
		for i := range source.Local(pe) {
			source.Local(pe)[i] = byte(pe)
		}
	}

	var wg sync.WaitGroup
	for pe := range n {
		wg.Add(1)
		go func(pe int) {
			defer wg.Done()
			ctxs[pe].Fcollect32(target, source, nlong, grp, pSync)
		}(pe)
	}
	wg.Wait()

	for pe := range n {
		row := target.Local(pe)
		for rank := 0; rank < n; rank++ {
			for j := 0; j < elemLen; j++ {
				if got := row[rank*elemLen+j]; int(got) != rank {
					t.Fatalf("PE %d target[%d*%d+%d]: got %d, want %d", pe, rank, elemLen, j, got, rank)
				}
			}
		}
	}
	for pe := range n {
		if !pSync.AllZero(pe) {
			t.Fatalf("PE %d: pSync not reset after fcollect", pe)
		}
	}
}

// TestFcollectSinglePE checks PE_size==1: a lone PE's own contribution
// becomes the whole target (length × 1 bytes).
func TestFcollectSinglePE(t *testing.T) {
	ctxs := newContexts(1)
	grp := pgas.FullGroup(1)
	pSync := symm.NewPSync(1)

	source := symm.NewBytes(1, 8)
	target := symm.NewBytes(1, 8)
	copy(source.Local(0), []byte{1, 2, 3, 4, 5, 6, 7, 8})

	ctxs[0].Fcollect64(target, source, 1, grp, pSync)
	for i, v := range target.Local(0) {
		if v != byte(i+1) {
			t.Fatalf("target[%d]: got %d, want %d", i, v, i+1)
		}
	}
}
