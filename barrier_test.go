// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgas_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/pgas"
	"code.hybscloud.com/pgas/internal/simtransport"
)

func newContexts(n int) []*pgas.Context {
	tr := simtransport.New()
	ctxs := make([]*pgas.Context, n)
	for pe := range n {
		ctxs[pe] = &pgas.Context{Transport: tr, MyPE: pe}
	}
	return ctxs
}

// TestBarrierLiveness is scenario S1: 4 PEs call barrier_all twice
// back-to-back; both calls must return on every PE.
func TestBarrierLiveness(t *testing.T) {
	const n = 4
	ctxs := newContexts(n)
	b, err := pgas.NewBarrierInit(n)
	if err != nil {
		t.Fatalf("NewBarrierInit: %v", err)
	}
	grp := pgas.FullGroup(n)

	var wg sync.WaitGroup
	for pe := range n {
		wg.Add(1)
		go func(pe int) {
			defer wg.Done()
			ctxs[pe].BarrierAll(b, grp)
			ctxs[pe].BarrierAll(b, grp)
		}(pe)
	}
	wg.Wait()
}

// TestBarrierInitRejectsNonPositive checks the allocation-failure contract
// (§7): barrier_init returns an error for a non-positive PE count.
func TestBarrierInitRejectsNonPositive(t *testing.T) {
	if _, err := pgas.NewBarrierInit(0); err == nil {
		t.Fatalf("NewBarrierInit(0): got nil error, want ErrAllocation")
	}
	if _, err := pgas.NewBarrierInit(-1); err == nil {
		t.Fatalf("NewBarrierInit(-1): got nil error, want ErrAllocation")
	}
}

// TestBarrierSinglePE checks the PE_size==1 edge case: a lone PE's barrier
// must return without waiting on anyone.
func TestBarrierSinglePE(t *testing.T) {
	ctxs := newContexts(1)
	b, err := pgas.NewBarrierInit(1)
	if err != nil {
		t.Fatalf("NewBarrierInit: %v", err)
	}
	ctxs[0].BarrierAll(b, pgas.FullGroup(1))
}
