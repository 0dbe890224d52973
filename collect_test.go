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

// TestCollect is scenario S5: 3 PEs contribute "AB" (2), "CDE" (3), "F" (1);
// every PE's target must end up "ABCDEF", total length 6.
func TestCollect(t *testing.T) {
	const n = 3
	ctxs := newContexts(n)
	grp := pgas.FullGroup(n)
	pSync := symm.NewPSync(n)

	contributions := []string{"AB", "CDE", "F"}
	const maxTotal = 6

	source := symm.NewBytes(n, 3) // widest single contribution
	target := symm.NewBytes(n, maxTotal)
	for pe, s := range contributions {
		copy(source.Local(pe), s)
	}

	lens := make([]int, n)
	var wg sync.WaitGroup
	for pe := range n {
		wg.Add(1)
		go func(pe int) {
			defer wg.Done()
			lens[pe] = ctxs[pe].Collect(target, source, len(contributions[pe]), grp, pSync)
		}(pe)
	}
	wg.Wait()

	for pe := range n {
		if lens[pe] != maxTotal {
			t.Fatalf("PE %d: total length got %d, want %d", pe, lens[pe], maxTotal)
		}
		if got := string(target.Local(pe)[:maxTotal]); got != "ABCDEF" {
			t.Fatalf("PE %d target: got %q, want %q", pe, got, "ABCDEF")
		}
	}
}

// TestCollect2PE covers the direct-wrap edge §9 flags explicitly: with
// PE_size==2, the lone non-root's nextRank (1+1=2) already equals PESize on
// its very first forward hop, so its forwardChainLink wraps straight back to
// root instead of passing through any other non-root peer.
func TestCollect2PE(t *testing.T) {
	const n = 2
	ctxs := newContexts(n)
	grp := pgas.FullGroup(n)
	pSync := symm.NewPSync(n)

	contributions := []string{"XY", "Z"}
	const maxTotal = 3

	source := symm.NewBytes(n, 2)
	target := symm.NewBytes(n, maxTotal)
	for pe, s := range contributions {
		copy(source.Local(pe), s)
	}

	lens := make([]int, n)
	var wg sync.WaitGroup
	for pe := range n {
		wg.Add(1)
		go func(pe int) {
			defer wg.Done()
			lens[pe] = ctxs[pe].Collect(target, source, len(contributions[pe]), grp, pSync)
		}(pe)
	}
	wg.Wait()

	for pe := range n {
		if lens[pe] != maxTotal {
			t.Fatalf("PE %d: total length got %d, want %d", pe, lens[pe], maxTotal)
		}
		if got := string(target.Local(pe)[:maxTotal]); got != "XYZ" {
			t.Fatalf("PE %d target: got %q, want %q", pe, got, "XYZ")
		}
	}
}

// TestCollectSinglePE checks the PE_size==1 short-circuit (§4.5).
func TestCollectSinglePE(t *testing.T) {
	ctxs := newContexts(1)
	grp := pgas.FullGroup(1)
	pSync := symm.NewPSync(1)

	source := symm.NewBytes(1, 4)
	target := symm.NewBytes(1, 4)
	copy(source.Local(0), []byte{1, 2, 3, 4})

	got := ctxs[0].Collect32(target, source, 1, grp, pSync)
	if got != 4 {
		t.Fatalf("total length: got %d, want 4", got)
	}
	for i, v := range target.Local(0) {
		if v != byte(i+1) {
			t.Fatalf("target[%d]: got %d, want %d", i, v, i+1)
		}
	}
}
