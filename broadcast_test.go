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

// TestBroadcast64 is scenario S4: 4 PEs, root=2, nlong=8 (broadcast64).
// PE 2's source is the 64 bytes 0..63; every non-root target must end up
// 0..63, and
// root's own target must be untouched when source != target.
func TestBroadcast64(t *testing.T) {
	const n, root, nlong = 4, 2, 8
	ctxs := newContexts(n)
	grp := pgas.FullGroup(n)
	pSync := symm.NewPSync(n)

	source := symm.NewBytes(n, nlong*8)
	target := symm.NewBytes(n, nlong*8)
	for i := range source.Local(root) {
		source.Local(root)[i] = byte(i)
	}
	for pe := range n {
		if pe == root {
			continue
		}
		for i := range target.Local(pe) {
			target.Local(pe)[i] = 0xff
		}
	}

	var wg sync.WaitGroup
	for pe := range n {
		wg.Add(1)
		go func(pe int) {
			defer wg.Done()
			ctxs[pe].Broadcast64(target, source, nlong, root, grp, pSync)
		}(pe)
	}
	wg.Wait()

	for pe := range n {
		if pe == root {
			for i, v := range target.Local(pe) {
				if v != 0 {
					t.Fatalf("root target[%d]: got %d, want untouched 0", i, v)
				}
			}
			continue
		}
		for i, v := range target.Local(pe) {
			if int(v) != i {
				t.Fatalf("PE %d target[%d]: got %d, want %d", pe, i, v, i)
			}
		}
	}
}

// TestBroadcastAliasingSafety checks §8 property 8 for broadcast: with
// source == target, root's own buffer already holds the payload, and every
// non-root PE still ends up with the same bytes.
func TestBroadcastAliasingSafety(t *testing.T) {
	const n, root, nlong = 3, 0, 2
	ctxs := newContexts(n)
	grp := pgas.FullGroup(n)
	pSync := symm.NewPSync(n)

	buf := symm.NewBytes(n, nlong*4)
	for i := range buf.Local(root) {
		buf.Local(root)[i] = byte(i + 1)
	}

	var wg sync.WaitGroup
	for pe := range n {
		wg.Add(1)
		go func(pe int) {
			defer wg.Done()
			ctxs[pe].Broadcast32(buf, buf, nlong, root, grp, pSync)
		}(pe)
	}
	wg.Wait()

	for pe := range n {
		if pe == root {
			continue
		}
		for i, v := range buf.Local(pe) {
			if int(v) != i+1 {
				t.Fatalf("PE %d target[%d]: got %d, want %d", pe, i, v, i+1)
			}
		}
	}
}
