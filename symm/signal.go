// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package symm

import "code.hybscloud.com/spin"

// SignalCell is the typed re-architecture Design Notes §9 calls for: the
// pattern of a caller-zeroed pSync cell doubling as counter and release
// flag, expressed as an API instead of a raw shared memory word.
//
// A SignalCell only exposes the *local* half of the pattern — waiting on
// and resetting this PE's own cell. The remote half (incrementing or
// setting another PE's cell) goes through a [transport.Transport], issued
// by the collective algorithm that holds both the transport and the
// destination PE; SignalCell deliberately has no transport dependency so
// this package stays free of the out-of-scope transport layer.
type SignalCell struct {
	sync *PSync
	pe   int
	idx  int
}

// WaitNonZero spins until the cell's value is non-zero.
//
// This is the predicate [shmem_long_wait] uses with cmp==0: "wait until
// not-equal to the comparand", not "wait until zero" — carried over
// precisely per spec.md Design Notes §9's explicit warning about this
// convention.
func (s SignalCell) WaitNonZero() {
	cell := s.sync.cell(s.pe, s.idx)
	sw := spin.Wait{}
	for cell.LoadAcquire() == 0 {
		sw.Once()
	}
}

// WaitEqual spins until the cell's value equals v.
func (s SignalCell) WaitEqual(v int64) {
	cell := s.sync.cell(s.pe, s.idx)
	sw := spin.Wait{}
	for cell.LoadAcquire() != v {
		sw.Once()
	}
}

// Reset clears the cell to zero, re-establishing the entry invariant for
// the next collective to use this pSync (§3).
func (s SignalCell) Reset() {
	s.sync.cell(s.pe, s.idx).StoreRelease(0)
}

// Load returns the cell's current value without waiting.
func (s SignalCell) Load() int64 {
	return s.sync.cell(s.pe, s.idx).LoadAcquire()
}
