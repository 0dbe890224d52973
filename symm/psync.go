// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package symm

import "code.hybscloud.com/atomix"

// SyncSize is the number of signed 64-bit cells in a pSync scratch array
// (§3, §6). Cell 0 is the primary signal; cell 1 is the auxiliary slot
// collect uses as its ready flag (collect's running offset is in cell 0).
const SyncSize = 16

// ReduceMinWrkdataSize is the minimum number of elements a pWrk scratch
// buffer must hold (§3, §6).
const ReduceMinWrkdataSize = 8

// PSync is the synchronization scratch object described in §3: SyncSize
// atomically-addressable cells, replicated with identical layout across
// every PE in a run. A single PSync value is shared by every goroutine
// standing in for a PE; PE's own local view is row pe of the backing
// array, reached through [PSync.PE] or [PSync.cell].
//
// Invariant the caller owns: every cell of every PE's row must be zero on
// entry to a collective, and is zero again on exit.
type PSync struct {
	peCount int
	rows    []psyncRow
}

type psyncRow struct {
	_     pad
	cells [SyncSize]atomix.Int64
}

// NewPSync allocates a pSync scratch object for a run of peCount PEs, with
// every cell zeroed.
func NewPSync(peCount int) *PSync {
	return &PSync{peCount: peCount, rows: make([]psyncRow, peCount)}
}

// PE returns PE pe's local byte view of all SyncSize cells, for transport
// use. Implements [Symmetric].
func (p *PSync) PE(pe int) []byte {
	return AsBytes(p.rows[pe].cells[:])
}

// cell returns the atomic cell i (0 <= i < SyncSize) in PE pe's row.
func (p *PSync) cell(pe, i int) *atomix.Int64 {
	return &p.rows[pe].cells[i]
}

// Signal returns the typed signaling handle for cell i in PE pe's row
// (Design Notes §9).
func (p *PSync) Signal(pe, i int) SignalCell {
	return SignalCell{sync: p, pe: pe, idx: i}
}

// AllZero reports whether every cell of PE pe's row is zero. Used by tests
// to check the pSync-reset invariant (§8, property 2).
func (p *PSync) AllZero(pe int) bool {
	row := &p.rows[pe]
	for i := range row.cells {
		if row.cells[i].LoadAcquire() != 0 {
			return false
		}
	}
	return true
}
