// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package transport defines the one-sided remote-memory capability the
// collective core consumes (spec.md §4.1, §6): a narrow put/atomic-fold/
// wait/quiet interface. The core never implements a Transport itself —
// it is an external collaborator, specified here only as the interface
// the algorithms call through.
package transport

import "code.hybscloud.com/atomix"

// Op identifies the fold operator of a reduction descriptor (§3).
type Op int

const (
	OpAND Op = iota
	OpOR
	OpXOR
	OpMIN
	OpMAX
	OpSUM
	OpPROD
)

// DataType identifies the element type of a reduction or atomic-fold
// operation. Short/int/long/longlong in the original C map onto the
// closest Go integer widths (Int16/Int32/Int64); Go has no long-double
// type, so LongDouble is carried as an alias of Float64 (a named tag
// rather than silently dropped).
type DataType int

const (
	Int16 DataType = iota
	Int32
	Int64
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Complex64
	Complex128

	LongDouble = Float64
)

// Cmp is one of the six comparison tags a wait-until predicate can use
// (§6). The core's own wait loops only ever need EQ and NE (see
// symm.SignalCell), but the full tag set is part of the contract the
// specification requires the implementation to expose.
type Cmp int

const (
	CmpEQ Cmp = iota
	CmpNE
	CmpGT
	CmpLT
	CmpGE
	CmpLE
)

// Handle is a completion token for one or more initiated one-sided
// operations. Handles are additive (§4.1): combining two handles yields a
// handle representing both sets of operations. Backed by an atomix
// counter rather than summed plain ints so concurrent accumulation from
// multiple goroutines (standing in for concurrently-issued operations on
// one PE) stays race-free.
type Handle struct {
	n atomix.Int64
}

// Plus combines h and o into a handle representing both.
func (h Handle) Plus(o Handle) Handle {
	var r Handle
	r.n.StoreRelaxed(h.n.LoadRelaxed() + o.n.LoadRelaxed())
	return r
}

// NewHandle returns a handle representing n outstanding operations. A zero
// handle represents no outstanding work (§4.1).
func NewHandle(n int64) Handle {
	var h Handle
	h.n.StoreRelaxed(n)
	return h
}

// Outstanding reports how many operations h represents.
func (h Handle) Outstanding() int64 {
	return h.n.LoadRelaxed()
}

// Symmetric is the minimal shape a scratch object must provide for a
// Transport to address it: a per-PE byte view. code.hybscloud.com/pgas/symm
// provides the concrete types (PSync, Array[T], Bytes) the core actually
// uses; Transport only depends on this interface to avoid coupling to a
// particular symmetric-heap implementation.
type Symmetric interface {
	PE(pe int) []byte
}

// Transport is the one-sided remote-memory capability the collective core
// consumes (§4.1). Implementations may be backed by real RDMA/NIC
// hardware, a cluster-wide shared-memory fabric, or — as with
// internal/simtransport, used by this module's own tests — a single
// process's goroutines standing in for PEs.
type Transport interface {
	// Put initiates a one-sided write of src into dst at byte offset
	// dstOff, on PE pe. Returns a handle that must be waited on before src
	// is reused.
	Put(dst Symmetric, dstOff int, src []byte, pe int) Handle

	// AtomicFold initiates a one-sided element-wise fold of src into dst
	// at byte offset dstOff, on PE pe, under (op, dt). dst must be
	// pre-zeroed for the fold to equal the combination of all
	// contributions.
	AtomicFold(dst Symmetric, dstOff int, src []byte, pe int, op Op, dt DataType) Handle

	// Wait blocks until every operation represented by h is locally
	// complete (source buffers reusable).
	Wait(h Handle)

	// Quiet blocks until every one-sided operation this PE has previously
	// initiated is globally complete.
	Quiet()
}
