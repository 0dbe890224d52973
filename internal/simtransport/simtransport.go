// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package simtransport is a reference, in-process [transport.Transport]:
// every PE is a goroutine sharing one address space, so a one-sided "put to
// PE X" is a direct write into X's slice of the shared symmetric backing
// array, and "atomic fold into PE X" is the same write guarded by a lock
// instead of NIC-level atomics.
//
// This plays the role of the out-of-scope transport layer spec.md §2
// names (real RDMA hardware, a cluster fabric, Portals4, …) well enough to
// exercise every collective in the core's own test suite. It is not part
// of the public collective-communication contract.
package simtransport

import (
	"sync"
	"unsafe"

	"code.hybscloud.com/pgas/transport"
)

// Local is a single-process Transport shared by every simulated PE.
//
// Put is implemented as a plain copy without a lock; the release signals
// the collectives send after their data are Puts as well, so a signal is
// also a plain copy into the peer's pSync cell. AtomicFold has genuine
// concurrent writers (every non-root PE folding into the same root cells)
// so it takes a lock for the read-combine-write.
type Local struct {
	mu sync.Mutex
}

// New returns a ready-to-use in-process transport.
func New() *Local {
	return &Local{}
}

func (t *Local) Put(dst transport.Symmetric, dstOff int, src []byte, pe int) transport.Handle {
	region := dst.PE(pe)
	copy(region[dstOff:dstOff+len(src)], src)
	return transport.NewHandle(1)
}

func (t *Local) AtomicFold(dst transport.Symmetric, dstOff int, src []byte, pe int, op transport.Op, dt transport.DataType) transport.Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	region := dst.PE(pe)[dstOff : dstOff+len(src)]
	foldInto(region, src, op, dt)
	return transport.NewHandle(1)
}

func (t *Local) Wait(h transport.Handle) {
	// Put/AtomicFold above already completed synchronously by the time
	// they return a handle; there is nothing left to drain.
	_ = h
}

func (t *Local) Quiet() {
	// Every previously initiated operation on this transport is already
	// globally visible once its call returns (see Put/AtomicFold).
}

// foldInto combines src into dst in place, element-wise, under (op, dt).
// Caller holds the lock serializing concurrent folds into the same region.
func foldInto(dst, src []byte, op transport.Op, dt transport.DataType) {
	switch dt {
	case transport.Int16:
		foldIntegers[int16](dst, src, op)
	case transport.Int32:
		foldIntegers[int32](dst, src, op)
	case transport.Int64:
		foldIntegers[int64](dst, src, op)
	case transport.Uint16:
		foldIntegers[uint16](dst, src, op)
	case transport.Uint32:
		foldIntegers[uint32](dst, src, op)
	case transport.Uint64:
		foldIntegers[uint64](dst, src, op)
	case transport.Float32:
		foldFloats[float32](dst, src, op)
	case transport.Float64:
		foldFloats[float64](dst, src, op)
	case transport.Complex64:
		foldComplex[complex64](dst, src, op)
	case transport.Complex128:
		foldComplex[complex128](dst, src, op)
	}
}

type integer interface {
	~int16 | ~int32 | ~int64 | ~uint16 | ~uint32 | ~uint64
}

func foldIntegers[T integer](dst, src []byte, op transport.Op) {
	d := bytesAsSlice[T](dst)
	s := bytesAsSlice[T](src)
	for i := range d {
		d[i] = combineInt(d[i], s[i], op)
	}
}

func combineInt[T integer](a, b T, op transport.Op) T {
	switch op {
	case transport.OpAND:
		return a & b
	case transport.OpOR:
		return a | b
	case transport.OpXOR:
		return a ^ b
	case transport.OpMIN:
		if b < a {
			return b
		}
		return a
	case transport.OpMAX:
		if b > a {
			return b
		}
		return a
	case transport.OpSUM:
		return a + b
	case transport.OpPROD:
		return a * b
	default:
		return a
	}
}

type float interface{ ~float32 | ~float64 }

func foldFloats[T float](dst, src []byte, op transport.Op) {
	d := bytesAsSlice[T](dst)
	s := bytesAsSlice[T](src)
	for i := range d {
		d[i] = combineFloat(d[i], s[i], op)
	}
}

// combineFloat follows the Go comparison operators' own NaN policy: any
// comparison against NaN is false, so MIN/MAX silently prefer the
// non-NaN-losing operand the same way the underlying hardware atomic would
// (spec.md §4.3: "not overridden").
func combineFloat[T float](a, b T, op transport.Op) T {
	switch op {
	case transport.OpMIN:
		if b < a {
			return b
		}
		return a
	case transport.OpMAX:
		if b > a {
			return b
		}
		return a
	case transport.OpSUM:
		return a + b
	case transport.OpPROD:
		return a * b
	default:
		return a
	}
}

func foldComplex[T complex64 | complex128](dst, src []byte, op transport.Op) {
	d := bytesAsSlice[T](dst)
	s := bytesAsSlice[T](src)
	for i := range d {
		switch op {
		case transport.OpSUM:
			d[i] = d[i] + s[i]
		case transport.OpPROD:
			d[i] = d[i] * s[i]
		}
	}
}

// bytesAsSlice reinterprets a byte slice as []T. Used on both sides of
// foldInto since the transport's wire contract is "raw bytes encoding
// count elements of the caller's declared datatype" (§4.1). This is the
// only unsafe pointer cast in the package, isolated in one helper the way
// the teacher confines its own pointer arithmetic to narrow functions
// (e.g. SPSCPtr.Enqueue).
func bytesAsSlice[T any](b []byte) []T {
	if len(b) == 0 {
		return nil
	}
	var zero T
	sz := int(unsafe.Sizeof(zero))
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), len(b)/sz)
}
