// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package symm models the symmetric scratch objects the collective core
// consumes: buffers allocated such that they exist at the same logical
// offset on every PE, addressable from any other PE.
//
// The real allocation mechanism — a symmetric heap allocator backed by
// registered RDMA memory — is an external collaborator out of scope for
// this module (per spec.md §2). What is in scope is the *shape* of the
// objects the core's function signatures take: a fixed-size region
// replicated per PE, mutable by any PE through a [Symmetric] identity.
// These types model that shape as one shared backing array indexed by PE
// rank, which is the natural single-process stand-in: every PE is a
// goroutine in the same address space, so "symmetric" collapses to "one
// shared array, sliced per rank" instead of real cross-node RDMA memory.
package symm

import "unsafe"

// Symmetric identifies a symmetric object: something a [transport]
// implementation can resolve to a specific PE's local byte-addressable
// memory. Every scratch type in this package implements it.
type Symmetric interface {
	// PE returns PE pe's local byte view of the object.
	PE(pe int) []byte
}

// pad is cache line padding, used between per-PE rows of a symmetric array
// to avoid false sharing when neighboring PEs' cells are hammered
// concurrently — the same concern the teacher's lock-free queues pad
// their atomic counters against.
type pad [64]byte

// AsBytes reinterprets a slice of T as its underlying bytes, for handing
// typed buffers to a byte-oriented [transport.Transport]. T must have no
// pointers; Numeric types satisfy that.
func AsBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	sz := int(unsafe.Sizeof(zero))
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*sz)
}

// SizeOf returns sizeof(v) in bytes, for converting an element count or
// offset into the byte units [transport.Transport] operates on.
func SizeOf[T any](v T) int {
	return int(unsafe.Sizeof(v))
}
