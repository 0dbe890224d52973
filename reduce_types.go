// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgas

// This file is the thin, mechanical dispatch layer Design Notes §9 calls
// for: one named entry point per (op, datatype) pair the reduction matrix
// in §3/§4.7 supports, each filling in opToAll's descriptor and otherwise
// adding nothing of its own. None of these duplicate the algorithm.

import (
	"code.hybscloud.com/pgas/symm"
	"code.hybscloud.com/pgas/transport"
)

// Int16AndToAll computes the bitwise AND of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Int16AndToAll(target, source *symm.Array[int16], count int, grp Group, pWrk *symm.Array[int16], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpAND)
}

// Int16OrToAll computes the bitwise OR of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Int16OrToAll(target, source *symm.Array[int16], count int, grp Group, pWrk *symm.Array[int16], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpOR)
}

// Int16XorToAll computes the bitwise XOR of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Int16XorToAll(target, source *symm.Array[int16], count int, grp Group, pWrk *symm.Array[int16], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpXOR)
}

// Int16MinToAll computes the minimum of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Int16MinToAll(target, source *symm.Array[int16], count int, grp Group, pWrk *symm.Array[int16], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpMIN)
}

// Int16MaxToAll computes the maximum of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Int16MaxToAll(target, source *symm.Array[int16], count int, grp Group, pWrk *symm.Array[int16], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpMAX)
}

// Int16SumToAll computes the sum of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Int16SumToAll(target, source *symm.Array[int16], count int, grp Group, pWrk *symm.Array[int16], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpSUM)
}

// Int16ProdToAll computes the product of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Int16ProdToAll(target, source *symm.Array[int16], count int, grp Group, pWrk *symm.Array[int16], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpPROD)
}

// Int32AndToAll computes the bitwise AND of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Int32AndToAll(target, source *symm.Array[int32], count int, grp Group, pWrk *symm.Array[int32], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpAND)
}

// Int32OrToAll computes the bitwise OR of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Int32OrToAll(target, source *symm.Array[int32], count int, grp Group, pWrk *symm.Array[int32], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpOR)
}

// Int32XorToAll computes the bitwise XOR of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Int32XorToAll(target, source *symm.Array[int32], count int, grp Group, pWrk *symm.Array[int32], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpXOR)
}

// Int32MinToAll computes the minimum of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Int32MinToAll(target, source *symm.Array[int32], count int, grp Group, pWrk *symm.Array[int32], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpMIN)
}

// Int32MaxToAll computes the maximum of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Int32MaxToAll(target, source *symm.Array[int32], count int, grp Group, pWrk *symm.Array[int32], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpMAX)
}

// Int32SumToAll computes the sum of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Int32SumToAll(target, source *symm.Array[int32], count int, grp Group, pWrk *symm.Array[int32], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpSUM)
}

// Int32ProdToAll computes the product of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Int32ProdToAll(target, source *symm.Array[int32], count int, grp Group, pWrk *symm.Array[int32], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpPROD)
}

// Int64AndToAll computes the bitwise AND of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Int64AndToAll(target, source *symm.Array[int64], count int, grp Group, pWrk *symm.Array[int64], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpAND)
}

// Int64OrToAll computes the bitwise OR of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Int64OrToAll(target, source *symm.Array[int64], count int, grp Group, pWrk *symm.Array[int64], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpOR)
}

// Int64XorToAll computes the bitwise XOR of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Int64XorToAll(target, source *symm.Array[int64], count int, grp Group, pWrk *symm.Array[int64], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpXOR)
}

// Int64MinToAll computes the minimum of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Int64MinToAll(target, source *symm.Array[int64], count int, grp Group, pWrk *symm.Array[int64], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpMIN)
}

// Int64MaxToAll computes the maximum of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Int64MaxToAll(target, source *symm.Array[int64], count int, grp Group, pWrk *symm.Array[int64], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpMAX)
}

// Int64SumToAll computes the sum of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Int64SumToAll(target, source *symm.Array[int64], count int, grp Group, pWrk *symm.Array[int64], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpSUM)
}

// Int64ProdToAll computes the product of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Int64ProdToAll(target, source *symm.Array[int64], count int, grp Group, pWrk *symm.Array[int64], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpPROD)
}

// Uint16AndToAll computes the bitwise AND of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Uint16AndToAll(target, source *symm.Array[uint16], count int, grp Group, pWrk *symm.Array[uint16], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpAND)
}

// Uint16OrToAll computes the bitwise OR of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Uint16OrToAll(target, source *symm.Array[uint16], count int, grp Group, pWrk *symm.Array[uint16], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpOR)
}

// Uint16XorToAll computes the bitwise XOR of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Uint16XorToAll(target, source *symm.Array[uint16], count int, grp Group, pWrk *symm.Array[uint16], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpXOR)
}

// Uint16MinToAll computes the minimum of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Uint16MinToAll(target, source *symm.Array[uint16], count int, grp Group, pWrk *symm.Array[uint16], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpMIN)
}

// Uint16MaxToAll computes the maximum of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Uint16MaxToAll(target, source *symm.Array[uint16], count int, grp Group, pWrk *symm.Array[uint16], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpMAX)
}

// Uint16SumToAll computes the sum of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Uint16SumToAll(target, source *symm.Array[uint16], count int, grp Group, pWrk *symm.Array[uint16], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpSUM)
}

// Uint16ProdToAll computes the product of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Uint16ProdToAll(target, source *symm.Array[uint16], count int, grp Group, pWrk *symm.Array[uint16], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpPROD)
}

// Uint32AndToAll computes the bitwise AND of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Uint32AndToAll(target, source *symm.Array[uint32], count int, grp Group, pWrk *symm.Array[uint32], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpAND)
}

// Uint32OrToAll computes the bitwise OR of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Uint32OrToAll(target, source *symm.Array[uint32], count int, grp Group, pWrk *symm.Array[uint32], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpOR)
}

// Uint32XorToAll computes the bitwise XOR of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Uint32XorToAll(target, source *symm.Array[uint32], count int, grp Group, pWrk *symm.Array[uint32], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpXOR)
}

// Uint32MinToAll computes the minimum of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Uint32MinToAll(target, source *symm.Array[uint32], count int, grp Group, pWrk *symm.Array[uint32], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpMIN)
}

// Uint32MaxToAll computes the maximum of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Uint32MaxToAll(target, source *symm.Array[uint32], count int, grp Group, pWrk *symm.Array[uint32], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpMAX)
}

// Uint32SumToAll computes the sum of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Uint32SumToAll(target, source *symm.Array[uint32], count int, grp Group, pWrk *symm.Array[uint32], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpSUM)
}

// Uint32ProdToAll computes the product of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Uint32ProdToAll(target, source *symm.Array[uint32], count int, grp Group, pWrk *symm.Array[uint32], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpPROD)
}

// Uint64AndToAll computes the bitwise AND of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Uint64AndToAll(target, source *symm.Array[uint64], count int, grp Group, pWrk *symm.Array[uint64], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpAND)
}

// Uint64OrToAll computes the bitwise OR of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Uint64OrToAll(target, source *symm.Array[uint64], count int, grp Group, pWrk *symm.Array[uint64], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpOR)
}

// Uint64XorToAll computes the bitwise XOR of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Uint64XorToAll(target, source *symm.Array[uint64], count int, grp Group, pWrk *symm.Array[uint64], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpXOR)
}

// Uint64MinToAll computes the minimum of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Uint64MinToAll(target, source *symm.Array[uint64], count int, grp Group, pWrk *symm.Array[uint64], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpMIN)
}

// Uint64MaxToAll computes the maximum of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Uint64MaxToAll(target, source *symm.Array[uint64], count int, grp Group, pWrk *symm.Array[uint64], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpMAX)
}

// Uint64SumToAll computes the sum of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Uint64SumToAll(target, source *symm.Array[uint64], count int, grp Group, pWrk *symm.Array[uint64], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpSUM)
}

// Uint64ProdToAll computes the product of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Uint64ProdToAll(target, source *symm.Array[uint64], count int, grp Group, pWrk *symm.Array[uint64], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpPROD)
}

// Float32MinToAll computes the minimum of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Float32MinToAll(target, source *symm.Array[float32], count int, grp Group, pWrk *symm.Array[float32], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpMIN)
}

// Float32MaxToAll computes the maximum of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Float32MaxToAll(target, source *symm.Array[float32], count int, grp Group, pWrk *symm.Array[float32], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpMAX)
}

// Float32SumToAll computes the sum of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Float32SumToAll(target, source *symm.Array[float32], count int, grp Group, pWrk *symm.Array[float32], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpSUM)
}

// Float32ProdToAll computes the product of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Float32ProdToAll(target, source *symm.Array[float32], count int, grp Group, pWrk *symm.Array[float32], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpPROD)
}

// Float64MinToAll computes the minimum of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Float64MinToAll(target, source *symm.Array[float64], count int, grp Group, pWrk *symm.Array[float64], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpMIN)
}

// Float64MaxToAll computes the maximum of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Float64MaxToAll(target, source *symm.Array[float64], count int, grp Group, pWrk *symm.Array[float64], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpMAX)
}

// Float64SumToAll computes the sum of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Float64SumToAll(target, source *symm.Array[float64], count int, grp Group, pWrk *symm.Array[float64], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpSUM)
}

// Float64ProdToAll computes the product of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Float64ProdToAll(target, source *symm.Array[float64], count int, grp Group, pWrk *symm.Array[float64], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpPROD)
}

// Complex64SumToAll computes the sum of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Complex64SumToAll(target, source *symm.Array[complex64], count int, grp Group, pWrk *symm.Array[complex64], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpSUM)
}

// Complex64ProdToAll computes the product of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Complex64ProdToAll(target, source *symm.Array[complex64], count int, grp Group, pWrk *symm.Array[complex64], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpPROD)
}

// Complex128SumToAll computes the sum of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Complex128SumToAll(target, source *symm.Array[complex128], count int, grp Group, pWrk *symm.Array[complex128], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpSUM)
}

// Complex128ProdToAll computes the product of every PE's source row across grp,
// element-wise over the first count elements, landing the result in
// target on every PE (§4.3, §4.7).
func (c *Context) Complex128ProdToAll(target, source *symm.Array[complex128], count int, grp Group, pWrk *symm.Array[complex128], pSync *symm.PSync) {
	opToAll(c, target, source, count, grp, pWrk, pSync, transport.OpPROD)
}

