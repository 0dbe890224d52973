// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgas

import (
	"code.hybscloud.com/pgas/transport"
	"code.hybscloud.com/pgas/symm"
)

// syncCellBytes is the byte width of one pSync cell (SyncSize int64 cells),
// used to compute the byte offset of cell i as i*syncCellBytes when a
// collective addresses a pSync cell other than cell 0 through Transport.
const syncCellBytes = 8

// int64Bytes returns the little/native-endian byte representation of v,
// for the handful of places the algorithms put or fold a bare int64
// literal (the "&1" constants in spec.md §4.2-§4.6).
func int64Bytes(v int64) []byte {
	buf := [8]byte{}
	for i := range buf {
		buf[i] = byte(v >> (8 * i))
	}
	return buf[:]
}

// dataTypeOf returns the transport.DataType tag matching T, used by the
// generic reduction path (§4.7) to fill in the typed entry points'
// datatype without duplicating the algorithm per type.
func dataTypeOf[T symm.Numeric]() transport.DataType {
	var zero T
	switch any(zero).(type) {
	case int16:
		return transport.Int16
	case int32:
		return transport.Int32
	case int64:
		return transport.Int64
	case uint16:
		return transport.Uint16
	case uint32:
		return transport.Uint32
	case uint64:
		return transport.Uint64
	case float32:
		return transport.Float32
	case float64:
		return transport.Float64
	case complex64:
		return transport.Complex64
	case complex128:
		return transport.Complex128
	default:
		panic("pgas: unsupported reduction datatype")
	}
}
