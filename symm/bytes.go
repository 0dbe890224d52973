// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package symm

// Bytes is a symmetric, untyped scratch object: broadcast, collect and
// fcollect move raw byte payloads whose element width is a caller
// convention (4 or 8 bytes for the "32"/"64" entry points), not a Go type.
type Bytes struct {
	length int
	data   []byte
}

// NewBytes allocates a symmetric byte array of peCount rows of length
// bytes each, zeroed.
func NewBytes(peCount, length int) *Bytes {
	return &Bytes{length: length, data: make([]byte, peCount*length)}
}

// Local returns PE pe's row.
func (b *Bytes) Local(pe int) []byte {
	return b.data[pe*b.length : (pe+1)*b.length]
}

// Len returns the row length in bytes.
func (b *Bytes) Len() int {
	return b.length
}

// PE returns PE pe's row. Implements [Symmetric].
func (b *Bytes) PE(pe int) []byte {
	return b.Local(pe)
}
