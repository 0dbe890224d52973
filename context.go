// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgas

import "code.hybscloud.com/pgas/transport"

// Context binds a PE to the transport it issues one-sided operations
// through and to its own rank. The original C library relies on a
// process-wide global (shmem_int_my_pe) for the latter and a
// per-translation-unit static for the former; Design Notes §9 calls for
// re-architecting exactly this kind of ambient state into something
// explicit in a typed language. Every collective in this package is a
// method on *Context.
//
// A Context is not safe for concurrent collectives on overlapping groups
// (§5): create one Context per PE and call its methods from that PE's own
// goroutine only.
type Context struct {
	Transport transport.Transport
	MyPE      int
}
