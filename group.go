// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pgas

// Group describes the participants in a collective (§3): the PEs
// { PEStart + k*stride : 0 <= k < PESize }, where stride = 2^LogPEStride
// (LogPEStride == 0 means stride 1). By default the group's root is
// PEStart; broadcast takes a separate root.
type Group struct {
	PEStart     int
	LogPEStride int
	PESize      int
}

// FullGroup describes every PE in a run of n, PEs 0..n-1 with stride 1.
func FullGroup(n int) Group {
	return Group{PEStart: 0, LogPEStride: 0, PESize: n}
}

// Stride returns 2^LogPEStride, or 1 when LogPEStride is 0.
func (g Group) Stride() int {
	if g.LogPEStride == 0 {
		return 1
	}
	return 1 << g.LogPEStride
}

// PE returns the PE number of group rank (0 <= rank < PESize).
func (g Group) PE(rank int) int {
	return g.PEStart + rank*g.Stride()
}

// RankOf returns pe's rank within the group: (pe - PEStart) / stride.
func (g Group) RankOf(pe int) int {
	return (pe - g.PEStart) / g.Stride()
}

// Members returns every PE in the group, in rank order.
func (g Group) Members() []int {
	out := make([]int, g.PESize)
	stride := g.Stride()
	pe := g.PEStart
	for i := range out {
		out[i] = pe
		pe += stride
	}
	return out
}
