// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// shape functions and derivatives of lin2 elements
//
//   -1     0    +1
//    0-----------1-->r
//
func lin2(S []float64, dSdR [][]float64, r []float64, derivs bool, idxface int) {
	S[0] = 0.5 * (1.0 - r[0])
	S[1] = 0.5 * (1.0 + r[0])
	if !derivs {
		return
	}
	dSdR[0][0] = -0.5
	dSdR[1][0] = 0.5
}

func init() {
	s := &Shape{
		Type:   "lin2",
		Func:   lin2,
		Gndim:  1,
		Nverts: 2,
		NatCoords: [][]float64{
			{-1, 1},
		},
	}
	s.initScratchpad()
	factory["lin2"] = s
}
