// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// shape functions and derivatives of qua4 elements
//
//    3-----------2
//    |     s     |
//    |     |     |
//    |     +--r  |
//    |           |
//    |           |
//    0-----------1
//
func qua4(S []float64, dSdR [][]float64, r []float64, derivs bool, idxface int) {
	S[0] = 0.25 * (1.0 - r[0]) * (1.0 - r[1])
	S[1] = 0.25 * (1.0 + r[0]) * (1.0 - r[1])
	S[2] = 0.25 * (1.0 + r[0]) * (1.0 + r[1])
	S[3] = 0.25 * (1.0 - r[0]) * (1.0 + r[1])
	if !derivs {
		return
	}
	dSdR[0][0] = -0.25 * (1.0 - r[1])
	dSdR[0][1] = -0.25 * (1.0 - r[0])
	dSdR[1][0] = 0.25 * (1.0 - r[1])
	dSdR[1][1] = -0.25 * (1.0 + r[0])
	dSdR[2][0] = 0.25 * (1.0 + r[1])
	dSdR[2][1] = 0.25 * (1.0 + r[0])
	dSdR[3][0] = -0.25 * (1.0 + r[1])
	dSdR[3][1] = 0.25 * (1.0 - r[0])
}

func init() {
	s := &Shape{
		Type:       "qua4",
		Func:       qua4,
		FaceFunc:   lin2,
		FaceType:   "lin2",
		Gndim:      2,
		Nverts:     4,
		FaceNverts: 2,
		FaceLocalVerts: [][]int{
			{0, 1},
			{1, 2},
			{2, 3},
			{3, 0},
		},
		NatCoords: [][]float64{
			{-1, 1, 1, -1},
			{-1, -1, 1, 1},
		},
	}
	s.initScratchpad()
	factory["qua4"] = s
}
