// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// shape functions and derivatives of tri3 elements
//
//    s
//    |
//    2
//    | \
//    |   \
//    |     \
//    0-------1-->r
//
func tri3(S []float64, dSdR [][]float64, r []float64, derivs bool, idxface int) {
	S[0] = 1.0 - r[0] - r[1]
	S[1] = r[0]
	S[2] = r[1]
	if !derivs {
		return
	}
	dSdR[0][0] = -1.0
	dSdR[0][1] = -1.0
	dSdR[1][0] = 1.0
	dSdR[1][1] = 0.0
	dSdR[2][0] = 0.0
	dSdR[2][1] = 1.0
}

func init() {
	s := &Shape{
		Type:       "tri3",
		Func:       tri3,
		FaceFunc:   lin2,
		FaceType:   "lin2",
		Gndim:      2,
		Nverts:     3,
		FaceNverts: 2,
		FaceLocalVerts: [][]int{
			{0, 1},
			{1, 2},
			{2, 0},
		},
		NatCoords: [][]float64{
			{0, 1, 0},
			{0, 0, 1},
		},
	}
	s.initScratchpad()
	factory["tri3"] = s
}
