// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// shape functions and derivatives of hex8 elements
//
//            4_______________7
//          ,'|             ,'|
//        ,'  |           ,'  |
//      ,'    |         ,'    |
//    5'______________6'      |     t
//    |       |       |       |     |  s
//    |       |       |       |     |,'
//    |       0_______|_______3     +--r
//    |     ,'        |     ,'
//    |   ,'          |   ,'
//    | ,'            | ,'
//    1'______________2'
//
func hex8(S []float64, dSdR [][]float64, r []float64, derivs bool, idxface int) {
	for m := 0; m < 8; m++ {
		rm := hex8nat[0][m]
		sm := hex8nat[1][m]
		tm := hex8nat[2][m]
		S[m] = 0.125 * (1.0 + r[0]*rm) * (1.0 + r[1]*sm) * (1.0 + r[2]*tm)
		if derivs {
			dSdR[m][0] = 0.125 * rm * (1.0 + r[1]*sm) * (1.0 + r[2]*tm)
			dSdR[m][1] = 0.125 * sm * (1.0 + r[0]*rm) * (1.0 + r[2]*tm)
			dSdR[m][2] = 0.125 * tm * (1.0 + r[0]*rm) * (1.0 + r[1]*sm)
		}
	}
}

// hex8nat holds the natural coordinates of hex8 vertices
var hex8nat = [][]float64{
	{-1, 1, 1, -1, -1, 1, 1, -1},
	{-1, -1, 1, 1, -1, -1, 1, 1},
	{-1, -1, -1, -1, 1, 1, 1, 1},
}

func init() {
	s := &Shape{
		Type:       "hex8",
		Func:       hex8,
		FaceFunc:   qua4,
		FaceType:   "qua4",
		Gndim:      3,
		Nverts:     8,
		FaceNverts: 4,
		// ordered so that face normals point outwards
		FaceLocalVerts: [][]int{
			{0, 4, 7, 3},
			{1, 2, 6, 5},
			{0, 1, 5, 4},
			{2, 3, 7, 6},
			{0, 3, 2, 1},
			{4, 5, 6, 7},
		},
		NatCoords: hex8nat,
	}
	s.initScratchpad()
	factory["hex8"] = s
}
