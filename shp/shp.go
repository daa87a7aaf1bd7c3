// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shp implements shape functions, derivatives and quadrature points
// for isoparametric finite elements
package shp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// MINDET is the tolerance for the minimum determinant of the Jacobian of the
// isoparametric mapping; mappings with |det| smaller than this are degenerate
const MINDET = 1.0e-14

// ShpFunc defines the callback that computes shape functions S and derivatives
// dSdR with respect to natural coordinates r, at r. If idxface is non-negative,
// the computation happens on the local face coordinates of that face.
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool, idxface int)

// Shape holds the geometry data of one element type together with scratchpad
// variables for computations at integration points.
//
// Shapes obtained with Get(geoType, 0) are shared globals; use GetCopy (or
// Get with goroutineId > 0) whenever computations may run concurrently.
type Shape struct {

	// geometry
	Type           string      // type name; e.g. "hex8"
	Func           ShpFunc     // shape functions and derivatives
	FaceFunc       ShpFunc     // shape functions and derivatives at faces
	FaceType       string      // type of face; e.g. "qua4"
	Gndim          int         // geometry number of dimensions
	Nverts         int         // number of vertices
	FaceNverts     int         // number of vertices on a face
	FaceLocalVerts [][]int     // local vertex ids of each face [nfaces][FaceNverts]
	NatCoords      [][]float64 // natural coordinates of vertices [Gndim][Nverts]

	// scratchpad: volume
	S      []float64   // shape functions
	DSdR   [][]float64 // derivatives of S with respect to natural coordinates
	DxdR   [][]float64 // derivatives of real coordinates with respect to natural coordinates
	DRdx   [][]float64 // inverse of DxdR
	G      [][]float64 // gradient of shape functions with respect to real coordinates
	J      float64     // Jacobian determinant of the mapping
	Jvec3d []float64   // Jacobian vector for line shapes in a multidimensional space
	Gvec   []float64   // gradient along line shapes

	// scratchpad: face
	Sf     []float64   // face shape functions
	DSfdRf [][]float64 // derivatives of Sf with respect to natural face coordinates
	DxfdRf [][]float64 // derivatives of real coordinates with respect to natural face coordinates
	Fnvec  []float64   // face normal vector, scaled by the face Jacobian
}

// factory holds the shared Shape structures [geoType]
var factory = make(map[string]*Shape)

// Get returns the Shape structure of a given geometry type.
// It returns nil if geoType is not available.
//  goroutineId -- returns a private copy when greater than zero
func Get(geoType string, goroutineId int) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	if goroutineId > 0 {
		return s.GetCopy()
	}
	return s
}

// GetCopy returns a new Shape with its own scratchpad. Geometry tables
// (natural coordinates, face connectivity, callbacks) are shared since they
// are never written to.
func (o *Shape) GetCopy() *Shape {
	s := &Shape{
		Type:           o.Type,
		Func:           o.Func,
		FaceFunc:       o.FaceFunc,
		FaceType:       o.FaceType,
		Gndim:          o.Gndim,
		Nverts:         o.Nverts,
		FaceNverts:     o.FaceNverts,
		FaceLocalVerts: o.FaceLocalVerts,
		NatCoords:      o.NatCoords,
	}
	s.initScratchpad()
	return s
}

// CalcAtIp calculates the volume scratchpad variables at an integration point:
// S, DSdR and, with derivs, DxdR, its inverse DRdx, the determinant J and the
// real gradients G. x is the matrix of nodal coordinates [ndim][nverts].
func (o *Shape) CalcAtIp(x [][]float64, ip Ipoint, derivs bool) (err error) {

	// shape functions and derivatives with respect to natural coordinates
	o.Func(o.S, o.DSdR, ip, derivs, -1)
	if !derivs {
		return
	}

	// line shapes in a multidimensional space
	if o.Gndim == 1 {
		ndim := len(x)
		for i := 0; i < ndim; i++ {
			o.Jvec3d[i] = 0
			for m := 0; m < o.Nverts; m++ {
				o.Jvec3d[i] += x[i][m] * o.DSdR[m][0]
			}
		}
		o.J = la.VecNorm(o.Jvec3d)
		if o.J < MINDET {
			return chk.Err("%s: Jacobian of line mapping is degenerate. J=%g", o.Type, o.J)
		}
		for m := 0; m < o.Nverts; m++ {
			o.Gvec[m] = o.DSdR[m][0] / o.J
		}
		return
	}

	// solid shapes: dx/dR
	for i := 0; i < o.Gndim; i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DxdR[i][j] = 0
			for m := 0; m < o.Nverts; m++ {
				o.DxdR[i][j] += x[i][m] * o.DSdR[m][j]
			}
		}
	}

	// inverse mapping and determinant
	o.J, err = la.MatInv(o.DRdx, o.DxdR, MINDET)
	if err != nil {
		return chk.Err("%s: inverse of isoparametric mapping failed:\n%v", o.Type, err)
	}

	// real gradients: G = DSdR * DRdx
	la.MatMul(o.G, 1, o.DSdR, o.DRdx)
	return
}

// CalcAtFaceIp calculates the face scratchpad variables at a face integration
// point: Sf, DSfdRf, DxfdRf and the (scaled) face normal vector Fnvec, whose
// norm is the face Jacobian.
func (o *Shape) CalcAtFaceIp(x [][]float64, ipf Ipoint, idxface int) (err error) {

	// skip line shapes
	if o.Gndim == 1 {
		return
	}

	// face shape functions and derivatives
	o.FaceFunc(o.Sf, o.DSfdRf, ipf, true, idxface)

	// dx/dRf
	for i := 0; i < o.Gndim; i++ {
		for j := 0; j < o.Gndim-1; j++ {
			o.DxfdRf[i][j] = 0
			for k, n := range o.FaceLocalVerts[idxface] {
				o.DxfdRf[i][j] += x[i][n] * o.DSfdRf[k][j]
			}
		}
	}

	// face normal vector, scaled by the face Jacobian
	switch o.Gndim {
	case 2:
		o.Fnvec[0] = o.DxfdRf[1][0]
		o.Fnvec[1] = -o.DxfdRf[0][0]
	case 3:
		o.Fnvec[0] = o.DxfdRf[1][0]*o.DxfdRf[2][1] - o.DxfdRf[2][0]*o.DxfdRf[1][1]
		o.Fnvec[1] = o.DxfdRf[2][0]*o.DxfdRf[0][1] - o.DxfdRf[0][0]*o.DxfdRf[2][1]
		o.Fnvec[2] = o.DxfdRf[0][0]*o.DxfdRf[1][1] - o.DxfdRf[1][0]*o.DxfdRf[0][1]
	}
	return
}

// IpRealCoords returns the real coordinates of an integration point
func (o *Shape) IpRealCoords(x [][]float64, ip Ipoint) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	o.Func(o.S, o.DSdR, ip, false, -1)
	for i := 0; i < ndim; i++ {
		for m := 0; m < o.Nverts; m++ {
			y[i] += o.S[m] * x[i][m]
		}
	}
	return
}

// initScratchpad allocates the scratchpad variables
func (o *Shape) initScratchpad() {

	// volume data
	o.S = make([]float64, o.Nverts)
	o.DSdR = la.MatAlloc(o.Nverts, o.Gndim)

	// line shapes
	if o.Gndim == 1 {
		o.Jvec3d = make([]float64, 3)
		o.Gvec = make([]float64, o.Nverts)
		return
	}

	// solid shapes
	o.DxdR = la.MatAlloc(o.Gndim, o.Gndim)
	o.DRdx = la.MatAlloc(o.Gndim, o.Gndim)
	o.G = la.MatAlloc(o.Nverts, o.Gndim)

	// face data
	if o.FaceType != "" {
		o.Sf = make([]float64, o.FaceNverts)
		o.DSfdRf = la.MatAlloc(o.FaceNverts, o.Gndim-1)
		o.DxfdRf = la.MatAlloc(o.Gndim, o.Gndim-1)
		o.Fnvec = make([]float64, o.Gndim)
	}
}
