// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Point holds the id of one node or one integration point, its coordinates
// and the time series of values extracted by LoadResults
type Point struct {
	Vid  int                  // vertex id; -1 if this point is an integration point
	IpId int                  // integration point id; -1 if this point is a node
	X    []float64            // coordinates
	Dist float64              // distance from a reference point; used when points are on a line
	Vals map[string][]float64 // [key][ntimes] all time series of values
}

// Points is a set of points sortable by distance
type Points []*Point

// String returns a table with the points
func (o Points) String() string {
	l := io.Sf("%4s%4s%23s%23s\n", "vid", "ip", "x", "dist")
	for _, p := range o {
		l += io.Sf("%4d%4d%23v%23.8f\n", p.Vid, p.IpId, p.X, p.Dist)
	}
	return l
}

// functions to implement the Sort interface
func (o Points) Len() int           { return len(o) }
func (o Points) Swap(i, j int)      { o[i], o[j] = o[j], o[i] }
func (o Points) Less(i, j int) bool { return o[i].Dist < o[j].Dist }

// get_nod_point returns a new Point corresponding to the vertex vid. A is a
// reference point to compute distances; it may be nil. Inactive vertices
// result in nil.
func get_nod_point(vid int, A []float64) *Point {
	if vid < 0 || vid >= len(Dom.Vid2node) {
		return nil
	}
	nod := Dom.Vid2node[vid]
	if nod == nil {
		return nil
	}
	x := nod.Vert.C
	return &Point{vid, -1, x, dist_from(x, A), make(map[string][]float64)}
}

// get_ip_point returns a new Point corresponding to the integration point
// ipid. A is a reference point to compute distances; it may be nil.
func get_ip_point(ipid int, A []float64) *Point {
	if ipid < 0 || ipid >= len(Ipoints) {
		return nil
	}
	x := Ipoints[ipid].X
	return &Point{-1, ipid, x, dist_from(x, A), make(map[string][]float64)}
}

// dist_from returns the distance from x to a reference point A (nil => 0)
func dist_from(x, A []float64) (d float64) {
	if A == nil {
		return
	}
	for i := 0; i < len(x); i++ {
		d += (x[i] - A[i]) * (x[i] - A[i])
	}
	return math.Sqrt(d)
}
