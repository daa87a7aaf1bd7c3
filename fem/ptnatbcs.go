// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// PtNaturalBc holds one point natural boundary condition; e.g. a nodal force
type PtNaturalBc struct {
	Key   string    // key of corresponding dof; e.g. "ux" for a force "fx"
	Eq    int       // equation number
	X     []float64 // location
	Fcn   fun.Func  // load function
	Extra string    // extra information
}

// PtNaturalBcs holds the set of all point natural boundary conditions
type PtNaturalBcs struct {
	Bcs []*PtNaturalBc // active bcs
}

// Reset initialises or clears this structure
func (o *PtNaturalBcs) Reset() {
	o.Bcs = make([]*PtNaturalBc, 0)
}

// Set sets a point load on one node. Nothing is done if the node does not
// carry a dof with this key
func (o *PtNaturalBcs) Set(key string, nod *Node, fcn fun.Func, extra string) {
	d := nod.GetDof(key)
	if d == nil {
		return
	}
	o.Bcs = append(o.Bcs, &PtNaturalBc{key, d.Eq, nod.Vert.C, fcn, extra})
}

// AddToRhs adds the prescribed point loads to fb
func (o *PtNaturalBcs) AddToRhs(fb []float64, t float64) {
	for _, bc := range o.Bcs {
		fb[bc.Eq] += bc.Fcn.F(t, nil)
	}
}

// List returns a simple list logging bcs at time t
func (o *PtNaturalBcs) List(t float64) (l string) {
	l = "\n==================================================================\n"
	l += io.Sf("%8s%8s%25s%25s\n", "eq", "key", "value @ t=0", io.Sf("value @ t=%g", t))
	l += "------------------------------------------------------------------\n"
	sort.Sort(ptbcArray(o.Bcs))
	for _, bc := range o.Bcs {
		l += io.Sf("%8d%8s%25.13f%25.13f\n", bc.Eq, bc.Key, bc.Fcn.F(0, nil), bc.Fcn.F(t, nil))
	}
	l += "==================================================================\n"
	return
}

// functions to implement the Sort interface
type ptbcArray []*PtNaturalBc

func (o ptbcArray) Len() int           { return len(o) }
func (o ptbcArray) Swap(i, j int)      { o[i], o[j] = o[j], o[i] }
func (o ptbcArray) Less(i, j int) bool { return o[i].Eq < o[j].Eq }
