// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/garth-wells/CUED-4C9-demo/ele"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// EssentialBc holds information about one prescribed equation
type EssentialBc struct {
	Key string   // dof key such as "ux"
	Eq  int      // equation number
	Fcn fun.Func // prescribed value g(t)
}

// EbcArray is an array of EssentialBc's
type EbcArray []*EssentialBc

// EssentialBcs records the definition of essential (Dirichlet) boundary
// conditions. Prescribed equations stay in the global system; the equation
// of a prescribed dof k becomes the lifting row
//
//	δy[k] = g(t) - y[k]
//
//  so the global Jacobian gets a unit diagonal at (k,k) and fb[k] carries
//  g(t) - y[k]. Elements skip row k when scattering into fb and Kb; their
//  columns remain, hence the free equations receive the -Kfk*(g-y[k]) terms
//  through the linear solve and prescribed values hold exactly after each
//  update.
type EssentialBcs struct {
	Bcs EbcArray // active essential bcs
}

// Reset initialises or clears this structure
func (o *EssentialBcs) Reset() {
	o.Bcs = make([]*EssentialBc, 0)
}

// Set sets a prescribed dof for all given nodes. Nodes without a dof with
// this key are silently skipped; e.g. corner vertices of faces shared with
// elements carrying other dofs
func (o *EssentialBcs) Set(key string, nodes []*Node, fcn fun.Func, extra string) (err error) {
	chk.IntAssertLessThan(0, len(nodes)) // 0 < len(nodes)
	if nodes[0] == nil {
		return
	}
	for _, nod := range nodes {
		d := nod.GetDof(key)
		if d == nil {
			continue
		}
		o.setEq(key, d.Eq, fcn)
	}
	return
}

// Build finalises the set of constraints: it sorts the prescribed equations,
// marks them in the prescribed array and returns their count
func (o *EssentialBcs) Build(ny int, prescribed []bool) (npres int) {
	sort.Sort(o.Bcs)
	for _, bc := range o.Bcs {
		prescribed[bc.Eq] = true
	}
	return len(o.Bcs)
}

// AddToRhs sets the lifting terms fb[k] = g(t) - y[k]. Must be called after
// the element contributions since it assigns rather than accumulates
func (o *EssentialBcs) AddToRhs(fb []float64, sol *ele.Solution) {
	for _, bc := range o.Bcs {
		fb[bc.Eq] = bc.Fcn.F(sol.T, nil) - sol.Y[bc.Eq]
	}
}

// AddToKb puts unit diagonal entries at the prescribed equations
func (o *EssentialBcs) AddToKb(Kb *la.Triplet) {
	for _, bc := range o.Bcs {
		Kb.Put(bc.Eq, bc.Eq, 1)
	}
}

// List returns a simple list logging bcs at time t
func (o *EssentialBcs) List(t float64) (l string) {
	l = "\n==================================================================\n"
	l += io.Sf("%8s%8s%25s%25s\n", "eq", "key", "value @ t=0", io.Sf("value @ t=%g", t))
	l += "------------------------------------------------------------------\n"
	sort.Sort(o.Bcs)
	for _, bc := range o.Bcs {
		l += io.Sf("%8d%8s%25.13f%25.13f\n", bc.Eq, bc.Key, bc.Fcn.F(0, nil), bc.Fcn.F(t, nil))
	}
	l += "==================================================================\n"
	return
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

// setEq sets/replaces the constraint of one equation
func (o *EssentialBcs) setEq(key string, eq int, fcn fun.Func) {
	for _, bc := range o.Bcs {
		if bc.Eq == eq {
			bc.Key, bc.Fcn = key, fcn
			return
		}
	}
	o.Bcs = append(o.Bcs, &EssentialBc{key, eq, fcn})
}

// functions to implement the Sort interface
func (o EbcArray) Len() int           { return len(o) }
func (o EbcArray) Swap(i, j int)      { o[i], o[j] = o[j], o[i] }
func (o EbcArray) Less(i, j int) bool { return o[i].Eq < o[j].Eq }
