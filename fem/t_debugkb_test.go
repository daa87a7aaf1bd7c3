// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/garth-wells/CUED-4C9-demo/ele/solid"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// testKb compares an element stiffness matrix against central finite
// differences of the assembled residual, from within the Newton iterations
type testKb struct {

	// input
	tst   *testing.T // testing structure
	eid   int        // element id
	tol   float64    // tolerance to compare K's
	step  float64    // step for finite differences
	itmax int        // last iteration to consider; -1 means all
	verb  bool       // show results

	// auxiliary
	fbtmp []float64
	yold  []float64
	ybkp  []float64
	δybkp []float64
}

// connect sets the debug callback of main
func (o *testKb) connect(main *Main) {
	main.DebugKb = func(d *Domain, it int) {

		// skip?
		if o.itmax >= 0 && it > o.itmax {
			return
		}
		e, ok := d.Elems[o.eid].(*solid.Solid)
		if !ok {
			io.Pfred("warning: eid=%d is not a displacement element\n", o.eid)
			return
		}
		if o.verb {
			io.PfYel("\nit=%2d t=%v\n", it, d.Sol.T)
		}

		// backup and restore upon exit
		o.backup(d)
		defer o.restore(d)

		// check
		o.check("K", d, e)
	}
}

// backup saves the current solution and the internal variables
func (o *testKb) backup(d *Domain) {
	o.fbtmp = make([]float64, d.Ny)
	o.yold = make([]float64, d.Ny)
	o.ybkp = make([]float64, d.Ny)
	o.δybkp = make([]float64, d.Ny)
	for i := 0; i < d.Ny; i++ {
		o.yold[i] = d.Sol.Y[i] - d.Sol.ΔY[i]
		o.ybkp[i] = d.Sol.Y[i]
		o.δybkp[i] = d.Sol.ΔY[i]
	}
	for _, e := range d.ElemIntvars {
		e.BackupIvs(true)
	}
}

// restore undoes the perturbations of check
func (o *testKb) restore(d *Domain) {
	for i := 0; i < d.Ny; i++ {
		d.Sol.Y[i] = o.ybkp[i]
		d.Sol.ΔY[i] = o.δybkp[i]
	}
	for _, e := range d.ElemIntvars {
		e.RestoreIvs(true)
	}
}

// check compares the element K against numerical derivatives of -fb
func (o *testKb) check(label string, d *Domain, e *solid.Solid) {
	var tmp float64
	for i, I := range e.Umap {
		for j, J := range e.Umap {
			dnum, _ := num.DerivCentral(func(x float64, args ...interface{}) (res float64) {
				tmp, d.Sol.Y[J] = d.Sol.Y[J], x
				for k := 0; k < d.Ny; k++ {
					o.fbtmp[k] = 0
					d.Sol.ΔY[k] = d.Sol.Y[k] - o.yold[k]
				}
				for _, eivs := range d.ElemIntvars {
					eivs.RestoreIvs(false)
				}
				inerr := d.UpdateElems()
				if inerr != nil {
					chk.Panic("cannot update elements during numerical differentiation:\n%v", inerr)
				}
				inerr = e.AddToRhs(o.fbtmp, d.Sol)
				if inerr != nil {
					chk.Panic("AddToRhs failed during numerical differentiation:\n%v", inerr)
				}
				res = -o.fbtmp[I]
				d.Sol.Y[J] = tmp
				return res
			}, d.Sol.Y[J], o.step)
			chk.AnaNum(o.tst, io.Sf("%s%3d%3d", label, i, j), o.tol, e.K[i][j], dnum, o.verb)
		}
	}
}

func Test_debugKb01(tst *testing.T) {

	// test title
	//verbose()
	chk.PrintTitle("debugKb01. element stiffness vs finite differences")

	// allocate analysis with the consistency check hooked into the iterations.
	// element 1 carries no prescribed equations, so all rows of its local K
	// must match the derivatives of the assembled residual
	main := NewMain("data/cube.sim", "", true, false, false, chk.Verbose, 0)
	dbg := testKb{
		tst:   tst,
		eid:   1,
		tol:   1e-4,
		step:  1e-6,
		itmax: 1,
		verb:  chk.Verbose,
	}
	dbg.connect(main)

	// run
	err := main.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
}
