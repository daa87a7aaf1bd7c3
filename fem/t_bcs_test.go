// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func Test_bcs01(tst *testing.T) {

	// test title
	//verbose()
	chk.PrintTitle("bcs01. lifting rows carry g(t) - y[k]")

	// start simulation
	main := NewMain("data/cube.sim", "", true, false, false, chk.Verbose, 0)
	err := main.SetStage(0)
	if err != nil {
		tst.Errorf("SetStage failed:\n%v", err)
		return
	}
	dom := main.Domains[0]

	// the x-min face carries ux=uy=uz=0 on 4 vertices
	chk.IntAssert(dom.Npres, 12)
	chk.IntAssert(len(dom.EssenBcs.Bcs), 12)
	for _, bc := range dom.EssenBcs.Bcs {
		if !dom.Sol.Prescribed[bc.Eq] {
			tst.Errorf("equation %d must be marked as prescribed", bc.Eq)
			return
		}
	}

	// perturb the solution so the lifting terms are non-trivial
	dom.Sol.T = 0.5
	for i := 0; i < dom.Ny; i++ {
		dom.Sol.Y[i] = 1e-3 * float64(i%7)
	}

	// assemble residual and check the prescribed rows
	err = dom.AssembleFb()
	if err != nil {
		tst.Errorf("AssembleFb failed:\n%v", err)
		return
	}
	for _, bc := range dom.EssenBcs.Bcs {
		g := bc.Fcn.F(dom.Sol.T, nil)
		chk.Scalar(tst, io.Sf("fb[%d] (%s)", bc.Eq, bc.Key), 1e-17, dom.Fb[bc.Eq], g-dom.Sol.Y[bc.Eq])
	}
}

func Test_bcs02(tst *testing.T) {

	// test title
	//verbose()
	chk.PrintTitle("bcs02. assembly determinism and unit diagonal")

	// start simulation
	main := NewMain("data/cube.sim", "", true, false, false, chk.Verbose, 0)
	err := main.SetStage(0)
	if err != nil {
		tst.Errorf("SetStage failed:\n%v", err)
		return
	}
	dom := main.Domains[0]

	// deform a little
	dom.Sol.T = 1.0
	for i := 0; i < dom.Ny; i++ {
		dom.Sol.Y[i] = 1e-3 * float64(i%5)
	}

	// assembling the residual twice gives bit-for-bit equal results, also
	// with the concurrent workers
	err = dom.AssembleFb()
	if err != nil {
		tst.Errorf("AssembleFb failed:\n%v", err)
		return
	}
	fb1 := make([]float64, dom.Ny)
	copy(fb1, dom.Fb)
	err = dom.AssembleFb()
	if err != nil {
		tst.Errorf("AssembleFb failed:\n%v", err)
		return
	}
	for i := 0; i < dom.Ny; i++ {
		if dom.Fb[i] != fb1[i] {
			tst.Errorf("assembly is not deterministic: fb[%d]: %v != %v", i, dom.Fb[i], fb1[i])
			return
		}
	}

	// the rows of prescribed equations have a single unit entry on the
	// diagonal; element contributions go to the free rows only
	err = dom.AssembleKb(true)
	if err != nil {
		tst.Errorf("AssembleKb failed:\n%v", err)
		return
	}
	K := dom.Kb.ToMatrix(nil)
	ek := make([]float64, dom.Ny)
	row := make([]float64, dom.Ny)
	for _, bc := range dom.EssenBcs.Bcs {
		la.VecFill(ek, 0)
		la.VecFill(row, 0)
		ek[bc.Eq] = 1
		la.SpMatTrVecMul(row, 1, K, ek) // row := Kᵀ ek
		for j := 0; j < dom.Ny; j++ {
			if j == bc.Eq {
				chk.Scalar(tst, io.Sf("K[%d][%d]", bc.Eq, j), 1e-17, row[j], 1)
				continue
			}
			if row[j] != 0 {
				tst.Errorf("row %d must be zero off the diagonal: K[%d][%d] = %v", bc.Eq, bc.Eq, j, row[j])
				return
			}
		}
	}
}
