// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/garth-wells/CUED-4C9-demo/ana"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// tipVid is the vertex at (20,1,1) of the beam3d mesh
const tipVid = 188

func Test_main01(tst *testing.T) {

	// test title
	//verbose()
	chk.PrintTitle("main01. bending of neo-Hookean cantilever beam")

	// start and run simulation
	main := NewMain("data/beam3d.sim", "", true, true, false, chk.Verbose, 0)
	err := main.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// check output times: t = 0, 1, ..., 9
	sum := main.Summary
	chk.IntAssert(len(sum.OutTimes), 10)
	chk.Scalar(tst, "t @ first output", 1e-15, sum.OutTimes[0], 0)
	chk.Scalar(tst, "t @ last output", 1e-15, sum.OutTimes[9], 9)

	// residuals were recorded for every load step
	if len(sum.Resids.Ptrs) < 2 {
		tst.Errorf("residuals were not recorded\n")
		return
	}

	// collect the tip deflection history
	dom := main.Domains[0]
	eq := dom.Vid2node[tipVid].GetEq("uy")
	if eq < 0 {
		tst.Errorf("cannot find uy equation of tip vertex\n")
		return
	}
	uy := make([]float64, len(sum.OutTimes))
	for tidx := range sum.OutTimes {
		err = dom.Read(sum, tidx)
		if err != nil {
			tst.Errorf("cannot read results @ tidx=%d:\n%v", tidx, err)
			return
		}
		uy[tidx] = dom.Sol.Y[eq]
	}
	io.Pforan("uy(tip) = %v\n", uy)

	// deflection starts from zero and grows monotonically with the load
	chk.Scalar(tst, "uy @ t=0", 1e-15, uy[0], 0)
	for i := 1; i < len(uy); i++ {
		if uy[i] >= uy[i-1] {
			tst.Errorf("tip deflection is not increasing monotonically: uy[%d]=%g >= uy[%d]=%g", i, uy[i], i-1, uy[i-1])
			return
		}
	}

	// the Euler-Bernoulli solution bounds the tip deflection from above,
	// since both the finite rotations and the coarse discretisation make
	// the numerical model stiffer
	var eb ana.CantileverEndLoad
	eb.Init([]*fun.Prm{
		&fun.Prm{N: "E", V: 1e4},
		&fun.Prm{N: "L", V: 20.0},
		&fun.Prm{N: "b", V: 1.0},
		&fun.Prm{N: "h", V: 1.0},
		&fun.Prm{N: "P", V: 1.5},
	})
	δeb := eb.TipDeflection()
	δ := -uy[len(uy)-1]
	io.Pfcyan("δ = %g  (Euler-Bernoulli: %g)\n", δ, δeb)
	if δ >= δeb {
		tst.Errorf("tip deflection δ=%g must be smaller than the Euler-Bernoulli value %g", δ, δeb)
		return
	}
	if δ < δeb/4.0 {
		tst.Errorf("tip deflection δ=%g is too small compared to the Euler-Bernoulli value %g", δ, δeb)
		return
	}
}

func Test_main02(tst *testing.T) {

	// test title
	//verbose()
	chk.PrintTitle("main02. bending of linear-elastic cantilever beam")

	// start and run simulation
	main := NewMain("data/beamlin.sim", "", true, true, false, chk.Verbose, 0)
	err := main.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// the problem is linear: the last load step must have converged with a
	// single Newton iteration
	imp := main.Solver.(*SolverImplicit)
	if imp.Status != StatusConverged {
		tst.Errorf("last load step did not converge: status = %v", imp.Status)
		return
	}
	chk.IntAssert(imp.It, 1)

	// tip deflection
	dom := main.Domains[0]
	eq := dom.Vid2node[tipVid].GetEq("uy")
	if eq < 0 {
		tst.Errorf("cannot find uy equation of tip vertex\n")
		return
	}
	δ := -dom.Sol.Y[eq]
	io.Pfcyan("δ = %g\n", δ)
	if δ <= 0 {
		tst.Errorf("tip must deflect towards the load: δ=%g", δ)
		return
	}
	if δ >= 4.8 || δ < 1.2 {
		tst.Errorf("tip deflection δ=%g is out of range", δ)
		return
	}
}

func Test_main03(tst *testing.T) {

	// test title
	//verbose()
	chk.PrintTitle("main03. uniaxial extension of two-cell bar")

	// start and run simulation
	main := NewMain("data/cube.sim", "", true, true, false, chk.Verbose, 0)
	err := main.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// all x=2 face vertices stretch by the same positive amount
	dom := main.Domains[0]
	var uxref float64
	for i, vid := range []int{2, 5, 8, 11} {
		eq := dom.Vid2node[vid].GetEq("ux")
		if eq < 0 {
			tst.Errorf("cannot find ux equation of vertex %d\n", vid)
			return
		}
		ux := dom.Sol.Y[eq]
		if ux <= 0 {
			tst.Errorf("bar must extend under tension: ux=%g @ vertex %d", ux, vid)
			return
		}
		if i == 0 {
			uxref = ux
			continue
		}
		chk.Scalar(tst, io.Sf("ux @ vertex %d", vid), 1e-10, ux, uxref)
	}

	// compare with the homogeneous closed-form solution. the end faces are
	// not exactly traction-free laterally (the left face is clamped), so the
	// comparison carries a small tolerance
	var sol ana.UniaxialNeoHookean
	sol.Init([]*fun.Prm{
		&fun.Prm{N: "E", V: 1e4},
		&fun.Prm{N: "nu", V: 0.3},
	})
	lx := 2.0
	λ1 := (lx + uxref) / lx
	P11, _, err := sol.Stress(λ1)
	if err != nil {
		tst.Errorf("closed-form solution failed:\n%v", err)
		return
	}
	io.Pfcyan("λ1 = %g : P11 = %g\n", λ1, P11)
	if math.Abs(P11-2.0)/2.0 > 0.05 {
		tst.Errorf("nominal axial stress %g is too far from the applied traction 2.0", P11)
		return
	}
}
