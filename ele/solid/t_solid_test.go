// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"testing"

	"github.com/garth-wells/CUED-4C9-demo/ele"
	"github.com/garth-wells/CUED-4C9-demo/inp"
	msolid "github.com/garth-wells/CUED-4C9-demo/mdl/solid"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// allocSquare reads one of the data/*.sim files describing the single-quad
// mesh and allocates its element with equations {0,1,...,7}
func allocSquare(tst *testing.T, simfn string) (e *Solid, x [][]float64) {
	sim := inp.ReadSim("data/"+simfn, "", false, false, 0)
	reg := sim.Regions[0]
	cell := reg.Msh.Cells[0]
	err := cell.SetFaceConds(sim.Stages[0], sim.Functions)
	if err != nil {
		tst.Errorf("SetFaceConds failed:\n%v", err)
		return
	}
	x = ele.BuildCoordsMatrix(cell, reg.Msh)
	e = ele.GetAllocator("u")(sim, cell, reg.Etag2data(-1), x).(*Solid)
	e.SetEqs([][]int{{0, 1}, {2, 3}, {4, 5}, {6, 7}})
	return
}

func newSolution(ny int) *ele.Solution {
	return &ele.Solution{
		Y:          make([]float64, ny),
		ΔY:         make([]float64, ny),
		Prescribed: make([]bool, ny),
	}
}

func Test_solid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solid01. information and allocation")

	// load sim => mesh => edat => cell
	sim := inp.ReadSim("data/solid.sim", "", false, false, 0)
	reg := sim.Regions[0]
	cell := reg.Msh.Cells[0]
	edat := reg.Etag2data(-1)

	// check info
	info := ele.GetInfoFunc("u")(sim, cell, edat)
	chk.IntAssert(len(info.Dofs), 4)
	for _, dofs := range info.Dofs {
		chk.IntAssert(len(dofs), 2)
		chk.StrAssert(dofs[0], "ux")
		chk.StrAssert(dofs[1], "uy")
	}
	chk.StrAssert(info.Y2F["ux"], "fx")
	chk.StrAssert(info.Y2F["uy"], "fy")

	// check element
	e, _ := allocSquare(tst, "solid.sim")
	if e == nil {
		return
	}
	chk.IntAssert(e.Id(), 0)
	chk.IntAssert(e.Nu, 8)
	chk.Ints(tst, "Umap", e.Umap, utl.IntRange(8))
	chk.IntAssert(len(e.IpsElem), 4)
	chk.IntAssert(len(e.IpsFace), 2)
	chk.IntAssert(len(e.NatBcs), 3)

	// check output keys and integration point coordinates
	keys := e.OutIpKeys()
	chk.IntAssert(len(keys), 4)
	chk.StrAssert(keys[0], "sx")
	chk.StrAssert(keys[3], "sxy")
	for _, c := range e.OutIpCoords() {
		for i := 0; i < 2; i++ {
			if c[i] < 0 || c[i] > 1 {
				tst.Errorf("ip coordinate %v is outside the unit square\n", c)
				return
			}
		}
	}
}

func Test_solid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solid02. uniform strain gives exact nodal forces")

	// element with the linear comparison material
	e, x := allocSquare(tst, "solidlin.sim")
	if e == nil {
		return
	}

	// homogeneous deformation: ux = a*X, uy = b*Y
	a, b := 0.01, -0.005
	sol := newSolution(8)
	sol.T = 1
	for m := 0; m < 4; m++ {
		sol.Y[0+m*2] = a * x[0][m]
		sol.Y[1+m*2] = b * x[1][m]
	}

	// corresponding first Piola-Kirchhoff stress
	mdl := e.Mdl.(*msolid.LinElast)
	P11 := mdl.Lam*(a+b) + 2.0*mdl.Mu*a
	P22 := mdl.Lam*(a+b) + 2.0*mdl.Mu*b

	// nodal forces. GxInt and GyInt are the integrals of the gradients over
	// the unit square and the 1.5 terms are the resultant of "ty" (=3) on
	// the top face
	GxInt := []float64{-0.5, 0.5, 0.5, -0.5}
	GyInt := []float64{-0.5, -0.5, 0.5, 0.5}
	fbCorrect := make([]float64, 8)
	for m := 0; m < 4; m++ {
		fbCorrect[0+m*2] = -P11 * GxInt[m]
		fbCorrect[1+m*2] = -P22 * GyInt[m]
	}
	fbCorrect[5] += 1.5
	fbCorrect[7] += 1.5

	// check fb
	fb := make([]float64, 8)
	err := e.AddToRhs(fb, sol)
	if err != nil {
		tst.Errorf("AddToRhs failed:\n%v", err)
		return
	}
	chk.Vector(tst, "fb", 1e-11, fb, fbCorrect)

	// rows of prescribed equations must not be assembled
	sol.Prescribed[5] = true
	la.VecFill(fb, 0)
	err = e.AddToRhs(fb, sol)
	if err != nil {
		tst.Errorf("AddToRhs failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "fb5 (prescribed)", 1e-17, fb[5], 0)
	chk.Scalar(tst, "fb7", 1e-11, fb[7], fbCorrect[7])
}

func Test_solid03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solid03. consistent tangent vs numerical derivatives")

	// element with the neo-Hookean material
	e, _ := allocSquare(tst, "solid.sim")
	if e == nil {
		return
	}

	// non-homogeneous deformation
	sol := newSolution(8)
	copy(sol.Y, []float64{0.01, -0.007, 0.013, 0.004, -0.006, 0.011, 0.002, -0.003})
	err := e.SetIniIvs(sol, nil)
	if err != nil {
		tst.Errorf("SetIniIvs failed:\n%v", err)
		return
	}

	// analytical tangent
	Kb := new(la.Triplet)
	Kb.Init(8, 8, 64)
	err = e.AddToKb(Kb, sol, true)
	if err != nil {
		tst.Errorf("AddToKb failed:\n%v", err)
		return
	}

	// compare K against central differences of -fb
	fbtmp := make([]float64, 8)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			dnum, _ := num.DerivCentral(func(y float64, args ...interface{}) (res float64) {
				tmp := sol.Y[j]
				sol.Y[j] = y
				la.VecFill(fbtmp, 0)
				inerr := e.AddToRhs(fbtmp, sol)
				if inerr != nil {
					chk.Panic("AddToRhs failed during numerical differentiation:\n%v", inerr)
				}
				sol.Y[j] = tmp
				return -fbtmp[i]
			}, sol.Y[j], 1e-6)
			chk.AnaNum(tst, io.Sf("K%d%d", i, j), 1e-4, e.K[i][j], dnum, chk.Verbose)
		}
	}
}

func Test_solid04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solid04. pressure applied on top face")

	// element with the neo-Hookean material; qn = -2*t on the top face
	e, _ := allocSquare(tst, "solid.sim")
	if e == nil {
		return
	}

	// undeformed configuration: only the surface loads enter fb
	sol := newSolution(8)
	sol.T = 1
	fb := make([]float64, 8)
	err := e.AddToRhs(fb, sol)
	if err != nil {
		tst.Errorf("AddToRhs failed:\n%v", err)
		return
	}
	fbCorrect := []float64{0, 0, 0, 0, 0, -1, 0, -1}
	chk.Vector(tst, "fb @ t=1", 1e-13, fb, fbCorrect)

	// load scales with t
	sol.T = 0.5
	la.VecFill(fb, 0)
	err = e.AddToRhs(fb, sol)
	if err != nil {
		tst.Errorf("AddToRhs failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "fb5 @ t=0.5", 1e-13, fb[5], -0.5)
}

func Test_solid05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solid05. state update and stress output")

	// element with the linear comparison material
	e, x := allocSquare(tst, "solidlin.sim")
	if e == nil {
		return
	}

	// homogeneous deformation
	a, b := 0.01, -0.005
	sol := newSolution(8)
	sol.T = 1
	for m := 0; m < 4; m++ {
		sol.Y[0+m*2] = a * x[0][m]
		sol.Y[1+m*2] = b * x[1][m]
	}

	// update states
	err := e.SetIniIvs(sol, nil)
	if err != nil {
		tst.Errorf("SetIniIvs failed:\n%v", err)
		return
	}
	err = e.Update(sol)
	if err != nil {
		tst.Errorf("Update failed:\n%v", err)
		return
	}

	// stresses must be uniform
	mdl := e.Mdl.(*msolid.LinElast)
	sx := mdl.Lam*(a+b) + 2.0*mdl.Mu*a
	sy := mdl.Lam*(a+b) + 2.0*mdl.Mu*b
	sz := mdl.Lam * (a + b)
	for idx, s := range e.States {
		chk.Vector(tst, io.Sf("sig%d", idx), 1e-11, s.Sig, []float64{sx, sy, sz, 0})
	}

	// output map
	M := ele.NewIpsMap()
	e.OutIpVals(M, sol)
	chk.Scalar(tst, "out sx", 1e-11, M.Get("sx", 0), sx)
	chk.Scalar(tst, "out sz", 1e-11, M.Get("sz", 3), sz)
	chk.Scalar(tst, "out sxy", 1e-14, M.Get("sxy", 2), 0)

	// backup, clobber and restore
	err = e.BackupIvs(false)
	if err != nil {
		tst.Errorf("BackupIvs failed:\n%v", err)
		return
	}
	e.States[0].Sig[0] = 123
	err = e.RestoreIvs(false)
	if err != nil {
		tst.Errorf("RestoreIvs failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "restored sx", 1e-14, e.States[0].Sig[0], sx)

	// reset after zeroed displacements
	err = e.Ureset(sol)
	if err != nil {
		tst.Errorf("Ureset failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "sx after reset", 1e-17, e.States[0].Sig[0], 0)
	chk.Scalar(tst, "F00 after reset", 1e-17, e.States[0].F[0][0], 1)
}

func Test_solid06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solid06. zero state and rigid translation give zero forces")

	// element with the neo-Hookean material; no surface load at t=0
	e, _ := allocSquare(tst, "solid.sim")
	if e == nil {
		return
	}

	// undeformed configuration
	sol := newSolution(8)
	fb := make([]float64, 8)
	zeros := make([]float64, 8)
	err := e.AddToRhs(fb, sol)
	if err != nil {
		tst.Errorf("AddToRhs failed:\n%v", err)
		return
	}
	chk.Vector(tst, "fb @ u=0", 1e-14, fb, zeros)

	// rigid translation: F = I everywhere, hence no internal forces
	for m := 0; m < 4; m++ {
		sol.Y[0+m*2] = 0.123
		sol.Y[1+m*2] = -0.456
	}
	la.VecFill(fb, 0)
	err = e.AddToRhs(fb, sol)
	if err != nil {
		tst.Errorf("AddToRhs failed:\n%v", err)
		return
	}
	chk.Vector(tst, "fb @ rigid translation", 1e-12, fb, zeros)
}
