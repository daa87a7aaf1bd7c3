// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_msh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh01. 2D mesh")

	msh, err := ReadMsh("data", "square.msh", 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("%v\n", msh)
	io.Pfcyan("lims = [%g, %g, %g, %g]\n", msh.Xmin, msh.Xmax, msh.Ymin, msh.Ymax)

	chk.IntAssert(msh.Ndim, 2)
	chk.Scalar(tst, "xmin", 1e-17, msh.Xmin, 0)
	chk.Scalar(tst, "xmax", 1e-17, msh.Xmax, 1)
	chk.Scalar(tst, "ymin", 1e-17, msh.Ymin, 0)
	chk.Scalar(tst, "ymax", 1e-17, msh.Ymax, 1)

	chk.IntAssert(len(msh.Cells), 1)
	chk.StrAssert(msh.Cells[0].Shp.Type, "qua4")
	chk.IntAssert(len(msh.FaceTag2cells[-10]), 1)
	chk.IntAssert(len(msh.FaceTag2cells[-11]), 1)
	chk.Ints(tst, "verts @ face -10", msh.FaceTag2verts[-10], []int{0, 1})
	chk.Ints(tst, "verts @ face -11", msh.FaceTag2verts[-11], []int{2, 3})

	chk.IntAssert(len(msh.VertTag2verts[-100]), 1)
	chk.IntAssert(msh.VertTag2verts[-100][0].Id, 3)
}

func Test_msh02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh02. 3D mesh")

	msh, err := ReadMsh("data", "box.msh", 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pfcyan("lims = [%g, %g, %g, %g, %g, %g]\n", msh.Xmin, msh.Xmax, msh.Ymin, msh.Ymax, msh.Zmin, msh.Zmax)

	chk.IntAssert(msh.Ndim, 3)
	chk.Scalar(tst, "xmax", 1e-17, msh.Xmax, 2)
	chk.Scalar(tst, "ymax", 1e-17, msh.Ymax, 1)
	chk.Scalar(tst, "zmax", 1e-17, msh.Zmax, 1)

	chk.IntAssert(len(msh.Cells), 2)
	chk.StrAssert(msh.Cells[0].Shp.Type, "hex8")
	chk.IntAssert(len(msh.CellTag2cells[-1]), 2)

	// the x-min and x-max faces belong to one cell each; the lateral faces
	// are carried by both cells
	chk.IntAssert(len(msh.FaceTag2cells[-10]), 1)
	chk.IntAssert(len(msh.FaceTag2cells[-11]), 1)
	chk.IntAssert(len(msh.FaceTag2cells[-12]), 2)
	chk.IntAssert(len(msh.FaceTag2cells[-13]), 2)

	chk.Ints(tst, "verts @ face -10", msh.FaceTag2verts[-10], []int{0, 3, 6, 9})
	chk.Ints(tst, "verts @ face -11", msh.FaceTag2verts[-11], []int{2, 5, 8, 11})
}

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. materials database")

	mdb1, err := ReadMat("data", "materials.mat", 3, false)
	if err != nil {
		tst.Errorf("cannot read materials.mat:\n%v", err)
		return
	}
	io.Pforan("materials.mat just read:\n%v\n", mdb1)

	// both materials are solids with allocated models
	chk.IntAssert(len(mdb1.Materials), 2)
	chk.IntAssert(len(mdb1.Solids), 2)
	hard := mdb1.Get("hard")
	if hard == nil || hard.Solid == nil {
		tst.Errorf("cannot get material 'hard' with allocated model\n")
		return
	}
	chk.StrAssert(hard.Model, "nhk")
	if mdb1.Get("unknown") != nil {
		tst.Errorf("Get must return nil for unknown materials\n")
		return
	}

	// write and read back
	fn := "test_materials.mat"
	io.WriteFileSD("/tmp/cued4c9/inp", fn, mdb1.String())
	mdb2, err := ReadMat("/tmp/cued4c9/inp", fn, 3, false)
	if err != nil {
		tst.Errorf("cannot read %s:\n%v", fn, err)
		return
	}
	io.Pfblue2("\n%v\n", mdb2)
	chk.IntAssert(len(mdb2.Materials), len(mdb1.Materials))
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. simulation file")

	sim := ReadSim("data/box.sim", "", true, true, 0)
	if sim == nil {
		tst.Errorf("test failed\n")
		return
	}
	defer sim.Clean()
	if chk.Verbose {
		sim.GetInfo(os.Stdout)
		io.Pf("\n")
	}

	io.Pfyel("Ndim        = %v\n", sim.Ndim)
	io.Pfcyan("LinSol.Name = %v\n", sim.LinSol.Name)

	chk.IntAssert(sim.Ndim, 3)
	chk.StrAssert(sim.LinSol.Name, "umfpack")
	chk.StrAssert(sim.EncType, "gob")

	// solver defaults
	chk.IntAssert(sim.Solver.NmaxIt, 50)
	chk.Scalar(tst, "atol", 1e-17, sim.Solver.Atol, 1e-8)
	chk.Scalar(tst, "rtol", 1e-17, sim.Solver.Rtol, 1e-6)
	chk.StrAssert(sim.Solver.Conv, "either")

	// stage control
	stg := sim.Stages[0]
	chk.Scalar(tst, "tf", 1e-17, stg.Control.Tf, 2)
	chk.Scalar(tst, "dt", 1e-17, stg.Control.Dt, 0.5)
	chk.Scalar(tst, "dtout", 1e-17, stg.Control.DtOut, 1)

	// functions
	pull, err := sim.Functions.Get("pull")
	if err != nil {
		tst.Errorf("cannot get function 'pull':\n%v", err)
		return
	}
	chk.Scalar(tst, "pull(2)", 1e-15, pull.F(2, nil), 2)
	zero, err := sim.Functions.Get("zero")
	if err != nil {
		tst.Errorf("cannot get function 'zero':\n%v", err)
		return
	}
	chk.Scalar(tst, "zero(2)", 1e-17, zero.F(2, nil), 0)

	// materials are connected to regions
	edat := sim.Regions[0].ElemsData[0]
	chk.StrAssert(edat.Mat, "hard")
	mat := sim.MatModels.Get(edat.Mat)
	if mat == nil || mat.Solid == nil {
		tst.Errorf("material %q is not available with an allocated model\n", edat.Mat)
		return
	}
}
