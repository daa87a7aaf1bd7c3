// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"testing"

	"github.com/garth-wells/CUED-4C9-demo/fem"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

func Test_out01(tst *testing.T) {

	// test title
	//verbose()
	chk.PrintTitle("out01. displacements at nodes. integration along line")

	// run simulation
	main := fem.NewMain("data/o01.sim", "", true, true, false, chk.Verbose, 0)
	err := main.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// start post-processing
	Start("data/o01.sim", 0, 0)

	// define entities
	Define("tip", N{2})
	Define("A", At{0, 1})
	Define("left", AlongY{0})

	// load results
	LoadResults(nil)

	// check output times
	chk.IntAssert(len(Times), 5)
	chk.Scalar(tst, "t0", 1e-15, Times[0], 0)
	chk.Scalar(tst, "tf", 1e-15, Times[len(Times)-1], 4)

	// check vertical displacements at the tip: compression must pull the top
	// face down monotonically as the load grows
	uy := GetRes("uy", "tip", -1)
	chk.IntAssert(len(uy), len(Times))
	chk.Scalar(tst, "uy @ t=0", 1e-15, uy[0], 0)
	for i := 1; i < len(uy); i++ {
		if uy[i] >= uy[i-1] {
			tst.Errorf("uy is not decreasing monotonically: uy[%d]=%g >= uy[%d]=%g", i, uy[i], i-1, uy[i-1])
			return
		}
	}

	// both top corners displace by the same amount
	uyA := GetRes("uy", "A", -1)
	chk.Vector(tst, "uy tip == uy A", 1e-10, uy, uyA)

	// ids and coordinates
	vids, ipids := GetIds("A")
	chk.Ints(tst, "vids(A)", vids, []int{3})
	chk.IntAssert(len(ipids), 0)
	xA := GetCoords("A")
	chk.Vector(tst, "x(A)", 1e-15, xA, []float64{0, 1})

	// integration along the left edge: uy varies linearly from 0 at the base
	// to uy(A) at the top, thus the trapezoidal integral gives uy(A)/2
	res := Integrate("uy", "left", "y", -1)
	chk.Scalar(tst, "int(uy) along left", 1e-10, res, uyA[len(uyA)-1]/2.0)

	// plot
	if chk.Verbose {
		Splot("t-uy", "")
		Plot("t", "uy", "tip", &plt.A{C: "b", M: "."}, -1)
		Splot("y-uy", "")
		last := len(Times) - 1
		Plot("uy", "y", "left", &plt.A{C: "r", M: "o", L: io.Sf("t=%g", Times[last])}, -1)
		Draw("/tmp/gofem", "out01", -1, -1, false, nil)
	}
}

func Test_out02(tst *testing.T) {

	// test title
	//verbose()
	chk.PrintTitle("out02. extrapolation of stresses to nodes")

	// run simulation
	main := fem.NewMain("data/o01.sim", "", true, true, false, chk.Verbose, 0)
	err := main.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// start post-processing
	Start("data/o01.sim", 0, 0)

	// request extrapolated values
	Extrap = []string{"sy"}

	// define entities and load results
	Define("top", N{2, 3})
	LoadResults(nil)

	// the top face carries a uniform pressure equal to 8 at the end of the
	// simulation, thus sy at the top vertices must be close to -8
	for _, vid := range []int{2, 3} {
		sy := ExVals[vid]["sy"]
		if sy >= 0 {
			tst.Errorf("extrapolated sy at vertex %d must be negative: %g", vid, sy)
			return
		}
		if math.Abs(sy+8.0) > 0.5 {
			tst.Errorf("extrapolated sy at vertex %d is too far from -8: %g", vid, sy)
			return
		}
	}

	// extrapolated values also appear in the results of located nodes
	syTop := GetRes("sy", "top", -1)
	chk.IntAssert(len(syTop), 2)
	chk.Scalar(tst, "sy @ top vertices match", 1e-10, syTop[0], syTop[1])
}
