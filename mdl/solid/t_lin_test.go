// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
)

// allocLin allocates and initialises a linear comparison model
func allocLin(tst *testing.T, ndim int) *LinElast {
	mdl, err := New("lin")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return nil
	}
	prms := fun.Prms{
		&fun.Prm{N: "E", V: 1e4},
		&fun.Prm{N: "nu", V: 0.25},
	}
	err = mdl.Init(ndim, false, prms)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return nil
	}
	return mdl.(*LinElast)
}

func Test_lin01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lin01. stress is linear in the displacement gradient")

	mdl := allocLin(tst, 2)
	if mdl == nil {
		return
	}

	I2 := [][]float64{{1, 0}, {0, 1}}
	H := [][]float64{{0.02, 0.01}, {-0.03, 0.05}}

	// P(I) = 0
	P := la.MatAlloc(2, 2)
	err := mdl.CalcP(P, I2)
	if err != nil {
		tst.Errorf("CalcP failed: %v\n", err)
		return
	}
	chk.Matrix(tst, "P(I)", 1e-15, P, [][]float64{{0, 0}, {0, 0}})

	// P(I + 2H) = 2·P(I + H)
	F1 := la.MatClone(I2)
	F2 := la.MatClone(I2)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			F1[i][j] += H[i][j]
			F2[i][j] += 2 * H[i][j]
		}
	}
	P1 := la.MatAlloc(2, 2)
	P2 := la.MatAlloc(2, 2)
	mdl.CalcP(P1, F1)
	mdl.CalcP(P2, F2)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			chk.Scalar(tst, io.Sf("P%d%d linearity", i, j), 1e-11, P2[i][j], 2*P1[i][j])
		}
	}

	// P is symmetric (only the symmetric part of H enters)
	chk.Scalar(tst, "P12 = P21", 1e-12, P1[0][1], P1[1][0])

	// no restriction on det F
	_, err = mdl.Energy([][]float64{{-1, 0}, {0, 1}})
	if err != nil {
		tst.Errorf("the linear model must not restrict det(F): %v\n", err)
		return
	}
}

func Test_lin02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lin02. constant tangent is the exact derivative")

	for _, ndim := range []int{2, 3} {
		mdl := allocLin(tst, ndim)
		if mdl == nil {
			return
		}
		io.Pfblue2("--------- ndim = %d ---------\n", ndim)

		F := la.MatAlloc(ndim, ndim)
		for i := 0; i < ndim; i++ {
			for j := 0; j < ndim; j++ {
				F[i][j] = 0.1 * float64(i-j)
			}
			F[i][i] = 1.0 + 0.05*float64(i)
		}

		A := AllocA(ndim)
		err := mdl.CalcA(A, F, true)
		if err != nil {
			tst.Errorf("CalcA failed: %v\n", err)
			return
		}

		Ptmp := la.MatAlloc(ndim, ndim)
		for i := 0; i < ndim; i++ {
			for j := 0; j < ndim; j++ {
				for k := 0; k < ndim; k++ {
					for l := 0; l < ndim; l++ {
						kC, lC := k, l
						dnum, _ := num.DerivCentral(func(x float64, args ...interface{}) (res float64) {
							Ftmp := la.MatClone(F)
							Ftmp[kC][lC] = x
							mdl.CalcP(Ptmp, Ftmp)
							return Ptmp[i][j]
						}, F[k][l], 1e-4)
						chk.AnaNum(tst, io.Sf("A%d%d%d%d", i, j, k, l), 1e-6, A[i][j][k][l], dnum, chk.Verbose)
					}
				}
			}
		}
	}
}

func Test_lin03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lin03. plane strain out-of-plane stress")

	mdl := allocLin(tst, 2)
	if mdl == nil {
		return
	}
	F := [][]float64{
		{1.002, 0.001},
		{0.003, 0.996},
	}
	trε := 0.002 - 0.004

	s, err := mdl.InitIntVars(2)
	if err != nil {
		tst.Errorf("InitIntVars failed: %v\n", err)
		return
	}
	err = mdl.Update(s, F)
	if err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "σ11", 1e-11, s.Sig[0], mdl.Lam*trε+2*mdl.Mu*0.002)
	chk.Scalar(tst, "σ22", 1e-11, s.Sig[1], mdl.Lam*trε-2*mdl.Mu*0.004)
	chk.Scalar(tst, "σ33", 1e-11, s.Sig[2], mdl.Lam*trε)
}
