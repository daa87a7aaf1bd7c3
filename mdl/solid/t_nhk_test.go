// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// allocNhk allocates and initialises a neo-Hookean model
func allocNhk(tst *testing.T, ndim int) *NeoHookean {
	mdl, err := New("nhk")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return nil
	}
	prms := fun.Prms{
		&fun.Prm{N: "E", V: 1e4},
		&fun.Prm{N: "nu", V: 0.3},
		&fun.Prm{N: "rho", V: 1.0},
	}
	err = mdl.Init(ndim, false, prms)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return nil
	}
	return mdl.(*NeoHookean)
}

func Test_nhk01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nhk01. reference configuration is stress free")

	for _, ndim := range []int{2, 3} {
		mdl := allocNhk(tst, ndim)
		if mdl == nil {
			return
		}
		io.Pfblue2("--------- ndim = %d ---------\n", ndim)
		chk.Scalar(tst, "μ", 1e-12, mdl.Mu, 1e4/2.6)
		chk.Scalar(tst, "λ", 1e-9, mdl.Lam, 1e4*0.3/(1.3*0.4))

		F := la.MatAlloc(ndim, ndim)
		for i := 0; i < ndim; i++ {
			F[i][i] = 1
		}

		ψ, err := mdl.Energy(F)
		if err != nil {
			tst.Errorf("Energy failed: %v\n", err)
			return
		}
		chk.Scalar(tst, "ψ(I)", 1e-15, ψ, 0)

		P := la.MatAlloc(ndim, ndim)
		err = mdl.CalcP(P, F)
		if err != nil {
			tst.Errorf("CalcP failed: %v\n", err)
			return
		}
		for i := 0; i < ndim; i++ {
			for j := 0; j < ndim; j++ {
				chk.Scalar(tst, io.Sf("P%d%d(I)", i, j), 1e-12, P[i][j], 0)
			}
		}

		// at F = I the tangent must equal the small strain elasticity tensor
		A := AllocA(ndim)
		err = mdl.CalcA(A, F, true)
		if err != nil {
			tst.Errorf("CalcA failed: %v\n", err)
			return
		}
		for i := 0; i < ndim; i++ {
			for j := 0; j < ndim; j++ {
				for k := 0; k < ndim; k++ {
					for l := 0; l < ndim; l++ {
						correct := 0.0
						if i == j && k == l {
							correct += mdl.Lam
						}
						if i == k && j == l {
							correct += mdl.Mu
						}
						if i == l && j == k {
							correct += mdl.Mu
						}
						chk.Scalar(tst, io.Sf("A%d%d%d%d(I)", i, j, k, l), 1e-9, A[i][j][k][l], correct)
					}
				}
			}
		}
	}
}

func Test_nhk02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nhk02. P = ∂ψ/∂F and A = ∂P/∂F")

	Fvals := map[int][][]float64{
		2: {
			{1.2, 0.3},
			{0.1, 0.9},
		},
		3: {
			{1.10, 0.20, 0.10},
			{0.05, 0.95, 0.15},
			{0.10, 0.05, 1.05},
		},
	}

	for _, ndim := range []int{2, 3} {
		mdl := allocNhk(tst, ndim)
		if mdl == nil {
			return
		}
		io.Pfblue2("--------- ndim = %d ---------\n", ndim)
		F := Fvals[ndim]

		P := la.MatAlloc(ndim, ndim)
		err := mdl.CalcP(P, F)
		if err != nil {
			tst.Errorf("CalcP failed: %v\n", err)
			return
		}

		// stress versus numerical derivative of the energy
		for i := 0; i < ndim; i++ {
			for j := 0; j < ndim; j++ {
				iC, jC := i, j
				chk.DerivScaSca(tst, io.Sf("P%d%d", i, j), 1e-3, P[i][j], F[i][j], 1e-4, chk.Verbose, func(x float64) (float64, error) {
					Ftmp := la.MatClone(F)
					Ftmp[iC][jC] = x
					return mdl.Energy(Ftmp)
				})
			}
		}

		// tangent versus numerical derivative of the stress
		A := AllocA(ndim)
		err = mdl.CalcA(A, F, false)
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
							err := mdl.CalcP(Ptmp, Ftmp)
							if err != nil {
								chk.Panic("CalcP failed: %v", err)
							}
							return Ptmp[i][j]
						}, F[k][l], 1e-4)
						chk.AnaNum(tst, io.Sf("A%d%d%d%d", i, j, k, l), 1e-2, A[i][j][k][l], dnum, chk.Verbose)
					}
				}
			}
		}
	}
}

func Test_nhk03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nhk03. degenerate deformation gradients")

	mdl := allocNhk(tst, 2)
	if mdl == nil {
		return
	}

	for _, F := range [][][]float64{
		{{0, 0}, {0, 1}},  // det F = 0
		{{-1, 0}, {0, 1}}, // det F < 0
	} {
		_, err := mdl.Energy(F)
		if err == nil {
			tst.Errorf("Energy must fail for degenerate F\n")
			return
		}
		var derr *DegeneracyError
		if !errors.As(err, &derr) {
			tst.Errorf("error must be a DegeneracyError. got: %v\n", err)
			return
		}
		if derr.J > 0 {
			tst.Errorf("DegeneracyError must carry the non-positive determinant. got J=%g\n", derr.J)
			return
		}

		// P must be left untouched on failure
		P := [][]float64{{123, 123}, {123, 123}}
		err = mdl.CalcP(P, F)
		if err == nil {
			tst.Errorf("CalcP must fail for degenerate F\n")
			return
		}
		chk.Matrix(tst, "P untouched", 1e-17, P, [][]float64{{123, 123}, {123, 123}})

		A := AllocA(2)
		err = mdl.CalcA(A, F, false)
		if err == nil {
			tst.Errorf("CalcA must fail for degenerate F\n")
			return
		}

		s := NewState(4, 2)
		err = mdl.Update(s, F)
		if err == nil {
			tst.Errorf("Update must fail for degenerate F\n")
			return
		}
	}
}

func Test_nhk04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nhk04. uniaxial stretch: closed form Cauchy stress")

	mdl := allocNhk(tst, 3)
	if mdl == nil {
		return
	}
	λs := 1.3
	lnλ := math.Log(λs)
	F := [][]float64{
		{λs, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}

	P := la.MatAlloc(3, 3)
	err := mdl.CalcP(P, F)
	if err != nil {
		tst.Errorf("CalcP failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "P11", 1e-11, P[0][0], mdl.Mu*(λs-1.0/λs)+mdl.Lam*lnλ/λs)
	chk.Scalar(tst, "P22", 1e-11, P[1][1], mdl.Lam*lnλ)
	chk.Scalar(tst, "P12", 1e-15, P[0][1], 0)

	s, err := mdl.InitIntVars(3)
	if err != nil {
		tst.Errorf("InitIntVars failed: %v\n", err)
		return
	}
	chk.Vector(tst, "initial σ", 1e-17, s.Sig, []float64{0, 0, 0, 0, 0, 0})
	chk.Matrix(tst, "initial F", 1e-17, s.F, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})

	err = mdl.Update(s, F)
	if err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "σ11", 1e-11, s.Sig[0], P[0][0]) // σ11 = P11·F11/J with J = F11
	chk.Scalar(tst, "σ22", 1e-11, s.Sig[1], mdl.Lam*lnλ/λs)
	chk.Scalar(tst, "σ33", 1e-11, s.Sig[2], mdl.Lam*lnλ/λs)
	chk.Scalar(tst, "σ12", 1e-15, s.Sig[3], 0)
	chk.Matrix(tst, "F recorded", 1e-17, s.F, F)

	// copy semantics
	sc := s.GetCopy()
	chk.Vector(tst, "copy σ", 1e-17, sc.Sig, s.Sig)
	sc.Sig[0] = -1
	sc.F[0][0] = -1
	if s.Sig[0] == sc.Sig[0] || s.F[0][0] == sc.F[0][0] {
		tst.Errorf("GetCopy must not share memory with the source state\n")
		return
	}
	sc.Set(s)
	chk.Vector(tst, "set σ", 1e-17, sc.Sig, s.Sig)
	chk.Matrix(tst, "set F", 1e-17, sc.F, s.F)
}
