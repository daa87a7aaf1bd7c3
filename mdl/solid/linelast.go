// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/tsr"
)

// LinElast implements a linear elastic comparison model written in terms of
// the deformation gradient. With ε = sym(F − I),
//
//	ψ = (λ/2)·tr(ε)² + μ·ε:ε
//	P = λ·tr(ε)·I + 2μ·ε
//	A_iJkL = λ δ_iJ δ_kL + μ (δ_ik δ_JL + δ_iL δ_kJ)
//
// P is linear in the displacements and A is constant, hence Newton's method
// must converge with a single corrected iteration. There is no restriction
// on det(F).
type LinElast struct {
	Ndim int     // space dimension
	E    float64 // Young's modulus
	Nu   float64 // Poisson's coefficient
	Rho  float64 // density
	Mu   float64 // Lamé parameter μ (shear modulus)
	Lam  float64 // Lamé parameter λ
}

// add model to factory
func init() {
	allocators["lin"] = func() Model { return new(LinElast) }
}

// Init initialises model
func (o *LinElast) Init(ndim int, pstress bool, prms fun.Prms) (err error) {
	if pstress {
		return chk.Err("lin: plane stress analyses are not available")
	}
	o.Ndim = ndim
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		case "rho":
			o.Rho = p.V
		default:
			return chk.Err("lin: parameter named %q is incorrect", p.N)
		}
	}
	o.Mu = o.E / (2.0 * (1.0 + o.Nu))
	o.Lam = o.E * o.Nu / ((1.0 + o.Nu) * (1.0 - 2.0*o.Nu))
	return
}

// GetPrms gets (an example) of parameters
func (o LinElast) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "E", V: 1e4},
		&fun.Prm{N: "nu", V: 0.25},
	}
}

// GetRho returns density
func (o LinElast) GetRho() float64 {
	return o.Rho
}

// InitIntVars initialises state variables
func (o LinElast) InitIntVars(ndim int) (*State, error) {
	return NewState(2*ndim, ndim), nil
}

// Clean clean resources
func (o *LinElast) Clean() {
}

// strains computes ε = sym(F − I) and its trace into a fresh local buffer
func (o *LinElast) strains(F [][]float64) (ε [][]float64, trε float64) {
	ε = la.MatAlloc(o.Ndim, o.Ndim)
	for i := 0; i < o.Ndim; i++ {
		for j := 0; j < o.Ndim; j++ {
			ε[i][j] = (F[i][j] + F[j][i]) / 2.0
		}
		ε[i][i] -= 1.0
		trε += ε[i][i]
	}
	return
}

// Energy computes the strain energy density ψ(F)
func (o *LinElast) Energy(F [][]float64) (ψ float64, err error) {
	ε, trε := o.strains(F)
	for i := 0; i < o.Ndim; i++ {
		for j := 0; j < o.Ndim; j++ {
			ψ += o.Mu * ε[i][j] * ε[i][j]
		}
	}
	ψ += 0.5 * o.Lam * trε * trε
	return
}

// CalcP computes the stress P = λ·tr(ε)·I + 2μ·ε
func (o *LinElast) CalcP(P, F [][]float64) (err error) {
	ε, trε := o.strains(F)
	for i := 0; i < o.Ndim; i++ {
		for j := 0; j < o.Ndim; j++ {
			P[i][j] = 2.0 * o.Mu * ε[i][j]
		}
		P[i][i] += o.Lam * trε
	}
	return
}

// CalcA computes the (constant) tangent modulus
func (o *LinElast) CalcA(A [][][][]float64, F [][]float64, firstIt bool) (err error) {
	for i := 0; i < o.Ndim; i++ {
		for j := 0; j < o.Ndim; j++ {
			for k := 0; k < o.Ndim; k++ {
				for l := 0; l < o.Ndim; l++ {
					v := 0.0
					if i == j && k == l {
						v += o.Lam
					}
					if i == k && j == l {
						v += o.Mu
					}
					if i == l && j == k {
						v += o.Mu
					}
					A[i][j][k][l] = v
				}
			}
		}
	}
	return
}

// Update records F and the stress into the state
func (o *LinElast) Update(s *State, F [][]float64) (err error) {
	ε, trε := o.strains(F)
	s.Sig[0] = o.Lam*trε + 2.0*o.Mu*ε[0][0]
	s.Sig[1] = o.Lam*trε + 2.0*o.Mu*ε[1][1]
	if o.Ndim == 2 {
		s.Sig[2] = o.Lam * trε // out-of-plane stress (plane strain)
		s.Sig[3] = 2.0 * o.Mu * ε[0][1] * tsr.SQ2
	} else {
		s.Sig[2] = o.Lam*trε + 2.0*o.Mu*ε[2][2]
		s.Sig[3] = 2.0 * o.Mu * ε[0][1] * tsr.SQ2
		s.Sig[4] = 2.0 * o.Mu * ε[1][2] * tsr.SQ2
		s.Sig[5] = 2.0 * o.Mu * ε[0][2] * tsr.SQ2
	}
	la.MatCopy(s.F, 1, F)
	return
}
