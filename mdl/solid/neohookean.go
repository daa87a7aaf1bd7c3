// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/tsr"
)

// MINDET is the tolerance to detect a singular deformation gradient
const MINDET = 1e-14

// NeoHookean implements a compressible neo-Hookean hyperelastic model with
// strain energy density (in 2D, plane strain is assumed and F₃₃ = 1)
//
//	ψ(F) = (μ/2)(tr(FᵀF) − 3) − μ·ln(J) + (λ/2)·ln(J)²   with   J = det(F)
//
// The first Piola-Kirchhoff stress and the consistent tangent modulus are
//
//	P = μ(F − F⁻ᵀ) + λ·ln(J)·F⁻ᵀ
//	A_iJkL = μ δ_ik δ_JL + (μ − λ·ln(J)) F⁻ᵀ_iL F⁻ᵀ_kJ + λ F⁻ᵀ_iJ F⁻ᵀ_kL
type NeoHookean struct {
	Ndim int     // space dimension
	E    float64 // Young's modulus
	Nu   float64 // Poisson's coefficient
	Rho  float64 // density
	Mu   float64 // Lamé parameter μ (shear modulus)
	Lam  float64 // Lamé parameter λ
}

// add model to factory
func init() {
	allocators["nhk"] = func() Model { return new(NeoHookean) }
}

// Init initialises model
func (o *NeoHookean) Init(ndim int, pstress bool, prms fun.Prms) (err error) {
	if pstress {
		return chk.Err("nhk: plane stress analyses are not available")
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
			return chk.Err("nhk: parameter named %q is incorrect", p.N)
		}
	}
	if o.E <= 0 {
		return chk.Err("nhk: Young's modulus must be positive. E=%g is incorrect", o.E)
	}
	if o.Nu <= -1 || o.Nu >= 0.5 {
		return chk.Err("nhk: Poisson's coefficient must be within (-1, 0.5). nu=%g is incorrect", o.Nu)
	}
	o.Mu = o.E / (2.0 * (1.0 + o.Nu))
	o.Lam = o.E * o.Nu / ((1.0 + o.Nu) * (1.0 - 2.0*o.Nu))
	return
}

// GetPrms gets (an example) of parameters
func (o NeoHookean) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "E", V: 1e4},
		&fun.Prm{N: "nu", V: 0.3},
		&fun.Prm{N: "rho", V: 1.0},
	}
}

// GetRho returns density
func (o NeoHookean) GetRho() float64 {
	return o.Rho
}

// InitIntVars initialises state variables
func (o NeoHookean) InitIntVars(ndim int) (*State, error) {
	return NewState(2*ndim, ndim), nil
}

// Clean clean resources
func (o *NeoHookean) Clean() {
}

// kinematics computes J = det(F) and fi = F⁻¹ into fresh local buffers.
// Callers therefore never race on shared scratch space.
func (o *NeoHookean) kinematics(F [][]float64) (J float64, fi [][]float64, err error) {
	fi = la.MatAlloc(o.Ndim, o.Ndim)
	J, err = la.MatInv(fi, F, MINDET)
	if err != nil || J <= 0 {
		return 0, nil, &DegeneracyError{J}
	}
	return
}

// Energy computes the strain energy density ψ(F)
func (o *NeoHookean) Energy(F [][]float64) (ψ float64, err error) {
	J, _, err := o.kinematics(F)
	if err != nil {
		return 0, err
	}
	ic := float64(3 - o.Ndim) // plane strain: F₃₃ = 1 contributes to tr(FᵀF)
	for i := 0; i < o.Ndim; i++ {
		for j := 0; j < o.Ndim; j++ {
			ic += F[i][j] * F[i][j]
		}
	}
	lnJ := math.Log(J)
	return 0.5*o.Mu*(ic-3.0) - o.Mu*lnJ + 0.5*o.Lam*lnJ*lnJ, nil
}

// CalcP computes the first Piola-Kirchhoff stress P = ∂ψ/∂F.
// P is left untouched when F is degenerate.
func (o *NeoHookean) CalcP(P, F [][]float64) (err error) {
	J, fi, err := o.kinematics(F)
	if err != nil {
		return err
	}
	lnJ := math.Log(J)
	for i := 0; i < o.Ndim; i++ {
		for j := 0; j < o.Ndim; j++ {
			P[i][j] = o.Mu*(F[i][j]-fi[j][i]) + o.Lam*lnJ*fi[j][i]
		}
	}
	return
}

// CalcA computes the tangent modulus A = ∂P/∂F
func (o *NeoHookean) CalcA(A [][][][]float64, F [][]float64, firstIt bool) (err error) {
	J, fi, err := o.kinematics(F)
	if err != nil {
		return err
	}
	c := o.Mu - o.Lam*math.Log(J)
	for i := 0; i < o.Ndim; i++ {
		for j := 0; j < o.Ndim; j++ {
			for k := 0; k < o.Ndim; k++ {
				for l := 0; l < o.Ndim; l++ {
					v := c*fi[l][i]*fi[j][k] + o.Lam*fi[j][i]*fi[l][k]
					if i == k && j == l {
						v += o.Mu
					}
					A[i][j][k][l] = v
				}
			}
		}
	}
	return
}

// Update records F and the Cauchy stress σ = (1/J)·P·Fᵀ into the state
func (o *NeoHookean) Update(s *State, F [][]float64) (err error) {
	J, fi, err := o.kinematics(F)
	if err != nil {
		return err
	}
	lnJ := math.Log(J)
	P := la.MatAlloc(o.Ndim, o.Ndim)
	σ := la.MatAlloc(o.Ndim, o.Ndim)
	for i := 0; i < o.Ndim; i++ {
		for j := 0; j < o.Ndim; j++ {
			P[i][j] = o.Mu*(F[i][j]-fi[j][i]) + o.Lam*lnJ*fi[j][i]
		}
	}
	for i := 0; i < o.Ndim; i++ {
		for j := 0; j < o.Ndim; j++ {
			for k := 0; k < o.Ndim; k++ {
				σ[i][j] += P[i][k] * F[j][k] / J
			}
		}
	}
	s.Sig[0] = σ[0][0]
	s.Sig[1] = σ[1][1]
	if o.Ndim == 2 {
		s.Sig[2] = o.Lam * lnJ / J // out-of-plane stress (plane strain)
		s.Sig[3] = σ[0][1] * tsr.SQ2
	} else {
		s.Sig[2] = σ[2][2]
		s.Sig[3] = σ[0][1] * tsr.SQ2
		s.Sig[4] = σ[1][2] * tsr.SQ2
		s.Sig[5] = σ[0][2] * tsr.SQ2
	}
	la.MatCopy(s.F, 1, F)
	return
}
