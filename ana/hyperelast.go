// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/num"
)

// UniaxialNeoHookean computes the homogeneous solution for a compressible
// neo-Hookean bar loaded along the first axis with traction-free lateral
// surfaces. The deformation gradient is F = diag(λ1, λ2, λ2) and the lateral
// stretch λ2 follows from the condition P22 = P33 = 0:
//
//	μ (λ2² − 1) + λ ln(λ1 λ2²) = 0
//
// where μ and λ are Lamé's constants. Positive stress means tension.
type UniaxialNeoHookean struct {

	// input
	E float64 // Young's modulus
	ν float64 // Poisson's coefficient

	// derived
	μ float64 // shear modulus
	λ float64 // Lamé's first constant

	// auxiliary
	lam1 float64 // axial stretch for the lateral-stretch solver
}

// Init initialises this structure
func (o *UniaxialNeoHookean) Init(prms fun.Prms) {

	// default values
	o.E = 1000.0
	o.ν = 0.25

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.ν = p.V
		}
	}

	// derived
	o.μ = o.E / (2.0 * (1.0 + o.ν))
	o.λ = o.E * o.ν / ((1.0 + o.ν) * (1.0 - 2.0*o.ν))
}

// LateralStretch solves for the lateral stretch λ2 corresponding to a given
// axial stretch λ1
func (o *UniaxialNeoHookean) LateralStretch(λ1 float64) (λ2 float64, err error) {
	if λ1 < 1e-10 {
		return 0, chk.Err("axial stretch must be positive: λ1 = %g is invalid", λ1)
	}
	var nls num.NlSolver
	defer nls.Clean()
	o.lam1 = λ1
	res := []float64{1.0} // initial value
	nls.Init(1, o.fx_fun, nil, o.dfdx_fun, true, false, nil)
	err = nls.Solve(res, true)
	if err != nil {
		return
	}
	λ2 = res[0]
	return
}

// Stress computes the first Piola-Kirchhoff (P11) and Cauchy (σ11) axial
// stress components corresponding to a given axial stretch λ1
func (o *UniaxialNeoHookean) Stress(λ1 float64) (P11, σ11 float64, err error) {
	λ2, err := o.LateralStretch(λ1)
	if err != nil {
		return
	}
	J := λ1 * λ2 * λ2
	P11 = o.μ*(λ1-1.0/λ1) + o.λ*math.Log(J)/λ1
	σ11 = P11 * λ1 / J
	return
}

// fx_fun implements the lateral equilibrium residual
func (o *UniaxialNeoHookean) fx_fun(fx, x []float64) error {
	λ2 := x[0]
	fx[0] = o.μ*(λ2*λ2-1.0) + o.λ*math.Log(o.lam1*λ2*λ2)
	return nil
}

// dfdx_fun implements the derivative of the lateral equilibrium residual
func (o *UniaxialNeoHookean) dfdx_fun(dfdx [][]float64, x []float64) error {
	λ2 := x[0]
	dfdx[0][0] = 2.0*o.μ*λ2 + 2.0*o.λ/λ2
	return nil
}

// CantileverEndLoad computes the Euler-Bernoulli solution for a prismatic
// cantilever beam with rectangular cross-section, fixed at x=0 and loaded
// by a transverse end force P (positive downwards)
//
//	 ||o----------------------o  ---> x
//	 ||                       |
//	 ||                       V P
type CantileverEndLoad struct {

	// input
	E float64 // Young's modulus
	L float64 // length
	B float64 // cross-section width
	H float64 // cross-section height
	P float64 // end load

	// derived
	I float64 // second moment of area
}

// Init initialises this structure
func (o *CantileverEndLoad) Init(prms fun.Prms) {

	// default values
	o.E = 1000.0
	o.L = 1.0
	o.B = 1.0
	o.H = 1.0
	o.P = 1.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "L":
			o.L = p.V
		case "b":
			o.B = p.V
		case "h":
			o.H = p.V
		case "P":
			o.P = p.V
		}
	}

	// derived
	o.I = o.B * math.Pow(o.H, 3.0) / 12.0
}

// Deflection computes the transverse deflection (positive downwards) at x
func (o CantileverEndLoad) Deflection(x float64) float64 {
	return o.P * x * x * (3.0*o.L - x) / (6.0 * o.E * o.I)
}

// TipDeflection computes the transverse deflection at the free end
func (o CantileverEndLoad) TipDeflection() float64 {
	return o.P * math.Pow(o.L, 3.0) / (3.0 * o.E * o.I)
}

// Moment computes the bending moment at x
func (o CantileverEndLoad) Moment(x float64) float64 {
	return -o.P * (o.L - x)
}

// MaxStress computes the maximum absolute bending stress, which occurs at
// the fixed end
func (o CantileverEndLoad) MaxStress() float64 {
	return o.P * o.L * (o.H / 2.0) / o.I
}
