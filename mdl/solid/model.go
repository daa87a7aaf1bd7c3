// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements constitutive models for solids based on continuum
// mechanics, specialised to large deformation (total Lagrangian) analyses
/*
 *            |    Hyperelastic
 *  ============================================
 *            |
 *            | ψ = ψ(F)
 *    Large   | P = ∂ψ/∂F
 *            | A = ∂P/∂F = ∂²ψ/∂F∂F
 *            |
 */
package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Model defines the interface for solid models
type Model interface {
	Init(ndim int, pstress bool, prms fun.Prms) error // initialises model
	GetPrms() fun.Prms                                // gets (an example) of parameters
	GetRho() float64                                  // returns density
	InitIntVars(ndim int) (*State, error)             // initialises AND allocates state variables
	Clean()                                           // clean resources
}

// Large defines models for large deformation analyses. All methods receive the
// full deformation gradient and own their temporary buffers; implementations
// must be safe for concurrent calls on the same instance.
type Large interface {
	Energy(F [][]float64) (float64, error)                      // computes strain energy density ψ(F)
	CalcP(P, F [][]float64) error                               // computes first Piola-Kirchhoff stress P = ∂ψ/∂F
	CalcA(A [][][][]float64, F [][]float64, firstIt bool) error // computes tangent modulus A = ∂P/∂F
	Update(s *State, F [][]float64) error                       // records F and Cauchy stress into s
}

// DegeneracyError indicates a deformation gradient with non-positive
// determinant, i.e. a configuration with no physical meaning
type DegeneracyError struct {
	J float64 // determinant of F
}

// Error returns a message with the offending determinant
func (o *DegeneracyError) Error() string {
	return io.Sf("deformation gradient is degenerate: det(F) = %g is not positive", o.J)
}

// AllocA allocates a 4th order tangent modulus tensor A[ndim][ndim][ndim][ndim]
func AllocA(ndim int) (A [][][][]float64) {
	A = make([][][][]float64, ndim)
	for i := 0; i < ndim; i++ {
		A[i] = make([][][]float64, ndim)
		for j := 0; j < ndim; j++ {
			A[i][j] = la.MatAlloc(ndim, ndim)
		}
	}
	return
}

// New returns new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'solid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Model{}
