// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import "github.com/cpmech/gosl/la"

// State holds the stress state at an integration point. Stresses use Mandel
// components: {σxx, σyy, σzz, σxy·√2} in 2D (plane strain carries σzz) plus
// {σyz·√2, σzx·√2} in 3D.
type State struct {
	Sig []float64   // current Cauchy stress [nsig]
	F   [][]float64 // current deformation gradient [ndim][ndim]
}

// NewState allocates a new state and initialises F with the identity,
// corresponding to the undeformed (stress free) configuration
func NewState(nsig, ndim int) *State {
	state := &State{
		Sig: make([]float64, nsig),
		F:   la.MatAlloc(ndim, ndim),
	}
	for i := 0; i < ndim; i++ {
		state.F[i][i] = 1
	}
	return state
}

// Set copies the content of another state into this one
func (o *State) Set(other *State) {
	copy(o.Sig, other.Sig)
	la.MatCopy(o.F, 1, other.F)
}

// GetCopy returns a new copy of this state
func (o *State) GetCopy() *State {
	other := NewState(len(o.Sig), len(o.F))
	other.Set(o)
	return other
}
