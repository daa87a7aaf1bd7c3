// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Solution holds the solution data @ nodes.
//
//	y = { ux, uy, uz } for every node (ny x 1)
type Solution struct {

	// current state
	T float64   // current time (load factor)
	Y []float64 // DOFs (solution variables); e.g. y = {u}

	// auxiliary
	Dt float64   // current time increment
	ΔY []float64 // total increment within current time step (for nonlinear solver)

	// essential boundary conditions
	Prescribed []bool // prescribed[eq] == true if equation eq has a prescribed value.
	//                   Elements must skip those rows when adding to fb and Kb;
	//                   the corresponding rows are owned by the constraints.
}

// Reset clears values
func (o *Solution) Reset() {
	o.T = 0
	for i := 0; i < len(o.Y); i++ {
		o.Y[i] = 0
		o.ΔY[i] = 0
	}
}
