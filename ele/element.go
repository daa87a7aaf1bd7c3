// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements finite elements
package ele

import (
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Element defines what all elements must implement
type Element interface {

	// information and initialisation
	Id() int                        // returns the cell Id
	SetEqs(eqs [][]int) (err error) // set equations

	// conditions (natural BCs and element's)
	SetEleConds(key string, f fun.Func, extra string) (err error) // set element conditions

	// called for each iteration
	AddToRhs(fb []float64, sol *Solution) (err error)                // adds -R to global residual vector fb
	AddToKb(Kb *la.Triplet, sol *Solution, firstIt bool) (err error) // adds element K to global Jacobian matrix Kb

	// reading and writing of element data
	Encode(enc utl.Encoder) (err error) // encodes internal variables
	Decode(dec utl.Decoder) (err error) // decodes internal variables
}

// WithIntVars defines elements with internal variables at integration points
type WithIntVars interface {
	Update(sol *Solution) (err error)                              // perform update of internal variables
	SetIniIvs(sol *Solution, ivs map[string][]float64) (err error) // sets initial ivs for given values in sol and ivs map
	BackupIvs(aux bool) (err error)                                // create copy of internal variables
	RestoreIvs(aux bool) (err error)                               // restore internal variables from copies
	Ureset(sol *Solution) (err error)                              // fixes internal variables after u (displacements) have been zeroed
}

// CanOutputIps defines elements that can output integration points' values
type CanOutputIps interface {
	Id() int                            // returns the cell Id
	OutIpCoords() [][]float64           // coordinates of integration points
	OutIpKeys() []string                // integration points' keys; e.g. "sx", "sy"
	OutIpVals(M *IpsMap, sol *Solution) // integration points' values corresponding to keys
}

// AssemblyError wraps a failure during an element evaluation with the element
// and integration point where it happened. The cause is kept unchanged so
// that callers can inspect it with errors.As; e.g. to detect a degenerate
// deformation gradient.
type AssemblyError struct {
	Eid int   // id of the failing element
	Ip  int   // index of the failing integration point; -1 if outside ip loops
	Err error // cause
}

// Error returns a message locating the failure
func (o *AssemblyError) Error() string {
	if o.Ip < 0 {
		return io.Sf("element %d: %v", o.Eid, o.Err)
	}
	return io.Sf("element %d: integration point %d: %v", o.Eid, o.Ip, o.Err)
}

// Unwrap returns the cause
func (o *AssemblyError) Unwrap() error { return o.Err }
