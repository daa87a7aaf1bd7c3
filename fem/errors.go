// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/gosl/io"

// Status describes the state of the nonlinear solver during one load step
type Status int

const (
	StatusInit      Status = iota // before any iteration
	StatusIterating               // iterations running
	StatusConverged               // converged on residual and/or increment
	StatusDiverged                // iteration budget exhausted or residual growing
	StatusFailed                  // hard failure; e.g. degeneracy or linear solver breakdown
)

// String returns the name of a status
func (s Status) String() string {
	switch s {
	case StatusInit:
		return "init"
	case StatusIterating:
		return "iterating"
	case StatusConverged:
		return "converged"
	case StatusDiverged:
		return "diverged"
	case StatusFailed:
		return "failed"
	}
	return io.Sf("unknown(%d)", int(s))
}

// LinSolverError indicates a failure inside the sparse linear solver
type LinSolverError struct {
	Phase string // "init", "fact" or "solve"
	Err   error  // cause
}

// Error returns the error message
func (e *LinSolverError) Error() string {
	return io.Sf("linear solver failed during %q: %v", e.Phase, e.Err)
}

// Unwrap returns the cause
func (e *LinSolverError) Unwrap() error { return e.Err }

// DivergenceError indicates that the Newton-Raphson iterations of one load
// step did not converge
type DivergenceError struct {
	T      float64 // time (load factor) of the failed step
	It     int     // number of iterations performed
	LargFb float64 // largest absolute component of fb at the last iteration
	Lδu    float64 // norm of the last solution increment
}

// Error returns the error message
func (e *DivergenceError) Error() string {
	return io.Sf("iterations did not converge @ t=%g: it=%d, largFb=%g, Lδu=%g", e.T, e.It, e.LargFb, e.Lδu)
}
