// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// SolverImplicit solves the FEM problem using an implicit procedure; i.e.
// incremental loading with Newton-Raphson iterations on each load step
type SolverImplicit struct {

	// input
	doms []*Domain // domains
	sum  *Summary  // summary; output happens only if not nil

	// status of the last load step
	Status Status  // outcome of the iterations
	It     int     // number of iterations
	LargFb float64 // largest absolute component of fb
	Lδu    float64 // Euclidean norm of the last increment of primary variables
}

// set factory of solvers
func init() {
	allocators["imp"] = func(doms []*Domain, sum *Summary) Solver {
		solver := new(SolverImplicit)
		solver.doms = doms
		solver.sum = sum
		return solver
	}
}

// Run solves the problem from the current time up to tf
func (o *SolverImplicit) Run(tf float64, dtFunc, dtoFunc fun.Func, verbose bool, dbgKb DebugKb_t) (err error) {

	// auxiliary
	md := 1.0    // time step multiplier if divergence control is on
	ndiverg := 0 // number of consecutive steps diverging

	// control
	t := o.doms[0].Sol.T
	dat := o.doms[0].Sim.Solver
	tout := t + dtoFunc.F(t, nil)

	// first output
	if o.sum != nil {
		err = o.sum.SaveDomains(t, o.doms)
		if err != nil {
			return chk.Err("cannot save results:\n%v", err)
		}
	}

	// time loop
	var Δt float64
	var lasttimestep bool
	for t < tf {

		// check for continued divergence
		if ndiverg >= dat.NdvgMax {
			return &DivergenceError{T: t, It: o.It, LargFb: o.LargFb, Lδu: o.Lδu}
		}

		// time increment
		Δt = dtFunc.F(t, nil) * md
		if t+Δt >= tf {
			Δt = tf - t
			lasttimestep = true
		}
		if Δt < dat.DtMin {
			if md < 1 {
				return chk.Err("time increment is too small: %g < %g", Δt, dat.DtMin)
			}
			return // remaining time is negligible
		}

		// time update
		t += Δt
		for _, d := range o.doms {
			d.Sol.T = t
			d.Sol.Dt = Δt
		}

		// message
		if verbose && !dat.ShowR {
			io.PfWhite("%30.15f\r", t)
		}

		// for all domains
		docontinue := false
		for _, d := range o.doms {

			// backup solution if divergence control is on
			if dat.DvgCtrl {
				d.backup()
			}

			// run iterations
			diverging, err := o.run_iterations(t, d, dbgKb)
			if err != nil {
				return err
			}

			// restore solution and reduce time step if divergence control is on
			if dat.DvgCtrl {
				if diverging {
					if verbose {
						io.Pfred(". . . iterations diverging (%2d) . . .\n", ndiverg+1)
					}
					d.restore()
					t -= Δt
					d.Sol.T = t
					md *= 0.5
					ndiverg += 1
					docontinue = true
					break
				}
				ndiverg = 0
				md = utl.Min(md*1.1, 1.0)
			}
		}
		if docontinue {
			continue
		}

		// perform output
		if t >= tout || lasttimestep {
			if o.sum != nil {
				err = o.sum.SaveDomains(t, o.doms)
				if err != nil {
					return chk.Err("cannot save results:\n%v", err)
				}
			}
			tout += dtoFunc.F(t, nil)
		}
	}
	return
}

// run_iterations solves the nonlinear problem at fixed t by means of Newton-Raphson
// iterations. diverging is only set if divergence control is on.
func (o *SolverImplicit) run_iterations(t float64, d *Domain, dbgKb DebugKb_t) (diverging bool, err error) {

	// zero accumulated increments
	la.VecFill(d.Sol.ΔY, 0)

	// auxiliary variables
	dat := d.Sim.Solver
	var it int
	var largFb, largFb0, Lδu float64
	var prevFb, prevLδu float64
	var resConv bool
	o.Status = StatusInit

	// record status of this step
	defer func() {
		o.It = it
		o.LargFb = largFb
		o.Lδu = Lδu
	}()

	// message
	if dat.ShowR {
		io.Pf("\n%13s%4s%23s%23s\n", "t", "it", "largFb", "Lδu")
		defer func() {
			io.Pf("%13.6e%4d%23.15e%23.15e\n", t, it, largFb, Lδu)
		}()
	}

	// iterations
	for it = 0; it < dat.NmaxIt; it++ {

		// assemble residual vector (fb) with negative of residuals
		err = d.AssembleFb()
		if err != nil {
			o.Status = StatusFailed
			return
		}

		// find largest absolute component of fb
		largFb = la.VecLargest(d.Fb, 1)

		// save residual
		if o.sum != nil {
			o.sum.Resids.Append(it == 0, largFb)
		}

		// check convergence on residual
		if it == 0 {
			// store largest absolute component of fb
			largFb0 = largFb
		} else {
			resConv = largFb < dat.FbTol*largFb0 || largFb < dat.FbMin
			if resConv && (dat.Conv == "either" || dat.Conv == "res") {
				o.Status = StatusConverged
				break
			}
		}

		// check divergence on fb
		if it > 1 && dat.DvgCtrl {
			if largFb > prevFb {
				diverging = true
				o.Status = StatusDiverged
				break
			}
		}
		prevFb = largFb
		o.Status = StatusIterating

		// assemble Jacobian matrix
		do_asm_fact := it == 0 || !dat.CteTg
		if do_asm_fact {

			// assemble element matrices and prescribed-equation entries
			err = d.AssembleKb(it == 0)
			if err != nil {
				o.Status = StatusFailed
				return
			}

			// debug hook
			if dbgKb != nil {
				dbgKb(d, it)
			}

			// initialise linear solver
			if d.InitLSol {
				err = d.LinSol.InitR(d.Kb, d.Sim.LinSol.Symmetric, d.Sim.LinSol.Verbose, d.Sim.LinSol.Timing)
				if err != nil {
					o.Status = StatusFailed
					return diverging, &LinSolverError{"init", err}
				}
				d.InitLSol = false
			}

			// perform factorisation
			err = d.LinSol.Fact()
			if err != nil {
				o.Status = StatusFailed
				return diverging, &LinSolverError{"fact", err}
			}
		}

		// solve for wb := δy
		err = d.LinSol.SolveR(d.Wb, d.Fb, false)
		if err != nil {
			o.Status = StatusFailed
			return diverging, &LinSolverError{"solve", err}
		}

		// update primary variables (y)
		for i := 0; i < d.Ny; i++ {
			d.Sol.Y[i] += d.Wb[i]  // y += δy
			d.Sol.ΔY[i] += d.Wb[i] // ΔY += δy
		}

		// backup / restore
		if it == 0 {
			// create backup copy of all secondary variables
			for _, e := range d.ElemIntvars {
				e.BackupIvs(false)
			}
		} else {
			// recover last converged state from backup copy
			for _, e := range d.ElemIntvars {
				e.RestoreIvs(false)
			}
		}

		// update secondary variables
		err = d.UpdateElems()
		if err != nil {
			o.Status = StatusFailed
			return
		}

		// compute norms of δu and y over the free equations. the prescribed ones
		// are identities handled exactly and must not mask the real convergence
		var normδu, normY float64
		for i := 0; i < d.Ny; i++ {
			if d.Sol.Prescribed[i] {
				continue
			}
			normδu += d.Wb[i] * d.Wb[i]
			normY += d.Sol.Y[i] * d.Sol.Y[i]
		}
		Lδu = math.Sqrt(normδu)
		normY = math.Sqrt(normY)

		// message
		if dat.ShowR {
			io.Pf("%13.6e%4d%23.15e%23.15e\n", t, it, largFb, Lδu)
		}

		// check convergence on increment
		incConv := Lδu < dat.Rtol*normY+dat.Atol
		if incConv && (dat.Conv == "either" || dat.Conv == "inc") {
			o.Status = StatusConverged
			break
		}
		if incConv && resConv && dat.Conv == "both" {
			o.Status = StatusConverged
			break
		}

		// check divergence on Lδu
		if it > 1 && dat.DvgCtrl {
			if Lδu > prevLδu {
				diverging = true
				o.Status = StatusDiverged
				break
			}
		}
		prevLδu = Lδu
	}

	// check if iterations exhausted the budget
	if it == dat.NmaxIt {
		o.Status = StatusDiverged
		err = &DivergenceError{T: t, It: it, LargFb: largFb, Lδu: Lδu}
		return
	}
	return
}
