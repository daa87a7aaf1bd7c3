// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the FEM solver
package fem

import (
	"time"

	"github.com/garth-wells/CUED-4C9-demo/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// function to debug global Jacobian matrix
type DebugKb_t func(d *Domain, it int)

// Main holds all data for a simulation using the finite element method
type Main struct {
	Sim     *inp.Simulation // simulation data
	Summary *Summary        // summary structure
	Domains []*Domain       // all domains
	Solver  Solver          // finite element method solver; e.g. implicit
	DebugKb DebugKb_t       // debug Kb callback function
	ShowMsg bool            // show messages
}

// NewMain returns a new Main structure
//
//	Input:
//	 simfilepath -- simulation (.sim) filename including full path
//	 alias       -- word to be appended to simulation key; e.g. when running multiple FE solutions
//	 erasePrev   -- erase previous results files
//	 saveSummary -- save summary
//	 readSummary -- read summary of previous simulation
//	 verbose     -- show messages
func NewMain(simfilepath, alias string, erasePrev, saveSummary, readSummary, verbose bool, goroutineId int) (o *Main) {

	// new Main object
	o = new(Main)
	o.ShowMsg = verbose

	// read input data
	o.Sim = inp.ReadSim(simfilepath, alias, erasePrev, true, goroutineId)
	if o.Sim == nil {
		chk.Panic("cannot read simulation input data")
	}

	// read summary of previous simulation
	if saveSummary || readSummary {
		o.Summary = new(Summary)
	}
	if readSummary {
		err := o.Summary.Read(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType)
		if err != nil {
			chk.Panic("cannot read summary:\n%v", err)
		}
	}

	// message
	if o.ShowMsg {
		io.Pf("> Initialisation step completed\n")
		io.Pf("> Simulation (.sim) file read\n")
	}

	// allocate domains
	o.Domains = NewDomains(o.Sim)
	for _, d := range o.Domains {
		d.ShowMsg = o.ShowMsg
	}

	// allocate solver
	if alloc, ok := allocators[o.Sim.Solver.Type]; ok {
		o.Solver = alloc(o.Domains, o.Summary)
	} else {
		chk.Panic("cannot find solver type named %q", o.Sim.Solver.Type)
	}
	return
}

// Run runs FE simulation
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// plot functions
	if o.Sim.PlotF != nil {
		o.Sim.Functions.PlotAll(o.Sim.PlotF, o.Sim.DirOut, o.Sim.Key)
		if o.ShowMsg {
			io.Pf("> Functions plotted\n")
		}
		return
	}

	// message
	if o.ShowMsg {
		io.Pf("> Solving stages\n")
	}

	// loop over stages
	for stgidx, stg := range o.Sim.Stages {

		// skip stage?
		if stg.Skip {
			continue
		}

		// set stage
		err = o.SetStage(stgidx)
		if err != nil {
			return
		}

		// initialise solution vectors
		err = o.ZeroStage(stgidx, true)
		if err != nil {
			return
		}

		// message
		if o.ShowMsg {
			io.Pf("> Running FE solver\n")
		}

		// load-stepping loop
		err = o.Solver.Run(stg.Control.Tf, stg.Control.DtFunc, stg.Control.DtoFunc, o.ShowMsg, o.DebugKb)
		if err != nil {
			return
		}
	}
	return
}

// SetStage sets stage for all domains
//
//	Input:
//	 stgidx -- stage index (in o.Sim.Stages)
func (o *Main) SetStage(stgidx int) (err error) {
	if o.ShowMsg {
		io.Pf("> Setting stage %d\n", stgidx)
	}
	for _, d := range o.Domains {
		err = d.SetStage(stgidx)
		if err != nil {
			return
		}
	}
	return
}

// ZeroStage zeroes solution variables; i.e. it initialises solution vectors
// (Y, internal values such as States.Sig, etc.) in all domains for all nodes
// and all elements
//
//	Input:
//	 stgidx  -- stage index (in o.Sim.Stages)
//	 zeroSol -- zero vectors in domains.Sol
func (o *Main) ZeroStage(stgidx int, zeroSol bool) (err error) {
	if o.ShowMsg {
		io.Pf("> Zeroing stage %d\n", stgidx)
	}
	for _, d := range o.Domains {
		err = d.SetIniVals(stgidx, zeroSol)
		if err != nil {
			return
		}
	}
	return
}

// SolveOneStage solves one stage that was already set
//
//	Input:
//	 stgidx    -- stage index (in o.Sim.Stages)
//	 zerostage -- zero vectors in domains.Sol => call ZeroStage
func (o *Main) SolveOneStage(stgidx int, zerostage bool) (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// zero stage
	if zerostage {
		err = o.ZeroStage(stgidx, true)
		if err != nil {
			return
		}
	}

	// run
	stg := o.Sim.Stages[stgidx]
	err = o.Solver.Run(stg.Control.Tf, stg.Control.DtFunc, stg.Control.DtoFunc, o.ShowMsg, o.DebugKb)
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit cleans domains, prints a final message with the cpu time and saves
// the summary
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {

	// clean resources
	o.Sim.Clean()
	for _, d := range o.Domains {
		d.Clean()
	}

	// show final message
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}

	// save summary
	if o.Summary != nil {
		err = o.Summary.Save(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType)
		if err != nil {
			return
		}
	}

	// keep previous error
	if prevErr != nil {
		err = prevErr
	}
	return
}
