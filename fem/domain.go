// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sync"

	"github.com/garth-wells/CUED-4C9-demo/ele"
	"github.com/garth-wells/CUED-4C9-demo/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Domain holds all Nodes and Elements active during a stage in addition to the Solution at nodes.
type Domain struct {

	// init: auxiliary variables
	ShowMsg bool            // show messages
	Sim     *inp.Simulation // [from Main] input data
	Reg     *inp.Region     // region data
	Msh     *inp.Mesh       // mesh data
	LinSol  la.LinSol       // linear solver

	// stage: nodes and elements (active)
	Nodes []*Node       // active nodes (for each stage). Note: indices in Nodes do NOT correspond to Ids => use Vid2node to access Nodes using Ids
	Elems []ele.Element // active elements (for each stage)
	Cids  []int         // ids of active cells; same order as Elems

	// stage: auxiliary maps for dofs and equation types
	F2Y   map[string]string // converts f-keys to y-keys; e.g.: "fx" => "ux"
	YandC map[string]bool   // y keys; e.g. "ux", "uy", "uz"

	// stage: auxiliary maps for nodes and elements
	Vid2node   []*Node       // [nverts] VertexId => index in Nodes. Inactive vertices are 'nil'
	Cid2elem   []ele.Element // [ncells] CellId => index in Elems. Inactive cells are 'nil'
	Cid2active []bool        // [ncells] CellId => whether the cell is active or not

	// stage: subsets of elements
	ElemIntvars []ele.WithIntVars  // elements with internal variables
	ElemOutIps  []ele.CanOutputIps // elements that can output integration point values

	// stage: prescribed equations and point loads
	EssenBcs EssentialBcs // prescribed (essential) equations
	PtNatBcs PtNaturalBcs // point loads such as prescribed forces at nodes

	// stage: dimensions
	NnzKb int // number of nonzeros in Kb matrix
	Ny    int // total number of dofs
	Npres int // number of prescribed equations

	// stage: solution and linear solver
	Sol      *ele.Solution // solution state
	Kb       *la.Triplet   // Jacobian == dRdy
	Fb       []float64     // residual == -fb
	Wb       []float64     // workspace
	InitLSol bool          // flag telling that linear solver needs to be initialised prior to any further call

	// stage: concurrent assembly of Fb
	Nworkers int         // number of goroutines adding element contributions to Fb
	fbAux    [][]float64 // [Nworkers-1][ny] private buffers of the extra workers

	// for divergence control
	bkpSol *ele.Solution // backup solution
}

// Clean cleans memory allocated by domain
func (o *Domain) Clean() {
	o.LinSol.Clean()
}

// NewDomains returns domains
func NewDomains(sim *inp.Simulation) (doms []*Domain) {
	doms = make([]*Domain, len(sim.Regions))
	for i, reg := range sim.Regions {
		doms[i] = new(Domain)
		doms[i].Sim = sim
		doms[i].Reg = reg
		doms[i].Msh = reg.Msh
		doms[i].LinSol = la.GetSolver(sim.LinSol.Name)
	}
	return
}

// SetStage set nodes, equation numbers and auxiliary data for given stage
func (o *Domain) SetStage(stgidx int) (err error) {

	// pointer to stage structure
	stg := o.Sim.Stages[stgidx]

	// activate and deactivate elements
	if stgidx > 0 {
		err = o.fix_inact_flags(stg.Activate, false)
		if err != nil {
			return
		}
		err = o.fix_inact_flags(stg.Deactivate, true)
		if err != nil {
			return
		}
	}

	// nodes (active) and elements (active)
	o.Nodes = make([]*Node, 0)
	o.Elems = make([]ele.Element, 0)
	o.Cids = make([]int, 0)

	// auxiliary maps for dofs and equation types
	o.F2Y = make(map[string]string)
	o.YandC = make(map[string]bool)

	// auxiliary maps for nodes and elements
	o.Vid2node = make([]*Node, len(o.Msh.Verts))
	o.Cid2elem = make([]ele.Element, len(o.Msh.Cells))
	o.Cid2active = make([]bool, len(o.Msh.Cells))

	// subsets of elements
	o.ElemIntvars = make([]ele.WithIntVars, 0)
	o.ElemOutIps = make([]ele.CanOutputIps, 0)

	// allocate nodes and cells (active only) -------------------------------------------------------

	// for each cell
	var eq int // current equation number => total number of equations @ end of loop
	o.NnzKb = 0
	for _, cell := range o.Msh.Cells {

		// set cell's face boundary conditions
		err = cell.SetFaceConds(stg, o.Sim.Functions)
		if err != nil {
			return
		}

		// get element info
		info, inactive, err := ele.GetInfo(cell, o.Reg, o.Sim)
		if err != nil {
			return chk.Err("get element information failed:\n%v", err)
		}

		// skip inactive element
		if inactive {
			continue
		}
		o.Cid2active[cell.Id] = true
		chk.IntAssert(len(info.Dofs), len(cell.Verts))

		// store y and f information
		for ykey, fkey := range info.Y2F {
			o.F2Y[fkey] = ykey
			o.YandC[ykey] = true
		}

		// loop over nodes of this element
		var eNdof int // number of DOFs of this element
		for j, v := range cell.Verts {

			// new or existent node
			var nod *Node
			if o.Vid2node[v] == nil {
				nod = NewNode(o.Msh.Verts[v])
				o.Vid2node[v] = nod
				o.Nodes = append(o.Nodes, nod)
			} else {
				nod = o.Vid2node[v]
			}

			// set DOFs and equation numbers
			for _, ukey := range info.Dofs[j] {
				eq = nod.AddDofAndEq(ukey, eq)
				eNdof += 1
			}
		}

		// number of non-zeros
		o.NnzKb += eNdof * eNdof

		// new element
		element, err := ele.New(cell, o.Reg, o.Sim)
		if err != nil {
			return chk.Err("new element failed:\n%v", err)
		}
		o.Cid2elem[cell.Id] = element
		o.Elems = append(o.Elems, element)
		o.Cids = append(o.Cids, element.Id())

		// give equation numbers to new element
		eqs := make([][]int, len(cell.Verts))
		for j, v := range cell.Verts {
			for _, dof := range o.Vid2node[v].Dofs {
				eqs[j] = append(eqs[j], dof.Eq)
			}
		}
		err = element.SetEqs(eqs)
		if err != nil {
			return chk.Err("cannot set element equations:\n%v", err)
		}

		// subsets of elements
		o.add_element_to_subsets(element)
	}

	// element conditions, essential and natural boundary conditions --------------------------------

	// (re)set prescribed equations and point loads structures
	o.EssenBcs.Reset()
	o.PtNatBcs.Reset()

	// element conditions
	var fcn fun.Func
	for _, ec := range stg.EleConds {
		cells, ok := o.Msh.CellTag2cells[ec.Tag]
		if !ok {
			return chk.Err("cannot find cells with tag = %d to assign conditions", ec.Tag)
		}
		for _, cell := range cells {
			e := o.Cid2elem[cell.Id]
			if e != nil { // set conditions only for active elements
				for j, key := range ec.Keys {
					fcn, err = o.Sim.Functions.Get(ec.Funcs[j])
					if err != nil {
						return
					}
					e.SetEleConds(key, fcn, ec.Extra)
				}
			}
		}
	}

	// face boundary conditions. the essential ones become prescribed equations
	for _, fc := range stg.FaceBcs {
		pairs, ok := o.Msh.FaceTag2cells[fc.Tag]
		if !ok {
			return chk.Err("cannot find faces with tag = %d to assign face boundary conditions", fc.Tag)
		}
		for _, pair := range pairs {
			cell := pair.C
			faceId := pair.Fid
			for _, bc := range cell.FaceBcs {
				if faceId == bc.FaceId {
					if o.YandC[bc.Cond] {
						var nodes []*Node
						for _, vid := range bc.GlobalVerts {
							nodes = append(nodes, o.Vid2node[vid])
						}
						err = o.EssenBcs.Set(bc.Cond, nodes, bc.Func, bc.Extra)
						if err != nil {
							return chk.Err("setting of essential (face) boundary conditions failed:\n%v", err)
						}
					}
				}
			}
		}
	}

	// vertex boundary conditions
	for _, nc := range stg.NodeBcs {
		verts, ok := o.Msh.VertTag2verts[nc.Tag]
		if !ok {
			return chk.Err("cannot find vertices with tag = %d to assign node boundary conditions", nc.Tag)
		}
		for _, v := range verts {
			if o.Vid2node[v.Id] != nil { // set BCs only for active nodes
				n := o.Vid2node[v.Id]
				for j, key := range nc.Keys {
					fcn, err = o.Sim.Functions.Get(nc.Funcs[j])
					if err != nil {
						return
					}
					if o.YandC[key] {
						err = o.EssenBcs.Set(key, []*Node{n}, fcn, nc.Extra)
						if err != nil {
							return chk.Err("setting of essential (vertex) boundary conditions failed:\n%v", err)
						}
					} else {
						o.PtNatBcs.Set(o.F2Y[key], n, fcn, nc.Extra)
					}
				}
			}
		}
	}

	// resize slices --------------------------------------------------------------------------------

	// size of arrays
	o.Ny = eq

	// solution structure
	o.Sol = new(ele.Solution)
	o.Sol.Y = make([]float64, o.Ny)
	o.Sol.ΔY = make([]float64, o.Ny)
	o.Sol.Prescribed = make([]bool, o.Ny)
	o.Npres = o.EssenBcs.Build(o.Ny, o.Sol.Prescribed)

	// linear system. each prescribed equation adds one unit diagonal entry
	o.Kb = new(la.Triplet)
	o.Fb = make([]float64, o.Ny)
	o.Wb = make([]float64, o.Ny)
	o.Kb.Init(o.Ny, o.Ny, o.NnzKb+o.Npres)
	o.InitLSol = true // tell solver that lis has to be initialised before use

	// buffers for the concurrent assembly of Fb
	o.Nworkers = o.Sim.Solver.Nworkers
	if o.Nworkers > len(o.Elems) {
		o.Nworkers = len(o.Elems)
	}
	if o.Nworkers < 1 {
		o.Nworkers = 1
	}
	o.fbAux = make([][]float64, o.Nworkers-1)
	for i := 0; i < o.Nworkers-1; i++ {
		o.fbAux[i] = make([]float64, o.Ny)
	}

	// message
	if o.ShowMsg {
		io.Pf(">> Number of equations = %d\n", o.Ny)
		io.Pf(">> Number of prescribed equations = %d\n", o.Npres)
	}

	// success
	return
}

// SetIniVals sets/resets initial values (nodes and integration points)
func (o *Domain) SetIniVals(stgidx int, zeroSol bool) (err error) {

	// pointer to stage structure
	stg := o.Sim.Stages[stgidx]

	// clear solution vectors
	if zeroSol {
		o.Sol.Reset()
	}

	// set nodal values using functions
	if stg.IniFcn != nil {
		err = o.ini_set_file_func(stg)
		if err != nil {
			return
		}
		if o.ShowMsg {
			io.Pf(">> Initial values set by using functions\n")
		}
	}

	// initialise internal variables
	for _, e := range o.ElemIntvars {
		err = e.SetIniIvs(o.Sol, nil)
		if err != nil {
			return chk.Err("cannot set initial internal variables:\n%v", err)
		}
	}

	// list boundary conditions
	if o.Sim.Data.ListBcs {
		io.Pf("%v", o.EssenBcs.List(stg.Control.Tf))
		io.Pf("%v", o.PtNatBcs.List(stg.Control.Tf))
	}

	// make sure time is zero at the beginning of simulation
	o.Sol.T = 0
	return
}

// AssembleFb assembles the global residual vector Fb = -R. Element contributions
// are added first, possibly concurrently, followed by point loads. The prescribed
// equations are set last because they assign instead of accumulate.
func (o *Domain) AssembleFb() (err error) {
	la.VecFill(o.Fb, 0)
	if o.Nworkers <= 1 || len(o.Elems) < 2*o.Nworkers {
		for _, e := range o.Elems {
			err = e.AddToRhs(o.Fb, o.Sol)
			if err != nil {
				return
			}
		}
	} else {
		err = o.add_to_rhs_concurrent()
		if err != nil {
			return
		}
	}
	o.PtNatBcs.AddToRhs(o.Fb, o.Sol.T)
	o.EssenBcs.AddToRhs(o.Fb, o.Sol)
	return
}

// add_to_rhs_concurrent adds element contributions to Fb using Nworkers goroutines.
// Elements are split into contiguous chunks; the first chunk accumulates directly
// into Fb whereas each extra worker accumulates into a private buffer. Buffers are
// merged sequentially in worker order, thus results are reproducible for a given
// number of workers. The first error in worker order is reported.
func (o *Domain) add_to_rhs_concurrent() (err error) {
	nw := o.Nworkers
	csize := (len(o.Elems) + nw - 1) / nw
	errs := make([]error, nw)
	var wg sync.WaitGroup
	for w := 0; w < nw; w++ {
		lo := w * csize
		hi := lo + csize
		if hi > len(o.Elems) {
			hi = len(o.Elems)
		}
		fb := o.Fb
		if w > 0 {
			fb = o.fbAux[w-1]
			la.VecFill(fb, 0)
		}
		wg.Add(1)
		go func(w int, elems []ele.Element, fb []float64) {
			defer wg.Done()
			for _, e := range elems {
				errs[w] = e.AddToRhs(fb, o.Sol)
				if errs[w] != nil {
					return
				}
			}
		}(w, o.Elems[lo:hi], fb)
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	for w := 1; w < nw; w++ {
		for i, v := range o.fbAux[w-1] {
			o.Fb[i] += v
		}
	}
	return
}

// AssembleKb assembles the global Jacobian matrix Kb, including the unit
// diagonal entries of the prescribed equations
func (o *Domain) AssembleKb(firstIt bool) (err error) {
	o.Kb.Start()
	for _, e := range o.Elems {
		err = e.AddToKb(o.Kb, o.Sol, firstIt)
		if err != nil {
			return
		}
	}
	o.EssenBcs.AddToKb(o.Kb)
	return
}

// UpdateElems update elements after Solution has been updated
func (o *Domain) UpdateElems() (err error) {
	for _, e := range o.ElemIntvars {
		err = e.Update(o.Sol)
		if err != nil {
			return
		}
	}
	return
}

// backup saves a copy of solution
func (o *Domain) backup() {
	if o.bkpSol == nil {
		o.bkpSol = new(ele.Solution)
		o.bkpSol.Y = make([]float64, o.Ny)
		o.bkpSol.ΔY = make([]float64, o.Ny)
	}
	o.bkpSol.T = o.Sol.T
	copy(o.bkpSol.Y, o.Sol.Y)
	copy(o.bkpSol.ΔY, o.Sol.ΔY)
	for _, e := range o.ElemIntvars {
		e.BackupIvs(true)
	}
}

// restore restores solution
func (o *Domain) restore() {
	o.Sol.T = o.bkpSol.T
	copy(o.Sol.Y, o.bkpSol.Y)
	copy(o.Sol.ΔY, o.bkpSol.ΔY)
	for _, e := range o.ElemIntvars {
		e.RestoreIvs(true)
	}
}

// auxiliary functions //////////////////////////////////////////////////////////////////////////////

// add_element_to_subsets adds an element to as many subsets as it fits
func (o *Domain) add_element_to_subsets(element ele.Element) {
	if e, ok := element.(ele.WithIntVars); ok {
		o.ElemIntvars = append(o.ElemIntvars, e)
	}
	if e, ok := element.(ele.CanOutputIps); ok {
		o.ElemOutIps = append(o.ElemOutIps, e)
	}
}

// fix_inact_flags sets inactive flags for new active/inactive elements
func (o *Domain) fix_inact_flags(eids_or_tags []int, deactivate bool) (err error) {
	for _, tag := range eids_or_tags {
		if tag >= 0 { // this means that tag == cell.Id
			cell := o.Msh.Cells[tag]
			tag = cell.Tag
		}
		edat := o.Reg.Etag2data(tag)
		if edat == nil {
			return chk.Err("cannot get element's data with etag=%d", tag)
		}
		edat.Inact = deactivate
	}
	return
}

// ini_set_file_func sets initial values of solution variables using
// functions of x from the functions database
func (o *Domain) ini_set_file_func(stg *inp.Stage) (err error) {
	if len(stg.IniFcn.Fcns) != len(stg.IniFcn.Dofs) {
		return chk.Err("number of functions (fcns) must be equal to number of dofs. %d != %d", len(stg.IniFcn.Fcns), len(stg.IniFcn.Dofs))
	}
	var fcn fun.Func
	for i, dof := range stg.IniFcn.Dofs {
		fcn, err = o.Sim.Functions.Get(stg.IniFcn.Fcns[i])
		if err != nil {
			return
		}
		for _, nod := range o.Nodes {
			eq := nod.GetEq(dof)
			if eq < 0 {
				return chk.Err("dof %q is not available at node %d for setting initial values", dof, nod.Vert.Id)
			}
			o.Sol.Y[eq] = fcn.F(0, nod.Vert.C)
		}
	}
	return
}
