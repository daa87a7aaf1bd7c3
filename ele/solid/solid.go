// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements elements for the equilibrium of solids at large
// deformation. The formulation is total Lagrangian: all integrals are
// carried out over the reference configuration and the primary variables
// are the displacements u.
package solid

import (
	"github.com/garth-wells/CUED-4C9-demo/ele"
	"github.com/garth-wells/CUED-4C9-demo/inp"
	msolid "github.com/garth-wells/CUED-4C9-demo/mdl/solid"
	"github.com/garth-wells/CUED-4C9-demo/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Solid represents a solid element with displacements u as primary variables
type Solid struct {

	// basic data
	Cell *inp.Cell   // the cell structure
	X    [][]float64 // matrix of nodal (reference) coordinates [ndim][nnode]
	Shp  *shp.Shape  // shape structure (private copy)
	Nu   int         // total number of unknowns
	Ndim int         // space dimension

	// material model
	Mdl msolid.Model // material model
	Lgm msolid.Large // large deformation specialisation
	Rho float64      // density of solid

	// integration points
	IpsElem []shp.Ipoint // integration points of element
	IpsFace []shp.Ipoint // integration points corresponding to faces

	// states @ integration points
	States    []*msolid.State // [nip] states
	StatesBkp []*msolid.State // [nip] backup states
	StatesAux []*msolid.State // [nip] auxiliary backup states

	// problem variables
	Umap []int // assembly map (location array/element equations)

	// gravity
	Gfcn fun.Func // gravity function

	// natural boundary conditions
	NatBcs []*ele.NaturalBc

	// scratchpad. computed @ each ip
	F    [][]float64     // [ndim][ndim] deformation gradient
	P    [][]float64     // [ndim][ndim] first Piola-Kirchhoff stress
	A    [][][][]float64 // [ndim][ndim][ndim][ndim] tangent modulus
	K    [][]float64     // [nu][nu] consistent tangent (stiffness) matrix
	grav []float64       // [ndim] gravity vector
}

// initialisation ///////////////////////////////////////////////////////////////////////////////////

// register element
func init() {

	// information allocator
	ele.SetInfoFunc("u", func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData) *ele.Info {

		// new info
		var info ele.Info

		// solution variables
		ykeys := []string{"ux", "uy"}
		if sim.Ndim == 3 {
			ykeys = []string{"ux", "uy", "uz"}
		}
		info.Dofs = make([][]string, len(cell.Verts))
		for m := 0; m < len(cell.Verts); m++ {
			info.Dofs[m] = ykeys
		}

		// maps
		info.Y2F = map[string]string{"ux": "fx", "uy": "fy", "uz": "fz"}
		return &info
	})

	// element allocator
	ele.SetAllocator("u", func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData, x [][]float64) ele.Element {

		// basic data
		var o Solid
		o.Cell = cell
		o.X = x
		o.Ndim = len(x)

		// each element gets its own shape copy since the scratchpad is
		// written during concurrent residual assembly
		s := shp.Get(cell.Type, 0)
		if s == nil {
			chk.Panic("cannot allocate shape structure for cell type %q", cell.Type)
		}
		o.Shp = s.GetCopy()
		o.Nu = o.Ndim * o.Shp.Nverts

		// integration points
		nip := edat.Nip
		if nip == 0 {
			deg := edat.Deg
			if deg == 0 {
				deg = 3
			}
			var err error
			nip, err = shp.NipsForDegree(cell.Type, deg)
			if err != nil {
				chk.Panic("cannot choose integration rule of solid element:\n%v", err)
			}
		}
		var err error
		o.IpsElem, o.IpsFace, err = o.Shp.GetIps(nip, edat.Nipf)
		if err != nil {
			chk.Panic("cannot allocate integration points of solid element with nip=%d and nipf=%d:\n%v", nip, edat.Nipf, err)
		}

		// model
		mat := sim.MatModels.Get(edat.Mat)
		if mat == nil {
			chk.Panic("cannot get material named %q for solid element {tag=%d, id=%d}", edat.Mat, cell.Tag, cell.Id)
		}
		o.Mdl = mat.Solid
		lgm, ok := o.Mdl.(msolid.Large)
		if !ok {
			chk.Panic("model %q of material %q is not a large deformation model", mat.Model, edat.Mat)
		}
		o.Lgm = lgm
		o.Rho = o.Mdl.GetRho()

		// scratchpad. computed @ each ip
		o.F = la.MatAlloc(o.Ndim, o.Ndim)
		o.P = la.MatAlloc(o.Ndim, o.Ndim)
		o.A = msolid.AllocA(o.Ndim)
		o.K = la.MatAlloc(o.Nu, o.Nu)
		o.grav = make([]float64, o.Ndim)

		// surface loads (natural boundary conditions)
		for _, fc := range cell.FaceBcs {
			o.NatBcs = append(o.NatBcs, &ele.NaturalBc{Key: fc.Cond, IdxFace: fc.FaceId, Fcn: fc.Func, Extra: fc.Extra})
		}

		// return new element
		return &o
	})
}

// implementation ///////////////////////////////////////////////////////////////////////////////////

// Id returns the cell Id
func (o *Solid) Id() int { return o.Cell.Id }

// SetEqs sets equations
func (o *Solid) SetEqs(eqs [][]int) (err error) {
	o.Umap = make([]int, o.Nu)
	for m := 0; m < o.Shp.Nverts; m++ {
		for i := 0; i < o.Ndim; i++ {
			r := i + m*o.Ndim
			o.Umap[r] = eqs[m][i]
		}
	}
	return
}

// SetEleConds sets element conditions
func (o *Solid) SetEleConds(key string, f fun.Func, extra string) (err error) {
	if key == "g" { // gravity
		o.Gfcn = f
	}
	return
}

// AddToRhs adds -R to global residual vector fb
func (o *Solid) AddToRhs(fb []float64, sol *ele.Solution) (err error) {

	// for each integration point
	nverts := o.Shp.Nverts
	for idx, ip := range o.IpsElem {

		// interpolation functions, gradients and deformation gradient @ ip
		err = o.ipvars(idx, sol)
		if err != nil {
			return &ele.AssemblyError{Eid: o.Id(), Ip: idx, Err: err}
		}

		// first Piola-Kirchhoff stress
		err = o.Lgm.CalcP(o.P, o.F)
		if err != nil {
			return &ele.AssemblyError{Eid: o.Id(), Ip: idx, Err: err}
		}

		// auxiliary
		coef := o.Shp.J * ip[3]
		S := o.Shp.S
		G := o.Shp.G

		// gravity
		if o.Gfcn != nil {
			o.grav[o.Ndim-1] = -o.Gfcn.F(sol.T, nil)
		}

		// add internal forces and body forces to fb. rows with prescribed
		// values belong to the essential constraints and are skipped
		for m := 0; m < nverts; m++ {
			for i := 0; i < o.Ndim; i++ {
				r := o.Umap[i+m*o.Ndim]
				if sol.Prescribed[r] {
					continue
				}
				for J := 0; J < o.Ndim; J++ {
					fb[r] -= coef * o.P[i][J] * G[m][J] // -fi
				}
				if o.Gfcn != nil {
					fb[r] += coef * o.Rho * S[m] * o.grav[i] // +fg
				}
			}
		}
	}

	// external forces
	return o.addSurfloadsToRhs(fb, sol)
}

// AddToKb adds element K to global Jacobian matrix Kb
func (o *Solid) AddToKb(Kb *la.Triplet, sol *ele.Solution, firstIt bool) (err error) {

	// zero K matrix
	la.MatFill(o.K, 0)

	// for each integration point
	nverts := o.Shp.Nverts
	for idx, ip := range o.IpsElem {

		// interpolation functions, gradients and deformation gradient @ ip
		err = o.ipvars(idx, sol)
		if err != nil {
			return &ele.AssemblyError{Eid: o.Id(), Ip: idx, Err: err}
		}

		// consistent tangent modulus
		err = o.Lgm.CalcA(o.A, o.F, firstIt)
		if err != nil {
			return &ele.AssemblyError{Eid: o.Id(), Ip: idx, Err: err}
		}

		// auxiliary
		coef := o.Shp.J * ip[3]
		G := o.Shp.G

		// add contribution to consistent tangent matrix
		for m := 0; m < nverts; m++ {
			for i := 0; i < o.Ndim; i++ {
				r := i + m*o.Ndim
				for n := 0; n < nverts; n++ {
					for k := 0; k < o.Ndim; k++ {
						c := k + n*o.Ndim
						for J := 0; J < o.Ndim; J++ {
							for L := 0; L < o.Ndim; L++ {
								o.K[r][c] += coef * G[m][J] * o.A[i][J][k][L] * G[n][L]
							}
						}
					}
				}
			}
		}
	}

	// add K to sparse matrix Kb. rows with prescribed values are skipped;
	// their columns are kept so that the solver sees the coupling between
	// free and prescribed equations
	for i, I := range o.Umap {
		if sol.Prescribed[I] {
			continue
		}
		for j, J := range o.Umap {
			Kb.Put(I, J, o.K[i][j])
		}
	}
	return
}

// Update performs the update of the state @ integration points
func (o *Solid) Update(sol *ele.Solution) (err error) {
	for idx := range o.IpsElem {
		err = o.ipvars(idx, sol)
		if err != nil {
			return &ele.AssemblyError{Eid: o.Id(), Ip: idx, Err: err}
		}
		err = o.Lgm.Update(o.States[idx], o.F)
		if err != nil {
			return &ele.AssemblyError{Eid: o.Id(), Ip: idx, Err: err}
		}
	}
	return
}

// internal variables ///////////////////////////////////////////////////////////////////////////////

// SetIniIvs sets initial ivs for given values in sol and ivs map
func (o *Solid) SetIniIvs(sol *ele.Solution, ivs map[string][]float64) (err error) {
	nip := len(o.IpsElem)
	o.States = make([]*msolid.State, nip)
	o.StatesBkp = make([]*msolid.State, nip)
	o.StatesAux = make([]*msolid.State, nip)
	for i := 0; i < nip; i++ {
		o.States[i], err = o.Mdl.InitIntVars(o.Ndim)
		if err != nil {
			return
		}
		o.StatesBkp[i] = o.States[i].GetCopy()
		o.StatesAux[i] = o.States[i].GetCopy()
	}
	return
}

// BackupIvs creates copies of internal variables
func (o *Solid) BackupIvs(aux bool) (err error) {
	if aux {
		for i, s := range o.StatesAux {
			s.Set(o.States[i])
		}
		return
	}
	for i, s := range o.StatesBkp {
		s.Set(o.States[i])
	}
	return
}

// RestoreIvs restores internal variables from copies
func (o *Solid) RestoreIvs(aux bool) (err error) {
	if aux {
		for i, s := range o.States {
			s.Set(o.StatesAux[i])
		}
		return
	}
	for i, s := range o.States {
		s.Set(o.StatesBkp[i])
	}
	return
}

// Ureset fixes internal variables after u (displacements) have been zeroed
func (o *Solid) Ureset(sol *ele.Solution) (err error) {
	for idx := range o.IpsElem {
		for _, s := range []*msolid.State{o.States[idx], o.StatesBkp[idx]} {
			la.MatFill(s.F, 0)
			for i := 0; i < o.Ndim; i++ {
				s.F[i][i] = 1
			}
			la.VecFill(s.Sig, 0)
		}
	}
	return
}

// writer ///////////////////////////////////////////////////////////////////////////////////////////

// Encode encodes internal variables
func (o *Solid) Encode(enc utl.Encoder) (err error) {
	return enc.Encode(o.States)
}

// Decode decodes internal variables
func (o *Solid) Decode(dec utl.Decoder) (err error) {
	err = dec.Decode(&o.States)
	if err != nil {
		return
	}
	return o.BackupIvs(false)
}

// output ///////////////////////////////////////////////////////////////////////////////////////////

// OutIpCoords returns the real coordinates of integration points [nip][ndim]
func (o *Solid) OutIpCoords() (C [][]float64) {
	C = make([][]float64, len(o.IpsElem))
	for idx, ip := range o.IpsElem {
		C[idx] = o.Shp.IpRealCoords(o.X, ip)
	}
	return
}

// OutIpKeys returns the integration points' keys
func (o *Solid) OutIpKeys() []string {
	return StressKeys(o.Ndim)
}

// OutIpVals returns the integration points' values corresponding to keys
func (o *Solid) OutIpVals(M *ele.IpsMap, sol *ele.Solution) {
	keys := StressKeys(o.Ndim)
	nip := len(o.IpsElem)
	for idx := range o.IpsElem {
		for i, key := range keys {
			M.Set(key, idx, nip, SigVal(i, o.States[idx].Sig))
		}
	}
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// ipvars computes the shape functions, reference gradients and the
// deformation gradient @ integration point idx, from the current
// displacements. idx == index of integration point
func (o *Solid) ipvars(idx int, sol *ele.Solution) (err error) {

	// interpolation functions and gradients
	err = o.Shp.CalcAtIp(o.X, o.IpsElem[idx], true)
	if err != nil {
		return
	}

	// deformation gradient: F = I + Σ u ⊗ G
	for i := 0; i < o.Ndim; i++ {
		for J := 0; J < o.Ndim; J++ {
			o.F[i][J] = 0
		}
		o.F[i][i] = 1
	}
	for m := 0; m < o.Shp.Nverts; m++ {
		for i := 0; i < o.Ndim; i++ {
			r := o.Umap[i+m*o.Ndim]
			for J := 0; J < o.Ndim; J++ {
				o.F[i][J] += sol.Y[r] * o.Shp.G[m][J]
			}
		}
	}
	return
}

// addSurfloadsToRhs adds surface loads to rhs. Tractions are applied on the
// reference configuration (dead loads)
func (o *Solid) addSurfloadsToRhs(fb []float64, sol *ele.Solution) (err error) {
	for _, load := range o.NatBcs {

		// traction direction: -1 => normal
		dir := -1
		switch load.Key {
		case "qn":
		case "tx":
			dir = 0
		case "ty":
			dir = 1
		case "tz":
			dir = 2
		default:
			continue // "ux" and friends are handled by the essential constraints
		}

		for _, ipf := range o.IpsFace {
			err = o.Shp.CalcAtFaceIp(o.X, ipf, load.IdxFace)
			if err != nil {
				return &ele.AssemblyError{Eid: o.Id(), Ip: -1, Err: err}
			}
			Sf := o.Shp.Sf
			val := load.Fcn.F(sol.T, nil)
			for j, m := range o.Shp.FaceLocalVerts[load.IdxFace] {
				for i := 0; i < o.Ndim; i++ {
					r := o.Umap[i+m*o.Ndim]
					if sol.Prescribed[r] {
						continue
					}
					if dir < 0 {
						fb[r] += ipf[3] * val * Sf[j] * o.Shp.Fnvec[i] // qn: pressure along normal
					} else if i == dir {
						fb[r] += ipf[3] * val * Sf[j] * la.VecNorm(o.Shp.Fnvec) // tx,ty,tz: fixed direction
					}
				}
			}
		}
	}
	return
}
