// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/garth-wells/CUED-4C9-demo/ele"
	"github.com/garth-wells/CUED-4C9-demo/ele/solid"
	"github.com/garth-wells/CUED-4C9-demo/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// ComputeExtrapolatedValues extrapolates integration point values to the
// vertices of each element and averages the contributions from all elements
// sharing a vertex. The results are stored in the global ExVals slice.
func ComputeExtrapolatedValues(extrapKeys []string) {

	// auxiliary
	verts := Dom.Msh.Verts
	cells := Dom.Msh.Cells

	// allocate structures
	nverts := len(verts)
	ExVals = make([]map[string]float64, nverts)
	counts := make([]map[string]float64, nverts)
	for i := 0; i < nverts; i++ {
		ExVals[i] = make(map[string]float64)
		counts[i] = make(map[string]float64)
	}

	// loop over elements
	for _, element := range Dom.Elems {

		// get shape structure and integration points
		var sha *shp.Shape
		var ips []shp.Ipoint
		switch e := element.(type) {
		case *solid.Solid:
			sha = e.Shp
			ips = e.IpsElem
		}
		if sha == nil {
			continue
		}

		// compute extrapolation matrix
		Emat := la.MatAlloc(sha.Nverts, len(ips))
		err := sha.Extrapolator(Emat, ips)
		if err != nil {
			chk.Panic("cannot compute extrapolator matrix: %v", err)
		}

		// get integration point values
		ex, ok := element.(ele.CanOutputIps)
		if !ok {
			continue
		}
		M := ele.NewIpsMap()
		ex.OutIpVals(M, Dom.Sol)

		// perform extrapolation
		cell := cells[element.Id()]
		for j := 0; j < len(ips); j++ {
			for _, key := range extrapKeys {
				vals, ok := (*M)[key]
				if !ok {
					chk.Panic("ip does not have key = %s", key)
				}
				for i := 0; i < sha.Nverts; i++ {
					v := cell.Verts[i]
					ExVals[v][key] += Emat[i][j] * vals[j]
				}
			}
		}

		// increment counter
		for i := 0; i < sha.Nverts; i++ {
			v := cell.Verts[i]
			for _, key := range extrapKeys {
				counts[v][key] += 1
			}
		}
	}

	// compute average
	for i := 0; i < nverts; i++ {
		for key, cnt := range counts[i] {
			ExVals[i][key] /= cnt
		}
	}
}
