// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// GenBoxMesh generates structured qua4 (2D) or hex8 (3D) meshes of a box
// and writes them in the .msh JSON format.
//
// The boundary tags are:
//
//	-10 : x-min face    -11 : x-max face
//	-12 : y-min face    -13 : y-max face
//	-14 : z-min face    -15 : z-max face (3D only)
func main() {

	// input data
	fn, _ := io.ArgToFilename(0, "box", ".msh", false)
	ndim := io.ArgToInt(1, 3)
	nx := io.ArgToInt(2, 4)
	ny := io.ArgToInt(3, 2)
	nz := io.ArgToInt(4, 2)
	lx := io.ArgToFloat(5, 20.0)
	ly := io.ArgToFloat(6, 1.0)
	lz := io.ArgToFloat(7, 1.0)
	ctag := io.ArgToInt(8, -1)

	// print input table
	io.Pf("\n%s\n", io.ArgsTable("INPUT ARGUMENTS",
		"mesh filename", "fn", fn,
		"space dimension", "ndim", ndim,
		"number of cells along x", "nx", nx,
		"number of cells along y", "ny", ny,
		"number of cells along z", "nz", nz,
		"length along x", "lx", lx,
		"length along y", "ly", ly,
		"length along z", "lz", lz,
		"cell tag", "ctag", ctag,
	))

	// check
	if nx < 1 || ny < 1 || (ndim == 3 && nz < 1) {
		chk.Panic("number of cells must be at least 1 in every direction")
	}

	// generate
	var buf bytes.Buffer
	switch ndim {
	case 2:
		gen2d(&buf, nx, ny, lx, ly, ctag)
	case 3:
		gen3d(&buf, nx, ny, nz, lx, ly, lz, ctag)
	default:
		chk.Panic("space dimension must be 2 or 3. ndim = %d is invalid", ndim)
	}

	// save file
	io.WriteFileVD(".", fn, &buf)
}

// gen2d generates a structured qua4 mesh. Edge tags follow the qua4 local
// face numbering: bottom, right, top, left.
func gen2d(buf *bytes.Buffer, nx, ny int, lx, ly float64, ctag int) {

	// vertices
	io.Ff(buf, "{\n  \"verts\" : [\n")
	dx := lx / float64(nx)
	dy := ly / float64(ny)
	nverts := (nx + 1) * (ny + 1)
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			id := i + j*(nx+1)
			io.Ff(buf, "    { \"id\":%d, \"tag\":0, \"c\":[%g, %g] }", id, float64(i)*dx, float64(j)*dy)
			if id < nverts-1 {
				io.Ff(buf, ",")
			}
			io.Ff(buf, "\n")
		}
	}
	io.Ff(buf, "  ],\n")

	// cells
	io.Ff(buf, "  \"cells\" : [\n")
	ncells := nx * ny
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			id := i + j*nx
			n0 := i + j*(nx+1)
			n1 := n0 + 1
			n2 := n1 + nx + 1
			n3 := n0 + nx + 1
			ftags := []int{0, 0, 0, 0}
			if j == 0 {
				ftags[0] = -12
			}
			if i == nx-1 {
				ftags[1] = -11
			}
			if j == ny-1 {
				ftags[2] = -13
			}
			if i == 0 {
				ftags[3] = -10
			}
			io.Ff(buf, "    { \"id\":%d, \"tag\":%d, \"part\":0, \"type\":\"qua4\", \"verts\":[%d,%d,%d,%d], \"ftags\":[%d,%d,%d,%d] }",
				id, ctag, n0, n1, n2, n3, ftags[0], ftags[1], ftags[2], ftags[3])
			if id < ncells-1 {
				io.Ff(buf, ",")
			}
			io.Ff(buf, "\n")
		}
	}
	io.Ff(buf, "  ]\n}\n")
}

// gen3d generates a structured hex8 mesh. Face tags follow the hex8 local
// face numbering: x-min, x-max, y-min, y-max, z-min, z-max.
func gen3d(buf *bytes.Buffer, nx, ny, nz int, lx, ly, lz float64, ctag int) {

	// vertices
	io.Ff(buf, "{\n  \"verts\" : [\n")
	dx := lx / float64(nx)
	dy := ly / float64(ny)
	dz := lz / float64(nz)
	nverts := (nx + 1) * (ny + 1) * (nz + 1)
	for k := 0; k <= nz; k++ {
		for j := 0; j <= ny; j++ {
			for i := 0; i <= nx; i++ {
				id := i + j*(nx+1) + k*(nx+1)*(ny+1)
				io.Ff(buf, "    { \"id\":%d, \"tag\":0, \"c\":[%g, %g, %g] }", id, float64(i)*dx, float64(j)*dy, float64(k)*dz)
				if id < nverts-1 {
					io.Ff(buf, ",")
				}
				io.Ff(buf, "\n")
			}
		}
	}
	io.Ff(buf, "  ],\n")

	// cells
	io.Ff(buf, "  \"cells\" : [\n")
	ncells := nx * ny * nz
	npx := nx + 1
	npxy := (nx + 1) * (ny + 1)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				id := i + j*nx + k*nx*ny
				n0 := i + j*npx + k*npxy
				n1 := n0 + 1
				n2 := n1 + npx
				n3 := n0 + npx
				n4 := n0 + npxy
				n5 := n1 + npxy
				n6 := n2 + npxy
				n7 := n3 + npxy
				ftags := []int{0, 0, 0, 0, 0, 0}
				if i == 0 {
					ftags[0] = -10
				}
				if i == nx-1 {
					ftags[1] = -11
				}
				if j == 0 {
					ftags[2] = -12
				}
				if j == ny-1 {
					ftags[3] = -13
				}
				if k == 0 {
					ftags[4] = -14
				}
				if k == nz-1 {
					ftags[5] = -15
				}
				io.Ff(buf, "    { \"id\":%d, \"tag\":%d, \"part\":0, \"type\":\"hex8\", \"verts\":[%d,%d,%d,%d,%d,%d,%d,%d], \"ftags\":[%d,%d,%d,%d,%d,%d] }",
					id, ctag, n0, n1, n2, n3, n4, n5, n6, n7, ftags[0], ftags[1], ftags[2], ftags[3], ftags[4], ftags[5])
				if id < ncells-1 {
					io.Ff(buf, ",")
				}
				io.Ff(buf, "\n")
			}
		}
	}
	io.Ff(buf, "  ]\n}\n")
}
