// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/garth-wells/CUED-4C9-demo/inp"

	"github.com/cpmech/gosl/io"
)

// Dof holds information about one degree-of-freedom == solution variable
type Dof struct {
	Key string // primary variable key; e.g. "ux"
	Eq  int    // equation number
}

// String returns the string representation of this Dof
func (o *Dof) String() string {
	return io.Sf("{%q:%d}", o.Key, o.Eq)
}

// Node holds the set of degrees-of-freedom attached to one vertex
type Node struct {
	Dofs []*Dof    // degrees-of-freedom == solution variables
	Vert *inp.Vert // pointer to vertex data
}

// NewNode returns a new Node
func NewNode(v *inp.Vert) *Node {
	return &Node{[]*Dof{}, v}
}

// AddDofAndEq adds a new dof and equation number to a node. It returns the
// next equation number; thus nextEq stays unchanged if the dof exists already
func (o *Node) AddDofAndEq(key string, nextEq int) int {
	for _, dof := range o.Dofs {
		if dof.Key == key {
			return nextEq
		}
	}
	o.Dofs = append(o.Dofs, &Dof{key, nextEq})
	return nextEq + 1
}

// GetDof returns the Dof corresponding to a key; nil if this node does not
// carry such dof
func (o *Node) GetDof(key string) *Dof {
	for _, dof := range o.Dofs {
		if dof.Key == key {
			return dof
		}
	}
	return nil
}

// GetEq returns the equation number of a dof @ node; -1 if not found
func (o *Node) GetEq(key string) int {
	if dof := o.GetDof(key); dof != nil {
		return dof.Eq
	}
	return -1
}
