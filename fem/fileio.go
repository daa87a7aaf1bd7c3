// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// SaveSol saves the solution (o.Sol) to a file which name is set with tidx
// (time output index)
func (o *Domain) SaveSol(tidx int) (err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := utl.GetEncoder(&buf, o.Sim.EncType)

	// encode Sol
	err = enc.Encode(o.Sol.T)
	if err != nil {
		return chk.Err("cannot encode Domain.Sol.T\n%v", err)
	}
	err = enc.Encode(o.Sol.Y)
	if err != nil {
		return chk.Err("cannot encode Domain.Sol.Y\n%v", err)
	}

	// save file
	fn := out_nod_path(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, tidx)
	return save_file(fn, &buf)
}

// ReadSol reads the solution from a file which name is set with tidx (time
// output index)
func (o *Domain) ReadSol(dir, fnkey, enctype string, tidx int) (err error) {

	// open file
	fn := out_nod_path(dir, fnkey, enctype, tidx)
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer func() { fil.Close() }()

	// get decoder
	dec := utl.GetDecoder(fil, enctype)

	// decode Sol
	err = dec.Decode(&o.Sol.T)
	if err != nil {
		return chk.Err("cannot decode Domain.Sol.T\n%v", err)
	}
	err = dec.Decode(&o.Sol.Y)
	if err != nil {
		return chk.Err("cannot decode Domain.Sol.Y\n%v", err)
	}
	return
}

// SaveIvs saves the elements' internal values to a file which name is set
// with tidx (time output index)
func (o *Domain) SaveIvs(tidx int) (err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := utl.GetEncoder(&buf, o.Sim.EncType)

	// elements that go to file
	err = enc.Encode(o.Cids)
	if err != nil {
		return chk.Err("cannot encode element ids\n%v", err)
	}

	// encode internal variables
	for _, e := range o.Elems {
		err = e.Encode(enc)
		if err != nil {
			return
		}
	}

	// save file
	fn := out_ele_path(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, tidx)
	return save_file(fn, &buf)
}

// ReadIvs reads the elements' internal values from a file which name is set
// with tidx (time output index)
func (o *Domain) ReadIvs(dir, fnkey, enctype string, tidx int) (err error) {

	// open file
	fn := out_ele_path(dir, fnkey, enctype, tidx)
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer func() { fil.Close() }()

	// decoder
	dec := utl.GetDecoder(fil, enctype)

	// elements that are in file
	var cids []int
	err = dec.Decode(&cids)
	if err != nil {
		return chk.Err("cannot decode element ids:\n%v", err)
	}

	// decode internal variables
	for _, cid := range cids {
		elem := o.Cid2elem[cid]
		if elem == nil {
			return chk.Err("cannot find element with cid=%d", cid)
		}
		err = elem.Decode(dec)
		if err != nil {
			return chk.Err("cannot decode element:\n%v", err)
		}
	}
	return
}

// Save performs the output of the solution and of the internal values to
// files
func (o *Domain) Save(tidx int) (err error) {
	err = o.SaveSol(tidx)
	if err != nil {
		return
	}
	return o.SaveIvs(tidx)
}

// Read performs the inverse operation of Save: it reads the solution and the
// internal values of a previous simulation back into the domain
func (o *Domain) Read(sum *Summary, tidx int) (err error) {
	err = o.ReadSol(sum.Dirout, sum.Fnkey, o.Sim.EncType, tidx)
	if err != nil {
		return
	}
	return o.ReadIvs(sum.Dirout, sum.Fnkey, o.Sim.EncType, tidx)
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_nod_path(dir, fnkey, enctype string, tidx int) string {
	return filepath.Join(dir, io.Sf("%s_nod_%010d.%s", fnkey, tidx, enctype))
}

func out_ele_path(dir, fnkey, enctype string, tidx int) string {
	return filepath.Join(dir, io.Sf("%s_ele_%010d.%s", fnkey, tidx, enctype))
}

func save_file(filename string, buf *bytes.Buffer) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() { fil.Close() }()
	_, err = fil.Write(buf.Bytes())
	return
}
