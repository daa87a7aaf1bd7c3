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

// Summary records summary of outputs
type Summary struct {

	// main data
	OutTimes []float64    // [nOutTimes] output times
	Resids   utl.DblSlist // all residuals; with one sub-slice per load step
	Dirout   string       // directory where results were stored
	Fnkey    string       // filename key of simulation

	// auxiliary
	tidx int // time output index
}

// SaveDomains saves the results from all domains (nodes and integration
// points) and records the output time
func (o *Summary) SaveDomains(t float64, doms []*Domain) (err error) {
	for _, d := range doms {
		err = d.Save(o.tidx)
		if err != nil {
			return chk.Err("cannot save results of domain:\n%v", err)
		}
	}
	o.OutTimes = append(o.OutTimes, t)
	o.tidx += 1
	return
}

// Save saves the summary to disc
func (o *Summary) Save(dirout, fnkey, enctype string) (err error) {

	// set directory and filename key before saving
	o.Dirout = dirout
	o.Fnkey = fnkey

	// buffer and encoder
	var buf bytes.Buffer
	enc := utl.GetEncoder(&buf, enctype)

	// encode summary
	err = enc.Encode(o)
	if err != nil {
		return chk.Err("cannot encode summary:\n%v", err)
	}

	// save file
	fn := out_sum_path(dirout, fnkey, enctype)
	return save_file(fn, &buf)
}

// Read reads the summary of a previous simulation
func (o *Summary) Read(dirout, fnkey, enctype string) (err error) {

	// open file
	fn := out_sum_path(dirout, fnkey, enctype)
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer func() { fil.Close() }()

	// decode summary
	dec := utl.GetDecoder(fil, enctype)
	err = dec.Decode(o)
	if err != nil {
		return chk.Err("cannot decode summary:\n%v", err)
	}
	o.tidx = len(o.OutTimes)
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_sum_path(dirout, fnkey, enctype string) string {
	return filepath.Join(dirout, io.Sf("%s_sum.%s", fnkey, enctype))
}
