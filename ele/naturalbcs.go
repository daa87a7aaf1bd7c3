// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/fun"

// NaturalBc holds information on natural boundary conditions such as
// distributed loads acting on faces
type NaturalBc struct {
	Key     string   // key such as qn, tx, ty, tz
	IdxFace int      // local index of face
	Fcn     fun.Func // function callback returning the load multiplier at time t
	Extra   string   // extra information
}
