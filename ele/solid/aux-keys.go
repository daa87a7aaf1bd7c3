// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import "github.com/cpmech/gosl/tsr"

// StressKeys returns the stress keys for output
func StressKeys(ndim int) []string {
	if ndim == 2 {
		return []string{"sx", "sy", "sz", "sxy"}
	}
	return []string{"sx", "sy", "sz", "sxy", "syz", "szx"}
}

// SigVal returns the stress component corresponding to StressKeys()[i], given
// the stress vector in Mandel representation. Off-diagonal Mandel components
// carry a factor sqrt(2)
func SigVal(i int, sig []float64) float64 {
	if i < 3 {
		return sig[i]
	}
	return sig[i] / tsr.SQ2
}
