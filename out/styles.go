// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// Styles
type Styles []plt.A

func GetDefaultStyles(qts Points) Styles {
	sty := make([]plt.A, len(qts))
	for i, q := range qts {
		sty[i].L = io.Sf("x=%v", q.X)
	}
	return sty
}

func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "time":
		l += "t"
	case "ux":
		l += "u_x"
	case "uy":
		l += "u_y"
	case "uz":
		l += "u_z"
	case "sx":
		l += "\\sigma_x"
	case "sy":
		l += "\\sigma_y"
	case "sz":
		l += "\\sigma_z"
	case "sxy":
		l += "\\sigma_{xy}"
	case "syz":
		l += "\\sigma_{yz}"
	case "szx":
		l += "\\sigma_{zx}"
	case "ex_sx":
		l += "\\sigma_x^{ex}"
	case "ex_sy":
		l += "\\sigma_y^{ex}"
	case "ex_sz":
		l += "\\sigma_z^{ex}"
	default:
		l += key
	}
	if unit != "" {
		l += "\\;" + unit
	}
	l += "$"
	return l
}
