// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Ipoint holds the natural coordinates and the weight of one integration
// point: {r, s, t, weight}
type Ipoint []float64

// ipsfactory holds the sets of integration points [geoType_nip]
var ipsfactory = make(map[string][]Ipoint)

// defaultNips holds the default number of integration points [geoType]
var defaultNips = map[string]int{
	"lin2": 2,
	"tri3": 3,
	"qua4": 4,
	"tet4": 4,
	"hex8": 8,
}

// GetIps returns the integration points of the element (nip) and of its faces
// (nipf). Zero values select the defaults of the geometry type.
func (o *Shape) GetIps(nip, nipf int) (ips, ipsf []Ipoint, err error) {
	if nip == 0 {
		nip = defaultNips[o.Type]
	}
	ips, ok := ipsfactory[io.Sf("%s_%d", o.Type, nip)]
	if !ok {
		err = chk.Err("cannot find set of integration points for %q with nip=%d", o.Type, nip)
		return
	}
	if o.FaceType != "" {
		if nipf == 0 {
			nipf = defaultNips[o.FaceType]
		}
		ipsf, ok = ipsfactory[io.Sf("%s_%d", o.FaceType, nipf)]
		if !ok {
			err = chk.Err("cannot find set of integration points for face %q with nipf=%d", o.FaceType, nipf)
		}
	}
	return
}

// NipsForDegree returns the number of integration points required to
// integrate polynomials of a given degree exactly on one geometry type
func NipsForDegree(geoType string, deg int) (nip int, err error) {
	switch geoType {
	case "lin2":
		switch {
		case deg <= 3:
			return 2, nil
		case deg <= 5:
			return 3, nil
		}
	case "tri3":
		switch {
		case deg <= 1:
			return 1, nil
		case deg <= 2:
			return 3, nil
		case deg <= 4:
			return 6, nil
		}
	case "qua4":
		switch {
		case deg <= 3:
			return 4, nil
		case deg <= 5:
			return 9, nil
		}
	case "tet4":
		switch {
		case deg <= 1:
			return 1, nil
		case deg <= 2:
			return 4, nil
		case deg <= 3:
			return 5, nil
		}
	case "hex8":
		switch {
		case deg <= 3:
			return 8, nil
		case deg <= 5:
			return 27, nil
		}
	default:
		return 0, chk.Err("geometry type %q is not available", geoType)
	}
	return 0, chk.Err("no quadrature rule of degree %d is available for %q", deg, geoType)
}

// Gauss-Legendre coordinates and weights on [-1,1]
const (
	gp2 = 5.7735026918962584e-01 // 1/sqrt(3)
	gp3 = 7.7459666924148340e-01 // sqrt(3/5)
	gw3 = 5.5555555555555558e-01 // 5/9
	gw0 = 8.8888888888888884e-01 // 8/9
)

func init() {

	// lin2
	ipsfactory["lin2_2"] = []Ipoint{
		{-gp2, 0, 0, 1},
		{gp2, 0, 0, 1},
	}
	ipsfactory["lin2_3"] = []Ipoint{
		{-gp3, 0, 0, gw3},
		{0, 0, 0, gw0},
		{gp3, 0, 0, gw3},
	}

	// tri3
	ipsfactory["tri3_1"] = []Ipoint{
		{1.0 / 3.0, 1.0 / 3.0, 0, 1.0 / 2.0},
	}
	ipsfactory["tri3_3"] = []Ipoint{
		{1.0 / 6.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{2.0 / 3.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{1.0 / 6.0, 2.0 / 3.0, 0, 1.0 / 6.0},
	}
	ta, tb := 0.816847572980459, 0.091576213509771
	tc, td := 0.108103018168070, 0.445948490915965
	tw1, tw2 := 0.109951743655322/2.0, 0.223381589678011/2.0
	ipsfactory["tri3_6"] = []Ipoint{
		{tb, tb, 0, tw1},
		{ta, tb, 0, tw1},
		{tb, ta, 0, tw1},
		{td, td, 0, tw2},
		{tc, td, 0, tw2},
		{td, tc, 0, tw2},
	}

	// qua4: tensor products of the 1D rules
	qua4 := make([]Ipoint, 0, 4)
	for _, s := range []float64{-gp2, gp2} {
		for _, r := range []float64{-gp2, gp2} {
			qua4 = append(qua4, Ipoint{r, s, 0, 1})
		}
	}
	ipsfactory["qua4_4"] = qua4
	pts3 := []float64{-gp3, 0, gp3}
	wgt3 := []float64{gw3, gw0, gw3}
	qua9 := make([]Ipoint, 0, 9)
	for j, s := range pts3 {
		for i, r := range pts3 {
			qua9 = append(qua9, Ipoint{r, s, 0, wgt3[i] * wgt3[j]})
		}
	}
	ipsfactory["qua4_9"] = qua9

	// tet4
	ipsfactory["tet4_1"] = []Ipoint{
		{1.0 / 4.0, 1.0 / 4.0, 1.0 / 4.0, 1.0 / 6.0},
	}
	a, b := 0.5854101966249685, 0.1381966011250105
	ipsfactory["tet4_4"] = []Ipoint{
		{b, b, b, 1.0 / 24.0},
		{a, b, b, 1.0 / 24.0},
		{b, a, b, 1.0 / 24.0},
		{b, b, a, 1.0 / 24.0},
	}
	ipsfactory["tet4_5"] = []Ipoint{
		{1.0 / 4.0, 1.0 / 4.0, 1.0 / 4.0, -2.0 / 15.0},
		{1.0 / 6.0, 1.0 / 6.0, 1.0 / 6.0, 3.0 / 40.0},
		{1.0 / 2.0, 1.0 / 6.0, 1.0 / 6.0, 3.0 / 40.0},
		{1.0 / 6.0, 1.0 / 2.0, 1.0 / 6.0, 3.0 / 40.0},
		{1.0 / 6.0, 1.0 / 6.0, 1.0 / 2.0, 3.0 / 40.0},
	}

	// hex8: tensor products of the 1D rules
	hex8 := make([]Ipoint, 0, 8)
	for _, t := range []float64{-gp2, gp2} {
		for _, s := range []float64{-gp2, gp2} {
			for _, r := range []float64{-gp2, gp2} {
				hex8 = append(hex8, Ipoint{r, s, t, 1})
			}
		}
	}
	ipsfactory["hex8_8"] = hex8
	hex27 := make([]Ipoint, 0, 27)
	for k, t := range pts3 {
		for j, s := range pts3 {
			for i, r := range pts3 {
				hex27 = append(hex27, Ipoint{r, s, t, wgt3[i] * wgt3[j] * wgt3[k]})
			}
		}
	}
	ipsfactory["hex8_27"] = hex27
}
