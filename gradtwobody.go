/*
 * gradtwobody.go, part of goacsf
 *
 * Copyright 2023 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package acsf

import (
	"math"

	v3 "github.com/rmera/gochem/v3"
)

//twoBodyACSFGrad is twoBodyACSF plus the analytic derivative of every
//accumulated feature. grad is atom i's gradient slab (repsize x natoms x 3,
//flat). For each pair the radial derivative df/dr is chained to coordinates
//through the unit vector from j to i; the two participants get equal and
//opposite contributions, so each interaction sums to zero over atoms.
func twoBodyACSFGrad(rep, grad []float64, i int, coord *v3.Matrix, g *distGeom, types []int, O *Options) {
	b2 := len(O.rs2)
	n := g.n
	for j := 0; j < n; j++ {
		if j == i {
			continue
		}
		r := g.d.At(i, j)
		if r >= O.rcut {
			continue
		}
		fc := decay(r, O.rcut)
		fcd := decayDer(r, O.rcut)
		u := dir(coord, g.invAt(i, j), i, j)
		block := types[j] * b2
		for k, rs := range O.rs2 {
			diff := r - rs
			gauss := math.Exp(-O.eta2 * diff * diff)
			f := block + k
			rep[f] += gauss * fc
			df := gauss * (fcd - 2*O.eta2*diff*fc)
			for c := 0; c < 3; c++ {
				grad[(f*n+i)*3+c] += df * u[c]
				grad[(f*n+j)*3+c] -= df * u[c]
			}
		}
	}
}

//twoBodyFCHLGrad is twoBodyFCHL plus its analytic derivative. The radial
//kernel is log-normal in r with r-dependent mean and width, so the chain
//rule goes through mu(r) and sigma^2(r) as well as the power-law and the
//cosine decay.
func twoBodyFCHLGrad(rep, grad []float64, i int, coord *v3.Matrix, g *distGeom, types []int, O *Options) {
	b2 := len(O.rs2)
	n := g.n
	for j := 0; j < n; j++ {
		if j == i {
			continue
		}
		r := g.d.At(i, j)
		if r >= O.rcut {
			continue
		}
		fc := decay(r, O.rcut)
		fcd := decayDer(r, O.rcut)
		u := dir(coord, g.invAt(i, j), i, j)
		r2 := g.d2.At(i, j)
		s2 := math.Log(1 + O.eta2/r2) //sigma^2
		sigma := math.Sqrt(s2)
		mu := math.Log(r) - 0.5*s2
		//d(sigma^2)/dr and dmu/dr
		ds2 := -2 * O.eta2 / (r * (r2 + O.eta2))
		dmu := (r2 + 2*O.eta2) / (r * (r2 + O.eta2))
		pw := math.Pow(r, -O.twoBodyDecay)
		dpw := -O.twoBodyDecay * pw * g.invAt(i, j)
		block := types[j] * b2
		for k, rs := range O.rs2 {
			z := math.Log(rs) - mu
			lognorm := math.Exp(-z*z/(2*s2)) / (sigma * sqrt2pi * rs)
			f := block + k
			rep[f] += fc * pw * lognorm
			//d(ln lognorm)/dr, by the product of the three r-dependent factors
			dln := -ds2/(2*s2) + z*dmu/s2 + z*z*ds2/(2*s2*s2)
			df := fcd*pw*lognorm + fc*dpw*lognorm + fc*pw*lognorm*dln
			for c := 0; c < 3; c++ {
				grad[(f*n+i)*3+c] += df * u[c]
				grad[(f*n+j)*3+c] -= df * u[c]
			}
		}
	}
}
