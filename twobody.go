/*
 * twobody.go, part of goacsf
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

import "math"

const sqrt2pi = 2.5066282746310002

//twoBodyACSF adds the two-body (radial) ACSF features of atom i into rep,
//which must be atom i's full representation row. Each neighbor j within the
//cutoff adds a Gaussian comb centered on the Rs2 grid, damped by the cosine
//decay, into the block of j's element type. The pair (i,j) is visited again
//when some other worker owns row j, so each worker only ever writes the row
//it owns.
func twoBodyACSF(rep []float64, i int, g *distGeom, types []int, O *Options) {
	b2 := len(O.rs2)
	for j := 0; j < g.n; j++ {
		if j == i {
			continue
		}
		r := g.d.At(i, j)
		if r >= O.rcut {
			continue
		}
		fc := decay(r, O.rcut)
		block := types[j] * b2
		for k, rs := range O.rs2 {
			diff := r - rs
			rep[block+k] += math.Exp(-O.eta2*diff*diff) * fc
		}
	}
}

//twoBodyFCHL is the FCHL variant of twoBodyACSF: the radial basis is a
//log-normal kernel, which concentrates resolution at bonding distances,
//times an explicit power-law decay that is independent of the cutoff shape.
func twoBodyFCHL(rep []float64, i int, g *distGeom, types []int, O *Options) {
	b2 := len(O.rs2)
	for j := 0; j < g.n; j++ {
		if j == i {
			continue
		}
		r := g.d.At(i, j)
		if r >= O.rcut {
			continue
		}
		fc := decay(r, O.rcut)
		s2 := math.Log(1 + O.eta2/(r*r)) //sigma^2
		sigma := math.Sqrt(s2)
		mu := math.Log(r) - 0.5*s2
		pw := math.Pow(r, -O.twoBodyDecay)
		block := types[j] * b2
		for k, rs := range O.rs2 {
			z := math.Log(rs) - mu
			rep[block+k] += fc * pw * math.Exp(-z*z/(2*s2)) / (sigma * sqrt2pi * rs)
		}
	}
}
