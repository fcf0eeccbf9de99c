/*
 * threebody.go, part of goacsf
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

//pairBlockOffset maps the unordered pair of (zero-based) element types (p,q),
//p<=q, to the offset of its contiguous block within the three-body segment
//of a representation row, in units of one feature. The mapping is the usual
//triangular numbering, so each of the nelements*(nelements+1)/2 pairs gets
//exactly one block and no feature is double counted.
func pairBlockOffset(p, q, nelements, b3, a int) int {
	return b3 * a * (nelements*p - p*(p+1)/2 + q)
}

//cosAngle returns the cosine of the interior angle opposite to side c in the
//triangle with sides a, b, c, clipped to [-1,1] so that floating round-off
//on degenerate (collinear) triangles can't take Acos out of its domain.
func cosAngle(a, b, c float64) float64 {
	cos := (a*a + b*b - c*c) / (2 * a * b)
	//Take care of floating point math errors
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return cos
}

//threeBodyACSF adds the three-body (angular) ACSF features of atom i into
//rep, atom i's full representation row. For every pair of distinct neighbors
//j<k within the angular cutoff, the outer product of the radial comb on the
//mean distance and the angular basis on the vertex angle at i is accumulated
//into the canonical block of the (type_j,type_k) element pair.
func threeBodyACSF(rep []float64, i int, g *distGeom, types []int, O *Options, nelements int) {
	b2 := len(O.rs2)
	b3 := len(O.rs3)
	na := len(O.ts)
	base := nelements * b2
	radial := make([]float64, b3)
	angular := make([]float64, na)
	for j := 0; j < g.n; j++ {
		if j == i {
			continue
		}
		rij := g.d.At(i, j)
		if rij >= O.acut {
			continue
		}
		for k := j + 1; k < g.n; k++ {
			if k == i {
				continue
			}
			rik := g.d.At(i, k)
			if rik >= O.acut {
				continue
			}
			rjk := g.d.At(j, k)
			theta := math.Acos(cosAngle(rij, rik, rjk))
			fcc := decay(rij, O.acut) * decay(rik, O.acut)
			mean := 0.5 * (rij + rik)
			for l, rs := range O.rs3 {
				diff := mean - rs
				radial[l] = math.Exp(-O.eta3*diff*diff) * fcc
			}
			for m, ts := range O.ts {
				angular[m] = 2 * math.Pow((1+math.Cos(theta-ts))/2, O.zeta)
			}
			p, q := types[j], types[k]
			if p > q {
				p, q = q, p
			}
			off := base + pairBlockOffset(p, q, nelements, b3, na)
			for l := 0; l < b3; l++ {
				for m := 0; m < na; m++ {
					rep[off+l*na+m] += radial[l] * angular[m]
				}
			}
		}
	}
}

//atmWeight returns the Axilrod-Teller-Muto-like weight of the triangle with
//sides a (i-j), b (i-k) and c (j-k): the three-cosine numerator over the
//perimeter product raised to the decay exponent, times the scalar weight.
//It rewards close, near-equilateral triples and damps collinear or
//far-apart ones, mimicking triple-dipole dispersion.
func atmWeight(a, b, c float64, O *Options) float64 {
	cosI := cosAngle(a, b, c)
	cosJ := cosAngle(a, c, b)
	cosK := cosAngle(b, c, a)
	return O.threeBodyWeight * (1 + 3*cosI*cosJ*cosK) * math.Pow(a*b*c, -O.threeBodyDecay)
}

//fchlAngular fills ang with the truncated Fourier angular basis of the FCHL
//variant: one damped (cos,sin) pair per odd order 1,3,5,...
func fchlAngular(ang []float64, theta float64, O *Options) {
	for m := 0; m < O.fourier; m++ {
		o := float64(2*m + 1)
		damp := 2 * math.Exp(-(O.zeta*o)*(O.zeta*o)/2)
		ang[2*m] = damp * math.Cos(o*theta)
		ang[2*m+1] = damp * math.Sin(o*theta)
	}
}

//threeBodyFCHL is the FCHL variant of threeBodyACSF: the angular basis is a
//truncated Fourier expansion and every contribution is scaled by the
//Axilrod-Teller-Muto weight of the full triangle i,j,k.
func threeBodyFCHL(rep []float64, i int, g *distGeom, types []int, O *Options, nelements int) {
	b2 := len(O.rs2)
	b3 := len(O.rs3)
	na := 2 * O.fourier
	base := nelements * b2
	radial := make([]float64, b3)
	angular := make([]float64, na)
	for j := 0; j < g.n; j++ {
		if j == i {
			continue
		}
		rij := g.d.At(i, j)
		if rij >= O.acut {
			continue
		}
		for k := j + 1; k < g.n; k++ {
			if k == i {
				continue
			}
			rik := g.d.At(i, k)
			if rik >= O.acut {
				continue
			}
			rjk := g.d.At(j, k)
			theta := math.Acos(cosAngle(rij, rik, rjk))
			ksi := atmWeight(rij, rik, rjk, O)
			fcc := decay(rij, O.acut) * decay(rik, O.acut)
			mean := 0.5 * (rij + rik)
			for l, rs := range O.rs3 {
				diff := mean - rs
				radial[l] = math.Exp(-O.eta3*diff*diff) * fcc
			}
			fchlAngular(angular, theta, O)
			p, q := types[j], types[k]
			if p > q {
				p, q = q, p
			}
			off := base + pairBlockOffset(p, q, nelements, b3, na)
			for l := 0; l < b3; l++ {
				for m := 0; m < na; m++ {
					rep[off+l*na+m] += ksi * radial[l] * angular[m]
				}
			}
		}
	}
}
