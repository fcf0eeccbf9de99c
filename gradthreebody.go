/*
 * gradthreebody.go, part of goacsf
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

//The 1/sin(theta) factor in the angle derivatives diverges for collinear
//triples, so sin(theta) is floored at this value. The gradient stays finite
//and continuous; the approximation only matters within ~1e-10 rad of
//theta=0 or pi.
const sinFloor = 1e-10

//Everything a three-body gradient pass needs to know about one triangle
//i,j,k with sides a=rij, b=rik, c=rjk. All angle quantities are expressed in
//the three pairwise distances (law of cosines), so every derivative chains
//to coordinates through the unit vector of a single pair and the three
//per-atom contributions of each term cancel exactly.
type triangle struct {
	a, b, c    float64
	cosI       float64 //interior angle at i (the vertex angle of the feature)
	theta      float64
	dthA, dthB, dthC float64 //d(theta)/da, db, dc
}

//lawCosDer returns the partial derivatives of (x²+y²-z²)/(2xy) with respect
//to x, y and z.
func lawCosDer(x, y, z float64) (dx, dy, dz float64) {
	dx = (x*x - y*y + z*z) / (2 * x * x * y)
	dy = (y*y - x*x + z*z) / (2 * x * y * y)
	dz = -z / (x * y)
	return dx, dy, dz
}

func newTriangle(a, b, c float64) *triangle {
	t := new(triangle)
	t.a, t.b, t.c = a, b, c
	t.cosI = cosAngle(a, b, c)
	t.theta = math.Acos(t.cosI)
	sin := math.Sqrt(1 - t.cosI*t.cosI)
	if sin < sinFloor {
		sin = sinFloor
	}
	da, db, dc := lawCosDer(a, b, c)
	t.dthA = -da / sin
	t.dthB = -db / sin
	t.dthC = -dc / sin
	return t
}

//scatter adds one feature's derivative to the slabs of the three
//participating atoms. fa, fb, fc are the partials with respect to the three
//side lengths; uij, uik, ujk the unit vectors of the corresponding pairs
//(pointing to the first-named atom). The contributions of i, j and k sum to
//zero per axis by construction.
func scatter(grad []float64, f, n, i, j, k int, fa, fb, fc float64, uij, uik, ujk [3]float64) {
	for c := 0; c < 3; c++ {
		grad[(f*n+i)*3+c] += fa*uij[c] + fb*uik[c]
		grad[(f*n+j)*3+c] += -fa*uij[c] + fc*ujk[c]
		grad[(f*n+k)*3+c] += -fb*uik[c] - fc*ujk[c]
	}
}

//threeBodyACSFGrad is threeBodyACSF plus the analytic derivative of every
//accumulated feature, written into atom i's gradient slab.
func threeBodyACSFGrad(rep, grad []float64, i int, coord *v3.Matrix, g *distGeom, types []int, O *Options, nelements int) {
	b2 := len(O.rs2)
	b3 := len(O.rs3)
	na := len(O.ts)
	n := g.n
	base := nelements * b2
	radial := make([]float64, b3)
	dradA := make([]float64, b3) //d(radial)/da
	dradB := make([]float64, b3)
	angular := make([]float64, na)
	dang := make([]float64, na) //d(angular)/dtheta
	for j := 0; j < n; j++ {
		if j == i {
			continue
		}
		a := g.d.At(i, j)
		if a >= O.acut {
			continue
		}
		for k := j + 1; k < n; k++ {
			if k == i {
				continue
			}
			b := g.d.At(i, k)
			if b >= O.acut {
				continue
			}
			c := g.d.At(j, k)
			t := newTriangle(a, b, c)
			uij := dir(coord, g.invAt(i, j), i, j)
			uik := dir(coord, g.invAt(i, k), i, k)
			ujk := dir(coord, g.invAt(j, k), j, k)
			fca := decay(a, O.acut)
			fcb := decay(b, O.acut)
			fcda := decayDer(a, O.acut)
			fcdb := decayDer(b, O.acut)
			mean := 0.5 * (a + b)
			for l, rs := range O.rs3 {
				diff := mean - rs
				gauss := math.Exp(-O.eta3 * diff * diff)
				radial[l] = gauss * fca * fcb
				//the Gaussian sees d(mean)/da = 1/2, hence the single eta3 factor
				dradA[l] = -O.eta3*diff*radial[l] + gauss*fcda*fcb
				dradB[l] = -O.eta3*diff*radial[l] + gauss*fca*fcdb
			}
			for m, ts := range O.ts {
				u := (1 + math.Cos(t.theta-ts)) / 2
				angular[m] = 2 * math.Pow(u, O.zeta)
				dang[m] = -O.zeta * math.Pow(u, O.zeta-1) * math.Sin(t.theta-ts)
			}
			p, q := types[j], types[k]
			if p > q {
				p, q = q, p
			}
			off := base + pairBlockOffset(p, q, nelements, b3, na)
			for l := 0; l < b3; l++ {
				for m := 0; m < na; m++ {
					f := off + l*na + m
					rep[f] += radial[l] * angular[m]
					fa := dradA[l]*angular[m] + radial[l]*dang[m]*t.dthA
					fb := dradB[l]*angular[m] + radial[l]*dang[m]*t.dthB
					fc := radial[l] * dang[m] * t.dthC
					scatter(grad, f, n, i, j, k, fa, fb, fc, uij, uik, ujk)
				}
			}
		}
	}
}

//threeBodyFCHLGrad is threeBodyFCHL plus its analytic derivative. On top of
//the radial and angular chain-rule terms, the Axilrod-Teller-Muto weight
//contributes a product-rule term through all three side lengths: the three
//interior cosines and the perimeter-product power law.
func threeBodyFCHLGrad(rep, grad []float64, i int, coord *v3.Matrix, g *distGeom, types []int, O *Options, nelements int) {
	b2 := len(O.rs2)
	b3 := len(O.rs3)
	na := 2 * O.fourier
	n := g.n
	base := nelements * b2
	radial := make([]float64, b3)
	dradA := make([]float64, b3)
	dradB := make([]float64, b3)
	angular := make([]float64, na)
	dang := make([]float64, na)
	for j := 0; j < n; j++ {
		if j == i {
			continue
		}
		a := g.d.At(i, j)
		if a >= O.acut {
			continue
		}
		for k := j + 1; k < n; k++ {
			if k == i {
				continue
			}
			b := g.d.At(i, k)
			if b >= O.acut {
				continue
			}
			c := g.d.At(j, k)
			t := newTriangle(a, b, c)
			uij := dir(coord, g.invAt(i, j), i, j)
			uik := dir(coord, g.invAt(i, k), i, k)
			ujk := dir(coord, g.invAt(j, k), j, k)
			//the ATM weight and its partials with respect to the sides
			cosJ := cosAngle(a, c, b)
			cosK := cosAngle(b, c, a)
			dIa, dIb, dIc := lawCosDer(a, b, c)
			dJa, dJc, dJb := lawCosDer(a, c, b)
			dKb, dKc, dKa := lawCosDer(b, c, a)
			prod := t.cosI * cosJ * cosK
			dPa := dIa*cosJ*cosK + t.cosI*dJa*cosK + t.cosI*cosJ*dKa
			dPb := dIb*cosJ*cosK + t.cosI*dJb*cosK + t.cosI*cosJ*dKb
			dPc := dIc*cosJ*cosK + t.cosI*dJc*cosK + t.cosI*cosJ*dKc
			pw := math.Pow(a*b*c, -O.threeBodyDecay)
			ksi := O.threeBodyWeight * (1 + 3*prod) * pw
			dksiA := O.threeBodyWeight * pw * (3*dPa - O.threeBodyDecay*(1+3*prod)/a)
			dksiB := O.threeBodyWeight * pw * (3*dPb - O.threeBodyDecay*(1+3*prod)/b)
			dksiC := O.threeBodyWeight * pw * (3*dPc - O.threeBodyDecay*(1+3*prod)/c)
			fca := decay(a, O.acut)
			fcb := decay(b, O.acut)
			fcda := decayDer(a, O.acut)
			fcdb := decayDer(b, O.acut)
			mean := 0.5 * (a + b)
			for l, rs := range O.rs3 {
				diff := mean - rs
				gauss := math.Exp(-O.eta3 * diff * diff)
				radial[l] = gauss * fca * fcb
				dradA[l] = -O.eta3*diff*radial[l] + gauss*fcda*fcb
				dradB[l] = -O.eta3*diff*radial[l] + gauss*fca*fcdb
			}
			for m := 0; m < O.fourier; m++ {
				o := float64(2*m + 1)
				damp := 2 * math.Exp(-(O.zeta*o)*(O.zeta*o)/2)
				angular[2*m] = damp * math.Cos(o*t.theta)
				angular[2*m+1] = damp * math.Sin(o*t.theta)
				dang[2*m] = -damp * o * math.Sin(o*t.theta)
				dang[2*m+1] = damp * o * math.Cos(o*t.theta)
			}
			p, q := types[j], types[k]
			if p > q {
				p, q = q, p
			}
			off := base + pairBlockOffset(p, q, nelements, b3, na)
			for l := 0; l < b3; l++ {
				for m := 0; m < na; m++ {
					f := off + l*na + m
					rep[f] += ksi * radial[l] * angular[m]
					fa := dksiA*radial[l]*angular[m] + ksi*(dradA[l]*angular[m]+radial[l]*dang[m]*t.dthA)
					fb := dksiB*radial[l]*angular[m] + ksi*(dradB[l]*angular[m]+radial[l]*dang[m]*t.dthB)
					fc := dksiC*radial[l]*angular[m] + ksi*radial[l]*dang[m]*t.dthC
					scatter(grad, f, n, i, j, k, fa, fb, fc, uij, uik, ujk)
				}
			}
		}
	}
}
