/*
 * geometry.go, part of goacsf
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
	"gonum.org/v1/gonum/mat"
)

//distGeom holds the pairwise distance matrix of a molecule and, for
//gradient-enabled passes, its squared/inverse/inverse-squared caches.
//All matrices are symmetric with a zero diagonal (the inverses too: the
//diagonal is never read, so it is left at zero rather than made infinite).
type distGeom struct {
	n    int
	d    *mat.SymDense
	d2   *mat.SymDense
	inv  *mat.SymDense
	inv2 *mat.SymDense
}

//newDistGeom builds the distance matrix for coord. Only the upper triangle
//is computed; SymDense mirrors it. If caches is true, the squared, inverse
//and inverse-squared matrices are also filled, which pays off in the
//gradient passes where 1/r shows up in every chain-rule factor.
func newDistGeom(coord *v3.Matrix, caches bool) *distGeom {
	n := coord.NVecs()
	g := new(distGeom)
	g.n = n
	g.d = mat.NewSymDense(n, nil)
	if caches {
		g.d2 = mat.NewSymDense(n, nil)
		g.inv = mat.NewSymDense(n, nil)
		g.inv2 = mat.NewSymDense(n, nil)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := coord.At(i, 0) - coord.At(j, 0)
			dy := coord.At(i, 1) - coord.At(j, 1)
			dz := coord.At(i, 2) - coord.At(j, 2)
			r2 := dx*dx + dy*dy + dz*dz
			r := math.Sqrt(r2)
			g.d.SetSym(i, j, r)
			if caches {
				g.d2.SetSym(i, j, r2)
				g.inv.SetSym(i, j, 1/r)
				g.inv2.SetSym(i, j, 1/r2)
			}
		}
	}
	return g
}

//invAt returns 1/distance(i,j), from the cache if present.
func (g *distGeom) invAt(i, j int) float64 {
	if g.inv != nil {
		return g.inv.At(i, j)
	}
	return 1 / g.d.At(i, j)
}

//dir returns the unit vector pointing from atom j to atom i, i.e. the
//derivative of distance(i,j) with respect to the coordinates of atom i.
func dir(coord *v3.Matrix, invr float64, i, j int) [3]float64 {
	var u [3]float64
	for c := 0; c < 3; c++ {
		u[c] = (coord.At(i, c) - coord.At(j, c)) * invr
	}
	return u
}
