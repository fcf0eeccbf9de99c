/*
 * geometry_test.go, part of goacsf
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
	"testing"
)

func TestDistGeom(Te *testing.T) {
	coord, _, _ := testMol(Te)
	g := newDistGeom(coord, true)
	n := coord.NVecs()
	for i := 0; i < n; i++ {
		if g.d.At(i, i) != 0 {
			Te.Errorf("distance(%d,%d) should be exactly zero", i, i)
		}
		for j := 0; j < n; j++ {
			if g.d.At(i, j) != g.d.At(j, i) {
				Te.Errorf("distance matrix not symmetric at (%d,%d)", i, j)
			}
			if i == j {
				continue
			}
			r := g.d.At(i, j)
			if r <= 0 {
				Te.Errorf("non-positive distance %v at (%d,%d)", r, i, j)
			}
			if math.Abs(g.d2.At(i, j)-r*r) > 1e-12 {
				Te.Errorf("squared-distance cache inconsistent at (%d,%d)", i, j)
			}
			if math.Abs(g.inv.At(i, j)*r-1) > 1e-12 {
				Te.Errorf("inverse-distance cache inconsistent at (%d,%d)", i, j)
			}
			if math.Abs(g.inv2.At(i, j)*r*r-1) > 1e-12 {
				Te.Errorf("inverse-squared cache inconsistent at (%d,%d)", i, j)
			}
		}
	}
}

func TestDir(Te *testing.T) {
	coord, _, _ := testMol(Te)
	g := newDistGeom(coord, false)
	u := dir(coord, g.invAt(0, 1), 0, 1)
	norm := math.Sqrt(u[0]*u[0] + u[1]*u[1] + u[2]*u[2])
	if math.Abs(norm-1) > 1e-12 {
		Te.Errorf("unit vector has norm %v", norm)
	}
	//dir(i,j) must point from j to i
	if (coord.At(0, 2)-coord.At(1, 2))*u[2] < 0 {
		Te.Error("unit vector points the wrong way")
	}
}

func TestCosAngleClipping(Te *testing.T) {
	//a degenerate triangle (collinear): cos must clip to exactly -1/1,
	//never beyond, even with round-off in the law of cosines.
	if c := cosAngle(1.0, 2.0, 3.0); c != -1 {
		Te.Errorf("collinear (far side) cosine: got %v, want -1", c)
	}
	if c := cosAngle(1.0, 3.0, 2.0); c != 1 {
		Te.Errorf("collinear (near side) cosine: got %v, want 1", c)
	}
	if c := cosAngle(1, 1, math.Sqrt2); math.Abs(c) > 1e-12 {
		Te.Errorf("right angle cosine: got %v, want 0", c)
	}
}
