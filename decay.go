/*
 * decay.go, part of goacsf
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

//decay is the cosine switching function that takes every contribution
//smoothly to zero at the cutoff sphere: 1 at r=0, 0 at r=cutoff,
//monotonically decreasing in between. Callers must skip r >= cutoff
//themselves; the function does not clip.
func decay(r, cutoff float64) float64 {
	return 0.5 * (math.Cos(math.Pi*r/cutoff) + 1)
}

//decayDer is the derivative of decay with respect to r.
func decayDer(r, cutoff float64) float64 {
	return -0.5 * math.Pi / cutoff * math.Sin(math.Pi*r/cutoff)
}
