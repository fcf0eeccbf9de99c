/*
 * gradient.go, part of goacsf
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

//Gradient holds the derivative of every feature of every atom with respect
//to every atomic coordinate: natoms x repsize x natoms x 3 values, stored
//flat. The tensor is dense: long-range contributions decay to zero but are
//not sparsified.
type Gradient struct {
	data    []float64
	natoms  int
	repsize int
}

func newGradient(natoms, repsize int) *Gradient {
	G := new(Gradient)
	G.natoms = natoms
	G.repsize = repsize
	G.data = make([]float64, natoms*repsize*natoms*3)
	return G
}

//Natoms returns the number of atoms of the molecule the gradient refers to.
func (G *Gradient) Natoms() int { return G.natoms }

//RepSize returns the per-atom representation length the gradient refers to.
func (G *Gradient) RepSize() int { return G.repsize }

//At returns the derivative of the f-th feature of atom i with respect to
//the axis-th Cartesian coordinate of atom p.
func (G *Gradient) At(i, f, p, axis int) float64 {
	if i < 0 || i >= G.natoms || f < 0 || f >= G.repsize || p < 0 || p >= G.natoms || axis < 0 || axis > 2 {
		panic(ErrIndexOutOfRange)
	}
	return G.data[((i*G.repsize+f)*G.natoms+p)*3+axis]
}

//Raw returns the flat backing slice, indexed as ((i*repsize+f)*natoms+p)*3+axis.
//It is a view, not a copy.
func (G *Gradient) Raw() []float64 { return G.data }

//slab returns the part of the tensor holding the derivatives of all of atom
//i's features, as a repsize x natoms x 3 flat slice. Each parallel worker
//gets only the slabs of the atoms it owns, so no two workers ever write to
//the same memory.
func (G *Gradient) slab(i int) []float64 {
	size := G.repsize * G.natoms * 3
	return G.data[i*size : (i+1)*size]
}
