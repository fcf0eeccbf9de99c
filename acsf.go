/*
 * acsf.go, part of goacsf
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
	"fmt"

	chem "github.com/rmera/gochem"
	v3 "github.com/rmera/gochem/v3"
	"gonum.org/v1/gonum/mat"
)

//ACSF computes the atom-centered symmetry function representation of the
//molecule with the given coordinates and nuclear charges: one row of
//RepSize(len(elements),O) features per atom, the two-body (radial) blocks
//first, then one three-body (angular) block per unordered element pair.
//elements is the table of nuclear charges the feature layout is built on;
//every charge in charges must appear in it. If elements is nil, the distinct
//charges of the molecule are used, but note that a table fixed across a whole
//dataset is needed for the rows of different molecules to be comparable.
//If no Options are given, DefaultACSFOptions() is used.
func ACSF(coord *v3.Matrix, charges, elements []int, opts ...*Options) (*mat.Dense, error) {
	O := DefaultACSFOptions()
	if len(opts) > 0 && opts[0] != nil {
		O = opts[0]
	}
	rep, _, err := generate(coord, charges, elements, O, false, false)
	if err != nil {
		return nil, errDecorate(err, "ACSF")
	}
	return rep, nil
}

//ACSFGradient computes the same representation as ACSF plus the analytic
//derivative of every feature of every atom with respect to every atomic
//coordinate.
func ACSFGradient(coord *v3.Matrix, charges, elements []int, opts ...*Options) (*mat.Dense, *Gradient, error) {
	O := DefaultACSFOptions()
	if len(opts) > 0 && opts[0] != nil {
		O = opts[0]
	}
	rep, grad, err := generate(coord, charges, elements, O, false, true)
	if err != nil {
		return nil, nil, errDecorate(err, "ACSFGradient")
	}
	return rep, grad, nil
}

//FCHL computes the FCHL variant of the representation: log-normal two-body
//radial kernels with a power-law long-range decay, and Fourier three-body
//angular kernels weighted by an Axilrod-Teller-Muto term.
//If no Options are given, DefaultFCHLOptions() is used.
func FCHL(coord *v3.Matrix, charges, elements []int, opts ...*Options) (*mat.Dense, error) {
	O := DefaultFCHLOptions()
	if len(opts) > 0 && opts[0] != nil {
		O = opts[0]
	}
	rep, _, err := generate(coord, charges, elements, O, true, false)
	if err != nil {
		return nil, errDecorate(err, "FCHL")
	}
	return rep, nil
}

//FCHLGradient computes the same representation as FCHL plus its analytic
//gradient.
func FCHLGradient(coord *v3.Matrix, charges, elements []int, opts ...*Options) (*mat.Dense, *Gradient, error) {
	O := DefaultFCHLOptions()
	if len(opts) > 0 && opts[0] != nil {
		O = opts[0]
	}
	rep, grad, err := generate(coord, charges, elements, O, true, true)
	if err != nil {
		return nil, nil, errDecorate(err, "FCHLGradient")
	}
	return rep, grad, nil
}

//MolACSF is a convenience wrapper for ACSF that takes the nuclear charges
//from the element symbols of a goChem Atomer.
func MolACSF(mol chem.Atomer, coord *v3.Matrix, elements []int, opts ...*Options) (*mat.Dense, error) {
	charges, err := ChargesFromAtomer(mol)
	if err != nil {
		return nil, errDecorate(err, "MolACSF")
	}
	return ACSF(coord, charges, elements, opts...)
}

//MolFCHL is a convenience wrapper for FCHL that takes the nuclear charges
//from the element symbols of a goChem Atomer.
func MolFCHL(mol chem.Atomer, coord *v3.Matrix, elements []int, opts ...*Options) (*mat.Dense, error) {
	charges, err := ChargesFromAtomer(mol)
	if err != nil {
		return nil, errDecorate(err, "MolFCHL")
	}
	return FCHL(coord, charges, elements, opts...)
}

//generate is the single driver behind the four public entry points. It
//checks the caller contract, builds the element map and distance geometry
//once, and then hands each atom's representation row (and gradient slab) to
//exactly one worker goroutine, so the workers share only read-only data.
func generate(coord *v3.Matrix, charges, elements []int, O *Options, fchl, wantgrad bool) (*mat.Dense, *Gradient, error) {
	if coord == nil {
		return nil, nil, CError{"Given nil coordinates", []string{"generate"}, true}
	}
	natoms := coord.NVecs()
	if natoms != len(charges) {
		return nil, nil, CError{fmt.Sprintf("Got %d coordinates but %d charges", natoms, len(charges)), []string{"generate"}, true}
	}
	if elements == nil {
		elements = ElementsFromCharges(charges)
	}
	types, err := elementIndices(charges, elements)
	if err != nil {
		return nil, nil, errDecorate(err, "generate")
	}
	repsize := RepSize(len(elements), O)
	rep := mat.NewDense(natoms, repsize, nil)
	var grad *Gradient
	if wantgrad {
		grad = newGradient(natoms, repsize)
	}
	g := newDistGeom(coord, wantgrad)
	cpus := O.cpus
	if cpus < 1 {
		cpus = 1
	}
	if cpus > natoms {
		cpus = natoms
	}
	done := make(chan bool, cpus)
	for w := 0; w < cpus; w++ {
		go repWorker(w, cpus, rep, grad, coord, g, types, elements, O, fchl, done)
	}
	for w := 0; w < cpus; w++ {
		<-done
	}
	return rep, grad, nil
}

//repWorker fills the representation rows (and gradient slabs) of the atoms
//w, w+stride, w+2*stride... Strided ownership balances the load reasonably
//well when neighbor counts vary along the molecule, without any shared
//mutable state between workers.
func repWorker(w, stride int, rep *mat.Dense, grad *Gradient, coord *v3.Matrix, g *distGeom, types, elements []int, O *Options, fchl bool, done chan bool) {
	nelements := len(elements)
	for i := w; i < g.n; i += stride {
		row := rep.RawRowView(i)
		switch {
		case grad == nil && fchl:
			twoBodyFCHL(row, i, g, types, O)
			threeBodyFCHL(row, i, g, types, O, nelements)
		case grad == nil:
			twoBodyACSF(row, i, g, types, O)
			threeBodyACSF(row, i, g, types, O, nelements)
		case fchl:
			slab := grad.slab(i)
			twoBodyFCHLGrad(row, slab, i, coord, g, types, O)
			threeBodyFCHLGrad(row, slab, i, coord, g, types, O, nelements)
		default:
			slab := grad.slab(i)
			twoBodyACSFGrad(row, slab, i, coord, g, types, O)
			threeBodyACSFGrad(row, slab, i, coord, g, types, O, nelements)
		}
	}
	done <- true
}
