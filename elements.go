/*
 * elements.go, part of goacsf
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
)

//A map for assigning atomic numbers to element symbols.
//Note that just common "bio-elements" are present.
var symbolZ = map[string]int{
	"H":  1,
	"Be": 4,
	"C":  6,
	"N":  7,
	"O":  8,
	"F":  9,
	"Na": 11,
	"Mg": 12,
	"Si": 14,
	"P":  15,
	"S":  16,
	"Cl": 17,
	"K":  19,
	"Ca": 20,
	"Cr": 24,
	"Mn": 25,
	"Fe": 26,
	"Co": 27,
	"Cu": 29,
	"Zn": 30,
	"Se": 34,
	"Br": 35,
	"I":  53,
}

//ElementsFromCharges returns the distinct nuclear charges in charges, in
//first-seen order. It is a convenience for callers that do not curate an
//element table by hand. Note that the order of the table determines the
//layout of the representation, so use the same table for every molecule
//in a dataset.
func ElementsFromCharges(charges []int) []int {
	var ret []int
	for _, z := range charges {
		found := false
		for _, e := range ret {
			if e == z {
				found = true
				break
			}
		}
		if !found {
			ret = append(ret, z)
		}
	}
	return ret
}

//ChargesFromAtomer extracts the nuclear charge of each atom in mol from its
//element symbol. It returns an error if any atom has a symbol that is not in
//the (admittedly incomplete) internal table.
func ChargesFromAtomer(mol chem.Atomer) ([]int, error) {
	ret := make([]int, mol.Len())
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		z, ok := symbolZ[at.Symbol]
		if !ok {
			return nil, CError{fmt.Sprintf("Unknown element symbol %q for atom %d", at.Symbol, i), []string{"ChargesFromAtomer"}, true}
		}
		ret[i] = z
	}
	return ret, nil
}

//elementIndices maps each atom's nuclear charge to its (zero-based) index in
//the element table. A charge absent from the table is a configuration error:
//it would leave the atom without a feature block, so we refuse to proceed
//rather than produce a silently wrong representation.
func elementIndices(charges, elements []int) ([]int, error) {
	ret := make([]int, len(charges))
	for i, z := range charges {
		found := false
		for j, e := range elements {
			if e == z {
				ret[i] = j
				found = true
				break
			}
		}
		if !found {
			return nil, CError{fmt.Sprintf("Charge %d of atom %d not in the element table %v", z, i, elements), []string{"elementIndices"}, true}
		}
	}
	return ret, nil
}
