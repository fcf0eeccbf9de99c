/*
 * srf_test.go, part of goacsf
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

package srf

import (
	"fmt"
	"math"
	"os"
	"testing"

	"gonum.org/v1/gonum/mat"
)

//fills a natoms x repsize representation with deterministic junk.
func fakeRep(natoms, repsize int, seed float64) *mat.Dense {
	r := mat.NewDense(natoms, repsize, nil)
	for i := 0; i < natoms; i++ {
		for j := 0; j < repsize; j++ {
			r.Set(i, j, math.Sin(seed+float64(i)*1.7+float64(j)*0.3)*math.Exp(-float64(j)/10))
		}
	}
	return r
}

//Writes two molecules of different sizes, reads them back and checks bit
//equality (the format stores full round-trip precision), for the zstd and
//gzip compressors.
func TestReadWrite(Te *testing.T) {
	const repsize = 7
	for _, name := range []string{"../test/reps.srf", "../test/reps.srz"} {
		mols := []*mat.Dense{fakeRep(3, repsize, 0.1), fakeRep(5, repsize, 2.3)}
		w, err := NewWriter(name, repsize, map[string]string{"basis": "test"})
		if err != nil {
			Te.Fatal(err)
		}
		for _, m := range mols {
			if err := w.WNext(m); err != nil {
				Te.Error(err)
			}
		}
		w.Close()
		r, err := NewReader(name)
		if err != nil {
			Te.Fatal(err)
		}
		if r.RepSize() != repsize {
			Te.Errorf("read repsize %d, want %d", r.RepSize(), repsize)
		}
		if r.Header()["basis"] != "test" {
			Te.Errorf("header not preserved: %v", r.Header())
		}
		for nmol := 0; ; nmol++ {
			got, err := r.Next()
			if err != nil {
				if _, ok := err.(LastMol); ok {
					if nmol != len(mols) {
						Te.Errorf("read %d molecules, want %d", nmol, len(mols))
					}
					break
				}
				Te.Fatal(err)
			}
			natoms, _ := got.Dims()
			wantAtoms, _ := mols[nmol].Dims()
			if natoms != wantAtoms {
				Te.Fatalf("molecule %d read with %d atoms, want %d", nmol, natoms, wantAtoms)
			}
			for i := 0; i < natoms; i++ {
				for j := 0; j < repsize; j++ {
					if got.At(i, j) != mols[nmol].At(i, j) {
						Te.Errorf("molecule %d value (%d,%d) not preserved: %v vs %v",
							nmol, i, j, got.At(i, j), mols[nmol].At(i, j))
					}
				}
			}
		}
		r.Close()
		fmt.Println("roundtrip ok for", name)
		os.Remove(name)
	}
}

func TestWrongSize(Te *testing.T) {
	name := "../test/badsize.srf"
	w, err := NewWriter(name, 4, nil)
	if err != nil {
		Te.Fatal(err)
	}
	defer os.Remove(name)
	defer w.Close()
	if err := w.WNext(fakeRep(2, 5, 0)); err == nil {
		Te.Error("expected an error writing a representation of the wrong size")
	} else {
		fmt.Println(err)
	}
}
