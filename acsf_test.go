/*
 * acsf_test.go, part of goacsf
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
	"math"
	"testing"

	v3 "github.com/rmera/gochem/v3"
)

//A slightly distorted formaldehyde-like molecule. The distortion breaks all
//symmetry so no gradient component is accidentally zero.
func testMol(Te *testing.T) (*v3.Matrix, []int, []int) {
	coord, err := v3.NewMatrix([]float64{
		0.00, 0.00, 0.00,
		0.03, -0.02, 1.22,
		0.94, 0.05, -0.54,
		-0.91, 0.10, -0.56,
	})
	if err != nil {
		Te.Fatal(err)
	}
	charges := []int{6, 8, 1, 1}
	elements := []int{1, 6, 8}
	return coord, charges, elements
}

//small FCHL options so the finite-difference test doesn't crawl.
func smallFCHLOptions() *Options {
	O := DefaultFCHLOptions()
	O.Rs2([]float64{1.0, 3.0, 6.0})
	O.Rs3([]float64{1.5, 4.0, 7.0})
	return O
}

func TestRepSize(Te *testing.T) {
	O := DefaultACSFOptions() //B2=3, B3=3, A=3
	if r := RepSize(3, O); r != 3*3+6*3*3 {
		Te.Errorf("ACSF repsize for 3 elements: got %d, want %d", r, 3*3+6*3*3)
	}
	F := DefaultFCHLOptions() //B2=24, B3=20, A=2
	if r := RepSize(2, F); r != 2*24+3*20*2 {
		Te.Errorf("FCHL repsize for 2 elements: got %d, want %d", r, 2*24+3*20*2)
	}
}

func TestDecay(Te *testing.T) {
	const rc = 5.0
	if d := decay(0, rc); math.Abs(d-1) > 1e-15 {
		Te.Errorf("decay(0)=%v, want 1", d)
	}
	if d := decay(rc, rc); math.Abs(d) > 1e-15 {
		Te.Errorf("decay(rc)=%v, want 0", d)
	}
	prev := 1.1
	for i := 0; i <= 100; i++ {
		d := decay(rc*float64(i)/100, rc)
		if d > prev {
			Te.Errorf("decay not monotonically non-increasing at step %d", i)
		}
		prev = d
	}
}

func TestPairBlockOffset(Te *testing.T) {
	const nelements, b3, a = 4, 2, 3
	npairs := nelements * (nelements + 1) / 2
	seen := make(map[int]bool)
	for p := 0; p < nelements; p++ {
		for q := p; q < nelements; q++ {
			off := pairBlockOffset(p, q, nelements, b3, a)
			if off%(b3*a) != 0 {
				Te.Errorf("offset %d of pair (%d,%d) not a multiple of the block size", off, p, q)
			}
			if seen[off] {
				Te.Errorf("offset %d assigned to more than one pair", off)
			}
			seen[off] = true
			if off < 0 || off >= npairs*b3*a {
				Te.Errorf("offset %d of pair (%d,%d) out of range", off, p, q)
			}
		}
	}
	if len(seen) != npairs {
		Te.Errorf("got %d distinct blocks, want %d", len(seen), npairs)
	}
}

//Two atoms of the same element at 1 A, a single radial center at 1.0:
//both atoms get exactly decay(1,5) in their only two-body slot, and the
//three-body segment stays zero.
func TestTwoAtoms(Te *testing.T) {
	coord, err := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	O := DefaultACSFOptions()
	O.Rs2([]float64{1.0})
	O.Rs3([]float64{1.0})
	O.Ts([]float64{0})
	rep, err := ACSF(coord, []int{1, 1}, []int{1}, O)
	if err != nil {
		Te.Fatal(err)
	}
	want := decay(1.0, O.Rcut())
	for i := 0; i < 2; i++ {
		if got := rep.At(i, 0); math.Abs(got-want) > 1e-12 {
			Te.Errorf("atom %d two-body slot: got %v, want %v", i, got, want)
		}
		if got := rep.At(i, 1); got != 0 {
			Te.Errorf("atom %d three-body slot: got %v, want 0 with no third atom", i, got)
		}
	}
	fmt.Println("two-atom feature:", rep.At(0, 0))
}

func TestSingleAtom(Te *testing.T) {
	coord, err := v3.NewMatrix([]float64{0.5, -0.3, 1.0})
	if err != nil {
		Te.Fatal(err)
	}
	for _, O := range []*Options{DefaultACSFOptions(), smallFCHLOptions()} {
		gen := ACSFGradient
		if O.FCHL() {
			gen = FCHLGradient
		}
		rep, grad, err := gen(coord, []int{8}, []int{8}, O)
		if err != nil {
			Te.Fatal(err)
		}
		for f := 0; f < RepSize(1, O); f++ {
			if rep.At(0, f) != 0 {
				Te.Errorf("isolated atom has nonzero feature %d", f)
			}
		}
		for _, v := range grad.Raw() {
			if v != 0 {
				Te.Error("isolated atom has a nonzero gradient entry")
				break
			}
		}
	}
}

//Exactly collinear triples hit the sin(theta) floor; nothing may turn NaN
//or infinite.
func TestCollinear(Te *testing.T) {
	coord, err := v3.NewMatrix([]float64{0, 0, 0, 0, 0, 1, 0, 0, 2})
	if err != nil {
		Te.Fatal(err)
	}
	charges := []int{6, 6, 6}
	for _, O := range []*Options{DefaultACSFOptions(), smallFCHLOptions()} {
		var grad *Gradient
		var err error
		if O.FCHL() {
			_, grad, err = FCHLGradient(coord, charges, nil, O)
		} else {
			_, grad, err = ACSFGradient(coord, charges, nil, O)
		}
		if err != nil {
			Te.Fatal(err)
		}
		for _, v := range grad.Raw() {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				Te.Fatal("collinear triple produced a non-finite gradient entry")
			}
		}
	}
}

func TestTranslationInvariance(Te *testing.T) {
	coord, charges, elements := testMol(Te)
	moved := v3.Zeros(coord.NVecs())
	for i := 0; i < coord.NVecs(); i++ {
		moved.Set(i, 0, coord.At(i, 0)+1.3)
		moved.Set(i, 1, coord.At(i, 1)-0.7)
		moved.Set(i, 2, coord.At(i, 2)+2.1)
	}
	for _, O := range []*Options{DefaultACSFOptions(), smallFCHLOptions()} {
		gen := ACSFGradient
		if O.FCHL() {
			gen = FCHLGradient
		}
		rep1, grad1, err := gen(coord, charges, elements, O)
		if err != nil {
			Te.Fatal(err)
		}
		rep2, grad2, err := gen(moved, charges, elements, O)
		if err != nil {
			Te.Fatal(err)
		}
		for i := 0; i < coord.NVecs(); i++ {
			for f := 0; f < RepSize(len(elements), O); f++ {
				if d := math.Abs(rep1.At(i, f) - rep2.At(i, f)); d > 1e-8 {
					Te.Errorf("feature (%d,%d) changed by %v under translation", i, f, d)
				}
			}
		}
		r1, r2 := grad1.Raw(), grad2.Raw()
		for n := range r1 {
			if d := math.Abs(r1[n] - r2[n]); d > 1e-8 {
				Te.Errorf("gradient entry %d changed by %v under translation", n, d)
				break
			}
		}
	}
}

func TestRotationInvariance(Te *testing.T) {
	coord, charges, elements := testMol(Te)
	//Rz(0.4)·Ry(1.1), applied by hand
	ca, sa := math.Cos(0.4), math.Sin(0.4)
	cb, sb := math.Cos(1.1), math.Sin(1.1)
	rot := [3][3]float64{
		{ca * cb, -sa, ca * sb},
		{sa * cb, ca, sa * sb},
		{-sb, 0, cb},
	}
	moved := v3.Zeros(coord.NVecs())
	for i := 0; i < coord.NVecs(); i++ {
		for r := 0; r < 3; r++ {
			v := 0.0
			for c := 0; c < 3; c++ {
				v += rot[r][c] * coord.At(i, c)
			}
			moved.Set(i, r, v)
		}
	}
	for _, O := range []*Options{DefaultACSFOptions(), smallFCHLOptions()} {
		gen := ACSF
		if O.FCHL() {
			gen = FCHL
		}
		rep1, err := gen(coord, charges, elements, O)
		if err != nil {
			Te.Fatal(err)
		}
		rep2, err := gen(moved, charges, elements, O)
		if err != nil {
			Te.Fatal(err)
		}
		for i := 0; i < coord.NVecs(); i++ {
			for f := 0; f < RepSize(len(elements), O); f++ {
				if d := math.Abs(rep1.At(i, f) - rep2.At(i, f)); d > 1e-8 {
					Te.Errorf("feature (%d,%d) changed by %v under rotation", i, f, d)
				}
			}
		}
	}
}

//Every interaction distributes its derivative among its 2 or 3 participants
//with contributions that cancel, so each feature's gradient must sum to zero
//over the perturbed-atom index.
func TestGradientSumZero(Te *testing.T) {
	coord, charges, elements := testMol(Te)
	for _, O := range []*Options{DefaultACSFOptions(), smallFCHLOptions()} {
		gen := ACSFGradient
		if O.FCHL() {
			gen = FCHLGradient
		}
		_, grad, err := gen(coord, charges, elements, O)
		if err != nil {
			Te.Fatal(err)
		}
		n := grad.Natoms()
		for i := 0; i < n; i++ {
			for f := 0; f < grad.RepSize(); f++ {
				for c := 0; c < 3; c++ {
					sum := 0.0
					for p := 0; p < n; p++ {
						sum += grad.At(i, f, p, c)
					}
					if math.Abs(sum) > 1e-9 {
						Te.Errorf("gradient of feature (%d,%d) axis %d sums to %v over atoms", i, f, c, sum)
					}
				}
			}
		}
	}
}

//The analytic gradient against central finite differences, for both
//variants, every atom, every axis.
func TestGradientFiniteDiff(Te *testing.T) {
	coord, charges, elements := testMol(Te)
	const h = 1e-5
	for _, O := range []*Options{DefaultACSFOptions(), smallFCHLOptions()} {
		grepf := ACSFGradient
		repf := ACSF
		if O.FCHL() {
			grepf = FCHLGradient
			repf = FCHL
		}
		_, grad, err := grepf(coord, charges, elements, O)
		if err != nil {
			Te.Fatal(err)
		}
		natoms := coord.NVecs()
		repsize := RepSize(len(elements), O)
		worst := 0.0
		for p := 0; p < natoms; p++ {
			for c := 0; c < 3; c++ {
				plus := v3.Zeros(natoms)
				minus := v3.Zeros(natoms)
				plus.Copy(coord)
				minus.Copy(coord)
				plus.Set(p, c, coord.At(p, c)+h)
				minus.Set(p, c, coord.At(p, c)-h)
				repPlus, err := repf(plus, charges, elements, O)
				if err != nil {
					Te.Fatal(err)
				}
				repMinus, err := repf(minus, charges, elements, O)
				if err != nil {
					Te.Fatal(err)
				}
				for i := 0; i < natoms; i++ {
					for f := 0; f < repsize; f++ {
						num := (repPlus.At(i, f) - repMinus.At(i, f)) / (2 * h)
						ana := grad.At(i, f, p, c)
						diff := math.Abs(num - ana)
						if diff > worst {
							worst = diff
						}
						if diff > 1e-6*(1+math.Abs(ana)) {
							Te.Errorf("d rep[%d][%d] / d x[%d][%d]: analytic %v vs numeric %v", i, f, p, c, ana, num)
						}
					}
				}
			}
		}
		fmt.Println("worst finite-difference deviation:", worst, "fchl:", O.FCHL())
	}
}

func TestNatomsMismatch(Te *testing.T) {
	coord, err := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	_, err = ACSF(coord, []int{1}, []int{1})
	if err == nil {
		Te.Error("expected an error for 2 coordinates with 1 charge")
	}
	if err2, ok := err.(Error); !ok || !err2.Critical() {
		Te.Error("the charge-count error should be a critical acsf.Error")
	}
	fmt.Println(err)
}

func TestUnmappedElement(Te *testing.T) {
	coord, err := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	_, err = ACSF(coord, []int{1, 6}, []int{1})
	if err == nil {
		Te.Error("expected an error for a charge absent from the element table")
	}
	fmt.Println(err)
}

//The FCHL log-normal kernel should peak at the basis center closest to the
//actual pair distance.
func TestFCHLRadialPeak(Te *testing.T) {
	coord, err := v3.NewMatrix([]float64{0, 0, 0, 1.5, 0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	O := DefaultFCHLOptions()
	rep, err := FCHL(coord, []int{6, 6}, []int{6}, O)
	if err != nil {
		Te.Fatal(err)
	}
	rs2 := O.Rs2()
	best := 0
	for k := range rs2 {
		if rep.At(0, k) > rep.At(0, best) {
			best = k
		}
	}
	closest := 0
	for k := range rs2 {
		if math.Abs(rs2[k]-1.5) < math.Abs(rs2[closest]-1.5) {
			closest = k
		}
	}
	//the log-normal is skewed, so allow the peak to land one center off
	if d := best - closest; d < -1 || d > 1 {
		Te.Errorf("radial peak at center %d (Rs=%4.2f), expected near center %d (Rs=%4.2f)",
			best, rs2[best], closest, rs2[closest])
	}
}

func TestOptionsSetters(Te *testing.T) {
	O := DefaultACSFOptions()
	if O.Cpus(3); O.Cpus() != 3 {
		Te.Error("Cpus not set")
	}
	if O.Eta2(0.5); O.Eta2() != 0.5 {
		Te.Error("Eta2 not set")
	}
	if O.Rcut(6.5); O.Rcut() != 6.5 {
		Te.Error("Rcut not set")
	}
	if O.Rs2([]float64{1, 2}); len(O.Rs2()) != 2 {
		Te.Error("Rs2 not set")
	}
	//invalid values are ignored
	if O.Eta2(-1); O.Eta2() != 0.5 {
		Te.Error("negative Eta2 should have been ignored")
	}
	F := DefaultFCHLOptions()
	if !F.FCHL() || O.FCHL() {
		Te.Error("variant flags wrong")
	}
	if F.Fourier(2); RepSize(1, F) != 24+1*20*4 {
		Te.Errorf("FCHL repsize after Fourier(2): got %d", RepSize(1, F))
	}
}

func TestElementsFromCharges(Te *testing.T) {
	got := ElementsFromCharges([]int{1, 6, 1, 8, 6, 1})
	want := []int{1, 6, 8}
	if len(got) != len(want) {
		Te.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			Te.Errorf("got %v, want %v", got, want)
		}
	}
}
