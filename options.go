/*
 * options.go, part of goacsf
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
	"runtime"

	"gonum.org/v1/gonum/floats"
)

//Options contains the basis set and cutoff settings for the representation
//generators. Use DefaultACSFOptions or DefaultFCHLOptions to obtain one with
//the usual values, then adjust with the setter methods if needed.
type Options struct {
	rs2  []float64 //two-body radial basis centers
	rs3  []float64 //three-body radial basis centers
	ts   []float64 //three-body angular basis centers (ACSF only)
	eta2 float64
	eta3 float64
	zeta float64
	rcut float64 //two-body cutoff
	acut float64 //three-body cutoff
	//The following are only used by the FCHL variant
	fourier         int //number of (cos,sin) pairs in the Fourier angular basis
	twoBodyDecay    float64
	threeBodyDecay  float64
	threeBodyWeight float64
	fchl            bool
	cpus            int
}

//DefaultACSFOptions returns options for the plain ACSF representation:
//3 radial two-body centers, 3 radial three-body centers and 3 angular centers,
//with 5 A cutoffs.
func DefaultACSFOptions() *Options {
	r := new(Options)
	r.rcut = 5.0
	r.acut = 5.0
	r.rs2 = basisCenters(3, r.rcut)
	r.rs3 = basisCenters(3, r.acut)
	r.ts = make([]float64, 3)
	floats.Span(r.ts, 0, math.Pi)
	r.eta2 = 1.0
	r.eta3 = 1.0
	r.zeta = 1.0
	r.fourier = 1
	r.cpus = runtime.NumCPU()
	return r
}

//DefaultFCHLOptions returns options for the FCHL variant of the representation,
//with the values used in the original publication: 24 two-body and 20 three-body
//radial centers, one Fourier pair, and 8 A cutoffs. The sqrt(eta3/pi) normalization
//of the three-body weight is folded into the stored scalar.
func DefaultFCHLOptions() *Options {
	r := new(Options)
	r.rcut = 8.0
	r.acut = 8.0
	r.rs2 = basisCenters(24, r.rcut)
	r.rs3 = basisCenters(20, r.acut)
	r.eta2 = 0.32
	r.eta3 = 2.7
	r.zeta = math.Pi
	r.fourier = 1
	r.twoBodyDecay = 1.8
	r.threeBodyDecay = 0.57
	r.threeBodyWeight = math.Sqrt(r.eta3/math.Pi) * 13.4
	r.fchl = true
	r.cpus = runtime.NumCPU()
	return r
}

//basisCenters returns n centers evenly spaced in (0,cutoff], i.e. the
//cutoff-inclusive linspace with the zero dropped.
func basisCenters(n int, cutoff float64) []float64 {
	s := make([]float64, n+1)
	floats.Span(s, 0, cutoff)
	return s[1:]
}

//Rs2 returns the two-body radial basis centers,
//and sets them to a new value, if given.
func (O *Options) Rs2(rs ...[]float64) []float64 {
	if len(rs) > 0 && rs[0] != nil {
		O.rs2 = rs[0]
	}
	return O.rs2
}

//Rs3 returns the three-body radial basis centers,
//and sets them to a new value, if given.
func (O *Options) Rs3(rs ...[]float64) []float64 {
	if len(rs) > 0 && rs[0] != nil {
		O.rs3 = rs[0]
	}
	return O.rs3
}

//Ts returns the angular basis centers used by the plain ACSF variant,
//and sets them to a new value, if given.
func (O *Options) Ts(ts ...[]float64) []float64 {
	if len(ts) > 0 && ts[0] != nil {
		O.ts = ts[0]
	}
	return O.ts
}

//Eta2 returns the two-body basis width, and sets it to a new value, if given.
func (O *Options) Eta2(eta ...float64) float64 {
	if len(eta) > 0 && eta[0] > 0 {
		O.eta2 = eta[0]
	}
	return O.eta2
}

//Eta3 returns the three-body basis width, and sets it to a new value, if given.
func (O *Options) Eta3(eta ...float64) float64 {
	if len(eta) > 0 && eta[0] > 0 {
		O.eta3 = eta[0]
	}
	return O.eta3
}

//Zeta returns the angular sharpness (ACSF) or Fourier damping (FCHL),
//and sets it to a new value, if given.
func (O *Options) Zeta(z ...float64) float64 {
	if len(z) > 0 && z[0] > 0 {
		O.zeta = z[0]
	}
	return O.zeta
}

//Rcut returns the two-body cutoff radius, and sets it to a new value, if given.
//Note that the basis centers are not rescaled when the cutoff changes.
func (O *Options) Rcut(rc ...float64) float64 {
	if len(rc) > 0 && rc[0] > 0 {
		O.rcut = rc[0]
	}
	return O.rcut
}

//Acut returns the three-body cutoff radius, and sets it to a new value, if given.
func (O *Options) Acut(ac ...float64) float64 {
	if len(ac) > 0 && ac[0] > 0 {
		O.acut = ac[0]
	}
	return O.acut
}

//Fourier returns the number of (cos,sin) pairs in the FCHL angular basis,
//and sets it to a new value, if given.
func (O *Options) Fourier(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.fourier = n[0]
	}
	return O.fourier
}

//TwoBodyDecay returns the FCHL two-body power-law exponent,
//and sets it to a new value, if given.
func (O *Options) TwoBodyDecay(d ...float64) float64 {
	if len(d) > 0 && d[0] > 0 {
		O.twoBodyDecay = d[0]
	}
	return O.twoBodyDecay
}

//ThreeBodyDecay returns the FCHL three-body power-law exponent,
//and sets it to a new value, if given.
func (O *Options) ThreeBodyDecay(d ...float64) float64 {
	if len(d) > 0 && d[0] > 0 {
		O.threeBodyDecay = d[0]
	}
	return O.threeBodyDecay
}

//ThreeBodyWeight returns the scalar weight of the FCHL Axilrod-Teller-Muto
//term, and sets it to a new value, if given. The value is used as given,
//so any normalization has to be folded in by the caller.
func (O *Options) ThreeBodyWeight(w ...float64) float64 {
	if len(w) > 0 && w[0] >= 0 {
		O.threeBodyWeight = w[0]
	}
	return O.threeBodyWeight
}

//Cpus returns the number of goroutines used for the generation,
//and sets it to a new value, if given.
func (O *Options) Cpus(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.cpus = n[0]
	}
	return O.cpus
}

//FCHL returns whether the options were built for the FCHL variant of the
//representation. The variant is fixed by the constructor used.
func (O *Options) FCHL() bool { return O.fchl }

//nangular returns the length of the angular basis block.
func (O *Options) nangular() int {
	if O.fchl {
		return 2 * O.fourier
	}
	return len(O.ts)
}

//RepSize returns the length of the representation vector of each atom for
//a system with nelements distinct elements: one two-body block per element
//plus one three-body block per unordered element pair (with repetition).
func RepSize(nelements int, O *Options) int {
	if O == nil {
		panic(ErrNilOptions)
	}
	b2 := len(O.rs2)
	b3 := len(O.rs3)
	a := O.nangular()
	return nelements*b2 + nelements*(nelements+1)/2*b3*a
}
