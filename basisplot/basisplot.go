/*
 * basisplot.go, part of goacsf
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

/*Package basisplot draws the basis functions implied by a set of acsf.Options,
so a basis can be eyeballed for coverage and overlap before spending time on
training. Each function produces a PNG file.*/
package basisplot

import (
	"fmt"
	"math"

	acsf "github.com/rmera/goacsf"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const points = 300

//basicPlot sets up a plot with the given title and axis names, with a grid,
//the way all plots in this package look.
func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

func addLine(p *plot.Plot, pts plotter.XYs, name string) error {
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	if name != "" {
		p.Legend.Add(name, line)
	}
	return nil
}

//Decay plots the cosine cutoff function on [0,rcut] and saves it to
//filename (a PNG).
func Decay(rcut float64, filename string) error {
	if rcut <= 0 {
		return fmt.Errorf("basisplot: nonsensical cutoff %4.2f", rcut)
	}
	p := basicPlot("Cutoff decay", "r (A)", "decay")
	pts := make(plotter.XYs, points)
	for i := range pts {
		r := rcut * float64(i) / float64(points-1)
		pts[i].X = r
		pts[i].Y = 0.5 * (math.Cos(math.Pi*r/rcut) + 1)
	}
	if err := addLine(p, pts, ""); err != nil {
		return err
	}
	return p.Save(5*vg.Inch, 5*vg.Inch, filename)
}

//Radial plots every two-body radial basis function of O, decay included,
//over (0,rcut], and saves the plot to filename (a PNG). The FCHL log-normal
//kernels are drawn with their power-law decay, so the y scale is whatever
//the representation actually accumulates.
func Radial(O *acsf.Options, filename string) error {
	if O == nil {
		return fmt.Errorf("basisplot: given nil Options")
	}
	p := basicPlot("Two-body radial basis", "r (A)", "feature")
	rcut := O.Rcut()
	eta2 := O.Eta2()
	for _, rs := range O.Rs2() {
		pts := make(plotter.XYs, points)
		for i := range pts {
			//skip r=0, where the FCHL kernel is singular
			r := rcut * float64(i+1) / float64(points)
			dec := 0.5 * (math.Cos(math.Pi*r/rcut) + 1)
			pts[i].X = r
			if O.FCHL() {
				s2 := math.Log(1 + eta2/(r*r))
				mu := math.Log(r) - 0.5*s2
				z := math.Log(rs) - mu
				pts[i].Y = dec * math.Exp(-z*z/(2*s2)) /
					(math.Sqrt(s2) * math.Sqrt(2*math.Pi) * rs) *
					math.Pow(r, -O.TwoBodyDecay())
			} else {
				pts[i].Y = dec * math.Exp(-eta2*(r-rs)*(r-rs))
			}
		}
		if err := addLine(p, pts, fmt.Sprintf("Rs=%4.2f", rs)); err != nil {
			return err
		}
	}
	return p.Save(5*vg.Inch, 5*vg.Inch, filename)
}

//Angular plots the angular basis functions of O over [0,pi] and saves the
//plot to filename (a PNG).
func Angular(O *acsf.Options, filename string) error {
	if O == nil {
		return fmt.Errorf("basisplot: given nil Options")
	}
	p := basicPlot("Three-body angular basis", "theta (rad)", "feature")
	zeta := O.Zeta()
	if O.FCHL() {
		for m := 0; m < O.Fourier(); m++ {
			o := float64(2*m + 1)
			damp := 2 * math.Exp(-(zeta*o)*(zeta*o)/2)
			cpts := make(plotter.XYs, points)
			spts := make(plotter.XYs, points)
			for i := range cpts {
				theta := math.Pi * float64(i) / float64(points-1)
				cpts[i].X = theta
				spts[i].X = theta
				cpts[i].Y = damp * math.Cos(o*theta)
				spts[i].Y = damp * math.Sin(o*theta)
			}
			if err := addLine(p, cpts, fmt.Sprintf("cos %d theta", int(o))); err != nil {
				return err
			}
			if err := addLine(p, spts, fmt.Sprintf("sin %d theta", int(o))); err != nil {
				return err
			}
		}
	} else {
		for _, ts := range O.Ts() {
			pts := make(plotter.XYs, points)
			for i := range pts {
				theta := math.Pi * float64(i) / float64(points-1)
				pts[i].X = theta
				pts[i].Y = 2 * math.Pow((1+math.Cos(theta-ts))/2, zeta)
			}
			if err := addLine(p, pts, fmt.Sprintf("Ts=%4.2f", ts)); err != nil {
				return err
			}
		}
	}
	return p.Save(5*vg.Inch, 5*vg.Inch, filename)
}
