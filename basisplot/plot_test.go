/*
 * plot_test.go, part of goacsf
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

/*These tests render the default bases to ../test so they can be looked at;
they only fail if the rendering itself fails.*/

package basisplot

import (
	"os"
	"testing"

	acsf "github.com/rmera/goacsf"
)

func TestDecayPlot(Te *testing.T) {
	err := Decay(5.0, "../test/decay.png")
	if err != nil {
		Te.Error(err)
	}
	if _, err := os.Stat("../test/decay.png"); err != nil {
		Te.Error("decay plot not written")
	}
}

func TestBasisPlots(Te *testing.T) {
	for _, d := range []struct {
		O        *acsf.Options
		rad, ang string
	}{
		{acsf.DefaultACSFOptions(), "../test/acsf_radial.png", "../test/acsf_angular.png"},
		{acsf.DefaultFCHLOptions(), "../test/fchl_radial.png", "../test/fchl_angular.png"},
	} {
		if err := Radial(d.O, d.rad); err != nil {
			Te.Error(err)
		}
		if err := Angular(d.O, d.ang); err != nil {
			Te.Error(err)
		}
	}
}
