/*
 * doc.go, part of goacsf
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

/*Package acsf generates atom-centered symmetry function (ACSF) representations
of molecules, and their FCHL variant, for use as input to kernel-based machine
learning. Given the coordinates and nuclear charges of a molecule, each atom
gets a fixed-length feature vector built from two-body (radial) and three-body
(angular) contributions, smoothly cut off at configurable radii. The analytic
derivative of every feature with respect to every atomic coordinate is also
available, which is what force-learning models need.

The package is a satellite of goChem: coordinates come in as v3.Matrix and the
Mol* entry points take a chem.Atomer directly. Representations come out as
gonum Dense matrices (one row per atom) so they can be fed to whatever kernel
code the user prefers.
*/
package acsf
