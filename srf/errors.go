/*
 * errors.go, part of goacsf
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

import "fmt"

//Error is the structure for srf file errors. It fulfills the goChem Error
//interface plus the file-related methods of its trajectory errors.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("srf file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error, and returns the current
//decorations.
func (err Error) Decorate(deco string) []string {
	//The receiver is not a pointer but err.deco is a slice, hence a
	//pointer itself, so this works.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the failing operation was associated.
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file associated to the error (always "srf").
func (err Error) Format() string { return "srf" }

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

const (
	UnIniRead         = "srf object uninitialized to read"
	UnIniWrite        = "srf object uninitialized to write"
	UnableToOpen      = "Unable to open file"
	NilRepresentation = "Given nil representation"
	WrongFormat       = "Wrong format in the srf file"
)

//LastMol is the interface of the harmless error returned when a file is read
//to exhaustion, so it can be filtered in a typeswitch.
type LastMol interface {
	error
	NormalLastMolTermination()
}

//lastMolError implements LastMol.
type lastMolError struct {
	deco     []string
	fileName string
}

//NormalLastMolTermination does nothing, it just separates this interface
//from other errors.
func (E lastMolError) NormalLastMolTermination() {}

func (E lastMolError) FileName() string { return E.fileName }

func (E lastMolError) Error() string { return "EOF" }

func (E lastMolError) Critical() bool { return false }

func (E lastMolError) Format() string { return "srf" }

func (E lastMolError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}
