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

package acsf

import "fmt"

//Error is the interface for errors that this library implements, compatible
//with the goChem Error interface. The Decorate method allows adding and retrieving
//info from the error as it is passed up, without changing its type or wrapping
//it around something else.
type Error interface {
	Error() string
	Decorate(string) []string
	Critical() bool
}

//CError is the concrete type for errors in this package.
//All errors produced by the representation generators are critical:
//either the caller gets a fully populated representation (and gradient),
//or it gets one of these and no partial result.
type CError struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err CError) Error() string {
	return fmt.Sprintf("goacsf: %s", err.message)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice. An empty dec just returns the current decorations.
func (err CError) Decorate(dec string) []string {
	//The method doesn't use a pointer receiver but err.deco is a slice,
	//hence a pointer itself, so this works.
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or can be ignored.
func (err CError) Critical() bool { return err.critical }

//errDecorate asserts that the error implements Error and decorates
//it with the caller's name before returning it.
//It will panic if used on an error that doesn't implement Error.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//PanicMsg is a message used for panics on programmer errors.
//For anything recoverable by the caller, use CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilCoordinates  = PanicMsg("goacsf: Given nil coordinates")
	ErrNilOptions      = PanicMsg("goacsf: Given nil Options")
	ErrShape           = PanicMsg("goacsf: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("goacsf: index out of range")
)
