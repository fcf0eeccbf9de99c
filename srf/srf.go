/*
 * srf.go, part of goacsf
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

/*Package srf implements the "stored representation format", a compressed,
text-based format for sets of per-atom representations, so that descriptors
computed once for a dataset can be reused across training runs without
recomputing them. One file holds any number of molecules sharing the same
representation size; each molecule is a block of one line per atom, closed by
a "*" line. Values are written with full float64 round-trip precision.

The compressor is chosen from the last letter of the file name, as in goChem's
stf trajectories: 'f' for zstd (the .srf default), 'z' for gzip, 'l' for lzw
and 'r' for flate. Anything else gets zstd.
*/
package srf

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"compress/lzw"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

const (
	lzwLitwidth int = 8
)

//Write!

//SrfW writes representation sets to a compressed srf file.
type SrfW struct {
	f         *os.File
	h         io.WriteCloser
	repsize   int
	filename  string
	writeable bool
}

//NewWriter creates an srf file with the given representation size and
//optional key=value header entries. compressionLevel is only meaningful for
//the gzip and flate compressors.
func NewWriter(name string, repsize int, header map[string]string, compressionLevel ...int) (*SrfW, error) {
	level := 9
	if len(compressionLevel) > 0 {
		level = compressionLevel[0]
	}
	if repsize <= 0 {
		return nil, Error{fmt.Sprintf("Nonsensical representation size %d", repsize), name, []string{"NewWriter"}, true}
	}
	S := new(SrfW)
	var err error
	S.f, err = os.Create(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewWriter"}, true}
	}
	S.h, err = anyNewWriter(S.f, name, level)
	if err != nil {
		return nil, Error{"Can't set up compressor: " + err.Error(), name, []string{"NewWriter"}, true}
	}
	S.repsize = repsize
	S.filename = name
	S.writeable = true
	if header != nil {
		headerstr := ""
		for k, v := range header {
			headerstr += fmt.Sprintf("%s=%v\n", k, v)
		}
		S.h.Write([]byte(headerstr))
	}
	S.h.Write([]byte(fmt.Sprintf("** %d\n", S.repsize)))
	return S, nil
}

//anyNewWriter picks the compressor from the last letter of the file name.
func anyNewWriter(f io.Writer, name string, level int) (io.WriteCloser, error) {
	format := strings.ToLower(name)[len(name)-1]
	switch format {
	case 'l':
		return lzw.NewWriter(f, lzw.MSB, lzwLitwidth), nil
	case 'z':
		return gzip.NewWriterLevel(f, level)
	case 'r':
		return flate.NewWriter(f, level)
	default:
		return zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
}

//WNext writes the representation of one molecule (one row per atom) as the
//next block of the file.
func (S *SrfW) WNext(rep *mat.Dense) error {
	if !S.writeable {
		return Error{UnIniWrite, S.filename, []string{"WNext"}, true}
	}
	if rep == nil {
		return Error{NilRepresentation, S.filename, []string{"WNext"}, true}
	}
	natoms, repsize := rep.Dims()
	if repsize != S.repsize {
		return Error{fmt.Sprintf("Representation size %d given, but %d expected", repsize, S.repsize), S.filename, []string{"WNext"}, true}
	}
	buf := make([]byte, 0, 32)
	for i := 0; i < natoms; i++ {
		for j := 0; j < repsize; j++ {
			if j > 0 {
				S.h.Write([]byte{' '})
			}
			buf = strconv.AppendFloat(buf[:0], rep.At(i, j), 'g', -1, 64)
			S.h.Write(buf)
		}
		S.h.Write([]byte{'\n'})
	}
	S.h.Write([]byte("*\n"))
	return nil
}

//Close closes the file. The writer can not be used after this call.
func (S *SrfW) Close() {
	if S == nil || !S.writeable {
		return
	}
	S.h.Close()
	S.f.Close()
	S.writeable = false
}

//RepSize returns the per-atom representation length the file was opened with.
func (S *SrfW) RepSize() int { return S.repsize }

//Read!

//SrfR reads representation sets back from a compressed srf file.
type SrfR struct {
	f        *os.File
	z        io.ReadCloser
	h        *bufio.Reader
	repsize  int
	filename string
	header   map[string]string
	readable bool
}

//Why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type stdql struct {
	closeql func()
	*zstd.Decoder
}

func (s stdql) Close() error {
	s.closeql()
	return nil
}

//NewReader opens an srf file for reading, consuming the header. Header
//entries, if any were written, are available from the Header method.
func NewReader(name string) (*SrfR, error) {
	S := new(SrfR)
	var err error
	S.f, err = os.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewReader"}, true}
	}
	format := strings.ToLower(name)[len(name)-1]
	switch format {
	case 'l':
		S.z = lzw.NewReader(S.f, lzw.MSB, lzwLitwidth)
	case 'z':
		S.z, err = gzip.NewReader(S.f)
	case 'r':
		S.z = flate.NewReader(S.f)
	default:
		var d *zstd.Decoder
		d, err = zstd.NewReader(S.f)
		if err == nil {
			S.z = stdql{d.Close, d}
		}
	}
	if err != nil {
		return nil, Error{"Can't set up decompressor: " + err.Error(), name, []string{"NewReader"}, true}
	}
	S.h = bufio.NewReader(S.z)
	S.filename = name
	S.header = map[string]string{}
	for {
		line, err := S.h.ReadString('\n')
		if err != nil {
			return nil, Error{WrongFormat + ": missing header sentinel", name, []string{"NewReader"}, true}
		}
		line = strings.TrimSuffix(line, "\n")
		if strings.HasPrefix(line, "** ") {
			S.repsize, err = strconv.Atoi(strings.Fields(line)[1])
			if err != nil {
				return nil, Error{WrongFormat + ": bad representation size", name, []string{"NewReader"}, true}
			}
			break
		}
		kv := strings.SplitN(line, "=", 2)
		if len(kv) != 2 {
			log.Printf("srf: skipping malformed header line %q in %s", line, name)
			continue
		}
		S.header[kv[0]] = kv[1]
	}
	S.readable = true
	return S, nil
}

//Header returns the key=value entries read from the file header.
func (S *SrfR) Header() map[string]string { return S.header }

//RepSize returns the per-atom representation length declared by the file.
func (S *SrfR) RepSize() int { return S.repsize }

//Next returns the representation of the next molecule in the file, or a
//non-critical lastMolError when the file is exhausted.
func (S *SrfR) Next() (*mat.Dense, error) {
	if !S.readable {
		return nil, Error{UnIniRead, S.filename, []string{"Next"}, true}
	}
	var rows []float64
	natoms := 0
	for {
		line, err := S.h.ReadString('\n')
		if err != nil {
			if natoms == 0 {
				return nil, lastMolError{[]string{}, S.filename}
			}
			return nil, Error{WrongFormat + ": file ends mid-molecule", S.filename, []string{"Next"}, true}
		}
		line = strings.TrimSuffix(line, "\n")
		if line == "*" {
			break
		}
		fields := strings.Fields(line)
		if len(fields) != S.repsize {
			return nil, Error{fmt.Sprintf("%s: row of %d values in a file with representation size %d", WrongFormat, len(fields), S.repsize), S.filename, []string{"Next"}, true}
		}
		for _, v := range fields {
			num, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, Error{WrongFormat + ": " + err.Error(), S.filename, []string{"Next"}, true}
			}
			rows = append(rows, num)
		}
		natoms++
	}
	return mat.NewDense(natoms, S.repsize, rows), nil
}

//Close closes the file. The reader can not be used after this call.
func (S *SrfR) Close() {
	if S == nil || !S.readable {
		return
	}
	S.z.Close()
	S.f.Close()
	S.readable = false
}
