// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dicom

import (
	"encoding/binary"
	"io"
	"math"
)

// dcmWriter is a wrapper around io.Writer, providing convenience methods for
// writing tags, numbers and strings. Every failure of the underlying writer is
// reported as an *IOError.
type dcmWriter struct {
	io.Writer

	written int64 // number of bytes written
}

func newDcmWriter(w io.Writer) *dcmWriter {
	return &dcmWriter{Writer: w}
}

func (dw *dcmWriter) Tag(order binary.ByteOrder, tag DataElementTag) error {
	if err := dw.UInt16(order, tag.GroupNumber()); err != nil {
		return err
	}
	return dw.UInt16(order, tag.ElementNumber())
}

func (dw *dcmWriter) UInt16(order binary.ByteOrder, v uint16) error {
	buf := make([]byte, 2)
	order.PutUint16(buf, v)
	return dw.Bytes(buf)
}

func (dw *dcmWriter) UInt32(order binary.ByteOrder, v uint32) error {
	buf := make([]byte, 4)
	order.PutUint32(buf, v)
	return dw.Bytes(buf)
}

// UInt16s writes every value of v using 2 bytes per value.
func (dw *dcmWriter) UInt16s(order binary.ByteOrder, v []uint16) error {
	buf := make([]byte, 2*len(v))
	for i, s := range v {
		order.PutUint16(buf[2*i:], s)
	}
	return dw.Bytes(buf)
}

// Int16s writes the two's complement form of every value of v using 2 bytes per value.
func (dw *dcmWriter) Int16s(order binary.ByteOrder, v []int16) error {
	buf := make([]byte, 2*len(v))
	for i, s := range v {
		order.PutUint16(buf[2*i:], uint16(s))
	}
	return dw.Bytes(buf)
}

// Float32s writes the IEEE 754 binary representation of every value of v using 4 bytes per value.
func (dw *dcmWriter) Float32s(order binary.ByteOrder, v []float32) error {
	buf := make([]byte, 4*len(v))
	for i, f := range v {
		order.PutUint32(buf[4*i:], math.Float32bits(f))
	}
	return dw.Bytes(buf)
}

func (dw *dcmWriter) String(s string) error {
	return dw.Bytes([]byte(s))
}

// Zeros writes n zero bytes
func (dw *dcmWriter) Zeros(n int) error {
	return dw.Bytes(make([]byte, n))
}

func (dw *dcmWriter) Bytes(b []byte) error {
	n, err := dw.Write(b)
	dw.written += int64(n)
	if err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}
