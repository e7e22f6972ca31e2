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
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"testing"
)

// parsedElement is a data element read back from an encoded file
type parsedElement struct {
	Tag    DataElementTag
	VR     string
	Length uint32
	Value  []byte
}

// dcmReader reads Explicit VR Little Endian data elements back from encoded bytes
type dcmReader struct {
	r *bytes.Reader
}

func dcmReaderFromBytes(data []byte) *dcmReader {
	return &dcmReader{bytes.NewReader(data)}
}

func (dr *dcmReader) Bytes(n int64) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(dr.r, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (dr *dcmReader) UInt16() (uint16, error) {
	var v uint16
	err := binary.Read(dr.r, binary.LittleEndian, &v)
	return v, err
}

func (dr *dcmReader) UInt32() (uint32, error) {
	var v uint32
	err := binary.Read(dr.r, binary.LittleEndian, &v)
	return v, err
}

// Element reads the next data element, returning io.EOF when no bytes are left
func (dr *dcmReader) Element() (*parsedElement, error) {
	group, err := dr.UInt16()
	if err != nil {
		return nil, err
	}
	element, err := dr.UInt16()
	if err != nil {
		return nil, fmt.Errorf("reading element number: %v", err)
	}
	vr, err := dr.Bytes(2)
	if err != nil {
		return nil, fmt.Errorf("reading vr: %v", err)
	}

	var length uint32
	switch string(vr) {
	case "OB", "OW", "OF", "SQ", "UT", "UN":
		reserved, err := dr.UInt16()
		if err != nil {
			return nil, fmt.Errorf("reading reserved field: %v", err)
		}
		if reserved != 0 {
			return nil, fmt.Errorf("reserved field is %v, want 0", reserved)
		}
		if length, err = dr.UInt32(); err != nil {
			return nil, fmt.Errorf("reading 32 bit length: %v", err)
		}
	default:
		l, err := dr.UInt16()
		if err != nil {
			return nil, fmt.Errorf("reading 16 bit length: %v", err)
		}
		length = uint32(l)
	}

	value, err := dr.Bytes(int64(length))
	if err != nil {
		return nil, fmt.Errorf("reading value of length %d: %v", length, err)
	}
	return &parsedElement{NewDataElementTag(group, element), string(vr), length, value}, nil
}

// mustParseFile checks the preamble and signature of file and returns all its data elements
func mustParseFile(t *testing.T, file []byte) []*parsedElement {
	t.Helper()
	if len(file) < 132 {
		t.Fatalf("file is %d bytes, too short for a preamble and signature", len(file))
	}
	if !bytes.Equal(file[:128], make([]byte, 128)) {
		t.Fatalf("preamble is not 128 zero bytes: %v", file[:128])
	}
	if got := string(file[128:132]); got != "DICM" {
		t.Fatalf("got signature %q, want %q", got, "DICM")
	}

	dr := dcmReaderFromBytes(file[132:])
	var elements []*parsedElement
	for {
		element, err := dr.Element()
		if errors.Is(err, io.EOF) {
			return elements
		}
		if err != nil {
			t.Fatalf("reading element %d: %v", len(elements), err)
		}
		elements = append(elements, element)
	}
}

func findParsedElement(t *testing.T, elements []*parsedElement, tag DataElementTag) *parsedElement {
	t.Helper()
	for _, element := range elements {
		if element.Tag == tag {
			return element
		}
	}
	t.Fatalf("element %v not found", tag)
	return nil
}

// fakeImageSource is an ImageSource that does not validate its contents
type fakeImageSource struct {
	width, height uint32
	bitDepth      int
	signed16      bool
	frames        []interface{}
	frameErr      error
	framesRead    int
}

func (s *fakeImageSource) Width() uint32      { return s.width }
func (s *fakeImageSource) Height() uint32     { return s.height }
func (s *fakeImageSource) FrameCount() uint32 { return uint32(len(s.frames)) }
func (s *fakeImageSource) BitDepth() int      { return s.bitDepth }
func (s *fakeImageSource) IsSigned16() bool   { return s.signed16 }

func (s *fakeImageSource) FramePixels(index uint32) (interface{}, error) {
	s.framesRead++
	if s.frameErr != nil {
		return nil, s.frameErr
	}
	return s.frames[index-1], nil
}

func mustNewStack(t *testing.T, width, height uint32, bitDepth int, frames ...interface{}) *Stack {
	t.Helper()
	s, err := NewStack(width, height, bitDepth)
	if err != nil {
		t.Fatalf("NewStack: %v", err)
	}
	for _, frame := range frames {
		if err := s.AddFrame(frame); err != nil {
			t.Fatalf("AddFrame: %v", err)
		}
	}
	return s
}

// errWriter accepts n bytes and fails every write after that
type errWriter struct {
	n int
}

var errSink = errors.New("sink failure")

func (w *errWriter) Write(p []byte) (int, error) {
	if len(p) <= w.n {
		w.n -= len(p)
		return len(p), nil
	}
	n := w.n
	w.n = 0
	return n, errSink
}
