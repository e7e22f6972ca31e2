// Copyright 2026 The ImageJ-DICOM-Writer Authors
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
	"fmt"
)

// ImageSource is a multi-frame grayscale image. All frames share the same width, height and bit
// depth.
type ImageSource interface {
	Width() uint32
	Height() uint32
	FrameCount() uint32

	// BitDepth is the number of bits per sample: 8, 16 or 32.
	BitDepth() int

	// IsSigned16 reports whether 16-bit samples are to be interpreted as signed.
	IsSigned16() bool

	// FramePixels returns the samples of frame index, where 1 <= index <= FrameCount(), in row
	// major order. The buffer holds Width()*Height() samples and is one of:
	// []byte for 8 bits,
	// []uint16 or []int16 for 16 bits,
	// []float32 for 32 bits.
	FramePixels(index uint32) (interface{}, error)
}

// Stack is an in-memory ImageSource
type Stack struct {
	width, height uint32
	bitDepth      int
	signed16      bool
	frames        []interface{}
}

// NewStack returns an empty Stack of the given dimensions and bit depth
func NewStack(width, height uint32, bitDepth int) (*Stack, error) {
	if err := checkBitDepth(bitDepth); err != nil {
		return nil, err
	}
	return &Stack{width: width, height: height, bitDepth: bitDepth}, nil
}

// AddFrame appends a frame to the stack. The buffer type must match the bit depth of the stack
// as documented in ImageSource.FramePixels, and it must hold exactly width*height samples.
func (s *Stack) AddFrame(pixels interface{}) error {
	if err := checkFrame(s.bitDepth, int64(s.width)*int64(s.height), pixels); err != nil {
		return fmt.Errorf("frame %d: %w", len(s.frames)+1, err)
	}
	s.frames = append(s.frames, pixels)
	return nil
}

// SetSigned16 marks the samples of a 16-bit stack as signed
func (s *Stack) SetSigned16(signed bool) {
	s.signed16 = signed
}

func (s *Stack) Width() uint32 {
	return s.width
}

func (s *Stack) Height() uint32 {
	return s.height
}

func (s *Stack) FrameCount() uint32 {
	return uint32(len(s.frames))
}

func (s *Stack) BitDepth() int {
	return s.bitDepth
}

func (s *Stack) IsSigned16() bool {
	return s.signed16
}

func (s *Stack) FramePixels(index uint32) (interface{}, error) {
	if index < 1 || index > uint32(len(s.frames)) {
		return nil, fmt.Errorf("frame index %d out of range [1, %d]", index, len(s.frames))
	}
	return s.frames[index-1], nil
}

// checkFrame verifies pixels is a buffer of numSamples samples of the given bit depth
func checkFrame(bitDepth int, numSamples int64, pixels interface{}) error {
	var n int
	switch p := pixels.(type) {
	case []byte:
		if bitDepth != 8 {
			return fmt.Errorf("%w: %T for bit depth %d", ErrUnsupportedValueType, pixels, bitDepth)
		}
		n = len(p)
	case []uint16:
		if bitDepth != 16 {
			return fmt.Errorf("%w: %T for bit depth %d", ErrUnsupportedValueType, pixels, bitDepth)
		}
		n = len(p)
	case []int16:
		if bitDepth != 16 {
			return fmt.Errorf("%w: %T for bit depth %d", ErrUnsupportedValueType, pixels, bitDepth)
		}
		n = len(p)
	case []float32:
		if bitDepth != 32 {
			return fmt.Errorf("%w: %T for bit depth %d", ErrUnsupportedValueType, pixels, bitDepth)
		}
		n = len(p)
	default:
		return fmt.Errorf("%w: unexpected frame buffer type %T", ErrUnsupportedValueType, pixels)
	}

	if int64(n) != numSamples {
		return fmt.Errorf("frame has %d samples, expected %d", n, numSamples)
	}
	return nil
}
