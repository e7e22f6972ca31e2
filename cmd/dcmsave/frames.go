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

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/evh-5150/ImageJ-DICOM-Writer/dicom"
)

// loadStack decodes the PNG files at paths, in order, as the frames of a stack. 16-bit grayscale
// images give a 16-bit stack; every other image is converted to 8-bit grayscale.
func loadStack(paths []string, signed16 bool) (*dicom.Stack, error) {
	var stack *dicom.Stack
	for _, path := range paths {
		img, err := decodePNG(path)
		if err != nil {
			return nil, err
		}

		bitDepth, pixels := framePixels(img)
		bounds := img.Bounds()
		if stack == nil {
			stack, err = dicom.NewStack(uint32(bounds.Dx()), uint32(bounds.Dy()), bitDepth)
			if err != nil {
				return nil, err
			}
			stack.SetSigned16(signed16 && bitDepth == 16)
		}
		if bitDepth != stack.BitDepth() {
			return nil, fmt.Errorf("%s: bit depth %d differs from the first frame (%d)", path, bitDepth, stack.BitDepth())
		}
		if err := stack.AddFrame(pixels); err != nil {
			return nil, fmt.Errorf("%s: %v", path, err)
		}
	}
	if stack == nil {
		return nil, fmt.Errorf("no frames given")
	}
	return stack, nil
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %v", path, err)
	}
	return img, nil
}

// framePixels returns the samples of img in row major order
func framePixels(img image.Image) (int, interface{}) {
	b := img.Bounds()
	if g, ok := img.(*image.Gray16); ok {
		pixels := make([]uint16, 0, b.Dx()*b.Dy())
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				pixels = append(pixels, g.Gray16At(x, y).Y)
			}
		}
		return 16, pixels
	}

	pixels := make([]byte, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			pixels = append(pixels, color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y)
		}
	}
	return 8, pixels
}

// defaultOutputName is the first input with everything from its last dot replaced by .dcm, in the
// same directory
func defaultOutputName(first string) string {
	base := filepath.Base(first)
	if i := strings.LastIndex(base, "."); i >= 0 {
		base = base[:i]
	}
	return filepath.Join(filepath.Dir(first), base+".dcm")
}
