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

// pixelDataVR returns the VR of the Pixel Data element for the given bit depth
func pixelDataVR(bitDepth int) (*VR, error) {
	switch bitDepth {
	case 8:
		return OBVR, nil
	case 16:
		return OWVR, nil
	case 32:
		return OFVR, nil
	default:
		return nil, checkBitDepth(bitDepth)
	}
}

// PixelDataLength returns the value length of the Pixel Data element of src: the size of all
// frames in bytes rounded up to an even number.
func PixelDataLength(src ImageSource) (uint32, error) {
	bitDepth := src.BitDepth()
	if err := checkBitDepth(bitDepth); err != nil {
		return 0, err
	}

	numBytes := int64(src.FrameCount()) * int64(src.Width()) * int64(src.Height()) * int64(bitDepth/8)
	length, err := paddedLength(numBytes)
	if err != nil {
		return 0, fmt.Errorf("pixel data: %w", err)
	}
	return length, nil
}

// writePixelData writes the samples of every frame of src in frame order, including the trailing
// padding byte of odd length 8-bit data. It returns the number of bytes written.
func writePixelData(dw *dcmWriter, src ImageSource) (int64, error) {
	bitDepth := src.BitDepth()
	if err := checkBitDepth(bitDepth); err != nil {
		return 0, err
	}

	numSamples := int64(src.Width()) * int64(src.Height())
	start := dw.written
	for i := uint32(1); i <= src.FrameCount(); i++ {
		pixels, err := src.FramePixels(i)
		if err != nil {
			return dw.written - start, fmt.Errorf("getting frame %d: %w", i, err)
		}
		if err := checkFrame(bitDepth, numSamples, pixels); err != nil {
			return dw.written - start, fmt.Errorf("frame %d: %w", i, err)
		}
		if err := writeFrame(dw, pixels); err != nil {
			return dw.written - start, fmt.Errorf("writing frame %d: %w", i, err)
		}
	}

	// Only 8-bit data can have an odd length
	if (dw.written-start)%2 != 0 {
		if err := dw.Zeros(1); err != nil {
			return dw.written - start, fmt.Errorf("writing padding: %w", err)
		}
	}
	return dw.written - start, nil
}

func writeFrame(dw *dcmWriter, pixels interface{}) error {
	order := explicitVRLittleEndian.order
	switch p := pixels.(type) {
	case []byte:
		return dw.Bytes(p)
	case []uint16:
		return dw.UInt16s(order, p)
	case []int16:
		return dw.Int16s(order, p)
	case []float32:
		return dw.Float32s(order, p)
	default:
		return fmt.Errorf("%w: unexpected frame buffer type %T", ErrUnsupportedValueType, pixels)
	}
}
