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
	"fmt"
	"io"
	"math"
)

// WriteElement writes element to w in the Explicit VR Little Endian syntax. Values of odd length
// are padded with a single zero byte and the recorded value length includes the padding.
//
// If element has a nil VR, the VR from the data dictionary is used.
func WriteElement(w io.Writer, element *DataElement) error {
	return writeDataElement(newDcmWriter(w), element)
}

// WriteElementHeader writes the tag, VR and value length of a data element to w in the Explicit VR
// Little Endian syntax, leaving the value to the caller. The length must be even.
func WriteElementHeader(w io.Writer, tag DataElementTag, vr *VR, length uint32) error {
	return writeElementHeader(newDcmWriter(w), tag, vr, length)
}

func writeDataElement(dw *dcmWriter, element *DataElement) error {
	element, err := processedElement(element)
	if err != nil {
		return fmt.Errorf("processing element: %w", err)
	}

	value, err := encodeValue(element.Value)
	if err != nil {
		return fmt.Errorf("encoding value: %w", err)
	}
	length, err := paddedLength(int64(len(value)))
	if err != nil {
		return err
	}

	if err := writeElementHeader(dw, element.Tag, element.VR, length); err != nil {
		return err
	}
	if err := dw.Bytes(value); err != nil {
		return fmt.Errorf("writing value: %w", err)
	}
	if len(value)%2 != 0 {
		if err := dw.Zeros(1); err != nil {
			return fmt.Errorf("writing padding: %w", err)
		}
	}

	return nil
}

func writeElementHeader(dw *dcmWriter, tag DataElementTag, vr *VR, length uint32) error {
	if vr == nil {
		return fmt.Errorf("missing VR for %v", tag)
	}
	if length%2 != 0 {
		return fmt.Errorf("value length of %v must be even, got %d", tag, length)
	}

	if err := dw.Tag(explicitVRLittleEndian.order, tag); err != nil {
		return fmt.Errorf("writing tag: %w", err)
	}
	if err := explicitVRLittleEndian.writeVR(dw, vr); err != nil {
		return fmt.Errorf("writing VR: %w", err)
	}
	if err := explicitVRLittleEndian.writeValueLength(dw, vr, length); err != nil {
		return fmt.Errorf("writing length: %w", err)
	}
	return nil
}

func processedElement(element *DataElement) (*DataElement, error) {
	vr := element.VR
	if vr == nil {
		vr = element.Tag.DictionaryVR()
	}
	if !vr.accepts(element.Value) {
		return nil, fmt.Errorf("%w: %T cannot be written as VR %v", ErrUnsupportedValueType, element.Value, vr)
	}

	return &DataElement{element.Tag, vr, element.Value}, nil
}

// valueFieldLength returns the padded length of the value of a processed element
func valueFieldLength(element *DataElement) (uint32, error) {
	value, err := encodeValue(element.Value)
	if err != nil {
		return 0, err
	}
	return paddedLength(int64(len(value)))
}

// paddedLength rounds numBytes up to the next even number
func paddedLength(numBytes int64) (uint32, error) {
	if numBytes%2 != 0 {
		numBytes++
	}
	// 0xFFFFFFFF is reserved for undefined length
	// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.1
	if numBytes >= math.MaxUint32 {
		return 0, fmt.Errorf("value length %d exceeds the maximum explicit length", numBytes)
	}
	return uint32(numBytes), nil
}
