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
	"encoding/binary"
	"fmt"
)

// TagValue is the value of a DataElement. It is one of Text, UShort or Bytes.
type TagValue interface {
	isTagValue()
}

// Text is a string value, encoded as ISO 8859-1
type Text string

// UShort is an unsigned 16-bit value, encoded in little endian
type UShort uint16

// Bytes is a raw value written unchanged
type Bytes []byte

func (Text) isTagValue()   {}
func (UShort) isTagValue() {}
func (Bytes) isTagValue()  {}

// encodeValue returns the unpadded bytes of value in the Explicit VR Little Endian syntax.
func encodeValue(value TagValue) ([]byte, error) {
	switch v := value.(type) {
	case Text:
		return encodeText(string(v))
	case UShort:
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, uint16(v))
		return buf, nil
	case Bytes:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValueType, value)
	}
}
