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
	"fmt"
	"math"
)

// ExplicitVRLittleEndianUID is the Explicit VR Little Endian UID, the only transfer syntax written
// by this package.
// http://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_A
const ExplicitVRLittleEndianUID = "1.2.840.10008.1.2.1"

const (
	vrSize  = 2
	tagSize = 4
)

type explicitSyntax struct {
	order binary.ByteOrder
}

func (s explicitSyntax) elementSize(vr *VR, valueFieldLength uint32) uint32 {
	if s.has32BitLength(vr) {
		return tagSize + vrSize + 2 /*reserved*/ + 4 /*32-bit length*/ + valueFieldLength
	}
	return tagSize + vrSize + 2 /*16-bit length*/ + valueFieldLength
}

func (s explicitSyntax) writeVR(dw *dcmWriter, vr *VR) error {
	return dw.String(vr.Name)
}

func (s explicitSyntax) writeValueLength(dw *dcmWriter, vr *VR, valueFieldLength uint32) error {
	if s.has32BitLength(vr) {
		if err := dw.UInt16(s.order, 0); err != nil {
			return fmt.Errorf("writing reserved field: %w", err)
		}
		if err := dw.UInt32(s.order, valueFieldLength); err != nil {
			return fmt.Errorf("writing 32 bit length: %w", err)
		}
		return nil
	}

	if valueFieldLength > math.MaxUint16 {
		return fmt.Errorf("data element value length %d exceeds unsigned 16-bit length", valueFieldLength)
	}
	if err := dw.UInt16(s.order, uint16(valueFieldLength)); err != nil {
		return fmt.Errorf("writing 16 bit length: %w", err)
	}
	return nil
}

func (s explicitSyntax) has32BitLength(vr *VR) bool {
	// For explicit VR, lengths can be stored in a 32 bit field or a 16 bit field
	// depending on the VR type. The 2 cases are defined at the link:
	// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.2
	switch vr {
	case OBVR, OWVR, OFVR, SQVR, UTVR, UNVR:
		return true
	default:
		return false
	}
}

var explicitVRLittleEndian = explicitSyntax{binary.LittleEndian}
