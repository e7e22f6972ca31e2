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
)

// vrType is to group common encodings together
type vrType int

const (
	// textVR is for value fields that are encoded as single byte text
	textVR vrType = iota

	// numberBinaryVR is for value fields that are encoded as binary numbers
	numberBinaryVR

	// bulkDataVR groups sequences of binary numbers
	bulkDataVR

	// uniqueIdentifierVR is for VR: UI
	uniqueIdentifierVR

	// sequenceVR is for VR: SQ
	sequenceVR
)

// VR models the DICOM Value representations (VR)
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
type VR struct {
	// Name represents the 2-character VR Code
	Name string

	kind vrType
}

// String returns the 2-character VR Code
func (vr *VR) String() string {
	return vr.Name
}

var vrLookupMap = map[string]*VR{}

func newVR(text string, vrType vrType) *VR {
	vr := &VR{text, vrType}
	vrLookupMap[vr.Name] = vr

	return vr
}

// lookupVR returns the VR with the given 2-character code
func lookupVR(name string) (*VR, error) {
	r, ok := vrLookupMap[name]
	if !ok {
		return nil, fmt.Errorf("unknown vr name: %v", name)
	}
	return r, nil
}

// The subset of the VR list needed to write secondary capture images, obtained from
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
var (
	// textual VRs
	CSVR = newVR("CS", textVR)
	SHVR = newVR("SH", textVR)

	// person name
	PNVR = newVR("PN", textVR)

	// textual numbers
	ISVR = newVR("IS", textVR)

	// binary numbers
	USVR = newVR("US", numberBinaryVR)

	// large binary sequences
	OBVR = newVR("OB", bulkDataVR)
	OWVR = newVR("OW", bulkDataVR)
	OFVR = newVR("OF", bulkDataVR)

	// unknown
	UNVR = newVR("UN", bulkDataVR)

	// unlimited text
	UTVR = newVR("UT", bulkDataVR)

	// unique identifier
	UIVR = newVR("UI", uniqueIdentifierVR)

	// sequence
	SQVR = newVR("SQ", sequenceVR)
)

// accepts reports whether a value of the given variant can be stored under vr.
func (vr *VR) accepts(value TagValue) bool {
	switch value.(type) {
	case Text:
		return vr.kind == textVR || vr.kind == uniqueIdentifierVR || vr == UTVR
	case UShort:
		return vr == USVR
	case Bytes:
		return vr.kind == bulkDataVR
	default:
		return false
	}
}
