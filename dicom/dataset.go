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

// DataElementTag is a unique identifier for a Data Element composed of an unordered pair
// of numbers called the group number and the element number as specified in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_3.10.
//
// The least significant 16 bits is the element number. The most significant 16 bits is the group
// number.
type DataElementTag uint32

// NewDataElementTag returns the DataElementTag made of the given group and element numbers
func NewDataElementTag(group, element uint16) DataElementTag {
	return DataElementTag(uint32(group)<<16 | uint32(element))
}

// GroupNumber returns the group number component of the DataElementTag
func (t DataElementTag) GroupNumber() uint16 {
	return uint16(t >> 16)
}

// ElementNumber returns the element number component of the DataElementTag
func (t DataElementTag) ElementNumber() uint16 {
	return uint16(t & 0xFFFF)
}

// IsMetaElement is true if and only if the Data Element is a file meta element
func (t DataElementTag) IsMetaElement() bool {
	return t.GroupNumber() == uint16(0x0002)
}

func (t DataElementTag) String() string {
	return fmt.Sprintf("(%04X,%04X)", t.GroupNumber(), t.ElementNumber())
}

// DataElement models a DICOM Data Element as defined in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_3.10
type DataElement struct {
	Tag DataElementTag

	// Value Representation. When nil, the VR is taken from the data dictionary.
	VR *VR

	// Value is the single value carried by the element
	Value TagValue
}

// DataSet models a DICOM Data Set as defined
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_3.10
//
// Elements are written in the order they appear in Elements.
type DataSet struct {
	Elements []*DataElement
}

// Append adds a DataElement to the end of the DataSet
func (ds *DataSet) Append(tag DataElementTag, vr *VR, value TagValue) {
	ds.Elements = append(ds.Elements, &DataElement{Tag: tag, VR: vr, Value: value})
}

// Find returns the first DataElement with the given tag
func (ds *DataSet) Find(tag DataElementTag) (*DataElement, bool) {
	for _, element := range ds.Elements {
		if element.Tag == tag {
			return element, true
		}
	}
	return nil, false
}

// MetaElements returns the file meta elements (group 0002) of the DataSet
func (ds *DataSet) MetaElements() []*DataElement {
	var ret []*DataElement
	for _, element := range ds.Elements {
		if element.Tag.IsMetaElement() {
			ret = append(ret, element)
		}
	}
	return ret
}

// Length returns the number of bytes the DataSet occupies once encoded
func (ds *DataSet) Length() (int64, error) {
	size := int64(0)
	for _, element := range ds.Elements {
		processed, err := processedElement(element)
		if err != nil {
			return 0, fmt.Errorf("processing element %v: %w", element.Tag, err)
		}
		length, err := valueFieldLength(processed)
		if err != nil {
			return 0, fmt.Errorf("calculating length of %v: %w", element.Tag, err)
		}
		size += int64(explicitVRLittleEndian.elementSize(processed.VR, length))
	}
	return size, nil
}

func writeDataSet(dw *dcmWriter, ds *DataSet) error {
	for _, element := range ds.Elements {
		if err := writeDataElement(dw, element); err != nil {
			return fmt.Errorf("writing data element %v: %w", element.Tag, err)
		}
	}
	return nil
}
