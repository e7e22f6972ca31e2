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
	"testing"
)

func TestDataElementTag_String(t *testing.T) {
	got := PixelDataTag.String()
	want := "(7FE0,0010)"
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDataElementTag_ElementNumber(t *testing.T) {
	tag := DataElementTag(0xFEDCBA98)
	if tag.ElementNumber() != 0xBA98 {
		t.Fatalf("got %v, want %v", tag.ElementNumber(), 0xBA98)
	}
}

func TestDataElementTag_GroupNumber(t *testing.T) {
	tag := DataElementTag(0xFEDCBA98)
	if tag.GroupNumber() != 0xFEDC {
		t.Fatalf("got %v, want %v", tag.GroupNumber(), 0xFEDC)
	}
}

func TestNewDataElementTag(t *testing.T) {
	if got := NewDataElementTag(0x0028, 0x0010); got != RowsTag {
		t.Fatalf("got %v, want %v", got, RowsTag)
	}
}

func TestDataElementTag_IsMetaElement(t *testing.T) {
	tests := []struct {
		name string
		tag  DataElementTag
		want bool
	}{
		{"file meta element", TransferSyntaxUIDTag, true},
		{"data set element", PatientNameTag, false},
		{"pixel data", PixelDataTag, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tag.IsMetaElement(); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDataElementTag_DictionaryVR(t *testing.T) {
	if got := RowsTag.DictionaryVR(); got != USVR {
		t.Fatalf("got %v, want %v", got, USVR)
	}
	if got := NewDataElementTag(0x0009, 0x0010).DictionaryVR(); got != UNVR {
		t.Fatalf("got %v, want %v", got, UNVR)
	}
}

func TestDataSet_FindAndMetaElements(t *testing.T) {
	ds := &DataSet{}
	ds.Append(TransferSyntaxUIDTag, UIVR, Text(ExplicitVRLittleEndianUID))
	ds.Append(ModalityTag, CSVR, Text("OT"))
	ds.Append(ImplementationVersionNameTag, SHVR, Text("x"))

	element, ok := ds.Find(ModalityTag)
	if !ok || element.Value != Text("OT") {
		t.Fatalf("got %v, %v, want modality OT", element, ok)
	}
	if _, ok := ds.Find(PixelDataTag); ok {
		t.Fatal("expected pixel data not to be found")
	}

	meta := ds.MetaElements()
	if len(meta) != 2 || meta[0].Tag != TransferSyntaxUIDTag || meta[1].Tag != ImplementationVersionNameTag {
		t.Fatalf("unexpected meta elements %v", meta)
	}
}

func TestDataSet_Length(t *testing.T) {
	ds := &DataSet{}
	ds.Append(FileMetaInformationVersionTag, OBVR, Bytes{0x00, 0x01}) // 12 + 2
	ds.Append(TransferSyntaxUIDTag, UIVR, Text("1.2.3"))            // 8 + 6
	ds.Append(RowsTag, nil, UShort(4))                               // 8 + 2

	got, err := ds.Length()
	if err != nil {
		t.Fatalf("Length: %v", err)
	}
	if want := int64(14 + 14 + 10); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}

	ds.Append(PatientNameTag, PNVR, UShort(1))
	if _, err := ds.Length(); err == nil {
		t.Fatal("expected error for an unsupported value")
	}
}
