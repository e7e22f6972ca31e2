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

// Tags of the data elements written to secondary capture images, from
// http://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_6
const (
	FileMetaInformationVersionTag DataElementTag = 0x00020001
	MediaStorageSOPClassUIDTag    DataElementTag = 0x00020002
	MediaStorageSOPInstanceUIDTag DataElementTag = 0x00020003
	TransferSyntaxUIDTag          DataElementTag = 0x00020010
	ImplementationClassUIDTag     DataElementTag = 0x00020012
	ImplementationVersionNameTag  DataElementTag = 0x00020013
	ModalityTag                   DataElementTag = 0x00080060
	PatientNameTag                DataElementTag = 0x00100010
	SamplesPerPixelTag            DataElementTag = 0x00280002
	PhotometricInterpretationTag  DataElementTag = 0x00280004
	NumberOfFramesTag             DataElementTag = 0x00280008
	RowsTag                       DataElementTag = 0x00280010
	ColumnsTag                    DataElementTag = 0x00280011
	BitsAllocatedTag              DataElementTag = 0x00280100
	BitsStoredTag                 DataElementTag = 0x00280101
	HighBitTag                    DataElementTag = 0x00280102
	PixelRepresentationTag        DataElementTag = 0x00280103
	PixelDataTag                  DataElementTag = 0x7FE00010
)

var dictionary = map[DataElementTag]*VR{
	FileMetaInformationVersionTag: OBVR,
	MediaStorageSOPClassUIDTag:    UIVR,
	MediaStorageSOPInstanceUIDTag: UIVR,
	TransferSyntaxUIDTag:          UIVR,
	ImplementationClassUIDTag:     UIVR,
	ImplementationVersionNameTag:  SHVR,
	ModalityTag:                   CSVR,
	PatientNameTag:                PNVR,
	SamplesPerPixelTag:            USVR,
	PhotometricInterpretationTag:  CSVR,
	NumberOfFramesTag:             ISVR,
	RowsTag:                       USVR,
	ColumnsTag:                    USVR,
	BitsAllocatedTag:              USVR,
	BitsStoredTag:                 USVR,
	HighBitTag:                    USVR,
	PixelRepresentationTag:        USVR,
	PixelDataTag:                  OWVR,
}

// DictionaryVR returns the VR registered for the tag in the data dictionary, or UN when the tag is
// not part of it. Pixel Data is registered as OW although its VR depends on the bits allocated.
func (t DataElementTag) DictionaryVR() *VR {
	if vr, ok := dictionary[t]; ok {
		return vr
	}
	return UNVR
}
