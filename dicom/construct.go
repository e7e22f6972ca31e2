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
	"math"
	"strconv"

	"github.com/sirupsen/logrus"
)

// BuildDataSet returns the File Meta Information and Data Set elements of a Secondary Capture
// Image describing src, in the order they are written. The Pixel Data element is not included.
// The SOP Instance UID is taken from uids.
func BuildDataSet(src ImageSource, uids UIDProvider) (*DataSet, error) {
	return buildDataSet(src, uids, logrus.StandardLogger())
}

func buildDataSet(src ImageSource, uids UIDProvider, log logrus.FieldLogger) (*DataSet, error) {
	bitDepth := src.BitDepth()
	if err := checkBitDepth(bitDepth); err != nil {
		return nil, err
	}

	instanceUID, err := uids.NewUID()
	if err != nil {
		return nil, fmt.Errorf("generating SOP instance UID: %w", err)
	}

	ds := &DataSet{}

	// File Meta Information
	// http://dicom.nema.org/medical/dicom/current/output/html/part10.html#sect_7.1
	ds.Append(FileMetaInformationVersionTag, OBVR, Bytes{0x00, 0x01})
	ds.Append(MediaStorageSOPClassUIDTag, UIVR, Text(SecondaryCaptureImageStorageUID))
	ds.Append(MediaStorageSOPInstanceUIDTag, UIVR, Text(instanceUID))
	ds.Append(TransferSyntaxUIDTag, UIVR, Text(ExplicitVRLittleEndianUID))
	ds.Append(ImplementationClassUIDTag, UIVR, Text(ImplementationClassUID))
	ds.Append(ImplementationVersionNameTag, SHVR, Text(ImplementationVersionName))

	ds.Append(ModalityTag, CSVR, Text("OT"))
	ds.Append(PatientNameTag, PNVR, Text("Patient^Name"))

	// Image Pixel Module
	// http://dicom.nema.org/medical/dicom/current/output/html/part03.html#sect_C.7.6.3
	ushort := func(tag DataElementTag, v uint32) {
		if v > math.MaxUint16 {
			log.WithFields(logrus.Fields{"tag": tag.String(), "value": v}).
				Warn("value does not fit in 16 bits and is truncated")
		}
		ds.Append(tag, USVR, UShort(v))
	}
	ushort(SamplesPerPixelTag, 1)
	ds.Append(PhotometricInterpretationTag, CSVR, Text("MONOCHROME2"))
	ds.Append(NumberOfFramesTag, ISVR, Text(strconv.FormatUint(uint64(src.FrameCount()), 10)))
	ushort(RowsTag, src.Height())
	ushort(ColumnsTag, src.Width())
	ushort(BitsAllocatedTag, uint32(bitDepth))
	ushort(BitsStoredTag, uint32(bitDepth))
	ushort(HighBitTag, uint32(bitDepth-1))
	ushort(PixelRepresentationTag, pixelRepresentation(src))

	return ds, nil
}

// pixelRepresentation is 1 for signed samples and 0 for unsigned samples. 32-bit images hold
// floating point samples and are always reported as signed.
func pixelRepresentation(src ImageSource) uint32 {
	switch src.BitDepth() {
	case 16:
		if src.IsSigned16() {
			return 1
		}
	case 32:
		return 1
	}
	return 0
}
