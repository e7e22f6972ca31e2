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
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Write encodes src as a multi-frame Secondary Capture Image in the DICOM file format and writes
// it to w: the preamble and DICM signature, the File Meta Information, the Data Set built by
// BuildDataSet and finally the Pixel Data element holding every frame of src.
//
// The bit depth of src is validated before anything is written; an unsupported bit depth returns
// an error wrapping ErrUnsupportedBitDepth. Failures of w are returned as *IOError. Write does not
// clean up after a failure: whatever was encoded before it is flushed to w, leaving a partial file.
func Write(w io.Writer, src ImageSource, opts ...WriteOption) error {
	cfg := newWriteConfig(opts...)

	bitDepth := src.BitDepth()
	if err := checkBitDepth(bitDepth); err != nil {
		return err
	}
	vr, err := pixelDataVR(bitDepth)
	if err != nil {
		return err
	}
	length, err := PixelDataLength(src)
	if err != nil {
		return fmt.Errorf("calculating pixel data length: %w", err)
	}

	dataSet, err := buildDataSet(src, cfg.uids, cfg.log)
	if err != nil {
		return fmt.Errorf("building data set: %w", err)
	}

	log := cfg.log.WithFields(logrus.Fields{
		"frames":   src.FrameCount(),
		"width":    src.Width(),
		"height":   src.Height(),
		"bitDepth": bitDepth,
	})
	log.Debug("writing DICOM file")

	bw := bufio.NewWriter(w)
	dw := newDcmWriter(bw)
	err = writeContents(dw, dataSet, src, vr, length)
	// Bytes buffered before a failure still reach w.
	if ferr := bw.Flush(); ferr != nil && err == nil {
		err = &IOError{Op: "flush", Err: ferr}
	}
	if err != nil {
		return err
	}

	log.WithField("bytes", dw.written).Debug("wrote DICOM file")
	return nil
}

func writeContents(dw *dcmWriter, dataSet *DataSet, src ImageSource, vr *VR, length uint32) error {
	if err := writeDicomSignature(dw); err != nil {
		return err
	}
	if err := writeDataSet(dw, dataSet); err != nil {
		return fmt.Errorf("writing data set: %w", err)
	}
	if err := writeElementHeader(dw, PixelDataTag, vr, length); err != nil {
		return fmt.Errorf("writing pixel data header: %w", err)
	}
	n, err := writePixelData(dw, src)
	if err != nil {
		return fmt.Errorf("writing pixel data: %w", err)
	}
	if n != int64(length) {
		return fmt.Errorf("wrote %d bytes of pixel data, expected %d", n, length)
	}
	return nil
}

// WriteFile writes src to the named file as Write does, creating or truncating it. The file is
// closed on every return path. No file is created when the bit depth of src is unsupported; on
// any later failure a partial file is left behind.
func WriteFile(name string, src ImageSource, opts ...WriteOption) (err error) {
	if err := checkBitDepth(src.BitDepth()); err != nil {
		return err
	}

	f, err := os.Create(name)
	if err != nil {
		return &IOError{Op: "create", Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Err: cerr}
		}
	}()

	return Write(f, src, opts...)
}

func writeDicomSignature(dw *dcmWriter) error {
	if err := dw.Zeros(128); err != nil {
		return fmt.Errorf("writing DICOM preamble: %w", err)
	}

	if err := dw.String("DICM"); err != nil {
		return fmt.Errorf("writing DICOM signature: %w", err)
	}

	return nil
}
