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
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedBitDepth is returned when an image has a bit depth other than 8, 16 or 32.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

	// ErrUnsupportedValueType is returned when a value cannot be encoded under the VR of its
	// DataElement, or a frame buffer does not match the bit depth of its image.
	ErrUnsupportedValueType = errors.New("unsupported value type")
)

// IOError reports a failure of the underlying output. Op is one of create, write, flush or close.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func checkBitDepth(bitDepth int) error {
	switch bitDepth {
	case 8, 16, 32:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}
