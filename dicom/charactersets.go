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

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// defaultCharacterRepertoire is ISO-IR 100 (ISO 8859-1). No Specific Character Set (0008,0005) is
// written so every Text value must be representable in it.
// http://dicom.nema.org/medical/dicom/current/output/chtml/part02/sect_D.6.2.html
var defaultCharacterRepertoire encoding.Encoding = charmap.ISO8859_1

func encodeText(s string) ([]byte, error) {
	b, err := defaultCharacterRepertoire.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not representable in ISO 8859-1: %v", ErrUnsupportedValueType, s, err)
	}
	return b, nil
}
