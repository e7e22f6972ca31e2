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
	"fmt"
	"math/big"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// UIDs written to every file
const (
	// SecondaryCaptureImageStorageUID is the SOP Class UID of Secondary Capture Image Storage
	SecondaryCaptureImageStorageUID = "1.2.840.10008.5.1.4.1.1.7"

	// ImplementationClassUID identifies the implementation that wrote the file
	ImplementationClassUID = "1.2.3.4.5.6.7.8"

	// ImplementationVersionName is written to (0002,0013)
	ImplementationVersionName = "ImageJ_DCM_Writer"

	// DefaultUIDRoot is the organizational root of UIDs generated by the ClockUIDProvider
	DefaultUIDRoot = "1.2.826.0.1.3680043.2.1"
)

// maxUIDLength as specified in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_9.1
const maxUIDLength = 64

// UIDProvider generates SOP Instance UIDs. Every call must return a UID unique to the file
// being written.
type UIDProvider interface {
	NewUID() (string, error)
}

// ClockUIDProvider generates UIDs of the form <root>.<unix milliseconds>.<sequence>. The
// sequence number keeps UIDs generated within the same millisecond distinct. It is safe for
// concurrent use.
type ClockUIDProvider struct {
	seq  uint64 // first field so that it is 64-bit aligned for atomic access
	root string
	now  func() time.Time
}

// NewClockUIDProvider returns a ClockUIDProvider rooted at root. DefaultUIDRoot is used when root
// is empty.
func NewClockUIDProvider(root string) *ClockUIDProvider {
	if root == "" {
		root = DefaultUIDRoot
	}
	return &ClockUIDProvider{root: root, now: time.Now}
}

func (p *ClockUIDProvider) NewUID() (string, error) {
	seq := atomic.AddUint64(&p.seq, 1)
	uid := fmt.Sprintf("%s.%d.%d", p.root, p.now().UnixMilli(), seq)
	if err := ValidateUID(uid); err != nil {
		return "", err
	}
	return uid, nil
}

// UUIDProvider generates UIDs derived from random UUIDs under the 2.25 root, as specified in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_B.2
type UUIDProvider struct{}

func (UUIDProvider) NewUID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generating uuid: %w", err)
	}
	return "2.25." + new(big.Int).SetBytes(id[:]).String(), nil
}

// StaticUIDProvider always returns the same UID. It is meant for tests and reproducible output.
type StaticUIDProvider string

func (p StaticUIDProvider) NewUID() (string, error) {
	if err := ValidateUID(string(p)); err != nil {
		return "", err
	}
	return string(p), nil
}

// ValidateUID checks uid is a dotted sequence of decimal components without leading zeros that
// fits in 64 characters.
func ValidateUID(uid string) error {
	if uid == "" {
		return fmt.Errorf("empty uid")
	}
	if len(uid) > maxUIDLength {
		return fmt.Errorf("uid %q is longer than %d characters", uid, maxUIDLength)
	}
	for _, component := range strings.Split(uid, ".") {
		if component == "" {
			return fmt.Errorf("uid %q has an empty component", uid)
		}
		if len(component) > 1 && component[0] == '0' {
			return fmt.Errorf("uid %q has a component with a leading zero", uid)
		}
		for _, c := range component {
			if c < '0' || c > '9' {
				return fmt.Errorf("uid %q contains non-digit %q", uid, c)
			}
		}
	}
	return nil
}
