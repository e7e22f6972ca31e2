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
	"github.com/sirupsen/logrus"
)

// WriteOption configures how Write and WriteFile behave
type WriteOption struct {
	apply func(cfg *writeConfig)
}

type writeConfig struct {
	uids UIDProvider
	log  logrus.FieldLogger
}

func newWriteConfig(opts ...WriteOption) *writeConfig {
	cfg := &writeConfig{
		uids: defaultUIDProvider,
		log:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt.apply(cfg)
	}
	return cfg
}

var defaultUIDProvider UIDProvider = NewClockUIDProvider(DefaultUIDRoot)

// WithUIDProvider returns a WriteOption that takes the SOP Instance UID of the written file from
// uids instead of the default ClockUIDProvider.
func WithUIDProvider(uids UIDProvider) WriteOption {
	return WriteOption{func(cfg *writeConfig) {
		cfg.uids = uids
	}}
}

// WithLogger returns a WriteOption that logs to log instead of the logrus standard logger
func WithLogger(log logrus.FieldLogger) WriteOption {
	return WriteOption{func(cfg *writeConfig) {
		cfg.log = log
	}}
}
