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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/evh-5150/ImageJ-DICOM-Writer/dicom"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// config is the optional YAML configuration of dcmsave, for example:
//
//	uid:
//	  provider: uuid
//	log:
//	  level: debug
//	  format: json
type config struct {
	UID uidConfig `yaml:"uid"`
	Log logConfig `yaml:"log"`
}

type uidConfig struct {
	// Provider is clock (the default) or uuid
	Provider string `yaml:"provider"`

	// Root is the organizational root of clock UIDs
	Root string `yaml:"root"`
}

type logConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func defaultConfig() config {
	return config{
		UID: uidConfig{Provider: "clock", Root: dicom.DefaultUIDRoot},
		Log: logConfig{Level: "info", Format: "text"},
	}
}

// loadConfig reads the configuration at path on top of the defaults. An empty path returns the
// defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("opening config: %v", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decoding config %s: %v", path, err)
	}
	return cfg, nil
}

func (c config) uidProvider() (dicom.UIDProvider, error) {
	switch c.UID.Provider {
	case "", "clock":
		if c.UID.Root != "" {
			if err := dicom.ValidateUID(c.UID.Root); err != nil {
				return nil, fmt.Errorf("uid root: %v", err)
			}
		}
		return dicom.NewClockUIDProvider(c.UID.Root), nil
	case "uuid":
		return dicom.UUIDProvider{}, nil
	default:
		return nil, fmt.Errorf("unknown uid provider %q (expected clock or uuid)", c.UID.Provider)
	}
}

func (c config) logger(out io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(out)

	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)

	switch c.Log.Format {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q (expected text or json)", c.Log.Format)
	}
	return log, nil
}
