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

// Command dcmsave writes a stack of grayscale PNG images as a multi-frame DICOM file.
//
// Usage:
//
//	dcmsave [-o out.dcm] [-config dcmsave.yaml] [-signed] [-log-level level] frame1.png [frame2.png ...]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/evh-5150/ImageJ-DICOM-Writer/dicom"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		logrus.Fatal(err)
	}
}

func run(args []string, logOut io.Writer) error {
	flags := flag.NewFlagSet("dcmsave", flag.ContinueOnError)
	flags.SetOutput(logOut)
	outPath := flags.String("o", "", "output file (default: first input with a .dcm extension)")
	configPath := flags.String("config", "", "YAML configuration file")
	signed := flags.Bool("signed", false, "interpret 16-bit samples as signed")
	logLevel := flags.String("log-level", "", "log level, overrides the configuration")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return fmt.Errorf("no input frames given")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	log, err := cfg.logger(logOut)
	if err != nil {
		return fmt.Errorf("configuring logger: %v", err)
	}
	uids, err := cfg.uidProvider()
	if err != nil {
		return err
	}

	stack, err := loadStack(flags.Args(), *signed)
	if err != nil {
		return fmt.Errorf("loading frames: %v", err)
	}

	out := *outPath
	if out == "" {
		out = defaultOutputName(flags.Arg(0))
	}
	if err := dicom.WriteFile(out, stack, dicom.WithUIDProvider(uids), dicom.WithLogger(log)); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	if abs, err := filepath.Abs(out); err == nil {
		out = abs
	}
	log.WithFields(logrus.Fields{
		"path":   out,
		"frames": stack.FrameCount(),
	}).Info("DICOM file written")
	return nil
}
