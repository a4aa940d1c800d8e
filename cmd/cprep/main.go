// Copyright 2015 Google Inc. All rights reserved
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
	"flag"
	"fmt"
	"os"

	"github.com/arduino/go-paths-helper"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/cprep/cprep"
)

var (
	stdFlag       string
	trigraphsFlag bool
	wtrigraphs    bool
	outputFlag    string
	jsonFlag      bool
)

func init() {
	flag.StringVar(&stdFlag, "std", "c11", "language standard (c89 c99 c11 c18 c++98 c++03 c++11 c++14 c++17 c++20)")
	flag.BoolVar(&trigraphsFlag, "trigraphs", false, "translate trigraph sequences")
	flag.BoolVar(&wtrigraphs, "Wtrigraphs", false, "warn about translated trigraphs")
	flag.StringVar(&outputFlag, "o", "", "write normalized text to `file` instead of stdout")
	flag.BoolVar(&jsonFlag, "json", false, "write the full result as JSON instead of plain text")
}

var (
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed, color.Bold)
)

func printIssue(is cprep.Issue) {
	c := warnColor
	if is.Type == cprep.Error {
		c = errColor
	}
	c.Fprintln(os.Stderr, is.String())
}

func run(filename string) (nerrs int, err error) {
	cfg := cprep.DefaultConfig()
	cfg.Version, err = cprep.ParseVersion(stdFlag)
	if err != nil {
		return 0, err
	}
	cfg.Trigraphs = trigraphsFlag
	cfg.WarnTrigraphs = wtrigraphs

	data, err := paths.New(filename).ReadFile()
	if err != nil {
		return 0, errors.Wrapf(err, "reading %s", filename)
	}

	res := cprep.Transform(string(data), filename, cfg)
	for _, is := range res.Issues {
		printIssue(is)
		if is.Type == cprep.Error {
			nerrs++
		}
	}

	w := os.Stdout
	if outputFlag != "" {
		f, err := os.Create(outputFlag)
		if err != nil {
			return nerrs, errors.Wrapf(err, "creating %s", outputFlag)
		}
		defer f.Close()
		w = f
	}
	if jsonFlag {
		if err := cprep.WriteResultJSON(w, res); err != nil {
			return nerrs, errors.Wrap(err, "encoding result")
		}
		return nerrs, nil
	}
	if _, err := w.WriteString(res.Text); err != nil {
		return nerrs, errors.Wrap(err, "writing output")
	}
	return nerrs, nil
}

func main() {
	flag.Parse()
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		color.NoColor = true
	}
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] file\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	nerrs, err := run(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "cprep: %v\n", err)
		os.Exit(2)
	}
	if nerrs > 0 {
		os.Exit(1)
	}
}
