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

package cprep

import (
	"fmt"
	"io"

	"go.bug.st/json"
)

type jsonLocation struct {
	File string `json:"file"`
	Line int    `json:"line"`
	Col  int    `json:"col"`
}

type jsonIssue struct {
	Loc  *jsonLocation `json:"loc,omitempty"`
	Type string        `json:"type"`
	Kind string        `json:"kind"`
	Char string        `json:"char,omitempty"`
}

type jsonMapEntry struct {
	Source jsonLocation `json:"source"`
	Output jsonLocation `json:"output"`
}

type jsonResult struct {
	Text   string         `json:"text"`
	Issues []jsonIssue    `json:"issues"`
	LocMap []jsonMapEntry `json:"locmap"`
}

func toJSONLocation(l Location) jsonLocation {
	return jsonLocation{File: l.Filename, Line: l.Line, Col: l.Col}
}

func fromJSONLocation(l jsonLocation) Location {
	return Location{Filename: l.File, Line: l.Line, Col: l.Col}
}

// WriteResultJSON writes res to w in a stable wire form usable by
// external tooling.
func WriteResultJSON(w io.Writer, res *Result) error {
	jr := jsonResult{
		Text:   res.Text,
		Issues: make([]jsonIssue, 0, len(res.Issues)),
		LocMap: make([]jsonMapEntry, 0, len(res.LocMap)),
	}
	for _, is := range res.Issues {
		ji := jsonIssue{Type: is.Type.String(), Kind: is.Kind.String()}
		if is.Loc != nil {
			l := toJSONLocation(*is.Loc)
			ji.Loc = &l
		}
		if is.Char != 0 {
			ji.Char = string(is.Char)
		}
		jr.Issues = append(jr.Issues, ji)
	}
	for _, e := range res.LocMap {
		jr.LocMap = append(jr.LocMap, jsonMapEntry{
			Source: toJSONLocation(e.Source),
			Output: toJSONLocation(e.Output),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jr)
}

// ReadResultJSON is the inverse of WriteResultJSON.
func ReadResultJSON(r io.Reader) (*Result, error) {
	var jr jsonResult
	if err := json.NewDecoder(r).Decode(&jr); err != nil {
		return nil, err
	}
	res := &Result{Text: jr.Text}
	for _, ji := range jr.Issues {
		is := Issue{}
		ok := false
		for typ := Warning; typ <= Info; typ++ {
			if typ.String() == ji.Type {
				is.Type = typ
				ok = true
				break
			}
		}
		if !ok {
			return nil, fmt.Errorf("unknown issue severity %q", ji.Type)
		}
		ok = false
		for kind, name := range issueKindNames {
			if name == ji.Kind {
				is.Kind = kind
				ok = true
				break
			}
		}
		if !ok {
			return nil, fmt.Errorf("unknown issue kind %q", ji.Kind)
		}
		if ji.Loc != nil {
			is.Loc = locAt(fromJSONLocation(*ji.Loc))
		}
		if ji.Char != "" {
			for _, c := range ji.Char {
				is.Char = c
				break
			}
		}
		res.Issues = append(res.Issues, is)
	}
	for _, e := range jr.LocMap {
		res.LocMap = append(res.LocMap, MapEntry{
			Source: fromJSONLocation(e.Source),
			Output: fromJSONLocation(e.Output),
		})
	}
	return res, nil
}
