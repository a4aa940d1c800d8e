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

import "sort"

// MapEntry is one anchor of the position map: the character at Source
// in the input was written at Output in the normalized text.
type MapEntry struct {
	Source Location
	Output Location
}

// locMap coalesces anchors: a new one is recorded only where linear
// extrapolation from the previous anchor would land somewhere else.
type locMap struct {
	entries []MapEntry
}

// predict extrapolates an output position for src from anchor e:
// within the anchor's source line, columns advance together; on a
// later line, lines advance together and columns restart in step with
// the source.
func (e MapEntry) predict(src Location) Location {
	out := e.Output
	if src.Line == e.Source.Line {
		out.Col += src.Col - e.Source.Col
	} else {
		out.Line += src.Line - e.Source.Line
		out.Col = src.Col
	}
	return out
}

func (m *locMap) note(src, out Location) {
	if n := len(m.entries); n > 0 && m.entries[n-1].predict(src) == out {
		return
	}
	m.entries = append(m.entries, MapEntry{Source: src, Output: out})
}

// SourceLocation maps a position in Text back to the input, using the
// greatest anchor at or before out and extrapolating from it. It
// reports false for positions before the first anchor (the leading
// newline and any position in an empty map).
func (r *Result) SourceLocation(out Location) (Location, bool) {
	i := sort.Search(len(r.LocMap), func(i int) bool {
		o := r.LocMap[i].Output
		return o.Line > out.Line || (o.Line == out.Line && o.Col > out.Col)
	})
	if i == 0 {
		return Location{}, false
	}
	e := r.LocMap[i-1]
	src := e.Source
	if out.Line == e.Output.Line {
		src.Col += out.Col - e.Output.Col
	} else {
		src.Line += out.Line - e.Output.Line
		src.Col = out.Col
	}
	return src, true
}
