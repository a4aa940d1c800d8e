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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapEntryPredict(t *testing.T) {
	e := MapEntry{Source: tloc(3, 4), Output: tloc(2, 2)}
	// same source line: columns move together
	require.Equal(t, tloc(2, 5), e.predict(tloc(3, 7)))
	// later source line: lines move together, columns restart in step
	require.Equal(t, tloc(4, 9), e.predict(tloc(5, 9)))
}

func TestLocMapCoalesces(t *testing.T) {
	var m locMap
	m.note(tloc(1, 1), tloc(2, 1))
	m.note(tloc(1, 2), tloc(2, 2)) // predicted, dropped
	m.note(tloc(1, 9), tloc(2, 9)) // predicted, dropped
	m.note(tloc(2, 1), tloc(3, 1)) // predicted, dropped
	m.note(tloc(2, 5), tloc(3, 2)) // off by a run of dropped characters
	require.Equal(t, []MapEntry{
		{Source: tloc(1, 1), Output: tloc(2, 1)},
		{Source: tloc(2, 5), Output: tloc(3, 2)},
	}, m.entries)
}

func TestSourceLocation(t *testing.T) {
	// A directive continued across spliced blank lines: output line 2
	// comes from source line 1, output line 3 from source line 8.
	in := "#a" + strings.Repeat("\\", 5) + strings.Repeat("\n", 8) + "b\n"
	res := Transform(in, testFilename, DefaultConfig())
	require.Equal(t, "\n#a"+strings.Repeat("\\", 4)+"\nb\n", res.Text)

	src, ok := res.SourceLocation(tloc(2, 1))
	require.True(t, ok)
	require.Equal(t, tloc(1, 1), src)

	src, ok = res.SourceLocation(tloc(2, 3))
	require.True(t, ok)
	require.Equal(t, tloc(1, 3), src)

	src, ok = res.SourceLocation(tloc(3, 1))
	require.True(t, ok)
	require.Equal(t, tloc(8, 1), src)

	// extrapolation past the last anchor
	src, ok = res.SourceLocation(tloc(4, 5))
	require.True(t, ok)
	require.Equal(t, tloc(9, 5), src)

	// the prologue newline precedes every anchor
	_, ok = res.SourceLocation(tloc(1, 1))
	require.False(t, ok)
}

func TestSourceLocationEmpty(t *testing.T) {
	res := Transform("", testFilename, DefaultConfig())
	_, ok := res.SourceLocation(tloc(1, 1))
	require.False(t, ok)
}
