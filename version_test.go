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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	for _, v := range everyVersion {
		got, err := ParseVersion(v.String())
		require.NoError(t, err, v.String())
		require.Equal(t, v, got)
	}
	_, err := ParseVersion("c++based")
	require.Error(t, err)
	_, err = ParseVersion("")
	require.Error(t, err)
}

func TestVersionGates(t *testing.T) {
	for _, tc := range []struct {
		v            Version
		lineComments bool
		eofCheck     bool
		triConflict  bool
		triIgnore    bool
	}{
		{v: VersionC(C89), lineComments: false, eofCheck: true},
		{v: VersionC(C99), lineComments: true, eofCheck: true},
		{v: VersionC(C18), lineComments: true, eofCheck: true},
		{v: VersionCpp(Cpp98), lineComments: true, eofCheck: true},
		{v: VersionCpp(Cpp03), lineComments: true, eofCheck: true},
		{v: VersionCpp(Cpp11), lineComments: true},
		{v: VersionCpp(Cpp14), lineComments: true, triConflict: true},
		{v: VersionCpp(Cpp17), lineComments: true, triConflict: true, triIgnore: true},
		{v: VersionCpp(Cpp20), lineComments: true, triConflict: true, triIgnore: true},
	} {
		require.Equal(t, tc.lineComments, tc.v.atLeast(C99, cppMin), "%s line comments", tc.v)
		require.Equal(t, tc.eofCheck, tc.v.atMost(cMax, Cpp03), "%s eof check", tc.v)
		require.Equal(t, tc.triConflict, tc.v.atLeast(cMax, Cpp14), "%s trigraph conflict", tc.v)
		require.Equal(t, tc.triIgnore, tc.v.atLeast(cMax, Cpp17), "%s trigraph ignore", tc.v)
	}
}

func TestVersionString(t *testing.T) {
	require.Equal(t, "c11", VersionC(C11).String())
	require.Equal(t, "c++17", VersionCpp(Cpp17).String())
	require.False(t, VersionC(C18).IsCpp())
	require.True(t, VersionCpp(Cpp98).IsCpp())
}
