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

import "fmt"

// CVersion identifies a revision of the C standard.
type CVersion int

const (
	cMin CVersion = iota
	C89
	C99
	C11
	C18
	cMax
)

// CppVersion identifies a revision of the C++ standard.
type CppVersion int

const (
	cppMin CppVersion = iota
	Cpp98
	Cpp03
	Cpp11
	Cpp14
	Cpp17
	Cpp20
	cppMax
)

// Version is the C or C++ standard a run targets. Versions are ordered
// within a family; comparisons against the other family use a bound
// supplied by the caller.
type Version struct {
	cpp  bool
	cv   CVersion
	cppv CppVersion
}

// VersionC returns a Version for the given C standard.
func VersionC(v CVersion) Version {
	return Version{cv: v}
}

// VersionCpp returns a Version for the given C++ standard.
func VersionCpp(v CppVersion) Version {
	return Version{cpp: true, cppv: v}
}

// IsCpp reports whether v names a C++ standard.
func (v Version) IsCpp() bool { return v.cpp }

// atLeast reports whether v is at or above the bound for its family.
func (v Version) atLeast(c CVersion, cpp CppVersion) bool {
	if v.cpp {
		return v.cppv >= cpp
	}
	return v.cv >= c
}

// atMost reports whether v is at or below the bound for its family.
func (v Version) atMost(c CVersion, cpp CppVersion) bool {
	if v.cpp {
		return v.cppv <= cpp
	}
	return v.cv <= c
}

var cNames = map[CVersion]string{
	C89: "c89",
	C99: "c99",
	C11: "c11",
	C18: "c18",
}

var cppNames = map[CppVersion]string{
	Cpp98: "c++98",
	Cpp03: "c++03",
	Cpp11: "c++11",
	Cpp14: "c++14",
	Cpp17: "c++17",
	Cpp20: "c++20",
}

func (v Version) String() string {
	if v.cpp {
		if s, ok := cppNames[v.cppv]; ok {
			return s
		}
		return fmt.Sprintf("c++?%d", int(v.cppv))
	}
	if s, ok := cNames[v.cv]; ok {
		return s
	}
	return fmt.Sprintf("c?%d", int(v.cv))
}

// ParseVersion parses a -std style spelling such as "c11" or "c++17".
func ParseVersion(std string) (Version, error) {
	for cv, s := range cNames {
		if s == std {
			return VersionC(cv), nil
		}
	}
	for cppv, s := range cppNames {
		if s == std {
			return VersionCpp(cppv), nil
		}
	}
	return Version{}, fmt.Errorf("unknown language standard %q", std)
}
