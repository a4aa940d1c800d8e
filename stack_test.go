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

import "testing"

func sl(r rune) *slot { return &slot{r: r} }

func contents(st *charStack) string {
	var s []rune
	for _, c := range st.s {
		if c == nil {
			s = append(s, '.')
		} else {
			s = append(s, c.r)
		}
	}
	return string(s)
}

func TestStackPush(t *testing.T) {
	var st charStack
	for _, r := range "abcd" {
		st.push(sl(r))
	}
	if got := contents(&st); got != "bcd" {
		t.Errorf("contents=%q, want %q", got, "bcd")
	}
	ev := st.push(sl('e'))
	if ev == nil || ev.r != 'b' {
		t.Errorf("push evicted %v, want b", ev)
	}
	if st.last().r != 'e' || st.prev().r != 'd' {
		t.Errorf("last/prev=%c/%c, want e/d", st.last().r, st.prev().r)
	}
}

func TestStackReplaceLastTwo(t *testing.T) {
	var st charStack
	for _, r := range "a??" {
		st.push(sl(r))
	}
	st.replaceLastTwo(sl('#'))
	if got := contents(&st); got != ".a#" {
		t.Errorf("contents=%q, want %q", got, ".a#")
	}
}

func TestStackDeleteLast(t *testing.T) {
	var st charStack
	for _, r := range "ab\\" {
		st.push(sl(r))
	}
	st.deleteLast()
	if got := contents(&st); got != ".ab" {
		t.Errorf("contents=%q, want %q", got, ".ab")
	}
	st.deleteLast()
	st.deleteLast()
	if !st.empty() {
		t.Errorf("stack not empty after deleting everything: %q", contents(&st))
	}
}
