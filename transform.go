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

// Package cprep performs the character-level translation a C or C++
// implementation applies before tokenization: trigraph replacement,
// backslash-newline splicing, comment removal, and whitespace
// normalization, with a position map from the normalized text back to
// the original source.
package cprep

import (
	"fmt"
	"unicode/utf8"

	"github.com/golang/glog"
)

// Result is everything one run produces. Text always begins and ends
// with a newline. Issues are in detection order. LocMap is ordered and
// strictly increasing in its output positions.
type Result struct {
	Text   string
	Issues []Issue
	LocMap []MapEntry
}

type commentType int

const (
	singleLine commentType = iota
	multiLine
)

type linePhase int

const (
	seekingHash linePhase = iota
	foundHash
	foundNonHash
)

var trigraphs = map[rune]rune{
	'<':  '{',
	'>':  '}',
	'(':  '[',
	')':  ']',
	'=':  '#',
	'/':  '\\',
	'\'': '^',
	'!':  '|',
	'-':  '~',
}

// isSpace matches the characters that rewrite to a plain space.
// Newline is handled separately throughout.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\v' || r == '\f'
}

type activeComment struct {
	typ commentType
	loc Location
}

type activeQuote struct {
	ch  rune
	loc Location
}

type transformer struct {
	cfg Config

	// version-derived gates, fixed for the run
	lineComments    bool
	ignoreTrigraphs bool

	// live buffers characters headed for the output; held buffers
	// characters a pending comment may retroactively cancel.
	live charStack
	held charStack

	comment *activeComment
	quote   *activeQuote

	// spliceLatch stops a second backslash from claiming the newline
	// that follows an absorbed backslash-newline pair.
	spliceLatch bool

	phase linePhase

	src Location // position in the input
	dst Location // position in the output

	out     []byte
	lastOut rune // 0 before the first emission

	issues []Issue
	lmap   locMap

	// virtual is set while the trailing flush newlines are fed; they
	// resolve pending splices and comments but never report or close
	// an open literal, so an unterminated one surfaces once, at end
	// of input.
	virtual bool
}

// cur selects the window characters are flowing through: the held
// buffer inside a comment, the live buffer otherwise.
func (t *transformer) cur() *charStack {
	if t.comment != nil {
		return &t.held
	}
	return &t.live
}

func (t *transformer) report(loc *Location, typ IssueType, kind IssueKind, ch rune) {
	t.issues = append(t.issues, Issue{Loc: loc, Type: typ, Kind: kind, Char: ch})
}

// insert pushes sl (nil to flush) into st, updating the directive
// classification from the window tail and emitting whatever falls out.
func (t *transformer) insert(st *charStack, sl *slot) {
	if last := st.last(); last != nil && last.r == '\n' {
		if t.comment == nil && t.quote == nil {
			t.phase = seekingHash
		} else {
			t.phase = foundNonHash
		}
	} else if t.phase == seekingHash && last != nil {
		prev := st.prev()
		switch {
		case isSpace(last.r):
			// still in leading whitespace
		case last.r == '#':
			t.phase = foundHash
		case last.r != '?' || (prev != nil && prev.r != '?' && prev.r != '\n' && !isSpace(prev.r)):
			// one or two question marks may still become a trigraph #
			t.phase = foundNonHash
		}
	}
	if sl != nil && sl.r == '\n' && t.phase == foundHash {
		sl.directive = true
	}

	ev := st.push(sl)
	t.spliceLatch = false
	if ev == nil || t.comment != nil {
		return
	}
	t.emit(ev)
}

// emit writes one character that left the live window, applying the
// whitespace rules: FF/VT/tab become a space, runs of whitespace and
// newlines collapse, and a space is taken back when a newline lands on
// it. Characters from inside a literal pass through untouched.
func (t *transformer) emit(sl *slot) {
	r := sl.r
	if !sl.quoted {
		if isSpace(r) {
			r = ' '
		}
		if r == ' ' && (t.lastOut == ' ' || t.lastOut == '\n') {
			return
		}
		if r == '\n' && t.lastOut == '\n' && !sl.directive {
			return
		}
	}
	if r == '\n' && t.lastOut == ' ' {
		t.out = t.out[:len(t.out)-1]
	} else {
		t.dst.Col++
	}
	if r == '\n' {
		t.dst.Col = 0
		t.dst.Line++
	} else if r != ' ' {
		t.lmap.note(sl.loc, t.dst)
	}
	t.out = utf8.AppendRune(t.out, r)
	t.lastOut = r
}

func (t *transformer) flush(st *charStack) {
	for i := 0; i < len(st.s); i++ {
		t.insert(st, nil)
	}
}

// endLineComment discards the buffered comment body and hands the
// window back to the live buffer.
func (t *transformer) endLineComment() {
	t.flush(&t.held)
	t.comment = nil
	glog.V(2).Infof("%s: line comment closed", t.src)
}

// quoteCloses reports whether a quote character arriving now really
// closes the literal. Only the two preceding window characters are
// consulted: a single backslash escapes the quote, a doubled backslash
// does not.
func (t *transformer) quoteCloses(st *charStack) bool {
	last := st.last()
	if last == nil || last.r != '\\' {
		return true
	}
	prev := st.prev()
	return prev != nil && prev.r == '\\'
}

func (t *transformer) processChar(b rune) {
	st := t.cur()
	t.src.Col++

	if b == '\n' {
		last := st.last()
		if last == nil || last.r != '\\' {
			if t.comment != nil && t.comment.typ == singleLine {
				t.endLineComment()
				st = t.cur()
			}
			if t.quote != nil && !t.virtual {
				// a literal may not cross an unspliced newline
				t.report(locAt(t.quote.loc), Warning, QuotationMarkNotClosed, t.quote.ch)
				t.quote = nil
			}
			t.src.Col = 0
			t.src.Line++
		} else if !t.spliceLatch {
			glog.V(2).Infof("%s: splice", t.src)
			st.deleteLast()
			t.spliceLatch = true
			t.src.Col = 0
			t.src.Line++
			return
		}
		t.insert(st, &slot{r: '\n', loc: t.src})
		return
	}

	// Trigraphs are never recognized inside a comment or literal. The
	// two question marks must already sit in the window.
	if t.comment == nil && t.quote == nil {
		last, prev := st.last(), st.prev()
		if last != nil && prev != nil && last.r == '?' && prev.r == '?' {
			if rep, ok := trigraphs[b]; ok {
				triLoc := t.src
				triLoc.Col -= 2
				if t.ignoreTrigraphs {
					glog.V(2).Infof("%s: trigraph ??%c ignored", triLoc, b)
					t.report(locAt(triLoc), Warning, TrigraphPresentAndIgnored, b)
				} else {
					glog.V(2).Infof("%s: trigraph ??%c -> %c", triLoc, b, rep)
					if t.cfg.WarnTrigraphs {
						t.report(locAt(triLoc), Warning, TrigraphPresent, b)
					}
					st.replaceLastTwo(&slot{r: rep, loc: triLoc})
					t.spliceLatch = false
					return
				}
			}
		}
	}

	if t.comment == nil {
		switch {
		case t.quote == nil && (b == '\'' || b == '"'):
			t.quote = &activeQuote{ch: b, loc: t.src}
			glog.V(2).Infof("%s: literal %c opened", t.src, b)
		case t.quote != nil && b == t.quote.ch && t.quoteCloses(st):
			t.quote = nil
			glog.V(2).Infof("%s: literal %c closed", t.src, b)
		}
	}

	if t.quote == nil {
		last := st.last()
		if t.comment == nil && last != nil && last.r == '/' {
			if b == '*' || (b == '/' && t.lineComments) {
				typ := multiLine
				if b == '/' {
					typ = singleLine
				}
				loc := t.src
				loc.Col--
				t.comment = &activeComment{typ: typ, loc: loc}
				st.replaceLast(&slot{r: ' ', loc: loc})
				t.spliceLatch = false
				if !t.held.empty() {
					panic(fmt.Sprintf("cprep: comment buffer not empty at %s", loc))
				}
				glog.V(2).Infof("%s: comment opened", loc)
				return
			}
		}
		if t.comment != nil && t.comment.typ == multiLine && last != nil && last.r == '*' && b == '/' {
			glog.V(2).Infof("%s: block comment closed", t.src)
			t.comment = nil
			t.held.clear()
			t.spliceLatch = false
			return
		}
	}

	t.insert(st, &slot{r: b, loc: t.src, quoted: t.quote != nil})
}

// Transform rewrites source through the early translation phases:
// trigraph replacement per cfg, backslash-newline splicing, comment
// removal, and whitespace normalization. The returned text begins and
// ends with a newline. filename only tags locations; no file is read.
//
// Transform never fails: every abnormal condition in the input becomes
// an Issue on the Result.
func Transform(source, filename string, cfg Config) *Result {
	t := &transformer{
		cfg:             cfg,
		lineComments:    cfg.Version.atLeast(C99, cppMin),
		ignoreTrigraphs: !cfg.Trigraphs || cfg.Version.atLeast(cMax, Cpp17),
		src:             Location{Filename: filename, Line: 0, Col: 0},
		dst:             Location{Filename: filename, Line: 1, Col: 0},
		out:             make([]byte, 0, len(source)+2),
	}

	// An unterminated last line is undefined behavior before C++11, as
	// is ending it with a continuation, plain or trigraph-encoded.
	if n := len(source); n != 0 && cfg.Version.atMost(cMax, Cpp03) {
		if source[n-1] != '\n' ||
			(n >= 2 && source[n-2] == '\\') ||
			(n >= 4 && source[n-4:n-1] == "??/") {
			t.report(nil, Warning, FileEndMissingNewline, 0)
		}
	}
	if cfg.Trigraphs && cfg.Version.atLeast(cMax, Cpp14) {
		t.report(nil, Warning, TrigraphAndVersionConflict, 0)
	}

	// A leading newline primes the window; two trailing ones resolve a
	// pending splice and terminate a final line comment.
	t.processChar('\n')
	for _, b := range source {
		t.processChar(b)
	}
	t.virtual = true
	t.processChar('\n')
	t.processChar('\n')
	t.flush(t.cur())

	if t.comment != nil {
		if t.comment.typ == singleLine {
			panic(fmt.Sprintf("cprep: line comment at %s survived end of input", t.comment.loc))
		}
		t.report(locAt(t.comment.loc), Error, MultilineCommentNotClosed, 0)
	}
	if t.quote != nil {
		t.report(locAt(t.quote.loc), Error, QuotationMarkNotClosed, t.quote.ch)
	}

	return &Result{Text: string(t.out), Issues: t.issues, LocMap: t.lmap.entries}
}
