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

// IssueType is the severity of an Issue.
type IssueType int

const (
	Warning IssueType = iota
	Error
	Info
)

func (t IssueType) String() string {
	switch t {
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Info:
		return "info"
	}
	return fmt.Sprintf("severity?%d", int(t))
}

// IssueKind says what an Issue is about.
type IssueKind int

const (
	MultilineCommentNotClosed IssueKind = iota
	QuotationMarkNotClosed
	TrigraphPresent
	TrigraphPresentAndIgnored
	FileEndMissingNewline
	TrigraphAndVersionConflict
)

var issueKindNames = map[IssueKind]string{
	MultilineCommentNotClosed:  "multiline-comment-not-closed",
	QuotationMarkNotClosed:     "quotation-mark-not-closed",
	TrigraphPresent:            "trigraph-present",
	TrigraphPresentAndIgnored:  "trigraph-present-and-ignored",
	FileEndMissingNewline:      "file-end-missing-newline",
	TrigraphAndVersionConflict: "trigraph-and-version-conflict",
}

func (k IssueKind) String() string {
	if s, ok := issueKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("issue?%d", int(k))
}

// Issue is one diagnostic produced during a run. Loc is nil for
// file-level conditions. Char carries the quotation mark or the third
// trigraph character for the kinds that name one.
type Issue struct {
	Loc  *Location
	Type IssueType
	Kind IssueKind
	Char rune
}

// Message renders the condition without location or severity.
func (i Issue) Message() string {
	switch i.Kind {
	case MultilineCommentNotClosed:
		return "multi-line comment is not closed"
	case QuotationMarkNotClosed:
		return fmt.Sprintf("quotation mark %q is not closed", i.Char)
	case TrigraphPresent:
		return fmt.Sprintf("trigraph ??%c converted", i.Char)
	case TrigraphPresentAndIgnored:
		return fmt.Sprintf("trigraph ??%c ignored", i.Char)
	case FileEndMissingNewline:
		return "file does not end with an unescaped newline"
	case TrigraphAndVersionConflict:
		return "trigraphs requested but not available in this language standard"
	}
	return i.Kind.String()
}

func (i Issue) String() string {
	if i.Loc != nil {
		return fmt.Sprintf("%s: %s: %s", i.Loc, i.Type, i.Message())
	}
	return fmt.Sprintf("%s: %s", i.Type, i.Message())
}
