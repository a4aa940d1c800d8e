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

// Config is the run configuration. It is read, never written.
type Config struct {
	// Version is the language standard in effect.
	Version Version

	// Trigraphs asks for ??X sequences to be translated. At C++17 and
	// later the request is refused and recognized sequences are only
	// reported; at C++14 and later the request itself draws a
	// TrigraphAndVersionConflict diagnostic.
	Trigraphs bool

	// WarnTrigraphs reports every trigraph that was translated.
	WarnTrigraphs bool
}

// DefaultConfig is C11 with trigraphs off, matching gcc's default for C.
func DefaultConfig() Config {
	return Config{Version: VersionC(C11)}
}
