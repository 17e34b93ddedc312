// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package calc

import (
	"fmt"
	"sync"

	"github.com/consensys/go-calcy/pkg/integer"
)

// EntryFn parses two decimal operands under a fixed integer type and renders
// the full report for them.
type EntryFn func(a, b string) (string, error)

// SummaryFn parses two decimal operands under a fixed integer type and
// summarises the results for them.
type SummaryFn func(a, b string) (*Summary, error)

// Entry binds a type tag to the routines specialised for that type.  This is
// the point at which a runtime tag selects a statically typed calculator.
type Entry struct {
	Tag       integer.Tag
	Evaluate  EntryFn
	Summarise SummaryFn
	Layout    func() Layout
}

// UnknownTypeError reports a tag which has no entry in the dispatch table.
type UnknownTypeError struct {
	Tag string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("Unknown type: %s", e.Tag)
}

var (
	table     map[string]Entry
	tableOnce sync.Once
)

// Index ENTRIES by tag.  This happens once, after which the table is frozen.
// The table holds copies, hence later writes to ENTRIES are not observed.
func buildTable() map[string]Entry {
	tableOnce.Do(func() {
		table = make(map[string]Entry, len(ENTRIES))
		//
		for _, e := range ENTRIES {
			table[string(e.Tag)] = e
		}
	})
	//
	return table
}

// Lookup the dispatch entry for a given tag, using an exact match against the
// canonical (lowercase) form.
func Lookup(tag string) (Entry, bool) {
	entry, ok := buildTable()[tag]
	return entry, ok
}

// Evaluate parses both operands under the type identified by the given tag,
// and returns the full report.  An unknown tag yields an UnknownTypeError,
// whilst an operand which cannot be held by the type yields an
// integer.RangeError.
func Evaluate(tag, a, b string) (string, error) {
	entry, ok := Lookup(tag)
	if !ok {
		return "", &UnknownTypeError{tag}
	}
	//
	return entry.Evaluate(a, b)
}

// Summarise is the structured counterpart of Evaluate.
func Summarise(tag, a, b string) (*Summary, error) {
	entry, ok := Lookup(tag)
	if !ok {
		return nil, &UnknownTypeError{tag}
	}
	//
	return entry.Summarise(a, b)
}
