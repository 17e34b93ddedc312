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
package repl

import (
	"strings"

	"github.com/consensys/go-calcy/pkg/integer"
)

// USAGE is printed for any non-empty line which is not a valid command.
const USAGE = "Usage: <num>_<type> <num>"

// DEFAULT_TAG is the type assumed when the first operand carries no suffix.
const DEFAULT_TAG = integer.TagU8

// Kind distinguishes the different forms of command.
type Kind uint8

const (
	// EMPTY is a blank line, which is silently ignored.
	EMPTY Kind = iota
	// QUIT requests termination of the shell.
	QUIT
	// USAGE_ERROR is a line with the wrong number of tokens.
	USAGE_ERROR
	// CALCULATE requests evaluation of two operands under a given type.
	CALCULATE
)

// Command is a single parsed line of input.  Only CALCULATE commands carry a
// tag and operands.
type Command struct {
	Kind  Kind
	Tag   string
	Left  string
	Right string
}

// ParseLine parses a line of input into a command.  The line is trimmed first.
// Any line starting with ".q" requests termination.  Otherwise, the line must
// consist of exactly two whitespace separated tokens, the first of which may
// carry a type suffix (e.g. "10_i32 20").
func ParseLine(line string) Command {
	input := strings.TrimSpace(line)
	//
	if strings.HasPrefix(input, ".q") {
		return Command{Kind: QUIT}
	}
	//
	parts := strings.Fields(input)
	//
	if len(parts) != 2 {
		if input == "" {
			return Command{Kind: EMPTY}
		}
		//
		return Command{Kind: USAGE_ERROR}
	}
	//
	num, tag := SplitOperand(parts[0])
	//
	return Command{CALCULATE, tag, num, parts[1]}
}

// SplitOperand splits a token at its last underscore into an operand and its
// type tag.  When there is no underscore, the whole token is the operand and
// the tag defaults to DEFAULT_TAG.  A trailing underscore yields an empty tag,
// which matches no type.
func SplitOperand(token string) (string, string) {
	if i := strings.LastIndexByte(token, '_'); i >= 0 {
		return token[:i], token[i+1:]
	}
	//
	return token, string(DEFAULT_TAG)
}
