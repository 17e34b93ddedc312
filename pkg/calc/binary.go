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
	"strings"

	"github.com/consensys/go-calcy/pkg/integer"
)

// Binary expansion of each hex digit, where each nibble is preceded by a
// single space.
var nibbles = [16]string{
	" 0000", " 0001", " 0010", " 0011", " 0100", " 0101", " 0110", " 0111",
	" 1000", " 1001", " 1010", " 1011", " 1100", " 1101", " 1110", " 1111",
}

// FormatBinary renders the two's-complement bit pattern of a value as "0b"
// followed by bits/4 space-separated nibbles, most significant first.  For
// example, an 8-bit value 10 is rendered as "0b 0000 1010".
func FormatBinary[T integer.Word[T]](value T, bits uint) string {
	return binaryOfHex(value.Hex(), bits)
}

// binaryOfHex expands an upper-case hex string, padded to bits/4 digits, one
// nibble at a time.
func binaryOfHex(hex string, bits uint) string {
	var (
		digits  = int(bits / 4)
		builder strings.Builder
	)
	//
	if len(hex) < digits {
		hex = strings.Repeat("0", digits-len(hex)) + hex
	}
	//
	builder.Grow(2 + 5*len(hex))
	builder.WriteString("0b")
	//
	for i := 0; i < len(hex); i++ {
		builder.WriteString(nibbles[hexDigit(hex[i])])
	}
	//
	return builder.String()
}

func hexDigit(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	// Should be impossible
	panic("unreachable")
}
