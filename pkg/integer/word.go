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
package integer

import "fmt"

// Word captures the set of operations required of a fixed-width integer type.
// Arithmetic is checked: the boolean result is false when the mathematical
// result does not fit the type, or when dividing by zero.  Bitwise operations
// act on the two's-complement representation and are total.
type Word[Operand any] interface {
	// Parse a decimal string into a value of this type.  The receiver is
	// ignored, so the zero value is the canonical way to parse.
	Parse(text string) (Operand, error)
	Add(y Operand) (Operand, bool) // Add x+y
	Sub(y Operand) (Operand, bool) // Sub x-y
	Mul(y Operand) (Operand, bool) // Mul x*y
	Div(y Operand) (Operand, bool) // Div x/y, truncated toward zero
	And(y Operand) Operand         // And x&y
	Or(y Operand) Operand          // Or x|y
	Xor(y Operand) Operand         // Xor x^y
	// Hex returns the upper-case hexadecimal form of the two's-complement
	// representation, zero-padded to ByteWidth()*2 digits (without prefix).
	Hex() string
	// BitWidth returns the number of bits in this type.
	BitWidth() uint
	// ByteWidth returns the number of bytes in this type.
	ByteWidth() uint
	// Tag returns the tag identifying this type.
	Tag() Tag
	// String returns the decimal form of this value.
	fmt.Stringer
}

// RangeError reports a textual operand which is either malformed, or not
// within the range of a given type.
type RangeError struct {
	Type Tag
	Text string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s cannot hold %s", e.Type, e.Text)
}
