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

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// CheckedAddSigned returns a+b, or false if the result lies outside
// [lo,hi].  Here, lo and hi must be the bounds of T itself.
func CheckedAddSigned[T constraints.Signed](a, b, lo, hi T) (T, bool) {
	if (b > 0 && a > hi-b) || (b < 0 && a < lo-b) {
		return 0, false
	}
	//
	return a + b, true
}

// CheckedSubSigned returns a-b, or false if the result lies outside [lo,hi].
func CheckedSubSigned[T constraints.Signed](a, b, lo, hi T) (T, bool) {
	if (b > 0 && a < lo+b) || (b < 0 && a > hi+b) {
		return 0, false
	}
	//
	return a - b, true
}

// CheckedMulSigned returns a*b, or false if the result lies outside [lo,hi].
func CheckedMulSigned[T constraints.Signed](a, b, lo, hi T) (T, bool) {
	if (a > 0 && b > 0 && a > hi/b) ||
		(a > 0 && b <= 0 && b < lo/a) ||
		(a <= 0 && b > 0 && a < lo/b) ||
		(a < 0 && b <= 0 && b < hi/a) {
		return 0, false
	}
	//
	return a * b, true
}

// CheckedDivSigned returns a/b truncated toward zero, or false if b is zero or
// the quotient overflows (i.e. lo / -1).
func CheckedDivSigned[T constraints.Signed](a, b, lo T) (T, bool) {
	if b == 0 || (a == lo && b == -1) {
		return 0, false
	}
	//
	return a / b, true
}

// CheckedAddUnsigned returns a+b, or false on overflow.
func CheckedAddUnsigned[T constraints.Unsigned](a, b T) (T, bool) {
	if sum := a + b; sum >= a {
		return sum, true
	}
	//
	return 0, false
}

// CheckedSubUnsigned returns a-b, or false on underflow.
func CheckedSubUnsigned[T constraints.Unsigned](a, b T) (T, bool) {
	if b > a {
		return 0, false
	}
	//
	return a - b, true
}

// CheckedMulUnsigned returns a*b, or false on overflow.
func CheckedMulUnsigned[T constraints.Unsigned](a, b T) (T, bool) {
	var hi = ^T(0)
	//
	if a != 0 && b > hi/a {
		return 0, false
	}
	//
	return a * b, true
}

// CheckedDivUnsigned returns a/b, or false if b is zero.
func CheckedDivUnsigned[T constraints.Unsigned](a, b T) (T, bool) {
	if b == 0 {
		return 0, false
	}
	//
	return a / b, true
}

// parseSigned parses a decimal string into a signed machine integer of the
// width determined by the given tag.
func parseSigned[T constraints.Signed](text string, tag Tag) (T, error) {
	v, err := strconv.ParseInt(text, 10, int(tag.BitWidth()))
	if err != nil {
		return 0, &RangeError{tag, text}
	}
	//
	return T(v), nil
}

// parseUnsigned parses a decimal string into an unsigned machine integer of
// the width determined by the given tag.  A single leading '+' is permitted.
func parseUnsigned[T constraints.Unsigned](text string, tag Tag) (T, error) {
	// NOTE: ParseUint itself rejects any sign, hence "++1" still fails.
	v, err := strconv.ParseUint(strings.TrimPrefix(text, "+"), 10, int(tag.BitWidth()))
	if err != nil {
		return 0, &RangeError{tag, text}
	}
	//
	return T(v), nil
}

// hexOf renders the two's-complement bit pattern of a machine integer in
// upper-case hex, zero padded to exactly bytewidth*2 digits.
func hexOf[T constraints.Integer](value T, bytewidth uint) string {
	var (
		mask = ^uint64(0)
		bits = uint64(value)
	)
	// Truncate any sign extension
	if bytewidth < 8 {
		mask = (uint64(1) << (8 * bytewidth)) - 1
	}
	//
	return fmt.Sprintf("%0*X", int(2*bytewidth), bits&mask)
}
