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
	"math"
	"testing"
)

// Exhaustively check 8-bit signed arithmetic against plain int arithmetic.
func Test_Checked_I8(t *testing.T) {
	for a := math.MinInt8; a <= math.MaxInt8; a++ {
		for b := math.MinInt8; b <= math.MaxInt8; b++ {
			x, y := int8(a), int8(b)
			//
			checkSigned(t, "+", a+b, signed(CheckedAddSigned(x, y, math.MinInt8, math.MaxInt8)))
			checkSigned(t, "-", a-b, signed(CheckedSubSigned(x, y, math.MinInt8, math.MaxInt8)))
			checkSigned(t, "*", a*b, signed(CheckedMulSigned(x, y, math.MinInt8, math.MaxInt8)))
			//
			q, ok := CheckedDivSigned(x, y, math.MinInt8)
			//
			if b == 0 || (a == math.MinInt8 && b == -1) {
				if ok {
					t.Errorf("%d / %d should be undefined", a, b)
				}
			} else if !ok || int(q) != a/b {
				t.Errorf("%d / %d == %d (%t), expected %d", a, b, q, ok, a/b)
			}
		}
	}
}

// Exhaustively check 8-bit unsigned arithmetic against plain int arithmetic.
func Test_Checked_U8(t *testing.T) {
	for a := 0; a <= math.MaxUint8; a++ {
		for b := 0; b <= math.MaxUint8; b++ {
			x, y := uint8(a), uint8(b)
			//
			checkUnsigned(t, "+", a+b, unsigned(CheckedAddUnsigned(x, y)))
			checkUnsigned(t, "-", a-b, unsigned(CheckedSubUnsigned(x, y)))
			checkUnsigned(t, "*", a*b, unsigned(CheckedMulUnsigned(x, y)))
			//
			q, ok := CheckedDivUnsigned(x, y)
			//
			if b == 0 {
				if ok {
					t.Errorf("%d / 0 should be undefined", a)
				}
			} else if !ok || int(q) != a/b {
				t.Errorf("%d / %d == %d (%t), expected %d", a, b, q, ok, a/b)
			}
		}
	}
}

func Test_Checked_I64_Bounds(t *testing.T) {
	const lo, hi = math.MinInt64, math.MaxInt64
	//
	if _, ok := CheckedAddSigned[int64](hi, 1, lo, hi); ok {
		t.Errorf("MaxInt64 + 1 should overflow")
	}
	//
	if _, ok := CheckedSubSigned[int64](lo, 1, lo, hi); ok {
		t.Errorf("MinInt64 - 1 should overflow")
	}
	//
	if _, ok := CheckedMulSigned[int64](lo, -1, lo, hi); ok {
		t.Errorf("MinInt64 * -1 should overflow")
	}
	//
	if _, ok := CheckedMulSigned[int64](-1, lo, lo, hi); ok {
		t.Errorf("-1 * MinInt64 should overflow")
	}
	//
	if _, ok := CheckedDivSigned[int64](lo, -1, lo); ok {
		t.Errorf("MinInt64 / -1 should overflow")
	}
	//
	if v, ok := CheckedMulSigned[int64](1<<31, 1<<31, lo, hi); !ok || v != 1<<62 {
		t.Errorf("2^31 * 2^31 == %d (%t)", v, ok)
	}
	//
	if v, ok := CheckedAddSigned[int64](lo, hi, lo, hi); !ok || v != -1 {
		t.Errorf("MinInt64 + MaxInt64 == %d (%t)", v, ok)
	}
}

func Test_Checked_U64_Bounds(t *testing.T) {
	if _, ok := CheckedAddUnsigned[uint64](math.MaxUint64, 1); ok {
		t.Errorf("MaxUint64 + 1 should overflow")
	}
	//
	if _, ok := CheckedMulUnsigned[uint64](1<<32, 1<<32); ok {
		t.Errorf("2^32 * 2^32 should overflow")
	}
	//
	if v, ok := CheckedMulUnsigned[uint64](1<<32, 1<<31); !ok || v != 1<<63 {
		t.Errorf("2^32 * 2^31 == %d (%t)", v, ok)
	}
}

// ============================================================================
// Helpers
// ============================================================================

type checked struct {
	value int
	ok    bool
}

func signed(value int8, ok bool) checked {
	return checked{int(value), ok}
}

func unsigned(value uint8, ok bool) checked {
	return checked{int(value), ok}
}

func checkSigned(t *testing.T, op string, expected int, actual checked) {
	t.Helper()
	//
	inRange := expected >= math.MinInt8 && expected <= math.MaxInt8
	checkResult(t, op, inRange, expected, actual)
}

func checkUnsigned(t *testing.T, op string, expected int, actual checked) {
	t.Helper()
	//
	inRange := expected >= 0 && expected <= math.MaxUint8
	checkResult(t, op, inRange, expected, actual)
}

func checkResult(t *testing.T, op string, inRange bool, expected int, actual checked) {
	t.Helper()
	//
	if inRange != actual.ok {
		t.Errorf("%s: expected defined=%t for result %d", op, inRange, expected)
	} else if inRange && actual.value != expected {
		t.Errorf("%s: expected %d, got %d", op, expected, actual.value)
	}
}
