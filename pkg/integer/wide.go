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
	"math/big"
	"strings"

	"lukechampine.com/uint128"
)

// Go has no 128-bit machine integers.  Both wide types therefore hold their
// raw bit pattern in a uint128.Uint128, with checked arithmetic performed on
// big integers and then range checked.

var (
	// 2^64 - 1
	mask64 = new(big.Int).SetUint64(^uint64(0))
	// 2^128
	wrap128 = new(big.Int).Lsh(big.NewInt(1), 128)
	// 2^128 - 1
	maxBigU128 = new(big.Int).Sub(wrap128, big.NewInt(1))
	// 2^127 - 1
	maxBigI128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	// -2^127
	minBigI128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

// MaxU128 is the largest U128 value.
var MaxU128 = U128{uint128.New(^uint64(0), ^uint64(0))}

// MaxI128 is the largest I128 value.
var MaxI128 = I128{uint128.New(^uint64(0), ^uint64(0)>>1)}

// MinI128 is the smallest I128 value.
var MinI128 = I128{uint128.New(0, 1<<63)}

// ============================================================================
// U128
// ============================================================================

// U128 is a 128-bit unsigned integer.
type U128 struct {
	bits uint128.Uint128
}

// NewU128 constructs a U128 from its high and low 64-bit halves.
func NewU128(hi, lo uint64) U128 {
	return U128{uint128.New(lo, hi)}
}

// Parse a decimal string as a U128.  A single leading '+' is permitted.
func (U128) Parse(text string) (U128, error) {
	if v, ok := parseBig(text); ok && !strings.HasPrefix(text, "-") {
		if r, ok := u128FromBig(v); ok {
			return r, nil
		}
	}
	//
	return U128{}, &RangeError{TagU128, text}
}

// Add x+y, or false on overflow.
func (x U128) Add(y U128) (U128, bool) {
	return u128FromBig(new(big.Int).Add(x.Big(), y.Big()))
}

// Sub x-y, or false on overflow.
func (x U128) Sub(y U128) (U128, bool) {
	return u128FromBig(new(big.Int).Sub(x.Big(), y.Big()))
}

// Mul x*y, or false on overflow.
func (x U128) Mul(y U128) (U128, bool) {
	return u128FromBig(new(big.Int).Mul(x.Big(), y.Big()))
}

// Div x/y, or false if y is zero.
func (x U128) Div(y U128) (U128, bool) {
	if y.bits.IsZero() {
		return U128{}, false
	}
	//
	return u128FromBig(new(big.Int).Quo(x.Big(), y.Big()))
}

// And x&y
func (x U128) And(y U128) U128 {
	return U128{x.bits.And(y.bits)}
}

// Or x|y
func (x U128) Or(y U128) U128 {
	return U128{x.bits.Or(y.bits)}
}

// Xor x^y
func (x U128) Xor(y U128) U128 {
	return U128{x.bits.Xor(y.bits)}
}

// Hex returns the zero-padded upper-case hex form of x.
func (x U128) Hex() string {
	return hex128(x.bits)
}

// BitWidth of U128 is 128.
func (U128) BitWidth() uint {
	return 128
}

// ByteWidth of U128 is 16.
func (U128) ByteWidth() uint {
	return 16
}

// Tag returns TagU128.
func (U128) Tag() Tag {
	return TagU128
}

// Big returns the value of x as a (fresh) big integer.
func (x U128) Big() *big.Int {
	return x.bits.Big()
}

func (x U128) String() string {
	return x.Big().String()
}

func u128FromBig(v *big.Int) (U128, bool) {
	if v.Sign() < 0 || v.Cmp(maxBigU128) > 0 {
		return U128{}, false
	}
	//
	return U128{bitsOf(v)}, true
}

// ============================================================================
// I128
// ============================================================================

// I128 is a 128-bit two's-complement signed integer.
type I128 struct {
	bits uint128.Uint128
}

// NewI128 constructs an I128 from the high and low 64-bit halves of its two's
// complement representation.
func NewI128(hi, lo uint64) I128 {
	return I128{uint128.New(lo, hi)}
}

// Parse a decimal string as an I128.
func (I128) Parse(text string) (I128, error) {
	if v, ok := parseBig(text); ok {
		if r, ok := i128FromBig(v); ok {
			return r, nil
		}
	}
	//
	return I128{}, &RangeError{TagI128, text}
}

// Add x+y, or false on overflow.
func (x I128) Add(y I128) (I128, bool) {
	return i128FromBig(new(big.Int).Add(x.Big(), y.Big()))
}

// Sub x-y, or false on overflow.
func (x I128) Sub(y I128) (I128, bool) {
	return i128FromBig(new(big.Int).Sub(x.Big(), y.Big()))
}

// Mul x*y, or false on overflow.
func (x I128) Mul(y I128) (I128, bool) {
	return i128FromBig(new(big.Int).Mul(x.Big(), y.Big()))
}

// Div x/y, or false if y is zero or the quotient overflows.  Since Quo
// truncates toward zero, MinI128 / -1 is caught by the range check.
func (x I128) Div(y I128) (I128, bool) {
	if y.bits.IsZero() {
		return I128{}, false
	}
	//
	return i128FromBig(new(big.Int).Quo(x.Big(), y.Big()))
}

// And x&y
func (x I128) And(y I128) I128 {
	return I128{x.bits.And(y.bits)}
}

// Or x|y
func (x I128) Or(y I128) I128 {
	return I128{x.bits.Or(y.bits)}
}

// Xor x^y
func (x I128) Xor(y I128) I128 {
	return I128{x.bits.Xor(y.bits)}
}

// Hex returns the zero-padded upper-case hex form of the two's-complement
// representation of x.
func (x I128) Hex() string {
	return hex128(x.bits)
}

// BitWidth of I128 is 128.
func (I128) BitWidth() uint {
	return 128
}

// ByteWidth of I128 is 16.
func (I128) ByteWidth() uint {
	return 16
}

// Tag returns TagI128.
func (I128) Tag() Tag {
	return TagI128
}

// Big returns the (signed) value of x as a fresh big integer.
func (x I128) Big() *big.Int {
	v := x.bits.Big()
	// Check sign bit
	if x.bits.Hi>>63 == 1 {
		v.Sub(v, wrap128)
	}
	//
	return v
}

func (x I128) String() string {
	return x.Big().String()
}

func i128FromBig(v *big.Int) (I128, bool) {
	if v.Cmp(minBigI128) < 0 || v.Cmp(maxBigI128) > 0 {
		return I128{}, false
	}
	// Map negatives onto their two's-complement image
	if v.Sign() < 0 {
		v = new(big.Int).Add(v, wrap128)
	}
	//
	return I128{bitsOf(v)}, true
}

// ============================================================================
// Helpers
// ============================================================================

// parseBig parses a decimal integer with an optional sign.  Underscores and
// other bases are not accepted.
func parseBig(text string) (*big.Int, bool) {
	// SetString tolerates underscores only for base 0, so base 10 suffices.
	return new(big.Int).SetString(text, 10)
}

// bitsOf splits a non-negative big integer known to fit 128 bits into its
// two halves.
func bitsOf(v *big.Int) uint128.Uint128 {
	lo := new(big.Int).And(v, mask64).Uint64()
	hi := new(big.Int).Rsh(v, 64).Uint64()
	//
	return uint128.New(lo, hi)
}

func hex128(bits uint128.Uint128) string {
	return fmt.Sprintf("%016X%016X", bits.Hi, bits.Lo)
}
