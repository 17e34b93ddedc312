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

import "strconv"

// Tag is the canonical textual name of a fixed-width integer type, such as
// "i32" or "u128".  The set of tags is closed.
type Tag string

// TagI8 identifies an 8-bit signed integer.
const TagI8 Tag = "i8"

// TagI16 identifies a 16-bit signed integer.
const TagI16 Tag = "i16"

// TagI32 identifies a 32-bit signed integer.
const TagI32 Tag = "i32"

// TagI64 identifies a 64-bit signed integer.
const TagI64 Tag = "i64"

// TagI128 identifies a 128-bit signed integer.
const TagI128 Tag = "i128"

// TagU8 identifies an 8-bit unsigned integer.
const TagU8 Tag = "u8"

// TagU16 identifies a 16-bit unsigned integer.
const TagU16 Tag = "u16"

// TagU32 identifies a 32-bit unsigned integer.
const TagU32 Tag = "u32"

// TagU64 identifies a 64-bit unsigned integer.
const TagU64 Tag = "u64"

// TagU128 identifies a 128-bit unsigned integer.
const TagU128 Tag = "u128"

// ALL_TAGS determines the set of supported integer types, in canonical order.
var ALL_TAGS = []Tag{
	TagI8, TagI16, TagI32, TagI64, TagI128,
	TagU8, TagU16, TagU32, TagU64, TagU128,
}

// Tags returns the supported tags in canonical order.  The returned slice is a
// copy and can be modified freely.
func Tags() []Tag {
	tags := make([]Tag, len(ALL_TAGS))
	copy(tags, ALL_TAGS)
	//
	return tags
}

// ParseTag returns the tag matching the given text exactly, or false if no
// such tag exists.  Matching is case sensitive.
func ParseTag(text string) (Tag, bool) {
	for _, t := range ALL_TAGS {
		if string(t) == text {
			return t, true
		}
	}
	//
	return "", false
}

// Signed returns true if this tag identifies a two's-complement signed type.
func (t Tag) Signed() bool {
	return len(t) > 0 && t[0] == 'i'
}

// BitWidth returns the number of bits of the type identified by this tag, or 0
// if the tag is not valid.
func (t Tag) BitWidth() uint {
	if _, ok := ParseTag(string(t)); !ok {
		return 0
	}
	//
	n, err := strconv.ParseUint(string(t[1:]), 10, 8)
	if err != nil {
		return 0
	}
	//
	return uint(n)
}

// ByteWidth returns the number of bytes of the type identified by this tag,
// or 0 if the tag is not valid.
func (t Tag) ByteWidth() uint {
	return t.BitWidth() / 8
}

func (t Tag) String() string {
	return string(t)
}
