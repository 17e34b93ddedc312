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
	"unsafe"

	"github.com/consensys/go-calcy/pkg/integer"
)

// Layout describes the in-memory layout of a calculator instantiated for a
// given integer type.
type Layout struct {
	Tag integer.Tag
	// Size and alignment of the calculator itself.
	Size  uintptr
	Align uintptr
	// Offsets of each operand.
	Op1Offset uintptr
	Op2Offset uintptr
	// Size of a single operand.
	OperandSize uintptr
}

// Layouts returns the layout of every calculator instantiation, in dispatch
// table order.
func Layouts() []Layout {
	layouts := make([]Layout, len(ENTRIES))
	//
	for i, e := range ENTRIES {
		layouts[i] = e.Layout()
	}
	//
	return layouts
}

func layoutOf[T integer.Word[T]]() Layout {
	var c Calculator[T]
	//
	return Layout{
		Tag:         c.op1.Tag(),
		Size:        unsafe.Sizeof(c),
		Align:       unsafe.Alignof(c),
		Op1Offset:   unsafe.Offsetof(c.op1),
		Op2Offset:   unsafe.Offsetof(c.op2),
		OperandSize: unsafe.Sizeof(c.op1),
	}
}
