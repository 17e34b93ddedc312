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
	"strings"

	"github.com/consensys/go-calcy/pkg/integer"
	"github.com/consensys/go-calcy/pkg/util"
)

// UNDEFINED is the marker rendered in place of an arithmetic result which
// overflows, or which divides by zero.
const UNDEFINED = "None"

// Calculator holds a pair of operands of the same integer type, and evaluates
// the supported operations over them.  A calculator is immutable once
// constructed.
type Calculator[T integer.Word[T]] struct {
	op1 T
	op2 T
}

// NewCalculator constructs a calculator for the given operands.
func NewCalculator[T integer.Word[T]](op1, op2 T) Calculator[T] {
	return Calculator[T]{op1, op2}
}

// Parse both operands as values of type T, and construct a calculator from
// them.  Both operands are parsed before any evaluation takes place, and the
// first failing operand is reported.
func Parse[T integer.Word[T]](a, b string) (Calculator[T], error) {
	var zero T
	//
	op1, err := zero.Parse(a)
	if err != nil {
		return Calculator[T]{}, err
	}
	//
	op2, err := zero.Parse(b)
	if err != nil {
		return Calculator[T]{}, err
	}
	//
	return Calculator[T]{op1, op2}, nil
}

// ParseAndDisplay parses both operands as values of type T, and renders the
// full report for them.
func ParseAndDisplay[T integer.Word[T]](a, b string) (string, error) {
	calc, err := Parse[T](a, b)
	if err != nil {
		return "", err
	}
	//
	return calc.String(), nil
}

// Op1 returns the first operand.
func (c Calculator[T]) Op1() T {
	return c.op1
}

// Op2 returns the second operand.
func (c Calculator[T]) Op2() T {
	return c.op2
}

// Add returns op1 + op2, or nothing on overflow.
func (c Calculator[T]) Add() util.Option[T] {
	return util.Checked[T](c.op1.Add(c.op2))
}

// Sub returns op1 - op2, or nothing on overflow.
func (c Calculator[T]) Sub() util.Option[T] {
	return util.Checked[T](c.op1.Sub(c.op2))
}

// Mul returns op1 * op2, or nothing on overflow.
func (c Calculator[T]) Mul() util.Option[T] {
	return util.Checked[T](c.op1.Mul(c.op2))
}

// Div returns op1 / op2, or nothing when op2 is zero or the quotient overflows.
func (c Calculator[T]) Div() util.Option[T] {
	return util.Checked[T](c.op1.Div(c.op2))
}

// And returns op1 & op2.
func (c Calculator[T]) And() T {
	return c.op1.And(c.op2)
}

// Or returns op1 | op2.
func (c Calculator[T]) Or() T {
	return c.op1.Or(c.op2)
}

// Xor returns op1 ^ op2.
func (c Calculator[T]) Xor() T {
	return c.op1.Xor(c.op2)
}

// arithmetic returns the four arithmetic operations, in report order.
func (c Calculator[T]) arithmetic() []arithmeticOp[T] {
	return []arithmeticOp[T]{
		{"+", c.Add}, {"-", c.Sub}, {"*", c.Mul}, {"/", c.Div},
	}
}

// bitwise returns the three bitwise operations, in report order.
func (c Calculator[T]) bitwise() []bitwiseOp[T] {
	return []bitwiseOp[T]{
		{"&", c.And()}, {"|", c.Or()}, {"^", c.Xor()},
	}
}

// String renders the full report.  This consists of one line for each
// arithmetic operation, followed by a block for each bitwise operation giving
// the binary, hex and decimal forms of both operands and the result.
func (c Calculator[T]) String() string {
	var (
		builder strings.Builder
		bits    = c.op1.BitWidth()
	)
	//
	for _, op := range c.arithmetic() {
		fmt.Fprintf(&builder, "%s %s %s = %s\n", c.op1, op.symbol, c.op2, optional(op.eval()))
	}
	//
	for _, op := range c.bitwise() {
		builder.WriteString("\n")
		fmt.Fprintf(&builder, "  %s\n", column(c.op1, bits))
		fmt.Fprintf(&builder, "%s %s\n", op.symbol, column(c.op2, bits))
		fmt.Fprintf(&builder, "= %s\n", column(op.result, bits))
	}
	//
	return builder.String()
}

type arithmeticOp[T any] struct {
	symbol string
	eval   func() util.Option[T]
}

type bitwiseOp[T any] struct {
	symbol string
	result T
}

// optional renders a checked result as either Some(value) or the undefined
// marker.
func optional[T fmt.Stringer](result util.Option[T]) string {
	if result.IsEmpty() {
		return UNDEFINED
	}
	//
	return fmt.Sprintf("Some(%s)", result.Unwrap())
}

// column renders a value in binary, hex and decimal form.  The hex form is
// always ByteWidth()*2 + 2 characters wide (including the "0x" prefix).
func column[T integer.Word[T]](val T, bits uint) string {
	return fmt.Sprintf("%s (0x%s) (%s)", FormatBinary(val, bits), val.Hex(), val)
}
